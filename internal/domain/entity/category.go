package entity

// Category groups locations on the map.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// CategoryPatch carries a partial update. Nil fields are left untouched.
type CategoryPatch struct {
	Name  *string
	Color *string
}

// IsEmpty reports whether the patch changes nothing.
func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.Color == nil
}

// Apply merges the patch into a copy of c.
func (p CategoryPatch) Apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Color != nil {
		c.Color = *p.Color
	}

	return c
}

// CloneCategories copies a category list.
func CloneCategories(categories []Category) []Category {
	if len(categories) == 0 {
		return []Category{}
	}

	dup := make([]Category, len(categories))
	copy(dup, categories)

	return dup
}
