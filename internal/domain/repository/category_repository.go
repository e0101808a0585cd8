package repository

import (
	"context"

	"tripmap/internal/domain/entity"
)

// CategoryRepository stores the categories of an owner.
type CategoryRepository interface {
	// FindCategoriesByOwner returns every category of the owner in insertion order.
	FindCategoriesByOwner(ctx context.Context, ownerID string) ([]entity.Category, error)

	// CreateCategory persists a new category and returns it with its assigned ID.
	CreateCategory(ctx context.Context, ownerID string, category entity.Category) (*entity.Category, error)

	// UpdateCategory applies a partial update.
	UpdateCategory(ctx context.Context, id string, patch entity.CategoryPatch) error

	// DeleteCategory removes a category and clears the reference on every location that holds it.
	DeleteCategory(ctx context.Context, id string) error
}
