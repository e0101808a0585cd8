// Package entity contains the core business objects of the trip planner.
package entity

import (
	"github.com/paulmach/orb"
)

// DefaultOwnerID scopes every remote record. It stands in for a per-user identifier
// until an authentication layer provides one.
const DefaultOwnerID = "shared-trip"

// Location is a pinned place on the trip map.
type Location struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Coordinates orb.Point `json:"coordinates"` // [lng, lat]
	CategoryID  *string   `json:"categoryId,omitempty"`
}

// Lng returns the longitude of the location.
func (l Location) Lng() float64 { return l.Coordinates.Lon() }

// Lat returns the latitude of the location.
func (l Location) Lat() float64 { return l.Coordinates.Lat() }

// HasCategory reports whether the location references the given category.
func (l Location) HasCategory(categoryID string) bool {
	return l.CategoryID != nil && *l.CategoryID == categoryID
}

// Clone returns a copy that shares no pointers with l.
func (l Location) Clone() Location {
	dup := l
	if l.CategoryID != nil {
		id := *l.CategoryID
		dup.CategoryID = &id
	}

	return dup
}

// LocationPatch carries a partial update. Nil fields are left untouched.
type LocationPatch struct {
	Name        *string
	Coordinates *orb.Point
	CategoryID  *string
	// ClearCategory uncategorizes the location; it wins over CategoryID.
	ClearCategory bool
}

// IsEmpty reports whether the patch changes nothing.
func (p LocationPatch) IsEmpty() bool {
	return p.Name == nil && p.Coordinates == nil && p.CategoryID == nil && !p.ClearCategory
}

// Apply merges the patch into a copy of l.
func (p LocationPatch) Apply(l Location) Location {
	merged := l.Clone()
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Coordinates != nil {
		merged.Coordinates = *p.Coordinates
	}
	switch {
	case p.ClearCategory:
		merged.CategoryID = nil
	case p.CategoryID != nil:
		id := *p.CategoryID
		merged.CategoryID = &id
	}

	return merged
}

// CloneLocations copies a location list.
func CloneLocations(locations []Location) []Location {
	if len(locations) == 0 {
		return []Location{}
	}

	dup := make([]Location, len(locations))
	for i, loc := range locations {
		dup[i] = loc.Clone()
	}

	return dup
}
