// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the trip state manager and the remote store.
package repository

import (
	"context"

	"tripmap/internal/domain/entity"
	"tripmap/internal/errors"
)

// Domain-specific errors for trip persistence.
var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrStoreUnavailable is returned when no connection to the remote store could be made.
	ErrStoreUnavailable = errors.New("remote store unavailable")
)

// LocationRepository stores the pinned locations of an owner.
type LocationRepository interface {
	// FindLocationsByOwner returns every location of the owner in insertion order.
	FindLocationsByOwner(ctx context.Context, ownerID string) ([]entity.Location, error)

	// CreateLocation persists a new location and returns it with its assigned ID.
	// The ID on the input is ignored.
	CreateLocation(ctx context.Context, ownerID string, location entity.Location) (*entity.Location, error)

	// UpdateLocation applies a partial update.
	UpdateLocation(ctx context.Context, id string, patch entity.LocationPatch) error

	// DeleteLocation removes a location by its ID.
	DeleteLocation(ctx context.Context, id string) error

	// ClearCategoryReferences uncategorizes every location that references the category.
	ClearCategoryReferences(ctx context.Context, categoryID string) error
}
