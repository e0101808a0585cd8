package service

import (
	"context"

	"tripmap/internal/domain/entity"
)

// SnapshotStore keeps a local copy of the trip lists for when the remote store is unreachable.
// Load methods degrade to an empty list on a missing or malformed snapshot; the error only
// explains why, callers never need to handle it.
type SnapshotStore interface {
	SaveLocations(ctx context.Context, locations []entity.Location) error
	SaveCategories(ctx context.Context, categories []entity.Category) error
	LoadLocations(ctx context.Context) ([]entity.Location, error)
	LoadCategories(ctx context.Context) ([]entity.Category, error)
}
