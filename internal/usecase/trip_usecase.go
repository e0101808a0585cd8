package usecase

import (
	"context"

	"tripmap/internal/domain/entity"

	"github.com/paulmach/orb"
)

// WriteOutcome tells the caller whether a mutation reached the remote store.
type WriteOutcome string

const (
	// OutcomePersisted means the remote store accepted the change.
	OutcomePersisted WriteOutcome = "persisted"
	// OutcomeLocalOnly means the change lives only in memory and in the local snapshot.
	OutcomeLocalOnly WriteOutcome = "local_only"
)

// RestoreSource names where a restored list came from.
type RestoreSource string

const (
	SourceRemote   RestoreSource = "remote"
	SourceSnapshot RestoreSource = "snapshot"
	SourceEmpty    RestoreSource = "empty"
)

// RestoreReport describes the result of loading the trip state.
type RestoreReport struct {
	Locations     RestoreSource `json:"locations"`
	Categories    RestoreSource `json:"categories"`
	LocationCount int           `json:"locationCount"`
	CategoryCount int           `json:"categoryCount"`
	DistanceCount int           `json:"distanceCount"`
}

// AddLocationInput represents the input for pinning a new location
type AddLocationInput struct {
	Name        string    `json:"name"`
	Coordinates orb.Point `json:"coordinates"`
	CategoryID  *string   `json:"categoryId,omitempty"`
}

// AddCategoryInput represents the input for creating a new category
type AddCategoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// RouteQuery selects the pairs to enrich. With both ids set only that pair is fetched;
// otherwise every pair is.
type RouteQuery struct {
	FromID string `json:"fromId,omitempty"`
	ToID   string `json:"toId,omitempty"`
}

// IsSinglePair reports whether both endpoints are given.
func (q RouteQuery) IsSinglePair() bool {
	return q.FromID != "" && q.ToID != ""
}

// RouteBatchStatus is the final state of a route enrichment batch.
type RouteBatchStatus string

const (
	// BatchApplied means the batch replaced the distance list.
	BatchApplied RouteBatchStatus = "applied"
	// BatchStale means a newer batch or a location change superseded this one.
	BatchStale RouteBatchStatus = "stale"
	// BatchSkipped means nothing was fetched.
	BatchSkipped RouteBatchStatus = "skipped"
	// BatchCanceled means the caller went away before the batch settled.
	BatchCanceled RouteBatchStatus = "canceled"
)

// RouteBatch summarizes one FetchDrivingRoutes call.
type RouteBatch struct {
	Seq       uint64           `json:"seq"`
	Status    RouteBatchStatus `json:"status"`
	Requested int              `json:"requested"`
	Enriched  int              `json:"enriched"`
	Failed    int              `json:"failed"`
}

// TripSnapshot is a consistent copy of the whole trip state.
type TripSnapshot struct {
	Locations  []entity.Location     `json:"locations"`
	Categories []entity.Category     `json:"categories"`
	Distances  []entity.DistanceInfo `json:"distances"`
	Busy       bool                  `json:"busy"`
}

// TripUsecase owns the shared trip plan: locations, categories and the distances between them.
// Operations never fail; remote failures are recovered locally and reported via WriteOutcome.
type TripUsecase interface {
	// Restore loads the trip from the remote store, falling back to the local snapshot.
	Restore(ctx context.Context) RestoreReport

	// Read views. Every call returns a copy.
	Locations() []entity.Location
	Categories() []entity.Category
	Distances() []entity.DistanceInfo
	Busy() bool
	Snapshot() TripSnapshot

	// Location management
	AddLocation(ctx context.Context, input AddLocationInput) (entity.Location, WriteOutcome)
	RemoveLocation(ctx context.Context, id string) WriteOutcome
	UpdateLocation(ctx context.Context, id string, patch entity.LocationPatch) (*entity.Location, WriteOutcome)
	ClearLocations(ctx context.Context) WriteOutcome

	// Category management
	AddCategory(ctx context.Context, input AddCategoryInput) (entity.Category, WriteOutcome)
	RemoveCategory(ctx context.Context, id string) WriteOutcome
	UpdateCategory(ctx context.Context, id string, patch entity.CategoryPatch) (*entity.Category, WriteOutcome)
	ClearCategories(ctx context.Context) WriteOutcome

	// FetchDrivingRoutes enriches distances with driving routes.
	FetchDrivingRoutes(ctx context.Context, query RouteQuery) RouteBatch
}
