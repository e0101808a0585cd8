// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"tripmap/config"
	deliverycontext "tripmap/internal/delivery/context"
	"tripmap/internal/domain/entity"
	"tripmap/internal/domain/geo"
	"tripmap/internal/domain/repository"
	"tripmap/internal/domain/service"
	"tripmap/internal/errors"
	"tripmap/internal/infra/metrics"
	"tripmap/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultRemoteTimeout = 5 * time.Second
	defaultRouteWorkers  = 4
)

var errNoRecord = errors.New("remote store returned no record")

// tripService implements the TripUsecase interface.
type tripService struct {
	ownerID       string
	locationRepo  repository.LocationRepository
	categoryRepo  repository.CategoryRepository
	resolver      service.RouteResolver
	snapshots     service.SnapshotStore
	publisher     service.EventPublisher
	remoteTimeout time.Duration
	routeWorkers  int
	logger        *slog.Logger

	mu         sync.RWMutex
	locations  []entity.Location
	categories []entity.Category
	distances  []entity.DistanceInfo
	revision   uint64 // bumped on every location list change
	routeSeq   uint64 // last issued route batch

	inFlight atomic.Int64
}

// TripServiceParams holds dependencies for TripService, injected by Fx.
type TripServiceParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	LocationRepo repository.LocationRepository
	CategoryRepo repository.CategoryRepository
	Resolver     service.RouteResolver
	Snapshots    service.SnapshotStore
	Publisher    service.EventPublisher `optional:"true"`
}

// NewTripService is the constructor for tripService. The state starts empty until Restore runs.
func NewTripService(params TripServiceParams) usecase.TripUsecase {
	remoteTimeout := defaultRemoteTimeout
	routeWorkers := defaultRouteWorkers
	ownerID := entity.DefaultOwnerID

	if cfg := params.Config; cfg != nil {
		ownerID = cfg.OwnerID(entity.DefaultOwnerID)
		if cfg.Trip != nil && cfg.Trip.RemoteTimeout > 0 {
			remoteTimeout = cfg.Trip.RemoteTimeout
		}
		if cfg.Directions != nil && cfg.Directions.Workers > 0 {
			routeWorkers = cfg.Directions.Workers
		}
	}

	return &tripService{
		ownerID:       ownerID,
		locationRepo:  params.LocationRepo,
		categoryRepo:  params.CategoryRepo,
		resolver:      params.Resolver,
		snapshots:     params.Snapshots,
		publisher:     params.Publisher,
		remoteTimeout: remoteTimeout,
		routeWorkers:  routeWorkers,
		logger:        params.Logger,
		locations:     []entity.Location{},
		categories:    []entity.Category{},
		distances:     []entity.DistanceInfo{},
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tripService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Restore loads both lists. Each kind falls back to its snapshot independently.
func (srv *tripService) Restore(ctx context.Context) usecase.RestoreReport {
	defer srv.track()()

	locations, locationSource := srv.restoreLocations(ctx)
	categories, categorySource := srv.restoreCategories(ctx)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.categories = uniqueCategories(categories)
	srv.locations = uniqueLocations(locations)
	dangling := srv.dropDanglingCategoryRefsLocked()
	srv.revision++
	srv.distances = geo.AllDirectDistances(srv.locations)

	if locationSource == usecase.SourceRemote || dangling > 0 {
		srv.saveLocationsLocked(ctx)
	}
	if categorySource == usecase.SourceRemote {
		srv.saveCategoriesLocked(ctx)
	}

	report := usecase.RestoreReport{
		Locations:     locationSource,
		Categories:    categorySource,
		LocationCount: len(srv.locations),
		CategoryCount: len(srv.categories),
		DistanceCount: len(srv.distances),
	}

	srv.log(ctx).Info("Trip state restored",
		slog.String("locations_source", string(report.Locations)),
		slog.String("categories_source", string(report.Categories)),
		slog.Int("locations", report.LocationCount),
		slog.Int("categories", report.CategoryCount),
	)

	return report
}

func (srv *tripService) restoreLocations(ctx context.Context) ([]entity.Location, usecase.RestoreSource) {
	remoteCtx, cancel := srv.remoteContext(ctx)
	remote, err := srv.locationRepo.FindLocationsByOwner(remoteCtx, srv.ownerID)
	cancel()

	switch {
	case err != nil:
		srv.fallback(ctx, "restore_locations", err)
	case len(remote) > 0:
		return entity.CloneLocations(remote), usecase.SourceRemote
	}

	local, err := srv.snapshots.LoadLocations(ctx)
	if err != nil {
		srv.log(ctx).Warn("Location snapshot unreadable, starting empty", slog.Any("error", err))
	}
	if len(local) > 0 {
		return entity.CloneLocations(local), usecase.SourceSnapshot
	}

	return []entity.Location{}, usecase.SourceEmpty
}

func (srv *tripService) restoreCategories(ctx context.Context) ([]entity.Category, usecase.RestoreSource) {
	remoteCtx, cancel := srv.remoteContext(ctx)
	remote, err := srv.categoryRepo.FindCategoriesByOwner(remoteCtx, srv.ownerID)
	cancel()

	switch {
	case err != nil:
		srv.fallback(ctx, "restore_categories", err)
	case len(remote) > 0:
		return entity.CloneCategories(remote), usecase.SourceRemote
	}

	local, err := srv.snapshots.LoadCategories(ctx)
	if err != nil {
		srv.log(ctx).Warn("Category snapshot unreadable, starting empty", slog.Any("error", err))
	}
	if len(local) > 0 {
		return entity.CloneCategories(local), usecase.SourceSnapshot
	}

	return []entity.Category{}, usecase.SourceEmpty
}

// Locations returns a copy of the location list in insertion order.
func (srv *tripService) Locations() []entity.Location {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return entity.CloneLocations(srv.locations)
}

// Categories returns a copy of the category list in insertion order.
func (srv *tripService) Categories() []entity.Category {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return entity.CloneCategories(srv.categories)
}

// Distances returns a copy of the distance list.
func (srv *tripService) Distances() []entity.DistanceInfo {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return entity.CloneDistances(srv.distances)
}

// Busy reports whether a remote synchronization or route batch is in flight.
func (srv *tripService) Busy() bool {
	return srv.inFlight.Load() > 0
}

// Snapshot returns all lists from the same state version.
func (srv *tripService) Snapshot() usecase.TripSnapshot {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return usecase.TripSnapshot{
		Locations:  entity.CloneLocations(srv.locations),
		Categories: entity.CloneCategories(srv.categories),
		Distances:  entity.CloneDistances(srv.distances),
		Busy:       srv.Busy(),
	}
}

// AddLocation persists a new location, or keeps it locally under a generated id when the remote store fails.
func (srv *tripService) AddLocation(ctx context.Context, input usecase.AddLocationInput) (entity.Location, usecase.WriteOutcome) {
	defer srv.track()()

	srv.mu.RLock()
	categoryID := srv.knownCategoryLocked(ctx, input.CategoryID)
	srv.mu.RUnlock()

	candidate := entity.Location{
		Name:        input.Name,
		Coordinates: input.Coordinates,
		CategoryID:  categoryID,
	}

	outcome := usecase.OutcomePersisted
	remoteCtx, cancel := srv.remoteContext(ctx)
	created, err := srv.locationRepo.CreateLocation(remoteCtx, srv.ownerID, candidate)
	cancel()

	if err == nil && (created == nil || created.ID == "") {
		err = errNoRecord
	}
	if err != nil {
		srv.fallback(ctx, "add_location", err)
		outcome = usecase.OutcomeLocalOnly
	} else {
		candidate = created.Clone()
	}

	srv.mu.Lock()
	if outcome == usecase.OutcomePersisted && indexOfLocation(srv.locations, candidate.ID) >= 0 {
		srv.log(ctx).Warn("Remote store returned a location id already in use", slog.String("location_id", candidate.ID))
		outcome = usecase.OutcomeLocalOnly
	}
	if outcome == usecase.OutcomeLocalOnly {
		candidate.ID = srv.newLocalLocationIDLocked()
	}
	candidate.CategoryID = srv.knownCategoryLocked(ctx, candidate.CategoryID)
	srv.locations = append(srv.locations, candidate)
	srv.locationsChangedLocked(ctx)
	srv.mu.Unlock()

	srv.publish(ctx, service.ChangeKindLocation, service.ChangeOpCreated, candidate.ID, outcome)

	return candidate.Clone(), outcome
}

// RemoveLocation deletes a location remotely on a best-effort basis and always locally.
func (srv *tripService) RemoveLocation(ctx context.Context, id string) usecase.WriteOutcome {
	defer srv.track()()

	outcome := srv.remoteWrite(ctx, "remove_location", func(remoteCtx context.Context) error {
		return ignoreNotFound(srv.locationRepo.DeleteLocation(remoteCtx, id))
	})

	srv.mu.Lock()
	removed := false
	if idx := indexOfLocation(srv.locations, id); idx >= 0 {
		srv.locations = slices.Delete(slices.Clone(srv.locations), idx, idx+1)
		srv.locationsChangedLocked(ctx)
		removed = true
	}
	srv.mu.Unlock()

	if removed {
		srv.publish(ctx, service.ChangeKindLocation, service.ChangeOpDeleted, id, outcome)
	}

	return outcome
}

// UpdateLocation merges the patch remotely on a best-effort basis and always locally.
// It returns nil when no local location has the id.
func (srv *tripService) UpdateLocation(ctx context.Context, id string, patch entity.LocationPatch) (*entity.Location, usecase.WriteOutcome) {
	if patch.CategoryID != nil && !patch.ClearCategory {
		srv.mu.RLock()
		patch.CategoryID = srv.knownCategoryLocked(ctx, patch.CategoryID)
		srv.mu.RUnlock()
	}

	if patch.IsEmpty() {
		srv.mu.RLock()
		defer srv.mu.RUnlock()
		if idx := indexOfLocation(srv.locations, id); idx >= 0 {
			current := srv.locations[idx].Clone()
			return &current, usecase.OutcomePersisted
		}

		return nil, usecase.OutcomePersisted
	}

	defer srv.track()()

	outcome := srv.remoteWrite(ctx, "update_location", func(remoteCtx context.Context) error {
		return srv.locationRepo.UpdateLocation(remoteCtx, id, patch)
	})

	srv.mu.Lock()
	idx := indexOfLocation(srv.locations, id)
	if idx < 0 {
		srv.mu.Unlock()
		srv.log(ctx).Debug("Update for unknown location ignored locally", slog.String("location_id", id))

		return nil, outcome
	}

	updated := patch.Apply(srv.locations[idx])
	updated.CategoryID = srv.knownCategoryLocked(ctx, updated.CategoryID)
	srv.locations = slices.Clone(srv.locations)
	srv.locations[idx] = updated
	srv.locationsChangedLocked(ctx)
	srv.mu.Unlock()

	srv.publish(ctx, service.ChangeKindLocation, service.ChangeOpUpdated, id, outcome)

	result := updated.Clone()

	return &result, outcome
}

// ClearLocations deletes every location remotely in parallel and empties the local list.
func (srv *tripService) ClearLocations(ctx context.Context) usecase.WriteOutcome {
	defer srv.track()()

	srv.mu.RLock()
	ids := locationIDs(srv.locations)
	srv.mu.RUnlock()

	outcome := srv.deleteAll(ctx, "clear_locations", ids, srv.locationRepo.DeleteLocation)

	srv.mu.Lock()
	srv.locations = slices.DeleteFunc(slices.Clone(srv.locations), func(loc entity.Location) bool {
		return slices.Contains(ids, loc.ID)
	})
	srv.locationsChangedLocked(ctx)
	srv.mu.Unlock()

	srv.publish(ctx, service.ChangeKindLocation, service.ChangeOpCleared, "", outcome)

	return outcome
}

// AddCategory persists a new category, or keeps it locally under a generated id when the remote store fails.
func (srv *tripService) AddCategory(ctx context.Context, input usecase.AddCategoryInput) (entity.Category, usecase.WriteOutcome) {
	defer srv.track()()

	candidate := entity.Category{Name: input.Name, Color: input.Color}

	outcome := usecase.OutcomePersisted
	remoteCtx, cancel := srv.remoteContext(ctx)
	created, err := srv.categoryRepo.CreateCategory(remoteCtx, srv.ownerID, candidate)
	cancel()

	if err == nil && (created == nil || created.ID == "") {
		err = errNoRecord
	}
	if err != nil {
		srv.fallback(ctx, "add_category", err)
		outcome = usecase.OutcomeLocalOnly
	} else {
		candidate = *created
	}

	srv.mu.Lock()
	if outcome == usecase.OutcomePersisted && indexOfCategory(srv.categories, candidate.ID) >= 0 {
		srv.log(ctx).Warn("Remote store returned a category id already in use", slog.String("category_id", candidate.ID))
		outcome = usecase.OutcomeLocalOnly
	}
	if outcome == usecase.OutcomeLocalOnly {
		candidate.ID = srv.newLocalCategoryIDLocked()
	}
	srv.categories = append(srv.categories, candidate)
	srv.saveCategoriesLocked(ctx)
	srv.mu.Unlock()

	srv.publish(ctx, service.ChangeKindCategory, service.ChangeOpCreated, candidate.ID, outcome)

	return candidate, outcome
}

// RemoveCategory deletes a category and uncategorizes every location that referenced it.
func (srv *tripService) RemoveCategory(ctx context.Context, id string) usecase.WriteOutcome {
	defer srv.track()()

	outcome := srv.remoteWrite(ctx, "remove_category", func(remoteCtx context.Context) error {
		return ignoreNotFound(srv.categoryRepo.DeleteCategory(remoteCtx, id))
	})

	srv.mu.Lock()
	removed := false
	if idx := indexOfCategory(srv.categories, id); idx >= 0 {
		srv.categories = slices.Delete(slices.Clone(srv.categories), idx, idx+1)
		srv.saveCategoriesLocked(ctx)
		removed = true
	}
	if srv.releaseCategoriesLocked([]string{id}) > 0 {
		srv.locationsChangedLocked(ctx)
	}
	srv.mu.Unlock()

	if removed {
		srv.publish(ctx, service.ChangeKindCategory, service.ChangeOpDeleted, id, outcome)
	}

	return outcome
}

// UpdateCategory merges the patch remotely on a best-effort basis and always locally.
// It returns nil when no local category has the id.
func (srv *tripService) UpdateCategory(ctx context.Context, id string, patch entity.CategoryPatch) (*entity.Category, usecase.WriteOutcome) {
	if patch.IsEmpty() {
		srv.mu.RLock()
		defer srv.mu.RUnlock()
		if idx := indexOfCategory(srv.categories, id); idx >= 0 {
			current := srv.categories[idx]
			return &current, usecase.OutcomePersisted
		}

		return nil, usecase.OutcomePersisted
	}

	defer srv.track()()

	outcome := srv.remoteWrite(ctx, "update_category", func(remoteCtx context.Context) error {
		return srv.categoryRepo.UpdateCategory(remoteCtx, id, patch)
	})

	srv.mu.Lock()
	idx := indexOfCategory(srv.categories, id)
	if idx < 0 {
		srv.mu.Unlock()
		srv.log(ctx).Debug("Update for unknown category ignored locally", slog.String("category_id", id))

		return nil, outcome
	}

	updated := patch.Apply(srv.categories[idx])
	srv.categories = slices.Clone(srv.categories)
	srv.categories[idx] = updated
	srv.saveCategoriesLocked(ctx)
	srv.mu.Unlock()

	srv.publish(ctx, service.ChangeKindCategory, service.ChangeOpUpdated, id, outcome)

	return &updated, outcome
}

// ClearCategories deletes every category and uncategorizes every location.
func (srv *tripService) ClearCategories(ctx context.Context) usecase.WriteOutcome {
	defer srv.track()()

	srv.mu.RLock()
	ids := categoryIDs(srv.categories)
	srv.mu.RUnlock()

	outcome := srv.deleteAll(ctx, "clear_categories", ids, srv.categoryRepo.DeleteCategory)

	srv.mu.Lock()
	srv.categories = slices.DeleteFunc(slices.Clone(srv.categories), func(cat entity.Category) bool {
		return slices.Contains(ids, cat.ID)
	})
	srv.saveCategoriesLocked(ctx)
	if srv.releaseCategoriesLocked(ids) > 0 {
		srv.locationsChangedLocked(ctx)
	}
	srv.mu.Unlock()

	srv.publish(ctx, service.ChangeKindCategory, service.ChangeOpCleared, "", outcome)

	return outcome
}

// track marks one synchronization as in flight until the returned func runs.
func (srv *tripService) track() func() {
	srv.inFlight.Add(1)

	return func() { srv.inFlight.Add(-1) }
}

func (srv *tripService) remoteContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, srv.remoteTimeout)
}

// remoteWrite runs a remote mutation and maps its error to LocalOnly.
func (srv *tripService) remoteWrite(ctx context.Context, op string, call func(context.Context) error) usecase.WriteOutcome {
	remoteCtx, cancel := srv.remoteContext(ctx)
	defer cancel()

	if err := call(remoteCtx); err != nil {
		srv.fallback(ctx, op, err)
		return usecase.OutcomeLocalOnly
	}

	return usecase.OutcomePersisted
}

// deleteAll issues one remote delete per id concurrently. Any failure makes the outcome LocalOnly.
func (srv *tripService) deleteAll(
	ctx context.Context,
	op string,
	ids []string,
	del func(ctx context.Context, id string) error,
) usecase.WriteOutcome {
	if len(ids) == 0 {
		return usecase.OutcomePersisted
	}

	remoteCtx, cancel := srv.remoteContext(ctx)
	defer cancel()

	var (
		wg    sync.WaitGroup
		errMu sync.Mutex
		errs  []error
	)

	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ignoreNotFound(del(remoteCtx, id)); err != nil {
				errMu.Lock()
				errs = append(errs, errors.Wrapf(err, "delete %s", id))
				errMu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(errs) > 0 {
		srv.fallback(ctx, op, errors.Join(errs...))
		return usecase.OutcomeLocalOnly
	}

	return usecase.OutcomePersisted
}

func (srv *tripService) fallback(ctx context.Context, op string, err error) {
	metrics.RemoteFallbackTotal.WithLabelValues(op).Inc()
	srv.log(ctx).Warn("Remote store unavailable, continuing locally",
		slog.String("op", op),
		slog.Any("error", err),
	)
}

// locationsChangedLocked recomputes distances and rewrites the location snapshot.
// Driving data survives for pairs whose endpoints did not move.
func (srv *tripService) locationsChangedLocked(ctx context.Context) {
	srv.revision++
	srv.distances = retainRoutes(geo.AllDirectDistances(srv.locations), srv.distances)
	srv.saveLocationsLocked(ctx)
}

// snapshotContext bounds a snapshot write. It ignores the caller's cancellation so a
// dropped request cannot leave the snapshot behind the in-memory state.
func (srv *tripService) snapshotContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), srv.remoteTimeout)
}

func (srv *tripService) saveLocationsLocked(ctx context.Context) {
	saveCtx, cancel := srv.snapshotContext(ctx)
	defer cancel()

	if err := srv.snapshots.SaveLocations(saveCtx, entity.CloneLocations(srv.locations)); err != nil {
		metrics.SnapshotWriteFailTotal.WithLabelValues("locations").Inc()
		srv.log(ctx).Warn("Failed to write location snapshot", slog.Any("error", err))
	}
}

func (srv *tripService) saveCategoriesLocked(ctx context.Context) {
	saveCtx, cancel := srv.snapshotContext(ctx)
	defer cancel()

	if err := srv.snapshots.SaveCategories(saveCtx, entity.CloneCategories(srv.categories)); err != nil {
		metrics.SnapshotWriteFailTotal.WithLabelValues("categories").Inc()
		srv.log(ctx).Warn("Failed to write category snapshot", slog.Any("error", err))
	}
}

// releaseCategoriesLocked clears the category on every location that references one of ids.
func (srv *tripService) releaseCategoriesLocked(ids []string) int {
	released := 0
	for i, loc := range srv.locations {
		if !slices.ContainsFunc(ids, loc.HasCategory) {
			continue
		}
		if released == 0 {
			srv.locations = slices.Clone(srv.locations)
		}
		srv.locations[i].CategoryID = nil
		released++
	}

	return released
}

// knownCategoryLocked returns a copy of id when it names an existing category, nil otherwise.
func (srv *tripService) knownCategoryLocked(ctx context.Context, id *string) *string {
	if id == nil {
		return nil
	}
	if indexOfCategory(srv.categories, *id) < 0 {
		srv.log(ctx).Debug("Unknown category dropped from location", slog.String("category_id", *id))
		return nil
	}

	return cloneString(id)
}

func (srv *tripService) dropDanglingCategoryRefsLocked() int {
	var dangling []string
	for _, loc := range srv.locations {
		if loc.CategoryID != nil && indexOfCategory(srv.categories, *loc.CategoryID) < 0 {
			dangling = append(dangling, *loc.CategoryID)
		}
	}
	if len(dangling) == 0 {
		return 0
	}

	return srv.releaseCategoriesLocked(dangling)
}

func (srv *tripService) newLocalLocationIDLocked() string {
	for {
		id := geo.GenerateID()
		if indexOfLocation(srv.locations, id) < 0 {
			return id
		}
	}
}

func (srv *tripService) newLocalCategoryIDLocked() string {
	for {
		id := geo.GenerateID()
		if indexOfCategory(srv.categories, id) < 0 {
			return id
		}
	}
}

// publish sends a change event. Failures are logged and never reach the caller.
func (srv *tripService) publish(ctx context.Context, kind, op, entityID string, outcome usecase.WriteOutcome) {
	if srv.publisher == nil {
		return
	}

	event := &service.TripChangedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OwnerID:   srv.ownerID,
		Kind:      kind,
		Op:        op,
		EntityID:  entityID,
		Outcome:   string(outcome),
	}

	if err := srv.publisher.PublishTripChanged(ctx, event); err != nil {
		metrics.EventPublishFailTotal.Inc()
		srv.log(ctx).Warn("Failed to publish trip change",
			slog.String("kind", kind),
			slog.String("op", op),
			slog.Any("error", err),
		)
	}
}

// retainRoutes copies driving data from previous onto fresh pairs with identical endpoints.
func retainRoutes(fresh, previous []entity.DistanceInfo) []entity.DistanceInfo {
	if len(previous) == 0 || len(fresh) == 0 {
		return fresh
	}

	enriched := make(map[string]entity.DistanceInfo, len(previous))
	for _, d := range previous {
		if d.IsEnriched() {
			enriched[d.PairKey()] = d
		}
	}

	for i, d := range fresh {
		prev, ok := enriched[d.PairKey()]
		if !ok || !prev.SameEndpoints(d) {
			continue
		}
		fresh[i] = d.WithRoute(entity.Route{
			DistanceKm:  *prev.DrivingDistance,
			DurationSec: *prev.DrivingDuration,
			Geometry:    prev.RouteGeometry,
		})
	}

	return fresh
}

func ignoreNotFound(err error) error {
	if errors.Is(err, repository.ErrLocationNotFound) || errors.Is(err, repository.ErrCategoryNotFound) {
		return nil
	}

	return err
}

func indexOfLocation(locations []entity.Location, id string) int {
	return slices.IndexFunc(locations, func(loc entity.Location) bool { return loc.ID == id })
}

func indexOfCategory(categories []entity.Category, id string) int {
	return slices.IndexFunc(categories, func(cat entity.Category) bool { return cat.ID == id })
}

func locationIDs(locations []entity.Location) []string {
	ids := make([]string, len(locations))
	for i, loc := range locations {
		ids[i] = loc.ID
	}

	return ids
}

func categoryIDs(categories []entity.Category) []string {
	ids := make([]string, len(categories))
	for i, cat := range categories {
		ids[i] = cat.ID
	}

	return ids
}

// uniqueLocations keeps the first record of every id.
func uniqueLocations(locations []entity.Location) []entity.Location {
	seen := make(map[string]struct{}, len(locations))

	return slices.DeleteFunc(locations, func(loc entity.Location) bool {
		if _, ok := seen[loc.ID]; ok || loc.ID == "" {
			return true
		}
		seen[loc.ID] = struct{}{}

		return false
	})
}

// uniqueCategories keeps the first record of every id.
func uniqueCategories(categories []entity.Category) []entity.Category {
	seen := make(map[string]struct{}, len(categories))

	return slices.DeleteFunc(categories, func(cat entity.Category) bool {
		if _, ok := seen[cat.ID]; ok || cat.ID == "" {
			return true
		}
		seen[cat.ID] = struct{}{}

		return false
	})
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	dup := *s

	return &dup
}
