package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tripmap/config"
	"tripmap/internal/domain/entity"
	"tripmap/internal/domain/service"
	mockRepo "tripmap/internal/mocks/repository"
	mockService "tripmap/internal/mocks/service"
	"tripmap/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRemoteDown = errors.New("remote store unreachable")

type tripFixture struct {
	locationRepo *mockRepo.MockLocationRepository
	categoryRepo *mockRepo.MockCategoryRepository
	resolver     *mockService.MockRouteResolver
	snapshots    *mockService.MockSnapshotStore
	publisher    *mockService.MockEventPublisher
	service      usecase.TripUsecase

	mu              sync.Mutex
	savedLocations  []entity.Location
	savedCategories []entity.Category
	locationWrites  int
	categoryWrites  int
}

func newTripFixture(t *testing.T) *tripFixture {
	t.Helper()

	f := &tripFixture{
		locationRepo: mockRepo.NewMockLocationRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		resolver:     mockService.NewMockRouteResolver(t),
		snapshots:    mockService.NewMockSnapshotStore(t),
		publisher:    mockService.NewMockEventPublisher(t),
	}

	f.snapshots.EXPECT().SaveLocations(mock.Anything, mock.Anything).
		Run(func(_ context.Context, locations []entity.Location) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.savedLocations = locations
			f.locationWrites++
		}).
		Return(nil).Maybe()
	f.snapshots.EXPECT().SaveCategories(mock.Anything, mock.Anything).
		Run(func(_ context.Context, categories []entity.Category) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.savedCategories = categories
			f.categoryWrites++
		}).
		Return(nil).Maybe()
	f.publisher.EXPECT().PublishTripChanged(mock.Anything, mock.Anything).Return(nil).Maybe()

	f.service = NewTripService(TripServiceParams{
		Config:       &config.Config{},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		LocationRepo: f.locationRepo,
		CategoryRepo: f.categoryRepo,
		Resolver:     f.resolver,
		Snapshots:    f.snapshots,
		Publisher:    f.publisher,
	})

	return f
}

// restore seeds the service through a successful remote load.
func (f *tripFixture) restore(t *testing.T, locations []entity.Location, categories []entity.Category) {
	t.Helper()

	f.locationRepo.EXPECT().FindLocationsByOwner(mock.Anything, entity.DefaultOwnerID).Return(locations, nil).Once()
	f.categoryRepo.EXPECT().FindCategoriesByOwner(mock.Anything, entity.DefaultOwnerID).Return(categories, nil).Once()
	if len(locations) == 0 {
		f.snapshots.EXPECT().LoadLocations(mock.Anything).Return(nil, nil).Once()
	}
	if len(categories) == 0 {
		f.snapshots.EXPECT().LoadCategories(mock.Anything).Return(nil, nil).Once()
	}

	f.service.Restore(context.Background())
}

func (f *tripFixture) lastSavedLocations() []entity.Location {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.savedLocations
}

func (f *tripFixture) lastSavedCategories() []entity.Category {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.savedCategories
}

func ptr[T any](v T) *T {
	return &v
}

func threeLocations() []entity.Location {
	return []entity.Location{
		{ID: "L1", Name: "Harbor", Coordinates: orb.Point{0, 0}},
		{ID: "L2", Name: "Castle", Coordinates: orb.Point{0, 1}},
		{ID: "L3", Name: "Market", Coordinates: orb.Point{1, 0}},
	}
}

func validRoute(distanceKm float64) *entity.Route {
	return &entity.Route{
		DistanceKm:  distanceKm,
		DurationSec: distanceKm * 60,
		Geometry:    orb.LineString{{0, 0}, {0.5, 0.5}, {0, 1}},
	}
}

func TestTripService_StartsEmpty(t *testing.T) {
	f := newTripFixture(t)

	assert.Empty(t, f.service.Locations())
	assert.Empty(t, f.service.Categories())
	assert.Empty(t, f.service.Distances())
	assert.False(t, f.service.Busy())
}

func TestTripService_AddLocation_Persisted(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	f.locationRepo.EXPECT().
		CreateLocation(mock.Anything, entity.DefaultOwnerID, mock.AnythingOfType("entity.Location")).
		RunAndReturn(func(_ context.Context, _ string, loc entity.Location) (*entity.Location, error) {
			loc.ID = "srv-1"
			return &loc, nil
		})

	loc, outcome := f.service.AddLocation(ctx, usecase.AddLocationInput{
		Name:        "Harbor",
		Coordinates: orb.Point{13.4, 52.5},
	})

	assert.Equal(t, usecase.OutcomePersisted, outcome)
	assert.Equal(t, "srv-1", loc.ID)
	assert.Equal(t, "Harbor", loc.Name)
	require.Len(t, f.service.Locations(), 1)
	assert.Equal(t, []entity.Location{loc}, f.lastSavedLocations())
}

func TestTripService_AddLocation_FallsBackToLocalID(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()
	f.restore(t, nil, []entity.Category{{ID: "C1", Name: "Food"}})

	f.locationRepo.EXPECT().
		CreateLocation(mock.Anything, entity.DefaultOwnerID, mock.Anything).
		Return(nil, errRemoteDown)

	loc, outcome := f.service.AddLocation(ctx, usecase.AddLocationInput{
		Name:        "Harbor",
		Coordinates: orb.Point{13.4, 52.5},
		CategoryID:  ptr("C1"),
	})

	assert.Equal(t, usecase.OutcomeLocalOnly, outcome)
	assert.Len(t, loc.ID, 12)
	require.NotNil(t, loc.CategoryID)
	assert.Equal(t, "C1", *loc.CategoryID)

	locations := f.service.Locations()
	require.Len(t, locations, 1)
	assert.Equal(t, loc.ID, locations[0].ID)
	assert.Equal(t, locations, f.lastSavedLocations())
}

func TestTripService_AddLocation_NilRecordFallsBack(t *testing.T) {
	f := newTripFixture(t)

	f.locationRepo.EXPECT().CreateLocation(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	loc, outcome := f.service.AddLocation(context.Background(), usecase.AddLocationInput{Name: "A"})

	assert.Equal(t, usecase.OutcomeLocalOnly, outcome)
	assert.NotEmpty(t, loc.ID)
}

func TestTripService_AddLocation_DuplicateRemoteIDGetsLocalID(t *testing.T) {
	f := newTripFixture(t)

	f.locationRepo.EXPECT().
		CreateLocation(mock.Anything, entity.DefaultOwnerID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, loc entity.Location) (*entity.Location, error) {
			loc.ID = "dup"
			return &loc, nil
		}).Twice()

	first, firstOutcome := f.service.AddLocation(context.Background(), usecase.AddLocationInput{Name: "A"})
	second, secondOutcome := f.service.AddLocation(context.Background(), usecase.AddLocationInput{Name: "B"})

	assert.Equal(t, usecase.OutcomePersisted, firstOutcome)
	assert.Equal(t, "dup", first.ID)
	assert.Equal(t, usecase.OutcomeLocalOnly, secondOutcome)
	assert.NotEqual(t, "dup", second.ID)
	assert.Len(t, second.ID, 12)

	locations := f.service.Locations()
	require.Len(t, locations, 2)
	assert.NotEqual(t, locations[0].ID, locations[1].ID)
	assert.Len(t, f.service.Distances(), 1)
}

func TestTripService_AddLocation_DropsUnknownCategory(t *testing.T) {
	f := newTripFixture(t)
	f.restore(t, nil, []entity.Category{{ID: "C1", Name: "Food"}})

	f.locationRepo.EXPECT().
		CreateLocation(mock.Anything, entity.DefaultOwnerID, mock.MatchedBy(func(loc entity.Location) bool {
			return loc.CategoryID == nil
		})).
		Return(nil, errRemoteDown)

	loc, _ := f.service.AddLocation(context.Background(), usecase.AddLocationInput{
		Name:       "Harbor",
		CategoryID: ptr("C9"),
	})

	assert.Nil(t, loc.CategoryID)
	require.Len(t, f.service.Locations(), 1)
	assert.Nil(t, f.service.Locations()[0].CategoryID)
}

func TestTripService_AddLocation_PublishesEvent(t *testing.T) {
	f := newTripFixture(t)
	publisher := mockService.NewMockEventPublisher(t)
	f.service.(*tripService).publisher = publisher

	f.locationRepo.EXPECT().CreateLocation(mock.Anything, mock.Anything, mock.Anything).Return(nil, errRemoteDown)
	publisher.EXPECT().
		PublishTripChanged(mock.Anything, mock.MatchedBy(func(event *service.TripChangedEvent) bool {
			return event.Kind == service.ChangeKindLocation &&
				event.Op == service.ChangeOpCreated &&
				event.Outcome == string(usecase.OutcomeLocalOnly) &&
				event.OwnerID == entity.DefaultOwnerID
		})).
		Return(errors.New("broker down"))

	_, outcome := f.service.AddLocation(context.Background(), usecase.AddLocationInput{Name: "A"})

	assert.Equal(t, usecase.OutcomeLocalOnly, outcome)
	assert.Len(t, f.service.Locations(), 1)
}

func TestTripService_Distances_FollowLocationList(t *testing.T) {
	f := newTripFixture(t)
	f.restore(t, threeLocations(), nil)

	distances := f.service.Distances()
	require.Len(t, distances, 3)
	assert.Equal(t, "L1|L2", distances[0].PairKey())
	assert.Equal(t, "L1|L3", distances[1].PairKey())
	assert.Equal(t, "L2|L3", distances[2].PairKey())
	assert.InDelta(t, 111.2, distances[0].DirectDistance, 0.1)

	f.locationRepo.EXPECT().DeleteLocation(mock.Anything, "L2").Return(nil)
	f.locationRepo.EXPECT().DeleteLocation(mock.Anything, "L3").Return(nil)

	assert.Equal(t, usecase.OutcomePersisted, f.service.RemoveLocation(context.Background(), "L2"))
	assert.Len(t, f.service.Distances(), 1)

	assert.Equal(t, usecase.OutcomePersisted, f.service.RemoveLocation(context.Background(), "L3"))
	assert.Empty(t, f.service.Distances())
}

func TestTripService_RemoveLocation_RemoteFailureStillRemovesLocally(t *testing.T) {
	f := newTripFixture(t)
	f.restore(t, threeLocations(), nil)

	f.locationRepo.EXPECT().DeleteLocation(mock.Anything, "L1").Return(errRemoteDown)

	outcome := f.service.RemoveLocation(context.Background(), "L1")

	assert.Equal(t, usecase.OutcomeLocalOnly, outcome)
	assert.Len(t, f.service.Locations(), 2)
	assert.Len(t, f.lastSavedLocations(), 2)
}

func TestTripService_UpdateLocation(t *testing.T) {
	t.Run("merges patch and recomputes distances", func(t *testing.T) {
		f := newTripFixture(t)
		f.restore(t, threeLocations(), nil)

		patch := entity.LocationPatch{Name: ptr("Old Harbor"), Coordinates: &orb.Point{0, 2}}
		f.locationRepo.EXPECT().UpdateLocation(mock.Anything, "L1", patch).Return(nil)

		updated, outcome := f.service.UpdateLocation(context.Background(), "L1", patch)

		require.NotNil(t, updated)
		assert.Equal(t, usecase.OutcomePersisted, outcome)
		assert.Equal(t, "Old Harbor", updated.Name)
		assert.Equal(t, orb.Point{0, 2}, updated.Coordinates)
		assert.InDelta(t, 111.2, f.service.Distances()[0].DirectDistance, 0.1)
		assert.Equal(t, "Old Harbor", f.service.Distances()[0].From.Name)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		f := newTripFixture(t)
		f.restore(t, threeLocations(), nil)

		patch := entity.LocationPatch{Name: ptr("Ghost")}
		f.locationRepo.EXPECT().UpdateLocation(mock.Anything, "missing", patch).Return(errRemoteDown)

		updated, outcome := f.service.UpdateLocation(context.Background(), "missing", patch)

		assert.Nil(t, updated)
		assert.Equal(t, usecase.OutcomeLocalOnly, outcome)
		assert.Len(t, f.service.Locations(), 3)
	})

	t.Run("unknown category is dropped", func(t *testing.T) {
		f := newTripFixture(t)
		locations := threeLocations()
		locations[0].CategoryID = ptr("C1")
		f.restore(t, locations, []entity.Category{{ID: "C1", Name: "Food"}})

		f.locationRepo.EXPECT().
			UpdateLocation(mock.Anything, "L1", entity.LocationPatch{Name: ptr("Pier")}).
			Return(nil)

		updated, outcome := f.service.UpdateLocation(context.Background(), "L1",
			entity.LocationPatch{Name: ptr("Pier"), CategoryID: ptr("C9")})

		require.NotNil(t, updated)
		assert.Equal(t, usecase.OutcomePersisted, outcome)
		assert.Equal(t, "Pier", updated.Name)
		require.NotNil(t, updated.CategoryID)
		assert.Equal(t, "C1", *updated.CategoryID)
	})

	t.Run("only an unknown category changes nothing", func(t *testing.T) {
		f := newTripFixture(t)
		f.restore(t, threeLocations(), nil)

		updated, outcome := f.service.UpdateLocation(context.Background(), "L2",
			entity.LocationPatch{CategoryID: ptr("C9")})

		require.NotNil(t, updated)
		assert.Equal(t, usecase.OutcomePersisted, outcome)
		assert.Nil(t, updated.CategoryID)
		f.locationRepo.AssertNotCalled(t, "UpdateLocation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("clear category", func(t *testing.T) {
		f := newTripFixture(t)
		locations := threeLocations()
		locations[0].CategoryID = ptr("C1")
		f.restore(t, locations, []entity.Category{{ID: "C1", Name: "Food"}})

		patch := entity.LocationPatch{ClearCategory: true}
		f.locationRepo.EXPECT().UpdateLocation(mock.Anything, "L1", patch).Return(nil)

		updated, _ := f.service.UpdateLocation(context.Background(), "L1", patch)

		require.NotNil(t, updated)
		assert.Nil(t, updated.CategoryID)
	})
}

func TestTripService_ClearLocations_PartialFailure(t *testing.T) {
	f := newTripFixture(t)
	f.restore(t, threeLocations(), nil)

	f.locationRepo.EXPECT().DeleteLocation(mock.Anything, "L1").Return(nil)
	f.locationRepo.EXPECT().DeleteLocation(mock.Anything, "L2").Return(errRemoteDown)
	f.locationRepo.EXPECT().DeleteLocation(mock.Anything, "L3").Return(nil)

	outcome := f.service.ClearLocations(context.Background())

	assert.Equal(t, usecase.OutcomeLocalOnly, outcome)
	assert.Empty(t, f.service.Locations())
	assert.Empty(t, f.service.Distances())
	assert.Empty(t, f.lastSavedLocations())
}

func TestTripService_AddCategory(t *testing.T) {
	f := newTripFixture(t)

	f.categoryRepo.EXPECT().
		CreateCategory(mock.Anything, entity.DefaultOwnerID, entity.Category{Name: "Food", Color: "#ff0000"}).
		Return(&entity.Category{ID: "C1", Name: "Food", Color: "#ff0000"}, nil).Once()
	f.categoryRepo.EXPECT().
		CreateCategory(mock.Anything, entity.DefaultOwnerID, entity.Category{Name: "Sights"}).
		Return(nil, errRemoteDown).Once()

	food, outcome := f.service.AddCategory(context.Background(), usecase.AddCategoryInput{Name: "Food", Color: "#ff0000"})
	assert.Equal(t, usecase.OutcomePersisted, outcome)
	assert.Equal(t, "C1", food.ID)

	sights, outcome := f.service.AddCategory(context.Background(), usecase.AddCategoryInput{Name: "Sights"})
	assert.Equal(t, usecase.OutcomeLocalOnly, outcome)
	assert.Len(t, sights.ID, 12)

	assert.Equal(t, []entity.Category{food, sights}, f.service.Categories())
	assert.Equal(t, []entity.Category{food, sights}, f.lastSavedCategories())
}

func TestTripService_AddCategory_DuplicateRemoteIDGetsLocalID(t *testing.T) {
	f := newTripFixture(t)
	f.restore(t, nil, []entity.Category{{ID: "C1", Name: "Food"}})

	f.categoryRepo.EXPECT().
		CreateCategory(mock.Anything, entity.DefaultOwnerID, entity.Category{Name: "Sights"}).
		Return(&entity.Category{ID: "C1", Name: "Sights"}, nil)

	sights, outcome := f.service.AddCategory(context.Background(), usecase.AddCategoryInput{Name: "Sights"})

	assert.Equal(t, usecase.OutcomeLocalOnly, outcome)
	assert.NotEqual(t, "C1", sights.ID)

	categories := f.service.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, sights, categories[1])
}

func TestTripService_RemoveCategory_ClearsReferencesWhenRemoteFails(t *testing.T) {
	f := newTripFixture(t)
	locations := threeLocations()
	locations[0].CategoryID = ptr("C1")
	locations[1].CategoryID = ptr("C2")
	locations[2].CategoryID = ptr("C1")
	f.restore(t, locations, []entity.Category{{ID: "C1", Name: "Food"}, {ID: "C2", Name: "Sights"}})

	f.categoryRepo.EXPECT().DeleteCategory(mock.Anything, "C1").Return(errRemoteDown)

	outcome := f.service.RemoveCategory(context.Background(), "C1")

	assert.Equal(t, usecase.OutcomeLocalOnly, outcome)
	assert.Equal(t, []entity.Category{{ID: "C2", Name: "Sights"}}, f.service.Categories())

	got := f.service.Locations()
	assert.Nil(t, got[0].CategoryID)
	require.NotNil(t, got[1].CategoryID)
	assert.Equal(t, "C2", *got[1].CategoryID)
	assert.Nil(t, got[2].CategoryID)

	assert.Equal(t, got, f.lastSavedLocations())
	assert.Equal(t, []entity.Category{{ID: "C2", Name: "Sights"}}, f.lastSavedCategories())
}

func TestTripService_UpdateCategory(t *testing.T) {
	f := newTripFixture(t)
	f.restore(t, nil, []entity.Category{{ID: "C1", Name: "Food"}})

	patch := entity.CategoryPatch{Color: ptr("#00ff00")}
	f.categoryRepo.EXPECT().UpdateCategory(mock.Anything, "C1", patch).Return(errRemoteDown)

	updated, outcome := f.service.UpdateCategory(context.Background(), "C1", patch)

	require.NotNil(t, updated)
	assert.Equal(t, usecase.OutcomeLocalOnly, outcome)
	assert.Equal(t, entity.Category{ID: "C1", Name: "Food", Color: "#00ff00"}, *updated)
	assert.Equal(t, []entity.Category{*updated}, f.lastSavedCategories())
}

func TestTripService_ClearCategories_UncategorizesEveryLocation(t *testing.T) {
	f := newTripFixture(t)
	locations := threeLocations()
	locations[0].CategoryID = ptr("C1")
	locations[1].CategoryID = ptr("C2")
	f.restore(t, locations, []entity.Category{{ID: "C1", Name: "Food"}, {ID: "C2", Name: "Sights"}})

	f.categoryRepo.EXPECT().DeleteCategory(mock.Anything, "C1").Return(nil)
	f.categoryRepo.EXPECT().DeleteCategory(mock.Anything, "C2").Return(nil)

	outcome := f.service.ClearCategories(context.Background())

	assert.Equal(t, usecase.OutcomePersisted, outcome)
	assert.Empty(t, f.service.Categories())
	for _, loc := range f.service.Locations() {
		assert.Nil(t, loc.CategoryID)
	}
	assert.Empty(t, f.lastSavedCategories())
}

func TestTripService_Restore(t *testing.T) {
	t.Run("falls back to snapshot per kind", func(t *testing.T) {
		f := newTripFixture(t)
		snapshot := threeLocations()[:2]

		f.locationRepo.EXPECT().FindLocationsByOwner(mock.Anything, entity.DefaultOwnerID).Return(nil, errRemoteDown)
		f.snapshots.EXPECT().LoadLocations(mock.Anything).Return(snapshot, nil)
		f.categoryRepo.EXPECT().FindCategoriesByOwner(mock.Anything, entity.DefaultOwnerID).Return(nil, errRemoteDown)
		f.snapshots.EXPECT().LoadCategories(mock.Anything).Return(nil, errors.New("malformed snapshot"))

		report := f.service.Restore(context.Background())

		assert.Equal(t, usecase.SourceSnapshot, report.Locations)
		assert.Equal(t, usecase.SourceEmpty, report.Categories)
		assert.Equal(t, 2, report.LocationCount)
		assert.Equal(t, 1, report.DistanceCount)
		assert.Equal(t, snapshot, f.service.Locations())
		assert.Empty(t, f.service.Categories())
		assert.Zero(t, f.locationWrites)
	})

	t.Run("empty remote result uses snapshot", func(t *testing.T) {
		f := newTripFixture(t)

		f.locationRepo.EXPECT().FindLocationsByOwner(mock.Anything, mock.Anything).Return([]entity.Location{}, nil)
		f.snapshots.EXPECT().LoadLocations(mock.Anything).Return(threeLocations(), nil)
		f.categoryRepo.EXPECT().FindCategoriesByOwner(mock.Anything, mock.Anything).Return(nil, nil)
		f.snapshots.EXPECT().LoadCategories(mock.Anything).Return(nil, nil)

		report := f.service.Restore(context.Background())

		assert.Equal(t, usecase.SourceSnapshot, report.Locations)
		assert.Len(t, f.service.Distances(), 3)
	})

	t.Run("remote load refreshes snapshot", func(t *testing.T) {
		f := newTripFixture(t)
		f.restore(t, threeLocations(), []entity.Category{{ID: "C1", Name: "Food"}})

		assert.Equal(t, threeLocations(), f.lastSavedLocations())
		assert.Equal(t, []entity.Category{{ID: "C1", Name: "Food"}}, f.lastSavedCategories())
	})

	t.Run("drops dangling category references and duplicates", func(t *testing.T) {
		f := newTripFixture(t)
		locations := append(threeLocations(), entity.Location{ID: "L1", Name: "Duplicate"})
		locations[0].CategoryID = ptr("gone")

		f.restore(t, locations, []entity.Category{{ID: "C1", Name: "Food"}})

		got := f.service.Locations()
		require.Len(t, got, 3)
		assert.Equal(t, "Harbor", got[0].Name)
		assert.Nil(t, got[0].CategoryID)
	})
}

func TestTripService_ReadViewsAreCopies(t *testing.T) {
	f := newTripFixture(t)
	locations := threeLocations()
	locations[0].CategoryID = ptr("C1")
	f.restore(t, locations, []entity.Category{{ID: "C1", Name: "Food"}})

	view := f.service.Locations()
	view[0].Name = "mutated"
	*view[0].CategoryID = "mutated"

	again := f.service.Locations()
	assert.Equal(t, "Harbor", again[0].Name)
	assert.Equal(t, "C1", *again[0].CategoryID)

	f.resolver.EXPECT().ResolveRoute(mock.Anything, mock.Anything, mock.Anything).Return(validRoute(130), nil).Times(3)
	f.service.FetchDrivingRoutes(context.Background(), usecase.RouteQuery{})

	distances := f.service.Distances()
	require.True(t, distances[0].IsEnriched())
	*distances[0].DrivingDistance = 999
	*distances[0].DrivingDuration = 999
	distances[0].RouteGeometry[0] = orb.Point{9, 9}
	*distances[0].From.CategoryID = "mutated"

	fresh := f.service.Distances()[0]
	assert.InDelta(t, 130, *fresh.DrivingDistance, 1e-9)
	assert.InDelta(t, 130*60, *fresh.DrivingDuration, 1e-9)
	assert.Equal(t, orb.Point{0, 0}, fresh.RouteGeometry[0])
	assert.Equal(t, "C1", *fresh.From.CategoryID)

	snapshot := f.service.Snapshot()
	assert.Len(t, snapshot.Locations, 3)
	assert.Len(t, snapshot.Categories, 1)
	assert.Len(t, snapshot.Distances, 3)
	assert.False(t, snapshot.Busy)
}

func TestTripService_SnapshotWriteIsBounded(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	snapshots := mockService.NewMockSnapshotStore(t)
	svc := NewTripService(TripServiceParams{
		Config:       &config.Config{Trip: &config.TripConfig{RemoteTimeout: 50 * time.Millisecond}},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		LocationRepo: locationRepo,
		CategoryRepo: mockRepo.NewMockCategoryRepository(t),
		Resolver:     mockService.NewMockRouteResolver(t),
		Snapshots:    snapshots,
	})

	locationRepo.EXPECT().CreateLocation(mock.Anything, mock.Anything, mock.Anything).Return(nil, errRemoteDown)
	snapshots.EXPECT().SaveLocations(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ []entity.Location) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			<-ctx.Done()

			return ctx.Err()
		}).Once()

	// a canceled caller must not skip the write, and a stalled store must not hold the lock forever
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	loc, outcome := svc.AddLocation(ctx, usecase.AddLocationInput{Name: "Harbor"})

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, usecase.OutcomeLocalOnly, outcome)
	assert.Equal(t, []entity.Location{loc}, svc.Locations())
}
