package postgres

import (
	"context"
	"testing"

	"tripmap/internal/domain/entity"
	"tripmap/internal/domain/repository"
	"tripmap/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestLocationMapping_RoundTrip(t *testing.T) {
	location := entity.Location{
		ID:          "L1",
		Name:        "Harbor",
		Coordinates: orb.Point{13.404954, 52.520008},
		CategoryID:  strPtr("C1"),
	}

	locationM := fromLocationDomain("trip-a", location)

	assert.Equal(t, "trip-a", locationM.OwnerID)
	assert.InDelta(t, 13.404954, locationM.Longitude, 1e-12)
	assert.InDelta(t, 52.520008, locationM.Latitude, 1e-12)
	assert.Equal(t, location, toLocationDomain(locationM))

	locationM.CategoryID = nil
	assert.Nil(t, toLocationDomain(locationM).CategoryID)
	assert.Equal(t, entity.Location{}, toLocationDomain(nil))
}

func TestLocationUpdates(t *testing.T) {
	tests := []struct {
		name  string
		patch entity.LocationPatch
		want  map[string]any
	}{
		{
			name:  "empty",
			patch: entity.LocationPatch{},
			want:  map[string]any{},
		},
		{
			name:  "name and coordinates",
			patch: entity.LocationPatch{Name: strPtr("Castle"), Coordinates: &orb.Point{1, 2}},
			want:  map[string]any{"name": "Castle", "longitude": 1.0, "latitude": 2.0},
		},
		{
			name:  "new category",
			patch: entity.LocationPatch{CategoryID: strPtr("C2")},
			want:  map[string]any{"category_id": "C2"},
		},
		{
			name:  "clear wins over new category",
			patch: entity.LocationPatch{CategoryID: strPtr("C2"), ClearCategory: true},
			want:  map[string]any{"category_id": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locationUpdates(tt.patch))
		})
	}
}

func TestRepositories_WithoutDatabase(t *testing.T) {
	ctx := context.Background()
	locations := NewLocationRepository(nil)
	categories := NewCategoryRepository(nil, NewTransactionManager(nil))

	_, err := locations.FindLocationsByOwner(ctx, "trip-a")
	require.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = locations.CreateLocation(ctx, "trip-a", entity.Location{Name: "Harbor"})
	require.ErrorIs(t, err, repository.ErrStoreUnavailable)

	require.ErrorIs(t, locations.UpdateLocation(ctx, "L1", entity.LocationPatch{Name: strPtr("x")}), repository.ErrStoreUnavailable)
	require.ErrorIs(t, locations.DeleteLocation(ctx, "L1"), repository.ErrStoreUnavailable)
	require.ErrorIs(t, locations.ClearCategoryReferences(ctx, "C1"), repository.ErrStoreUnavailable)

	_, err = categories.FindCategoriesByOwner(ctx, "trip-a")
	require.ErrorIs(t, err, repository.ErrStoreUnavailable)
	require.ErrorIs(t, categories.DeleteCategory(ctx, "C1"), repository.ErrStoreUnavailable)

	err = NewTransactionManager(nil).Execute(ctx, func(repository.RepositoryFactory) error { return nil })
	require.ErrorIs(t, err, repository.ErrStoreUnavailable)
}

func TestCategoryMapping(t *testing.T) {
	categoryM := fromCategoryDomain("trip-a", entity.Category{ID: "C1", Name: "Food", Color: "#f00"})

	assert.Equal(t, &model.CategoryModel{ID: "C1", OwnerID: "trip-a", Name: "Food", Color: "#f00"}, categoryM)
	assert.Equal(t, entity.Category{ID: "C1", Name: "Food", Color: "#f00"}, toCategoryDomain(categoryM))
	assert.Equal(t, map[string]any{"color": "#0f0"}, categoryUpdates(entity.CategoryPatch{Color: strPtr("#0f0")}))
}
