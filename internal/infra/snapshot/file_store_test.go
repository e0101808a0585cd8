package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tripmap/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLocations() []entity.Location {
	categoryID := "C1"

	return []entity.Location{
		{ID: "L1", Name: "Harbor", Coordinates: orb.Point{13.4, 52.5}, CategoryID: &categoryID},
		{ID: "L2", Name: "Castle", Coordinates: orb.Point{-3.2, 55.9}},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.SaveLocations(ctx, sampleLocations()))
	require.NoError(t, store.SaveCategories(ctx, []entity.Category{{ID: "C1", Name: "Food", Color: "#f00"}}))

	locations, err := store.LoadLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleLocations(), locations)

	categories, err := store.LoadCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.Category{{ID: "C1", Name: "Food", Color: "#f00"}}, categories)
}

func TestFileStore_SnapshotsAreIndependent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.SaveLocations(ctx, sampleLocations()))

	categories, err := store.LoadCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
	assert.NotNil(t, categories)
}

func TestFileStore_MissingSnapshotIsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "not", "created"))
	require.NoError(t, err)

	locations, err := store.LoadLocations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.Location{}, locations)
}

func TestFileStore_MalformedSnapshotIsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locations.json"), []byte("{not json"), 0o644))

	locations, err := store.LoadLocations(context.Background())
	require.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, []entity.Location{}, locations)
}

func TestFileStore_EmptyListOverwrites(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.SaveLocations(ctx, sampleLocations()))
	require.NoError(t, store.SaveLocations(ctx, nil))

	raw, err := os.ReadFile(filepath.Join(dir, "locations.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestResolveDir_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	resolved, err := resolveDir("~/trips")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "trips"), resolved)
}
