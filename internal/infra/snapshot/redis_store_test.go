package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripmap/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values map[string]string
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))

	return redis.NewStatusResult("OK", nil)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	client := newFakeRedis()
	store := NewRedisStore(client, "", "trip-a")
	ctx := context.Background()

	require.NoError(t, store.SaveLocations(ctx, sampleLocations()))
	assert.Contains(t, client.values, "tripmap:trip-a:locations")

	locations, err := store.LoadLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleLocations(), locations)
}

func TestRedisStore_OwnersDoNotShareKeys(t *testing.T) {
	client := newFakeRedis()
	ctx := context.Background()

	require.NoError(t, NewRedisStore(client, "app", "trip-a").SaveCategories(ctx, []entity.Category{{ID: "C1", Name: "Food"}}))

	categories, err := NewRedisStore(client, "app", "trip-b").LoadCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestRedisStore_Degrades(t *testing.T) {
	t.Run("malformed value", func(t *testing.T) {
		client := newFakeRedis()
		client.values["tripmap:trip-a:categories"] = "42"
		store := NewRedisStore(client, "", "trip-a")

		categories, err := store.LoadCategories(context.Background())
		require.ErrorIs(t, err, ErrMalformed)
		assert.Equal(t, []entity.Category{}, categories)
	})

	t.Run("connection error", func(t *testing.T) {
		client := newFakeRedis()
		client.err = errors.New("dial tcp: connection refused")
		store := NewRedisStore(client, "", "trip-a")

		locations, err := store.LoadLocations(context.Background())
		require.Error(t, err)
		assert.Equal(t, []entity.Location{}, locations)
		require.Error(t, store.SaveLocations(context.Background(), sampleLocations()))
	})
}
