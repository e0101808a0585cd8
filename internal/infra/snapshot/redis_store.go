package snapshot

import (
	"context"
	"time"

	"tripmap/internal/domain/constants"
	"tripmap/internal/domain/entity"
	"tripmap/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "tripmap"

// redisClient is the subset of *redis.Client the store uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisStore keeps each snapshot under "<prefix>:<owner>:<key>". Snapshots never expire.
type RedisStore struct {
	client redisClient
	prefix string
	owner  string
}

// NewRedisStore creates a Redis-backed snapshot store.
func NewRedisStore(client redisClient, prefix, ownerID string) *RedisStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &RedisStore{client: client, prefix: prefix, owner: ownerID}
}

func (s *RedisStore) SaveLocations(ctx context.Context, locations []entity.Location) error {
	data, err := encode(locations)
	if err != nil {
		return err
	}

	return s.set(ctx, constants.SnapshotKeyLocations, data)
}

func (s *RedisStore) SaveCategories(ctx context.Context, categories []entity.Category) error {
	data, err := encode(categories)
	if err != nil {
		return err
	}

	return s.set(ctx, constants.SnapshotKeyCategories, data)
}

func (s *RedisStore) LoadLocations(ctx context.Context) ([]entity.Location, error) {
	data, err := s.get(ctx, constants.SnapshotKeyLocations)
	if err != nil {
		return []entity.Location{}, err
	}

	return decodeLocations(data)
}

func (s *RedisStore) LoadCategories(ctx context.Context) ([]entity.Category, error) {
	data, err := s.get(ctx, constants.SnapshotKeyCategories)
	if err != nil {
		return []entity.Category{}, err
	}

	return decodeCategories(data)
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + s.owner + ":" + name
}

func (s *RedisStore) set(ctx context.Context, name string, data []byte) error {
	if err := s.client.Set(ctx, s.key(name), data, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s snapshot", name)
	}

	return nil
}

// get treats a missing key as an empty snapshot.
func (s *RedisStore) get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "redis get %s snapshot", name)
	}

	return data, nil
}
