package snapshot

import (
	"context"
	"log/slog"

	"tripmap/config"
	"tripmap/internal/domain/constants"
	"tripmap/internal/domain/entity"
	"tripmap/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for SnapshotStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSnapshotStore creates a SnapshotStore based on configuration. The file driver is the default.
func NewSnapshotStore(params StoreParams) (service.SnapshotStore, error) {
	cfg := params.Config.Snapshot
	logger := params.Logger

	if cfg == nil {
		cfg = &config.SnapshotConfig{Driver: constants.SnapshotDriverFile}
	}

	switch cfg.Driver {
	case "", constants.SnapshotDriverFile:
		store, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, err
		}
		logger.Info("Using file snapshot store", slog.String("dir", store.Dir()))

		return store, nil

	case constants.SnapshotDriverRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis snapshot driver")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("Using redis snapshot store",
			slog.String("addr", cfg.Redis.Addr),
			slog.Int("db", cfg.Redis.DB),
		)

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				// An unreachable redis degrades to empty snapshots, it never blocks startup.
				if err := client.Ping(ctx).Err(); err != nil {
					logger.Warn("Redis snapshot store unreachable", slog.Any("error", err))
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				logger.Info("Closing redis snapshot store")

				return client.Close()
			},
		})

		return NewRedisStore(client, cfg.Redis.Prefix, params.Config.OwnerID(entity.DefaultOwnerID)), nil

	default:
		return nil, errors.Errorf("unknown snapshot driver: %s", cfg.Driver)
	}
}

// Module provides the snapshot FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSnapshotStore),
)
