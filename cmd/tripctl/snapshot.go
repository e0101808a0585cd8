package main

import (
	"context"
	"encoding/json"
	"io"

	"tripmap/config"
	"tripmap/internal/domain/entity"
	"tripmap/internal/domain/service"
	logs "tripmap/internal/infra/log"
	"tripmap/internal/infra/snapshot"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type snapshotDump struct {
	Locations  []entity.Location `json:"locations,omitempty"`
	Categories []entity.Category `json:"categories,omitempty"`
}

func runSnapshot(ctx context.Context, out io.Writer, kind string) error {
	var store service.SnapshotStore

	app := fx.New(
		fx.NopLogger,
		fx.Provide(config.New, logs.New),
		snapshot.Module,
		fx.Populate(&store),
	)
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to open snapshot store")
	}
	defer func() { _ = app.Stop(context.Background()) }()

	return dumpSnapshot(ctx, out, store, kind)
}

func dumpSnapshot(ctx context.Context, out io.Writer, store service.SnapshotStore, kind string) error {
	var dump snapshotDump

	switch kind {
	case "locations", "all":
		dump.Locations, _ = store.LoadLocations(ctx)
		if kind == "locations" {
			break
		}

		fallthrough
	case "categories":
		dump.Categories, _ = store.LoadCategories(ctx)
	default:
		return errors.Errorf("unknown kind: %s", kind)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(dump))
}
