package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"tripmap/config"
	"tripmap/internal/domain/service"
	"tripmap/internal/infra/directions"
	logs "tripmap/internal/infra/log"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func runRoute(ctx context.Context, out io.Writer, from, to orb.Point, provider string) error {
	var resolver service.RouteResolver

	app := fx.New(
		fx.NopLogger,
		fx.Provide(config.New, logs.New),
		fx.Decorate(func(cfg *config.Config) *config.Config {
			return overrideProvider(cfg, provider)
		}),
		directions.Module,
		fx.Populate(&resolver),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build route resolver")
	}

	start := time.Now()
	route, err := resolver.ResolveRoute(ctx, from, to)
	if err != nil {
		return errors.Wrap(err, "failed to resolve route")
	}

	fmt.Fprintf(out, "distance: %.3f km\n", route.DistanceKm)
	fmt.Fprintf(out, "duration: %s\n", (time.Duration(route.DurationSec) * time.Second).Round(time.Second))
	fmt.Fprintf(out, "points:   %d\n", len(route.Geometry))
	fmt.Fprintf(out, "took:     %s\n", time.Since(start).Round(time.Millisecond))

	return nil
}

// overrideProvider returns a copy of cfg using the given directions provider.
func overrideProvider(cfg *config.Config, provider string) *config.Config {
	if provider == "" {
		return cfg
	}

	dup := *cfg
	directionsCfg := config.DirectionsConfig{}
	if cfg.Directions != nil {
		directionsCfg = *cfg.Directions
	}
	directionsCfg.Provider = provider
	dup.Directions = &directionsCfg

	return &dup
}

// parsePoint parses "lng,lat".
func parsePoint(raw string) (orb.Point, error) {
	lngText, latText, ok := strings.Cut(raw, ",")
	if !ok {
		return orb.Point{}, errors.Errorf("expected lng,lat, got %q", raw)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(lngText), 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "longitude")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "latitude")
	}

	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return orb.Point{}, errors.Errorf("coordinate out of range: %v,%v", lng, lat)
	}

	return orb.Point{lng, lat}, nil
}
