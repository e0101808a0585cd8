// Package directions selects the driving route resolver from configuration.
package directions

import (
	"log/slog"

	"tripmap/config"
	"tripmap/internal/domain/constants"
	"tripmap/internal/domain/service"
	"tripmap/internal/infra/directions/tiles"
	"tripmap/internal/infra/directions/webapi"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ResolverParams holds dependencies for RouteResolver, injected by Fx
type ResolverParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRouteResolver creates a RouteResolver based on configuration. The web API
// provider is the default.
func NewRouteResolver(params ResolverParams) (service.RouteResolver, error) {
	cfg := params.Config.Directions
	logger := params.Logger

	if cfg == nil {
		cfg = &config.DirectionsConfig{Provider: constants.DirectionsProviderWebAPI}
	}

	switch cfg.Provider {
	case "", constants.DirectionsProviderWebAPI:
		client := webapi.New(cfg, nil, logger)
		logger.Info("Using directions web API",
			slog.String("base_url", firstNonEmpty(cfg.BaseURL, webapi.DefaultBaseURL)),
			slog.String("profile", firstNonEmpty(cfg.Profile, webapi.DefaultProfile)),
		)

		return client, nil

	case constants.DirectionsProviderTiles:
		resolver, err := tiles.New(cfg.Tiles, logger)
		if err != nil {
			return nil, err
		}

		return resolver, nil

	default:
		return nil, errors.Errorf("unknown directions provider: %s", cfg.Provider)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// Module provides the directions FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRouteResolver),
)
