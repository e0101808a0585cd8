package main

import (
	"context"
	"log/slog"
	"os"

	"tripmap/config"
	"tripmap/internal/delivery"
	"tripmap/internal/delivery/api"
	"tripmap/internal/delivery/api/middleware"
	"tripmap/internal/delivery/api/router/handler"
	"tripmap/internal/domain/lifecycle"
	"tripmap/internal/infra/auth"
	"tripmap/internal/infra/directions"
	logs "tripmap/internal/infra/log"
	"tripmap/internal/infra/persistence/postgres"
	"tripmap/internal/infra/pubsub"
	"tripmap/internal/infra/qrcode"
	"tripmap/internal/infra/snapshot"
	"tripmap/internal/usecase"
	"tripmap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	TripUC     usecase.TripUsecase
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		snapshot.Module,
		directions.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewLocationRepository,
			postgres.NewCategoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTripService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewTripHandler,
			handler.NewLocationHandler,
			handler.NewCategoryHandler,
			handler.NewShareHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer restores the trip before any delivery accepts requests.
func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.RestoreTimeout)
			defer cancel()

			report := params.TripUC.Restore(ctx)
			params.Logger.Info("Trip restored",
				slog.String("locations_source", string(report.Locations)),
				slog.String("categories_source", string(report.Categories)),
				slog.Int("locations", report.LocationCount),
				slog.Int("categories", report.CategoryCount),
				slog.Int("distances", report.DistanceCount),
			)

			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))

						// Trigger graceful shutdown to execute all OnStop hooks
						if shutdownErr := params.Shutdown(); shutdownErr != nil {
							params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
							os.Exit(1)
						}
					}
				}()
			}

			return nil
		},
	})
}
