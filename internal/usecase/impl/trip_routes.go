package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tripmap/internal/domain/entity"
	"tripmap/internal/domain/geo"
	"tripmap/internal/errors"
	"tripmap/internal/infra/metrics"
	"tripmap/internal/usecase"
)

var errInvalidRoute = errors.New("route has no drawable geometry")

// FetchDrivingRoutes resolves driving routes for one pair or for every pair and replaces
// the distance list once all calls settle. A batch that was overtaken by a newer batch or
// by a location change is discarded.
func (srv *tripService) FetchDrivingRoutes(ctx context.Context, query usecase.RouteQuery) usecase.RouteBatch {
	srv.mu.Lock()
	pairs, ok := srv.selectPairsLocked(ctx, query)
	if !ok {
		srv.mu.Unlock()
		return usecase.RouteBatch{Status: usecase.BatchSkipped}
	}
	srv.routeSeq++
	seq := srv.routeSeq
	revision := srv.revision
	srv.mu.Unlock()

	defer srv.track()()

	logger := srv.log(ctx).With(slog.Uint64("batch", seq), slog.Int("pairs", len(pairs)))
	logger.Debug("Fetching driving routes")

	results, enriched := srv.resolvePairs(ctx, pairs)
	batch := usecase.RouteBatch{
		Seq:       seq,
		Requested: len(pairs),
		Enriched:  enriched,
		Failed:    len(pairs) - enriched,
	}

	if ctx.Err() != nil {
		logger.Info("Route batch canceled", slog.Any("error", ctx.Err()))
		batch.Status = usecase.BatchCanceled

		return batch
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if seq != srv.routeSeq || revision != srv.revision {
		metrics.RouteEnrichmentTotal.WithLabelValues(metrics.EnrichmentStale).Inc()
		logger.Info("Discarding stale route batch",
			slog.Uint64("latest_batch", srv.routeSeq),
			slog.Bool("locations_changed", revision != srv.revision),
		)
		batch.Status = usecase.BatchStale

		return batch
	}

	srv.distances = results
	batch.Status = usecase.BatchApplied

	return batch
}

// selectPairsLocked picks the pairs a batch resolves.
func (srv *tripService) selectPairsLocked(ctx context.Context, query usecase.RouteQuery) ([]entity.DistanceInfo, bool) {
	if len(srv.locations) < 2 {
		return nil, false
	}

	if !query.IsSinglePair() {
		return geo.AllDirectDistances(srv.locations), true
	}

	fromIdx := indexOfLocation(srv.locations, query.FromID)
	toIdx := indexOfLocation(srv.locations, query.ToID)
	if fromIdx < 0 || toIdx < 0 || fromIdx == toIdx {
		srv.log(ctx).Info("Ignoring route request for an invalid pair",
			slog.String("from_id", query.FromID),
			slog.String("to_id", query.ToID),
		)

		return nil, false
	}

	return []entity.DistanceInfo{geo.PairDistance(srv.locations[fromIdx], srv.locations[toIdx])}, true
}

type routeResultWithIndex struct {
	index int
	route *entity.Route
	err   error
}

// resolvePairs enriches pairs on a bounded worker pool. Failed pairs stay direct-only.
func (srv *tripService) resolvePairs(ctx context.Context, pairs []entity.DistanceInfo) ([]entity.DistanceInfo, int) {
	results := entity.CloneDistances(pairs)

	pairCh := make(chan int, len(pairs))
	resultCh := make(chan routeResultWithIndex, len(pairs))

	workerGroup := srv.spawnRouteWorkers(ctx, srv.workerCount(len(pairs)), pairCh, resultCh, pairs)

	go dispatchRouteWork(ctx, pairCh, len(pairs))

	enriched := 0
	collectRouteResults(resultCh, workerGroup, func(res routeResultWithIndex) {
		if res.err != nil {
			metrics.RouteEnrichmentTotal.WithLabelValues(metrics.EnrichmentFailed).Inc()
			srv.log(ctx).Debug("Driving route unavailable, keeping direct distance",
				slog.String("pair", pairs[res.index].PairKey()),
				slog.Any("error", res.err),
			)

			return
		}

		metrics.RouteEnrichmentTotal.WithLabelValues(metrics.EnrichmentOK).Inc()
		results[res.index] = results[res.index].WithRoute(*res.route)
		enriched++
	})

	return results, enriched
}

func (srv *tripService) workerCount(pairCount int) int {
	if pairCount < srv.routeWorkers {
		return pairCount
	}

	return srv.routeWorkers
}

func (srv *tripService) spawnRouteWorkers(
	ctx context.Context,
	workerCount int,
	pairCh <-chan int,
	resultCh chan<- routeResultWithIndex,
	pairs []entity.DistanceInfo,
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for i := 0; i < workerCount; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range pairCh {
				if ctx.Err() != nil {
					return
				}

				route, err := srv.resolveRoute(ctx, pairs[idx])
				resultCh <- routeResultWithIndex{index: idx, route: route, err: err}
			}
		}()
	}

	return &workerGroup
}

func (srv *tripService) resolveRoute(ctx context.Context, pair entity.DistanceInfo) (*entity.Route, error) {
	start := time.Now()
	route, err := srv.resolver.ResolveRoute(ctx, pair.From.Coordinates, pair.To.Coordinates)
	metrics.RouteDurationMs.Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		return nil, err
	}
	if route == nil || !geo.ValidGeometry(route.Geometry) || route.DistanceKm < 0 || route.DurationSec < 0 {
		return nil, errInvalidRoute
	}

	return route, nil
}

func dispatchRouteWork(ctx context.Context, pairCh chan<- int, pairCount int) {
	defer close(pairCh)

	for i := 0; i < pairCount; i++ {
		if ctx.Err() != nil {
			return
		}

		pairCh <- i
	}
}

func collectRouteResults(resultCh chan routeResultWithIndex, workerGroup *sync.WaitGroup, apply func(routeResultWithIndex)) {
	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		apply(res)
	}
}
