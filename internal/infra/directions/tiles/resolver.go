// Package tiles resolves driving routes offline from a PMTiles road network.
package tiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"tripmap/config"
	"tripmap/internal/domain/entity"
	"tripmap/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/protomaps/go-pmtiles/pmtiles"
)

const (
	defaultRoadLayer     = "transportation"
	defaultZoomLevel     = 14
	defaultMaxSnapMeters = 500.0
	maxAreaTiles         = 256
	maxCachedTiles       = 1024
	serverCacheMB        = 64
)

// boundsPadding pads the endpoints' bounding box by roughly 500 m at the equator.
const boundsPadding = 0.005

var (
	ErrNotSnapped   = errors.New("coordinate is too far from the road network")
	ErrUnreachable  = errors.New("no road connection between the coordinates")
	ErrAreaTooLarge = errors.New("route area exceeds the offline tile limit")
	errTileNotFound = errors.New("tile not found")
)

// tileFetcher returns the raw vector tile data for tile.
type tileFetcher func(ctx context.Context, tile maptile.Tile) ([]byte, error)

// Resolver implements service.RouteResolver on top of a PMTiles archive.
type Resolver struct {
	fetch         tileFetcher
	parser        *MVTParser
	zoomLevel     maptile.Zoom
	maxSnapMeters float64
	logger        *slog.Logger

	tileCache   map[maptile.Tile]*RoadGraph
	tileCacheMu sync.RWMutex
}

// New opens the PMTiles archive named in cfg. Both local files and remote URLs
// (HTTP or a cloud bucket) are accepted.
func New(cfg config.TilesConfig, logger *slog.Logger) (*Resolver, error) {
	if cfg.Source == "" {
		return nil, errors.New("tiles source is required for offline routing")
	}

	bucketPath, prefix, tilesetName := parseSourcePath(cfg.Source)

	server, err := pmtiles.NewServer(bucketPath, prefix, log.New(io.Discard, "", 0), serverCacheMB, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PMTiles source")
	}
	server.Start()

	fetch := func(ctx context.Context, tile maptile.Tile) ([]byte, error) {
		statusCode, _, data := server.Get(ctx, fmt.Sprintf("/%s/%d/%d/%d.mvt", tilesetName, tile.Z, tile.X, tile.Y))
		switch statusCode {
		case http.StatusOK:
			return data, nil
		case http.StatusNotFound, http.StatusNoContent:
			return nil, errTileNotFound
		default:
			return nil, errors.Errorf("unexpected tile status %d", statusCode)
		}
	}

	resolver := newResolver(fetch, cfg, logger)
	logger.Info("Offline tile routing initialized",
		slog.String("source", cfg.Source),
		slog.String("tileset", tilesetName),
		slog.Int("zoom_level", int(resolver.zoomLevel)),
	)

	return resolver, nil
}

func newResolver(fetch tileFetcher, cfg config.TilesConfig, logger *slog.Logger) *Resolver {
	roadLayer := cfg.RoadLayer
	if roadLayer == "" {
		roadLayer = defaultRoadLayer
	}

	zoom := cfg.ZoomLevel
	if zoom <= 0 {
		zoom = defaultZoomLevel
	}

	maxSnap := cfg.MaxSnapMeters
	if maxSnap <= 0 {
		maxSnap = defaultMaxSnapMeters
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{
		fetch:         fetch,
		parser:        NewMVTParser(roadLayer),
		zoomLevel:     maptile.Zoom(zoom),
		maxSnapMeters: maxSnap,
		logger:        logger.With(slog.String("component", "tiles_resolver")),
		tileCache:     make(map[maptile.Tile]*RoadGraph),
	}
}

// ResolveRoute snaps both coordinates onto the road network and returns the fastest
// path between them. The walk from each coordinate to its snapped node is included
// in the distance and duration.
func (r *Resolver) ResolveRoute(ctx context.Context, from, to orb.Point) (*entity.Route, error) {
	tiles := tilesForBounds(orb.MultiPoint{from, to}.Bound().Pad(boundsPadding), r.zoomLevel)
	if len(tiles) > maxAreaTiles {
		return nil, errors.Wrapf(ErrAreaTooLarge, "%d tiles at zoom %d", len(tiles), r.zoomLevel)
	}

	graph, err := r.buildGraph(ctx, tiles)
	if err != nil {
		return nil, err
	}

	sourceID, sourceSnap, ok := graph.FindNearestNode(from)
	if !ok || sourceSnap > r.maxSnapMeters {
		return nil, errors.Wrapf(ErrNotSnapped, "origin %.0f m from nearest road", sourceSnap)
	}

	targetID, targetSnap, ok := graph.FindNearestNode(to)
	if !ok || targetSnap > r.maxSnapMeters {
		return nil, errors.Wrapf(ErrNotSnapped, "destination %.0f m from nearest road", targetSnap)
	}

	result, err := NewPathfinder(graph).ShortestPath(ctx, sourceID, targetID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !result.IsReachable {
		return nil, errors.WithStack(ErrUnreachable)
	}

	snapMeters := sourceSnap + targetSnap
	geometry := make(orb.LineString, 0, len(result.Nodes)+2)
	geometry = append(geometry, from)
	geometry = append(geometry, result.Geometry(graph)...)
	geometry = append(geometry, to)

	return &entity.Route{
		DistanceKm:  (result.Distance + snapMeters) / 1000,
		DurationSec: result.Duration + snapMeters/1000/defaultSpeedKmh*3600,
		Geometry:    geometry,
	}, nil
}

// buildGraph merges the graphs of every tile in the area. Missing tiles are skipped.
func (r *Resolver) buildGraph(ctx context.Context, tiles []maptile.Tile) (*RoadGraph, error) {
	graph := NewRoadGraph()

	for _, tile := range tiles {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		tileGraph, err := r.loadTileGraph(ctx, tile)
		if err != nil {
			if !errors.Is(err, errTileNotFound) {
				r.logger.Debug("Failed to load tile",
					slog.String("tile", tileKey(tile)),
					slog.Any("error", err),
				)
			}

			continue
		}

		graph.Merge(tileGraph)
	}

	return graph, nil
}

func (r *Resolver) loadTileGraph(ctx context.Context, tile maptile.Tile) (*RoadGraph, error) {
	r.tileCacheMu.RLock()
	cached, ok := r.tileCache[tile]
	r.tileCacheMu.RUnlock()
	if ok {
		return cached, nil
	}

	data, err := r.fetch(ctx, tile)
	if err != nil {
		return nil, err
	}

	segments, err := r.parser.ParseTile(data, tile)
	if err != nil {
		return nil, err
	}

	graph := NewRoadGraph()
	for idx := range segments {
		graph.AddSegment(&segments[idx])
	}

	r.tileCacheMu.Lock()
	if len(r.tileCache) >= maxCachedTiles {
		r.tileCache = make(map[maptile.Tile]*RoadGraph)
	}
	r.tileCache[tile] = graph
	r.tileCacheMu.Unlock()

	return graph, nil
}

func tileKey(tile maptile.Tile) string {
	return fmt.Sprintf("%d/%d/%d", tile.Z, tile.X, tile.Y)
}

// tilesForBounds returns every tile at zoom that intersects bound.
func tilesForBounds(bound orb.Bound, zoom maptile.Zoom) []maptile.Tile {
	minTile := maptile.At(orb.Point{bound.Min.X(), bound.Max.Y()}, zoom)
	maxTile := maptile.At(orb.Point{bound.Max.X(), bound.Min.Y()}, zoom)

	tiles := make([]maptile.Tile, 0, (maxTile.X-minTile.X+1)*(maxTile.Y-minTile.Y+1))
	for x := minTile.X; x <= maxTile.X; x++ {
		for y := minTile.Y; y <= maxTile.Y; y++ {
			tiles = append(tiles, maptile.Tile{X: x, Y: y, Z: zoom})
		}
	}

	return tiles
}

// parseSourcePath splits a source into the bucket and key prefix the PMTiles server
// reads from and the tileset name derived from the file name:
//   - "/data/roads.pmtiles" -> ("file:///data", "", "roads")
//   - "https://cdn.example.com/tiles/roads.pmtiles" -> ("https://cdn.example.com/tiles", "", "roads")
//   - "gs://bucket/tiles/roads.pmtiles" -> ("gs://bucket", "tiles", "roads")
func parseSourcePath(source string) (bucketPath, prefix, tilesetName string) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if lastSlash := strings.LastIndex(source, "/"); lastSlash > 0 {
			return source[:lastSlash], "", strings.TrimSuffix(source[lastSlash+1:], ".pmtiles")
		}
	}

	for _, scheme := range []string{"gs://", "s3://", "azblob://"} {
		if !strings.HasPrefix(source, scheme) {
			continue
		}

		rest := strings.TrimPrefix(source, scheme)
		bucket, key, _ := strings.Cut(rest, "/")
		dir := path.Dir(key)
		if dir == "." {
			dir = ""
		}

		return scheme + bucket, dir, strings.TrimSuffix(path.Base(key), ".pmtiles")
	}

	local := strings.TrimPrefix(source, "file://")

	return "file://" + filepath.Dir(local), "", strings.TrimSuffix(filepath.Base(local), ".pmtiles")
}
