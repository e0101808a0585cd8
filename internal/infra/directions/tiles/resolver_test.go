package tiles

import (
	"context"
	"sync"
	"testing"

	"tripmap/config"
	"tripmap/internal/domain/geo"
	"tripmap/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func road(class string, oneWay bool, points ...orb.Point) *geojson.Feature {
	feature := geojson.NewFeature(orb.LineString(points))
	feature.Properties["class"] = class
	if oneWay {
		feature.Properties["oneway"] = true
	}

	return feature
}

func encodeTile(t *testing.T, tile maptile.Tile, layer string, features ...*geojson.Feature) []byte {
	t.Helper()

	fc := geojson.NewFeatureCollection()
	fc.Features = features

	layers := mvt.NewLayers(map[string]*geojson.FeatureCollection{layer: fc})
	layers.ProjectToTile(tile)

	data, err := mvt.Marshal(layers)
	require.NoError(t, err)

	return data
}

// testNetwork is a primary road west-mid-east with a one-way street from mid to north
// and a footway from east to north, all inside one zoom 14 tile.
type testNetwork struct {
	tile                 maptile.Tile
	west, mid, east, nth orb.Point

	mu    sync.Mutex
	calls map[maptile.Tile]int
	data  []byte
}

func newTestNetwork(t *testing.T) *testNetwork {
	tile := maptile.At(orb.Point{121.5, 25.04}, 14)
	c := tile.Bound().Center()

	n := &testNetwork{
		tile:  tile,
		west:  orb.Point{c.X() - 0.006, c.Y()},
		mid:   c,
		east:  orb.Point{c.X() + 0.006, c.Y()},
		nth:   orb.Point{c.X(), c.Y() + 0.006},
		calls: make(map[maptile.Tile]int),
	}
	n.data = encodeTile(t, tile, "transportation",
		road("primary", false, n.west, n.mid, n.east),
		road("residential", true, n.mid, n.nth),
		road("footway", false, n.east, n.nth),
	)

	return n
}

func (n *testNetwork) fetch(_ context.Context, tile maptile.Tile) ([]byte, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.calls[tile]++
	if tile != n.tile {
		return nil, errTileNotFound
	}

	return n.data, nil
}

func (n *testNetwork) resolver() *Resolver {
	return newResolver(n.fetch, config.TilesConfig{}, nil)
}

func TestResolver_ResolveRoute(t *testing.T) {
	n := newTestNetwork(t)
	r := n.resolver()
	from := orb.Point{n.west.X(), n.west.Y() + 0.0005}

	route, err := r.ResolveRoute(context.Background(), from, n.east)

	require.NoError(t, err)
	assert.InDelta(t, geo.DirectDistance(n.west, n.east)+geo.DirectDistance(from, n.west), route.DistanceKm, 0.02)
	assert.Greater(t, route.DurationSec, 0.0)
	require.GreaterOrEqual(t, len(route.Geometry), 4)
	assert.Equal(t, from, route.Geometry[0])
	assert.Equal(t, n.east, route.Geometry[len(route.Geometry)-1])
	assert.True(t, geo.ValidGeometry(route.Geometry))
}

func TestResolver_ResolveRoute_FollowsOneWay(t *testing.T) {
	n := newTestNetwork(t)
	r := n.resolver()

	route, err := r.ResolveRoute(context.Background(), n.west, n.nth)
	require.NoError(t, err)
	assert.InDelta(t, geo.DirectDistance(n.west, n.mid)+geo.DirectDistance(n.mid, n.nth), route.DistanceKm, 0.02)

	_, err = r.ResolveRoute(context.Background(), n.nth, n.west)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestResolver_ResolveRoute_NotSnapped(t *testing.T) {
	n := newTestNetwork(t)
	far := orb.Point{n.mid.X(), n.mid.Y() - 0.009}

	_, err := n.resolver().ResolveRoute(context.Background(), far, n.east)

	assert.ErrorIs(t, err, ErrNotSnapped)
}

func TestResolver_ResolveRoute_AreaTooLarge(t *testing.T) {
	n := newTestNetwork(t)

	_, err := n.resolver().ResolveRoute(context.Background(), orb.Point{0, 0}, orb.Point{1, 1})

	assert.ErrorIs(t, err, ErrAreaTooLarge)
	assert.Empty(t, n.calls)
}

func TestResolver_ResolveRoute_Canceled(t *testing.T) {
	n := newTestNetwork(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n.resolver().ResolveRoute(ctx, n.west, n.east)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestResolver_CachesTileGraphs(t *testing.T) {
	n := newTestNetwork(t)
	r := n.resolver()

	_, err := r.ResolveRoute(context.Background(), n.west, n.east)
	require.NoError(t, err)
	_, err = r.ResolveRoute(context.Background(), n.east, n.west)
	require.NoError(t, err)

	assert.Equal(t, 1, n.calls[n.tile])
}

func TestMVTParser_ParseTile(t *testing.T) {
	n := newTestNetwork(t)

	t.Run("skips non-drivable classes", func(t *testing.T) {
		segments, err := NewMVTParser("transportation").ParseTile(n.data, n.tile)

		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.Equal(t, "primary", segments[0].Class)
		assert.InDelta(t, 60.0, segments[0].SpeedKmh, 1e-9)
		assert.False(t, segments[0].OneWay)
		assert.Len(t, segments[0].Points, 3)
		assert.True(t, segments[1].OneWay)
	})

	t.Run("missing layer yields nothing", func(t *testing.T) {
		segments, err := NewMVTParser("roads").ParseTile(n.data, n.tile)

		require.NoError(t, err)
		assert.Empty(t, segments)
	})

	t.Run("multi line strings become separate segments", func(t *testing.T) {
		c := n.mid
		feature := geojson.NewFeature(orb.MultiLineString{
			{{c.X(), c.Y()}, {c.X() + 0.001, c.Y()}},
			{{c.X(), c.Y() + 0.002}, {c.X() + 0.001, c.Y() + 0.002}},
		})
		feature.Properties["class"] = "tertiary"
		data := encodeTile(t, n.tile, "transportation", feature)

		segments, err := NewMVTParser("transportation").ParseTile(data, n.tile)

		require.NoError(t, err)
		assert.Len(t, segments, 2)
	})
}

func TestSpeedForClass(t *testing.T) {
	assert.InDelta(t, 110.0, SpeedForClass("motorway"), 1e-9)
	assert.InDelta(t, 30.0, SpeedForClass("residential"), 1e-9)
	assert.InDelta(t, defaultSpeedKmh, SpeedForClass("unknown"), 1e-9)
}

func TestParseSourcePath(t *testing.T) {
	tests := []struct {
		name            string
		source          string
		expectedBucket  string
		expectedPrefix  string
		expectedTileset string
	}{
		{
			name:            "file:// prefix",
			source:          "file:///data/tiles/roads.pmtiles",
			expectedBucket:  "file:///data/tiles",
			expectedTileset: "roads",
		},
		{
			name:            "local path",
			source:          "/data/roads.pmtiles",
			expectedBucket:  "file:///data",
			expectedTileset: "roads",
		},
		{
			name:            "root path",
			source:          "/roads.pmtiles",
			expectedBucket:  "file:///",
			expectedTileset: "roads",
		},
		{
			name:            "https URL",
			source:          "https://tiles.example.com:8443/v1/roads.pmtiles",
			expectedBucket:  "https://tiles.example.com:8443/v1",
			expectedTileset: "roads",
		},
		{
			name:            "bucket root",
			source:          "gs://my-bucket/roads.pmtiles",
			expectedBucket:  "gs://my-bucket",
			expectedTileset: "roads",
		},
		{
			name:            "bucket with nested prefix",
			source:          "s3://my-bucket/path/to/roads.pmtiles",
			expectedBucket:  "s3://my-bucket",
			expectedPrefix:  "path/to",
			expectedTileset: "roads",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, prefix, tileset := parseSourcePath(tt.source)

			assert.Equal(t, tt.expectedBucket, bucket)
			assert.Equal(t, tt.expectedPrefix, prefix)
			assert.Equal(t, tt.expectedTileset, tileset)
		})
	}
}

func TestTilesForBounds(t *testing.T) {
	tile := maptile.At(orb.Point{121.5, 25.04}, 14)

	bound := tile.Bound()
	center := bound.Center()

	single := tilesForBounds(orb.Bound{Min: center, Max: center}, 14)
	assert.Equal(t, []maptile.Tile{tile}, single)

	widened := tilesForBounds(orb.Bound{
		Min: orb.Point{bound.Min.X() + 1e-6, bound.Min.Y() + 1e-6},
		Max: orb.Point{bound.Max.X() + 0.01, bound.Max.Y() - 1e-6},
	}, 14)
	assert.Len(t, widened, 2)
}
