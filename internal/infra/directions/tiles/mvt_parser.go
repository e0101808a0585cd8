package tiles

import (
	"tripmap/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
)

const defaultSpeedKmh = 30.0

// speedByClass holds assumed driving speeds in km/h per OpenMapTiles road class.
var speedByClass = map[string]float64{
	"motorway":       110.0,
	"motorway_link":  80.0,
	"trunk":          80.0,
	"trunk_link":     60.0,
	"primary":        60.0,
	"primary_link":   50.0,
	"secondary":      50.0,
	"secondary_link": 40.0,
	"tertiary":       40.0,
	"tertiary_link":  30.0,
	"minor":          30.0,
	"residential":    30.0,
	"unclassified":   30.0,
	"road":           30.0,
	"living_street":  20.0,
	"service":        20.0,
}

// Classes that are never driven on.
var nonDrivableClasses = map[string]bool{
	"path":       true,
	"footway":    true,
	"cycleway":   true,
	"pedestrian": true,
	"steps":      true,
	"track":      true,
	"bridleway":  true,
	"rail":       true,
	"transit":    true,
	"ferry":      true,
}

// RoadSegment is a drivable polyline extracted from a vector tile.
type RoadSegment struct {
	Points   []orb.Point
	Class    string
	SpeedKmh float64
	OneWay   bool
	Name     string
}

// MVTParser extracts road segments from Mapbox vector tiles.
type MVTParser struct {
	roadLayerName string
}

func NewMVTParser(roadLayerName string) *MVTParser {
	return &MVTParser{roadLayerName: roadLayerName}
}

// ParseTile decodes raw (optionally gzipped) tile data and returns the drivable
// segments of the road layer in WGS84 coordinates. A tile without the road layer
// yields no segments.
func (p *MVTParser) ParseTile(data []byte, tile maptile.Tile) ([]RoadSegment, error) {
	layers, err := mvt.UnmarshalGzipped(data)
	if err != nil {
		layers, err = mvt.Unmarshal(data)
		if err != nil {
			return nil, errors.Wrap(err, "decode vector tile")
		}
	}

	var roadLayer *mvt.Layer
	for _, layer := range layers {
		if layer.Name == p.roadLayerName {
			roadLayer = layer

			break
		}
	}

	if roadLayer == nil {
		return []RoadSegment{}, nil
	}

	roadLayer.ProjectToWGS84(tile)

	segments := make([]RoadSegment, 0, len(roadLayer.Features))
	for _, feature := range roadLayer.Features {
		segments = append(segments, p.extractSegments(feature)...)
	}

	return segments, nil
}

func (p *MVTParser) extractSegments(feature *geojson.Feature) []RoadSegment {
	class := stringProperty(feature, "class", "highway", "type")
	if nonDrivableClasses[class] {
		return nil
	}

	var lines []orb.LineString
	switch geom := feature.Geometry.(type) {
	case orb.LineString:
		lines = []orb.LineString{geom}
	case orb.MultiLineString:
		lines = geom
	default:
		return nil
	}

	oneWay := boolProperty(feature, "oneway")
	name := stringProperty(feature, "name")
	speed := SpeedForClass(class)

	segments := make([]RoadSegment, 0, len(lines))
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}

		segments = append(segments, RoadSegment{
			Points:   append([]orb.Point(nil), line...),
			Class:    class,
			SpeedKmh: speed,
			OneWay:   oneWay,
			Name:     name,
		})
	}

	return segments
}

// SpeedForClass returns the assumed speed in km/h for a road class.
func SpeedForClass(class string) float64 {
	if speed, ok := speedByClass[class]; ok {
		return speed
	}

	return defaultSpeedKmh
}

func stringProperty(feature *geojson.Feature, keys ...string) string {
	for _, key := range keys {
		if val, ok := feature.Properties[key]; ok {
			if str, ok := val.(string); ok {
				return str
			}
		}
	}

	return ""
}

func boolProperty(feature *geojson.Feature, key string) bool {
	val, ok := feature.Properties[key]
	if !ok {
		return false
	}

	switch value := val.(type) {
	case bool:
		return value
	case int:
		return value != 0
	case int64:
		return value != 0
	case uint64:
		return value != 0
	case float64:
		return value != 0
	case string:
		return value == "yes" || value == "true" || value == "1"
	}

	return false
}
