// Package geo holds the pure coordinate and distance helpers used by the trip state.
package geo

import (
	"math"
	"strings"

	"tripmap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean Earth radius used for direct distances.
const EarthRadiusKm = 6371.0088

const localIDLength = 12

// GenerateID returns a short pseudo-random identifier for records created while the
// remote store is unreachable. Collisions are unlikely but not impossible.
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:localIDLength]
}

// DirectDistance returns the great-circle distance between a and b in kilometers.
func DirectDistance(a, b orb.Point) float64 {
	// orb scales by its equatorial radius; convert back to the central angle first.
	angle := orbgeo.DistanceHaversine(a, b) / orb.EarthRadius

	return angle * EarthRadiusKm
}

// AllDirectDistances returns a DistanceInfo for every unordered pair (i, j) with i < j.
// The outer index ascends and the inner index ascends from i+1, so the order depends
// only on the input order.
func AllDirectDistances(locations []entity.Location) []entity.DistanceInfo {
	n := len(locations)
	if n < 2 {
		return []entity.DistanceInfo{}
	}

	distances := make([]entity.DistanceInfo, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			distances = append(distances, PairDistance(locations[i], locations[j]))
		}
	}

	return distances
}

// PairDistance builds the direct-only DistanceInfo for one pair.
func PairDistance(from, to entity.Location) entity.DistanceInfo {
	return entity.DistanceInfo{
		From:           from.Clone(),
		To:             to.Clone(),
		DirectDistance: DirectDistance(from.Coordinates, to.Coordinates),
	}
}

// ValidCoordinates reports whether p is a finite [lng, lat] pair inside Earth bounds.
func ValidCoordinates(p orb.Point) bool {
	lng, lat := p.Lon(), p.Lat()
	if math.IsNaN(lng) || math.IsNaN(lat) || math.IsInf(lng, 0) || math.IsInf(lat, 0) {
		return false
	}

	return lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90
}

// ValidGeometry reports whether a route geometry can be drawn: at least two valid points.
func ValidGeometry(ls orb.LineString) bool {
	if len(ls) < 2 {
		return false
	}
	for _, p := range ls {
		if !ValidCoordinates(p) {
			return false
		}
	}

	return true
}
