package entity

import (
	"github.com/paulmach/orb"
)

// Route is a driving route between two coordinates as returned by a directions provider.
type Route struct {
	DistanceKm  float64        `json:"distanceKm"`
	DurationSec float64        `json:"durationSec"`
	Geometry    orb.LineString `json:"geometry"`
}
