package entity

import (
	"github.com/paulmach/orb"
)

// DistanceInfo links two locations. It is derived from the location list and never persisted.
// From and To are copies, so the record stays valid after the source locations change.
type DistanceInfo struct {
	From           Location `json:"from"`
	To             Location `json:"to"`
	DirectDistance float64  `json:"directDistance"` // kilometers

	// Driving fields stay nil until a route resolver enriches the pair.
	DrivingDistance *float64       `json:"drivingDistance,omitempty"` // kilometers
	DrivingDuration *float64       `json:"drivingDuration,omitempty"` // seconds
	RouteGeometry   orb.LineString `json:"routeGeometry,omitempty"`
}

// IsEnriched reports whether driving data is attached.
func (d DistanceInfo) IsEnriched() bool {
	return d.DrivingDistance != nil && d.DrivingDuration != nil
}

// PairKey identifies the pair by endpoint ids.
func (d DistanceInfo) PairKey() string {
	return d.From.ID + "|" + d.To.ID
}

// SameEndpoints reports whether both records connect the same locations at the same coordinates.
func (d DistanceInfo) SameEndpoints(other DistanceInfo) bool {
	return d.From.ID == other.From.ID && d.To.ID == other.To.ID &&
		d.From.Coordinates.Equal(other.From.Coordinates) &&
		d.To.Coordinates.Equal(other.To.Coordinates)
}

// WithRoute returns a copy of d carrying the driving route.
func (d DistanceInfo) WithRoute(route Route) DistanceInfo {
	distance := route.DistanceKm
	duration := route.DurationSec
	d.DrivingDistance = &distance
	d.DrivingDuration = &duration
	d.RouteGeometry = route.Geometry.Clone()

	return d
}

// CloneDistances copies a distance list.
func CloneDistances(distances []DistanceInfo) []DistanceInfo {
	if len(distances) == 0 {
		return []DistanceInfo{}
	}

	dup := make([]DistanceInfo, len(distances))
	for i, d := range distances {
		dup[i] = d.Clone()
	}

	return dup
}

// Clone returns a copy that shares no pointers or slices with d.
func (d DistanceInfo) Clone() DistanceInfo {
	dup := d
	dup.From = d.From.Clone()
	dup.To = d.To.Clone()
	dup.DrivingDistance = cloneFloat(d.DrivingDistance)
	dup.DrivingDuration = cloneFloat(d.DrivingDuration)
	if d.RouteGeometry != nil {
		dup.RouteGeometry = d.RouteGeometry.Clone()
	}

	return dup
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f

	return &v
}
