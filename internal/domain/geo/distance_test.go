package geo

import (
	"fmt"
	"math"
	"testing"

	"tripmap/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocations(n int) []entity.Location {
	locations := make([]entity.Location, n)
	for i := range n {
		locations[i] = entity.Location{
			ID:          fmt.Sprintf("L%d", i+1),
			Name:        fmt.Sprintf("Stop %d", i+1),
			Coordinates: orb.Point{121.5 + float64(i)*0.1, 25.0 + float64(i)*0.05},
		}
	}

	return locations
}

func TestDirectDistance_OneDegreeOfLatitude(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{0, 1}

	assert.InDelta(t, 111.2, DirectDistance(a, b), 0.1)
}

func TestDirectDistance_ZeroForSamePoint(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{121.5654, 25.0330},
		{-180, -90},
		{179.9, 89.9},
	}

	for _, p := range points {
		assert.Zero(t, DirectDistance(p, p), "point %v", p)
	}
}

func TestDirectDistance_Symmetric(t *testing.T) {
	a := orb.Point{121.5654, 25.0330} // Taipei 101
	b := orb.Point{139.6917, 35.6895} // Tokyo

	ab := DirectDistance(a, b)
	ba := DirectDistance(b, a)

	assert.InDelta(t, ab, ba, 1e-9)
	assert.InDelta(t, 2100, ab, 50)
}

func TestAllDirectDistances_PairCount(t *testing.T) {
	for n := 0; n <= 7; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			distances := AllDirectDistances(newLocations(n))

			require.NotNil(t, distances)
			assert.Len(t, distances, n*(n-1)/2)
			for _, d := range distances {
				assert.GreaterOrEqual(t, d.DirectDistance, 0.0)
				assert.InDelta(t, d.DirectDistance, DirectDistance(d.To.Coordinates, d.From.Coordinates), 1e-9)
				assert.False(t, d.IsEnriched())
			}
		})
	}
}

func TestAllDirectDistances_PairOrder(t *testing.T) {
	locations := newLocations(3)

	distances := AllDirectDistances(locations)

	require.Len(t, distances, 3)
	got := make([]string, len(distances))
	for i, d := range distances {
		got[i] = d.PairKey()
	}
	assert.Equal(t, []string{"L1|L2", "L1|L3", "L2|L3"}, got)
}

func TestAllDirectDistances_CopiesEndpoints(t *testing.T) {
	category := "food"
	locations := newLocations(2)
	locations[0].CategoryID = &category

	distances := AllDirectDistances(locations)
	locations[0].Name = "renamed"
	*locations[0].CategoryID = "changed"

	require.Len(t, distances, 1)
	assert.Equal(t, "Stop 1", distances[0].From.Name)
	require.NotNil(t, distances[0].From.CategoryID)
	assert.Equal(t, "food", *distances[0].From.CategoryID)
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		id := GenerateID()
		assert.Len(t, id, localIDLength)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, 1000)
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		point orb.Point
		want  bool
	}{
		{name: "origin", point: orb.Point{0, 0}, want: true},
		{name: "corner", point: orb.Point{180, -90}, want: true},
		{name: "lng out of range", point: orb.Point{180.1, 0}, want: false},
		{name: "lat out of range", point: orb.Point{0, 90.5}, want: false},
		{name: "nan", point: orb.Point{math.NaN(), 0}, want: false},
		{name: "inf", point: orb.Point{0, math.Inf(1)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCoordinates(tt.point))
		})
	}
}

func TestValidGeometry(t *testing.T) {
	assert.False(t, ValidGeometry(nil))
	assert.False(t, ValidGeometry(orb.LineString{{0, 0}}))
	assert.False(t, ValidGeometry(orb.LineString{{0, 0}, {200, 0}}))
	assert.True(t, ValidGeometry(orb.LineString{{0, 0}, {0, 1}}))
}
