package tiles

import (
	"math"
	"strconv"

	"tripmap/internal/domain/geo"

	"github.com/paulmach/orb"
)

// NodeID identifies a node of a RoadGraph.
type NodeID int64

// Edge is a directed edge of the road graph.
type Edge struct {
	To       NodeID
	Distance float64 // meters
	Duration float64 // seconds
}

// RoadGraph is a directed road network. Points closer than about a meter share a node.
type RoadGraph struct {
	Nodes    map[NodeID]orb.Point
	Edges    map[NodeID][]Edge
	nodeIdx  int64
	pointMap map[string]NodeID
}

func NewRoadGraph() *RoadGraph {
	return &RoadGraph{
		Nodes:    make(map[NodeID]orb.Point),
		Edges:    make(map[NodeID][]Edge),
		pointMap: make(map[string]NodeID),
	}
}

// AddSegment adds an edge between every consecutive pair of points. Two-way
// segments get a reverse edge as well.
func (g *RoadGraph) AddSegment(segment *RoadSegment) {
	if len(segment.Points) < 2 {
		return
	}

	speed := segment.SpeedKmh
	if speed <= 0 {
		speed = defaultSpeedKmh
	}

	prevID := g.getOrCreateNode(segment.Points[0])
	for i := 1; i < len(segment.Points); i++ {
		currID := g.getOrCreateNode(segment.Points[i])
		if currID == prevID {
			continue
		}

		dist := meters(segment.Points[i-1], segment.Points[i])
		duration := dist / 1000.0 / speed * 3600.0

		g.Edges[prevID] = append(g.Edges[prevID], Edge{To: currID, Distance: dist, Duration: duration})
		if !segment.OneWay {
			g.Edges[currID] = append(g.Edges[currID], Edge{To: prevID, Distance: dist, Duration: duration})
		}

		prevID = currID
	}
}

func (g *RoadGraph) getOrCreateNode(point orb.Point) NodeID {
	key := pointKey(point)
	if id, exists := g.pointMap[key]; exists {
		return id
	}

	g.nodeIdx++
	id := NodeID(g.nodeIdx)
	g.Nodes[id] = point
	g.pointMap[key] = id

	return id
}

// Merge copies other into g, remapping node ids so independently built tile graphs
// join at shared points.
func (g *RoadGraph) Merge(other *RoadGraph) {
	idMapping := make(map[NodeID]NodeID, len(other.Nodes))
	for otherID, point := range other.Nodes {
		idMapping[otherID] = g.getOrCreateNode(point)
	}

	for fromID, edges := range other.Edges {
		mappedFrom := idMapping[fromID]
		for _, edge := range edges {
			g.Edges[mappedFrom] = append(g.Edges[mappedFrom], Edge{
				To:       idMapping[edge.To],
				Distance: edge.Distance,
				Duration: edge.Duration,
			})
		}
	}
}

// FindNearestNode returns the node closest to point and its distance in meters.
func (g *RoadGraph) FindNearestNode(point orb.Point) (NodeID, float64, bool) {
	if len(g.Nodes) == 0 {
		return 0, 0, false
	}

	var nearestID NodeID
	nearestDist := math.MaxFloat64
	for id, nodePoint := range g.Nodes {
		dist := meters(point, nodePoint)
		if dist < nearestDist || (dist == nearestDist && id < nearestID) {
			nearestDist = dist
			nearestID = id
		}
	}

	return nearestID, nearestDist, true
}

// EdgeCount returns the number of directed edges.
func (g *RoadGraph) EdgeCount() int {
	count := 0
	for _, edges := range g.Edges {
		count += len(edges)
	}

	return count
}

// pointKey rounds to 5 decimal places.
func pointKey(p orb.Point) string {
	lat := math.Round(p[1]*100000) / 100000
	lng := math.Round(p[0]*100000) / 100000

	return strconv.FormatFloat(lat, 'f', 5, 64) + "," + strconv.FormatFloat(lng, 'f', 5, 64)
}

func meters(a, b orb.Point) float64 {
	return geo.DirectDistance(a, b) * 1000
}
