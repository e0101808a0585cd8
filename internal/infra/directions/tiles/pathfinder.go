package tiles

import (
	"container/heap"
	"context"

	"github.com/paulmach/orb"
)

// PathResult is a shortest path through the road graph.
type PathResult struct {
	Distance    float64 // meters
	Duration    float64 // seconds
	Nodes       []NodeID
	IsReachable bool
}

// Geometry returns the node coordinates of the path in travel order.
func (r PathResult) Geometry(graph *RoadGraph) orb.LineString {
	line := make(orb.LineString, 0, len(r.Nodes))
	for _, id := range r.Nodes {
		line = append(line, graph.Nodes[id])
	}

	return line
}

// Pathfinder runs Dijkstra over a RoadGraph, weighting edges by travel time.
type Pathfinder struct {
	graph *RoadGraph
}

func NewPathfinder(graph *RoadGraph) *Pathfinder {
	return &Pathfinder{graph: graph}
}

type dijkstraNode struct {
	id       NodeID
	duration float64
	distance float64
	index    int
}

type priorityQueue []*dijkstraNode

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].duration < pq[j].duration
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	node := x.(*dijkstraNode)
	node.index = len(*pq)
	*pq = append(*pq, node)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*pq = old[:n-1]

	return node
}

// ShortestPath returns the fastest path from source to target. The search stops
// early with ctx's error when ctx is done.
func (pf *Pathfinder) ShortestPath(ctx context.Context, sourceID, targetID NodeID) (PathResult, error) {
	if _, ok := pf.graph.Nodes[sourceID]; !ok {
		return PathResult{}, nil
	}
	if _, ok := pf.graph.Nodes[targetID]; !ok {
		return PathResult{}, nil
	}

	durations := map[NodeID]float64{sourceID: 0}
	previous := make(map[NodeID]NodeID)
	visited := make(map[NodeID]bool)

	queue := make(priorityQueue, 0)
	heap.Init(&queue)
	heap.Push(&queue, &dijkstraNode{id: sourceID})

	steps := 0
	for queue.Len() > 0 {
		steps++
		if steps%4096 == 0 && ctx.Err() != nil {
			return PathResult{}, ctx.Err()
		}

		current := heap.Pop(&queue).(*dijkstraNode)
		if visited[current.id] {
			continue
		}
		visited[current.id] = true

		if current.id == targetID {
			return PathResult{
				Distance:    current.distance,
				Duration:    current.duration,
				Nodes:       tracePath(previous, sourceID, targetID),
				IsReachable: true,
			}, nil
		}

		for _, edge := range pf.graph.Edges[current.id] {
			if visited[edge.To] {
				continue
			}

			duration := current.duration + edge.Duration
			if best, seen := durations[edge.To]; seen && duration >= best {
				continue
			}

			durations[edge.To] = duration
			previous[edge.To] = current.id
			heap.Push(&queue, &dijkstraNode{
				id:       edge.To,
				duration: duration,
				distance: current.distance + edge.Distance,
			})
		}
	}

	return PathResult{}, nil
}

func tracePath(previous map[NodeID]NodeID, sourceID, targetID NodeID) []NodeID {
	path := []NodeID{targetID}
	for id := targetID; id != sourceID; {
		id = previous[id]
		path = append(path, id)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
