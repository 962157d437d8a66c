package roadgraph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const propertyNodesNum = 16

// starGraph returns graph where node 0 has one way edges to given neighbors (in the same order)
func starGraph(neighbors []int) *MemoryGraph {
	graph := NewMemoryGraph()
	for i := 0; i < propertyNodesNum; i++ {
		graph.AddNode(0, 0)
	}
	for i, n := range neighbors {
		graph.AddEdge(0, NodeID(n), float64(i), EncodeFlags(HIGHWAY_RESIDENTIAL, true, false))
	}
	return graph
}

func TestGraphUtilityProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	neighborsGen := gen.SliceOf(gen.IntRange(1, propertyNodesNum-1))

	properties.Property("count equals number of successful Next() and exhausts iterator", prop.ForAll(
		func(neighbors []int) bool {
			graph := starGraph(neighbors)
			iter := graph.GetOutgoing(0)
			return Count(iter) == len(neighbors) && !iter.Next()
		},
		neighborsGen,
	))

	properties.Property("neighbors keep traversal order and duplicates", prop.ForAll(
		func(neighbors []int) bool {
			graph := starGraph(neighbors)
			got := Neighbors(graph.GetOutgoing(0))
			if len(got) != len(neighbors) {
				return false
			}
			for i := range got {
				if got[i] != NodeID(neighbors[i]) {
					return false
				}
			}
			return true
		},
		neighborsGen,
	))

	properties.Property("contains is true iff every target is a neighbor", prop.ForAll(
		func(neighbors []int, targets []int) bool {
			graph := starGraph(neighbors)
			set := make(map[int]struct{})
			for _, n := range neighbors {
				set[n] = struct{}{}
			}
			expected := true
			nodes := make([]NodeID, len(targets))
			for i, target := range targets {
				nodes[i] = NodeID(target)
				if _, ok := set[target]; !ok {
					expected = false
				}
			}
			return Contains(graph.GetOutgoing(0), nodes...) == expected
		},
		neighborsGen,
		gen.SliceOf(gen.IntRange(0, propertyNodesNum-1)),
	))

	properties.Property("contains of no targets is true", prop.ForAll(
		func(neighbors []int) bool {
			graph := starGraph(neighbors)
			iter := graph.GetOutgoing(0)
			Count(iter)
			return Contains(graph.GetOutgoing(0)) && Contains(iter)
		},
		neighborsGen,
	))

	properties.Property("invalid edge resolves to the same node", prop.ForAll(
		func(node int64) bool {
			return GetToNode(&routingGraph{}, InvalidEdge, NodeID(node)) == NodeID(node)
		},
		gen.Int64Range(0, 1<<40),
	))

	properties.Property("edge resolves to opposite endpoint from both sides", prop.ForAll(
		func(neighbors []int) bool {
			graph := starGraph(neighbors)
			for i, n := range neighbors {
				edge := EdgeID(i)
				if GetToNode(graph, edge, 0) != NodeID(n) || GetToNode(graph, edge, NodeID(n)) != 0 {
					return false
				}
			}
			return true
		},
		neighborsGen,
	))

	properties.TestingRun(t)
}
