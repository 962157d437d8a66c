package roadgraph

import (
	"testing"
)

func TestCount(t *testing.T) {
	graph := prepareScenarioGraph(t)
	iter := graph.GetOutgoing(0)
	cnt := Count(iter)
	if cnt != 3 {
		t.Errorf("Number of outgoing edges must be %d, but got %d", 3, cnt)
	}
	if iter.Next() {
		t.Errorf("Iterator must be exhausted after Count()")
	}
	if cnt := Count(graph.GetOutgoing(2)); cnt != 0 {
		t.Errorf("Number of outgoing edges of sink must be %d, but got %d", 0, cnt)
	}
}

func TestNeighbors(t *testing.T) {
	graph := prepareScenarioGraph(t)
	neighbors := Neighbors(graph.GetOutgoing(0))
	correctNeighbors := []NodeID{1, 2, 2}
	if !equalNodes(neighbors, correctNeighbors) {
		t.Errorf("Neighbors must be %v, but got %v", correctNeighbors, neighbors)
	}
	empty := Neighbors(graph.GetOutgoing(2))
	if empty == nil || len(empty) != 0 {
		t.Errorf("Neighbors of sink must be empty non-nil slice, but got %#v", empty)
	}
}

func TestContains(t *testing.T) {
	graph := prepareScenarioGraph(t)
	if !Contains(graph.GetOutgoing(0), 1, 2) {
		t.Errorf("Outgoing edges of 0 must contain 1 and 2")
	}
	if Contains(graph.GetOutgoing(0), 1, 3) {
		t.Errorf("Outgoing edges of 0 must not contain 3")
	}
	if !Contains(graph.GetOutgoing(0)) {
		t.Errorf("Empty targets must be contained vacuously")
	}
	iter := graph.GetOutgoing(0)
	Count(iter)
	if !Contains(iter) {
		t.Errorf("Empty targets must be contained vacuously even by exhausted iterator")
	}
	if Contains(iter, 1) {
		t.Errorf("Exhausted iterator must not contain anything")
	}
}

func TestGetEdges(t *testing.T) {
	graph := prepareScenarioGraph(t)
	outgoing := Neighbors(GetEdges(graph, 0, true))
	incoming := Neighbors(GetEdges(graph, 0, false))
	correctOutgoing := []NodeID{1, 2, 2}
	correctIncoming := []NodeID{3}
	if !equalNodes(outgoing, correctOutgoing) {
		t.Errorf("Outgoing neighbors must be %v, but got %v", correctOutgoing, outgoing)
	}
	if !equalNodes(incoming, correctIncoming) {
		t.Errorf("Incoming neighbors must be %v, but got %v", correctIncoming, incoming)
	}
}

// routingGraph records which methods have been called
type routingGraph struct {
	calls []string
}

func (graph *routingGraph) GetOutgoing(node NodeID) EdgeIterator {
	graph.calls = append(graph.calls, "out")
	return Empty
}

func (graph *routingGraph) GetIncoming(node NodeID) EdgeIterator {
	graph.calls = append(graph.calls, "in")
	return Empty
}

func (graph *routingGraph) GetEdgeProps(edge EdgeID, endNode NodeID) EdgeIterator {
	graph.calls = append(graph.calls, "props")
	return Empty
}

func TestGetEdgesRouting(t *testing.T) {
	graph := &routingGraph{}
	GetEdges(graph, 0, true)
	GetEdges(graph, 0, false)
	if len(graph.calls) != 2 || graph.calls[0] != "out" || graph.calls[1] != "in" {
		t.Errorf("Calls must be [out in], but got %v", graph.calls)
	}
}

func TestGetToNode(t *testing.T) {
	graph := prepareScenarioGraph(t)
	for _, node := range []NodeID{0, 1, 42} {
		if got := GetToNode(graph, InvalidEdge, node); got != node {
			t.Errorf("Invalid edge must return end node %d, but got %d", node, got)
		}
	}
	stub := &routingGraph{}
	GetToNode(stub, InvalidEdge, 7)
	if len(stub.calls) != 0 {
		t.Errorf("Graph must not be touched for invalid edge, but got calls %v", stub.calls)
	}

	// Edge 0 is 0 -> 1
	if got := GetToNode(graph, 0, 0); got != 1 {
		t.Errorf("Other end of edge 0 from node 0 must be %d, but got %d", 1, got)
	}
	if got := GetToNode(graph, 0, 1); got != 0 {
		t.Errorf("Other end of edge 0 from node 1 must be %d, but got %d", 0, got)
	}
	expectPanic(t, "GetToNode() with wrong end node", ErrEmptyIterator, func() {
		GetToNode(graph, 0, 3)
	})
}

func TestSecondDrain(t *testing.T) {
	graph := prepareScenarioGraph(t)
	iter := graph.GetOutgoing(0)
	if cnt := Count(iter); cnt != 3 {
		t.Errorf("First drain must visit %d edges, but got %d", 3, cnt)
	}
	if cnt := Count(iter); cnt != 0 {
		t.Errorf("Second drain must visit %d edges, but got %d", 0, cnt)
	}
}
