package roadgraph

type iteratorState uint8

const (
	iteratorNotStarted = iteratorState(iota)
	iteratorPositioned
	iteratorExhausted
)

// edgeIterator is cursor over MemoryGraph. It walks either adjacency list of base node
// (filtered by direction bit) or exposes a single edge.
type edgeIterator struct {
	graph    *MemoryGraph
	baseNode NodeID
	// Snapshot of adjacency list: edges added during traversal are not visited
	edgeIDs   []EdgeID
	direction int
	pos       int
	edge      EdgeID
	reversed  bool
	state     iteratorState
}

func newAdjacencyIterator(graph *MemoryGraph, baseNode NodeID, direction int) *edgeIterator {
	return &edgeIterator{
		graph:     graph,
		baseNode:  baseNode,
		edgeIDs:   graph.adjacency[baseNode],
		direction: direction,
		pos:       -1,
		edge:      InvalidEdge,
		state:     iteratorNotStarted,
	}
}

// newSingleEdgeIterator returns cursor already positioned on edge. Its Next() returns false.
func newSingleEdgeIterator(graph *MemoryGraph, edge EdgeID, baseNode NodeID) *edgeIterator {
	rec := graph.record(edge)
	return &edgeIterator{
		graph:    graph,
		baseNode: baseNode,
		pos:      -1,
		edge:     edge,
		reversed: rec.nodeA != baseNode,
		state:    iteratorPositioned,
	}
}

func (iter *edgeIterator) Next() bool {
	iter.graph.checkOpen()
	if iter.state == iteratorExhausted {
		return false
	}
	for iter.pos+1 < len(iter.edgeIDs) {
		iter.pos++
		edge := iter.edgeIDs[iter.pos]
		rec := &iter.graph.edges[edge]
		reversed := rec.nodeA != iter.baseNode
		flags := rec.flags
		if reversed {
			flags = SwapDirection(flags)
		}
		if flags&iter.direction == 0 {
			continue
		}
		iter.edge = edge
		iter.reversed = reversed
		iter.state = iteratorPositioned
		return true
	}
	iter.edge = InvalidEdge
	iter.state = iteratorExhausted
	return false
}

// current returns record of edge cursor is positioned on
func (iter *edgeIterator) current() *edgeRecord {
	if iter.state != iteratorPositioned {
		misuse(ErrIteratorNotPositioned)
	}
	return iter.graph.record(iter.edge)
}

func (iter *edgeIterator) Node() NodeID {
	return iter.current().other(iter.baseNode)
}

func (iter *edgeIterator) Edge() EdgeID {
	iter.current()
	return iter.edge
}

func (iter *edgeIterator) BaseNode() NodeID {
	iter.current()
	return iter.baseNode
}

func (iter *edgeIterator) Distance() float64 {
	return iter.current().distance
}

func (iter *edgeIterator) SetDistance(distance float64) {
	rec := iter.current()
	if distance < 0 {
		misusef(ErrNegativeDistance, "edge %d", iter.edge)
	}
	rec.distance = distance
}

func (iter *edgeIterator) Flags() int {
	flags := iter.current().flags
	if iter.reversed {
		return SwapDirection(flags)
	}
	return flags
}

func (iter *edgeIterator) SetFlags(flags int) {
	rec := iter.current()
	if iter.reversed {
		flags = SwapDirection(flags)
	}
	rec.flags = flags
}

func (iter *edgeIterator) SkippedEdge() EdgeID {
	return iter.current().skippedEdge
}

func (iter *edgeIterator) SetSkippedEdge(edge EdgeID) {
	rec := iter.current()
	if edge.IsValid() {
		iter.graph.checkEdge(edge)
	} else {
		edge = InvalidEdge
	}
	rec.skippedEdge = edge
}

func (iter *edgeIterator) IsEmpty() bool {
	return false
}
