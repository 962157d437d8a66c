package roadgraph

// RawEdgeIterator is the minimal cursor over adjacency list of a single node.
// It is enough for existence checks and counting.
type RawEdgeIterator interface {
	// Next moves cursor to the next edge. Returns false once adjacency list is exhausted;
	// no field access is valid after that.
	Next() bool
}

// EdgeIterator exposes read access to the edge the cursor is positioned on.
//
// Cursor is a flyweight: values returned by accessors belong to the current edge only, copy them
// out before calling Next() again. Calling any accessor before the first successful Next() or after
// Next() returned false panics.
type EdgeIterator interface {
	RawEdgeIterator
	// Node returns adjacent endpoint of the current edge
	Node() NodeID
	// Edge returns identifier of the current edge
	Edge() EdgeID
	// BaseNode returns node the cursor was opened from. It is fixed for the whole walk.
	BaseNode() NodeID
	Distance() float64
	// Flags returns flags relative to traversal direction (BaseNode -> Node)
	Flags() int
}

// EdgeSkipIterator is the hierarchy-aware cursor used by preprocessing code.
// Mutators write straight to the backing edge record, there is no staging.
type EdgeSkipIterator interface {
	EdgeIterator
	SetDistance(distance float64)
	SetFlags(flags int)
	// SkippedEdge returns edge replaced by the current shortcut or InvalidEdge for ordinary edges
	SkippedEdge() EdgeID
	SetSkippedEdge(edge EdgeID)
	// IsEmpty reports whether cursor is the Empty sentinel
	IsEmpty() bool
}
