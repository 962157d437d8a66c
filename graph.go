package roadgraph

// Graph hands out cursors over adjacency lists
type Graph interface {
	GetOutgoing(node NodeID) EdgeIterator
	GetIncoming(node NodeID) EdgeIterator
	// GetEdgeProps returns cursor positioned on edge, where BaseNode() is endNode and Node() is the opposite endpoint
	GetEdgeProps(edge EdgeID, endNode NodeID) EdgeIterator
}

// HierarchyGraph is a graph which could be extended with shortcuts during preprocessing
type HierarchyGraph interface {
	Graph
	GetOutgoingSkip(node NodeID) EdgeSkipIterator
	GetEdgePropsSkip(edge EdgeID, endNode NodeID) EdgeSkipIterator
	// Shortcut creates forward-only edge a -> b and returns cursor positioned on it
	Shortcut(a, b NodeID) EdgeSkipIterator
	SetLevel(node NodeID, level int)
	Level(node NodeID) int
}
