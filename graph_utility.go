package roadgraph

// Helpers built on top of cursors only. Most of them are handy in unit tests.

// Count drains iterator and returns number of visited edges
func Count(iter RawEdgeIterator) int {
	counter := 0
	for iter.Next() {
		counter++
	}
	return counter
}

// Neighbors drains iterator and returns adjacent nodes in traversal order. Parallel edges give duplicates.
func Neighbors(iter EdgeIterator) []NodeID {
	nodes := []NodeID{}
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes
}

// Contains drains iterator and checks whether every target has been visited.
// It is vacuously true for empty targets (iterator is still drained).
func Contains(iter EdgeIterator, targets ...NodeID) bool {
	visited := make(map[NodeID]struct{})
	for iter.Next() {
		visited[iter.Node()] = struct{}{}
	}
	for _, target := range targets {
		if _, ok := visited[target]; !ok {
			return false
		}
	}
	return true
}

// GetEdges returns outgoing edges of node if out is true and incoming otherwise
func GetEdges(graph Graph, node NodeID, out bool) EdgeIterator {
	if out {
		return graph.GetOutgoing(node)
	}
	return graph.GetIncoming(node)
}

// GetToNode returns the other endpoint of edge. For InvalidEdge endNode is returned as is and graph is not touched.
func GetToNode(graph Graph, edge EdgeID, endNode NodeID) NodeID {
	if !edge.IsValid() {
		return endNode
	}
	return graph.GetEdgeProps(edge, endNode).Node()
}
