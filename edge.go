package roadgraph

import "fmt"

// NodeID is an opaque non-negative node identifier
type NodeID int64

// EdgeID is an opaque non-negative edge identifier. InvalidEdge is reserved for "no edge".
type EdgeID int64

// InvalidEdge marks the absence of an edge. Real edges are numbered from zero, so -1 never collides with them.
const InvalidEdge = EdgeID(-1)

// IsValid reports whether edge refers to a real edge
func (edge EdgeID) IsValid() bool {
	return edge > InvalidEdge
}

func (edge EdgeID) String() string {
	if !edge.IsValid() {
		return "invalid"
	}
	return fmt.Sprintf("%d", int64(edge))
}

// edgeRecord is the backing row of a single stored edge. Flags are kept relative to nodeA -> nodeB.
type edgeRecord struct {
	nodeA       NodeID
	nodeB       NodeID
	distance    float64
	flags       int
	skippedEdge EdgeID
}

// other returns opposite endpoint of the edge for given one
func (rec *edgeRecord) other(node NodeID) NodeID {
	if rec.nodeA == node {
		return rec.nodeB
	}
	return rec.nodeA
}
