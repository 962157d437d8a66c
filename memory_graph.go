package roadgraph

import (
	"fmt"
	"unsafe"
)

const (
	DEFAULT_INITIAL_CAPACITY = 128
)

var (
	nodeBytes      = int64(unsafe.Sizeof(GeoPoint{}))
	levelBytes     = int64(unsafe.Sizeof(int32(0)))
	edgeBytes      = int64(unsafe.Sizeof(edgeRecord{}))
	edgeIDBytes    = int64(unsafe.Sizeof(EdgeID(0)))
	adjacencyBytes = int64(unsafe.Sizeof([]EdgeID{}))
)

// MemoryGraph keeps nodes and edges in memory and could persist them into directory.
// Each edge is stored once and is visible from both of its endpoints; direction bits of flags decide
// whether it shows up in outgoing or incoming adjacency.
//
// MemoryGraph is not safe for concurrent use.
type MemoryGraph struct {
	directory       string
	compress        bool
	verbose         bool
	initialCapacity int

	nodes     []GeoPoint
	levels    []int32
	adjacency [][]EdgeID
	edges     []edgeRecord
	closed    bool
}

func (graph *MemoryGraph) String() string {
	return fmt.Sprintf(`
Memory graph parameters:
	directory: '%s'
	compression enabled?: %t
	verbose?: %t
	initial_capacity: %d
	`,
		graph.directory,
		graph.compress,
		graph.verbose,
		graph.initialCapacity,
	)
}

// NewMemoryGraph returns empty graph configured by options
func NewMemoryGraph(options ...func(*MemoryGraph)) *MemoryGraph {
	graph := &MemoryGraph{
		directory:       "",
		compress:        false,
		verbose:         false,
		initialCapacity: DEFAULT_INITIAL_CAPACITY,
	}
	for _, option := range options {
		option(graph)
	}
	graph.nodes = make([]GeoPoint, 0, graph.initialCapacity)
	graph.levels = make([]int32, 0, graph.initialCapacity)
	graph.adjacency = make([][]EdgeID, 0, graph.initialCapacity)
	graph.edges = make([]edgeRecord, 0, graph.initialCapacity)
	return graph
}

// WithDirectory sets directory used by Flush() and LoadExisting()
func WithDirectory(directory string) func(*MemoryGraph) {
	return func(graph *MemoryGraph) {
		graph.directory = directory
	}
}

// WithCompression enables snappy compression of persisted files
func WithCompression(compress bool) func(*MemoryGraph) {
	return func(graph *MemoryGraph) {
		graph.compress = compress
	}
}

func WithVerbose(verbose bool) func(*MemoryGraph) {
	return func(graph *MemoryGraph) {
		graph.verbose = verbose
	}
}

// WithInitialCapacity sets number of nodes and edges preallocated on creation
func WithInitialCapacity(initialCapacity int) func(*MemoryGraph) {
	return func(graph *MemoryGraph) {
		if initialCapacity < 0 {
			initialCapacity = 0
		}
		graph.initialCapacity = initialCapacity
	}
}

func (graph *MemoryGraph) checkOpen() {
	if graph.closed {
		misuse(ErrStorageClosed)
	}
}

func (graph *MemoryGraph) checkNode(node NodeID) {
	if node < 0 || int(node) >= len(graph.nodes) {
		misusef(ErrNodeOutOfRange, "node %d (nodes: %d)", node, len(graph.nodes))
	}
}

func (graph *MemoryGraph) checkEdge(edge EdgeID) {
	if edge < 0 || int(edge) >= len(graph.edges) {
		misusef(ErrEdgeOutOfRange, "edge %d (edges: %d)", edge, len(graph.edges))
	}
}

// record returns backing row of edge. Pointer is valid until next edge is added.
func (graph *MemoryGraph) record(edge EdgeID) *edgeRecord {
	graph.checkOpen()
	graph.checkEdge(edge)
	return &graph.edges[edge]
}

// NodeCount returns number of nodes
func (graph *MemoryGraph) NodeCount() int {
	graph.checkOpen()
	return len(graph.nodes)
}

// EdgeCount returns number of stored edges (shortcuts included)
func (graph *MemoryGraph) EdgeCount() int {
	graph.checkOpen()
	return len(graph.edges)
}

// AddNode appends node with given coordinates
func (graph *MemoryGraph) AddNode(lat, lon float64) NodeID {
	graph.checkOpen()
	return graph.appendNode(GeoPoint{Lat: lat, Lon: lon}, 0)
}

func (graph *MemoryGraph) appendNode(pt GeoPoint, level int32) NodeID {
	id := NodeID(len(graph.nodes))
	graph.nodes = append(graph.nodes, pt)
	graph.levels = append(graph.levels, level)
	// Adjacency lists beyond length are kept for reuse, so capacity never goes down
	if len(graph.adjacency) < cap(graph.adjacency) {
		graph.adjacency = graph.adjacency[:len(graph.adjacency)+1]
		graph.adjacency[id] = graph.adjacency[id][:0]
	} else {
		graph.adjacency = append(graph.adjacency, nil)
	}
	return id
}

// SetNode updates coordinates of existing node
func (graph *MemoryGraph) SetNode(node NodeID, pt GeoPoint) {
	graph.checkOpen()
	graph.checkNode(node)
	graph.nodes[node] = pt
}

// Point returns coordinates of node
func (graph *MemoryGraph) Point(node NodeID) GeoPoint {
	graph.checkOpen()
	graph.checkNode(node)
	return graph.nodes[node]
}

// AddEdge stores edge a - b. Flags are relative to a -> b direction.
func (graph *MemoryGraph) AddEdge(a, b NodeID, distance float64, flags int) EdgeID {
	graph.checkOpen()
	graph.checkNode(a)
	graph.checkNode(b)
	if distance < 0 {
		misusef(ErrNegativeDistance, "edge %d -> %d", a, b)
	}
	return graph.appendEdge(edgeRecord{
		nodeA:       a,
		nodeB:       b,
		distance:    distance,
		flags:       flags,
		skippedEdge: InvalidEdge,
	})
}

// AddEdgeGeo stores edge a - b with great circle distance between nodes (meters)
func (graph *MemoryGraph) AddEdgeGeo(a, b NodeID, flags int) EdgeID {
	graph.checkOpen()
	graph.checkNode(a)
	graph.checkNode(b)
	return graph.AddEdge(a, b, greatCircleDistance(graph.nodes[a], graph.nodes[b])*1000.0, flags)
}

func (graph *MemoryGraph) appendEdge(rec edgeRecord) EdgeID {
	id := EdgeID(len(graph.edges))
	graph.edges = append(graph.edges, rec)
	graph.adjacency[rec.nodeA] = append(graph.adjacency[rec.nodeA], id)
	if rec.nodeB != rec.nodeA {
		graph.adjacency[rec.nodeB] = append(graph.adjacency[rec.nodeB], id)
	}
	return id
}

// GetOutgoing returns cursor over edges which could be traversed from node
func (graph *MemoryGraph) GetOutgoing(node NodeID) EdgeIterator {
	return graph.GetOutgoingSkip(node)
}

// GetOutgoingSkip is the hierarchy-aware version of GetOutgoing
func (graph *MemoryGraph) GetOutgoingSkip(node NodeID) EdgeSkipIterator {
	graph.checkOpen()
	graph.checkNode(node)
	return newAdjacencyIterator(graph, node, FlagForward)
}

// GetIncoming returns cursor over edges which lead to node
func (graph *MemoryGraph) GetIncoming(node NodeID) EdgeIterator {
	return graph.GetIncomingSkip(node)
}

// GetIncomingSkip is the hierarchy-aware version of GetIncoming
func (graph *MemoryGraph) GetIncomingSkip(node NodeID) EdgeSkipIterator {
	graph.checkOpen()
	graph.checkNode(node)
	return newAdjacencyIterator(graph, node, FlagBackward)
}

// GetEdgeProps returns cursor positioned on edge viewed from endNode. Returns Empty if endNode is not endpoint of edge.
func (graph *MemoryGraph) GetEdgeProps(edge EdgeID, endNode NodeID) EdgeIterator {
	return graph.GetEdgePropsSkip(edge, endNode)
}

// GetEdgePropsSkip is the hierarchy-aware version of GetEdgeProps
func (graph *MemoryGraph) GetEdgePropsSkip(edge EdgeID, endNode NodeID) EdgeSkipIterator {
	rec := graph.record(edge)
	if rec.nodeA != endNode && rec.nodeB != endNode {
		return Empty
	}
	return newSingleEdgeIterator(graph, edge, endNode)
}

// Shortcut creates forward-only shortcut a -> b. Distance, flags and skipped edge are set through returned cursor.
func (graph *MemoryGraph) Shortcut(a, b NodeID) EdgeSkipIterator {
	edge := graph.AddEdge(a, b, 0, FlagForward|FlagShortcut)
	return newSingleEdgeIterator(graph, edge, a)
}

// SetLevel sets position of node in contraction hierarchy
func (graph *MemoryGraph) SetLevel(node NodeID, level int) {
	graph.checkOpen()
	graph.checkNode(node)
	graph.levels[node] = int32(level)
}

// Level returns position of node in contraction hierarchy
func (graph *MemoryGraph) Level(node NodeID) int {
	graph.checkOpen()
	graph.checkNode(node)
	return int(graph.levels[node])
}

// Capacity returns number of bytes allocated for nodes, levels, edges and adjacency lists
func (graph *MemoryGraph) Capacity() int64 {
	graph.checkOpen()
	total := int64(cap(graph.nodes))*nodeBytes +
		int64(cap(graph.levels))*levelBytes +
		int64(cap(graph.edges))*edgeBytes +
		int64(cap(graph.adjacency))*adjacencyBytes
	for _, list := range graph.adjacency[:cap(graph.adjacency)] {
		total += int64(cap(list)) * edgeIDBytes
	}
	return total
}

// IsClosed reports whether Close() has been called
func (graph *MemoryGraph) IsClosed() bool {
	return graph.closed
}

// Close releases memory. Pending changes are NOT flushed: call Flush() before.
func (graph *MemoryGraph) Close() error {
	if graph.closed {
		return ErrStorageClosed
	}
	graph.closed = true
	graph.nodes = nil
	graph.levels = nil
	graph.adjacency = nil
	graph.edges = nil
	return nil
}

// reset truncates graph without releasing memory
func (graph *MemoryGraph) reset() {
	graph.nodes = graph.nodes[:0]
	graph.levels = graph.levels[:0]
	graph.adjacency = graph.adjacency[:0]
	graph.edges = graph.edges[:0]
}
