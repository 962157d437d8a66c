package roadgraph

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
)

const (
	shortcutsFileName = "ch_shortcuts.csv"
	// shortcutEpsilon is tolerance used when matching shortcut halves by distance.
	// Exported shortcut weights are rounded to 6 decimal places.
	shortcutEpsilon = 1e-3
)

// chShortcut is a shortcut produced by contraction: from -> to through via
type chShortcut struct {
	from NodeID
	to   NodeID
	via  NodeID
	cost float64
}

// ToContractionGraph mirrors ordinary (non-shortcut) edges of graph into contraction hierarchies graph.
// Nodes are labeled by their NodeID.
func ToContractionGraph(graph Graph, nodesNum int) (*ch.Graph, error) {
	chGraph := ch.Graph{}
	for i := 0; i < nodesNum; i++ {
		err := chGraph.CreateVertex(int64(i))
		if err != nil {
			return nil, errors.Wrapf(err, "Can't create vertex %d", i)
		}
	}
	for i := 0; i < nodesNum; i++ {
		iter := graph.GetOutgoing(NodeID(i))
		for iter.Next() {
			if IsShortcutFlags(iter.Flags()) {
				continue
			}
			err := chGraph.AddEdge(int64(iter.BaseNode()), int64(iter.Node()), iter.Distance())
			if err != nil {
				return nil, errors.Wrapf(err, "Can't add edge %d", iter.Edge())
			}
		}
	}
	return &chGraph, nil
}

// PrepareShortcuts contracts graph, stores node order as levels and adds shortcuts found by contraction.
// workDir is used for intermediate export of shortcuts. Returns number of added shortcuts.
func PrepareShortcuts(graph HierarchyGraph, nodesNum int, workDir string, verbose bool) (int, error) {
	chGraph, err := ToContractionGraph(graph, nodesNum)
	if err != nil {
		return 0, errors.Wrap(err, "Can't prepare contraction graph")
	}

	if verbose {
		fmt.Println("Starting contraction process....")
	}
	st := time.Now()
	chGraph.PrepareContractionHierarchies()
	if verbose {
		fmt.Printf("Done contraction process in %v\n", time.Since(st))
	}

	for i := range chGraph.Vertices {
		graph.SetLevel(NodeID(chGraph.Vertices[i].Label), int(chGraph.Vertices[i].OrderPos()))
	}

	fname := filepath.Join(workDir, shortcutsFileName)
	err = chGraph.ExportShortcutsToFile(fname)
	if err != nil {
		return 0, errors.Wrap(err, "Can't export shortcuts")
	}
	defer os.Remove(fname)

	shortcuts, err := readShortcuts(fname)
	if err != nil {
		return 0, errors.Wrap(err, "Can't read shortcuts")
	}
	added, err := applyShortcuts(graph, shortcuts)
	if err != nil {
		return added, errors.Wrap(err, "Can't apply shortcuts")
	}
	if verbose {
		fmt.Printf("Added %d shortcuts\n", added)
	}
	return added, nil
}

// readShortcuts parses file produced by ch.Graph.ExportShortcutsToFile:
// from_vertex_id;to_vertex_id;weight;via_vertex_id
func readShortcuts(fname string) ([]chShortcut, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = 4

	_, err = reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "Can't read header")
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "Can't read rows")
	}
	shortcuts := make([]chShortcut, 0, len(rows))
	for _, row := range rows {
		from, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "Bad source vertex")
		}
		to, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "Bad target vertex")
		}
		cost, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, errors.Wrap(err, "Bad weight")
		}
		via, err := strconv.ParseInt(row[3], 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "Bad via vertex")
		}
		shortcuts = append(shortcuts, chShortcut{
			from: NodeID(from),
			to:   NodeID(to),
			via:  NodeID(via),
			cost: cost,
		})
	}
	return shortcuts, nil
}

// applyShortcuts adds shortcuts to graph. Shortcuts may depend on each other (from -> via could be a shortcut
// itself), so they are applied in passes until nothing changes.
// Shortcuts already stored in graph (e.g. by previous contraction) are not added again.
func applyShortcuts(graph HierarchyGraph, shortcuts []chShortcut) (int, error) {
	added := 0
	pending := shortcuts
	for len(pending) > 0 {
		postponed := pending[:0:0]
		for _, shortcut := range pending {
			if hasShortcut(graph, shortcut.from, shortcut.to, shortcut.cost) {
				continue
			}
			skipped, _ := findHalves(graph, shortcut.from, shortcut.via, shortcut.to, shortcut.cost)
			if !skipped.IsValid() {
				postponed = append(postponed, shortcut)
				continue
			}
			iter := graph.Shortcut(shortcut.from, shortcut.to)
			iter.SetDistance(shortcut.cost)
			iter.SetSkippedEdge(skipped)
			added++
		}
		if len(postponed) == len(pending) {
			return added, errors.Errorf("There are no edges %d -> %d -> %d for %d shortcut(s)", postponed[0].from, postponed[0].via, postponed[0].to, len(postponed))
		}
		pending = postponed
	}
	return added, nil
}

// hasShortcut reports whether graph holds shortcut from -> to of given cost
func hasShortcut(graph Graph, from, to NodeID, cost float64) bool {
	iter := graph.GetOutgoing(from)
	for iter.Next() {
		if iter.Node() == to && IsShortcutFlags(iter.Flags()) && math.Abs(iter.Distance()-cost) <= shortcutEpsilon {
			return true
		}
	}
	return false
}

// findHalves returns pair of edges from -> via and via -> to which sum up to cost.
// InvalidEdge is returned for both if there is no such pair.
func findHalves(graph Graph, from, via, to NodeID, cost float64) (EdgeID, EdgeID) {
	first, second := InvalidEdge, InvalidEdge
	bestDiff := math.Inf(1)
	fromIter := graph.GetOutgoing(from)
	for fromIter.Next() {
		if fromIter.Node() != via {
			continue
		}
		firstEdge, firstDistance := fromIter.Edge(), fromIter.Distance()
		viaIter := graph.GetOutgoing(via)
		for viaIter.Next() {
			if viaIter.Node() != to {
				continue
			}
			diff := math.Abs(firstDistance + viaIter.Distance() - cost)
			if diff < bestDiff {
				first, second = firstEdge, viaIter.Edge()
				bestDiff = diff
			}
		}
	}
	if bestDiff > shortcutEpsilon {
		return InvalidEdge, InvalidEdge
	}
	return first, second
}

// UnpackShortcut expands edge (viewed from base) into original edges in traversal order.
// Ordinary edge is returned as is.
func UnpackShortcut(graph HierarchyGraph, edge EdgeID, base NodeID) ([]EdgeID, error) {
	result := []EdgeID{}
	err := unpackShortcut(graph, edge, base, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func unpackShortcut(graph HierarchyGraph, edge EdgeID, base NodeID, result *[]EdgeID) error {
	iter := graph.GetEdgePropsSkip(edge, base)
	if iter.IsEmpty() {
		return errors.Errorf("Node %d is not endpoint of edge %d", base, edge)
	}
	skipped := iter.SkippedEdge()
	if !skipped.IsValid() {
		*result = append(*result, edge)
		return nil
	}
	target := iter.Node()
	total := iter.Distance()

	via := GetToNode(graph, skipped, base)
	first, second := findHalves(graph, base, via, target, total)
	if first != skipped {
		// Another pair of edges may fit as well, but skipped edge is the source of truth
		second = InvalidEdge
		firstDistance := graph.GetEdgeProps(skipped, base).Distance()
		viaIter := graph.GetOutgoing(via)
		for viaIter.Next() {
			if viaIter.Node() == target && math.Abs(firstDistance+viaIter.Distance()-total) <= shortcutEpsilon {
				second = viaIter.Edge()
				break
			}
		}
	}
	if !second.IsValid() {
		return errors.Errorf("Can't find second half of shortcut %d (%d -> %d -> %d)", edge, base, via, target)
	}
	err := unpackShortcut(graph, skipped, base, result)
	if err != nil {
		return err
	}
	return unpackShortcut(graph, second, via, result)
}
