package roadgraph

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

const (
	nodesFileName      = "nodes.csv"
	edgesFileName      = "edges.csv"
	compressedFileExt  = ".sz"
	persistedSeparator = ';'
)

var (
	nodesHeader = []string{"node_id", "lat", "lon", "level"}
	edgesHeader = []string{"edge_id", "node_a", "node_b", "distance", "flags", "skipped_edge"}
)

func (graph *MemoryGraph) fileName(base string) string {
	if graph.compress {
		base += compressedFileExt
	}
	return filepath.Join(graph.directory, base)
}

// Flush writes nodes and edges into configured directory
func (graph *MemoryGraph) Flush() error {
	graph.checkOpen()
	if graph.directory == "" {
		return errors.New("Directory is not set")
	}
	st := time.Now()
	if graph.verbose {
		fmt.Printf("Flushing graph into '%s'...", graph.directory)
	}
	err := os.MkdirAll(graph.directory, 0755)
	if err != nil {
		return errors.Wrap(err, "Can't create directory")
	}
	err = graph.writeFile(graph.fileName(nodesFileName), graph.writeNodes)
	if err != nil {
		return errors.Wrap(err, "Can't flush nodes")
	}
	err = graph.writeFile(graph.fileName(edgesFileName), graph.writeEdges)
	if err != nil {
		return errors.Wrap(err, "Can't flush edges")
	}
	if graph.verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}
	return nil
}

func (graph *MemoryGraph) writeFile(fname string, write func(writer *csv.Writer) error) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	err = graph.writeContent(file, write)
	if err != nil {
		file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return errors.Wrap(err, "Can't close file")
	}
	return nil
}

func (graph *MemoryGraph) writeContent(dst io.Writer, write func(writer *csv.Writer) error) error {
	out := dst
	var compressed *snappy.Writer
	if graph.compress {
		compressed = snappy.NewBufferedWriter(dst)
		out = compressed
	}

	writer := csv.NewWriter(out)
	writer.Comma = persistedSeparator
	err := write(writer)
	if err != nil {
		return err
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		return errors.Wrap(err, "Can't flush CSV writer")
	}
	if compressed != nil {
		if err = compressed.Close(); err != nil {
			return errors.Wrap(err, "Can't flush snappy stream")
		}
	}
	return nil
}

func (graph *MemoryGraph) writeNodes(writer *csv.Writer) error {
	err := writer.Write(nodesHeader)
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for i, pt := range graph.nodes {
		err = writer.Write([]string{
			fmt.Sprintf("%d", i),
			strconv.FormatFloat(pt.Lat, 'f', -1, 64),
			strconv.FormatFloat(pt.Lon, 'f', -1, 64),
			fmt.Sprintf("%d", graph.levels[i]),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write node")
		}
	}
	return nil
}

func (graph *MemoryGraph) writeEdges(writer *csv.Writer) error {
	err := writer.Write(edgesHeader)
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for i, rec := range graph.edges {
		err = writer.Write([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", rec.nodeA),
			fmt.Sprintf("%d", rec.nodeB),
			strconv.FormatFloat(rec.distance, 'f', -1, 64),
			fmt.Sprintf("%d", rec.flags),
			fmt.Sprintf("%d", rec.skippedEdge),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write edge")
		}
	}
	return nil
}

// LoadExisting replaces graph content with persisted one. Returns false if directory holds no valid graph.
// Graph is left untouched when there are no persisted files and left empty when they can't be parsed.
func (graph *MemoryGraph) LoadExisting() bool {
	graph.checkOpen()
	if graph.directory == "" {
		return false
	}
	for _, base := range []string{nodesFileName, edgesFileName} {
		if _, err := os.Stat(graph.fileName(base)); err != nil {
			if graph.verbose {
				fmt.Printf("Nothing to load: %s\n", err.Error())
			}
			return false
		}
	}
	st := time.Now()
	if graph.verbose {
		fmt.Printf("Loading graph from '%s'...", graph.directory)
	}
	err := graph.load()
	if err != nil {
		graph.reset()
		if graph.verbose {
			fmt.Printf("Nothing to load: %s\n", err.Error())
		}
		return false
	}
	if graph.verbose {
		fmt.Printf("Done in %v (nodes: %d, edges: %d)\n", time.Since(st), len(graph.nodes), len(graph.edges))
	}
	return true
}

func (graph *MemoryGraph) load() error {
	graph.reset()
	nodes, err := readRecords(graph.fileName(nodesFileName), graph.compress, len(nodesHeader))
	if err != nil {
		return errors.Wrap(err, "Can't read nodes")
	}
	edges, err := readRecords(graph.fileName(edgesFileName), graph.compress, len(edgesHeader))
	if err != nil {
		return errors.Wrap(err, "Can't read edges")
	}
	for i, row := range nodes {
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil || id != int64(i) {
			return errors.Errorf("Bad node id '%s' on position %d", row[0], i)
		}
		lat, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return errors.Wrapf(err, "Bad latitude of node %d", i)
		}
		lon, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return errors.Wrapf(err, "Bad longitude of node %d", i)
		}
		level, err := strconv.ParseInt(row[3], 10, 32)
		if err != nil {
			return errors.Wrapf(err, "Bad level of node %d", i)
		}
		graph.appendNode(GeoPoint{Lat: lat, Lon: lon}, int32(level))
	}
	for i, row := range edges {
		rec, err := parseEdgeRecord(row, len(nodes), len(edges))
		if err != nil {
			return errors.Wrapf(err, "Bad edge on position %d", i)
		}
		if rec.id != EdgeID(i) {
			return errors.Errorf("Edge id %d is out of order on position %d", rec.id, i)
		}
		graph.appendEdge(rec.edgeRecord)
	}
	return nil
}

type persistedEdge struct {
	edgeRecord
	id EdgeID
}

func parseEdgeRecord(row []string, nodesNum, edgesNum int) (persistedEdge, error) {
	values := make([]int64, 0, 5)
	for _, idx := range []int{0, 1, 2, 4, 5} {
		v, err := strconv.ParseInt(row[idx], 10, 64)
		if err != nil {
			return persistedEdge{}, errors.Wrapf(err, "Bad integer in column '%s'", edgesHeader[idx])
		}
		values = append(values, v)
	}
	distance, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return persistedEdge{}, errors.Wrap(err, "Bad distance")
	}
	if distance < 0 {
		return persistedEdge{}, ErrNegativeDistance
	}
	if values[1] < 0 || values[1] >= int64(nodesNum) || values[2] < 0 || values[2] >= int64(nodesNum) {
		return persistedEdge{}, ErrNodeOutOfRange
	}
	skipped := EdgeID(values[4])
	if skipped.IsValid() && int64(skipped) >= int64(edgesNum) {
		return persistedEdge{}, ErrEdgeOutOfRange
	}
	if !skipped.IsValid() {
		skipped = InvalidEdge
	}
	return persistedEdge{
		id: EdgeID(values[0]),
		edgeRecord: edgeRecord{
			nodeA:       NodeID(values[1]),
			nodeB:       NodeID(values[2]),
			distance:    distance,
			flags:       int(values[3]),
			skippedEdge: skipped,
		},
	}, nil
}

// readRecords reads all rows of persisted file except header
func readRecords(fname string, compressed bool, fields int) ([][]string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open file")
	}
	defer file.Close()

	var in io.Reader = file
	if compressed {
		in = snappy.NewReader(file)
	}
	reader := csv.NewReader(in)
	reader.Comma = persistedSeparator
	reader.FieldsPerRecord = fields

	_, err = reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "Can't read header")
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "Can't read rows")
	}
	return rows, nil
}
