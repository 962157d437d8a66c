package roadgraph

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// ImportEdgesCSV reads edges file of format 'from;to;weight[;highway[;oneway]]' (first row is header) into graph.
// Nodes are created on demand so that NodeID equals vertex ID from file. Rows rejected by encoder are skipped.
// Returns number of imported edges.
func ImportEdgesCSV(graph *MemoryGraph, fname string, encoder *FlagEncoder, verbose bool) (int, error) {
	file, err := os.Open(fname)
	if err != nil {
		return 0, errors.Wrap(err, "File open")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	_, err = reader.Read()
	if err != nil {
		return 0, errors.Wrap(err, "Can't read header")
	}

	if verbose {
		fmt.Printf("Importing edges from '%s'...", fname)
	}
	st := time.Now()
	imported, skipped := 0, 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, errors.Wrapf(err, "Can't read line %d", line)
		}
		if len(row) < 3 {
			return imported, errors.Errorf("Line %d: expected at least 3 fields, got %d", line, len(row))
		}
		from, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil || from < 0 {
			return imported, errors.Errorf("Line %d: bad source vertex '%s'", line, row[0])
		}
		to, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil || to < 0 {
			return imported, errors.Errorf("Line %d: bad target vertex '%s'", line, row[1])
		}
		weight, err := strconv.ParseFloat(row[2], 64)
		if err != nil || weight < 0 {
			return imported, errors.Errorf("Line %d: bad weight '%s'", line, row[2])
		}
		tags := osm.Tags{{Key: encoder.EntityName, Value: "road"}}
		if len(row) > 3 && row[3] != "" {
			tags[0].Value = row[3]
		}
		if len(row) > 4 && row[4] != "" {
			tags = append(tags, osm.Tag{Key: "oneway", Value: row[4]})
		}
		flags, ok := encoder.EncodeTags(tags)
		if !ok {
			skipped++
			continue
		}
		graph.ensureNodes(NodeID(from))
		graph.ensureNodes(NodeID(to))
		graph.AddEdge(NodeID(from), NodeID(to), weight, flags)
		imported++
	}
	if verbose {
		fmt.Printf("Done in %v (imported: %d, skipped: %d)\n", time.Since(st), imported, skipped)
	}
	return imported, nil
}

// ensureNodes adds nodes without coordinates until node exists. Coordinates are set by ImportNodesCSV or SetNode.
func (graph *MemoryGraph) ensureNodes(node NodeID) {
	graph.checkOpen()
	for NodeID(len(graph.nodes)) <= node {
		graph.appendNode(GeoPoint{}, 0)
	}
}

// ImportNodesCSV reads coordinates of vertices from file of format 'id;lat;lon' (first row is header).
// Missing nodes are created; coordinates of existing ones are replaced. Returns number of imported nodes.
func ImportNodesCSV(graph *MemoryGraph, fname string, verbose bool) (int, error) {
	file, err := os.Open(fname)
	if err != nil {
		return 0, errors.Wrap(err, "File open")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = 3

	_, err = reader.Read()
	if err != nil {
		return 0, errors.Wrap(err, "Can't read header")
	}

	if verbose {
		fmt.Printf("Importing nodes from '%s'...", fname)
	}
	st := time.Now()
	imported := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, errors.Wrapf(err, "Can't read line %d", line)
		}
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil || id < 0 {
			return imported, errors.Errorf("Line %d: bad vertex '%s'", line, row[0])
		}
		lat, err := strconv.ParseFloat(row[1], 64)
		if err != nil || lat < -90 || lat > 90 {
			return imported, errors.Errorf("Line %d: bad latitude '%s'", line, row[1])
		}
		lon, err := strconv.ParseFloat(row[2], 64)
		if err != nil || lon < -180 || lon > 180 {
			return imported, errors.Errorf("Line %d: bad longitude '%s'", line, row[2])
		}
		graph.ensureNodes(NodeID(id))
		graph.SetNode(NodeID(id), GeoPoint{Lat: lat, Lon: lon})
		imported++
	}
	if verbose {
		fmt.Printf("Done in %v (imported: %d)\n", time.Since(st), imported)
	}
	return imported, nil
}
