package roadgraph

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportEdgesToCSV(t *testing.T) {
	graph := prepareScenarioGraph(t)
	graph.AddEdge(1, 3, 2.0, EncodeFlags(HIGHWAY_TERTIARY, true, true))
	fname := filepath.Join(t.TempDir(), "edges.csv")
	err := ExportEdgesToCSV(graph, fname, "wkt")
	if err != nil {
		t.Fatal(err)
	}
	file, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	reader := csv.NewReader(file)
	reader.Comma = ';'
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Header + 5 one way edges + 2 directions of two way edge
	if len(rows) != 8 {
		t.Fatalf("Number of rows must be %d, but got %d", 8, len(rows))
	}
	first := rows[1]
	if first[0] != "0" || first[1] != "1" || first[2] != "0" || first[4] != "primary" || first[5] != "false" || first[6] != "-1" {
		t.Errorf("First row must describe edge 0 -> 1, but got %v", first)
	}
	if !strings.HasPrefix(first[7], "LINESTRING(") {
		t.Errorf("Geometry must be WKT linestring, but got '%s'", first[7])
	}

	fnameGeoJSON := filepath.Join(t.TempDir(), "edges_geojson.csv")
	err = ExportEdgesToCSV(graph, fnameGeoJSON, "geojson")
	if err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(fnameGeoJSON)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "LineString") {
		t.Errorf("Geometry must be GeoJSON linestring")
	}
}

func TestExportGeoJSON(t *testing.T) {
	graph := prepareScenarioGraph(t)
	iter := graph.Shortcut(3, 1)
	iter.SetDistance(12.0)
	iter.SetSkippedEdge(3)
	fname := filepath.Join(t.TempDir(), "edges.geojson")
	err := ExportGeoJSON(graph, fname)
	if err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	fc := struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}{}
	err = json.Unmarshal(content, &fc)
	if err != nil {
		t.Fatal(err)
	}
	if fc.Type != "FeatureCollection" {
		t.Errorf("Type must be 'FeatureCollection', but got '%s'", fc.Type)
	}
	// Shortcut is not exported
	if len(fc.Features) != 5 {
		t.Fatalf("Number of features must be %d, but got %d", 5, len(fc.Features))
	}
	if fc.Features[0].Properties["road_class"] != "primary" {
		t.Errorf("Road class must be 'primary', but got %v", fc.Features[0].Properties["road_class"])
	}
}

func TestExportEdgesToCSVFailure(t *testing.T) {
	graph := prepareScenarioGraph(t)
	if err := writeEdgesCSV(graph, failingWriter{}, "wkt"); err == nil {
		t.Errorf("Failed write of edges must produce error")
	}
	if err := ExportEdgesToCSV(graph, filepath.Join(t.TempDir(), "missing", "edges.csv"), "wkt"); err == nil {
		t.Errorf("Export into missing directory must produce error")
	}
}
