package roadgraph

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// ExportEdgesToCSV writes every traversable direction of every edge: edge which could be passed both ways produces two rows.
// geomFormat is either 'wkt' or 'geojson'.
func ExportEdgesToCSV(graph *MemoryGraph, fname, geomFormat string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	err = writeEdgesCSV(graph, file, geomFormat)
	if err != nil {
		file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return errors.Wrap(err, "Can't close file")
	}
	return nil
}

func writeEdgesCSV(graph *MemoryGraph, out io.Writer, geomFormat string) error {
	writer := csv.NewWriter(out)
	writer.Comma = ';'

	// 		from_vertex_id - int64, ID of source vertex
	// 		to_vertex_id - int64, ID of target vertex
	// 		edge_id - int64, ID of stored edge (shared by both directions)
	// 		distance - float64, Weight of an edge (meters)
	// 		road_class - string, OSM highway type
	// 		is_shortcut - bool, if edge has been added by contraction
	// 		skipped_edge - int64, ID of edge replaced by shortcut or -1
	//      geom - geometry (WKT or GeoJSON representation)
	err := writer.Write([]string{"from_vertex_id", "to_vertex_id", "edge_id", "distance", "road_class", "is_shortcut", "skipped_edge", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	useGeoJSON := strings.ToLower(geomFormat) == "geojson"
	for i := 0; i < graph.NodeCount(); i++ {
		iter := graph.GetOutgoingSkip(NodeID(i))
		for iter.Next() {
			line := []GeoPoint{graph.Point(iter.BaseNode()), graph.Point(iter.Node())}
			geomStr := ""
			if useGeoJSON {
				geomStr = PrepareGeoJSONLinestring(line)
			} else {
				geomStr = PrepareWKTLinestring(line)
			}
			err = writer.Write([]string{
				fmt.Sprintf("%d", iter.BaseNode()),
				fmt.Sprintf("%d", iter.Node()),
				fmt.Sprintf("%d", iter.Edge()),
				fmt.Sprintf("%f", iter.Distance()),
				RoadClass(iter.Flags()).String(),
				fmt.Sprintf("%t", IsShortcutFlags(iter.Flags())),
				fmt.Sprintf("%d", iter.SkippedEdge()),
				geomStr,
			})
			if err != nil {
				return errors.Wrap(err, "Can't write edge")
			}
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		return errors.Wrap(err, "Can't flush CSV writer")
	}
	return nil
}

// ExportGeoJSON writes stored edges as GeoJSON FeatureCollection. Shortcuts are skipped.
func ExportGeoJSON(graph *MemoryGraph, fname string) error {
	fc := geojson.NewFeatureCollection()
	for i := 0; i < graph.EdgeCount(); i++ {
		rec := graph.record(EdgeID(i))
		if IsShortcutFlags(rec.flags) {
			continue
		}
		line := []GeoPoint{graph.Point(rec.nodeA), graph.Point(rec.nodeB)}
		feature := geojson.NewLineStringFeature(geoJSONCoordinates(line))
		feature.SetProperty("edge_id", i)
		feature.SetProperty("source", int64(rec.nodeA))
		feature.SetProperty("target", int64(rec.nodeB))
		feature.SetProperty("distance", rec.distance)
		feature.SetProperty("road_class", RoadClass(rec.flags).String())
		feature.SetProperty("forward", IsForward(rec.flags))
		feature.SetProperty("backward", IsBackward(rec.flags))
		fc.AddFeature(feature)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal features")
	}
	err = os.WriteFile(fname, b, 0644)
	if err != nil {
		return errors.Wrap(err, "Can't write file")
	}
	return nil
}
