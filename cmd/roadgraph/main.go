package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/LdDl/roadgraph"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	configFile    = flag.String("config", "", "Filename of YAML configuration (optional). Flags below override it")
	dir           = flag.String("dir", "", "Directory of persisted graph (default is taken from configuration: './graph')")
	edgesFile     = flag.String("edges", "", "Filename of 'Comma-Separated Values' (CSV) formatted edges to import. Expected fields: from;to;weight[;highway[;oneway]]")
	nodesFile     = flag.String("nodes", "", "Filename of 'Comma-Separated Values' (CSV) formatted vertices coordinates to import. Expected fields: id;lat;lon")
	tagStr        = flag.String("tags", "", "Set of needed tags (separated by commas). Default is taken from configuration")
	compress      = flag.Bool("compress", false, "Compress persisted files with snappy?")
	doContraction = flag.Bool("contract", false, "Prepare contraction hierarchies shortcuts?")
	out           = flag.String("out", "", "Filename of CSV export of edges (optional)")
	geomFormat    = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	geojsonOut    = flag.String("geojson", "", "Filename of GeoJSON export of edges (optional)")
	source        = flag.Int64("source", -1, "Source vertex for shortest path query (optional)")
	target        = flag.Int64("target", -1, "Target vertex for shortest path query (optional)")
	verbose       = flag.Bool("verbose", false, "Print progress information?")
)

func main() {

	flag.Parse()

	cfg := roadgraph.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = roadgraph.LoadConfig(*configFile)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
	if *dir != "" {
		cfg.Storage.Directory = *dir
	}
	if *compress {
		cfg.Storage.Compress = true
	}
	if *tagStr != "" {
		cfg.Encoder.Tags = strings.Split(*tagStr, ",")
	}

	graph := roadgraph.NewMemoryGraph(cfg.GraphOptions(*verbose)...)
	defer graph.Close()
	if *verbose {
		fmt.Println(graph)
	}

	if !graph.LoadExisting() {
		fmt.Printf("No graph found in '%s', starting from scratch\n", cfg.Storage.Directory)
	}

	if *edgesFile != "" {
		_, err := roadgraph.ImportEdgesCSV(graph, *edgesFile, &cfg.Encoder, *verbose)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	if *nodesFile != "" {
		_, err := roadgraph.ImportNodesCSV(graph, *nodesFile, *verbose)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	if *doContraction {
		err := os.MkdirAll(cfg.Storage.Directory, 0755)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		_, err = roadgraph.PrepareShortcuts(graph, graph.NodeCount(), cfg.Storage.Directory, *verbose)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	err := graph.Flush()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *out != "" {
		err = roadgraph.ExportEdgesToCSV(graph, *out, *geomFormat)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
	if *geojsonOut != "" {
		err = roadgraph.ExportGeoJSON(graph, *geojsonOut)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	if *source >= 0 && *target >= 0 {
		chGraph, err := roadgraph.ToContractionGraph(graph, graph.NodeCount())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		chGraph.PrepareContractionHierarchies()
		cost, path := chGraph.ShortestPath(*source, *target)
		fmt.Printf("Shortest path %d -> %d: cost %f, vertices %v\n", *source, *target, cost, path)
	}

	printCapacity(graph, cfg.Metrics.Namespace)
}

func printCapacity(graph *roadgraph.MemoryGraph, namespace string) {
	collector := roadgraph.NewCapacityCollector(namespace)
	collector.Register("memory_graph", graph)
	registry := prometheus.NewRegistry()
	registry.MustRegister(collector)
	families, err := registry.Gather()
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			fmt.Printf("%s{storage=%q} %.0f\n", family.GetName(), metric.GetLabel()[0].GetValue(), metric.GetGauge().GetValue())
		}
	}
	fmt.Printf("Nodes: %d, edges: %d\n", graph.NodeCount(), graph.EdgeCount())
}
