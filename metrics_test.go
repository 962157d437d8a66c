package roadgraph

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCapacityCollector(t *testing.T) {
	graph := prepareScenarioGraph(t)
	collector := NewCapacityCollector("roadgraph")
	collector.Register("memory_graph", graph)

	if cnt := testutil.CollectAndCount(collector, "roadgraph_storage_capacity_bytes"); cnt != 1 {
		t.Errorf("Number of metrics must be %d, but got %d", 1, cnt)
	}
	value := testutil.ToFloat64(collector)
	if value != float64(graph.Capacity()) {
		t.Errorf("Capacity metric must be %f, but got %f", float64(graph.Capacity()), value)
	}

	graph.Close()
	if cnt := testutil.CollectAndCount(collector); cnt != 0 {
		t.Errorf("Closed storage must be skipped, but got %d metrics", cnt)
	}

	collector.Unregister("memory_graph")
	collector.Register("another", prepareScenarioGraph(t))
	if cnt := testutil.CollectAndCount(collector); cnt != 1 {
		t.Errorf("Number of metrics must be %d, but got %d", 1, cnt)
	}
}
