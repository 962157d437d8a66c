package roadgraph

import (
	"testing"

	"github.com/pkg/errors"
)

// expectPanic checks that fn panics with error caused by target
func expectPanic(t *testing.T, name string, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("%s must panic with '%v', but it did not", name, target)
			return
		}
		err, ok := r.(error)
		if !ok {
			t.Errorf("%s must panic with error, but got %v", name, r)
			return
		}
		if errors.Cause(err) != target {
			t.Errorf("%s must panic with '%v', but got '%v'", name, target, err)
		}
	}()
	fn()
}

// failingWriter rejects every write
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk is full")
}

func equalNodes(a, b []NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// prepareScenarioGraph returns directed graph:
//
//	0 -> 1 (5.0), 0 -> 2 (3.0), 0 -> 2 (3.0), 3 -> 0 (7.0), 1 -> 2 (1.0)
func prepareScenarioGraph(t *testing.T) *MemoryGraph {
	t.Helper()
	graph := NewMemoryGraph()
	for i := 0; i < 4; i++ {
		graph.AddNode(55.75+float64(i)*0.001, 37.61+float64(i)*0.001)
	}
	oneway := EncodeFlags(HIGHWAY_PRIMARY, true, false)
	graph.AddEdge(0, 1, 5.0, oneway)
	graph.AddEdge(0, 2, 3.0, oneway)
	graph.AddEdge(0, 2, 3.0, oneway)
	graph.AddEdge(3, 0, 7.0, oneway)
	graph.AddEdge(1, 2, 1.0, oneway)
	return graph
}
