package roadgraph

import (
	"testing"
)

func TestEmptyIterator(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Errorf("Empty iterator must report IsEmpty() == true")
	}
	calls := map[string]func(){
		"Next()":           func() { Empty.Next() },
		"Node()":           func() { Empty.Node() },
		"Edge()":           func() { Empty.Edge() },
		"BaseNode()":       func() { Empty.BaseNode() },
		"Distance()":       func() { Empty.Distance() },
		"SetDistance()":    func() { Empty.SetDistance(1.0) },
		"Flags()":          func() { Empty.Flags() },
		"SetFlags()":       func() { Empty.SetFlags(FlagsBoth) },
		"SkippedEdge()":    func() { Empty.SkippedEdge() },
		"SetSkippedEdge()": func() { Empty.SetSkippedEdge(0) },
	}
	// Every call fails every time
	for i := 0; i < 2; i++ {
		for name, call := range calls {
			expectPanic(t, name, ErrEmptyIterator, call)
		}
	}
	if !Empty.IsEmpty() {
		t.Errorf("Empty iterator must stay empty after failed calls")
	}
}

func TestEmptyIteratorIsShared(t *testing.T) {
	graph := prepareScenarioGraph(t)
	// Edge 0 is 0 -> 1, node 3 is not its endpoint
	iter := graph.GetEdgePropsSkip(0, 3)
	if iter != Empty {
		t.Errorf("Graph must return shared Empty iterator, but got %#v", iter)
	}
}

func TestEdgeValidity(t *testing.T) {
	if InvalidEdge.IsValid() {
		t.Errorf("InvalidEdge must not be valid")
	}
	if !EdgeID(0).IsValid() {
		t.Errorf("Edge 0 must be valid")
	}
	if EdgeID(-5).IsValid() {
		t.Errorf("Negative edge must not be valid")
	}
	if InvalidEdge.String() != "invalid" {
		t.Errorf("InvalidEdge must be printed as 'invalid', but got '%s'", InvalidEdge.String())
	}
}
