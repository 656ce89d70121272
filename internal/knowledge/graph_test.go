package knowledge

import (
	"reflect"
	"testing"
)

func TestGraphLoad_ValidSnapshot(t *testing.T) {
	g := NewGraph()
	nodes := []Node{{ID: "1", Label: "Algebra"}, {ID: "2", Label: "Calculus"}}
	edges := []Edge{{"1", "2"}}

	if err := g.Load(nodes, edges); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("counts = (%d, %d), want (2, 1)", g.NodeCount(), g.EdgeCount())
	}
	if !g.HasEdge("1", "2") {
		t.Error("expected edge 1->2")
	}
	if g.HasEdge("2", "1") {
		t.Error("edge direction must matter")
	}
}

func TestGraphLoad_RejectsDanglingEdge(t *testing.T) {
	g := NewGraph()
	nodes := []Node{{ID: "1", Label: "Algebra"}}
	edges := []Edge{{"1", "missing"}}

	err := g.Load(nodes, edges)
	if err == nil {
		t.Fatal("expected error for dangling edge")
	}
	if g.NodeCount() != 0 {
		t.Error("failed load must leave graph unchanged")
	}
}

func TestGraphLoad_RejectsCyclicSnapshot(t *testing.T) {
	// A previously saved snapshot that is somehow cyclic is a corrupt-state
	// signal and must be reported, not silently accepted.
	g := NewGraph()
	nodes := []Node{{ID: "1", Label: "A"}, {ID: "2", Label: "B"}}
	edges := []Edge{{"1", "2"}, {"2", "1"}}

	err := g.Load(nodes, edges)
	cyc, ok := err.(*ErrCycle)
	if !ok {
		t.Fatalf("err = %v, want *ErrCycle", err)
	}
	if len(cyc.Cycle) != 2 {
		t.Errorf("cycle length = %d, want 2", len(cyc.Cycle))
	}
}

func TestGraphLoad_RejectsDuplicateNodeID(t *testing.T) {
	g := NewGraph()
	nodes := []Node{{ID: "1", Label: "A"}, {ID: "1", Label: "B"}}
	if err := g.Load(nodes, nil); err == nil {
		t.Fatal("expected error for duplicate node id")
	}
}

func TestGraphLoad_ReplacesPreviousContents(t *testing.T) {
	g := NewGraph()
	if err := g.Load([]Node{{ID: "1", Label: "A"}}, nil); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if err := g.Load([]Node{{ID: "2", Label: "B"}}, nil); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if _, ok := g.Node("1"); ok {
		t.Error("old node survived reload")
	}
	if _, ok := g.Node("2"); !ok {
		t.Error("new node missing after reload")
	}
}

func TestGraphSnapshot_IsACopy(t *testing.T) {
	g := NewGraph()
	if err := g.Load([]Node{{ID: "1", Label: "A"}, {ID: "2", Label: "B"}}, []Edge{{"1", "2"}}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	nodes, edges := g.Snapshot()
	nodes[0].Label = "mutated"
	edges[0].Source = "mutated"

	got, _ := g.Node("1")
	if got.Label != "A" {
		t.Error("snapshot mutation leaked into graph nodes")
	}
	if !g.HasEdge("1", "2") {
		t.Error("snapshot mutation leaked into graph edges")
	}
}

func TestGraphSnapshot_PreservesInsertionOrder(t *testing.T) {
	g := NewGraph()
	in := []Node{{ID: "3", Label: "C"}, {ID: "1", Label: "A"}, {ID: "2", Label: "B"}}
	if err := g.Load(in, nil); err != nil {
		t.Fatalf("Load: %v", err)
	}
	nodes, _ := g.Snapshot()
	if !reflect.DeepEqual(nodes, in) {
		t.Errorf("nodes = %v, want insertion order %v", nodes, in)
	}
}

func TestGraphNodeByLabel(t *testing.T) {
	g := NewGraph()
	if err := g.Load([]Node{{ID: "1", Label: "Algebra"}}, nil); err != nil {
		t.Fatalf("Load: %v", err)
	}
	n, ok := g.NodeByLabel("Algebra")
	if !ok || n.ID != "1" {
		t.Errorf("NodeByLabel = (%v, %v), want node 1", n, ok)
	}
	if _, ok := g.NodeByLabel("Geometry"); ok {
		t.Error("unexpected match for unknown label")
	}
}
