package knowledge

import (
	"reflect"
	"strconv"
	"testing"
)

func TestDetectCycle_EmptyEdgeList(t *testing.T) {
	res := DetectCycle(nil)
	if !res.Valid {
		t.Error("empty edge list should be valid")
	}
	if res.Cycle != nil {
		t.Errorf("Cycle = %v, want nil", res.Cycle)
	}
}

func TestDetectCycle_AcyclicChain(t *testing.T) {
	edges := []Edge{{"A", "B"}, {"B", "C"}, {"C", "D"}}
	res := DetectCycle(edges)
	if !res.Valid {
		t.Errorf("chain should be valid, got cycle %v", res.Cycle)
	}
}

func TestDetectCycle_Triangle(t *testing.T) {
	edges := []Edge{{"A", "B"}, {"B", "C"}, {"C", "A"}}
	res := DetectCycle(edges)
	if res.Valid {
		t.Fatal("triangle should be invalid")
	}
	want := []Edge{{"A", "B"}, {"B", "C"}, {"C", "A"}}
	if !reflect.DeepEqual(res.Cycle, want) {
		t.Errorf("Cycle = %v, want %v", res.Cycle, want)
	}
}

func TestDetectCycle_SelfLoop(t *testing.T) {
	res := DetectCycle([]Edge{{"A", "A"}})
	if res.Valid {
		t.Fatal("self-loop should be invalid")
	}
	want := []Edge{{"A", "A"}}
	if !reflect.DeepEqual(res.Cycle, want) {
		t.Errorf("Cycle = %v, want %v", res.Cycle, want)
	}
}

func TestDetectCycle_CycleBeyondEntryPoint(t *testing.T) {
	// Entry node A leads into a cycle B->C->B; the reported cycle must not
	// include the lead-in edge.
	edges := []Edge{{"A", "B"}, {"B", "C"}, {"C", "B"}}
	res := DetectCycle(edges)
	if res.Valid {
		t.Fatal("should be invalid")
	}
	want := []Edge{{"B", "C"}, {"C", "B"}}
	if !reflect.DeepEqual(res.Cycle, want) {
		t.Errorf("Cycle = %v, want %v", res.Cycle, want)
	}
}

func TestDetectCycle_DisconnectedComponents(t *testing.T) {
	// Valid component first, cyclic component second; the cycle must still
	// be found without visiting order mattering.
	edges := []Edge{{"A", "B"}, {"X", "Y"}, {"Y", "X"}}
	res := DetectCycle(edges)
	if res.Valid {
		t.Fatal("should be invalid")
	}
	want := []Edge{{"X", "Y"}, {"Y", "X"}}
	if !reflect.DeepEqual(res.Cycle, want) {
		t.Errorf("Cycle = %v, want %v", res.Cycle, want)
	}
}

func TestDetectCycle_Deterministic(t *testing.T) {
	edges := []Edge{{"C", "A"}, {"A", "B"}, {"B", "C"}, {"D", "A"}}
	first := DetectCycle(edges)
	second := DetectCycle(edges)
	if first.Valid != second.Valid {
		t.Fatal("validity differs between identical calls")
	}
	if !reflect.DeepEqual(first.Cycle, second.Cycle) {
		t.Errorf("cycles differ: %v vs %v", first.Cycle, second.Cycle)
	}
}

func TestDetectCycle_DiamondIsAcyclic(t *testing.T) {
	// Two paths to the same node are fine; only a path back to the origin
	// breaks the invariant.
	edges := []Edge{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}}
	res := DetectCycle(edges)
	if !res.Valid {
		t.Errorf("diamond should be valid, got cycle %v", res.Cycle)
	}
}

func TestDetectCycle_LargeChainNoStackOverflow(t *testing.T) {
	// The DFS is iterative; a deep chain must not exhaust the call stack.
	var edges []Edge
	for i := 0; i < 50000; i++ {
		edges = append(edges, Edge{Source: "n" + strconv.Itoa(i), Target: "n" + strconv.Itoa(i+1)})
	}
	res := DetectCycle(edges)
	if !res.Valid {
		t.Error("long chain should be valid")
	}

	edges = append(edges, Edge{Source: "n50000", Target: "n0"})
	res = DetectCycle(edges)
	if res.Valid {
		t.Error("closed chain should be invalid")
	}
	if len(res.Cycle) != 50001 {
		t.Errorf("cycle length = %d, want 50001", len(res.Cycle))
	}
}
