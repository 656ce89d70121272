package knowledge

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// fakeSnapshotStore is an in-memory SnapshotStore for session tests.
type fakeSnapshotStore struct {
	docs     map[string]Document
	saveErr  error
	loadErr  error
	saveCall int
}

func newFakeStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{docs: make(map[string]Document)}
}

func (f *fakeSnapshotStore) LoadGraph(_ context.Context, classID string) ([]Node, []Edge, error) {
	if f.loadErr != nil {
		return nil, nil, f.loadErr
	}
	doc := f.docs[classID]
	return doc.Nodes, doc.Edges, nil
}

func (f *fakeSnapshotStore) SaveGraph(_ context.Context, classID string, nodes []Node, edges []Edge) error {
	f.saveCall++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.docs[classID] = Document{Nodes: nodes, Edges: edges}
	return nil
}

func openTestSession(t *testing.T, store *fakeSnapshotStore) *Session {
	t.Helper()
	s, err := OpenSession(context.Background(), store, "class-1")
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	return s
}

func TestSession_AddNode(t *testing.T) {
	s := openTestSession(t, newFakeStore())

	n, err := s.AddNode("Limits")
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if n.ID == "" {
		t.Error("expected a generated id")
	}
	if n.Label != "Limits" {
		t.Errorf("Label = %q, want Limits", n.Label)
	}
	if !s.Dirty() {
		t.Error("session should be dirty after a mutation")
	}
}

func TestSession_AddNode_EmptyLabelDefaults(t *testing.T) {
	s := openTestSession(t, newFakeStore())
	n, err := s.AddNode("   ")
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if n.Label != DefaultLabel {
		t.Errorf("Label = %q, want placeholder %q", n.Label, DefaultLabel)
	}
}

func TestSession_AddNode_LabelTooLong(t *testing.T) {
	s := openTestSession(t, newFakeStore())
	_, err := s.AddNode(strings.Repeat("x", MaxLabelLen+1))
	var ve *ErrValidation
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ErrValidation", err)
	}
	if s.Dirty() {
		t.Error("rejected mutation must not dirty the session")
	}
}

func TestSession_RenameNode(t *testing.T) {
	s := openTestSession(t, newFakeStore())
	n, _ := s.AddNode("Limits")

	if err := s.RenameNode(n.ID, "Derivatives"); err != nil {
		t.Fatalf("RenameNode: %v", err)
	}
	got, _ := s.Graph().Node(n.ID)
	if got.Label != "Derivatives" {
		t.Errorf("Label = %q, want Derivatives", got.Label)
	}

	if err := s.RenameNode(n.ID, ""); err == nil {
		t.Error("empty label should be rejected")
	}
	if err := s.RenameNode("nope", "x"); !IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestSession_RemoveNode_CascadesEdges(t *testing.T) {
	s := openTestSession(t, newFakeStore())
	a, _ := s.AddNode("A")
	b, _ := s.AddNode("B")
	c, _ := s.AddNode("C")
	if err := s.Connect(a.ID, b.ID); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := s.Connect(b.ID, c.ID); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if err := s.RemoveNode(b.ID); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}
	if s.Graph().EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0 after cascade", s.Graph().EdgeCount())
	}
	if s.Graph().NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2", s.Graph().NodeCount())
	}
	if err := s.RemoveNode(b.ID); !IsNotFound(err) {
		t.Errorf("second remove err = %v, want not-found", err)
	}
}

func TestSession_Connect_RejectsSelfLoop(t *testing.T) {
	s := openTestSession(t, newFakeStore())
	a, _ := s.AddNode("A")

	err := s.Connect(a.ID, a.ID)
	var sl *ErrSelfLoop
	if !errors.As(err, &sl) {
		t.Fatalf("err = %v, want *ErrSelfLoop", err)
	}
	if s.Graph().EdgeCount() != 0 {
		t.Error("rejected connect must not commit an edge")
	}
}

func TestSession_Connect_RejectsDuplicate(t *testing.T) {
	s := openTestSession(t, newFakeStore())
	a, _ := s.AddNode("A")
	b, _ := s.AddNode("B")
	if err := s.Connect(a.ID, b.ID); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	err := s.Connect(a.ID, b.ID)
	var dup *ErrDuplicateEdge
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want *ErrDuplicateEdge", err)
	}
	if dup.Source != a.ID || dup.Target != b.ID {
		t.Errorf("offending pair = %s->%s, want %s->%s", dup.Source, dup.Target, a.ID, b.ID)
	}
}

func TestSession_Connect_RejectsUnknownNodes(t *testing.T) {
	s := openTestSession(t, newFakeStore())
	a, _ := s.AddNode("A")
	if err := s.Connect(a.ID, "ghost"); !IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
	if err := s.Connect("ghost", a.ID); !IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestSession_Connect_CycleRejectedAndRolledBack(t *testing.T) {
	// End-to-end scenario: graph A->B, attempting B->A must fail with the
	// full cycle and leave the edge set unchanged.
	store := newFakeStore()
	store.docs["class-1"] = Document{
		Nodes: []Node{{ID: "A", Label: "A"}, {ID: "B", Label: "B"}, {ID: "C", Label: "C"}},
		Edges: []Edge{{"A", "B"}},
	}
	s := openTestSession(t, store)

	err := s.Connect("B", "A")
	var ce *ErrCycle
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ErrCycle", err)
	}
	want := []Edge{{"A", "B"}, {"B", "A"}}
	if !reflect.DeepEqual(ce.Cycle, want) {
		t.Errorf("Cycle = %v, want %v", ce.Cycle, want)
	}

	_, edges := s.Graph().Snapshot()
	if !reflect.DeepEqual(edges, []Edge{{"A", "B"}}) {
		t.Errorf("edges = %v, want unchanged [A->B]", edges)
	}
	if s.Dirty() {
		t.Error("rejected connect must not dirty the session")
	}
}

func TestSession_AcyclicityHeldAfterEveryMutation(t *testing.T) {
	s := openTestSession(t, newFakeStore())
	a, _ := s.AddNode("A")
	b, _ := s.AddNode("B")
	c, _ := s.AddNode("C")

	ops := []func() error{
		func() error { return s.Connect(a.ID, b.ID) },
		func() error { return s.Connect(b.ID, c.ID) },
		func() error { return s.Connect(c.ID, a.ID) }, // rejected
		func() error { return s.Disconnect(a.ID, b.ID) },
		func() error { return s.Connect(c.ID, a.ID) }, // now fine
		func() error { return s.RemoveNode(b.ID) },
	}
	for i, op := range ops {
		_ = op()
		_, edges := s.Graph().Snapshot()
		if res := DetectCycle(edges); !res.Valid {
			t.Fatalf("graph cyclic after op %d: %v", i, res.Cycle)
		}
	}
}

func TestSession_Disconnect_AbsentEdgeIsNoop(t *testing.T) {
	s := openTestSession(t, newFakeStore())
	a, _ := s.AddNode("A")
	b, _ := s.AddNode("B")

	if err := s.Disconnect(a.ID, b.ID); err != nil {
		t.Fatalf("Disconnect of absent edge: %v", err)
	}
	if s.Dirty() {
		t.Error("no-op disconnect must not dirty the session")
	}
}

func TestSession_SaveClearsDirty(t *testing.T) {
	store := newFakeStore()
	s := openTestSession(t, store)
	n, _ := s.AddNode("Algebra")

	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if s.Dirty() {
		t.Error("Save should clear the dirty flag")
	}
	saved := store.docs["class-1"]
	if len(saved.Nodes) != 1 || saved.Nodes[0].ID != n.ID {
		t.Errorf("persisted nodes = %v", saved.Nodes)
	}
}

func TestSession_SaveFailureKeepsStateAndDirty(t *testing.T) {
	store := newFakeStore()
	s := openTestSession(t, store)
	s.AddNode("Algebra")
	store.saveErr = errors.New("disk on fire")

	err := s.Save(context.Background())
	var pe *ErrPersistence
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ErrPersistence", err)
	}
	if !s.Dirty() {
		t.Error("failed save must leave the session dirty for retry")
	}
	if s.Graph().NodeCount() != 1 {
		t.Error("failed save must not touch in-memory state")
	}
}

func TestSession_DiscardRestoresLastSnapshot(t *testing.T) {
	store := newFakeStore()
	store.docs["class-1"] = Document{Nodes: []Node{{ID: "A", Label: "A"}}}
	s := openTestSession(t, store)

	s.AddNode("scratch")
	s.AddNode("more scratch")
	if err := s.Discard(context.Background()); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if s.Graph().NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1 after discard", s.Graph().NodeCount())
	}
	if s.Dirty() {
		t.Error("discarded session should not be dirty")
	}
}

func TestOpenSession_ReportsCorruptSnapshot(t *testing.T) {
	store := newFakeStore()
	store.docs["class-1"] = Document{
		Nodes: []Node{{ID: "A", Label: "A"}, {ID: "B", Label: "B"}},
		Edges: []Edge{{"A", "B"}, {"B", "A"}},
	}

	_, err := OpenSession(context.Background(), store, "class-1")
	var cs *ErrCorruptSnapshot
	if !errors.As(err, &cs) {
		t.Fatalf("err = %v, want *ErrCorruptSnapshot", err)
	}
	var ce *ErrCycle
	if !errors.As(err, &ce) {
		t.Error("corrupt snapshot error should wrap the cycle")
	}
}

func TestSession_SaveRoundTrip(t *testing.T) {
	store := newFakeStore()
	s := openTestSession(t, store)
	a, _ := s.AddNode("A")
	b, _ := s.AddNode("B")
	if err := s.Connect(a.ID, b.ID); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened, err := OpenSession(context.Background(), store, "class-1")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	nodes, edges := reopened.Graph().Snapshot()
	wantNodes, wantEdges := s.Graph().Snapshot()
	if !reflect.DeepEqual(nodes, wantNodes) || !reflect.DeepEqual(edges, wantEdges) {
		t.Error("snapshot did not round-trip through the store")
	}
}
