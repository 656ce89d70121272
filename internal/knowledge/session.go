package knowledge

import (
	"context"

	"github.com/google/uuid"
)

// SnapshotStore is the persistence collaborator for whole-graph snapshots.
// Implementations must preserve node IDs across load/save round-trips.
type SnapshotStore interface {
	// LoadGraph returns the persisted snapshot for a class. A class with no
	// saved graph yet returns empty slices and no error.
	LoadGraph(ctx context.Context, classID string) (nodes []Node, edges []Edge, err error)

	// SaveGraph persists the snapshot wholesale, overwriting any previous
	// one for the class (last-write-wins; there is no merge of concurrent
	// edit sessions).
	SaveGraph(ctx context.Context, classID string, nodes []Node, edges []Edge) error
}

// Session is an exclusive, single-user edit session over one class's graph.
// It is the only path through which the graph's committed state changes and
// guarantees the graph never rests in a cyclic or dangling-edge state.
//
// Every mutation either commits in-memory atomically or is rejected with a
// typed error leaving the graph untouched. Persistence is explicit: Save
// writes the snapshot through the store and clears the dirty flag; Discard
// throws away unsaved edits and reloads the last persisted snapshot.
type Session struct {
	classID string
	graph   *Graph
	store   SnapshotStore
	dirty   bool
}

// OpenSession loads the persisted snapshot for classID and starts an edit
// session on it. A corrupt snapshot (dangling edge or cycle) is reported as
// *ErrCorruptSnapshot rather than silently accepted.
func OpenSession(ctx context.Context, store SnapshotStore, classID string) (*Session, error) {
	if classID == "" {
		return nil, &ErrValidation{Field: "classID", Reason: "empty"}
	}
	s := &Session{classID: classID, graph: NewGraph(), store: store}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) reload(ctx context.Context) error {
	nodes, edges, err := s.store.LoadGraph(ctx, s.classID)
	if err != nil {
		return &ErrPersistence{Op: "load", Err: err}
	}
	if err := s.graph.Load(nodes, edges); err != nil {
		return &ErrCorruptSnapshot{ClassID: s.classID, Err: err}
	}
	s.dirty = false
	return nil
}

// ClassID returns the class this session edits.
func (s *Session) ClassID() string { return s.classID }

// Graph returns the session's in-memory graph for read access.
func (s *Session) Graph() *Graph { return s.graph }

// Dirty reports whether the session holds mutations not yet persisted.
func (s *Session) Dirty() bool { return s.dirty }

// AddNode creates a topic with a fresh unique id. An empty label defaults to
// the placeholder; labels over the length limit are rejected. Label
// uniqueness is not required (discouraged at the UI layer, not here).
func (s *Session) AddNode(label string) (Node, error) {
	label = trimLabel(label)
	if label == "" {
		label = DefaultLabel
	}
	if err := validateLabel(label); err != nil {
		return Node{}, err
	}
	n := Node{ID: uuid.New().String(), Label: label}
	s.graph.addNode(n)
	s.dirty = true
	return n, nil
}

// RenameNode changes a topic's display label. Renaming never affects
// acyclicity, so it commits immediately.
func (s *Session) RenameNode(id, newLabel string) error {
	if _, ok := s.graph.Node(id); !ok {
		return &ErrNotFound{Kind: "node", ID: id}
	}
	newLabel = trimLabel(newLabel)
	if newLabel == "" {
		return &ErrValidation{Field: "label", Reason: "empty"}
	}
	if err := validateLabel(newLabel); err != nil {
		return err
	}
	s.graph.relabelNode(id, newLabel)
	s.dirty = true
	return nil
}

// RemoveNode deletes a topic and cascades removal of every incident edge.
// Removal cannot introduce cycles, so no re-validation is needed.
func (s *Session) RemoveNode(id string) error {
	if _, ok := s.graph.Node(id); !ok {
		return &ErrNotFound{Kind: "node", ID: id}
	}
	s.graph.removeNode(id)
	s.dirty = true
	return nil
}

// Connect adds the prerequisite edge source->target. The edge is added
// speculatively and the whole edge set is re-checked; if a cycle would
// close, the edge is discarded and *ErrCycle carries the offending path.
func (s *Session) Connect(sourceID, targetID string) error {
	if _, ok := s.graph.Node(sourceID); !ok {
		return &ErrNotFound{Kind: "node", ID: sourceID}
	}
	if _, ok := s.graph.Node(targetID); !ok {
		return &ErrNotFound{Kind: "node", ID: targetID}
	}
	if sourceID == targetID {
		return &ErrSelfLoop{NodeID: sourceID}
	}
	if s.graph.HasEdge(sourceID, targetID) {
		return &ErrDuplicateEdge{Source: sourceID, Target: targetID}
	}

	e := Edge{Source: sourceID, Target: targetID}
	s.graph.addEdge(e)
	_, edges := s.graph.Snapshot()
	if res := DetectCycle(edges); !res.Valid {
		s.graph.removeEdge(e)
		return &ErrCycle{Cycle: res.Cycle}
	}
	s.dirty = true
	return nil
}

// Disconnect removes the edge if present. Removing an absent edge is a
// no-op, not an error.
func (s *Session) Disconnect(sourceID, targetID string) error {
	e := Edge{Source: sourceID, Target: targetID}
	if !s.graph.edgeSet[e] {
		return nil
	}
	s.graph.removeEdge(e)
	s.dirty = true
	return nil
}

// Save persists the current snapshot and clears the dirty flag. On failure
// the in-memory state is untouched and the session stays dirty so the user
// can retry; the core never auto-retries.
func (s *Session) Save(ctx context.Context) error {
	nodes, edges := s.graph.Snapshot()
	if err := s.store.SaveGraph(ctx, s.classID, nodes, edges); err != nil {
		return &ErrPersistence{Op: "save", Err: err}
	}
	s.dirty = false
	return nil
}

// Discard is the designed cancellation path for an edit session: it drops
// all unsaved mutations and reloads the last persisted snapshot.
func (s *Session) Discard(ctx context.Context) error {
	return s.reload(ctx)
}
