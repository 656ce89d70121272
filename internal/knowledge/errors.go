package knowledge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation indicates malformed input (empty or over-long label,
// malformed identifier). The requested operation did not run.
type ErrValidation struct {
	Field  string
	Reason string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrNotFound indicates an operation referenced a node or edge that does
// not exist in the current graph.
type ErrNotFound struct {
	Kind string // "node" or "edge"
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.ID)
}

// ErrSelfLoop indicates a connect attempt from a node to itself.
type ErrSelfLoop struct {
	NodeID string
}

func (e *ErrSelfLoop) Error() string {
	return fmt.Sprintf("topic %q cannot be its own prerequisite", e.NodeID)
}

// ErrDuplicateEdge indicates the exact ordered pair already exists.
type ErrDuplicateEdge struct {
	Source, Target string
}

func (e *ErrDuplicateEdge) Error() string {
	return fmt.Sprintf("prerequisite %s->%s already exists", e.Source, e.Target)
}

// ErrCycle indicates an edge addition (or a loaded snapshot) would violate
// the DAG invariant. Cycle holds the offending edges in connected order so
// callers can show the exact path to the user.
type ErrCycle struct {
	Cycle []Edge
}

func (e *ErrCycle) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, edge := range e.Cycle {
		parts[i] = edge.String()
	}
	return "cycle detected: " + strings.Join(parts, ", ")
}

// ErrCorruptSnapshot indicates a persisted snapshot failed defensive
// re-validation on load (dangling edge or cycle). The in-memory graph is
// left unchanged.
type ErrCorruptSnapshot struct {
	ClassID string
	Err     error
}

func (e *ErrCorruptSnapshot) Error() string {
	return fmt.Sprintf("snapshot for class %q is corrupt: %v", e.ClassID, e.Err)
}

func (e *ErrCorruptSnapshot) Unwrap() error { return e.Err }

// ErrPersistence wraps a failed external store call. In-memory state is
// unchanged and the session stays dirty so the user can retry.
type ErrPersistence struct {
	Op  string
	Err error
}

func (e *ErrPersistence) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *ErrPersistence) Unwrap() error { return e.Err }

// IsNotFound reports whether err is (or wraps) an ErrNotFound.
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}
