package knowledge

import "strings"

// MaxLabelLen is the longest display label a topic may carry.
const MaxLabelLen = 100

// DefaultLabel is the label given to a node created without one. A graph
// whose only topic still carries it is considered unedited by the lesson
// guard.
const DefaultLabel = "Edit me!"

// Node is a single topic in a class's prerequisite graph. The ID is the
// stable identity used by edges and schedule entries; the label is purely
// for display and may be renamed freely.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Edge is a directed prerequisite relation: Source must be learned before
// Target. No self-loops, no duplicate ordered pairs.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

func (e Edge) String() string {
	return e.Source + "->" + e.Target
}

// validateLabel checks a display label against the length limit.
// Empty labels are handled by the caller (AddNode defaults, RenameNode rejects).
func validateLabel(label string) error {
	if len(label) > MaxLabelLen {
		return &ErrValidation{Field: "label", Reason: "exceeds 100 characters"}
	}
	return nil
}

func trimLabel(label string) string {
	return strings.TrimSpace(label)
}
