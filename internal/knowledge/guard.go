package knowledge

import "strings"

// placeholderLabels are labels considered "unedited". Old snapshots may
// still carry the emoji variant.
var placeholderLabels = []string{DefaultLabel, "Edit me 😊!"}

// CanCreateLesson decides whether lesson creation is allowed for a class
// given its current topic labels. Creation is blocked when no real topics
// exist: an empty label set, or a single label that is still the unedited
// placeholder. The returned error message is user-facing.
func CanCreateLesson(labels []string) error {
	cleaned := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			cleaned = append(cleaned, l)
		}
	}

	if len(cleaned) == 0 {
		return &ErrValidation{
			Field:  "topics",
			Reason: "this class has no topics yet; add topics to the class graph before creating lessons",
		}
	}
	if len(cleaned) == 1 && isPlaceholder(cleaned[0]) {
		return &ErrValidation{
			Field:  "topics",
			Reason: "rename your default topic in the class graph before creating a lesson",
		}
	}
	return nil
}

func isPlaceholder(label string) bool {
	for _, p := range placeholderLabels {
		if label == p {
			return true
		}
	}
	return false
}
