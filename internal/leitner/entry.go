package leitner

import "time"

// Entry is the review schedule row for one (student, class, topic). Entries
// are created lazily on the first attempt and never hard-deleted; the
// counters are the historical record used for analytics.
//
// TopicID is the stable identity; TopicLabel is carried alongside as a
// display attribute and as a compatibility key for rows written before
// stable IDs existed.
type Entry struct {
	ID         string `json:"id"`
	StudentID  string `json:"student_id"`
	ClassID    string `json:"class_id"`
	TopicID    string `json:"topic_id"`
	TopicLabel string `json:"topic_label"`

	Box           int `json:"box"`
	Streak        int `json:"streak"`
	TotalAttempts int `json:"total_attempts"`
	TotalCorrect  int `json:"total_correct"`

	// Aggregate of the most recent finished quiz, stamped by FinishQuiz.
	// Historical record only; per-attempt transitions drive the schedule.
	LastQuizAttempts int `json:"last_quiz_attempts"`
	LastQuizCorrect  int `json:"last_quiz_correct"`

	LastReviewed time.Time `json:"last_reviewed"`
	NextReview   time.Time `json:"next_review"`
}

// Accuracy returns total_correct / total_attempts, and 0 for an entry with
// no attempts. Rounding happens only at presentation time.
func (e *Entry) Accuracy() float64 {
	if e.TotalAttempts == 0 {
		return 0
	}
	return float64(e.TotalCorrect) / float64(e.TotalAttempts)
}

// IsDue reports whether the entry's next review is at or before asOf.
func (e *Entry) IsDue(asOf time.Time) bool {
	return !asOf.Before(e.NextReview)
}

// OverdueDays returns how many days past due the entry is, 0 if not yet due.
func (e *Entry) OverdueDays(asOf time.Time) float64 {
	if asOf.Before(e.NextReview) {
		return 0
	}
	return asOf.Sub(e.NextReview).Hours() / 24.0
}
