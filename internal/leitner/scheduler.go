package leitner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ScheduleRepo is the persistence collaborator for schedule entries.
// Upserts are plain overwrites (last-write-wins), matching the snapshot
// store's consistency model.
type ScheduleRepo interface {
	// GetEntry returns the entry for (student, class, topic), or nil when
	// none exists yet.
	GetEntry(ctx context.Context, studentID, classID, topicID string) (*Entry, error)

	// UpsertEntry creates or overwrites the entry.
	UpsertEntry(ctx context.Context, e *Entry) error

	// ListEntries returns all of a student's entries for a class.
	ListEntries(ctx context.Context, studentID, classID string) ([]*Entry, error)
}

// ErrBadIdentifier indicates a malformed student/class/topic reference.
type ErrBadIdentifier struct {
	Name string
}

func (e *ErrBadIdentifier) Error() string {
	return fmt.Sprintf("malformed identifier: %s is empty", e.Name)
}

// Scheduler tracks spaced-repetition state per (student, class, topic) and
// decides review timing from quiz outcomes. Box transitions follow the
// Leitner policy in Config; there is no terminal state — a top-box entry
// with sustained correctness just re-reviews at the longest interval.
type Scheduler struct {
	repo ScheduleRepo
	cfg  Config
}

// NewScheduler creates a scheduler over the given repo and policy.
func NewScheduler(repo ScheduleRepo, cfg Config) *Scheduler {
	return &Scheduler{repo: repo, cfg: cfg}
}

// RecordAttempt applies one quiz-attempt outcome to the student's entry for
// the topic, creating it lazily on first contact. The updated entry is
// persisted and returned.
//
// Correct: counters and streak advance; reaching the promotion streak moves
// the entry up one box (capped) and resets the streak. Incorrect: the streak
// resets and the entry demotes one box (floor 1). Either way the next review
// is now + the new box's interval.
func (s *Scheduler) RecordAttempt(ctx context.Context, studentID, classID, topicID, topicLabel string, correct bool, now time.Time) (*Entry, error) {
	if err := checkRef(studentID, classID, topicID); err != nil {
		return nil, err
	}

	e, err := s.repo.GetEntry(ctx, studentID, classID, topicID)
	if err != nil {
		return nil, fmt.Errorf("get schedule entry: %w", err)
	}
	if e == nil {
		e = &Entry{
			ID:         uuid.New().String(),
			StudentID:  studentID,
			ClassID:    classID,
			TopicID:    topicID,
			TopicLabel: topicLabel,
			Box:        1,
		}
	}
	if topicLabel != "" {
		e.TopicLabel = topicLabel
	}

	e.TotalAttempts++
	if correct {
		e.TotalCorrect++
		e.Streak++
		if e.Streak >= s.cfg.PromotionStreak && e.Box < s.cfg.BoxCount {
			e.Box++
			e.Streak = 0
		}
	} else {
		e.Streak = 0
		if e.Box > 1 {
			e.Box--
		}
	}
	e.LastReviewed = now
	e.NextReview = now.AddDate(0, 0, s.cfg.intervalDays(e.Box))

	if err := s.repo.UpsertEntry(ctx, e); err != nil {
		return nil, fmt.Errorf("upsert schedule entry: %w", err)
	}
	return e, nil
}

// FinishQuiz stamps the most recent quiz aggregate on the entry. It does not
// move boxes; the per-attempt RecordAttempt calls already did.
func (s *Scheduler) FinishQuiz(ctx context.Context, studentID, classID, topicID string, attempts, correct int, now time.Time) (*Entry, error) {
	if err := checkRef(studentID, classID, topicID); err != nil {
		return nil, err
	}
	e, err := s.repo.GetEntry(ctx, studentID, classID, topicID)
	if err != nil {
		return nil, fmt.Errorf("get schedule entry: %w", err)
	}
	if e == nil {
		return nil, fmt.Errorf("no schedule entry for topic %q", topicID)
	}

	e.LastQuizAttempts = attempts
	e.LastQuizCorrect = correct
	e.LastReviewed = now
	if err := s.repo.UpsertEntry(ctx, e); err != nil {
		return nil, fmt.Errorf("upsert schedule entry: %w", err)
	}
	return e, nil
}

// DueTopics returns the labels of the student's topics whose next review is
// at or before asOf, most overdue first, label as the deterministic tiebreak.
func (s *Scheduler) DueTopics(ctx context.Context, studentID, classID string, asOf time.Time) ([]string, error) {
	entries, err := s.DueEntries(ctx, studentID, classID, asOf)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.TopicLabel
	}
	return labels, nil
}

// DueEntries is DueTopics with the full entries, for callers that need the
// box and counters too.
func (s *Scheduler) DueEntries(ctx context.Context, studentID, classID string, asOf time.Time) ([]*Entry, error) {
	if studentID == "" {
		return nil, &ErrBadIdentifier{Name: "studentID"}
	}
	if classID == "" {
		return nil, &ErrBadIdentifier{Name: "classID"}
	}

	all, err := s.repo.ListEntries(ctx, studentID, classID)
	if err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}

	var due []*Entry
	for _, e := range all {
		if e.IsDue(asOf) {
			due = append(due, e)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		oi, oj := due[i].OverdueDays(asOf), due[j].OverdueDays(asOf)
		if oi != oj {
			return oi > oj
		}
		return due[i].TopicLabel < due[j].TopicLabel
	})
	return due, nil
}

func checkRef(studentID, classID, topicID string) error {
	switch {
	case studentID == "":
		return &ErrBadIdentifier{Name: "studentID"}
	case classID == "":
		return &ErrBadIdentifier{Name: "classID"}
	case topicID == "":
		return &ErrBadIdentifier{Name: "topicID"}
	}
	return nil
}
