package store

import (
	"context"
	"fmt"

	"github.com/studymap/studymap/ent"
	"github.com/studymap/studymap/ent/scheduleentry"
	"github.com/studymap/studymap/internal/leitner"
)

// ScheduleRepo persists Leitner schedule entries and implements
// leitner.ScheduleRepo.
type ScheduleRepo struct {
	client *ent.Client
}

func (r *ScheduleRepo) GetEntry(ctx context.Context, studentID, classID, topicID string) (*leitner.Entry, error) {
	row, err := r.client.ScheduleEntry.Query().
		Where(
			scheduleentry.StudentID(studentID),
			scheduleentry.ClassID(classID),
			scheduleentry.TopicID(topicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query schedule entry: %w", err)
	}
	return entryFromRow(row), nil
}

func (r *ScheduleRepo) UpsertEntry(ctx context.Context, e *leitner.Entry) error {
	n, err := r.client.ScheduleEntry.Update().
		Where(
			scheduleentry.StudentID(e.StudentID),
			scheduleentry.ClassID(e.ClassID),
			scheduleentry.TopicID(e.TopicID),
		).
		SetTopicLabel(e.TopicLabel).
		SetBox(e.Box).
		SetStreak(e.Streak).
		SetTotalAttempts(e.TotalAttempts).
		SetTotalCorrect(e.TotalCorrect).
		SetLastQuizAttempts(e.LastQuizAttempts).
		SetLastQuizCorrect(e.LastQuizCorrect).
		SetLastReviewed(e.LastReviewed).
		SetNextReview(e.NextReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update schedule entry: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.ScheduleEntry.Create().
		SetEntryID(e.ID).
		SetStudentID(e.StudentID).
		SetClassID(e.ClassID).
		SetTopicID(e.TopicID).
		SetTopicLabel(e.TopicLabel).
		SetBox(e.Box).
		SetStreak(e.Streak).
		SetTotalAttempts(e.TotalAttempts).
		SetTotalCorrect(e.TotalCorrect).
		SetLastQuizAttempts(e.LastQuizAttempts).
		SetLastQuizCorrect(e.LastQuizCorrect).
		SetLastReviewed(e.LastReviewed).
		SetNextReview(e.NextReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create schedule entry: %w", err)
	}
	return nil
}

func (r *ScheduleRepo) ListEntries(ctx context.Context, studentID, classID string) ([]*leitner.Entry, error) {
	rows, err := r.client.ScheduleEntry.Query().
		Where(
			scheduleentry.StudentID(studentID),
			scheduleentry.ClassID(classID),
		).
		Order(ent.Asc(scheduleentry.FieldTopicLabel)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query schedule entries: %w", err)
	}

	entries := make([]*leitner.Entry, len(rows))
	for i, row := range rows {
		entries[i] = entryFromRow(row)
	}
	return entries, nil
}

func entryFromRow(row *ent.ScheduleEntry) *leitner.Entry {
	return &leitner.Entry{
		ID:               row.EntryID,
		StudentID:        row.StudentID,
		ClassID:          row.ClassID,
		TopicID:          row.TopicID,
		TopicLabel:       row.TopicLabel,
		Box:              row.Box,
		Streak:           row.Streak,
		TotalAttempts:    row.TotalAttempts,
		TotalCorrect:     row.TotalCorrect,
		LastQuizAttempts: row.LastQuizAttempts,
		LastQuizCorrect:  row.LastQuizCorrect,
		LastReviewed:     row.LastReviewed,
		NextReview:       row.NextReview,
	}
}
