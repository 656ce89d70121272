package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/studymap/studymap/ent"
	"github.com/studymap/studymap/ent/attemptevent"
	"github.com/studymap/studymap/internal/remediate"
)

// AttemptData captures one quiz-question attempt for the event log.
type AttemptData struct {
	StudentID  string
	ClassID    string
	TopicID    string
	TopicLabel string
	QuestionID string
	Correct    bool
}

// AttemptRepo appends attempt events and aggregates them per topic.
type AttemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// AppendAttempt records one attempt in the event log.
func (r *AttemptRepo) AppendAttempt(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetClassID(data.ClassID).
		SetTopicID(data.TopicID).
		SetTopicLabel(data.TopicLabel).
		SetCorrect(data.Correct)

	if data.QuestionID != "" {
		builder = builder.SetQuestionID(data.QuestionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

// TopicStats aggregates a student's attempts per topic for remediation
// ranking. The label reported for a topic is the one from its most recent
// attempt. Topics appear only once they have at least one attempt.
func (r *AttemptRepo) TopicStats(ctx context.Context, studentID, classID string) ([]remediate.TopicStats, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.StudentID(studentID),
			attemptevent.ClassID(classID),
		).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	byTopic := make(map[string]*remediate.TopicStats)
	for _, e := range events {
		s, ok := byTopic[e.TopicID]
		if !ok {
			s = &remediate.TopicStats{TopicID: e.TopicID}
			byTopic[e.TopicID] = s
		}
		s.Attempts++
		if e.Correct {
			s.Correct++
		}
		if e.TopicLabel != "" {
			s.Label = e.TopicLabel
		}
	}

	stats := make([]remediate.TopicStats, 0, len(byTopic))
	for _, s := range byTopic {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].TopicID < stats[j].TopicID })
	return stats, nil
}
