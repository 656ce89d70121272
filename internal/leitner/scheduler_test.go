package leitner

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

// memRepo is an in-memory ScheduleRepo for tests.
type memRepo struct {
	entries map[string]*Entry
	failOn  string // "get" or "upsert"
}

func newMemRepo() *memRepo {
	return &memRepo{entries: make(map[string]*Entry)}
}

func key(studentID, classID, topicID string) string {
	return studentID + "/" + classID + "/" + topicID
}

func (m *memRepo) GetEntry(_ context.Context, studentID, classID, topicID string) (*Entry, error) {
	if m.failOn == "get" {
		return nil, errors.New("boom")
	}
	e, ok := m.entries[key(studentID, classID, topicID)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *memRepo) UpsertEntry(_ context.Context, e *Entry) error {
	if m.failOn == "upsert" {
		return errors.New("boom")
	}
	cp := *e
	m.entries[key(e.StudentID, e.ClassID, e.TopicID)] = &cp
	return nil
}

func (m *memRepo) ListEntries(_ context.Context, studentID, classID string) ([]*Entry, error) {
	var out []*Entry
	for _, e := range m.entries {
		if e.StudentID == studentID && e.ClassID == classID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

var day1 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestRecordAttempt_LazyCreation(t *testing.T) {
	sched := NewScheduler(newMemRepo(), DefaultConfig())

	e, err := sched.RecordAttempt(context.Background(), "stu-1", "cls-1", "top-1", "Algebra", false, day1)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if e.ID == "" {
		t.Error("expected generated entry id")
	}
	if e.Box != 1 {
		t.Errorf("Box = %d, want 1 (incorrect first attempt stays at floor)", e.Box)
	}
	if e.TotalAttempts != 1 || e.TotalCorrect != 0 {
		t.Errorf("counters = (%d, %d), want (1, 0)", e.TotalAttempts, e.TotalCorrect)
	}
	if e.TopicLabel != "Algebra" {
		t.Errorf("TopicLabel = %q", e.TopicLabel)
	}
}

func TestRecordAttempt_PromotionChain(t *testing.T) {
	// Three consecutive correct attempts with promotion streak 1 move
	// box 1 -> 2 -> 3 -> 4, streak resetting on each promotion.
	sched := NewScheduler(newMemRepo(), DefaultConfig())
	ctx := context.Background()

	now := day1
	var e *Entry
	var err error
	for i := 0; i < 3; i++ {
		e, err = sched.RecordAttempt(ctx, "stu-1", "cls-1", "top-1", "Algebra", true, now)
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		now = now.AddDate(0, 0, 1)
	}

	if e.Box != 4 {
		t.Errorf("Box = %d, want 4", e.Box)
	}
	if e.Streak != 0 {
		t.Errorf("Streak = %d, want 0 after promotion", e.Streak)
	}
	if acc := e.Accuracy(); acc != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", acc)
	}
}

func TestRecordAttempt_Demotion(t *testing.T) {
	repo := newMemRepo()
	repo.entries[key("stu-1", "cls-1", "top-1")] = &Entry{
		ID: "e1", StudentID: "stu-1", ClassID: "cls-1", TopicID: "top-1",
		Box: 3, Streak: 0, TotalAttempts: 6, TotalCorrect: 4,
	}
	sched := NewScheduler(repo, DefaultConfig())

	e, err := sched.RecordAttempt(context.Background(), "stu-1", "cls-1", "top-1", "", false, day1)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if e.Box != 2 {
		t.Errorf("Box = %d, want 2 after demotion", e.Box)
	}
	if e.Streak != 0 {
		t.Errorf("Streak = %d, want 0", e.Streak)
	}
	if e.TotalAttempts != 7 {
		t.Errorf("TotalAttempts = %d, want 7", e.TotalAttempts)
	}
	if e.TotalCorrect != 4 {
		t.Errorf("TotalCorrect = %d, want 4 (unchanged)", e.TotalCorrect)
	}
	wantNext := day1.AddDate(0, 0, 3) // box 2 interval
	if !e.NextReview.Equal(wantNext) {
		t.Errorf("NextReview = %v, want %v", e.NextReview, wantNext)
	}
}

func TestRecordAttempt_DemotionFloorsAtBoxOne(t *testing.T) {
	sched := NewScheduler(newMemRepo(), DefaultConfig())
	ctx := context.Background()

	var e *Entry
	for i := 0; i < 3; i++ {
		var err error
		e, err = sched.RecordAttempt(ctx, "stu-1", "cls-1", "top-1", "", false, day1)
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}
	if e.Box != 1 {
		t.Errorf("Box = %d, want floor 1", e.Box)
	}
}

func TestRecordAttempt_TopBoxIsPerpetual(t *testing.T) {
	cfg := DefaultConfig()
	sched := NewScheduler(newMemRepo(), cfg)
	ctx := context.Background()

	now := day1
	var e *Entry
	for i := 0; i < 10; i++ {
		var err error
		e, err = sched.RecordAttempt(ctx, "stu-1", "cls-1", "top-1", "", true, now)
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		now = now.AddDate(0, 0, 1)
	}
	if e.Box != cfg.BoxCount {
		t.Errorf("Box = %d, want cap %d", e.Box, cfg.BoxCount)
	}
	wantNext := now.AddDate(0, 0, -1).AddDate(0, 0, 30)
	if !e.NextReview.Equal(wantNext) {
		t.Errorf("NextReview = %v, want longest interval %v", e.NextReview, wantNext)
	}
}

func TestRecordAttempt_IntervalFollowsBox(t *testing.T) {
	sched := NewScheduler(newMemRepo(), DefaultConfig())
	ctx := context.Background()

	e, err := sched.RecordAttempt(ctx, "stu-1", "cls-1", "top-1", "", true, day1)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	// Promoted to box 2; next review after its 3-day interval.
	if e.Box != 2 {
		t.Fatalf("Box = %d, want 2", e.Box)
	}
	wantNext := day1.AddDate(0, 0, 3)
	if !e.NextReview.Equal(wantNext) {
		t.Errorf("NextReview = %v, want %v", e.NextReview, wantNext)
	}
	if !e.LastReviewed.Equal(day1) {
		t.Errorf("LastReviewed = %v, want %v", e.LastReviewed, day1)
	}
}

func TestRecordAttempt_PromotionStreakTwo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PromotionStreak = 2
	sched := NewScheduler(newMemRepo(), cfg)
	ctx := context.Background()

	e, _ := sched.RecordAttempt(ctx, "stu-1", "cls-1", "top-1", "", true, day1)
	if e.Box != 1 || e.Streak != 1 {
		t.Fatalf("after 1 correct: box %d streak %d, want 1/1", e.Box, e.Streak)
	}
	e, _ = sched.RecordAttempt(ctx, "stu-1", "cls-1", "top-1", "", true, day1)
	if e.Box != 2 || e.Streak != 0 {
		t.Errorf("after 2 correct: box %d streak %d, want 2/0", e.Box, e.Streak)
	}
}

func TestRecordAttempt_MalformedIdentifiers(t *testing.T) {
	sched := NewScheduler(newMemRepo(), DefaultConfig())
	ctx := context.Background()

	for _, ids := range [][3]string{
		{"", "cls", "top"},
		{"stu", "", "top"},
		{"stu", "cls", ""},
	} {
		_, err := sched.RecordAttempt(ctx, ids[0], ids[1], ids[2], "", true, day1)
		var bad *ErrBadIdentifier
		if !errors.As(err, &bad) {
			t.Errorf("ids %v: err = %v, want *ErrBadIdentifier", ids, err)
		}
	}
}

func TestRecordAttempt_RepoFailurePropagates(t *testing.T) {
	repo := newMemRepo()
	repo.failOn = "upsert"
	sched := NewScheduler(repo, DefaultConfig())

	_, err := sched.RecordAttempt(context.Background(), "stu-1", "cls-1", "top-1", "", true, day1)
	if err == nil {
		t.Fatal("expected error from failing repo")
	}
	if len(repo.entries) != 0 {
		t.Error("failed upsert must not leave a partial row")
	}
}

func TestAccuracy_ZeroAttempts(t *testing.T) {
	e := &Entry{}
	if acc := e.Accuracy(); acc != 0 {
		t.Errorf("Accuracy = %v, want 0 with no attempts", acc)
	}
}

func TestFinishQuiz_StampsAggregates(t *testing.T) {
	repo := newMemRepo()
	sched := NewScheduler(repo, DefaultConfig())
	ctx := context.Background()

	if _, err := sched.RecordAttempt(ctx, "stu-1", "cls-1", "top-1", "Algebra", true, day1); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	boxBefore := repo.entries[key("stu-1", "cls-1", "top-1")].Box

	e, err := sched.FinishQuiz(ctx, "stu-1", "cls-1", "top-1", 5, 3, day1.Add(time.Hour))
	if err != nil {
		t.Fatalf("FinishQuiz: %v", err)
	}
	if e.LastQuizAttempts != 5 || e.LastQuizCorrect != 3 {
		t.Errorf("last quiz = (%d, %d), want (5, 3)", e.LastQuizAttempts, e.LastQuizCorrect)
	}
	if e.Box != boxBefore {
		t.Error("FinishQuiz must not move boxes")
	}
}

func TestFinishQuiz_UnknownTopic(t *testing.T) {
	sched := NewScheduler(newMemRepo(), DefaultConfig())
	if _, err := sched.FinishQuiz(context.Background(), "stu-1", "cls-1", "ghost", 1, 1, day1); err == nil {
		t.Error("expected error for unknown entry")
	}
}

func TestDueTopics_FiltersAndOrders(t *testing.T) {
	repo := newMemRepo()
	put := func(topic, label string, next time.Time) {
		repo.entries[key("stu-1", "cls-1", topic)] = &Entry{
			ID: topic, StudentID: "stu-1", ClassID: "cls-1",
			TopicID: topic, TopicLabel: label, Box: 2, NextReview: next,
		}
	}
	asOf := day1
	put("t1", "Algebra", asOf.AddDate(0, 0, -2))
	put("t2", "Calculus", asOf.AddDate(0, 0, -7))
	put("t3", "Geometry", asOf.AddDate(0, 0, 3)) // not due
	put("t4", "Trig", asOf)                      // due exactly now

	sched := NewScheduler(repo, DefaultConfig())
	got, err := sched.DueTopics(context.Background(), "stu-1", "cls-1", asOf)
	if err != nil {
		t.Fatalf("DueTopics: %v", err)
	}
	want := []string{"Calculus", "Algebra", "Trig"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DueTopics = %v, want %v", got, want)
	}
}

func TestDueTopics_TiebreakByLabel(t *testing.T) {
	repo := newMemRepo()
	next := day1.AddDate(0, 0, -1)
	for _, topic := range []string{"tB", "tA"} {
		repo.entries[key("stu-1", "cls-1", topic)] = &Entry{
			ID: topic, StudentID: "stu-1", ClassID: "cls-1",
			TopicID: topic, TopicLabel: topic, NextReview: next,
		}
	}
	sched := NewScheduler(repo, DefaultConfig())
	got, err := sched.DueTopics(context.Background(), "stu-1", "cls-1", day1)
	if err != nil {
		t.Fatalf("DueTopics: %v", err)
	}
	want := []string{"tA", "tB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DueTopics = %v, want %v", got, want)
	}
}

func TestDueTopics_OtherStudentsExcluded(t *testing.T) {
	repo := newMemRepo()
	repo.entries[key("stu-2", "cls-1", "t1")] = &Entry{
		StudentID: "stu-2", ClassID: "cls-1", TopicID: "t1",
		TopicLabel: "Algebra", NextReview: day1.AddDate(0, 0, -1),
	}
	sched := NewScheduler(repo, DefaultConfig())
	got, err := sched.DueTopics(context.Background(), "stu-1", "cls-1", day1)
	if err != nil {
		t.Fatalf("DueTopics: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("DueTopics = %v, want empty", got)
	}
}
