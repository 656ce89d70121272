package leitner

import (
	"testing"
	"time"
)

func TestEntry_Accuracy(t *testing.T) {
	cases := []struct {
		attempts, correct int
		want              float64
	}{
		{0, 0, 0},
		{4, 4, 1.0},
		{4, 1, 0.25},
		{3, 2, 2.0 / 3.0},
	}
	for _, tc := range cases {
		e := &Entry{TotalAttempts: tc.attempts, TotalCorrect: tc.correct}
		if got := e.Accuracy(); got != tc.want {
			t.Errorf("Accuracy(%d/%d) = %v, want %v", tc.correct, tc.attempts, got, tc.want)
		}
	}
}

func TestEntry_IsDue(t *testing.T) {
	next := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	e := &Entry{NextReview: next}

	if e.IsDue(next.Add(-time.Minute)) {
		t.Error("not due before NextReview")
	}
	if !e.IsDue(next) {
		t.Error("due exactly at NextReview")
	}
	if !e.IsDue(next.Add(time.Hour)) {
		t.Error("due after NextReview")
	}
}

func TestEntry_OverdueDays(t *testing.T) {
	next := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	e := &Entry{NextReview: next}

	if got := e.OverdueDays(next.Add(-time.Hour)); got != 0 {
		t.Errorf("OverdueDays before due = %v, want 0", got)
	}
	if got := e.OverdueDays(next.AddDate(0, 0, 2)); got != 2 {
		t.Errorf("OverdueDays = %v, want 2", got)
	}
}

func TestConfig_IntervalClamps(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.intervalDays(0); got != 1 {
		t.Errorf("intervalDays(0) = %d, want clamp to 1", got)
	}
	if got := cfg.intervalDays(99); got != 30 {
		t.Errorf("intervalDays(99) = %d, want clamp to 30", got)
	}
	if got := cfg.intervalDays(3); got != 7 {
		t.Errorf("intervalDays(3) = %d, want 7", got)
	}
}
