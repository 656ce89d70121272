package remediate

import (
	"reflect"
	"testing"
)

func labels(topics []TopicStats) []string {
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = t.Label
	}
	return out
}

func TestRank_ThresholdFiltersThinEvidence(t *testing.T) {
	stats := []TopicStats{
		{TopicID: "t1", Label: "Fractions", Attempts: 2, Correct: 0},
		{TopicID: "t2", Label: "Decimals", Attempts: 5, Correct: 1},
	}

	r := Rank(stats, Config{MinAttempts: 3, TopK: 5})
	if r.Fallback {
		t.Error("primary ranking must not be flagged as fallback")
	}
	if got, want := labels(r.Topics), []string{"Decimals"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ranked %v, want %v", got, want)
	}
}

func TestRank_FallbackWhenNothingQualifies(t *testing.T) {
	stats := []TopicStats{
		{TopicID: "t1", Label: "Fractions", Attempts: 2, Correct: 0},
		{TopicID: "t2", Label: "Decimals", Attempts: 5, Correct: 1},
	}

	r := Rank(stats, Config{MinAttempts: 6, TopK: 5})
	if !r.Fallback {
		t.Error("expected fallback ranking")
	}
	// Fractions at 0.0 accuracy ranks ahead of Decimals at 0.2.
	if got, want := labels(r.Topics), []string{"Fractions", "Decimals"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ranked %v, want %v", got, want)
	}
}

func TestRank_WorstFirstOrdering(t *testing.T) {
	stats := []TopicStats{
		{TopicID: "t1", Label: "Algebra", Attempts: 10, Correct: 9},
		{TopicID: "t2", Label: "Calculus", Attempts: 10, Correct: 2},
		{TopicID: "t3", Label: "Geometry", Attempts: 5, Correct: 1},
	}

	r := Rank(stats, DefaultConfig())
	// Calculus and Geometry tie at 0.2 accuracy; more attempts ranks first.
	want := []string{"Calculus", "Geometry", "Algebra"}
	if got := labels(r.Topics); !reflect.DeepEqual(got, want) {
		t.Errorf("ranked %v, want %v", got, want)
	}
}

func TestRank_TiebreakByLabel(t *testing.T) {
	stats := []TopicStats{
		{TopicID: "t2", Label: "B", Attempts: 4, Correct: 2},
		{TopicID: "t1", Label: "A", Attempts: 4, Correct: 2},
	}

	r := Rank(stats, DefaultConfig())
	if got, want := labels(r.Topics), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ranked %v, want %v", got, want)
	}
}

func TestRank_ZeroAttemptTopicsNeverRank(t *testing.T) {
	stats := []TopicStats{
		{TopicID: "t1", Label: "Untouched", Attempts: 0, Correct: 0},
	}

	r := Rank(stats, DefaultConfig())
	if len(r.Topics) != 0 {
		t.Errorf("ranked %v, want empty", labels(r.Topics))
	}
	if r.Fallback {
		t.Error("empty ranking is not a fallback")
	}
}

func TestRanking_Top(t *testing.T) {
	r := Ranking{Topics: []TopicStats{
		{Label: "A"}, {Label: "B"}, {Label: "C"},
	}}

	if got := labels(r.Top(2)); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Top(2) = %v", got)
	}
	if got := r.Top(10); len(got) != 3 {
		t.Errorf("Top(10) returned %d topics, want all 3", len(got))
	}
	if got := r.Top(-1); len(got) != 0 {
		t.Errorf("Top(-1) returned %d topics, want 0", len(got))
	}
}

func TestTopicStats_AccuracyZeroGuard(t *testing.T) {
	s := TopicStats{Attempts: 0, Correct: 0}
	if got := s.Accuracy(); got != 0 {
		t.Errorf("Accuracy = %v, want 0", got)
	}
}
