// Package remediate ranks a student's topics by how badly they need review,
// worst accuracy first. It is a pure computation over attempt aggregates;
// callers fetch the aggregates from the store and decide what to do with the
// ranking (a review list, a suggested quiz, a teacher report).
package remediate

import "sort"

// TopicStats is the per-topic attempt aggregate the ranking runs on.
type TopicStats struct {
	TopicID  string `json:"topic_id"`
	Label    string `json:"label"`
	Attempts int    `json:"attempts"`
	Correct  int    `json:"correct"`
}

// Accuracy returns correct / attempts, and 0 when there are no attempts.
func (s TopicStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// Config holds the ranking knobs.
type Config struct {
	// MinAttempts is the evidence threshold: topics with fewer attempts are
	// excluded from the primary ranking so a single unlucky answer does not
	// dominate it.
	MinAttempts int

	// TopK caps how many topics Ranking.Top returns.
	TopK int
}

// DefaultConfig returns the reference thresholds.
func DefaultConfig() Config {
	return Config{MinAttempts: 3, TopK: 5}
}

// Ranking is the ordered output of Rank.
type Ranking struct {
	// Topics is sorted worst first: ascending accuracy, then descending
	// attempts (more evidence of struggling ranks higher), then label.
	Topics []TopicStats

	// Fallback is set when no topic met the evidence threshold and the
	// ranking fell back to every topic with at least one attempt.
	Fallback bool
}

// Top returns the first k ranked topics, or all of them when fewer exist.
func (r Ranking) Top(k int) []TopicStats {
	if k < 0 {
		k = 0
	}
	if k > len(r.Topics) {
		k = len(r.Topics)
	}
	return r.Topics[:k]
}

// Rank orders topics worst first. Topics with at least cfg.MinAttempts
// attempts form the primary ranking; when none qualify, every topic with at
// least one attempt is ranked instead and Fallback is set. Topics with zero
// attempts never rank.
func Rank(stats []TopicStats, cfg Config) Ranking {
	primary := filter(stats, cfg.MinAttempts)

	ranking := Ranking{Topics: primary}
	if len(primary) == 0 {
		ranking.Topics = filter(stats, 1)
		ranking.Fallback = len(ranking.Topics) > 0
	}

	sort.SliceStable(ranking.Topics, func(i, j int) bool {
		a, b := ranking.Topics[i], ranking.Topics[j]
		if a.Accuracy() != b.Accuracy() {
			return a.Accuracy() < b.Accuracy()
		}
		if a.Attempts != b.Attempts {
			return a.Attempts > b.Attempts
		}
		return a.Label < b.Label
	})
	return ranking
}

func filter(stats []TopicStats, minAttempts int) []TopicStats {
	var out []TopicStats
	for _, s := range stats {
		if s.Attempts >= minAttempts {
			out = append(out, s)
		}
	}
	return out
}
