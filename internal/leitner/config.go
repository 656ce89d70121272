package leitner

// Config holds the Leitner policy knobs. The defaults are the reference
// schedule; deployments tune them through the settings layer, globally, not
// per class.
type Config struct {
	// BoxCount is the highest box. Entries start in box 1 and are capped
	// at BoxCount.
	BoxCount int

	// IntervalDays maps box (1-based) to the review interval in days.
	// Must be monotonically increasing and BoxCount long.
	IntervalDays []int

	// PromotionStreak is how many consecutive correct attempts promote an
	// entry out of its current box.
	PromotionStreak int
}

// DefaultConfig returns the reference schedule: five boxes reviewed after
// 1, 3, 7, 14 and 30 days, promotion on every correct answer.
func DefaultConfig() Config {
	return Config{
		BoxCount:        5,
		IntervalDays:    []int{1, 3, 7, 14, 30},
		PromotionStreak: 1,
	}
}

// intervalDays returns the review interval for a box, clamping out-of-range
// boxes to the schedule bounds.
func (c Config) intervalDays(box int) int {
	if len(c.IntervalDays) == 0 {
		return 1
	}
	if box < 1 {
		box = 1
	}
	if box > len(c.IntervalDays) {
		box = len(c.IntervalDays)
	}
	return c.IntervalDays[box-1]
}
