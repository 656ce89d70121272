package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want :8080", cfg.ServerAddr)
	}
	if cfg.Leitner.BoxCount != 5 {
		t.Errorf("BoxCount = %d, want 5", cfg.Leitner.BoxCount)
	}
	want := []int{1, 3, 7, 14, 30}
	if len(cfg.Leitner.IntervalDays) != len(want) {
		t.Fatalf("IntervalDays = %v, want %v", cfg.Leitner.IntervalDays, want)
	}
	for i, d := range want {
		if cfg.Leitner.IntervalDays[i] != d {
			t.Errorf("IntervalDays[%d] = %d, want %d", i, cfg.Leitner.IntervalDays[i], d)
		}
	}
	if cfg.Leitner.PromotionStreak != 1 {
		t.Errorf("PromotionStreak = %d, want 1", cfg.Leitner.PromotionStreak)
	}
	if cfg.Remediate.MinAttempts != 3 || cfg.Remediate.TopK != 5 {
		t.Errorf("Remediate = %+v", cfg.Remediate)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STUDYMAP_LEITNER_PROMOTION_STREAK", "2")
	t.Setenv("STUDYMAP_SERVER_ADDR", ":9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Leitner.PromotionStreak != 2 {
		t.Errorf("PromotionStreak = %d, want env override 2", cfg.Leitner.PromotionStreak)
	}
	if cfg.ServerAddr != ":9999" {
		t.Errorf("ServerAddr = %q, want :9999", cfg.ServerAddr)
	}
}

func TestLoad_RejectsBadEnv(t *testing.T) {
	t.Setenv("STUDYMAP_LEITNER_PROMOTION_STREAK", "0")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for zero promotion streak")
	}
}
