// Package config loads runtime settings from defaults, an optional config
// file and STUDYMAP_-prefixed environment variables, in increasing priority.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/studymap/studymap/internal/leitner"
	"github.com/studymap/studymap/internal/remediate"
)

// Config is the resolved runtime configuration.
type Config struct {
	ServerAddr string

	Leitner   leitner.Config
	Remediate remediate.Config
}

// Load resolves the configuration. A config file is optional; a missing file
// is not an error, a malformed one is.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("leitner.boxes", 5)
	v.SetDefault("leitner.interval_days", []int{1, 3, 7, 14, 30})
	v.SetDefault("leitner.promotion_streak", 1)
	v.SetDefault("remediate.min_attempts", 3)
	v.SetDefault("remediate.top_k", 5)

	v.SetEnvPrefix("STUDYMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("studymap")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$XDG_CONFIG_HOME/studymap")
	v.AddConfigPath("$HOME/.config/studymap")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		ServerAddr: v.GetString("server.addr"),
		Leitner: leitner.Config{
			BoxCount:        v.GetInt("leitner.boxes"),
			IntervalDays:    v.GetIntSlice("leitner.interval_days"),
			PromotionStreak: v.GetInt("leitner.promotion_streak"),
		},
		Remediate: remediate.Config{
			MinAttempts: v.GetInt("remediate.min_attempts"),
			TopK:        v.GetInt("remediate.top_k"),
		},
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Leitner.BoxCount < 1 {
		return fmt.Errorf("leitner.boxes must be >= 1, got %d", cfg.Leitner.BoxCount)
	}
	if len(cfg.Leitner.IntervalDays) != cfg.Leitner.BoxCount {
		return fmt.Errorf("leitner.interval_days needs %d values, got %d",
			cfg.Leitner.BoxCount, len(cfg.Leitner.IntervalDays))
	}
	for i, d := range cfg.Leitner.IntervalDays {
		if d < 1 {
			return fmt.Errorf("leitner.interval_days[%d] must be >= 1, got %d", i, d)
		}
		if i > 0 && d < cfg.Leitner.IntervalDays[i-1] {
			return fmt.Errorf("leitner.interval_days must not decrease (index %d)", i)
		}
	}
	if cfg.Leitner.PromotionStreak < 1 {
		return fmt.Errorf("leitner.promotion_streak must be >= 1, got %d", cfg.Leitner.PromotionStreak)
	}
	if cfg.Remediate.MinAttempts < 1 {
		return fmt.Errorf("remediate.min_attempts must be >= 1, got %d", cfg.Remediate.MinAttempts)
	}
	if cfg.Remediate.TopK < 1 {
		return fmt.Errorf("remediate.top_k must be >= 1, got %d", cfg.Remediate.TopK)
	}
	return nil
}
