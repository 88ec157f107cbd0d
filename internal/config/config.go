// Package config handles configuration loading and defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mbaumgart/recap/internal/synthesis"
)

// Config holds all user-tunable settings.
type Config struct {
	DBPath string `yaml:"db_path"`

	Synthesis SynthesisConfig `yaml:"synthesis"`
	Insights  InsightsConfig  `yaml:"insights"`
}

// SynthesisConfig holds the block-building knobs.
type SynthesisConfig struct {
	CarryForwardGapMinutes int     `yaml:"carry_forward_gap_minutes"`
	InferredToleranceM     float64 `yaml:"inferred_tolerance_m"`
	AlternativeRadiusM     float64 `yaml:"alternative_radius_m"`
	MaxAlternatives        int     `yaml:"max_alternatives"`
}

// InsightsConfig holds the pattern-analysis knobs.
type InsightsConfig struct {
	BaselineDays       int     `yaml:"baseline_days"`
	DeviationThreshold float64 `yaml:"deviation_threshold"`
	PredictionFloor    float64 `yaml:"prediction_floor"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/tmp"
	}
	eng := synthesis.DefaultConfig()

	return &Config{
		DBPath: filepath.Join(home, ".recap", "recap.db"),
		Synthesis: SynthesisConfig{
			CarryForwardGapMinutes: int(eng.CarryForwardGap / time.Minute),
			InferredToleranceM:     eng.InferredToleranceM,
			AlternativeRadiusM:     eng.AlternativeRadiusM,
			MaxAlternatives:        eng.MaxAlternatives,
		},
		Insights: InsightsConfig{
			BaselineDays:       28,
			DeviationThreshold: eng.DeviationThreshold,
			PredictionFloor:    eng.PredictionFloor,
		},
	}
}

// Load loads configuration from ~/.recap/config.yaml, falling back to
// defaults when the file is absent or unreadable.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Join(home, ".recap", "config.yaml"))
	if err != nil {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the current config to disk.
func (c *Config) Save() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	dir := filepath.Join(home, ".recap")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0600)
}

// Engine maps the file-level settings onto the synthesis engine config.
// Zero or negative values fall back to the engine defaults.
func (c *Config) Engine() synthesis.Config {
	eng := synthesis.DefaultConfig()
	if c.Synthesis.CarryForwardGapMinutes > 0 {
		eng.CarryForwardGap = time.Duration(c.Synthesis.CarryForwardGapMinutes) * time.Minute
	}
	if c.Synthesis.InferredToleranceM > 0 {
		eng.InferredToleranceM = c.Synthesis.InferredToleranceM
	}
	if c.Synthesis.AlternativeRadiusM > 0 {
		eng.AlternativeRadiusM = c.Synthesis.AlternativeRadiusM
	}
	if c.Synthesis.MaxAlternatives > 0 {
		eng.MaxAlternatives = c.Synthesis.MaxAlternatives
	}
	if c.Insights.DeviationThreshold > 0 {
		eng.DeviationThreshold = c.Insights.DeviationThreshold
	}
	if c.Insights.PredictionFloor > 0 {
		eng.PredictionFloor = c.Insights.PredictionFloor
	}
	return eng
}

// BaselineDays returns the history window for pattern analysis.
func (c *Config) BaselineDays() int {
	if c.Insights.BaselineDays > 0 {
		return c.Insights.BaselineDays
	}
	return 28
}
