// Package config holds the engine tuning constants for Discern.
// Every formerly implicit magic value of the scoring pipeline lives
// here with a documented default, and can be overridden via a
// .discern.yaml file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScoringConfig tunes signal weighting and candidate confidence.
type ScoringConfig struct {
	// KeywordFactor scales a pattern's weight for keyword matches.
	KeywordFactor float64 `yaml:"keyword_factor"`

	// PhraseFactor scales a pattern's weight for phrase matches.
	PhraseFactor float64 `yaml:"phrase_factor"`

	// SignalDivisor dampens runaway growth from many weak signals:
	// confidence = min(1, sum(weights) / (len(signals) * divisor)).
	SignalDivisor float64 `yaml:"signal_divisor"`

	// ExpectedBoost multiplies the confidence of candidates whose
	// type appears in the caller's expected intents, capped at 1.0.
	ExpectedBoost float64 `yaml:"expected_boost"`
}

// SelectionConfig tunes primary selection and the UNKNOWN fallback.
type SelectionConfig struct {
	// UnknownConfidence is the fixed confidence of the synthetic
	// UNKNOWN candidate produced when no pattern matched.
	UnknownConfidence float64 `yaml:"unknown_confidence"`

	// ContextWindow is how many leading characters of the normalized
	// text the UNKNOWN candidate's context signal covers.
	ContextWindow int `yaml:"context_window"`
}

// MultiIntentConfig tunes multi-intent detection.
type MultiIntentConfig struct {
	// SecondaryThreshold is the minimum confidence of the strongest
	// secondary candidate for the text to count as multi-intent.
	SecondaryThreshold float64 `yaml:"secondary_threshold"`
}

// AmbiguityConfig tunes the ambiguity detector.
type AmbiguityConfig struct {
	// CloseWindow is the confidence distance within which a
	// secondary candidate makes the classification structurally
	// ambiguous.
	CloseWindow float64 `yaml:"close_window"`

	// ClarificationThreshold: ambiguous classifications below this
	// primary confidence need clarification.
	ClarificationThreshold float64 `yaml:"clarification_threshold"`
}

// AggregationConfig tunes the overall confidence aggregator.
type AggregationConfig struct {
	// AmbiguityDiscount multiplies confidence when ambiguous.
	AmbiguityDiscount float64 `yaml:"ambiguity_discount"`

	// CrowdDiscount multiplies confidence when more than CrowdSize
	// secondary candidates survive filtering.
	CrowdDiscount float64 `yaml:"crowd_discount"`

	// CrowdSize is the secondary count above which CrowdDiscount
	// applies.
	CrowdSize int `yaml:"crowd_size"`

	// SoloBoost multiplies confidence (capped at 1.0) when there are
	// no secondaries and the primary has more than SoloSignalCount
	// signals.
	SoloBoost float64 `yaml:"solo_boost"`

	// SoloSignalCount is the primary signal count above which
	// SoloBoost applies.
	SoloSignalCount int `yaml:"solo_signal_count"`
}

// Config is the complete Discern engine configuration.
type Config struct {
	Scoring     ScoringConfig     `yaml:"scoring"`
	Selection   SelectionConfig   `yaml:"selection"`
	MultiIntent MultiIntentConfig `yaml:"multi_intent"`
	Ambiguity   AmbiguityConfig   `yaml:"ambiguity"`
	Aggregation AggregationConfig `yaml:"aggregation"`
}

// Default returns the engine defaults.
func Default() *Config {
	return &Config{
		Scoring: ScoringConfig{
			KeywordFactor: 0.7,
			PhraseFactor:  1.0,
			SignalDivisor: 0.8,
			ExpectedBoost: 1.2,
		},
		Selection: SelectionConfig{
			UnknownConfidence: 0.1,
			ContextWindow:     50,
		},
		MultiIntent: MultiIntentConfig{
			SecondaryThreshold: 0.5,
		},
		Ambiguity: AmbiguityConfig{
			CloseWindow:            0.15,
			ClarificationThreshold: 0.7,
		},
		Aggregation: AggregationConfig{
			AmbiguityDiscount: 0.85,
			CrowdDiscount:     0.9,
			CrowdSize:         3,
			SoloBoost:         1.1,
			SoloSignalCount:   2,
		},
	}
}

// Load reads a YAML config file over the defaults. Fields absent
// from the file keep their default values. The loaded config is
// validated before being returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every tuning value against its legal range.
func (c *Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
		want string
	}{
		{"scoring.keyword_factor", c.Scoring.KeywordFactor > 0 && c.Scoring.KeywordFactor <= 1, "(0, 1]"},
		{"scoring.phrase_factor", c.Scoring.PhraseFactor > 0 && c.Scoring.PhraseFactor <= 1, "(0, 1]"},
		{"scoring.signal_divisor", c.Scoring.SignalDivisor > 0, "> 0"},
		{"scoring.expected_boost", c.Scoring.ExpectedBoost >= 1, ">= 1"},
		{"selection.unknown_confidence", c.Selection.UnknownConfidence > 0 && c.Selection.UnknownConfidence <= 1, "(0, 1]"},
		{"selection.context_window", c.Selection.ContextWindow > 0, "> 0"},
		{"multi_intent.secondary_threshold", c.MultiIntent.SecondaryThreshold >= 0 && c.MultiIntent.SecondaryThreshold <= 1, "[0, 1]"},
		{"ambiguity.close_window", c.Ambiguity.CloseWindow >= 0 && c.Ambiguity.CloseWindow <= 1, "[0, 1]"},
		{"ambiguity.clarification_threshold", c.Ambiguity.ClarificationThreshold >= 0 && c.Ambiguity.ClarificationThreshold <= 1, "[0, 1]"},
		{"aggregation.ambiguity_discount", c.Aggregation.AmbiguityDiscount > 0 && c.Aggregation.AmbiguityDiscount <= 1, "(0, 1]"},
		{"aggregation.crowd_discount", c.Aggregation.CrowdDiscount > 0 && c.Aggregation.CrowdDiscount <= 1, "(0, 1]"},
		{"aggregation.crowd_size", c.Aggregation.CrowdSize > 0, "> 0"},
		{"aggregation.solo_boost", c.Aggregation.SoloBoost >= 1, ">= 1"},
		{"aggregation.solo_signal_count", c.Aggregation.SoloSignalCount > 0, "> 0"},
	}

	for _, ck := range checks {
		if !ck.ok {
			return fmt.Errorf("invalid %s: must be %s", ck.name, ck.want)
		}
	}
	return nil
}
