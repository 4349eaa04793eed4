// Package score implements the intent scorer: it aggregates a
// pattern's signals into a confidence-scored candidate intent with
// best-effort target and action extraction.
package score

import (
	"github.com/unbound-force/discern/internal/config"
	"github.com/unbound-force/discern/internal/detect"
	"github.com/unbound-force/discern/internal/taxonomy"
)

// Scorer converts detector matches into candidate intents. It is
// stateless and safe for concurrent use.
type Scorer struct {
	cfg *config.Config
}

// New returns a scorer using the given config. A nil config uses
// the defaults.
func New(cfg *config.Config) *Scorer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Scorer{cfg: cfg}
}

// Score builds a candidate intent from one detector match. The
// confidence formula rewards additional independent evidence while
// the signal-count divisor damps runaway growth from many weak
// keyword hits.
func (s *Scorer) Score(normalized string, m detect.Match) taxonomy.CandidateIntent {
	var sum float64
	for _, sig := range m.Signals {
		sum += sig.Weight
	}
	confidence := sum / (float64(len(m.Signals)) * s.cfg.Scoring.SignalDivisor)
	if confidence > 1 {
		confidence = 1
	}

	return taxonomy.CandidateIntent{
		IntentType: m.Pattern.Intent,
		Confidence: confidence,
		Signals:    m.Signals,
		Target:     ExtractTarget(normalized),
		Action:     ExtractAction(normalized),
		Scope:      taxonomy.ScopeUtterance,
	}
}

// ScoreAll scores every match in detector order, preserving catalog
// order for the selector's stable tie-break.
func (s *Scorer) ScoreAll(normalized string, matches []detect.Match) []taxonomy.CandidateIntent {
	candidates := make([]taxonomy.CandidateIntent, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, s.Score(normalized, m))
	}
	return candidates
}
