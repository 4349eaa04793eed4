package engine

import (
	"sort"

	"github.com/unbound-force/discern/internal/config"
	"github.com/unbound-force/discern/internal/taxonomy"
)

// Select orders the filtered candidates descending by confidence and
// splits off the primary. Ties preserve catalog order via the stable
// sort. When no candidate survived, a synthetic UNKNOWN primary is
// returned so the primary intent is always present.
func Select(candidates []taxonomy.CandidateIntent, normalized string, cfg *config.Config) (taxonomy.CandidateIntent, []taxonomy.CandidateIntent) {
	if len(candidates) == 0 {
		return unknownCandidate(normalized, cfg), nil
	}

	sorted := make([]taxonomy.CandidateIntent, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	return sorted[0], sorted[1:]
}

// unknownCandidate builds the UNKNOWN fallback: fixed confidence and
// a single context signal covering the leading window of the
// normalized text.
func unknownCandidate(normalized string, cfg *config.Config) taxonomy.CandidateIntent {
	window := cfg.Selection.ContextWindow
	if window > len(normalized) {
		window = len(normalized)
	}

	return taxonomy.CandidateIntent{
		IntentType: taxonomy.IntentUnknown,
		Confidence: cfg.Selection.UnknownConfidence,
		Signals: []taxonomy.Signal{{
			Type:        taxonomy.SignalContext,
			MatchedText: normalized[:window],
			Position:    taxonomy.Position{Start: 0, End: window},
			Weight:      cfg.Selection.UnknownConfidence,
		}},
		Scope: taxonomy.ScopeUtterance,
	}
}
