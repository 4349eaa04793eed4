package engine

import (
	"sort"

	"github.com/unbound-force/discern/internal/config"
	"github.com/unbound-force/discern/internal/taxonomy"
)

// ApplyHints applies the caller-supplied hints to the scored
// candidates, in this order: boost expected, drop excluded, drop
// below-threshold, sort, truncate. Exclusion happens before
// truncation so an excluded type never occupies a kept slot. The
// input slice is not mutated.
func ApplyHints(candidates []taxonomy.CandidateIntent, hints *taxonomy.Hints, cfg *config.Config) []taxonomy.CandidateIntent {
	kept := make([]taxonomy.CandidateIntent, 0, len(candidates))

	expected := intentSet(nil)
	excluded := intentSet(nil)
	if hints != nil {
		expected = intentSet(hints.ExpectedIntents)
		excluded = intentSet(hints.ExcludedIntents)
	}

	for _, c := range candidates {
		// 1. Boost expected types, capped at 1.0.
		if _, ok := expected[c.IntentType]; ok {
			c.Confidence *= cfg.Scoring.ExpectedBoost
			if c.Confidence > 1 {
				c.Confidence = 1
			}
		}

		// 2. Drop excluded types.
		if _, ok := excluded[c.IntentType]; ok {
			continue
		}

		// 3. Drop candidates below the confidence threshold.
		if hints != nil && c.Confidence < hints.MinConfidence {
			continue
		}

		kept = append(kept, c)
	}

	// Order by confidence before truncating. The sort is stable so
	// equal-confidence candidates keep catalog order.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Confidence > kept[j].Confidence
	})

	// 4. Truncate to the candidate limit.
	if hints != nil && hints.MaxIntents > 0 && len(kept) > hints.MaxIntents {
		kept = kept[:hints.MaxIntents]
	}

	return kept
}

func intentSet(intents []taxonomy.IntentType) map[taxonomy.IntentType]struct{} {
	set := make(map[taxonomy.IntentType]struct{}, len(intents))
	for _, t := range intents {
		set[t] = struct{}{}
	}
	return set
}
