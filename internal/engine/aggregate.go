package engine

import (
	"github.com/unbound-force/discern/internal/config"
	"github.com/unbound-force/discern/internal/taxonomy"
)

// Aggregate computes the overall confidence from the primary's
// confidence: ambiguity and a crowded candidate field discount it, a
// lone well-evidenced primary boosts it. The result is clamped to
// [0, 1].
func Aggregate(primary taxonomy.CandidateIntent, secondary []taxonomy.CandidateIntent, ambiguity taxonomy.AmbiguityAssessment, cfg *config.Config) float64 {
	confidence := primary.Confidence

	if ambiguity.IsAmbiguous {
		confidence *= cfg.Aggregation.AmbiguityDiscount
	}
	if len(secondary) > cfg.Aggregation.CrowdSize {
		confidence *= cfg.Aggregation.CrowdDiscount
	}
	if len(secondary) == 0 && len(primary.Signals) > cfg.Aggregation.SoloSignalCount {
		confidence *= cfg.Aggregation.SoloBoost
	}

	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}
