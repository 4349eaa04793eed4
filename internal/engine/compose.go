package engine

import (
	"github.com/unbound-force/discern/internal/normalize"
	"github.com/unbound-force/discern/internal/taxonomy"
)

// Note thresholds for the composer's free-text observations.
const (
	highConfidenceNote = 0.9
	lowConfidenceNote  = 0.5
	crowdedCandidates  = 2
)

// Compose assembles the final classification result from the
// pipeline stages' outputs.
func Compose(original, normalized string, hints *taxonomy.Hints,
	primary taxonomy.CandidateIntent, secondary []taxonomy.CandidateIntent,
	multi taxonomy.MultiIntentState, ambiguity taxonomy.AmbiguityAssessment,
	overall float64) *taxonomy.ClassificationResult {

	// Non-nil so JSON marshals as [] not null.
	if secondary == nil {
		secondary = []taxonomy.CandidateIntent{}
	}

	result := &taxonomy.ClassificationResult{
		ClassificationID:  taxonomy.GenerateID(normalized, hints),
		OriginalText:      original,
		NormalizedText:    normalized,
		PrimaryIntent:     primary,
		SecondaryIntents:  secondary,
		MultiIntent:       multi,
		OverallConfidence: overall,
		Analysis: taxonomy.Analysis{
			IntentCount: 1 + len(secondary),
			Notes:       composeNotes(primary, secondary),
			Ambiguity:   ambiguity,
			Language:    normalize.DetectLanguage(normalized),
		},
	}
	result.Analysis.SignalCount = result.SignalCount()

	return result
}

// composeNotes derives the free-text observations for the analysis
// block. Always returns a non-nil slice.
func composeNotes(primary taxonomy.CandidateIntent, secondary []taxonomy.CandidateIntent) []string {
	notes := make([]string, 0, 2)

	switch {
	case primary.Confidence > highConfidenceNote:
		notes = append(notes, "High confidence classification")
	case primary.Confidence < lowConfidenceNote:
		notes = append(notes, "Low confidence - intent may require clarification")
	}

	if len(secondary) > crowdedCandidates {
		notes = append(notes, "Multiple potential intents detected")
	}

	return notes
}
