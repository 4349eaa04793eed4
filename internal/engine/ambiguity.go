package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/unbound-force/discern/internal/config"
	"github.com/unbound-force/discern/internal/taxonomy"
)

// hedgeRe matches lexical hedge cues that mark the speaker as
// uncertain about their own intent.
var hedgeRe = regexp.MustCompile(`\b(maybe|perhaps|could|might|possibly)\b`)

// AssessAmbiguity flags lexical, structural, or contextual ambiguity.
// The classification is ambiguous when a hedge word is present or a
// secondary candidate scores within the close-confidence window of
// the primary. Question-form text with a query-class primary is
// additionally tagged contextual, without flipping the ambiguity
// flag on its own.
func AssessAmbiguity(primary taxonomy.CandidateIntent, secondary []taxonomy.CandidateIntent, normalized string, cfg *config.Config) taxonomy.AmbiguityAssessment {
	hedged := hedgeRe.MatchString(normalized)
	closeConf := closeConfidence(primary, secondary, cfg.Ambiguity.CloseWindow)

	ambiguous := hedged || closeConf

	var ambType taxonomy.AmbiguityType
	switch {
	case hedged:
		ambType = taxonomy.AmbiguityLexical
	case closeConf:
		ambType = taxonomy.AmbiguityStructural
	case strings.Contains(normalized, "?") && primary.IntentType.IsQueryClass():
		ambType = taxonomy.AmbiguityContextual
	default:
		ambType = taxonomy.AmbiguityNone
	}

	assessment := taxonomy.AmbiguityAssessment{
		IsAmbiguous:         ambiguous,
		Type:                ambType,
		ClarificationNeeded: ambiguous && primary.Confidence < cfg.Ambiguity.ClarificationThreshold,
	}

	if ambiguous {
		assessment.SuggestedClarification = suggestClarification(primary, secondary)
	}

	return assessment
}

// closeConfidence reports whether any secondary candidate sits
// within the given window of the primary's confidence.
func closeConfidence(primary taxonomy.CandidateIntent, secondary []taxonomy.CandidateIntent, window float64) bool {
	for _, c := range secondary {
		if primary.Confidence-c.Confidence <= window {
			return true
		}
	}
	return false
}

// suggestClarification templates a follow-up question from the
// primary and strongest secondary intent.
func suggestClarification(primary taxonomy.CandidateIntent, secondary []taxonomy.CandidateIntent) string {
	other := "something else"
	if len(secondary) > 0 {
		other = string(secondary[0].IntentType)
	}
	return fmt.Sprintf("Did you mean %s or %s? Please clarify your request.",
		primary.IntentType, other)
}
