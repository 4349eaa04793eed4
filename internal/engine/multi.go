package engine

import (
	"regexp"

	"github.com/unbound-force/discern/internal/config"
	"github.com/unbound-force/discern/internal/taxonomy"
)

// relationshipCues pair each relationship with its lexical cue,
// in priority order: a sequential cue wins over a conditional one,
// and so on down to parallel.
var relationshipCues = []struct {
	rel taxonomy.Relationship
	re  *regexp.Regexp
}{
	{taxonomy.RelationshipSequential, regexp.MustCompile(`\b(then|after|next|before)\b`)},
	{taxonomy.RelationshipConditional, regexp.MustCompile(`\b(if|when|unless|provided)\b`)},
	{taxonomy.RelationshipAlternative, regexp.MustCompile(`\b(or|either|instead)\b`)},
	{taxonomy.RelationshipParallel, regexp.MustCompile(`\b(and|also|plus|as well)\b`)},
}

// AnalyzeMulti decides whether a secondary intent is genuinely
// co-present and, if so, how the intents relate. Only a sequential
// relationship carries an ordered sequence.
func AnalyzeMulti(primary taxonomy.CandidateIntent, secondary []taxonomy.CandidateIntent, normalized string, cfg *config.Config) taxonomy.MultiIntentState {
	if len(secondary) == 0 || secondary[0].Confidence <= cfg.MultiIntent.SecondaryThreshold {
		return taxonomy.MultiIntentState{
			IsMultiIntent: false,
			Relationship:  taxonomy.RelationshipNone,
		}
	}

	rel := taxonomy.RelationshipParallel
	for _, cue := range relationshipCues {
		if cue.re.MatchString(normalized) {
			rel = cue.rel
			break
		}
	}

	state := taxonomy.MultiIntentState{
		IsMultiIntent: true,
		Relationship:  rel,
	}

	if rel == taxonomy.RelationshipSequential {
		seq := make([]taxonomy.IntentType, 0, 1+len(secondary))
		seq = append(seq, primary.IntentType)
		for _, c := range secondary {
			seq = append(seq, c.IntentType)
		}
		state.Sequence = seq
	}

	return state
}
