package normalize

import "strings"

// englishStopwords are the high-frequency function words used by the
// language heuristic. The set is deliberately small; the heuristic
// only needs to separate English prose from noise.
var englishStopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {},
	"be": {}, "to": {}, "of": {}, "and": {}, "or": {}, "in": {},
	"on": {}, "for": {}, "with": {}, "it": {}, "this": {}, "that": {},
	"i": {}, "you": {}, "we": {}, "my": {}, "me": {}, "do": {},
	"have": {}, "can": {}, "will": {}, "should": {}, "please": {},
	"then": {}, "if": {}, "when": {}, "what": {}, "how": {},
}

// minStopwordRatio is the stopword-to-token ratio at or above which
// the text is guessed to be English.
const minStopwordRatio = 0.2

// DetectLanguage guesses the language of normalized text from its
// English-stopword ratio. Returns "en" when the ratio clears the
// threshold and "" when the heuristic has no signal; callers omit
// the field in that case.
func DetectLanguage(normalized string) string {
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return ""
	}

	hits := 0
	for _, tok := range tokens {
		tok = strings.Trim(tok, ".,!?'-")
		if _, ok := englishStopwords[tok]; ok {
			hits++
		}
	}
	if hits == 0 {
		return ""
	}
	if float64(hits)/float64(len(tokens)) >= minStopwordRatio {
		return "en"
	}
	return ""
}
