package score

import (
	"regexp"
	"strings"

	"github.com/unbound-force/discern/internal/taxonomy"
)

// actionVerbs are the known action-verb prefixes, checked in order
// against each token of the normalized text.
var actionVerbs = []string{
	"create", "update", "delete", "find", "search",
	"get", "set", "run", "execute",
}

// Target extraction templates. Extraction is best effort over
// normalized (lowercased) text; no match is not an error.
var (
	// articleNounRe matches "(the|a|an) NOUN" with an optional
	// second noun word.
	articleNounRe = regexp.MustCompile(`\b(?:the|a|an) ([a-z][a-z'-]*(?: [a-z][a-z'-]*)?)`)

	// verbObjectRe matches "verb (the|a|an)? NOUN" for the known
	// action verbs. The stems drop a trailing 'e' so inflected
	// forms like "creating" and "updated" still match.
	verbObjectRe = regexp.MustCompile(`\b(?:creat|updat|delet|find|search|get|set|run|execut)\w* (?:(?:the|a|an) )?([a-z][a-z'-]*(?: [a-z][a-z'-]*)?)`)
)

// ExtractTarget pulls the most likely object of the intent out of
// the normalized text. Returns nil when no template matches.
func ExtractTarget(normalized string) *taxonomy.Target {
	if m := articleNounRe.FindStringSubmatch(normalized); m != nil {
		return &taxonomy.Target{
			Type:       "noun_phrase",
			Value:      m[1],
			Normalized: strings.TrimSpace(m[1]),
		}
	}
	if m := verbObjectRe.FindStringSubmatch(normalized); m != nil {
		return &taxonomy.Target{
			Type:       "object",
			Value:      m[1],
			Normalized: strings.TrimSpace(m[1]),
		}
	}
	return nil
}

// ExtractAction scans tokens for a known action-verb prefix and
// infers the tense from the verb suffix. Returns nil when no token
// starts with a known verb.
func ExtractAction(normalized string) *taxonomy.Action {
	for _, tok := range strings.Fields(normalized) {
		tok = strings.Trim(tok, ".,!?'-")
		for _, verb := range actionVerbs {
			if hasVerbStem(tok, verb) {
				return &taxonomy.Action{
					Verb:       tok,
					Normalized: verb,
					Tense:      inferTense(tok),
				}
			}
		}
	}
	return nil
}

// hasVerbStem reports whether tok is an inflection of verb. Verbs
// ending in 'e' drop it before -ing, so "creating" is matched
// against the stem "creat" rather than "create".
func hasVerbStem(tok, verb string) bool {
	return strings.HasPrefix(tok, strings.TrimSuffix(verb, "e"))
}

// inferTense maps verb suffixes to tenses: -ing is present, -ed is
// past, anything else is read as an imperative.
func inferTense(verb string) taxonomy.Tense {
	switch {
	case strings.HasSuffix(verb, "ing"):
		return taxonomy.TensePresent
	case strings.HasSuffix(verb, "ed"):
		return taxonomy.TensePast
	default:
		return taxonomy.TenseImperative
	}
}
