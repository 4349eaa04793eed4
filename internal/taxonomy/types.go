// Package taxonomy defines the intent type system, the core data
// structures for classification results, and stable ID generation
// for Discern.
package taxonomy

// IntentType enumerates the intent categories the default catalog
// can produce. Custom catalogs may introduce additional types; an
// IntentType is any non-empty SCREAMING_SNAKE identifier.
type IntentType string

// Built-in intent types.
const (
	IntentUnknown  IntentType = "UNKNOWN"
	IntentGreeting IntentType = "GREETING"
	IntentCreate   IntentType = "CREATE"
	IntentUpdate   IntentType = "UPDATE"
	IntentDelete   IntentType = "DELETE"
	IntentQuery    IntentType = "QUERY"
	IntentSearch   IntentType = "SEARCH"
	IntentExecute  IntentType = "EXECUTE"
	IntentHelp     IntentType = "HELP"
	IntentStatus   IntentType = "STATUS"
)

// BuiltinIntents returns the intent types known to the default
// catalog, in catalog order.
func BuiltinIntents() []IntentType {
	return []IntentType{
		IntentGreeting, IntentCreate, IntentUpdate, IntentDelete,
		IntentQuery, IntentSearch, IntentExecute, IntentHelp,
		IntentStatus,
	}
}

// IsQueryClass reports whether the intent is an information-seeking
// intent. Question-form text with a query-class primary is treated
// as contextual ambiguity.
func (t IntentType) IsQueryClass() bool {
	return t == IntentQuery || t == IntentSearch
}

// SignalType categorizes a piece of textual evidence.
type SignalType string

// Signal type constants.
const (
	// SignalKeyword is a word-boundary keyword occurrence.
	SignalKeyword SignalType = "keyword"

	// SignalPhrase is a multi-word phrase occurrence.
	SignalPhrase SignalType = "phrase"

	// SignalContext is a synthetic signal carrying surrounding text,
	// used for the UNKNOWN fallback candidate.
	SignalContext SignalType = "context"
)

// Position is a half-open [Start, End) byte range into the
// normalized text.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Signal is one piece of textual evidence supporting a candidate
// intent. A signal belongs to exactly one candidate.
type Signal struct {
	// Type is the evidence category (keyword, phrase, context).
	Type SignalType `json:"signal_type"`

	// MatchedText is the text that produced the signal.
	MatchedText string `json:"matched_text"`

	// Position locates the match in the normalized text.
	Position Position `json:"position"`

	// Weight is the signal's contribution, in [0, 1].
	Weight float64 `json:"weight"`
}

// Target is the best-effort extracted object of an intent
// (e.g., "deployment pipeline" in "create a deployment pipeline").
type Target struct {
	// Type is the extraction template that matched: "noun_phrase"
	// for article-led noun groups, "object" for verb objects.
	Type string `json:"type"`

	// Value is the matched text.
	Value string `json:"value"`

	// Normalized is the canonical (trimmed, lowercased) form.
	Normalized string `json:"normalized"`
}

// Tense is the inferred grammatical tense of an action verb.
type Tense string

// Tense constants.
const (
	TensePresent    Tense = "present"
	TensePast       Tense = "past"
	TenseImperative Tense = "imperative"
)

// Action is the best-effort extracted action verb of an intent.
type Action struct {
	// Verb is the token as it appears in the text (e.g., "creating").
	Verb string `json:"verb"`

	// Normalized is the base verb form (e.g., "create").
	Normalized string `json:"normalized"`

	// Tense is inferred from the verb suffix.
	Tense Tense `json:"tense"`
}

// ScopeUtterance is the only candidate scope the detector currently
// produces: every signal is matched against the whole normalized
// utterance rather than a clause.
const ScopeUtterance = "utterance"

// CandidateIntent is an intent type plus the aggregated confidence
// derived from its signals. The signal list is never empty for a
// present candidate.
type CandidateIntent struct {
	IntentType IntentType `json:"intent_type"`

	// Confidence is in [0, 1].
	Confidence float64 `json:"confidence"`

	Signals []Signal `json:"signals"`

	// Target is nil when no extraction template matched.
	Target *Target `json:"target,omitempty"`

	// Action is nil when no known action verb was found.
	Action *Action `json:"action,omitempty"`

	Scope string `json:"scope"`
}

// Relationship describes how co-present intents relate.
type Relationship string

// Relationship constants, in cue priority order.
const (
	RelationshipNone        Relationship = "none"
	RelationshipSequential  Relationship = "sequential"
	RelationshipConditional Relationship = "conditional"
	RelationshipAlternative Relationship = "alternative"
	RelationshipParallel    Relationship = "parallel"
)

// MultiIntentState records whether a secondary intent is co-present
// and how the intents relate.
type MultiIntentState struct {
	IsMultiIntent bool         `json:"is_multi_intent"`
	Relationship  Relationship `json:"relationship"`

	// Sequence is populated only for sequential relationships, as
	// [primary, secondaries...] in confidence order.
	Sequence []IntentType `json:"sequence,omitempty"`
}

// AmbiguityType categorizes why a classification is ambiguous.
type AmbiguityType string

// Ambiguity type constants, in detection priority order.
const (
	AmbiguityNone       AmbiguityType = "none"
	AmbiguityLexical    AmbiguityType = "lexical"
	AmbiguityStructural AmbiguityType = "structural"
	AmbiguityContextual AmbiguityType = "contextual"
)

// AmbiguityAssessment flags lexical/structural/contextual ambiguity
// and whether the caller should ask for clarification.
type AmbiguityAssessment struct {
	IsAmbiguous bool          `json:"is_ambiguous"`
	Type        AmbiguityType `json:"ambiguity_type"`

	// ClarificationNeeded is set when the text is ambiguous and the
	// primary confidence is below the clarification threshold.
	ClarificationNeeded bool `json:"clarification_needed"`

	// SuggestedClarification is a templated question referencing the
	// primary and first secondary intent. Empty when not ambiguous.
	SuggestedClarification string `json:"suggested_clarification,omitempty"`
}

// Analysis carries derived metadata about one classification.
type Analysis struct {
	// IntentCount is primary plus secondaries.
	IntentCount int `json:"intent_count"`

	// SignalCount sums signal counts across all candidates.
	SignalCount int `json:"signal_count"`

	// Notes are free-text observations (confidence bands, candidate
	// crowding). Always non-nil so JSON marshals as [] not null.
	Notes []string `json:"notes"`

	Ambiguity AmbiguityAssessment `json:"ambiguity"`

	// Language is a best-effort guess from the English-stopword
	// ratio heuristic. Omitted when the heuristic has no signal.
	Language string `json:"language,omitempty"`
}

// Hints is the caller-supplied classification configuration. The
// zero value applies no hints; within it, zero MinConfidence and
// zero MaxIntents mean "no threshold" and "no limit".
type Hints struct {
	// ExpectedIntents have their confidence boosted (capped at 1.0).
	ExpectedIntents []IntentType `json:"expected_intents,omitempty"`

	// ExcludedIntents are dropped before truncation, so an excluded
	// type never occupies a kept slot.
	ExcludedIntents []IntentType `json:"excluded_intents,omitempty"`

	// MinConfidence drops candidates scoring below it, in [0, 1].
	MinConfidence float64 `json:"min_confidence,omitempty"`

	// MaxIntents caps the number of kept candidates, primary
	// included. Must be positive when set.
	MaxIntents int `json:"max_intents,omitempty"`
}

// RequestContext is optional caller context. It is echoed through
// validation but does not influence scoring.
type RequestContext struct {
	Domain           string   `json:"domain,omitempty"`
	PreviousMessages []string `json:"previous_messages,omitempty"`
}

// ClassificationResult is the complete output of one classification.
type ClassificationResult struct {
	// ClassificationID is a stable hash of the normalized text and
	// hints; identical inputs always produce the same ID.
	ClassificationID string `json:"classification_id"`

	OriginalText   string `json:"original_text"`
	NormalizedText string `json:"normalized_text"`

	// PrimaryIntent is always present; when no pattern matched it is
	// a synthetic UNKNOWN candidate.
	PrimaryIntent CandidateIntent `json:"primary_intent"`

	// SecondaryIntents are sorted descending by confidence and never
	// include the primary.
	SecondaryIntents []CandidateIntent `json:"secondary_intents"`

	MultiIntent MultiIntentState `json:"multi_intent_state"`

	// OverallConfidence is the aggregated confidence in [0, 1].
	OverallConfidence float64 `json:"overall_confidence"`

	Analysis Analysis `json:"analysis"`
}

// SignalCount sums the signal counts of the primary and all
// secondary candidates.
func (r *ClassificationResult) SignalCount() int {
	n := len(r.PrimaryIntent.Signals)
	for _, c := range r.SecondaryIntents {
		n += len(c.Signals)
	}
	return n
}
