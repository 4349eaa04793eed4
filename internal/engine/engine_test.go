package engine_test

import (
	"context"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/unbound-force/discern/internal/catalog"
	"github.com/unbound-force/discern/internal/decision"
	"github.com/unbound-force/discern/internal/engine"
	"github.com/unbound-force/discern/internal/schema"
	"github.com/unbound-force/discern/internal/taxonomy"
)

func classify(t *testing.T, req engine.Request, opts ...engine.Option) *taxonomy.ClassificationResult {
	t.Helper()
	eng := engine.New(catalog.Default(), opts...)
	result, err := eng.Classify(context.Background(), req)
	if err != nil {
		t.Fatalf("Classify(%q): %v", req.Text, err)
	}
	return result
}

func TestClassify_Greeting(t *testing.T) {
	result := classify(t, engine.Request{Text: "hello"})

	if result.PrimaryIntent.IntentType != taxonomy.IntentGreeting {
		t.Errorf("primary = %s, want GREETING", result.PrimaryIntent.IntentType)
	}
	if result.PrimaryIntent.Confidence <= 0.5 {
		t.Errorf("confidence = %g, want > 0.5", result.PrimaryIntent.Confidence)
	}
	if len(result.SecondaryIntents) != 0 {
		t.Errorf("secondaries = %v, want none", intentsOf(result.SecondaryIntents))
	}
	if result.MultiIntent.IsMultiIntent {
		t.Error("single greeting flagged multi-intent")
	}
}

func TestClassify_NoMatchFallsBackToUnknown(t *testing.T) {
	result := classify(t, engine.Request{Text: "zzqxw blorp"})

	primary := result.PrimaryIntent
	if primary.IntentType != taxonomy.IntentUnknown {
		t.Fatalf("primary = %s, want UNKNOWN", primary.IntentType)
	}
	if primary.Confidence != 0.1 {
		t.Errorf("confidence = %g, want 0.1", primary.Confidence)
	}
	if len(primary.Signals) != 1 || primary.Signals[0].Type != taxonomy.SignalContext {
		t.Errorf("signals = %+v, want one context signal", primary.Signals)
	}
}

func TestClassify_CreateWithActionAndTarget(t *testing.T) {
	result := classify(t, engine.Request{Text: "create a new deployment pipeline"})

	primary := result.PrimaryIntent
	if primary.IntentType != taxonomy.IntentCreate {
		t.Fatalf("primary = %s, want CREATE", primary.IntentType)
	}
	// "create" and "new" both match; two keyword signals.
	if len(primary.Signals) != 2 {
		t.Errorf("signals = %d, want 2", len(primary.Signals))
	}
	if primary.Action == nil || primary.Action.Normalized != "create" {
		t.Errorf("action = %+v, want create", primary.Action)
	}
	if primary.Action != nil && primary.Action.Tense != taxonomy.TenseImperative {
		t.Errorf("tense = %s, want imperative", primary.Action.Tense)
	}
	if primary.Target == nil {
		t.Fatal("expected a target")
	}
	if primary.Target.Normalized != "new deployment" {
		t.Errorf("target = %q, want \"new deployment\"", primary.Target.Normalized)
	}
}

func TestClassify_SequentialMultiIntent(t *testing.T) {
	result := classify(t, engine.Request{Text: "create a report then send it"})

	if result.PrimaryIntent.IntentType != taxonomy.IntentCreate {
		t.Fatalf("primary = %s, want CREATE", result.PrimaryIntent.IntentType)
	}
	if !result.MultiIntent.IsMultiIntent {
		t.Fatal("expected multi-intent")
	}
	if result.MultiIntent.Relationship != taxonomy.RelationshipSequential {
		t.Errorf("relationship = %s, want sequential", result.MultiIntent.Relationship)
	}
	seq := result.MultiIntent.Sequence
	if len(seq) < 2 || seq[0] != taxonomy.IntentCreate || seq[1] != taxonomy.IntentExecute {
		t.Errorf("sequence = %v, want [CREATE EXECUTE ...]", seq)
	}
}

func TestClassify_ExclusionFallsBackToUnknown(t *testing.T) {
	result := classify(t, engine.Request{
		Text:  "hello",
		Hints: &taxonomy.Hints{ExcludedIntents: []taxonomy.IntentType{taxonomy.IntentGreeting}},
	})

	if result.PrimaryIntent.IntentType != taxonomy.IntentUnknown {
		t.Errorf("primary = %s, want UNKNOWN after exclusion", result.PrimaryIntent.IntentType)
	}
}

func TestClassify_HedgeMarksLexicalAmbiguity(t *testing.T) {
	result := classify(t, engine.Request{Text: "maybe I should update it"})

	if result.PrimaryIntent.IntentType != taxonomy.IntentUpdate {
		t.Fatalf("primary = %s, want UPDATE", result.PrimaryIntent.IntentType)
	}
	amb := result.Analysis.Ambiguity
	if !amb.IsAmbiguous || amb.Type != taxonomy.AmbiguityLexical {
		t.Errorf("ambiguity = %+v, want lexical", amb)
	}
	if amb.SuggestedClarification == "" {
		t.Error("expected a suggested clarification")
	}
}

func TestClassify_MaxIntentsTruncatesSecondaries(t *testing.T) {
	result := classify(t, engine.Request{
		Text:  "create a report then send it",
		Hints: &taxonomy.Hints{MaxIntents: 1},
	})

	if len(result.SecondaryIntents) != 0 {
		t.Errorf("secondaries = %v, want none with max_intents=1",
			intentsOf(result.SecondaryIntents))
	}
	if result.MultiIntent.IsMultiIntent {
		t.Error("truncated result still flagged multi-intent")
	}
}

func TestClassify_Deterministic(t *testing.T) {
	req := engine.Request{
		Text:  "create a report then send it",
		Hints: &taxonomy.Hints{MaxIntents: 3},
	}

	first := classify(t, req)
	second := classify(t, req)

	if first.ClassificationID != second.ClassificationID {
		t.Errorf("IDs differ: %s vs %s", first.ClassificationID, second.ClassificationID)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical requests produced different results")
	}
}

func TestClassify_ConfidencesInRange(t *testing.T) {
	texts := []string{
		"hello",
		"create a new deployment pipeline and then run the tests or maybe delete everything",
		"what is the status? how is it going?",
		"zzqxw",
	}

	for _, text := range texts {
		result := classify(t, engine.Request{Text: text})
		if result.OverallConfidence < 0 || result.OverallConfidence > 1 {
			t.Errorf("%q: overall = %g, outside [0, 1]", text, result.OverallConfidence)
		}
		if c := result.PrimaryIntent.Confidence; c < 0 || c > 1 {
			t.Errorf("%q: primary = %g, outside [0, 1]", text, c)
		}
		for _, s := range result.SecondaryIntents {
			if s.Confidence < 0 || s.Confidence > 1 {
				t.Errorf("%q: secondary %s = %g, outside [0, 1]", text, s.IntentType, s.Confidence)
			}
		}
	}
}

func TestClassify_QuestionTaggedContextual(t *testing.T) {
	result := classify(t, engine.Request{Text: "what is the weather?"})

	if !result.PrimaryIntent.IntentType.IsQueryClass() {
		t.Fatalf("primary = %s, want a query-class intent", result.PrimaryIntent.IntentType)
	}
	if got := result.Analysis.Ambiguity.Type; got != taxonomy.AmbiguityContextual {
		t.Errorf("ambiguity type = %s, want contextual", got)
	}
}

func TestClassify_EmptyTextRejected(t *testing.T) {
	eng := engine.New(catalog.Default())
	_, err := eng.Classify(context.Background(), engine.Request{Text: ""})
	if err == nil {
		t.Fatal("expected validation error for empty text")
	}
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *schema.ValidationError", err)
	}
	if verr.Stage != "input" {
		t.Errorf("stage = %q, want input", verr.Stage)
	}
}

func TestClassify_UnknownHintIntentRejected(t *testing.T) {
	eng := engine.New(catalog.Default())
	_, err := eng.Classify(context.Background(), engine.Request{
		Text:  "hello",
		Hints: &taxonomy.Hints{ExpectedIntents: []taxonomy.IntentType{"TELEPORT"}},
	})
	if err == nil {
		t.Fatal("expected error for hint naming an unknown intent")
	}
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *schema.ValidationError", err)
	}
}

func TestClassify_UnknownAllowedInHints(t *testing.T) {
	// UNKNOWN is not in the catalog but is always a legal hint
	// target; excluding it must not error.
	result := classify(t, engine.Request{
		Text:  "hello",
		Hints: &taxonomy.Hints{ExcludedIntents: []taxonomy.IntentType{taxonomy.IntentUnknown}},
	})
	if result.PrimaryIntent.IntentType != taxonomy.IntentGreeting {
		t.Errorf("primary = %s, want GREETING", result.PrimaryIntent.IntentType)
	}
}

func TestClassify_ContextEchoedNotScored(t *testing.T) {
	plain := classify(t, engine.Request{Text: "create a report"})
	contextual := classify(t, engine.Request{
		Text: "create a report",
		Context: &taxonomy.RequestContext{
			Domain:           "devops",
			PreviousMessages: []string{"hello"},
		},
	})

	if plain.PrimaryIntent.Confidence != contextual.PrimaryIntent.Confidence {
		t.Error("request context must not influence scoring")
	}
	// Context feeds the input hash, so the deterministic ID matches:
	// hints, not context, are part of identity.
	if plain.ClassificationID != contextual.ClassificationID {
		t.Error("context must not change the classification ID")
	}
}

func TestClassify_OverallConfidenceAggregation(t *testing.T) {
	// "create a report then send it": primary CREATE 0.7875 with one
	// close secondary (structural ambiguity), so the overall is
	// discounted once.
	result := classify(t, engine.Request{Text: "create a report then send it"})

	want := 0.63 / 0.8 * 0.85
	if math.Abs(result.OverallConfidence-want) > 1e-9 {
		t.Errorf("overall = %g, want %g", result.OverallConfidence, want)
	}
}

func TestClassify_MemoryStoreCapturesEvent(t *testing.T) {
	store := decision.NewMemoryStore()
	result := classify(t, engine.Request{
		Text:         "create a report",
		ExecutionRef: "run-42",
	}, engine.WithStore(store))

	events := store.Events()
	if len(events) != 1 {
		t.Fatalf("stored events = %d, want 1", len(events))
	}
	event := events[0]
	if event.DecisionType != decision.TypeIntentClassification {
		t.Errorf("decision_type = %q, want %q", event.DecisionType, decision.TypeIntentClassification)
	}
	if event.ExecutionRef != "run-42" {
		t.Errorf("execution_ref = %q, want run-42", event.ExecutionRef)
	}
	if len(event.InputsHash) != 64 {
		t.Errorf("inputs_hash length = %d, want 64 hex chars", len(event.InputsHash))
	}
	if event.Outputs == nil || event.Outputs.ClassificationID != result.ClassificationID {
		t.Error("event outputs do not carry the returned result")
	}
	if event.Confidence != result.OverallConfidence {
		t.Errorf("event confidence = %g, want %g", event.Confidence, result.OverallConfidence)
	}

	constraints := strings.Join(event.ConstraintsApplied, ",")
	for _, tag := range []string{"stateless:true", "read_only:true", "non_executing:true", "deterministic:true"} {
		if !strings.Contains(constraints, tag) {
			t.Errorf("constraints %v missing %s", event.ConstraintsApplied, tag)
		}
	}
}

func TestClassify_HintsEchoedInConstraints(t *testing.T) {
	store := decision.NewMemoryStore()
	classify(t, engine.Request{
		Text: "create a report",
		Hints: &taxonomy.Hints{
			ExpectedIntents: []taxonomy.IntentType{taxonomy.IntentCreate},
			MaxIntents:      2,
		},
	}, engine.WithStore(store))

	events := store.Events()
	if len(events) != 1 {
		t.Fatalf("stored events = %d, want 1", len(events))
	}
	constraints := strings.Join(events[0].ConstraintsApplied, ",")
	if !strings.Contains(constraints, "expected_intents:CREATE") {
		t.Errorf("constraints %v missing expected_intents echo", events[0].ConstraintsApplied)
	}
	if !strings.Contains(constraints, "max_intents:2") {
		t.Errorf("constraints %v missing max_intents echo", events[0].ConstraintsApplied)
	}
}

// failingStore always rejects writes, standing in for an unreachable
// persistence backend.
type failingStore struct{}

func (failingStore) Store(context.Context, *decision.Event) error {
	return errors.New("backend unreachable")
}

func (failingStore) Close() error { return nil }

func TestClassify_StoreFailureStillReturnsResult(t *testing.T) {
	eng := engine.New(catalog.Default(), engine.WithStore(failingStore{}))
	result, err := eng.Classify(context.Background(), engine.Request{Text: "hello"})

	if err == nil {
		t.Fatal("expected a persistence error")
	}
	var perr *decision.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *decision.PersistenceError", err)
	}
	if result == nil {
		t.Fatal("result must survive a persistence failure")
	}
	if result.PrimaryIntent.IntentType != taxonomy.IntentGreeting {
		t.Errorf("primary = %s, want GREETING", result.PrimaryIntent.IntentType)
	}
}

func TestClassify_ResultValidatesAgainstSchema(t *testing.T) {
	result := classify(t, engine.Request{Text: "create a report then send it"})
	if err := schema.ValidateResult(result); err != nil {
		t.Errorf("result does not validate: %v", err)
	}
}
