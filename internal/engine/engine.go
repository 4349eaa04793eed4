// Package engine implements the intent classification pipeline:
// normalize, detect, score, filter, select, analyze, assess,
// aggregate, compose. The pipeline is a single-pass pure function
// over immutable values; the only shared state is the injected,
// read-only pattern catalog, so any number of classifications may
// run concurrently.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unbound-force/discern/internal/catalog"
	"github.com/unbound-force/discern/internal/config"
	"github.com/unbound-force/discern/internal/decision"
	"github.com/unbound-force/discern/internal/detect"
	"github.com/unbound-force/discern/internal/normalize"
	"github.com/unbound-force/discern/internal/schema"
	"github.com/unbound-force/discern/internal/score"
	"github.com/unbound-force/discern/internal/taxonomy"
)

// defaultAgentID identifies this engine in decision events and
// telemetry.
const defaultAgentID = "discern-intent-classifier"

// Request is one classification call.
type Request struct {
	// Text is the free-form text to classify. Must be non-empty.
	Text string `json:"text"`

	// Hints optionally narrows or reorders the candidate set.
	Hints *taxonomy.Hints `json:"hints,omitempty"`

	// Context is optional caller context, validated and echoed but
	// not used for scoring.
	Context *taxonomy.RequestContext `json:"context,omitempty"`

	// ExecutionRef is an opaque correlation token carried into the
	// decision event and telemetry. Not part of the validated input.
	ExecutionRef string `json:"-"`
}

// Engine is the intent classification engine. It holds no mutable
// state across calls; construct once and share freely.
type Engine struct {
	catalog      *catalog.Catalog
	cfg          *config.Config
	detector     *detect.Detector
	scorer       *score.Scorer
	store        decision.Store
	telemetry    decision.Recorder
	agentID      string
	agentVersion string
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig overrides the default engine configuration.
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithStore attaches the external persistence collaborator. Without
// one, classification results are returned but not persisted.
func WithStore(s decision.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithTelemetry attaches the external telemetry collaborator.
func WithTelemetry(r decision.Recorder) Option {
	return func(e *Engine) { e.telemetry = r }
}

// WithAgentVersion sets the version stamped into decision events.
func WithAgentVersion(v string) Option {
	return func(e *Engine) { e.agentVersion = v }
}

// New builds an engine around the given immutable pattern catalog.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:      cat,
		cfg:          config.Default(),
		telemetry:    decision.NopRecorder{},
		agentID:      defaultAgentID,
		agentVersion: "dev",
	}
	for _, opt := range opts {
		opt(e)
	}
	e.detector = detect.New(e.cfg)
	e.scorer = score.New(e.cfg)
	return e
}

// Classify converts free-form text into a structured, confidence
// scored intent classification. The result is always fully computed
// and schema-validated before the persistence write, so a
// PersistenceError is returned alongside the still-valid result.
func (e *Engine) Classify(ctx context.Context, req Request) (result *taxonomy.ClassificationResult, err error) {
	e.telemetry.RecordStart(e.agentID, req.ExecutionRef)
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = &ProcessingError{Op: "classify", Err: fmt.Errorf("panic: %v", r)}
			e.telemetry.RecordFailure(e.agentID, req.ExecutionRef, err)
			result = nil
		}
	}()

	raw, err := json.Marshal(req)
	if err != nil {
		return nil, &ProcessingError{Op: "encode input", Err: err}
	}
	if err := schema.ValidateInput(req); err != nil {
		e.telemetry.RecordFailure(e.agentID, req.ExecutionRef, err)
		return nil, err
	}
	if err := e.validateHintIntents(req.Hints); err != nil {
		e.telemetry.RecordFailure(e.agentID, req.ExecutionRef, err)
		return nil, err
	}

	result = e.classify(req)

	if err := schema.ValidateResult(result); err != nil {
		e.telemetry.RecordFailure(e.agentID, req.ExecutionRef, err)
		return nil, err
	}

	if e.store != nil {
		event := decision.NewEvent(e.agentID, e.agentVersion,
			decision.HashInputs(raw), req.ExecutionRef, result,
			appliedConstraints(req.Hints))
		if storeErr := e.store.Store(ctx, event); storeErr != nil {
			e.telemetry.RecordFailure(e.agentID, req.ExecutionRef, storeErr)
			var perr *decision.PersistenceError
			if !errors.As(storeErr, &perr) {
				storeErr = &decision.PersistenceError{Op: "store decision", Err: storeErr}
			}
			return result, storeErr
		}
	}

	e.telemetry.RecordSuccess(e.agentID, req.ExecutionRef,
		result.OverallConfidence, time.Since(started))
	return result, nil
}

// classify runs the pure pipeline. No side effects, no retries, no
// state shared between invocations.
func (e *Engine) classify(req Request) *taxonomy.ClassificationResult {
	normalized := normalize.Normalize(req.Text)

	matches := e.detector.Detect(normalized, e.catalog)
	candidates := e.scorer.ScoreAll(normalized, matches)
	filtered := ApplyHints(candidates, req.Hints, e.cfg)
	primary, secondary := Select(filtered, normalized, e.cfg)
	multi := AnalyzeMulti(primary, secondary, normalized, e.cfg)
	ambiguity := AssessAmbiguity(primary, secondary, normalized, e.cfg)
	overall := Aggregate(primary, secondary, ambiguity, e.cfg)

	return Compose(req.Text, normalized, req.Hints,
		primary, secondary, multi, ambiguity, overall)
}

// validateHintIntents rejects hint intent types unknown to the
// active catalog. UNKNOWN is always accepted as it is synthesized by
// the selector rather than the catalog.
func (e *Engine) validateHintIntents(hints *taxonomy.Hints) error {
	if hints == nil {
		return nil
	}
	for _, t := range append(append([]taxonomy.IntentType{}, hints.ExpectedIntents...), hints.ExcludedIntents...) {
		if t == taxonomy.IntentUnknown || e.catalog.Contains(t) {
			continue
		}
		return &schema.ValidationError{
			Stage: "input",
			Err:   fmt.Errorf("unknown intent type %q in hints", t),
		}
	}
	return nil
}

// appliedConstraints lists the constraint tags in effect for one
// classification: the engine's fixed guarantees plus any caller
// hints echoed back.
func appliedConstraints(hints *taxonomy.Hints) []string {
	constraints := []string{
		"read_only:true",
		"non_executing:true",
		"no_workflow_trigger:true",
		"no_policy_enforcement:true",
		"stateless:true",
		"deterministic:true",
	}

	if hints == nil {
		return constraints
	}
	if len(hints.ExpectedIntents) > 0 {
		constraints = append(constraints,
			"expected_intents:"+joinIntentList(hints.ExpectedIntents))
	}
	if len(hints.ExcludedIntents) > 0 {
		constraints = append(constraints,
			"excluded_intents:"+joinIntentList(hints.ExcludedIntents))
	}
	if hints.MinConfidence > 0 {
		constraints = append(constraints,
			fmt.Sprintf("min_confidence:%g", hints.MinConfidence))
	}
	if hints.MaxIntents > 0 {
		constraints = append(constraints,
			fmt.Sprintf("max_intents:%d", hints.MaxIntents))
	}
	return constraints
}

func joinIntentList(intents []taxonomy.IntentType) string {
	parts := make([]string, len(intents))
	for i, t := range intents {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
