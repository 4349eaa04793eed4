// Package decision defines the decision-event envelope emitted for
// every classification, the external persistence collaborator
// interface with its reference implementations, and the telemetry
// recorder. The engine only ever touches the interfaces here; it
// never holds a database connection of its own.
package decision

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/unbound-force/discern/internal/taxonomy"
)

// TypeIntentClassification is the decision type for events emitted
// by the intent classification engine.
const TypeIntentClassification = "intent_classification"

// Event is the envelope handed to the persistence collaborator once
// per classification. Exactly one event is produced per invocation.
type Event struct {
	// ID identifies this envelope. Unlike the classification ID it
	// is not deterministic; two identical classifications produce
	// distinct events.
	ID uuid.UUID `json:"id"`

	// AgentID names the agent that produced the decision.
	AgentID string `json:"agent_id"`

	// AgentVersion is the producing agent's version.
	AgentVersion string `json:"agent_version"`

	// DecisionType is always TypeIntentClassification here.
	DecisionType string `json:"decision_type"`

	// InputsHash is the sha256 of the canonical input JSON, for
	// reproducibility checks.
	InputsHash string `json:"inputs_hash"`

	// Outputs is the validated classification result.
	Outputs *taxonomy.ClassificationResult `json:"outputs"`

	// Confidence mirrors the result's overall confidence.
	Confidence float64 `json:"confidence"`

	// ConstraintsApplied lists the constraint tags in effect during
	// the classification.
	ConstraintsApplied []string `json:"constraints_applied"`

	// ExecutionRef is the opaque caller-supplied correlation token.
	ExecutionRef string `json:"execution_ref"`

	// Timestamp is the UTC emission time.
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent assembles an event envelope for one classification.
func NewEvent(agentID, agentVersion, inputsHash, executionRef string, outputs *taxonomy.ClassificationResult, constraints []string) *Event {
	return &Event{
		ID:                 uuid.New(),
		AgentID:            agentID,
		AgentVersion:       agentVersion,
		DecisionType:       TypeIntentClassification,
		InputsHash:         inputsHash,
		Outputs:            outputs,
		Confidence:         outputs.OverallConfidence,
		ConstraintsApplied: constraints,
		ExecutionRef:       executionRef,
		Timestamp:          time.Now().UTC(),
	}
}

// Validate checks the envelope's required fields before it is handed
// to a store.
func (e *Event) Validate() error {
	switch {
	case e.AgentID == "":
		return fmt.Errorf("decision event: missing agent_id")
	case e.AgentVersion == "":
		return fmt.Errorf("decision event: missing agent_version")
	case e.InputsHash == "":
		return fmt.Errorf("decision event: missing inputs_hash")
	case e.Outputs == nil:
		return fmt.Errorf("decision event: missing outputs")
	case e.Confidence < 0 || e.Confidence > 1:
		return fmt.Errorf("decision event: confidence %g outside [0, 1]", e.Confidence)
	}
	return nil
}

// HashInputs returns the sha256 hex digest of the canonical input
// bytes.
func HashInputs(raw []byte) string {
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%x", sum)
}
