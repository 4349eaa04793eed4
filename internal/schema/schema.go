// Package schema embeds the JSON Schemas (Draft 2020-12) for the
// classification input and result shapes, and validates instances
// against them at runtime.
package schema

// InputSchema documents the shape accepted by Engine.Classify.
const InputSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/discern/classification-input.schema.json",
  "title": "Discern Classification Input",
  "description": "Input accepted by the intent classification engine",
  "type": "object",
  "required": ["text"],
  "properties": {
    "text": {
      "type": "string",
      "minLength": 1,
      "description": "Free-form text to classify"
    },
    "hints": {
      "type": "object",
      "properties": {
        "expected_intents": {
          "type": "array",
          "items": { "$ref": "#/$defs/IntentType" }
        },
        "excluded_intents": {
          "type": "array",
          "items": { "$ref": "#/$defs/IntentType" }
        },
        "min_confidence": {
          "type": "number",
          "minimum": 0,
          "maximum": 1
        },
        "max_intents": {
          "type": "integer",
          "minimum": 1
        }
      },
      "additionalProperties": false
    },
    "context": {
      "type": "object",
      "properties": {
        "domain": { "type": "string" },
        "previous_messages": { "type": "array" }
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false,
  "$defs": {
    "IntentType": {
      "type": "string",
      "pattern": "^[A-Z][A-Z_]*$",
      "description": "SCREAMING_SNAKE intent identifier"
    }
  }
}`

// ResultSchema documents the ClassificationResult shape. Intent
// types are constrained by pattern rather than enum so custom
// catalogs with additional intents still validate.
const ResultSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/discern/classification-result.schema.json",
  "title": "Discern Classification Result",
  "description": "Output produced by the intent classification engine",
  "type": "object",
  "required": [
    "classification_id", "original_text", "normalized_text",
    "primary_intent", "secondary_intents", "multi_intent_state",
    "overall_confidence", "analysis"
  ],
  "properties": {
    "classification_id": {
      "type": "string",
      "pattern": "^ic-[0-9a-f]{8}$",
      "description": "Stable identifier derived from text and hints"
    },
    "original_text": { "type": "string", "minLength": 1 },
    "normalized_text": { "type": "string" },
    "primary_intent": { "$ref": "#/$defs/CandidateIntent" },
    "secondary_intents": {
      "type": "array",
      "items": { "$ref": "#/$defs/CandidateIntent" }
    },
    "multi_intent_state": { "$ref": "#/$defs/MultiIntentState" },
    "overall_confidence": {
      "type": "number",
      "minimum": 0,
      "maximum": 1
    },
    "analysis": { "$ref": "#/$defs/Analysis" }
  },
  "$defs": {
    "IntentType": {
      "type": "string",
      "pattern": "^[A-Z][A-Z_]*$"
    },
    "Signal": {
      "type": "object",
      "required": ["signal_type", "matched_text", "position", "weight"],
      "properties": {
        "signal_type": {
          "type": "string",
          "enum": ["keyword", "phrase", "context"]
        },
        "matched_text": { "type": "string" },
        "position": {
          "type": "object",
          "required": ["start", "end"],
          "properties": {
            "start": { "type": "integer", "minimum": 0 },
            "end": { "type": "integer", "minimum": 0 }
          }
        },
        "weight": { "type": "number", "minimum": 0, "maximum": 1 }
      }
    },
    "CandidateIntent": {
      "type": "object",
      "required": ["intent_type", "confidence", "signals", "scope"],
      "properties": {
        "intent_type": { "$ref": "#/$defs/IntentType" },
        "confidence": { "type": "number", "minimum": 0, "maximum": 1 },
        "signals": {
          "type": "array",
          "minItems": 1,
          "items": { "$ref": "#/$defs/Signal" }
        },
        "target": {
          "type": "object",
          "required": ["type", "value", "normalized"],
          "properties": {
            "type": { "type": "string" },
            "value": { "type": "string" },
            "normalized": { "type": "string" }
          }
        },
        "action": {
          "type": "object",
          "required": ["verb", "normalized", "tense"],
          "properties": {
            "verb": { "type": "string" },
            "normalized": { "type": "string" },
            "tense": {
              "type": "string",
              "enum": ["present", "past", "imperative"]
            }
          }
        },
        "scope": { "type": "string", "minLength": 1 }
      }
    },
    "MultiIntentState": {
      "type": "object",
      "required": ["is_multi_intent", "relationship"],
      "properties": {
        "is_multi_intent": { "type": "boolean" },
        "relationship": {
          "type": "string",
          "enum": ["none", "sequential", "conditional", "alternative", "parallel"]
        },
        "sequence": {
          "type": "array",
          "items": { "$ref": "#/$defs/IntentType" }
        }
      }
    },
    "Analysis": {
      "type": "object",
      "required": ["intent_count", "signal_count", "notes", "ambiguity"],
      "properties": {
        "intent_count": { "type": "integer", "minimum": 1 },
        "signal_count": { "type": "integer", "minimum": 1 },
        "notes": {
          "type": "array",
          "items": { "type": "string" }
        },
        "ambiguity": {
          "type": "object",
          "required": ["is_ambiguous", "ambiguity_type", "clarification_needed"],
          "properties": {
            "is_ambiguous": { "type": "boolean" },
            "ambiguity_type": {
              "type": "string",
              "enum": ["none", "lexical", "structural", "contextual"]
            },
            "clarification_needed": { "type": "boolean" },
            "suggested_clarification": { "type": "string" }
          }
        },
        "language": { "type": "string" }
      }
    }
  }
}`
