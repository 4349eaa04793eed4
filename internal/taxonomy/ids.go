package taxonomy

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// GenerateID produces a stable, deterministic classification ID from
// the normalized text and hints. The ID is a sha256 hash truncated
// to 8 hex characters, prefixed with "ic-". Identical (text, hints)
// inputs always yield the same ID.
func GenerateID(normalized string, hints *Hints) string {
	input := normalized + "|" + canonicalHints(hints)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("ic-%x", hash[:4])
}

// canonicalHints renders hints as a stable string. Field order is
// fixed and slices keep their caller-supplied order, so two equal
// Hints values always canonicalize identically.
func canonicalHints(h *Hints) string {
	if h == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("expected=")
	sb.WriteString(joinIntents(h.ExpectedIntents))
	sb.WriteString(";excluded=")
	sb.WriteString(joinIntents(h.ExcludedIntents))
	fmt.Fprintf(&sb, ";min=%g;max=%d", h.MinConfidence, h.MaxIntents)
	return sb.String()
}

func joinIntents(intents []IntentType) string {
	parts := make([]string, len(intents))
	for i, t := range intents {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
