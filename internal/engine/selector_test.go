package engine_test

import (
	"strings"
	"testing"

	"github.com/unbound-force/discern/internal/config"
	"github.com/unbound-force/discern/internal/engine"
	"github.com/unbound-force/discern/internal/taxonomy"
)

func TestSelect_HighestConfidenceWins(t *testing.T) {
	primary, secondary := engine.Select([]taxonomy.CandidateIntent{
		cand(taxonomy.IntentQuery, 0.6, 1),
		cand(taxonomy.IntentCreate, 0.9, 1),
		cand(taxonomy.IntentExecute, 0.7, 1),
	}, "create the thing", config.Default())

	if primary.IntentType != taxonomy.IntentCreate {
		t.Errorf("primary = %s, want CREATE", primary.IntentType)
	}
	if len(secondary) != 2 {
		t.Fatalf("secondary count = %d, want 2", len(secondary))
	}
	if secondary[0].IntentType != taxonomy.IntentExecute || secondary[1].IntentType != taxonomy.IntentQuery {
		t.Errorf("secondary order = %v, want [EXECUTE QUERY]", intentsOf(secondary))
	}
}

func TestSelect_TieKeepsCatalogOrder(t *testing.T) {
	primary, _ := engine.Select([]taxonomy.CandidateIntent{
		cand(taxonomy.IntentQuery, 0.7, 1),
		cand(taxonomy.IntentCreate, 0.7, 1),
	}, "what to create", config.Default())

	if primary.IntentType != taxonomy.IntentQuery {
		t.Errorf("primary = %s, want the first of the tied candidates (QUERY)", primary.IntentType)
	}
}

func TestSelect_UnknownFallback(t *testing.T) {
	primary, secondary := engine.Select(nil, "zzqxw blorp", config.Default())

	if primary.IntentType != taxonomy.IntentUnknown {
		t.Fatalf("primary = %s, want UNKNOWN", primary.IntentType)
	}
	if primary.Confidence != 0.1 {
		t.Errorf("confidence = %g, want 0.1", primary.Confidence)
	}
	if len(secondary) != 0 {
		t.Errorf("secondary count = %d, want 0", len(secondary))
	}
	if len(primary.Signals) != 1 {
		t.Fatalf("signal count = %d, want 1", len(primary.Signals))
	}
	sig := primary.Signals[0]
	if sig.Type != taxonomy.SignalContext {
		t.Errorf("signal type = %s, want context", sig.Type)
	}
	if sig.MatchedText != "zzqxw blorp" {
		t.Errorf("matched text = %q, want the whole short text", sig.MatchedText)
	}
}

func TestSelect_UnknownContextWindowTruncates(t *testing.T) {
	long := strings.Repeat("blorp ", 20) // 120 chars
	primary, _ := engine.Select(nil, long, config.Default())

	sig := primary.Signals[0]
	if len(sig.MatchedText) != 50 {
		t.Errorf("context window length = %d, want 50", len(sig.MatchedText))
	}
	if sig.Position.End != 50 {
		t.Errorf("position end = %d, want 50", sig.Position.End)
	}
}
