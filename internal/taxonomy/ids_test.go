package taxonomy_test

import (
	"regexp"
	"testing"

	"github.com/unbound-force/discern/internal/taxonomy"
)

var idFormat = regexp.MustCompile(`^ic-[0-9a-f]{8}$`)

func TestGenerateID_Format(t *testing.T) {
	id := taxonomy.GenerateID("hello world", nil)
	if !idFormat.MatchString(id) {
		t.Errorf("GenerateID returned %q, want match for %s", id, idFormat)
	}
}

func TestGenerateID_Deterministic(t *testing.T) {
	hints := &taxonomy.Hints{
		ExpectedIntents: []taxonomy.IntentType{taxonomy.IntentCreate},
		MaxIntents:      3,
	}

	first := taxonomy.GenerateID("create a report", hints)
	for i := 0; i < 10; i++ {
		if got := taxonomy.GenerateID("create a report", hints); got != first {
			t.Fatalf("call %d: GenerateID = %q, want %q", i, got, first)
		}
	}
}

func TestGenerateID_HintsChangeID(t *testing.T) {
	base := taxonomy.GenerateID("create a report", nil)

	cases := []struct {
		name  string
		hints *taxonomy.Hints
	}{
		{"expected", &taxonomy.Hints{ExpectedIntents: []taxonomy.IntentType{taxonomy.IntentCreate}}},
		{"excluded", &taxonomy.Hints{ExcludedIntents: []taxonomy.IntentType{taxonomy.IntentGreeting}}},
		{"min confidence", &taxonomy.Hints{MinConfidence: 0.5}},
		{"max intents", &taxonomy.Hints{MaxIntents: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := taxonomy.GenerateID("create a report", tc.hints)
			if got == base {
				t.Errorf("hinted ID %q equals unhinted ID; hints must feed the hash", got)
			}
			if !idFormat.MatchString(got) {
				t.Errorf("GenerateID returned %q, want match for %s", got, idFormat)
			}
		})
	}
}

func TestGenerateID_TextChangesID(t *testing.T) {
	a := taxonomy.GenerateID("create a report", nil)
	b := taxonomy.GenerateID("delete a report", nil)
	if a == b {
		t.Errorf("distinct texts produced the same ID %q", a)
	}
}
