package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unbound-force/discern/internal/catalog"
	"github.com/unbound-force/discern/internal/taxonomy"
)

func TestDefault_AllPatternsValid(t *testing.T) {
	for _, p := range catalog.Default().Patterns() {
		if err := p.Validate(); err != nil {
			t.Errorf("default pattern %s: %v", p.Intent, err)
		}
	}
}

func TestDefault_CoversBuiltinIntents(t *testing.T) {
	cat := catalog.Default()
	for _, intent := range taxonomy.BuiltinIntents() {
		if !cat.Contains(intent) {
			t.Errorf("default catalog missing pattern for %s", intent)
		}
	}
	if cat.Contains(taxonomy.IntentUnknown) {
		t.Error("default catalog must not contain UNKNOWN; it is a fallback")
	}
}

func TestPatternValidate(t *testing.T) {
	cases := []struct {
		name    string
		pattern catalog.Pattern
		wantErr string
	}{
		{
			name:    "valid",
			pattern: catalog.Pattern{Intent: "CREATE", Keywords: []string{"create"}, Weight: 0.9},
		},
		{
			name:    "empty intent",
			pattern: catalog.Pattern{Keywords: []string{"create"}, Weight: 0.9},
			wantErr: "empty intent",
		},
		{
			name:    "weight above one",
			pattern: catalog.Pattern{Intent: "CREATE", Keywords: []string{"create"}, Weight: 1.5},
			wantErr: "outside [0, 1]",
		},
		{
			name:    "negative weight",
			pattern: catalog.Pattern{Intent: "CREATE", Keywords: []string{"create"}, Weight: -0.1},
			wantErr: "outside [0, 1]",
		},
		{
			name:    "no evidence",
			pattern: catalog.Pattern{Intent: "CREATE", Weight: 0.9},
			wantErr: "no keywords or phrases",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.pattern.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestNew_CopiesPatterns(t *testing.T) {
	patterns := []catalog.Pattern{
		{Intent: "CREATE", Keywords: []string{"create"}, Weight: 0.9},
	}
	cat := catalog.New(patterns)

	patterns[0].Intent = "MUTATED"
	if got := cat.At(0).Intent; got != "CREATE" {
		t.Errorf("catalog pattern mutated through caller slice: %s", got)
	}

	cat.Patterns()[0].Intent = "MUTATED"
	if got := cat.At(0).Intent; got != "CREATE" {
		t.Errorf("catalog pattern mutated through Patterns() copy: %s", got)
	}
}

func TestIntents_FirstAppearanceOrder(t *testing.T) {
	cat := catalog.New([]catalog.Pattern{
		{Intent: "CREATE", Keywords: []string{"create"}, Weight: 0.9},
		{Intent: "QUERY", Keywords: []string{"what"}, Weight: 0.7},
		{Intent: "CREATE", Keywords: []string{"make"}, Weight: 0.8},
	})

	got := cat.Intents()
	want := []taxonomy.IntentType{"CREATE", "QUERY"}
	if len(got) != len(want) {
		t.Fatalf("Intents() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Intents()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	content := `
patterns:
  - intent: DEPLOY
    keywords: [deploy, ship]
    phrases: ["roll out"]
    weight: 0.85
  - intent: ROLLBACK
    keywords: [rollback, revert]
    weight: 0.9
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}
	if !cat.Contains("DEPLOY") || !cat.Contains("ROLLBACK") {
		t.Errorf("loaded catalog missing intents: %v", cat.Intents())
	}
	if got := cat.At(0).Weight; got != 0.85 {
		t.Errorf("At(0).Weight = %g, want 0.85", got)
	}
}

func TestLoad_RejectsMalformedEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	content := `
patterns:
  - intent: DEPLOY
    keywords: [deploy]
    weight: 1.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := catalog.Load(path)
	if err == nil {
		t.Fatal("expected error for out-of-range weight")
	}
	if !strings.Contains(err.Error(), "entry 0") {
		t.Errorf("error %q does not name the failing entry", err)
	}
}

func TestLoad_RejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	if err := os.WriteFile(path, []byte("patterns: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := catalog.Load(path)
	if err == nil {
		t.Fatal("expected error for empty pattern list")
	}
	if !strings.Contains(err.Error(), "no patterns") {
		t.Errorf("unexpected error message: %s", err)
	}
}
