// Package catalog defines the static intent pattern table. A
// catalog is built once, injected into the engine, and never
// mutated, so any number of classifications may share it.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unbound-force/discern/internal/taxonomy"
)

// Pattern is one immutable catalog entry: an intent type plus the
// keywords and phrases that evidence it.
type Pattern struct {
	// Intent is the type this pattern votes for.
	Intent taxonomy.IntentType `yaml:"intent" json:"intent"`

	// Keywords are matched as word-boundary occurrences, every
	// occurrence producing one signal.
	Keywords []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`

	// Phrases are matched as plain substrings, first occurrence only.
	Phrases []string `yaml:"phrases,omitempty" json:"phrases,omitempty"`

	// Weight is the pattern's base signal weight, in [0, 1].
	Weight float64 `yaml:"weight" json:"weight"`
}

// Validate reports whether the pattern can contribute signals. A
// malformed pattern is skipped by the detector (zero signals) rather
// than aborting a classification.
func (p Pattern) Validate() error {
	if p.Intent == "" {
		return fmt.Errorf("pattern has empty intent")
	}
	if p.Weight < 0 || p.Weight > 1 {
		return fmt.Errorf("pattern %s: weight %g outside [0, 1]", p.Intent, p.Weight)
	}
	if len(p.Keywords) == 0 && len(p.Phrases) == 0 {
		return fmt.Errorf("pattern %s: no keywords or phrases", p.Intent)
	}
	return nil
}

// Catalog is an immutable ordered set of patterns. Order matters:
// equal-confidence candidates keep catalog order through the stable
// selection sort.
type Catalog struct {
	patterns []Pattern
}

// New builds a catalog from the given patterns. The slice is copied
// so later mutation by the caller cannot leak into the catalog.
func New(patterns []Pattern) *Catalog {
	cp := make([]Pattern, len(patterns))
	copy(cp, patterns)
	return &Catalog{patterns: cp}
}

// Patterns returns a copy of the pattern list in catalog order.
func (c *Catalog) Patterns() []Pattern {
	cp := make([]Pattern, len(c.patterns))
	copy(cp, c.patterns)
	return cp
}

// Len returns the number of patterns.
func (c *Catalog) Len() int { return len(c.patterns) }

// At returns the pattern at index i in catalog order.
func (c *Catalog) At(i int) Pattern { return c.patterns[i] }

// Intents returns the distinct intent types in the catalog, in
// first-appearance order.
func (c *Catalog) Intents() []taxonomy.IntentType {
	seen := make(map[taxonomy.IntentType]bool, len(c.patterns))
	var out []taxonomy.IntentType
	for _, p := range c.patterns {
		if !seen[p.Intent] {
			seen[p.Intent] = true
			out = append(out, p.Intent)
		}
	}
	return out
}

// Contains reports whether the catalog has a pattern for the intent.
func (c *Catalog) Contains(t taxonomy.IntentType) bool {
	for _, p := range c.patterns {
		if p.Intent == t {
			return true
		}
	}
	return false
}

// catalogFile is the YAML shape of an external pattern file.
type catalogFile struct {
	Patterns []Pattern `yaml:"patterns"`
}

// Load reads a pattern catalog from a YAML file. Every entry must
// validate; a file with a malformed entry is rejected outright so
// misconfiguration surfaces at startup, not as silently dead
// patterns at classification time.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern file %q: %w", path, err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing pattern file %q: %w", path, err)
	}
	if len(f.Patterns) == 0 {
		return nil, fmt.Errorf("pattern file %q: no patterns", path)
	}
	for i, p := range f.Patterns {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("pattern file %q: entry %d: %w", path, i, err)
		}
	}
	return New(f.Patterns), nil
}
