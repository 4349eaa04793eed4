// Package detect implements the signal detector: it scans normalized
// text against every catalog pattern and produces keyword and phrase
// match signals.
package detect

import (
	"strings"

	"github.com/unbound-force/discern/internal/catalog"
	"github.com/unbound-force/discern/internal/config"
	"github.com/unbound-force/discern/internal/taxonomy"
)

// Match pairs a catalog pattern with the signals it produced for one
// text. Patterns with zero signals yield no Match.
type Match struct {
	Pattern catalog.Pattern
	Signals []taxonomy.Signal
}

// Detector scans text against a catalog. It is stateless and safe
// for concurrent use.
type Detector struct {
	cfg *config.Config
}

// New returns a detector using the given config. A nil config uses
// the defaults.
func New(cfg *config.Config) *Detector {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Detector{cfg: cfg}
}

// Detect scans the normalized text against every pattern in catalog
// order. Malformed patterns contribute zero signals and are skipped
// rather than aborting the scan.
func (d *Detector) Detect(normalized string, cat *catalog.Catalog) []Match {
	matches := make([]Match, 0, cat.Len())

	for i := 0; i < cat.Len(); i++ {
		p := cat.At(i)
		if p.Validate() != nil {
			continue
		}

		var signals []taxonomy.Signal
		for _, kw := range p.Keywords {
			signals = append(signals, d.keywordSignals(normalized, kw, p.Weight)...)
		}
		for _, ph := range p.Phrases {
			if s, ok := d.phraseSignal(normalized, ph, p.Weight); ok {
				signals = append(signals, s)
			}
		}

		if len(signals) > 0 {
			matches = append(matches, Match{Pattern: p, Signals: signals})
		}
	}

	return matches
}

// keywordSignals returns one signal per word-boundary occurrence of
// the keyword.
func (d *Detector) keywordSignals(text, keyword string, weight float64) []taxonomy.Signal {
	if keyword == "" {
		return nil
	}

	var signals []taxonomy.Signal
	w := weight * d.cfg.Scoring.KeywordFactor

	for from := 0; ; {
		idx := strings.Index(text[from:], keyword)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(keyword)
		if boundedAt(text, start, end) {
			signals = append(signals, taxonomy.Signal{
				Type:        taxonomy.SignalKeyword,
				MatchedText: keyword,
				Position:    taxonomy.Position{Start: start, End: end},
				Weight:      w,
			})
		}
		from = start + 1
	}

	return signals
}

// phraseSignal returns a signal for the first occurrence of the
// phrase, matched as a plain substring with no boundary requirement.
func (d *Detector) phraseSignal(text, phrase string, weight float64) (taxonomy.Signal, bool) {
	if phrase == "" {
		return taxonomy.Signal{}, false
	}
	idx := strings.Index(text, phrase)
	if idx < 0 {
		return taxonomy.Signal{}, false
	}
	return taxonomy.Signal{
		Type:        taxonomy.SignalPhrase,
		MatchedText: phrase,
		Position:    taxonomy.Position{Start: idx, End: idx + len(phrase)},
		Weight:      weight * d.cfg.Scoring.PhraseFactor,
	}, true
}

// boundedAt reports whether the [start, end) range sits on word
// boundaries: the neighboring characters must be whitespace,
// sentence punctuation, or the string boundary.
func boundedAt(text string, start, end int) bool {
	if start > 0 && !isBoundary(text[start-1]) {
		return false
	}
	if end < len(text) && !isBoundary(text[end]) {
		return false
	}
	return true
}

// isBoundary reports whether b terminates a word for keyword
// matching. Commas deliberately do not count.
func isBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '.', '!', '?':
		return true
	}
	return false
}
