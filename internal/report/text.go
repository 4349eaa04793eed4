// Package report provides output formatters for classification
// results in JSON and human-readable text formats.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/discern/internal/taxonomy"
)

// WriteText writes a classification result as human-readable styled
// text. Output uses lipgloss for color and formatting when the
// output is a TTY; degrades gracefully for pipes and CI.
func WriteText(w io.Writer, result *taxonomy.ClassificationResult) error {
	s := DefaultStyles()

	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== %s ===", result.PrimaryIntent.IntentType)))
	fmt.Fprintln(w, s.SubHeader.Render(fmt.Sprintf("    %s", result.ClassificationID)))
	fmt.Fprintln(w, s.SubHeader.Render(fmt.Sprintf("    %q", result.NormalizedText)))
	fmt.Fprintln(w)

	// Candidate table: primary first, then secondaries in confidence
	// order.
	const maxEvidence = 40
	candidates := append([]taxonomy.CandidateIntent{result.PrimaryIntent}, result.SecondaryIntents...)
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{
			string(c.IntentType),
			fmt.Sprintf("%.2f", c.Confidence),
			fmt.Sprintf("%d", len(c.Signals)),
			evidenceSummary(c, maxEvidence),
		})
	}

	t := table.New().
		Width(76).
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if col == 1 && row >= 0 && row < len(candidates) {
				return s.ConfidenceStyle(candidates[row].Confidence)
			}
			return s.TableCell
		}).
		Headers("INTENT", "CONF", "SIGNALS", "EVIDENCE").
		Rows(rows...)

	fmt.Fprintln(w, t)

	if result.MultiIntent.IsMultiIntent {
		line := fmt.Sprintf("    Multi-intent: %s", result.MultiIntent.Relationship)
		if len(result.MultiIntent.Sequence) > 0 {
			line += " " + sequenceString(result.MultiIntent.Sequence)
		}
		fmt.Fprintln(w, s.Warn.Render(line))
	}

	amb := result.Analysis.Ambiguity
	if amb.IsAmbiguous {
		fmt.Fprintln(w, s.Warn.Render(fmt.Sprintf("    Ambiguous (%s)", amb.Type)))
		if amb.SuggestedClarification != "" {
			fmt.Fprintln(w, s.Muted.Render("    "+amb.SuggestedClarification))
		}
	}

	for _, note := range result.Analysis.Notes {
		fmt.Fprintln(w, s.Muted.Render("    "+note))
	}

	fmt.Fprintf(w, "\n%s\n", s.Header.Render(fmt.Sprintf(
		"Overall confidence: %.2f (%d intent(s), %d signal(s))",
		result.OverallConfidence,
		result.Analysis.IntentCount,
		result.Analysis.SignalCount)))

	return nil
}

// evidenceSummary joins the candidate's matched texts, truncated to
// fit the table column.
func evidenceSummary(c taxonomy.CandidateIntent, max int) string {
	parts := make([]string, 0, len(c.Signals))
	for _, sig := range c.Signals {
		parts = append(parts, sig.MatchedText)
	}
	joined := strings.Join(parts, ", ")
	if len(joined) > max {
		joined = joined[:max-3] + "..."
	}
	return joined
}

func sequenceString(seq []taxonomy.IntentType) string {
	parts := make([]string, len(seq))
	for i, t := range seq {
		parts[i] = string(t)
	}
	return "(" + strings.Join(parts, " -> ") + ")"
}
