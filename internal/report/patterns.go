package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/discern/internal/catalog"
)

// WritePatterns writes the pattern catalog as a styled table, one row
// per intent pattern.
func WritePatterns(w io.Writer, cat *catalog.Catalog) error {
	s := DefaultStyles()

	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== PATTERN CATALOG (%d) ===", cat.Len())))
	fmt.Fprintln(w)

	patterns := cat.Patterns()
	rows := make([][]string, 0, len(patterns))
	for _, p := range patterns {
		rows = append(rows, []string{
			string(p.Intent),
			fmt.Sprintf("%.2f", p.Weight),
			strings.Join(p.Keywords, ", "),
			strings.Join(p.Phrases, ", "),
		})
	}

	t := table.New().
		Width(100).
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return s.TableCell
		}).
		Headers("INTENT", "WEIGHT", "KEYWORDS", "PHRASES").
		Rows(rows...)

	fmt.Fprintln(w, t)
	return nil
}
