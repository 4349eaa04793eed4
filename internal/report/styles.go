package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Confidence band boundaries for terminal color coding.
const (
	highBand   = 0.7
	mediumBand = 0.4
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a
// TTY.
type Styles struct {
	// Header is used for section headers.
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// High, Medium, and Low color-code confidence bands.
	High   lipgloss.Style
	Medium lipgloss.Style
	Low    lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Warn styles ambiguity and clarification callouts.
	Warn lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal
// reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		High:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		Medium: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Low:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Warn: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// ConfidenceStyle returns the style for a confidence value.
func (s Styles) ConfidenceStyle(confidence float64) lipgloss.Style {
	switch {
	case confidence >= highBand:
		return s.High
	case confidence >= mediumBand:
		return s.Medium
	default:
		return s.Low
	}
}
