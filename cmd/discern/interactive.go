package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/unbound-force/discern/internal/taxonomy"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	tuiWarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	confHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	confMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	confLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// resultModel is the Bubble Tea model for browsing a classification
// result.
type resultModel struct {
	result   *taxonomy.ClassificationResult
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newResultModel(result *taxonomy.ClassificationResult) resultModel {
	h := help.New()
	content := renderResultContent(result)
	return resultModel{
		result:  result,
		help:    h,
		keys:    defaultKeyMap,
		content: content,
	}
}

func renderResultContent(result *taxonomy.ClassificationResult) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("Discern: %s (%.2f overall, %d signal(s))",
			result.PrimaryIntent.IntentType,
			result.OverallConfidence,
			result.Analysis.SignalCount)))
	sb.WriteString("\n\n")

	sb.WriteString(tuiHeaderStyle.Render(fmt.Sprintf("=== %s ===", result.ClassificationID)))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(fmt.Sprintf("    %q", result.NormalizedText)))
	sb.WriteString("\n\n")

	candidates := append([]taxonomy.CandidateIntent{result.PrimaryIntent}, result.SecondaryIntents...)
	for _, c := range candidates {
		sb.WriteString(tuiHeaderStyle.Render(fmt.Sprintf("%s  %s",
			c.IntentType, confidenceStyle(c.Confidence).Render(fmt.Sprintf("%.2f", c.Confidence)))))
		sb.WriteString("\n")
		if c.Action != nil {
			sb.WriteString(statusStyle.Render(fmt.Sprintf("    action: %s (%s)", c.Action.Normalized, c.Action.Tense)))
			sb.WriteString("\n")
		}
		if c.Target != nil {
			sb.WriteString(statusStyle.Render(fmt.Sprintf("    target: %s [%s]", c.Target.Normalized, c.Target.Type)))
			sb.WriteString("\n")
		}

		// Signal table for this candidate.
		rows := make([][]string, 0, len(c.Signals))
		for _, sig := range c.Signals {
			matched := sig.MatchedText
			if len(matched) > 50 {
				matched = matched[:47] + "..."
			}
			rows = append(rows, []string{
				string(sig.Type),
				fmt.Sprintf("%.2f", sig.Weight),
				fmt.Sprintf("%d-%d", sig.Position.Start, sig.Position.End),
				matched,
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tuiBorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tuiHeaderStyle
				}
				return lipgloss.NewStyle()
			}).
			Headers("TYPE", "WEIGHT", "POS", "MATCHED").
			Rows(rows...)

		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}

	if result.MultiIntent.IsMultiIntent {
		line := fmt.Sprintf("Multi-intent: %s", result.MultiIntent.Relationship)
		if len(result.MultiIntent.Sequence) > 0 {
			parts := make([]string, len(result.MultiIntent.Sequence))
			for i, it := range result.MultiIntent.Sequence {
				parts[i] = string(it)
			}
			line += " (" + strings.Join(parts, " -> ") + ")"
		}
		sb.WriteString(tuiWarnStyle.Render(line))
		sb.WriteString("\n")
	}

	amb := result.Analysis.Ambiguity
	if amb.IsAmbiguous {
		sb.WriteString(tuiWarnStyle.Render(fmt.Sprintf("Ambiguous (%s)", amb.Type)))
		sb.WriteString("\n")
		if amb.SuggestedClarification != "" {
			sb.WriteString(statusStyle.Render(amb.SuggestedClarification))
			sb.WriteString("\n")
		}
	}

	for _, note := range result.Analysis.Notes {
		sb.WriteString(statusStyle.Render(note))
		sb.WriteString("\n")
	}

	return sb.String()
}

func confidenceStyle(confidence float64) lipgloss.Style {
	switch {
	case confidence >= 0.7:
		return confHighStyle
	case confidence >= 0.4:
		return confMediumStyle
	default:
		return confLowStyle
	}
}

func (m resultModel) Init() tea.Cmd {
	return nil
}

func (m resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m resultModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveResult launches the Bubble Tea TUI for browsing a
// classification result.
func runInteractiveResult(result *taxonomy.ClassificationResult) error {
	model := newResultModel(result)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
