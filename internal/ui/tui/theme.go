package tui

import "github.com/charmbracelet/lipgloss"

// Theme styles the example runner. Output titles switch between OK and Failed
// depending on how the last example finished.
type Theme struct {
	Title   lipgloss.Style
	Tagline lipgloss.Style
	Help    lipgloss.Style
	Card    lipgloss.Style
	Spinner lipgloss.Style
	OK      lipgloss.Style
	Failed  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Tagline: lipgloss.NewStyle().Faint(true).Italic(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		OK:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Failed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

// ResultTitle renders the heading of the output screen for an example run.
func (t Theme) ResultTitle(example string, failed bool) string {
	if failed {
		return t.Failed.Render(example + " · failed")
	}
	return t.OK.Render(example)
}
