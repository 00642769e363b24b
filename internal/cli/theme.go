package cli

import "github.com/charmbracelet/lipgloss"

type theme struct {
	Title lipgloss.Style
	Label lipgloss.Style
	OK    lipgloss.Style
	Fail  lipgloss.Style
	Faint lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title: lipgloss.NewStyle().Bold(true),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		OK:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Faint: lipgloss.NewStyle().Faint(true),
	}
}

func (t theme) mark(passed bool) string {
	if passed {
		return t.OK.Render("✓")
	}
	return t.Fail.Render("✗")
}
