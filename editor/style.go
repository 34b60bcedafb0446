package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering. The zero value renders plain text.
type Style struct {
	Text      lipgloss.Style
	Cursor    lipgloss.Style
	Decorator lipgloss.Style
	Welcome   lipgloss.Style
	StatusBar lipgloss.Style
	Message   lipgloss.Style
	Warning   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Decorator: lipgloss.NewStyle().Faint(true),
		Welcome:   lipgloss.NewStyle(),
		StatusBar: lipgloss.NewStyle().Reverse(true),
		Message:   lipgloss.NewStyle(),
		Warning:   lipgloss.NewStyle().Bold(true).Blink(true),
	}
}
