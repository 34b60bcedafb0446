package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/atto/editor"
)

type app struct {
	editor editor.Model
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }

// run drives the editor until it quits. The program restores the terminal
// before returning, on errors and panics included.
func run(m editor.Model) error {
	p := tea.NewProgram(app{editor: m}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
