package editor

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/atto/buffer"
)

const savePromptFormat = "Save as: %s (ESC to cancel)"

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if m.quitting {
			return m, nil
		}
		if m.prompt != nil {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	default:
		// statusExpiredMsg and anything else only trigger a redraw.
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, km.Quit):
		if m.doc.IsDirty() && m.quitTimes > 0 {
			cmd = m.setWarning("File has unsaved changes. Press %s %d more times to quit.",
				helpKey(km.Quit.Help().Key), m.quitTimes)
			m.quitTimes--
			return m, cmd
		}
		log.Printf("quit file=%q dirty=%d", m.doc.Filename(), m.doc.Dirty())
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, km.Save):
		cmd = m.save()

	case key.Matches(msg, km.Newline):
		m.doc.InsertNewline(&m.cursor)
	case key.Matches(msg, km.Backspace):
		m.doc.DeleteCharAtCursor(&m.cursor)
	case key.Matches(msg, km.Delete):
		m.move(buffer.MoveRight)
		m.doc.DeleteCharAtCursor(&m.cursor)

	case key.Matches(msg, km.Up):
		m.move(buffer.MoveUp)
	case key.Matches(msg, km.Down):
		m.move(buffer.MoveDown)
	case key.Matches(msg, km.Left):
		m.move(buffer.MoveLeft)
	case key.Matches(msg, km.Right):
		m.move(buffer.MoveRight)
	case key.Matches(msg, km.PageUp):
		m.move(buffer.MovePageUp)
	case key.Matches(msg, km.PageDown):
		m.move(buffer.MovePageDown)
	case key.Matches(msg, km.Home):
		m.move(buffer.MoveHome)
	case key.Matches(msg, km.End):
		m.move(buffer.MoveEnd)

	case key.Matches(msg, km.Cancel), key.Matches(msg, km.Refresh):
		// Nothing to do; the frame is redrawn anyway.

	default:
		if msg.Type == tea.KeyTab && !msg.Alt {
			m.doc.InsertCharAtCursor(&m.cursor, '\t')
			break
		}
		for _, c := range printableBytes(msg) {
			m.doc.InsertCharAtCursor(&m.cursor, c)
		}
	}

	m.quitTimes = m.cfg.QuitTimes
	m.scroll()
	return m, cmd
}

func (m *Model) move(k buffer.MoveKey) {
	m.doc.MoveCursor(&m.cursor, k, m.ScreenRows(), m.ScreenCols())
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.prompt.Handle(msg) {
	case PromptCancelled:
		m.prompt = nil
		log.Printf("save aborted file=%q", m.doc.Filename())
		cmd = m.setStatus("Save aborted!")
	case PromptConfirmed:
		name := m.prompt.Value()
		m.prompt = nil
		m.doc.SetFilename(name)
		cmd = m.writeFile()
	}
	m.scroll()
	return m, cmd
}

// save writes the document, asking for a filename first when it has none.
func (m *Model) save() tea.Cmd {
	if !m.doc.HasFilename() {
		m.prompt = NewPrompt(savePromptFormat, m.cfg.KeyMap)
		return nil
	}
	return m.writeFile()
}

func (m *Model) writeFile() tea.Cmd {
	n, err := m.doc.Save()
	if err != nil {
		log.Printf("save failed file=%q err=%v", m.doc.Filename(), err)
		return m.setStatus("File NOT saved! I/O error: %v", err)
	}
	log.Printf("saved file=%q bytes=%d", m.doc.Filename(), n)
	return m.setStatus("%d bytes written to disk", n)
}
