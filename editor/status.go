package editor

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type statusMessage struct {
	text string
	warn bool
	at   time.Time
}

func (s statusMessage) visible(now time.Time, timeout time.Duration) bool {
	return s.text != "" && now.Sub(s.at) < timeout
}

// statusExpiredMsg asks for a redraw once a status message has timed out.
type statusExpiredMsg struct{}

func (m *Model) setStatus(format string, args ...any) tea.Cmd {
	m.status = statusMessage{text: fmt.Sprintf(format, args...), at: m.cfg.Now()}
	return m.expireStatus()
}

func (m *Model) setWarning(format string, args ...any) tea.Cmd {
	cmd := m.setStatus(format, args...)
	m.status.warn = true
	return cmd
}

func (m Model) expireStatus() tea.Cmd {
	if m.status.text == "" {
		return nil
	}
	return tea.Tick(m.cfg.MessageTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}
