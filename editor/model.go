package editor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/atto/buffer"
)

// reservedRows are the status bar and message bar lines below the text area.
const reservedRows = 2

// Model is a Bubble Tea component that edits one document.
type Model struct {
	cfg Config
	doc *buffer.Document

	cursor buffer.Cursor

	width, height int

	status    statusMessage
	quitTimes int
	prompt    *Prompt
	quitting  bool
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	doc := cfg.Document
	if doc == nil {
		doc = buffer.New()
	}
	m := Model{
		cfg:       cfg,
		doc:       doc,
		quitTimes: cfg.QuitTimes,
	}
	m.status = statusMessage{
		text: fmt.Sprintf("HELP: %s = save | %s = quit",
			helpKey(cfg.KeyMap.Save.Help().Key), helpKey(cfg.KeyMap.Quit.Help().Key)),
		at: cfg.Now(),
	}
	return m
}

// Init schedules expiry of the initial help message.
func (m Model) Init() tea.Cmd { return m.expireStatus() }

func (m Model) Document() *buffer.Document { return m.doc }

func (m Model) Cursor() buffer.Cursor { return m.cursor }

// Prompt returns the active prompt, or nil.
func (m Model) Prompt() *Prompt { return m.prompt }

// Quitting reports whether the model has issued tea.Quit.
func (m Model) Quitting() bool { return m.quitting }

// ScreenRows is the number of text rows, excluding the status and message bars.
func (m Model) ScreenRows() int {
	if m.height <= reservedRows {
		return 0
	}
	return m.height - reservedRows
}

func (m Model) ScreenCols() int {
	if m.width < 0 {
		return 0
	}
	return m.width
}

func (m Model) ViewportState() buffer.ViewportState {
	return m.doc.ViewportState(m.ScreenRows(), m.ScreenCols())
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.scroll()
	return m
}

// SetCursor moves the cursor, clamping it into the document.
func (m Model) SetCursor(x, y int) Model {
	m.cursor = buffer.Cursor{X: x, Y: y}
	m.doc.ClampCursor(&m.cursor)
	m.scroll()
	return m
}

func (m *Model) scroll() {
	m.doc.Scroll(&m.cursor, m.ScreenRows(), m.ScreenCols())
}

// StatusMessage returns the status text if it has not expired.
func (m Model) StatusMessage() (string, bool) {
	if !m.status.visible(m.cfg.Now(), m.cfg.MessageTimeout) {
		return "", false
	}
	return m.status.text, true
}

func helpKey(k string) string {
	if rest, ok := strings.CutPrefix(k, "ctrl+"); ok {
		return "Ctrl+" + strings.ToUpper(rest)
	}
	return k
}
