package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptState is the state of a Prompt.
type PromptState int

const (
	PromptReading PromptState = iota
	PromptCancelled
	PromptConfirmed
)

func (s PromptState) String() string {
	switch s {
	case PromptReading:
		return "reading"
	case PromptCancelled:
		return "cancelled"
	case PromptConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Prompt is a one-line input read from the message bar.
//
// It starts in PromptReading with an empty buffer. Cancelled and Confirmed
// are terminal: further keys are ignored.
type Prompt struct {
	format string
	keys   KeyMap
	buf    []byte
	state  PromptState
}

// NewPrompt returns a prompt whose message is format with the typed value
// substituted for its single %s verb.
func NewPrompt(format string, keys KeyMap) *Prompt {
	return &Prompt{format: format, keys: keys}
}

func (p *Prompt) State() PromptState { return p.state }

func (p *Prompt) Done() bool { return p.state != PromptReading }

// Value returns the typed text. It is meaningful once the prompt is confirmed.
func (p *Prompt) Value() string { return string(p.buf) }

// Message renders the prompt line shown in the message bar.
func (p *Prompt) Message() string { return fmt.Sprintf(p.format, p.buf) }

// Handle feeds one key to the prompt and returns the resulting state.
func (p *Prompt) Handle(msg tea.KeyMsg) PromptState {
	if p.Done() {
		return p.state
	}

	switch {
	case key.Matches(msg, p.keys.Cancel):
		p.buf = nil
		p.state = PromptCancelled
	case key.Matches(msg, p.keys.Backspace), key.Matches(msg, p.keys.Delete):
		if len(p.buf) > 0 {
			p.buf = p.buf[:len(p.buf)-1]
		}
	case key.Matches(msg, p.keys.Newline):
		if len(p.buf) > 0 {
			p.state = PromptConfirmed
		}
	default:
		for _, c := range printableBytes(msg) {
			if c < 0x80 {
				p.buf = append(p.buf, c)
			}
		}
	}
	return p.state
}

// printableBytes returns the bytes a key inserts as text: runes, space and
// tab. Control keys and alt-modified keys insert nothing.
func printableBytes(msg tea.KeyMsg) []byte {
	if msg.Alt {
		return nil
	}
	switch msg.Type {
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyRunes:
		out := make([]byte, 0, len(msg.Runes))
		for _, c := range []byte(string(msg.Runes)) {
			if c >= 0x20 && c != 0x7f {
				out = append(out, c)
			}
		}
		return out
	default:
		return nil
	}
}
