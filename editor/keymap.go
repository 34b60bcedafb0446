package editor

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
)

// Action names a rebindable editor command.
type Action string

const (
	ActionQuit      Action = "quit"
	ActionSave      Action = "save"
	ActionNewline   Action = "newline"
	ActionBackspace Action = "backspace"
	ActionDelete    Action = "delete"
	ActionUp        Action = "up"
	ActionDown      Action = "down"
	ActionLeft      Action = "left"
	ActionRight     Action = "right"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
	ActionHome      Action = "home"
	ActionEnd       Action = "end"
	ActionCancel    Action = "cancel"
	ActionRefresh   Action = "refresh"
)

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Quit, Save key.Binding

	Newline           key.Binding
	Backspace, Delete key.Binding

	Up, Down, Left, Right key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	// Cancel aborts the save-as prompt. Outside the prompt it does nothing,
	// like Refresh.
	Cancel  key.Binding
	Refresh key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),

		Newline:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "split line")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete under cursor")),

		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Refresh: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "refresh")),
	}
}

func (km *KeyMap) binding(a Action) *key.Binding {
	switch a {
	case ActionQuit:
		return &km.Quit
	case ActionSave:
		return &km.Save
	case ActionNewline:
		return &km.Newline
	case ActionBackspace:
		return &km.Backspace
	case ActionDelete:
		return &km.Delete
	case ActionUp:
		return &km.Up
	case ActionDown:
		return &km.Down
	case ActionLeft:
		return &km.Left
	case ActionRight:
		return &km.Right
	case ActionPageUp:
		return &km.PageUp
	case ActionPageDown:
		return &km.PageDown
	case ActionHome:
		return &km.Home
	case ActionEnd:
		return &km.End
	case ActionCancel:
		return &km.Cancel
	case ActionRefresh:
		return &km.Refresh
	default:
		return nil
	}
}

// Rebind replaces the keys of action. The help key becomes the first new key.
func (km *KeyMap) Rebind(a Action, keys ...string) error {
	b := km.binding(a)
	if b == nil {
		return fmt.Errorf("unknown action %q", a)
	}
	if len(keys) == 0 {
		return fmt.Errorf("action %q: no keys given", a)
	}
	for _, k := range keys {
		if k == "" {
			return fmt.Errorf("action %q: empty key", a)
		}
	}
	b.SetKeys(keys...)
	b.SetHelp(keys[0], b.Help().Desc)
	return nil
}

// Apply rebinds every action in overrides. Actions are applied in name order
// so the first error is deterministic.
func (km *KeyMap) Apply(overrides map[string][]string) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := km.Rebind(Action(name), overrides[name]...); err != nil {
			return err
		}
	}
	return nil
}
