package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMap_Rebind(t *testing.T) {
	km := DefaultKeyMap()
	if err := km.Rebind(ActionQuit, "ctrl+x"); err != nil {
		t.Fatalf("rebind: %v", err)
	}
	if !key.Matches(keyOf(tea.KeyCtrlX), km.Quit) {
		t.Fatalf("ctrl+x should quit after rebinding")
	}
	if key.Matches(keyOf(tea.KeyCtrlQ), km.Quit) {
		t.Fatalf("ctrl+q should no longer quit")
	}
	if km.Quit.Help().Desc != "quit" || km.Quit.Help().Key != "ctrl+x" {
		t.Fatalf("help text lost: %+v", km.Quit.Help())
	}
}

func TestKeyMap_RebindErrors(t *testing.T) {
	km := DefaultKeyMap()
	cases := []struct {
		action Action
		keys   []string
		want   string
	}{
		{action: "fly", keys: []string{"f"}, want: "unknown action"},
		{action: ActionSave, keys: nil, want: "no keys"},
		{action: ActionSave, keys: []string{""}, want: "empty key"},
	}
	for _, tc := range cases {
		err := km.Rebind(tc.action, tc.keys...)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("Rebind(%q, %q): got %v, want error containing %q", tc.action, tc.keys, err, tc.want)
		}
	}
}

func TestKeyMap_ApplyIsOrdered(t *testing.T) {
	km := DefaultKeyMap()
	err := km.Apply(map[string][]string{"zzz": {"a"}, "aaa": {"b"}})
	if err == nil || !strings.Contains(err.Error(), `"aaa"`) {
		t.Fatalf("expected first error for aaa, got %v", err)
	}
}

func TestModel_UsesRebindQuitKey(t *testing.T) {
	km := DefaultKeyMap()
	if err := km.Rebind(ActionQuit, "ctrl+x"); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(Config{KeyMap: km})
	if msg, _ := m.StatusMessage(); !strings.Contains(msg, "Ctrl+X = quit") {
		t.Fatalf("help message: got %q", msg)
	}

	m = press(m, keyOf(tea.KeyCtrlX))
	if !m.Quitting() {
		t.Fatalf("expected quit on rebound key")
	}
}
