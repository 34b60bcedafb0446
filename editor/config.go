package editor

import (
	"time"

	"github.com/iw2rmb/atto/buffer"
)

const (
	DefaultQuitTimes      = 2
	DefaultMessageTimeout = 5 * time.Second
	DefaultTitle          = "atto editor"
)

// Config configures the editor Model.
type Config struct {
	// Document to edit. A nil Document starts an empty, unnamed one.
	Document *buffer.Document

	// QuitTimes is the number of extra quit presses required while the
	// document has unsaved changes. Default: DefaultQuitTimes; a negative
	// value quits immediately.
	QuitTimes int

	// MessageTimeout is how long a status message stays visible.
	// Default: DefaultMessageTimeout.
	MessageTimeout time.Duration

	// HideWelcome disables the banner drawn over an empty document.
	HideWelcome bool
	// Title and Version are shown in the welcome banner.
	Title   string
	Version string

	// KeyMap defaults to DefaultKeyMap when no quit key is bound.
	KeyMap KeyMap
	Style  Style

	// Now is the clock used for status message expiry. Default: time.Now.
	Now func() time.Time
}

func (cfg Config) withDefaults() Config {
	if cfg.QuitTimes == 0 {
		cfg.QuitTimes = DefaultQuitTimes
	}
	if cfg.QuitTimes < 0 {
		cfg.QuitTimes = 0
	}
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = DefaultMessageTimeout
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return cfg
}
