// Package config loads the atto configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/atto/editor"
)

const (
	// EnvConfig overrides the configuration file location.
	EnvConfig = "ATTO_CONFIG"

	fileName = "config.yaml"
	dirName  = "atto"
)

// Config is the on-disk configuration.
type Config struct {
	QuitTimes      int                 `yaml:"quit_times"`
	MessageTimeout Duration            `yaml:"message_timeout"`
	ShowWelcome    bool                `yaml:"show_welcome"`
	Keys           map[string][]string `yaml:"keys,omitempty"`
}

// Duration is a time.Duration written as a Go duration string ("5s").
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", value.Line, s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func Default() Config {
	return Config{
		QuitTimes:      editor.DefaultQuitTimes,
		MessageTimeout: Duration(editor.DefaultMessageTimeout),
		ShowWelcome:    true,
	}
}

// DefaultPath returns $ATTO_CONFIG, or config.yaml in the user config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads the configuration at path. An empty path means DefaultPath,
// and a missing file at the default location yields Default.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config format: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.QuitTimes < 0 {
		return fmt.Errorf("quit_times must not be negative, got %d", c.QuitTimes)
	}
	if c.MessageTimeout <= 0 {
		return fmt.Errorf("message_timeout must be positive, got %s", time.Duration(c.MessageTimeout))
	}
	km := editor.DefaultKeyMap()
	if err := km.Apply(c.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

// EditorConfig converts c into an editor.Config with the default style.
func (c Config) EditorConfig() (editor.Config, error) {
	km := editor.DefaultKeyMap()
	if err := km.Apply(c.Keys); err != nil {
		return editor.Config{}, fmt.Errorf("keys: %w", err)
	}
	quitTimes := c.QuitTimes
	if quitTimes == 0 {
		quitTimes = -1
	}
	return editor.Config{
		QuitTimes:      quitTimes,
		MessageTimeout: time.Duration(c.MessageTimeout),
		HideWelcome:    !c.ShowWelcome,
		KeyMap:         km,
		Style:          editor.DefaultStyle(),
	}, nil
}
