// Package config loads Breakout settings from YAML or TOML files.
//
// Only presentation and platform settings are configurable: arena size,
// tick period, key bindings, key hold timings, storage, logging and the
// SSH listener. Physics constants are fixed.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Minimum arena size accepted by Validate.
const (
	MinArenaWidth  = 600
	MinArenaHeight = 400
)

// Config contains every user-tunable setting.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena" toml:"arena"`
	Tick    time.Duration `yaml:"tick" toml:"tick"`
	Input   InputConfig   `yaml:"input" toml:"input"`
	Keys    KeysConfig    `yaml:"keys" toml:"keys"`
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Server  ServerConfig  `yaml:"server" toml:"server"`

	// Source is where the config was loaded from ("embedded" or a path).
	Source string `yaml:"-" toml:"-"`
}

// ArenaConfig is the logical arena size in pixels, walls included.
type ArenaConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// InputConfig controls how key releases are synthesized. Terminals only
// report presses (plus auto-repeat), so a held key is considered released
// once no repeat arrived within the hold window.
type InputConfig struct {
	HoldFirst  time.Duration `yaml:"hold_first" toml:"hold_first"`   // Window after the initial press
	HoldRepeat time.Duration `yaml:"hold_repeat" toml:"hold_repeat"` // Window after each auto-repeat
}

// KeysConfig maps actions to bubbles key names.
type KeysConfig struct {
	Left    []string `yaml:"left" toml:"left"`
	Right   []string `yaml:"right" toml:"right"`
	Pause   []string `yaml:"pause" toml:"pause"`
	Restart []string `yaml:"restart" toml:"restart"`
	Exit    []string `yaml:"exit" toml:"exit"`
}

// StorageConfig locates the run journal database.
type StorageConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// LogConfig sets the logger level.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Addr        string `yaml:"addr" toml:"addr"`
	HostKeyPath string `yaml:"host_key" toml:"host_key"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Arena: ArenaConfig{Width: 600, Height: 600},
		Tick:  15 * time.Millisecond,
		Input: InputConfig{
			HoldFirst:  500 * time.Millisecond,
			HoldRepeat: 120 * time.Millisecond,
		},
		Keys: KeysConfig{
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Pause:   []string{" ", "p"},
			Restart: []string{"r"},
			Exit:    []string{"e", "q", "ctrl+c", "esc"},
		},
		Storage: StorageConfig{Path: "~/.breakout/runs.db"},
		Log:     LogConfig{Level: "info"},
		Server:  ServerConfig{Addr: ":23234"},
		Source:  "default",
	}
}

// Validate checks ranges and required values.
func (c Config) Validate() error {
	var problems []string

	if c.Arena.Width < MinArenaWidth || c.Arena.Height < MinArenaHeight {
		problems = append(problems, fmt.Sprintf("arena %dx%d is smaller than %dx%d",
			c.Arena.Width, c.Arena.Height, MinArenaWidth, MinArenaHeight))
	}
	if c.Tick <= 0 {
		problems = append(problems, "tick must be positive")
	}
	if c.Input.HoldFirst <= 0 || c.Input.HoldRepeat <= 0 {
		problems = append(problems, "input hold windows must be positive")
	}

	keys := map[string][]string{
		"left":    c.Keys.Left,
		"right":   c.Keys.Right,
		"pause":   c.Keys.Pause,
		"restart": c.Keys.Restart,
		"exit":    c.Keys.Exit,
	}
	for _, name := range []string{"left", "right", "pause", "restart", "exit"} {
		if len(keys[name]) == 0 {
			problems = append(problems, fmt.Sprintf("no keys bound to %s", name))
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log level %q", c.Log.Level))
	}
	if c.Storage.Path == "" {
		problems = append(problems, "storage path is empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Runtime converts the config into the game runtime settings for a
// screen of the given size.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    screenW,
		ScreenH:    screenH,
		ArenaW:     c.Arena.Width,
		ArenaH:     c.Arena.Height,
		TickPeriod: c.Tick,
	}
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
