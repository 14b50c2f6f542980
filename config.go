package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// App configuration (TOML-based)
// ---------------------------------------------------------------------------

// configFile is the top-level TOML structure.
type configFile struct {
	Deck       deckConfig         `toml:"deck"`
	Gesture    gestureConfig      `toml:"gesture"`
	Spring     springConfig       `toml:"spring"`
	Keybinding []keybindingConfig `toml:"keybinding"`
}

type deckConfig struct {
	Colors []string `toml:"colors"`
}

type gestureConfig struct {
	SwipeThreshold int `toml:"swipe_threshold"` // cells
	HoldMs         int `toml:"hold_ms"`
}

type springConfig struct {
	Frequency float64 `toml:"frequency"` // angular frequency, rad/s
	Damping   float64 `toml:"damping"`   // 1.0 = critically damped
}

type keybindingConfig struct {
	Scope  string   `toml:"scope"`
	Action string   `toml:"action"`
	Keys   []string `toml:"keys"`
}

const defaultConfigTOML = `# Swipedeck configuration
# Colors are hex; the deck cycles through them forever.

[deck]
colors = ["#11111b", "#f38ba8", "#a6e3a1", "#f9e2af", "#f5c2e7", "#eba0ac"]

[gesture]
swipe_threshold = 8
hold_ms = 120

[spring]
frequency = 7.0
damping = 1.0

# Override keys per scope/action, e.g.:
# [[keybinding]]
# scope = "deck"
# action = "swipe_trailing"
# keys = ["l", "right", "L"]
`

// configDir returns the directory for swipedeck config files,
// using XDG_CONFIG_HOME or falling back to ~/.config.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "swipedeck"), nil
}

// configPath returns the full path to the config.toml file.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func defaultConfig() configFile {
	var cfg configFile
	// The shipped default TOML is the source of truth for defaults.
	if _, err := toml.Decode(defaultConfigTOML, &cfg); err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

// loadConfig reads the config file at path, or the XDG location when path is
// empty. A missing XDG file is created with defaults; an explicit path that
// does not exist is an error. On any failure the returned config is usable
// defaults alongside the error.
func loadConfig(path string) (configFile, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = configPath()
		if err != nil {
			return defaultConfig(), err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
				return defaultConfig(), fmt.Errorf("create config dir: %w", mkErr)
			}
			if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0644); wErr != nil {
				return defaultConfig(), fmt.Errorf("write default config: %w", wErr)
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig(), fmt.Errorf("read config: %w", err)
	}
	cfg, parseErr := parseConfig(data)
	if parseErr != nil {
		return defaultConfig(), parseErr
	}
	return cfg, nil
}

// parseConfig parses TOML bytes and normalizes the result.
func parseConfig(data []byte) (configFile, error) {
	var cfg configFile
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parse config.toml: %w", err)
	}
	return normalizeConfig(cfg), nil
}

// normalizeConfig clamps out-of-range values back to defaults. Invalid deck
// colors are dropped; an empty deck falls back to the built-in palette.
func normalizeConfig(cfg configFile) configFile {
	out := defaultConfig()

	var colors []string
	for _, c := range cfg.Deck.Colors {
		if _, _, _, ok := parseHexColor(c); ok {
			colors = append(colors, c)
		}
	}
	if len(colors) > 0 {
		out.Deck.Colors = colors
	}

	if cfg.Gesture.SwipeThreshold >= 2 && cfg.Gesture.SwipeThreshold <= 40 {
		out.Gesture.SwipeThreshold = cfg.Gesture.SwipeThreshold
	}
	if cfg.Gesture.HoldMs >= 1 && cfg.Gesture.HoldMs <= 1000 {
		out.Gesture.HoldMs = cfg.Gesture.HoldMs
	}
	if cfg.Spring.Frequency >= 1 && cfg.Spring.Frequency <= 20 {
		out.Spring.Frequency = cfg.Spring.Frequency
	}
	if cfg.Spring.Damping >= 0.1 && cfg.Spring.Damping <= 2 {
		out.Spring.Damping = cfg.Spring.Damping
	}
	out.Keybinding = cfg.Keybinding
	return out
}

// ---------------------------------------------------------------------------
// Derived values
// ---------------------------------------------------------------------------

func (c configFile) deckColors() []lipgloss.Color {
	out := make([]lipgloss.Color, 0, len(c.Deck.Colors))
	for _, s := range c.Deck.Colors {
		out = append(out, lipgloss.Color(s))
	}
	if len(out) == 0 {
		return DefaultDeckColors()
	}
	return out
}

func (c configFile) holdDuration() time.Duration {
	return time.Duration(c.Gesture.HoldMs) * time.Millisecond
}

func (c configFile) swipeThreshold() float64 {
	return float64(c.Gesture.SwipeThreshold)
}
