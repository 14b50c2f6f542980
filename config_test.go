package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if len(cfg.Deck.Colors) != 6 {
		t.Fatalf("default deck has %d colors, want 6", len(cfg.Deck.Colors))
	}
	if cfg.Gesture.SwipeThreshold != 8 {
		t.Fatalf("default threshold = %d, want 8", cfg.Gesture.SwipeThreshold)
	}
	if cfg.Gesture.HoldMs != 120 {
		t.Fatalf("default hold = %dms, want 120", cfg.Gesture.HoldMs)
	}
	if cfg.Spring.Frequency != 7.0 || cfg.Spring.Damping != 1.0 {
		t.Fatalf("default spring = (%v, %v), want (7, 1)", cfg.Spring.Frequency, cfg.Spring.Damping)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
[deck]
colors = ["#ff0000", "#00ff00"]

[gesture]
swipe_threshold = 12
hold_ms = 200

[spring]
frequency = 5.5
damping = 0.8

[[keybinding]]
scope = "deck"
action = "swipe_trailing"
keys = ["L"]
`)
	cfg, err := parseConfig(data)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if len(cfg.Deck.Colors) != 2 || cfg.Deck.Colors[0] != "#ff0000" {
		t.Fatalf("deck colors = %v", cfg.Deck.Colors)
	}
	if cfg.Gesture.SwipeThreshold != 12 || cfg.Gesture.HoldMs != 200 {
		t.Fatalf("gesture = %+v", cfg.Gesture)
	}
	if cfg.Spring.Frequency != 5.5 || cfg.Spring.Damping != 0.8 {
		t.Fatalf("spring = %+v", cfg.Spring)
	}
	if len(cfg.Keybinding) != 1 || cfg.Keybinding[0].Action != "swipe_trailing" {
		t.Fatalf("keybinding = %+v", cfg.Keybinding)
	}
}

func TestParseConfigInvalidTOML(t *testing.T) {
	if _, err := parseConfig([]byte("deck = [nonsense")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNormalizeConfigClamps(t *testing.T) {
	cases := []struct {
		name string
		in   configFile
		want func(t *testing.T, out configFile)
	}{
		{
			name: "threshold below range falls back",
			in:   configFile{Gesture: gestureConfig{SwipeThreshold: 0}},
			want: func(t *testing.T, out configFile) {
				if out.Gesture.SwipeThreshold != 8 {
					t.Fatalf("threshold = %d, want 8", out.Gesture.SwipeThreshold)
				}
			},
		},
		{
			name: "threshold above range falls back",
			in:   configFile{Gesture: gestureConfig{SwipeThreshold: 500}},
			want: func(t *testing.T, out configFile) {
				if out.Gesture.SwipeThreshold != 8 {
					t.Fatalf("threshold = %d, want 8", out.Gesture.SwipeThreshold)
				}
			},
		},
		{
			name: "negative hold falls back",
			in:   configFile{Gesture: gestureConfig{HoldMs: -1}},
			want: func(t *testing.T, out configFile) {
				if out.Gesture.HoldMs != 120 {
					t.Fatalf("hold = %d, want 120", out.Gesture.HoldMs)
				}
			},
		},
		{
			name: "overdamped spring falls back",
			in:   configFile{Spring: springConfig{Frequency: 7, Damping: 9}},
			want: func(t *testing.T, out configFile) {
				if out.Spring.Damping != 1.0 {
					t.Fatalf("damping = %v, want 1.0", out.Spring.Damping)
				}
			},
		},
		{
			name: "invalid colors dropped, valid kept",
			in:   configFile{Deck: deckConfig{Colors: []string{"red", "#12345", "#a6e3a1"}}},
			want: func(t *testing.T, out configFile) {
				if len(out.Deck.Colors) != 1 || out.Deck.Colors[0] != "#a6e3a1" {
					t.Fatalf("colors = %v", out.Deck.Colors)
				}
			},
		},
		{
			name: "all colors invalid falls back to palette",
			in:   configFile{Deck: deckConfig{Colors: []string{"red", "blue"}}},
			want: func(t *testing.T, out configFile) {
				if len(out.Deck.Colors) != 6 {
					t.Fatalf("colors = %v, want the 6 defaults", out.Deck.Colors)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.want(t, normalizeConfig(tc.in))
		})
	}
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Gesture.SwipeThreshold != 8 {
		t.Fatalf("threshold = %d, want default 8", cfg.Gesture.SwipeThreshold)
	}

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file was not created: %v", err)
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	content := "[gesture]\nswipe_threshold = 20\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Gesture.SwipeThreshold != 20 {
		t.Fatalf("threshold = %d, want 20", cfg.Gesture.SwipeThreshold)
	}

	// Missing explicit path is an error but still yields usable defaults.
	cfg, err = loadConfig(filepath.Join(dir, "missing.toml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit path")
	}
	if cfg.Gesture.SwipeThreshold != 8 {
		t.Fatalf("fallback config should carry defaults")
	}
}

func TestConfigDerivedValues(t *testing.T) {
	cfg := defaultConfig()
	if got := cfg.swipeThreshold(); got != 8 {
		t.Fatalf("swipeThreshold = %v", got)
	}
	if got := cfg.holdDuration().Milliseconds(); got != 120 {
		t.Fatalf("holdDuration = %vms", got)
	}
	colors := cfg.deckColors()
	if len(colors) != 6 || colors[0] != colorCrust {
		t.Fatalf("deckColors = %v", colors)
	}
}
