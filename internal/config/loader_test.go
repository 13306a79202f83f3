package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs so
// Load does not pick up real config files.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	rt := cfg.Runtime()
	if rt.Viewport.W != 800 || rt.Viewport.H != 600 {
		t.Errorf("viewport = %+v, expected 800x600", rt.Viewport)
	}
	if rt.PlayerW != 32 || rt.PlayerH != 32 || rt.Speed != 4 {
		t.Errorf("player = %dx%d speed %d, expected 32x32 speed 4", rt.PlayerW, rt.PlayerH, rt.Speed)
	}
	if cfg.Interval() != 5*time.Second {
		t.Errorf("Interval() = %v, expected 5s", cfg.Interval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  speed: 8\nfps:\n  interval_ms: 1000\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Player.Speed != 8 {
		t.Errorf("speed = %d, expected 8", cfg.Player.Speed)
	}
	if cfg.Interval() != time.Second {
		t.Errorf("Interval() = %v, expected 1s", cfg.Interval())
	}
	// Unset keys keep their defaults
	if cfg.Player.Width != 32 || cfg.Window.Width != 800 || cfg.Backend != "sdl" {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed", "window: [", ""},
		{"zero width", "window:\n  width: 0\n", "window size"},
		{"negative speed", "player:\n  speed: -1\n", "player speed"},
		{"zero interval", "fps:\n  interval_ms: 0\n", "fps interval"},
		{"zero tick rate", "terminal:\n  tick_rate: 0\n", "tick rate"},
		{"empty backend", "backend: \"\"\n", "backend"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tc.wantErr != "" && !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Speed = 0
	cfg.FPS.IntervalMS = -5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "speed") || !strings.Contains(err.Error(), "interval") {
		t.Errorf("error should list every invalid field, got %q", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "backend: tui\n")

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Backend != "tui" {
		t.Errorf("backend = %q, expected tui", cfg.Backend)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "player:\n  width: -3\n")
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() of an invalid custom config should fail")
	}
}

func TestLoadLocalConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "configs", "spritewrap.yaml"), "backend: ebiten\n")

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Backend != "ebiten" {
		t.Errorf("backend = %q, expected ebiten", cfg.Backend)
	}
	if source != filepath.Join("configs", "spritewrap.yaml") {
		t.Errorf("source = %q, expected local configs path", source)
	}
}

func TestLoadUserConfigWins(t *testing.T) {
	dir := isolate(t)
	home := os.Getenv("HOME")
	writeFile(t, filepath.Join(home, ".spritewrap", "config.yaml"), "backend: tui\n")
	writeFile(t, filepath.Join(dir, "configs", "spritewrap.yaml"), "backend: ebiten\n")

	cfg, _, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Backend != "tui" {
		t.Errorf("backend = %q, expected the user config's tui", cfg.Backend)
	}
}

func TestLoadSkipsInvalidSearchPaths(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "configs", "spritewrap.yaml"), "player:\n  speed: 0\n")

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}
}
