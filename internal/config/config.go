// Package config provides YAML-based configuration loading for spritewrap.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/spritewrap/internal/core"
)

// Config contains all configuration for the demo.
type Config struct {
	Backend  string         `yaml:"backend"`
	Window   WindowConfig   `yaml:"window"`
	Player   PlayerConfig   `yaml:"player"`
	FPS      FPSConfig      `yaml:"fps"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// WindowConfig defines the window and viewport.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// PlayerConfig defines the movable sprite.
type PlayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Pixels per tick per held key
}

// FPSConfig defines the frame rate report.
type FPSConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// TerminalConfig defines settings for the terminal backend, which has no
// vsync and paces itself with a ticker.
type TerminalConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// Runtime converts the config into the demo's runtime parameters.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Viewport: core.Viewport{W: c.Window.Width, H: c.Window.Height},
		PlayerW:  c.Player.Width,
		PlayerH:  c.Player.Height,
		Speed:    c.Player.Speed,
	}
}

// Interval returns the FPS sampling interval.
func (c Config) Interval() time.Duration {
	return time.Duration(c.FPS.IntervalMS) * time.Millisecond
}

// Validate reports every field that cannot drive the demo.
func (c Config) Validate() error {
	var errs []error
	if c.Backend == "" {
		errs = append(errs, errors.New("backend must be set"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %dx%d", c.Player.Width, c.Player.Height))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed must be positive, got %d", c.Player.Speed))
	}
	if c.FPS.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("fps interval must be positive, got %dms", c.FPS.IntervalMS))
	}
	if c.Terminal.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("terminal tick rate must be positive, got %d", c.Terminal.TickRate))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
