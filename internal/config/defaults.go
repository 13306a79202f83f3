package config

import (
	_ "embed"
)

//go:embed defaults/spritewrap.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration: an 800x600 SDL window
// with a 32x32 sprite moving 4 pixels per tick and an FPS report every 5s.
func DefaultConfig() Config {
	return Config{
		Backend: "sdl",
		Window: WindowConfig{
			Title:  "Hello SDL2 from Go",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Player: PlayerConfig{
			Width:  32,
			Height: 32,
			Speed:  4,
		},
		FPS: FPSConfig{
			IntervalMS: 5000,
		},
		Terminal: TerminalConfig{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
