// Package tui runs the demo in a terminal using Bubble Tea.
// The viewport is scaled onto the character grid and a ticker paces the
// loop since a terminal has no vsync.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spritewrap/internal/fps"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// RateMsg carries an FPS sample from the report timer into the program.
type RateMsg fps.Rate

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
