package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/spritewrap/internal/fps"
	"github.com/vovakirdan/spritewrap/internal/registry"
)

func init() {
	registry.Register("tui", New)
}

// Backend implements registry.Backend in the terminal.
type Backend struct{}

// New creates the terminal backend.
func New() registry.Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return "tui"
}

// Description returns a one-line summary.
func (b *Backend) Description() string {
	return "Terminal renderer (Bubble Tea), ticker pacing"
}

// Run starts the Bubble Tea program and blocks until the user quits.
// FPS reports go to the status line because stdout holds the alt screen.
func (b *Backend) Run(s *registry.Session) error {
	// Get terminal size early, WindowSizeMsg corrects it later
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	s.Logger.Info("terminal open", "backend", b.Name(), "cols", width, "rows", height, "tick_rate", s.Config.Terminal.TickRate)

	p := tea.NewProgram(
		NewModel(s, width, height),
		tea.WithAltScreen(),
	)

	timer := s.StartReporter(func(r fps.Rate) {
		p.Send(RateMsg(r))
	})
	defer timer.Remove()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	s.Logger.Debug("quit requested", "ticks", s.Demo.Ticks())
	return nil
}
