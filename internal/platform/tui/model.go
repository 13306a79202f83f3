package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spritewrap/internal/core"
	"github.com/vovakirdan/spritewrap/internal/fps"
	"github.com/vovakirdan/spritewrap/internal/registry"
)

// statusRows is the number of terminal rows reserved below the playfield.
const statusRows = 1

// Model is the Bubble Tea model for running the demo in a terminal.
type Model struct {
	session    *registry.Session
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	lastRate   string
	quitting   bool
}

// NewModel creates a model for a terminal of the given size.
func NewModel(s *registry.Session, width, height int) Model {
	return Model{
		session:    s,
		screen:     core.NewScreen(width, height-statusRows),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Config.Terminal.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-statusRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case RateMsg:
		m.lastRate = fps.Rate(msg).String()
		return m, nil
	}

	return m, nil
}

// handleKey records a key press for the next tick. Terminals report
// presses rather than held state, so each press holds for one tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleTick steps the simulation and counts the frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Tick(m.inputFrame)
	m.session.FramePresented()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.session.Config.Terminal.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.session.Demo.Player(), m.session.Demo.Viewport())
	return RenderScreen(m.screen) + "\n" + renderStatus(m.lastRate, m.help.View(m.keys))
}
