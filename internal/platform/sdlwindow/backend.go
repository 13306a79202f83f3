// Package sdlwindow runs the demo in an SDL2 window with a vsync'd
// accelerated renderer.
package sdlwindow

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/spritewrap/internal/core"
	"github.com/vovakirdan/spritewrap/internal/registry"
)

func init() {
	// SDL video calls must stay on the main OS thread
	runtime.LockOSThread()

	registry.Register("sdl", New)
}

// Backend implements registry.Backend on top of go-sdl2.
type Backend struct{}

// New creates the SDL backend.
func New() registry.Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return "sdl"
}

// Description returns a one-line summary.
func (b *Backend) Description() string {
	return "SDL2 window, accelerated renderer, vsync pacing"
}

// Run opens the window and drives the loop until quit or Escape.
func (b *Backend) Run(s *registry.Session) error {
	cfg := s.Config

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		cfg.Window.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Window.Width), int32(cfg.Window.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.Window.VSync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	renderer, err := sdl.CreateRenderer(window, -1, flags)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	s.Logger.Info("window open", "backend", b.Name(), "width", cfg.Window.Width, "height", cfg.Window.Height, "vsync", cfg.Window.VSync)

	timer := s.StartReporter(nil)
	defer timer.Remove()

	for {
		if quitRequested() {
			s.Logger.Debug("quit requested", "ticks", s.Demo.Ticks())
			return nil
		}

		player := s.Tick(inputFromKeyboard(sdl.GetKeyboardState()))

		renderer.SetDrawColor(0, 0, 0, 255)
		renderer.Clear()
		renderer.SetDrawColor(255, 255, 255, 255)
		//nolint:errcheck // A failed draw just leaves the frame without the sprite
		renderer.FillRect(&sdl.Rect{
			X: int32(player.X),
			Y: int32(player.Y),
			W: int32(player.W),
			H: int32(player.H),
		})
		renderer.Present()

		s.FramePresented()
	}
}

// quitRequested drains pending events and reports a window close or Escape.
func quitRequested() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE && e.State == sdl.PRESSED {
				quit = true
			}
		}
	}
	return quit
}

// heldKeys maps scancodes to the actions they hold down.
var heldKeys = []struct {
	scancode sdl.Scancode
	action   core.Action
}{
	{sdl.SCANCODE_UP, core.ActionUp},
	{sdl.SCANCODE_DOWN, core.ActionDown},
	{sdl.SCANCODE_LEFT, core.ActionLeft},
	{sdl.SCANCODE_RIGHT, core.ActionRight},
}

// inputFromKeyboard builds an input frame from SDL's keyboard state array.
func inputFromKeyboard(state []uint8) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range heldKeys {
		if int(k.scancode) < len(state) && state[k.scancode] != 0 {
			in.Set(k.action)
		}
	}
	return in
}
