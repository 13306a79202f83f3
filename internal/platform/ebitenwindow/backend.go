// Package ebitenwindow runs the demo with Ebitengine. Ebiten owns the loop:
// Update steps the simulation once per tick and Draw presents the frame.
package ebitenwindow

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/spritewrap/internal/core"
	"github.com/vovakirdan/spritewrap/internal/registry"
)

func init() {
	registry.Register("ebiten", New)
}

// Backend implements registry.Backend on top of Ebitengine.
type Backend struct{}

// New creates the Ebiten backend.
func New() registry.Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return "ebiten"
}

// Description returns a one-line summary.
func (b *Backend) Description() string {
	return "Ebitengine window, fixed 60 TPS update, vsync draw"
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (b *Backend) Run(s *registry.Session) error {
	cfg := s.Config

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	s.Logger.Info("window open", "backend", b.Name(), "width", cfg.Window.Width, "height", cfg.Window.Height, "vsync", cfg.Window.VSync)

	timer := s.StartReporter(nil)
	defer timer.Remove()

	g := newGame(s)
	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	s.Logger.Debug("quit requested", "ticks", s.Demo.Ticks())
	return nil
}

// game adapts a Session to ebiten.Game.
type game struct {
	session *registry.Session
	sprite  *ebiten.Image
	player  core.Rect
}

func newGame(s *registry.Session) *game {
	p := s.Demo.Player()
	sprite := ebiten.NewImage(p.W, p.H)
	sprite.Fill(color.White)
	return &game{
		session: s,
		sprite:  sprite,
		player:  p,
	}
}

// heldKeys maps Ebiten keys to the actions they hold down.
var heldKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
}

// Update steps the simulation once per tick.
func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	for _, k := range heldKeys {
		if ebiten.IsKeyPressed(k.key) {
			in.Set(k.action)
		}
	}
	g.player = g.session.Tick(in)
	return nil
}

// Draw clears to black and paints the sprite.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.player.X), float64(g.player.Y))
	screen.DrawImage(g.sprite, op)

	g.session.FramePresented()
}

// Layout keeps the logical screen at the configured viewport size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.session.Demo.Viewport()
	return vp.W, vp.H
}
