package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spritewrap/internal/core"
)

// SpriteChar fills the sprite's cells.
const SpriteChar = '█'

var (
	spriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	rateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
)

// spriteCells maps the player rect from viewport pixels onto the screen grid.
// The result is at least one cell in each dimension.
func spriteCells(player core.Rect, vp core.Viewport, cols, rows int) core.Rect {
	x0 := core.Scale(player.X, vp.W, cols)
	x1 := core.Scale(player.Right(), vp.W, cols)
	y0 := core.Scale(player.Y, vp.H, rows)
	y1 := core.Scale(player.Bottom(), vp.H, rows)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// drawFrame clears the screen and draws the scaled sprite.
func drawFrame(dst *core.Screen, player core.Rect, vp core.Viewport) {
	dst.Clear()
	dst.DrawRect(spriteCells(player, vp, dst.Width(), dst.Height()), SpriteChar)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Sprite cells are styled as one run per row to minimize escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		row := s.Row(y)
		start := strings.IndexRune(row, SpriteChar)
		if start < 0 {
			sb.WriteString(row)
			continue
		}
		end := strings.LastIndex(row, string(SpriteChar)) + len(string(SpriteChar))
		sb.WriteString(row[:start])
		sb.WriteString(spriteStyle.Render(row[start:end]))
		sb.WriteString(row[end:])
	}
	return sb.String()
}

// renderStatus builds the bottom status line.
func renderStatus(rate, help string) string {
	if rate == "" {
		rate = "measuring..."
	}
	return rateStyle.Render(rate) + statusStyle.Render("  ") + help
}
