//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifewars/internal/core"
	"lifewars/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the scoreboard panel to the right of the board.
type HUD struct {
	width int
	panel *ebiten.Image
	lastH int

	p1, p2 color.RGBA
}

// NewHUD constructs a HUD with the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	pal := render.TeamPalette()
	return &HUD{width: width, p1: pal[core.CellPlayer1], p2: pal[core.CellPlayer2]}
}

// Draw paints the scoreboard for frame f anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, f core.Frame, offsetX int, paused bool) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastH != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastH = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	lh := face.Metrics().Height.Ceil() + 4
	y := lh
	line := func(s string, c color.Color) {
		text.Draw(h.panel, s, face, 8, y, c)
		y += lh
	}
	line("LIFE WARS", color.White)
	line(fmt.Sprintf("game %d", f.Game), color.White)
	line(fmt.Sprintf("gen  %d", f.Generation), color.White)
	line(fmt.Sprintf("born %d", f.Births), color.White)
	line(fmt.Sprintf("died %d", f.Deaths), color.White)
	if f.Conflicts > 0 {
		line(fmt.Sprintf("unowned %d", f.Conflicts), color.White)
	}
	y += lh / 2
	for i, c := range []color.RGBA{h.p1, h.p2} {
		line(fmt.Sprintf("Player %d", i+1), c)
		line(fmt.Sprintf(" live  %d", f.Live[i]), c)
		line(fmt.Sprintf(" total %d", f.Total[i]), c)
	}
	if paused {
		y += lh / 2
		line("paused", color.White)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
