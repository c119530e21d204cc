//go:build ebiten

package app

import (
	"lifewars/internal/core"
	"lifewars/internal/render"
	"lifewars/internal/sims/lifewars"
	"lifewars/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a lifewars session to the ebiten.Game interface. Ebiten calls
// Update at the configured TPS; each call advances one generation.
type Game struct {
	session *lifewars.Session
	painter *render.GridPainter
	hud     *ui.HUD
	frame   core.Frame

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for a started session.
func New(session *lifewars.Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := session.Board().Size()
	ebiten.SetWindowClosingHandled(true)
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H, render.TeamPalette()),
		hud:     ui.NewHUD(ui.PanelWidth),
		frame:   session.Frame(),
		scale:   scale,
	}
}

// Terminated reports whether the user asked to quit or closed the window.
func (g *Game) Terminated() bool {
	return ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Render keeps the committed frame for the next Draw.
func (g *Game) Render(f core.Frame) { g.frame = f }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.Terminated() || g.session.Done() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	if !g.paused || g.tickOnce {
		g.tickOnce = false
		if err := g.session.Tick(); err != nil {
			return err
		}
		// The final generation is drawn once; the next Update terminates.
		g.Render(g.session.Frame())
	}
	return nil
}

// Draw renders the last committed frame and the scoreboard.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame.Cells, g.scale)
	g.hud.Draw(screen, g.frame, g.frame.Size.W*g.scale, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.frame.Size
	return s.W*g.scale + ui.PanelWidth, s.H * g.scale
}
