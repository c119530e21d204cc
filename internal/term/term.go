// Package term presents a lifewars session in a terminal. Each character cell
// shows two board rows using an upper half block.
package term

import (
	"fmt"
	"sync/atomic"

	"lifewars/internal/core"
	"lifewars/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Presenter draws committed frames with tcell and watches for q, Esc or
// Ctrl-C.
type Presenter struct {
	screen  tcell.Screen
	pacer   *core.FixedStep
	palette []tcell.Color
	quit    atomic.Bool
	done    chan struct{}
}

// New initialises a terminal screen. Call Close to restore the terminal.
func New(tps int) (*Presenter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewWithScreen(screen, tps)
}

// NewWithScreen wraps an existing, uninitialised screen.
func NewWithScreen(screen tcell.Screen, tps int) (*Presenter, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	pal := render.TeamPalette()
	p := &Presenter{
		screen:  screen,
		pacer:   core.NewFixedStep(tps),
		palette: make([]tcell.Color, len(pal)),
		done:    make(chan struct{}),
	}
	for i, c := range pal {
		p.palette[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	go p.pollEvents()
	return p, nil
}

func (p *Presenter) pollEvents() {
	defer close(p.done)
	for {
		ev := p.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				p.quit.Store(true)
			}
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

// Terminated reports whether the user asked to quit.
func (p *Presenter) Terminated() bool { return p.quit.Load() }

// Render draws the top-left part of the board that fits the screen, with a
// status line at the bottom, then waits out the rest of the tick.
func (p *Presenter) Render(f core.Frame) {
	sw, sh := p.screen.Size()
	rows := sh - 1
	cols := min(sw, f.Size.W)
	for ty := 0; ty < rows; ty++ {
		top, bottom := 2*ty, 2*ty+1
		for x := 0; x < sw; x++ {
			if x >= cols || top >= f.Size.H {
				p.screen.SetContent(x, ty, ' ', nil, tcell.StyleDefault)
				continue
			}
			fg := p.color(f.Cells[top*f.Size.W+x])
			bg := p.palette[core.CellDead]
			if bottom < f.Size.H {
				bg = p.color(f.Cells[bottom*f.Size.W+x])
			}
			p.screen.SetContent(x, ty, '▀', nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
	status := fmt.Sprintf(" game %d  gen %d  +%d -%d  P1 %d (%d)  P2 %d (%d)  q to quit",
		f.Game, f.Generation, f.Births, f.Deaths, f.Live[0], f.Total[0], f.Live[1], f.Total[1])
	for x := 0; x < sw; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		p.screen.SetContent(x, sh-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	p.screen.Show()
	p.pacer.Wait()
}

func (p *Presenter) color(v uint8) tcell.Color {
	if int(v) >= len(p.palette) {
		return p.palette[len(p.palette)-1]
	}
	return p.palette[v]
}

// Close restores the terminal and stops the event goroutine.
func (p *Presenter) Close() {
	p.screen.Fini()
	<-p.done
}
