package lifewars

import "lifewars/internal/core"

// Status is the life state of a cell.
type Status uint8

const (
	Dead Status = iota
	Alive
)

// Team tags the player that owns a living cell.
type Team uint8

const (
	TeamNone Team = iota
	Player1
	Player2
)

func (t Team) String() string {
	switch t {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "none"
	}
}

// NumNeighbours is the size of a cell's toroidal neighbourhood.
const NumNeighbours = 8

// Cell is one grid position. Next is the pending status for the generation
// being computed and is never authoritative until the commit phase.
type Cell struct {
	Status     Status
	Next       Status
	Neighbours int
	Team       Team

	adj [NumNeighbours]int32
}

// Board owns every cell of a fixed-extent toroidal grid in row-major order.
type Board struct {
	w, h  int
	cells []Cell
}

// NewBoard allocates a cleared board and builds its neighbour topology.
func NewBoard(w, h int) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	b := &Board{w: w, h: h, cells: make([]Cell, w*h)}
	b.buildTopology()
	return b
}

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Cells exposes the backing slice in row-major order.
func (b *Board) Cells() []Cell { return b.cells }

// Index returns the linear slice index for in-bounds coordinates (x, y).
func (b *Board) Index(x, y int) int { return y*b.w + x }

// Wrap maps any integer coordinates onto the torus.
func (b *Board) Wrap(x, y int) (int, int) {
	return wrap(x, b.w), wrap(y, b.h)
}

// At returns the cell at (x, y) after toroidal wrapping.
func (b *Board) At(x, y int) *Cell {
	x, y = b.Wrap(x, y)
	return &b.cells[b.Index(x, y)]
}

// Neighbours returns the linear indices of the eight cells around index i.
func (b *Board) Neighbours(i int) [NumNeighbours]int {
	var out [NumNeighbours]int
	for k, n := range b.cells[i].adj {
		out[k] = int(n)
	}
	return out
}

// Clear kills every cell and drops all ownership.
func (b *Board) Clear() {
	for i := range b.cells {
		c := &b.cells[i]
		c.Status = Dead
		c.Next = Dead
		c.Team = TeamNone
		c.Neighbours = 0
	}
}

// ClearTeam kills only the cells owned by team.
func (b *Board) ClearTeam(team Team) {
	if team == TeamNone {
		return
	}
	for i := range b.cells {
		c := &b.cells[i]
		if c.Team == team {
			c.Status = Dead
			c.Next = Dead
			c.Team = TeamNone
		}
	}
}

// Display writes one core display value per cell into dst, growing it when
// needed, and returns the filled slice.
func (b *Board) Display(dst []uint8) []uint8 {
	if cap(dst) < len(b.cells) {
		dst = make([]uint8, len(b.cells))
	}
	dst = dst[:len(b.cells)]
	for i := range b.cells {
		c := &b.cells[i]
		switch {
		case c.Status != Alive:
			dst[i] = core.CellDead
		case c.Team == Player1:
			dst[i] = core.CellPlayer1
		case c.Team == Player2:
			dst[i] = core.CellPlayer2
		default:
			dst[i] = core.CellUnowned
		}
	}
	return dst
}

func wrap(v, n int) int {
	return (v%n + n) % n
}
