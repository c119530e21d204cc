package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Display values written into Frame.Cells.
const (
	CellDead uint8 = iota
	CellPlayer1
	CellPlayer2
	// CellUnowned is a live cell whose birth team could not be resolved.
	CellUnowned
)

// Frame is a read-only snapshot of a fully committed generation. Cells holds
// one display value per grid position in row-major order.
type Frame struct {
	Size  Size
	Cells []uint8

	Game       int
	Generation int

	// Live is the per-team live cell count of this generation; Total is the
	// running per-team sum for the current game.
	Live  [2]int
	Total [2]int

	// Births, Deaths and Conflicts describe the step that produced this
	// generation. They are zero for a freshly seeded board.
	Births    int
	Deaths    int
	Conflicts int
}

// Presenter renders committed frames and reports whether the user asked to
// stop. Implementations must not retain Cells past the Render call.
type Presenter interface {
	Render(f Frame)
	Terminated() bool
}
