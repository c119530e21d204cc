package lifewars

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvariant marks a board state the engine cannot have produced.
	ErrInvariant = errors.New("lifewars: invariant violation")
	// ErrPlacement marks a pattern that could not be placed without collisions.
	ErrPlacement = errors.New("lifewars: pattern placement failed")
)

// CellState is a copy of one cell's fields taken for diagnostics.
type CellState struct {
	X, Y       int
	Status     Status
	Next       Status
	Neighbours int
	Team       Team
}

// NeighbourState is the snapshot of one living neighbour, keyed by its slot.
type NeighbourState struct {
	Slot int
	CellState
}

// InvariantError reports a neighbour count outside [0, 8].
type InvariantError struct {
	X, Y       int
	Count      int
	Cell       CellState
	Neighbours []NeighbourState
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("neighbour count %d out of range at (%d,%d), probably a toroid wrapping failure\n%s",
		e.Count, e.X, e.Y, dump(e.Cell, e.Neighbours))
}

// Unwrap lets errors.Is match ErrInvariant.
func (e *InvariantError) Unwrap() error { return ErrInvariant }

// BirthConflict describes a birth whose living neighbours are split evenly
// between the teams. The cell is left without a team.
type BirthConflict struct {
	X, Y       int
	P1, P2     int
	Cell       CellState
	Neighbours []NeighbourState
}

func (c BirthConflict) String() string {
	return fmt.Sprintf("no birth team found for cell at (%d,%d)\nt1 count: %d\nt2 count: %d\n%s",
		c.X, c.Y, c.P1, c.P2, dump(c.Cell, c.Neighbours))
}

// PlacementError reports that every placement attempt collided.
type PlacementError struct {
	Team       Team
	Attempts   int
	Collisions int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%s pattern still had %d collisions after %d attempts", e.Team, e.Collisions, e.Attempts)
}

// Unwrap lets errors.Is match ErrPlacement.
func (e *PlacementError) Unwrap() error { return ErrPlacement }

func (b *Board) snapshot(i int) (CellState, []NeighbourState) {
	self := b.cellState(i)
	var living []NeighbourState
	for k, n := range b.cells[i].adj {
		if b.cells[n].Status == Alive {
			living = append(living, NeighbourState{Slot: k, CellState: b.cellState(int(n))})
		}
	}
	return self, living
}

func (b *Board) cellState(i int) CellState {
	c := &b.cells[i]
	return CellState{
		X:          i % b.w,
		Y:          i / b.w,
		Status:     c.Status,
		Next:       c.Next,
		Neighbours: c.Neighbours,
		Team:       c.Team,
	}
}

func dump(self CellState, living []NeighbourState) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*** debug info for cell %3d,%3d ***\n", self.X, self.Y)
	fmt.Fprintf(&sb, "* status: %d\n* next: %d\n* neighbours: %d\n* team: %d\n*\n",
		self.Status, self.Next, self.Neighbours, self.Team)
	sb.WriteString("* living neighbour info:\n")
	for _, n := range living {
		fmt.Fprintf(&sb, "* n[%d] at %d,%d status: %d next: %d neighbours: %d team: %d\n",
			n.Slot, n.X, n.Y, n.Status, n.Next, n.Neighbours, n.Team)
	}
	sb.WriteString("***********************************")
	return sb.String()
}
