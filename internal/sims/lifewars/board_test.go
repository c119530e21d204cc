package lifewars

import (
	"testing"

	"lifewars/internal/core"
)

func TestTopologyToroidalClosure(t *testing.T) {
	for _, size := range []core.Size{{W: 3, H: 3}, {W: 5, H: 4}, {W: 17, H: 11}} {
		b := NewBoard(size.W, size.H)
		for i := range b.Cells() {
			seen := map[int]bool{}
			for _, n := range b.Neighbours(i) {
				if n < 0 || n >= size.W*size.H {
					t.Fatalf("%dx%d: cell %d has out-of-bounds neighbour %d", size.W, size.H, i, n)
				}
				if n == i {
					t.Fatalf("%dx%d: cell %d lists itself as a neighbour", size.W, size.H, i)
				}
				if seen[n] {
					t.Fatalf("%dx%d: cell %d lists neighbour %d twice", size.W, size.H, i, n)
				}
				seen[n] = true
			}
		}
	}
}

func TestTopologyWrapsToOppositeEdge(t *testing.T) {
	b := NewBoard(6, 4)
	corner := b.Neighbours(b.Index(0, 0))
	want := map[int]bool{
		b.Index(5, 3): true, b.Index(0, 3): true, b.Index(1, 3): true,
		b.Index(5, 0): true, b.Index(1, 0): true,
		b.Index(5, 1): true, b.Index(0, 1): true, b.Index(1, 1): true,
	}
	for _, n := range corner {
		if !want[n] {
			t.Fatalf("unexpected neighbour %d (%d,%d) of top-left corner", n, n%6, n/6)
		}
	}

	far := b.Neighbours(b.Index(5, 3))
	if far[7] != b.Index(0, 0) {
		t.Fatalf("bottom-right diagonal should wrap to (0,0), got %d", far[7])
	}
}

func TestWrapUsesTrueModulo(t *testing.T) {
	b := NewBoard(10, 7)
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 9, 6},
		{10, 7, 0, 0},
		{-25, 30, 5, 2},
		{1000003, -700001, 3, 6},
	}
	for _, c := range cases {
		x, y := b.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestClearTeamLeavesOpponent(t *testing.T) {
	b := NewBoard(5, 5)
	b.At(0, 0).Status, b.At(0, 0).Team = Alive, Player1
	b.At(1, 0).Status, b.At(1, 0).Team = Alive, Player1
	b.At(3, 3).Status, b.At(3, 3).Team = Alive, Player2

	b.ClearTeam(Player1)
	b.ClearTeam(Player1)

	for i, c := range b.Cells() {
		if i == b.Index(3, 3) {
			if c.Status != Alive || c.Team != Player2 {
				t.Fatalf("opponent cell changed: %+v", c)
			}
			continue
		}
		if c.Status != Dead || c.Team != TeamNone {
			t.Fatalf("cell %d not cleared: %+v", i, c)
		}
	}
}

func TestDisplayEncodesTeams(t *testing.T) {
	b := NewBoard(4, 3)
	b.At(0, 0).Status, b.At(0, 0).Team = Alive, Player1
	b.At(1, 0).Status, b.At(1, 0).Team = Alive, Player2
	b.At(2, 0).Status = Alive
	b.At(3, 0).Team = Player1

	cells := b.Display(nil)
	want := []uint8{core.CellPlayer1, core.CellPlayer2, core.CellUnowned, core.CellDead}
	for i, v := range want {
		if cells[i] != v {
			t.Fatalf("display[%d] = %d, want %d", i, cells[i], v)
		}
	}
	if len(cells) != 12 {
		t.Fatalf("expected 12 display values, got %d", len(cells))
	}
}
