package lifewars

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"lifewars/internal/core"
)

func quietEngine(workers int) *Engine {
	var buf bytes.Buffer
	return NewEngine(workers, log.New(&buf, "", 0))
}

func set(b *Board, x, y int, team Team) {
	c := b.At(x, y)
	c.Status = Alive
	c.Team = team
}

func randomBoard(w, h int, seed int64) *Board {
	b := NewBoard(w, h)
	rng := core.NewRNG(seed)
	for i := range b.cells {
		switch rng.IntN(4) {
		case 0:
			b.cells[i].Status, b.cells[i].Team = Alive, Player1
		case 1:
			b.cells[i].Status, b.cells[i].Team = Alive, Player2
		}
	}
	return b
}

func TestCountNeighboursMatchesBruteForce(t *testing.T) {
	b := randomBoard(13, 9, 5)
	if err := b.countNeighbours(0, b.h); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			want := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if b.At(x+dx, y+dy).Status == Alive {
						want++
					}
				}
			}
			got := b.At(x, y).Neighbours
			if got != want || got < 0 || got > 8 {
				t.Fatalf("cell (%d,%d) counted %d neighbours, want %d", x, y, got, want)
			}
		}
	}
}

func TestRuleTable(t *testing.T) {
	cases := []struct {
		status Status
		count  int
		want   Status
	}{
		{Dead, 0, Dead}, {Alive, 0, Dead},
		{Dead, 1, Dead}, {Alive, 1, Dead},
		{Dead, 2, Dead}, {Alive, 2, Alive},
		{Dead, 3, Alive}, {Alive, 3, Alive},
		{Dead, 4, Dead}, {Alive, 4, Dead},
		{Alive, 6, Dead}, {Dead, 8, Dead}, {Alive, 8, Dead},
	}
	for _, c := range cases {
		b := NewBoard(3, 3)
		cell := b.At(1, 1)
		cell.Status = c.status
		cell.Neighbours = c.count
		if err := b.evaluateRules(1, 2); err != nil {
			t.Fatalf("status %d count %d: unexpected error %v", c.status, c.count, err)
		}
		if cell.Next != c.want {
			t.Fatalf("status %d count %d: next %d, want %d", c.status, c.count, cell.Next, c.want)
		}
		if cell.Status != c.status {
			t.Fatal("rule evaluation must not touch the current status")
		}
	}
}

func TestRuleEvaluationRejectsImpossibleCount(t *testing.T) {
	b := NewBoard(4, 4)
	set(b, 1, 1, Player2)
	b.At(2, 2).Neighbours = 9

	err := b.evaluateRules(0, b.h)
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
	var ie *InvariantError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InvariantError, got %T", err)
	}
	if ie.X != 2 || ie.Y != 2 || ie.Count != 9 {
		t.Fatalf("unexpected context %+v", ie)
	}
	if len(ie.Neighbours) != 1 || ie.Neighbours[0].Team != Player2 {
		t.Fatalf("expected the single living neighbour in the dump, got %+v", ie.Neighbours)
	}
	if !strings.Contains(err.Error(), "debug info for cell") {
		t.Fatalf("error text lacks the cell dump: %s", err)
	}
}

func TestParallelRuleEvaluationErrorLeavesBoardUncommitted(t *testing.T) {
	b := randomBoard(16, 12, 8)
	e := quietEngine(4)
	if err := e.forBands(b, b.countNeighbours); err != nil {
		t.Fatal(err)
	}
	before := append([]Cell(nil), b.cells...)
	b.At(5, 10).Neighbours = 11

	_, err := e.advance(b)
	var ie *InvariantError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InvariantError from a worker band, got %v", err)
	}
	if ie.X != 5 || ie.Y != 10 || ie.Count != 11 {
		t.Fatalf("unexpected context %+v", ie)
	}
	for i := range b.cells {
		if b.cells[i].Status != before[i].Status || b.cells[i].Team != before[i].Team {
			t.Fatalf("cell %d was committed after a failed step", i)
		}
	}
}

func TestBirthGoesToMajority(t *testing.T) {
	b := NewBoard(5, 5)
	set(b, 1, 1, Player1)
	set(b, 2, 1, Player1)
	set(b, 3, 1, Player2)

	stats, err := quietEngine(1).Step(b)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.At(2, 2); got.Status != Alive || got.Team != Player1 {
		t.Fatalf("birth at (2,2) = %+v, want alive Player1", *got)
	}
	if got := b.At(2, 0); got.Status != Alive || got.Team != Player1 {
		t.Fatalf("birth at (2,0) = %+v, want alive Player1", *got)
	}
	if stats.Births != 2 || len(stats.Conflicts) != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestBirthTieLeavesTeamUnresolved(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(1, log.New(&buf, "", 0))

	b := NewBoard(5, 5)
	set(b, 1, 1, Player1)
	set(b, 2, 1, Player2)
	set(b, 3, 1, TeamNone)

	stats, err := e.Step(b)
	if err != nil {
		t.Fatal(err)
	}
	got := b.At(2, 2)
	if got.Status != Alive || got.Team != TeamNone {
		t.Fatalf("tied birth = %+v, want alive with no team", *got)
	}
	if len(stats.Conflicts) != 2 {
		t.Fatalf("expected conflicts at (2,0) and (2,2), got %+v", stats.Conflicts)
	}
	c := stats.Conflicts[1]
	if c.X != 2 || c.Y != 2 || c.P1 != 1 || c.P2 != 1 {
		t.Fatalf("unexpected conflict %+v", c)
	}
	if !strings.Contains(buf.String(), "no birth team found for cell at (2,2)") {
		t.Fatalf("conflict not logged: %q", buf.String())
	}
}

func TestBirthWithNoOwnedNeighbours(t *testing.T) {
	b := NewBoard(5, 5)
	set(b, 1, 1, TeamNone)
	set(b, 2, 1, TeamNone)
	set(b, 3, 1, TeamNone)

	team, p1, p2 := b.birthTeam(b.Index(2, 2))
	if team != TeamNone || p1 != 0 || p2 != 0 {
		t.Fatalf("birthTeam = %v (%d/%d), want none 0/0", team, p1, p2)
	}
	if _, err := quietEngine(1).Step(b); err != nil {
		t.Fatal(err)
	}
}

func TestTeamConservation(t *testing.T) {
	b := randomBoard(24, 18, 11)
	e := quietEngine(1)
	for gen := 0; gen < 40; gen++ {
		stats, err := e.Step(b)
		if err != nil {
			t.Fatal(err)
		}
		if len(stats.Conflicts) != 0 {
			t.Fatalf("generation %d: unexpected conflicts on a fully owned board", gen)
		}
		for i, c := range b.Cells() {
			if (c.Team == TeamNone) != (c.Status == Dead) {
				t.Fatalf("generation %d: cell %d has status %d team %v", gen, i, c.Status, c.Team)
			}
		}
	}
}

func TestParallelStepMatchesSequential(t *testing.T) {
	seq := randomBoard(31, 23, 3)
	par := randomBoard(31, 23, 3)
	es, ep := quietEngine(1), quietEngine(4)
	for gen := 0; gen < 25; gen++ {
		if _, err := es.Step(seq); err != nil {
			t.Fatal(err)
		}
		if _, err := ep.Step(par); err != nil {
			t.Fatal(err)
		}
		for i := range seq.cells {
			a, c := seq.cells[i], par.cells[i]
			if a.Status != c.Status || a.Team != c.Team {
				t.Fatalf("generation %d: cell %d diverged: %+v vs %+v", gen, i, a, c)
			}
		}
	}
}

func TestBlinkerKeepsOwner(t *testing.T) {
	b := NewBoard(5, 5)
	set(b, 1, 2, Player1)
	set(b, 2, 2, Player1)
	set(b, 3, 2, Player1)

	if _, err := quietEngine(1).Step(b); err != nil {
		t.Fatal(err)
	}

	expects := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := b.At(x, y)
			if expects[[2]int{x, y}] {
				if c.Status != Alive || c.Team != Player1 {
					t.Fatalf("cell (%d,%d) = %+v, want alive Player1", x, y, *c)
				}
				continue
			}
			if c.Status != Dead || c.Team != TeamNone {
				t.Fatalf("cell (%d,%d) = %+v, want dead", x, y, *c)
			}
		}
	}

	scores := NewScoreTracker()
	if got := scores.Record(b); got != (Tally{P1: 3, P2: 0}) {
		t.Fatalf("score = %+v, want 3/0", got)
	}
}

func TestThreeByThreeTorusFillsFromBlinker(t *testing.T) {
	// On a 3x3 torus every cell neighbours every other cell, so a row of
	// three gives each live cell 2 neighbours and each dead cell 3.
	b := NewBoard(3, 3)
	set(b, 0, 1, Player1)
	set(b, 1, 1, Player1)
	set(b, 2, 1, Player1)

	stats, err := quietEngine(1).Step(b)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Births != 6 || stats.Deaths != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if got := Count(b); got != (Tally{P1: 9}) {
		t.Fatalf("score = %+v, want 9/0", got)
	}
}
