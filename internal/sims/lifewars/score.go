package lifewars

import (
	"fmt"
	"io"
)

// Tally holds a per-team cell count.
type Tally struct {
	P1, P2 int
}

// Add returns the element-wise sum.
func (t Tally) Add(o Tally) Tally { return Tally{P1: t.P1 + o.P1, P2: t.P2 + o.P2} }

// Winner returns the team with the strict majority, or TeamNone on a draw.
func (t Tally) Winner() Team {
	switch {
	case t.P1 > t.P2:
		return Player1
	case t.P2 > t.P1:
		return Player2
	default:
		return TeamNone
	}
}

// Count returns the live cells owned by each team. It does not modify b.
func Count(b *Board) Tally {
	var t Tally
	for i := range b.cells {
		c := &b.cells[i]
		if c.Status != Alive {
			continue
		}
		switch c.Team {
		case Player1:
			t.P1++
		case Player2:
			t.P2++
		}
	}
	return t
}

// GameResult is the outcome of one game.
type GameResult struct {
	Game        int
	Generations int
	Score       Tally
	Winner      Team
}

// Summary aggregates every finished game of a session.
type Summary struct {
	Games  []GameResult
	Total  Tally
	Winner Team
}

// ScoreTracker accumulates live-cell-generations per team for the current
// game and across the session.
type ScoreTracker struct {
	generations int
	current     Tally
	total       Tally
	results     []GameResult
}

// NewScoreTracker returns an empty tracker.
func NewScoreTracker() *ScoreTracker { return &ScoreTracker{} }

// Record adds the live cells of a committed generation to the current game
// and returns that generation's count.
func (s *ScoreTracker) Record(b *Board) Tally {
	live := Count(b)
	s.current = s.current.Add(live)
	s.generations++
	return live
}

// Current returns the running totals of the game in progress.
func (s *ScoreTracker) Current() Tally { return s.current }

// Generations returns the number of generations recorded in the current game.
func (s *ScoreTracker) Generations() int { return s.generations }

// EndGame closes the current game, folds it into the session totals and
// resets the per-game counters.
func (s *ScoreTracker) EndGame() GameResult {
	res := GameResult{
		Game:        len(s.results) + 1,
		Generations: s.generations,
		Score:       s.current,
		Winner:      s.current.Winner(),
	}
	s.results = append(s.results, res)
	s.total = s.total.Add(s.current)
	s.current = Tally{}
	s.generations = 0
	return res
}

// Summary returns the aggregate over all finished games.
func (s *ScoreTracker) Summary() Summary {
	return Summary{
		Games:  append([]GameResult(nil), s.results...),
		Total:  s.total,
		Winner: s.total.Winner(),
	}
}

// WriteHeader prints the column header of the results table.
func WriteHeader(w io.Writer) {
	fmt.Fprintf(w, "%4s %9s %9s  %s\n", "game", "P1", "P2", "Winner")
}

// WriteGame prints one row of the results table.
func WriteGame(w io.Writer, r GameResult) {
	winner := "Draw"
	if r.Winner != TeamNone {
		winner = r.Winner.String()
	}
	fmt.Fprintf(w, "%4d %9d %9d  %s\n", r.Game, r.Score.P1, r.Score.P2, winner)
}

// WriteSummary prints the final comparison over all games.
func WriteSummary(w io.Writer, s Summary) {
	switch s.Winner {
	case Player1:
		fmt.Fprintf(w, "\n%s wins by %d cells to %d cells\n\n", s.Winner, s.Total.P1, s.Total.P2)
	case Player2:
		fmt.Fprintf(w, "\n%s wins by %d cells to %d cells\n\n", s.Winner, s.Total.P2, s.Total.P1)
	default:
		fmt.Fprintf(w, "\ndraw, %d cells to %d cells\n\n", s.Total.P1, s.Total.P2)
	}
}
