package lifewars

import (
	"log"

	"golang.org/x/sync/errgroup"
)

// StepStats summarises one generation tick.
type StepStats struct {
	Births    int
	Deaths    int
	Conflicts []BirthConflict
}

// Engine advances a board one generation at a time. Neighbour counting and
// rule evaluation are split into row bands across workers; team resolution
// and commit always run on the calling goroutine after both have finished.
type Engine struct {
	workers int
	logger  *log.Logger
}

// NewEngine returns an engine using up to workers goroutines for the
// per-cell phases. A nil logger falls back to log.Default().
func NewEngine(workers int, logger *log.Logger) *Engine {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{workers: workers, logger: logger}
}

// Step runs one generation: count, evaluate, resolve teams, commit. An
// *InvariantError leaves the board uncommitted and must be treated as fatal
// for the run.
func (e *Engine) Step(b *Board) (StepStats, error) {
	if err := e.forBands(b, b.countNeighbours); err != nil {
		return StepStats{}, err
	}
	return e.advance(b)
}

// advance runs the phases after counting against the stored counts.
func (e *Engine) advance(b *Board) (StepStats, error) {
	if err := e.forBands(b, b.evaluateRules); err != nil {
		return StepStats{}, err
	}
	stats := b.resolveTeams()
	for _, c := range stats.Conflicts {
		e.logger.Print(c)
	}
	b.commit()
	return stats, nil
}

func (e *Engine) forBands(b *Board, fn func(y0, y1 int) error) error {
	if e.workers == 1 || b.h < 2 {
		return fn(0, b.h)
	}
	rows := (b.h + e.workers - 1) / e.workers
	var eg errgroup.Group
	for y0 := 0; y0 < b.h; y0 += rows {
		y1 := min(y0+rows, b.h)
		eg.Go(func() error { return fn(y0, y1) })
	}
	return eg.Wait()
}

// countNeighbours sums the current status of the eight neighbours of every
// cell in rows [y0, y1). Only Neighbours is written.
func (b *Board) countNeighbours(y0, y1 int) error {
	for i := y0 * b.w; i < y1*b.w; i++ {
		c := &b.cells[i]
		n := 0
		for _, a := range c.adj {
			if b.cells[a].Status == Alive {
				n++
			}
		}
		c.Neighbours = n
	}
	return nil
}

// evaluateRules sets Next for rows [y0, y1):
//
//	survive: 2,3   neighbours, self alive
//	die:     0,1,4-8 neighbours
//	born:    3     neighbours, self dead
func (b *Board) evaluateRules(y0, y1 int) error {
	for i := y0 * b.w; i < y1*b.w; i++ {
		c := &b.cells[i]
		switch c.Neighbours {
		case 0, 1:
			c.Next = Dead
		case 2:
			c.Next = c.Status
		case 3:
			c.Next = Alive
		case 4, 5, 6, 7, 8:
			c.Next = Dead
		default:
			self, living := b.snapshot(i)
			return &InvariantError{
				X:          self.X,
				Y:          self.Y,
				Count:      c.Neighbours,
				Cell:       self,
				Neighbours: living,
			}
		}
	}
	return nil
}

// resolveTeams assigns births to the majority team among living neighbours
// and clears the team of every cell that will be dead. Births are resolved in
// a full pass before any team is cleared so every birth sees the same
// pre-commit neighbourhood.
func (b *Board) resolveTeams() StepStats {
	var stats StepStats
	for i := range b.cells {
		c := &b.cells[i]
		if c.Status != Dead || c.Next != Alive {
			continue
		}
		stats.Births++
		team, p1, p2 := b.birthTeam(i)
		c.Team = team
		if team == TeamNone {
			self, living := b.snapshot(i)
			stats.Conflicts = append(stats.Conflicts, BirthConflict{
				X:          self.X,
				Y:          self.Y,
				P1:         p1,
				P2:         p2,
				Cell:       self,
				Neighbours: living,
			})
		}
	}
	for i := range b.cells {
		c := &b.cells[i]
		if c.Next != Dead {
			continue
		}
		if c.Status == Alive {
			stats.Deaths++
		}
		c.Team = TeamNone
	}
	return stats
}

func (b *Board) birthTeam(i int) (Team, int, int) {
	p1, p2 := 0, 0
	for _, a := range b.cells[i].adj {
		n := &b.cells[a]
		if n.Status != Alive {
			continue
		}
		switch n.Team {
		case Player1:
			p1++
		case Player2:
			p2++
		}
	}
	switch {
	case p1 > p2:
		return Player1, p1, p2
	case p2 > p1:
		return Player2, p1, p2
	default:
		return TeamNone, p1, p2
	}
}

func (b *Board) commit() {
	for i := range b.cells {
		b.cells[i].Status = b.cells[i].Next
	}
}
