package lifewars

import (
	"lifewars/internal/core"
	"lifewars/internal/lif"
)

// Place marks each point, shifted by (dx, dy) and wrapped onto the board, as
// alive and owned by team. Points landing on an already living cell are
// counted as collisions and leave that cell untouched.
func (b *Board) Place(pts []lif.Point, dx, dy int, team Team) int {
	collisions := 0
	for _, p := range pts {
		c := b.At(p.X+dx, p.Y+dy)
		if c.Status == Alive {
			collisions++
			continue
		}
		c.Status = Alive
		c.Team = team
	}
	return collisions
}

// Loader places player patterns at random offsets.
type Loader struct {
	rng         *core.RNG
	maxAttempts int
}

// NewLoader returns a Loader drawing offsets from rng and giving up after
// maxAttempts collided placements.
func NewLoader(rng *core.RNG, maxAttempts int) *Loader {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Loader{rng: rng, maxAttempts: maxAttempts}
}

// Load places pts for team at a fresh random offset, clearing the team and
// retrying whenever the placement collides. It returns the number of attempts
// used, or a *PlacementError once the budget is spent.
func (l *Loader) Load(b *Board, team Team, pts []lif.Point) (int, error) {
	collisions := 0
	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		dx := l.rng.IntN(b.w)
		dy := l.rng.IntN(b.h)
		collisions = b.Place(pts, dx, dy, team)
		if collisions == 0 {
			return attempt, nil
		}
		b.ClearTeam(team)
	}
	return l.maxAttempts, &PlacementError{Team: team, Attempts: l.maxAttempts, Collisions: collisions}
}
