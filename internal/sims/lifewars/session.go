package lifewars

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"lifewars/internal/core"
	"lifewars/internal/lif"
)

// Session plays the configured number of games between two patterns on a
// single board. It is not safe for concurrent use.
type Session struct {
	cfg      Config
	board    *Board
	engine   *Engine
	loader   *Loader
	scores   *ScoreTracker
	patterns [2][]lif.Point
	out      io.Writer

	game       int
	generation int
	live       Tally
	total      Tally
	last       StepStats
	display    []uint8
	started    bool
	finished   bool
	rollover   bool
}

// NewSession prepares a session. Results are written to out; birth conflicts
// go to logger (log.Default() when nil).
func NewSession(cfg Config, p1, p2 []lif.Point, out io.Writer, logger *log.Logger) *Session {
	cfg = cfg.normalized()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if out == nil {
		out = io.Discard
	}
	return &Session{
		cfg:      cfg,
		board:    NewBoard(cfg.Width, cfg.Height),
		engine:   NewEngine(cfg.Workers, logger),
		loader:   NewLoader(core.NewRNG(seed), cfg.MaxAttempts),
		scores:   NewScoreTracker(),
		patterns: [2][]lif.Point{p1, p2},
		out:      out,
	}
}

// Board exposes the board for read-only inspection between ticks.
func (s *Session) Board() *Board { return s.board }

// Done reports whether every configured game has been played or the session
// was stopped.
func (s *Session) Done() bool { return s.finished }

// Start prints the table header and seeds the first game.
func (s *Session) Start() error {
	if s.started {
		return nil
	}
	s.started = true
	WriteHeader(s.out)
	return s.startGame()
}

func (s *Session) startGame() error {
	s.game++
	s.generation = 0
	s.total = Tally{}
	s.last = StepStats{}
	s.board.Clear()
	for i, team := range []Team{Player1, Player2} {
		if _, err := s.loader.Load(s.board, team, s.patterns[i]); err != nil {
			return fmt.Errorf("game %d: %w", s.game, err)
		}
	}
	s.live = Count(s.board)
	return nil
}

// Tick advances one generation and scores it. When the game reaches its
// generation limit the result row is printed and the final generation stays
// on the board; the next Tick seeds the following game without stepping.
// After the last game the summary is printed and Done turns true.
func (s *Session) Tick() error {
	if s.finished {
		return nil
	}
	if !s.started {
		if err := s.Start(); err != nil {
			return err
		}
	}
	if s.rollover {
		s.rollover = false
		return s.startGame()
	}
	stats, err := s.engine.Step(s.board)
	if err != nil {
		return fmt.Errorf("game %d generation %d: %w", s.game, s.generation+1, err)
	}
	s.last = stats
	s.live = s.scores.Record(s.board)
	s.generation = s.scores.Generations()
	s.total = s.scores.Current()
	if s.generation < s.cfg.GenerationsPerGame {
		return nil
	}
	WriteGame(s.out, s.scores.EndGame())
	if s.game >= s.cfg.GamesPerSession {
		s.finish()
		return nil
	}
	s.rollover = true
	return nil
}

// Stop ends the session early. The game in progress is scored over the
// generations it ran. Calling Stop on a finished session only returns the
// summary.
func (s *Session) Stop() Summary {
	if !s.finished {
		if s.scores.Generations() > 0 {
			WriteGame(s.out, s.scores.EndGame())
		}
		s.finish()
	}
	return s.scores.Summary()
}

func (s *Session) finish() {
	s.finished = true
	WriteSummary(s.out, s.scores.Summary())
}

// Frame snapshots the committed board state for presentation.
func (s *Session) Frame() core.Frame {
	s.display = s.board.Display(s.display)
	return core.Frame{
		Size:       s.board.Size(),
		Cells:      s.display,
		Game:       s.game,
		Generation: s.generation,
		Live:       [2]int{s.live.P1, s.live.P2},
		Total:      [2]int{s.total.P1, s.total.P2},
		Births:     s.last.Births,
		Deaths:     s.last.Deaths,
		Conflicts:  len(s.last.Conflicts),
	}
}

// Run drives the session until the game limits are reached, p reports
// termination or ctx is cancelled. Every tick is rendered, including the last
// generation of each game. Termination is only checked between ticks. A nil
// presenter runs headless.
func (s *Session) Run(ctx context.Context, p core.Presenter) (Summary, error) {
	if err := s.Start(); err != nil {
		return Summary{}, err
	}
	if p != nil {
		p.Render(s.Frame())
	}
	for !s.finished {
		if ctx.Err() != nil || (p != nil && p.Terminated()) {
			break
		}
		if err := s.Tick(); err != nil {
			return Summary{}, err
		}
		if p != nil {
			p.Render(s.Frame())
		}
	}
	return s.Stop(), nil
}
