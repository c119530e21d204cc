package lifewars

import (
	"flag"
	"strconv"
)

// Config controls board dimensions, game lengths and pattern loading.
type Config struct {
	Width  int
	Height int

	GenerationsPerGame int
	GamesPerSession    int

	MaxPatternLines int
	MaxAttempts     int

	Workers int
	Seed    int64
}

// DefaultConfig returns the standard configuration: an 800x600 window of
// 3px cells, 5000 generations per game and 50 games.
func DefaultConfig() Config {
	return Config{
		Width:              266,
		Height:             200,
		GenerationsPerGame: 5000,
		GamesPerSession:    50,
		MaxPatternLines:    2300,
		MaxAttempts:        1000,
		Workers:            1,
	}
}

// Override applies flag-style key/value pairs on top of c. Keys match the
// flag names registered by Bind; unknown keys and unparsable values are
// ignored.
func (c Config) Override(kv map[string]string) Config {
	ints := map[string]*int{
		"width":        &c.Width,
		"height":       &c.Height,
		"generations":  &c.GenerationsPerGame,
		"games":        &c.GamesPerSession,
		"max-lines":    &c.MaxPatternLines,
		"max-attempts": &c.MaxAttempts,
		"workers":      &c.Workers,
	}
	for k, v := range kv {
		if k == "seed" {
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				c.Seed = parsed
			}
			continue
		}
		dst, ok := ints[k]
		if !ok {
			continue
		}
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
	return c.normalized()
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.GenerationsPerGame, "generations", c.GenerationsPerGame, "generations per game")
	fs.IntVar(&c.GamesPerSession, "games", c.GamesPerSession, "games per session")
	fs.IntVar(&c.MaxPatternLines, "max-lines", c.MaxPatternLines, "coordinate lines read from each pattern file")
	fs.IntVar(&c.MaxAttempts, "max-attempts", c.MaxAttempts, "placement attempts before a colliding pattern is rejected")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used for neighbour counting and rule evaluation")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for pattern offsets (0 picks one from the clock)")
}

// normalized raises out-of-range values to their minimums. Boards narrower
// than 3 cells would alias a cell with its own neighbours.
func (c Config) normalized() Config {
	if c.Width < 3 {
		c.Width = 3
	}
	if c.Height < 3 {
		c.Height = 3
	}
	if c.GenerationsPerGame < 1 {
		c.GenerationsPerGame = 1
	}
	if c.GamesPerSession < 1 {
		c.GamesPerSession = 1
	}
	if c.MaxPatternLines < 0 {
		c.MaxPatternLines = 0
	}
	if c.MaxAttempts < 1 {
		c.MaxAttempts = 1
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c
}
