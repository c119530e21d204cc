package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"lifewars/internal/lif"
	"lifewars/internal/sims/lifewars"

	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sync/semaphore"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// parseOverrides splits key=value pairs into a map for Config.Override.
func parseOverrides(list kvList) (map[string]string, error) {
	out := make(map[string]string, len(list))
	for _, kv := range list {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid override %q, want key=value", kv)
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}

type seedResult struct {
	seed    int64
	summary lifewars.Summary
	err     error
}

func main() {
	cfg := lifewars.DefaultConfig()
	cfg.GamesPerSession = 1
	cfg.GenerationsPerGame = 1000
	seeds := flag.Int("seeds", 16, "number of seeds to play")
	first := flag.Int64("first-seed", 1, "first seed; seeds are consecutive")
	parallel := flag.Int("parallel", defaultWorkers(), "sessions played in parallel")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form, keys as in lifewars flags (repeatable)")
	flag.Parse()

	kv, err := parseOverrides(overrides)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = cfg.Override(kv)

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: lifewars-sweep [flags] player1.lif player2.lif")
		os.Exit(1)
	}
	var pats [2][]lif.Point
	for i, path := range flag.Args() {
		if pats[i], err = lif.ReadFile(path, cfg.MaxPatternLines); err != nil {
			fmt.Fprintf(os.Stderr, "player %d: %v\n", i+1, err)
			os.Exit(1)
		}
	}

	list := make([]int64, *seeds)
	for i := range list {
		list[i] = *first + int64(i)
	}

	fmt.Printf("Sweeping %d seeds (%d in parallel, %d games x %d generations)\n",
		len(list), *parallel, cfg.GamesPerSession, cfg.GenerationsPerGame)
	results := sweep(context.Background(), cfg, pats[0], pats[1], list, *parallel)
	if failed := report(os.Stdout, results); failed > 0 {
		log.Fatalf("%d seeds failed", failed)
	}
}

// defaultWorkers sizes the pool from the logical CPU count of the host.
func defaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// sweep plays one headless session per seed with at most workers running at
// once. Results are returned in seed order.
func sweep(ctx context.Context, cfg lifewars.Config, p1, p2 []lif.Point, seeds []int64, workers int) []seedResult {
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	results := make([]seedResult, len(seeds))
	quiet := log.New(io.Discard, "", 0)

	for i, seed := range seeds {
		results[i].seed = seed
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i].err = err
			continue
		}
		go func(i int, seed int64) {
			defer sem.Release(1)
			c := cfg
			c.Seed = seed
			s := lifewars.NewSession(c, p1, p2, io.Discard, quiet)
			results[i].summary, results[i].err = s.Run(ctx, nil)
		}(i, seed)
	}
	// Wait for the stragglers by taking the whole pool.
	if err := sem.Acquire(context.Background(), int64(workers)); err == nil {
		sem.Release(int64(workers))
	}
	return results
}

// report prints one line per seed plus the win counts and returns the number
// of failed seeds.
func report(w io.Writer, results []seedResult) int {
	wins := map[lifewars.Team]int{}
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "  seed %d: error: %v\n", r.seed, r.err)
			continue
		}
		wins[r.summary.Winner]++
		winner := "draw"
		if r.summary.Winner != lifewars.TeamNone {
			winner = r.summary.Winner.String()
		}
		fmt.Fprintf(w, "  seed %d: P1 %d  P2 %d  -> %s\n", r.seed, r.summary.Total.P1, r.summary.Total.P2, winner)
	}
	fmt.Fprintf(w, "\nPlayer 1 wins %d, Player 2 wins %d, draws %d\n",
		wins[lifewars.Player1], wins[lifewars.Player2], wins[lifewars.TeamNone])
	return failed
}
