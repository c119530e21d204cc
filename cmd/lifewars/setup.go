package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"lifewars/internal/lif"
	"lifewars/internal/sims/lifewars"
)

type options struct {
	cfg      lifewars.Config
	tps      int
	scale    int
	headless bool
	files    []string
}

func parseOptions(args []string) (options, error) {
	opts := options{cfg: lifewars.DefaultConfig(), tps: 20, scale: 3}
	fs := flag.NewFlagSet("lifewars", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: lifewars [flags] player1.lif player2.lif")
		fs.PrintDefaults()
	}
	opts.cfg.Bind(fs)
	fs.IntVar(&opts.tps, "tps", opts.tps, "generations per second (0 runs unpaced)")
	fs.IntVar(&opts.scale, "scale", opts.scale, "pixel scale multiplier")
	fs.BoolVar(&opts.headless, "headless", opts.headless, "play without any display")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return opts, fmt.Errorf("invalid number of arguments supplied: want 2 pattern files, got %d", fs.NArg())
	}
	opts.files = fs.Args()
	return opts, nil
}

// mustOptions parses the command line, exiting with status 1 on a usage error.
func mustOptions() options {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return opts
}

// mustSession reads both pattern files, exiting with status 1 when either is
// missing or malformed.
func mustSession(opts options, out io.Writer, logger *log.Logger) *lifewars.Session {
	var err error
	var pats [2][]lif.Point
	for i, path := range opts.files {
		pats[i], err = lif.ReadFile(path, opts.cfg.MaxPatternLines)
		if err != nil {
			fmt.Fprintf(os.Stderr, "player %d: %v\n", i+1, err)
			os.Exit(1)
		}
	}

	fmt.Fprintf(out, "\nLIFE WARS\n\n")
	fmt.Fprintf(out, "(Any lines after line %d in a .lif file will be discarded)\n\n", opts.cfg.MaxPatternLines)
	return lifewars.NewSession(opts.cfg, pats[0], pats[1], out, logger)
}
