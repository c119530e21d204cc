//go:build !ebiten

package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"lifewars/internal/term"
)

// Without the ebiten tag the game is shown in the terminal. Output produced
// while the screen is active is held back until the terminal is restored.
func main() {
	opts := mustOptions()
	if opts.headless {
		os.Exit(runHeadless(mustSession(opts, os.Stdout, log.Default())))
	}

	var out, logs bytes.Buffer
	session := mustSession(opts, &out, log.New(&logs, "", log.LstdFlags))
	p, err := term.New(opts.tps)
	if err != nil {
		os.Stdout.Write(out.Bytes())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_, runErr := session.Run(context.Background(), p)
	p.Close()

	os.Stderr.Write(logs.Bytes())
	os.Stdout.Write(out.Bytes())
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}
