package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"lifewars/internal/sims/lifewars"
)

// runHeadless plays every game without a display; Ctrl-C ends the session at
// the next generation boundary. It returns the process exit code.
func runHeadless(session *lifewars.Session) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if _, err := session.Run(ctx, nil); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}
