//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"lifewars/internal/app"
	"lifewars/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := mustOptions()
	session := mustSession(opts, os.Stdout, log.Default())
	if opts.headless {
		os.Exit(runHeadless(session))
	}
	if err := session.Start(); err != nil {
		log.Fatal(err)
	}

	game := app.New(session, opts.scale)
	size := session.Board().Size()

	ebiten.SetWindowTitle("Life Wars")
	ebiten.SetTPS(opts.tps)
	ebiten.SetWindowSize(size.W*opts.scale+ui.PanelWidth, size.H*opts.scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	session.Stop()
}
