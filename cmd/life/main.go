//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"sparselife/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := app.New(cfg)

	ebiten.SetWindowTitle("sparselife")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)

	err := ebiten.RunGame(game)
	// Shutdown persists the snapshot and stops the worker on every exit
	// path, including window close; log.Fatal would skip a defer.
	game.Shutdown()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
