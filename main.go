package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/alienblitz/pkg/app"
	"github.com/decker502/alienblitz/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	configPath := flag.String("config", "", "Config file (.yaml, .yml or .toml) applied over the defaults")
	seed := flag.Int64("seed", 0, "Random seed for tower generation (0 = time based)")
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	width, height := game.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.WindowTitle())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
