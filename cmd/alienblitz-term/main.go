// Command alienblitz-term 在终端中运行 Alien Blitz
//
// 用法:
//
//	go run ./cmd/alienblitz-term [--verbose] [--config file.toml] [--seed 42]
//
// 空格投弹，Esc 或 Ctrl-C 退出。--verbose 时日志写到 stderr，
// 可重定向（2>game.log）保持画面干净。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/alienblitz/pkg/audio"
	"github.com/decker502/alienblitz/pkg/audio/speaker"
	"github.com/decker502/alienblitz/pkg/config"
	"github.com/decker502/alienblitz/pkg/game"
	"github.com/decker502/alienblitz/pkg/systems"
	"github.com/decker502/alienblitz/pkg/terminal"
	"github.com/decker502/alienblitz/pkg/utils"
)

const frameInterval = time.Second / 30

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging to stderr")
	configPath := flag.String("config", "", "Config file (.yaml, .yml or .toml) applied over the defaults")
	seed := flag.Int64("seed", 0, "Random seed for tower generation (0 = time based)")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if err := run(*configPath, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "alienblitz-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64) error {
	cfg, err := config.LoadStartupConfig(configPath)
	if err != nil {
		return err
	}

	var sounds game.SoundPlayer = game.SilentPlayer{}
	if cfg.Sound.Enabled {
		output, err := speaker.New()
		if err != nil {
			log.Printf("[Terminal] Audio unavailable, playing silently: %v", err)
		} else {
			defer output.Close()
			sounds = game.NewAudioManager(audio.LoadBank(cfg.Sound.Dir, cfg.Sound.Clips), output, cfg.Sound)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	loop := systems.NewGameLoop(game.NewGameState(cfg), utils.NewRand(seed), sounds)
	loop.Start()

	terminal.NewRunner(screen, loop, frameInterval).Run()
	return nil
}
