package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pong/internal/application/game"
	"github.com/younwookim/pong/internal/application/session"
	"github.com/younwookim/pong/internal/infrastructure/config"
	ebitenrender "github.com/younwookim/pong/internal/render/ebiten"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "TOML file overriding built-in settings (e.g., -config local.toml)")
	termFlag := flag.Bool("term", false, "Play in the terminal instead of a window")
	replayFlag := flag.String("replay", "", "Run a replay file headless and log the outcome")
	seedFlag := flag.Int64("seed", 0, "Random seed for ball deflection (0 = time based)")
	flag.Parse()

	// Load configuration using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadWithOverrides(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		res, err := runReplay(cfg, *replayFlag, log.Default())
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("Replay finished: %d frames, state %s, quit %t", res.Frames, res.State, res.Quit)
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Seed: %d", seed)

	if *termFlag {
		runTerminal(cfg, seed)
		return
	}
	runWindow(cfg, session.New(cfg, rand.New(rand.NewSource(seed))))
}

func runWindow(cfg *config.Config, sess *session.Session) {
	renderer, err := ebitenrender.New()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	g := game.New(sess, renderer, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDT(cfg.DT())

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
