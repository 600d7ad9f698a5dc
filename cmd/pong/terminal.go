package main

import (
	"context"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/pong/internal/application/session"
	"github.com/younwookim/pong/internal/infrastructure/config"
	"github.com/younwookim/pong/internal/render/term"
)

// newTerminalSession creates a session that does not log.
// The terminal owns stderr while tcell is drawing, so log lines would be
// printed over the court.
func newTerminalSession(cfg *config.Config, seed int64) *session.Session {
	return session.New(cfg, rand.New(rand.NewSource(seed)), session.WithLogger(log.New(io.Discard, "", 0)))
}

func runTerminal(cfg *config.Config, seed int64) {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create terminal screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.NewHost(screen, newTerminalSession(cfg, seed), cfg).Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
