package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/younwookim/pong/internal/application/replay"
	"github.com/younwookim/pong/internal/application/session"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

// runReplay plays a recorded input file against a fresh session without
// opening a window. The replay's seed drives ball deflection.
func runReplay(cfg *config.Config, path string, logger *log.Logger) (replay.Result, error) {
	data, err := replay.LoadFile(path)
	if err != nil {
		return replay.Result{}, err
	}

	logger.Printf("Replaying %s: %d frames (seed: %d)", path, len(data.Frames), data.Seed)

	sess := session.New(cfg, rand.New(rand.NewSource(data.Seed)), session.WithLogger(logger))
	res, err := replay.NewReplayer(*data).Play(sess, cfg.DT())
	if err != nil {
		return res, fmt.Errorf("replay %s: %w", path, err)
	}
	return res, nil
}
