package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/observability"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	cfg, err := simulation.ConfigFromArgs(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger, cleanup, err := observability.NewLogger(observability.LogConfig{
		Level:      cfg.LogLevel,
		Console:    true,
		File:       cfg.LogFile,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()
	logger = logger.With(zap.String("run", uuid.NewString()))

	// The only random source of the run, seeded once.
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>32|1))
	flock, err := cfg.NewFlock(rng)
	if err != nil {
		logger.Fatal("cannot create flock", zap.Error(err))
	}

	system, err := actor.NewActorSystem("boids",
		actor.WithLogger(observability.NewActorLogger(logger.Named("actor"))))
	if err != nil {
		logger.Fatal("cannot create actor system", zap.Error(err))
	}
	if err := system.Start(ctx); err != nil {
		logger.Fatal("cannot start actor system", zap.Error(err))
	}
	defer system.Stop(ctx)

	game, err := simulation.GetNewGame(ctx, cfg, system, flock)
	if err != nil {
		logger.Fatal("cannot create game", zap.Error(err))
	}

	logger.Info("opening window",
		zap.Int("boids", len(flock)),
		zap.Float64("width", cfg.WorldWidth),
		zap.Float64("height", cfg.WorldHeight),
		zap.Uint64("seed", seed))

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids")
	ebiten.SetTPS(cfg.TicksPerSecond())
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game stopped", zap.Error(err))
	}
}
