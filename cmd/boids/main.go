// Command boids runs the flock in the terminal.
//
// Usage:
//
//	boids [config_file]
//
// The optional argument is a .json or .toml config file. Esc, q or Ctrl-C quit.
// The heartbeat goes to the log file (boids.log unless logFile is set) since
// the screen owns the terminal.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/observability"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/render"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/simulation"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultLogFile = "boids.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := simulation.ConfigFromArgs(os.Args[0], os.Args[1:])
	if err != nil {
		return err
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = defaultLogFile
	}
	logger, cleanup, err := observability.NewLogger(observability.LogConfig{
		Level:      cfg.LogLevel,
		File:       logFile,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	})
	if err != nil {
		return err
	}
	defer cleanup()
	logger = logger.With(zap.String("run", uuid.NewString()))

	// The only random source of the run, seeded once.
	seed := uint64(time.Now().UnixNano())
	flock, err := cfg.NewFlock(rand.New(rand.NewPCG(seed, seed>>32|1)))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	interrupts := make(chan struct{}, 1)
	runner := simulation.NewRunner(cfg, flock, render.NewTerminalCanvas(screen, cfg.Bounds()), logger)
	runner.Interrupts = interrupts
	logger.Info("terminal ready", zap.Uint64("seed", seed))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		simulation.PumpTerminalEvents(ctx, screen, interrupts, quit)
		return nil
	})
	g.Go(func() error {
		simulation.WakeOnDone(ctx, screen)
		return nil
	})
	g.Go(func() error {
		defer quit()
		return runner.Run(ctx)
	})
	err = g.Wait()
	logger.Info("simulation stopped", zap.Uint64("ticks", runner.Ticks()))
	return err
}
