package simulation

import (
	"context"
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/pacing"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/render"
	"go.uber.org/zap"
)

// Runner is the single-threaded host loop. It owns the current flock and
// replaces it wholesale on every tick.
type Runner struct {
	Settings behavior.Settings
	Canvas   render.Canvas
	Radius   int
	Pacer    *pacing.Pacer
	Logger   *zap.Logger

	// Interrupts restart the inter-frame delay, see pacing.Pacer.Wait.
	Interrupts <-chan struct{}
	// Steps stops the loop after that many ticks, 0 runs until cancelled.
	Steps uint64

	flock behavior.Flock
	tick  uint64
}

// NewRunner prepares a loop rendering flock on canvas with the parameters of cfg.
func NewRunner(cfg *Config, flock behavior.Flock, canvas render.Canvas, logger *zap.Logger) *Runner {
	return &Runner{
		Settings: cfg.Settings(),
		Canvas:   canvas,
		Radius:   cfg.DrawRadius,
		Pacer:    pacing.New(cfg.TickDelayDuration()),
		Logger:   logger,
		flock:    flock,
	}
}

// Run loops on render, tick, wait and heartbeat until ctx is done (which is
// a normal stop and returns nil), Steps is reached, or a tick fails.
func (r *Runner) Run(ctx context.Context) error {
	r.Logger.Info("starting flock", zap.Int("boids", len(r.flock)), zap.Duration("delay", r.Pacer.Delay))

	for r.Steps == 0 || r.tick < r.Steps {
		render.DrawFlock(r.Canvas, r.flock, r.Radius)

		next, err := behavior.Tick(r.Settings, r.flock)
		if err != nil {
			return fmt.Errorf("tick %d: %w", r.tick+1, err)
		}
		r.flock = next
		r.tick++

		if err := r.Pacer.Wait(ctx, r.Interrupts); err != nil {
			r.Logger.Info("flock stopped", zap.Uint64("tick", r.tick), zap.Error(err))
			return nil
		}
		r.Logger.Info("tick", zap.Uint64("tick", r.tick))
	}
	return nil
}

// Flock returns the current flock.
func (r *Runner) Flock() behavior.Flock {
	return r.flock
}

// Ticks returns the number of ticks computed so far.
func (r *Runner) Ticks() uint64 {
	return r.tick
}
