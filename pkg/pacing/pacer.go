// Package pacing holds the inter-frame delay of the host loops.
package pacing

import (
	"context"
	"time"
)

// Pacer pauses a loop for a fixed Delay between frames.
type Pacer struct {
	Delay time.Duration
}

// New returns a Pacer waiting delay between frames.
func New(delay time.Duration) *Pacer {
	return &Pacer{Delay: delay}
}

// Wait blocks until the full Delay has elapsed without interruption.
// Every value received on interrupts restarts the whole Delay; a partial wait
// is never resumed. Interrupts are not errors: Wait only fails with ctx.Err()
// when ctx is done. A nil interrupts channel is never ready.
func (p *Pacer) Wait(ctx context.Context, interrupts <-chan struct{}) error {
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		case <-interrupts:
			timer.Reset(p.Delay)
		}
	}
}
