package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/render"
	"github.com/tochemey/goakt/v3/actor"
)

// Game is the ebiten front end: it draws the latest snapshot and asks the
// flock actor for the next tick on every Update.
type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	flockPID   *actor.PID
	snapshotCh chan *Snapshot
	lastState  *Snapshot

	cfg *Config

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// GetNewGame spawns the flock actor on system and wires it to a new Game.
func GetNewGame(ctx context.Context, cfg *Config, system actor.ActorSystem, flock behavior.Flock) (*Game, error) {
	// Buffer to avoid blocking the actor
	snapshotCh := make(chan *Snapshot, 10)

	flockPID, err := system.Spawn(ctx, "flock", NewFlockActor(cfg, flock, snapshotCh))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn flock: %w", err)
	}

	return &Game{
		ctx:        ctx,
		System:     system,
		flockPID:   flockPID,
		snapshotCh: snapshotCh,
		lastState:  &Snapshot{Flock: flock},
		cfg:        cfg,
	}, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	g.drainSnapshots()

	// Trigger Simulation Step
	if err := actor.Tell(g.ctx, g.flockPID, &Step{}); err != nil {
		return fmt.Errorf("failed to step flock: %w", err)
	}
	return nil
}

// drainSnapshots keeps the most recent snapshot without blocking.
func (g *Game) drainSnapshots() {
	for {
		select {
		case snap := <-g.snapshotCh:
			g.lastState = snap
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	render.DrawFlock(render.NewEbitenCanvas(screen), g.lastState.Flock, g.cfg.DrawRadius)

	msg := fmt.Sprintf("Tick: %d\nFPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms",
		g.lastState.Tick,
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight) }
