package simulation

import (
	"time"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Step asks the FlockActor to compute one tick.
type Step = emptypb.Empty

// Snapshot is an immutable view of the flock after a given tick.
type Snapshot struct {
	Tick  uint64
	Flock behavior.Flock
}

// FlockActor owns the authoritative flock of the windowed simulation.
// Messages are processed one at a time, so the flock is never shared with a
// concurrent writer; snapshots can be read freely since flocks are never mutated.
type FlockActor struct {
	settings behavior.Settings
	flock    behavior.Flock
	tick     uint64

	// Communication with UI
	snapshotCh chan<- *Snapshot

	// --- Telemetry ---
	ticksSinceLog int
	lastLogTime   time.Time
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor creates the flock logic unit publishing to snapshotCh.
func NewFlockActor(cfg *Config, flock behavior.Flock, snapshotCh chan<- *Snapshot) *FlockActor {
	return &FlockActor{
		settings:    cfg.Settings(),
		flock:       flock,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (f *FlockActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock of %d boids is ready", len(f.flock))
	return nil
}

func (f *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Info("Flock started")
		// The UI can draw the initial flock before the first tick.
		f.pushSnapshot()

	case *Step:
		next, err := behavior.Tick(f.settings, f.flock)
		if err != nil {
			ctx.Logger().Errorf("tick %d failed, keeping the previous flock: %v", f.tick+1, err)
			return
		}
		f.flock = next
		f.tick++
		f.ticksSinceLog++
		ctx.Logger().Infof("tick %d", f.tick)
		f.logTickRate(ctx)
		f.pushSnapshot()

	default:
		ctx.Unhandled()
	}
}

func (f *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock is shutdown after %d ticks", f.tick)
	return nil
}

func (f *FlockActor) logTickRate(ctx *actor.ReceiveContext) {
	if time.Since(f.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Tick: %d | Boids: %d", f.ticksSinceLog, f.tick, len(f.flock))
		f.ticksSinceLog = 0
		f.lastLogTime = time.Now()
	}
}

func (f *FlockActor) pushSnapshot() {
	select {
	case f.snapshotCh <- &Snapshot{Tick: f.tick, Flock: f.flock}:
	default:
		// UI busy, skip frame
	}
}
