package simulation

import (
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/instancing"
)

// WorldActor is the brain: it owns the flock exclusively and runs one
// synchronous frame per Tick. The frame reads only the pre-frame snapshot
// and commits through the flock's buffer swap, so the simultaneity of the
// update is preserved no matter how fast the UI ticks it. Per-boid actors
// would break exactly that guarantee, which is why the actor granularity is
// the world, not the individual.
type WorldActor struct {
	cfg       *Config
	flock     *flock.Flock
	instances []instancing.Instance
	// Communication with UI
	snapshotCh chan<- *pb.FlockSnapshot
	// --- Benchmark Stats ---
	tickCount   int
	lastLogTime time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the world logic unit. The flock itself is built in
// PreStart so a bad config fails the actor spawn instead of panicking later.
func NewWorldActor(snapshotCh chan<- *pb.FlockSnapshot, cfg *Config) *WorldActor {
	return &WorldActor{
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	if err := w.init(); err != nil {
		return err
	}
	ctx.ActorSystem().Logger().Infof("Aquarium ready: %d boids, radius %.1f",
		w.flock.Len(), w.cfg.AquariumRadius)
	return nil
}

// init builds the flock and the reusable instance buffer. Split out of
// PreStart so tests can drive the world without an actor system.
func (w *WorldActor) init() error {
	if err := w.cfg.Validate(); err != nil {
		return err
	}
	f, err := flock.New(w.cfg.Params())
	if err != nil {
		return err
	}
	w.flock = f
	w.instances = make([]instancing.Instance, 0, instancing.MaxInstances)
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Info("World started, flock swimming...")

	// The main simulation step, driven by the game loop
	case *pb.Tick:
		w.step(msg.DeltaTime)
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	// Live slider updates from the UI
	case *pb.UpdateConfig:
		if err := w.applyConfig(msg); err != nil {
			ctx.Logger().Warnf("Rejected config update: %v", err)
		}

	case *pb.Restart:
		ctx.Logger().Infof("Restarting flock with seed %d", msg.Seed)
		w.flock.Reseed(msg.Seed)
		w.pushSnapshot()

	case *pb.GetState:
		ctx.Response(w.buildSnapshot())

	default:
		ctx.Unhandled()
	}
}

// step runs one frame: snapshot -> steer -> integrate -> commit, then
// rebuilds the renderer-facing instance buffer from the committed state.
func (w *WorldActor) step(dt float64) {
	if dt <= 0 {
		dt = w.cfg.Timestep
	}
	w.flock.Step(dt)
	w.instances = instancing.Build(w.flock.Snapshot(), w.instances[:0])
	w.tickCount++
}

// Instances returns the per-instance renderer input for the last committed
// frame, ordered by agent index.
func (w *WorldActor) Instances() []instancing.Instance {
	return w.instances
}

func (w *WorldActor) applyConfig(msg *pb.UpdateConfig) error {
	p := w.flock.Params()
	p.PerceptionRadius = msg.PerceptionRadius
	p.SeparationWeight = msg.SeparationWeight
	p.AlignmentWeight = msg.AlignmentWeight
	p.CohesionWeight = msg.CohesionWeight
	p.MaxSpeed = msg.MaxSpeed
	p.MinSpeed = msg.MinSpeed
	p.MaxForce = msg.MaxForce
	p.TurnFactor = msg.TurnFactor
	return w.flock.SetParams(p)
}

func (w *WorldActor) pushSnapshot() {
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) buildSnapshot() *pb.FlockSnapshot {
	agents := w.flock.Snapshot()
	snapshot := &pb.FlockSnapshot{
		Frame: w.flock.Frame(),
		Boids: make([]*pb.BoidState, 0, len(agents)),
	}
	for i, a := range agents {
		snapshot.Boids = append(snapshot.Boids, &pb.BoidState{
			Id:       uint32(i),
			Position: &pb.Vec3{X: a.Pos.X, Y: a.Pos.Y, Z: a.Pos.Z},
			Velocity: &pb.Vec3{X: a.Vel.X, Y: a.Vel.Y, Z: a.Vel.Z},
		})
	}
	return snapshot
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICKS: %d/sec | Boids: %d | Frame: %d",
			w.tickCount, w.flock.Len(), w.flock.Frame())
		w.tickCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}
