package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/simulation"
)

const APP = "headless"

// headless drives the world actor without a display: useful for profiling
// the simulation core and for sanity-checking a config before a release.
func main() {
	configFile := flag.String("config", "config.json", "path to the config file")
	schemaFile := flag.String("schema", "config.schema.json", "path to the config json-schema")
	frames := flag.Int("frames", 600, "number of frames to simulate")
	flag.Parse()

	ctx := context.Background()

	cfg, err := simulation.LoadConfig(*configFile, *schemaFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("💡 %s: no config file found, using defaults", APP)
			cfg = simulation.DefaultConfig()
		} else {
			log.Fatalf("💥 %s: invalid config: %v", APP, err)
		}
	}

	system, err := actor.NewActorSystem("Aquarium",
		actor.WithLogger(golog.New(golog.InfoLevel, os.Stderr)),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("💥 %s: failed to create actor system: %v", APP, err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("💥 %s: failed to start actor system: %v", APP, err)
	}
	defer func() {
		_ = system.Stop(ctx)
	}()

	// Snapshots are drained here instead of a UI; the channel still has to
	// exist so the world never blocks.
	snapshotCh := make(chan *pb.FlockSnapshot, 10)
	go func() {
		for range snapshotCh {
		}
	}()

	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(snapshotCh, cfg))
	if err != nil {
		log.Fatalf("💥 %s: failed to spawn world: %v", APP, err)
	}

	start := time.Now()
	for i := 0; i < *frames; i++ {
		actor.Tell(ctx, worldPID, &pb.Tick{DeltaTime: cfg.Timestep})
	}

	// Ask for the final state so we know every Tick ahead of it was handled.
	res, err := actor.Ask(ctx, worldPID, &pb.GetState{}, 5*time.Second)
	if err != nil {
		log.Fatalf("💥 %s: failed to query final state: %v", APP, err)
	}
	snap, ok := res.(*pb.FlockSnapshot)
	if !ok {
		log.Fatalf("💥 %s: unexpected response type %T", APP, res)
	}
	elapsed := time.Since(start)

	log.Printf("🏁 %s: %d frames in %v (%.0f fps equivalent)",
		APP, snap.Frame, elapsed, float64(snap.Frame)/elapsed.Seconds())
	log.Printf("🐟 %s: %d boids, boid 0 at (%.2f, %.2f, %.2f)",
		APP, len(snap.Boids), snap.Boids[0].Position.X, snap.Boids[0].Position.Y, snap.Boids[0].Position.Z)
}
