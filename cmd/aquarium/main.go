package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/simulation"
)

const APP = "aquarium"

func main() {
	configFile := flag.String("config", "config.json", "path to the config file")
	schemaFile := flag.String("schema", "config.schema.json", "path to the config json-schema")
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

	game, err := simulation.GetNewGame(ctx, cfg, system)
	if err != nil {
		log.Fatalf("💥 %s: failed to create game: %v", APP, err)
	}

	ebiten.SetWindowSize(simulation.ScreenWidth, simulation.ScreenHeight)
	ebiten.SetWindowTitle("Aquarium Boids")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("💥 %s: game loop failed: %v", APP, err)
	}
}
