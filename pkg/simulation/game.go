package simulation

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/instancing"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/ui"
)

const (
	ScreenWidth  = 1000
	ScreenHeight = 800
)

// whiteImage is the 1-texel source for batched triangle drawing.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Game is the interactive viewer: it ticks the world actor, receives flock
// snapshots over a channel, and draws the aquarium with the per-instance
// tints the GPU renderer would apply. The real pipeline consumes the same
// data as instance records; this view is its debugging stand-in.
type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.FlockSnapshot
	lastState  *pb.FlockSnapshot

	// Per-instance colors, owned by the rendering layer
	tints *instancing.TintTable

	// UI Controls
	panel *ui.UIPanel

	widgetPerceptionRadius *ui.Slider
	widgetSeparation       *ui.Slider
	widgetAlignment        *ui.Slider
	widgetCohesion         *ui.Slider
	widgetMaxSpeed         *ui.Slider
	widgetMinSpeed         *ui.Slider
	widgetMaxForce         *ui.Slider
	widgetTurnFactor       *ui.Slider
	widgetShowTank         *ui.Checkbox

	cfg *Config

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// GetNewGame spawns the world actor and wires the UI around it.
func GetNewGame(ctx context.Context, cfg *Config, system actor.ActorSystem) (*Game, error) {
	// 1. Channel for world -> UI snapshots. Buffered so the world never
	// blocks on a slow frame.
	snapshotCh := make(chan *pb.FlockSnapshot, 10)

	// 2. Spawn World Actor
	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	// 3. UI Panel with all live-tunable knobs
	panel := ui.NewUIPanel(10, 10, 280, ScreenHeight-20)

	panel.AddSection("Perception")
	widgetPerceptionRadius := panel.AddSlider("Perception Radius", 0.5, 20, cfg.PerceptionRadius)
	panel.EndSection()

	panel.AddSection("Flocking Rules")
	widgetSeparation := panel.AddSlider("Separation Weight", 0, 5, cfg.SeparationWeight)
	widgetAlignment := panel.AddSlider("Alignment Weight", 0, 5, cfg.AlignmentWeight)
	widgetCohesion := panel.AddSlider("Cohesion Weight", 0, 5, cfg.CohesionWeight)
	panel.EndSection()

	panel.AddSection("Kinematic Limits")
	widgetMaxSpeed := panel.AddSlider("Max Speed", 0.5, 20, cfg.MaxSpeed)
	widgetMinSpeed := panel.AddSlider("Min Speed", 0, 5, cfg.MinSpeed)
	widgetMaxForce := panel.AddSlider("Max Force", 0.5, 100, cfg.MaxForce)
	widgetTurnFactor := panel.AddSlider("Turn Factor", 0, 2, cfg.TurnFactor)
	panel.EndSection()

	panel.AddSection("Aquarium")
	widgetShowTank := panel.AddCheckbox("Show Tank Edges", true)
	panel.AddButton("Restart Flock", func() {
		actor.Tell(ctx, worldPID, &pb.Restart{Seed: uint64(time.Now().UnixNano())})
	})
	panel.EndSection()

	return &Game{
		ctx:                    ctx,
		System:                 system,
		worldPID:               worldPID,
		snapshotCh:             snapshotCh,
		lastState:              &pb.FlockSnapshot{}, // Avoid nil pointer
		tints:                  instancing.NewTintTable(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))),
		panel:                  panel,
		widgetPerceptionRadius: widgetPerceptionRadius,
		widgetSeparation:       widgetSeparation,
		widgetAlignment:        widgetAlignment,
		widgetCohesion:         widgetCohesion,
		widgetMaxSpeed:         widgetMaxSpeed,
		widgetMinSpeed:         widgetMinSpeed,
		widgetMaxForce:         widgetMaxForce,
		widgetTurnFactor:       widgetTurnFactor,
		widgetShowTank:         widgetShowTank,
		cfg:                    cfg,
	}, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel
	g.panel.Update()

	// 2. Retrieve the latest snapshot (non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if the new one isn't ready
	}

	// 3. Push slider values to the world
	actor.Tell(g.ctx, g.worldPID, &pb.UpdateConfig{
		PerceptionRadius: g.widgetPerceptionRadius.Value,
		SeparationWeight: g.widgetSeparation.Value,
		AlignmentWeight:  g.widgetAlignment.Value,
		CohesionWeight:   g.widgetCohesion.Value,
		MaxSpeed:         g.widgetMaxSpeed.Value,
		MinSpeed:         g.widgetMinSpeed.Value,
		MaxForce:         g.widgetMaxForce.Value,
		TurnFactor:       g.widgetTurnFactor.Value,
	})

	// 4. Trigger Simulation Step
	actor.Tell(g.ctx, g.worldPID, &pb.Tick{DeltaTime: g.cfg.Timestep})

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 8, G: 12, B: 28, A: 255})

	if g.widgetShowTank.Value {
		g.drawTank(screen)
	}

	// Boids sorted back to front would be nicer; at 50 instances the
	// painter's error is invisible, so draw in index order.
	for _, b := range g.lastState.Boids {
		g.drawBoid(screen, b)
	}

	// UI Panel on top
	g.panel.Draw(screen)

	// Performance stats on the right side
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nFrame: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.Frame,
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, ScreenWidth-150, 10)
}

// project maps an aquarium-space point to the screen: orthographic on x/y,
// with z kept as a [0,1] depth factor for size and brightness cues.
func (g *Game) project(x, y, z float64) (sx, sy float32, depth float64) {
	r := g.cfg.AquariumRadius
	scale := float64(ScreenHeight) * 0.40 / r
	sx = float32(float64(ScreenWidth)/2 + x*scale)
	sy = float32(float64(ScreenHeight)/2 - y*scale)
	depth = (z + r) / (2 * r)
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}
	return sx, sy, depth
}

func (g *Game) drawBoid(screen *ebiten.Image, b *pb.BoidState) {
	sx, sy, depth := g.project(b.Position.X, b.Position.Y, b.Position.Z)

	// The same tint lookup the fragment stage performs, at the same
	// blend weight. Depth modulates brightness as a poor man's fog.
	tint := g.tints.At(b.Id)
	base := [3]float32{0.78, 0.86, 1.0}
	bright := float32(0.45 + 0.55*depth)
	var rgb [3]float32
	for k := 0; k < 3; k++ {
		rgb[k] = (base[k]*(1-instancing.TintWeight) + tint[k]*instancing.TintWeight) * bright
	}

	// Nearer boids draw bigger
	size := 4.0 + 5.0*depth
	angle := math.Atan2(-b.Velocity.Y, b.Velocity.X)

	tipX := float64(sx) + math.Cos(angle)*size*1.4
	tipY := float64(sy) + math.Sin(angle)*size*1.4
	rightX := float64(sx) + math.Cos(angle+2.5)*size
	rightY := float64(sy) + math.Sin(angle+2.5)*size
	leftX := float64(sx) + math.Cos(angle-2.5)*size
	leftY := float64(sy) + math.Sin(angle-2.5)*size

	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX), DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: rgb[0], ColorG: rgb[1], ColorB: rgb[2], ColorA: 1,
		},
		{
			DstX: float32(rightX), DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: rgb[0], ColorG: rgb[1], ColorB: rgb[2], ColorA: 1,
		},
		{
			DstX: float32(leftX), DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: rgb[0], ColorG: rgb[1], ColorB: rgb[2], ColorA: 1,
		},
	}
	indices := []uint16{0, 1, 2}

	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(vertices, indices, whiteImage, op)
}

// drawTank outlines the aquarium cube.
func (g *Game) drawTank(screen *ebiten.Image) {
	r := g.cfg.AquariumRadius
	clr := color.RGBA{R: 60, G: 90, B: 120, A: 255}

	// 8 corners, 12 edges
	var corners [8][3]float64
	for i := 0; i < 8; i++ {
		x, y, z := r, r, r
		if i&1 == 0 {
			x = -r
		}
		if i&2 == 0 {
			y = -r
		}
		if i&4 == 0 {
			z = -r
		}
		corners[i] = [3]float64{x, y, z}
	}

	edges := [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7}, // x edges
		{0, 2}, {1, 3}, {4, 6}, {5, 7}, // y edges
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // z edges
	}
	for _, e := range edges {
		a, b := corners[e[0]], corners[e[1]]
		ax, ay, _ := g.project(a[0], a[1], a[2])
		bx, by, _ := g.project(b[0], b[1], b[2])
		vector.StrokeLine(screen, ax, ay, bx, by, 1, clr, true)
	}
}

func (g *Game) Layout(w, h int) (int, int) { return ScreenWidth, ScreenHeight }
