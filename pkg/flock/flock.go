// Package flock implements the boids simulation core: a fixed population of
// agents updated once per frame from separation, alignment and cohesion rules.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// https://en.wikipedia.org/wiki/Boids
package flock

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
)

// Agent is the kinematic state of a single boid. Its identity is its index
// in the flock, stable for the whole run.
type Agent struct {
	Pos geometry.Vector3D
	Vel geometry.Vector3D
}

// Flock owns the authoritative agent array. All rule computation for a frame
// reads the committed buffer (the frame snapshot) and writes the next buffer,
// which is swapped in at frame end: agent i's forces never observe agent j's
// already-updated-this-frame state.
type Flock struct {
	params  Params
	agents  []Agent // committed state, read-only during a frame
	next    []Agent // integration results, swapped in at frame end
	scratch []int   // reusable neighbor index buffer
	frame   uint64
	rng     *rand.Rand
}

// New validates params and creates a flock with randomized positions inside
// the aquarium and velocities with random heading and magnitude in
// [MinSpeed, MaxSpeed].
func New(p Params) (*Flock, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	f := &Flock{
		params:  p,
		agents:  make([]Agent, p.NumBoids),
		next:    make([]Agent, p.NumBoids),
		scratch: make([]int, 0, p.NumBoids),
		rng:     rand.New(rand.NewPCG(p.Seed, p.Seed)),
	}
	f.randomize()
	return f, nil
}

// Len returns the population size, invariant for the whole run.
func (f *Flock) Len() int { return len(f.agents) }

// Frame returns the number of completed simulation steps.
func (f *Flock) Frame() uint64 { return f.frame }

// Params returns the current parameter set.
func (f *Flock) Params() Params { return f.params }

// Snapshot returns the committed agent states for the current frame.
// Callers must treat the slice as read-only; it is only rewritten by the
// swap at the end of the next Step.
func (f *Flock) Snapshot() []Agent { return f.agents }

// SetParams swaps the tunable rule parameters between frames. The population
// and seed are fixed at New time: NumBoids, MaxPopulation and Seed in p are
// ignored.
func (f *Flock) SetParams(p Params) error {
	p.NumBoids = f.params.NumBoids
	p.MaxPopulation = f.params.MaxPopulation
	p.Seed = f.params.Seed
	if err := p.Validate(); err != nil {
		return err
	}
	f.params = p
	return nil
}

// Reseed re-randomizes every agent from the given seed, keeping the
// population and parameters.
func (f *Flock) Reseed(seed uint64) {
	f.params.Seed = seed
	f.rng = rand.New(rand.NewPCG(seed, seed))
	f.randomize()
	f.frame = 0
}

func (f *Flock) randomize() {
	r := f.params.AquariumRadius
	for i := range f.agents {
		f.agents[i] = Agent{
			Pos: geometry.Vector3D{
				X: (f.rng.Float64()*2 - 1) * r,
				Y: (f.rng.Float64()*2 - 1) * r,
				Z: (f.rng.Float64()*2 - 1) * r,
			},
			Vel: randomHeading(f.rng).Mul(
				f.params.MinSpeed + f.rng.Float64()*(f.params.MaxSpeed-f.params.MinSpeed)),
		}
	}
}

// randomHeading samples a uniformly distributed unit vector on the sphere.
func randomHeading(rng *rand.Rand) geometry.Vector3D {
	z := rng.Float64()*2 - 1
	theta := rng.Float64() * 2 * math.Pi
	s := math.Sqrt(1 - z*z)
	return geometry.Vector3D{X: s * math.Cos(theta), Y: s * math.Sin(theta), Z: z}
}

// Step advances the whole flock by one timestep. The compute phase is a pure
// read of the frame snapshot; results go to the next buffer, swapped in only
// after every agent has been integrated (simultaneous update).
func (f *Flock) Step(dt float64) {
	snapshot := f.agents
	for i := range snapshot {
		neighbors := Neighbors(snapshot, i, f.params.PerceptionRadius, f.scratch[:0])
		accel := Steer(snapshot, i, neighbors, f.params)
		f.next[i] = Advance(snapshot[i], accel, dt, f.params)
	}
	f.agents, f.next = f.next, f.agents
	f.frame++
}
