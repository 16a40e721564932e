package flock

import "fmt"

// Params holds every knob of the simulation. Immutable during a frame;
// the tunable subset can be swapped between frames via Flock.SetParams.
type Params struct {
	// Population
	NumBoids      int // fixed for the whole run
	MaxPopulation int // renderer capacity (tint table / instance buffer size)

	// World: axis-aligned cube [-AquariumRadius, +AquariumRadius]^3
	AquariumRadius float64
	EdgeMargin     float64 // distance from a wall where steer-back kicks in

	// Perception
	PerceptionRadius float64

	// Rule weights
	SeparationWeight float64
	AlignmentWeight  float64
	CohesionWeight   float64

	// Kinematic limits
	MaxSpeed   float64
	MinSpeed   float64 // 0 disables the lower clamp
	MaxForce   float64 // cap on the combined steering acceleration
	TurnFactor float64 // per-step velocity nudge applied near walls

	Seed uint64
}

// Validate fast-fails on any parameter the simulation cannot run with.
// Nothing is silently clamped: a bad config is a startup error, not a
// mid-run surprise.
func (p *Params) Validate() error {
	if p.NumBoids <= 0 {
		return fmt.Errorf("numBoids must be positive, got %d", p.NumBoids)
	}
	if p.MaxPopulation <= 0 {
		return fmt.Errorf("maxPopulation must be positive, got %d", p.MaxPopulation)
	}
	if p.NumBoids > p.MaxPopulation {
		return fmt.Errorf("numBoids %d exceeds renderer capacity %d", p.NumBoids, p.MaxPopulation)
	}
	if p.AquariumRadius <= 0 {
		return fmt.Errorf("aquariumRadius must be positive, got %f", p.AquariumRadius)
	}
	if p.EdgeMargin < 0 || p.EdgeMargin > p.AquariumRadius {
		return fmt.Errorf("edgeMargin must be in [0, aquariumRadius], got %f", p.EdgeMargin)
	}
	if p.PerceptionRadius <= 0 {
		return fmt.Errorf("perceptionRadius must be positive, got %f", p.PerceptionRadius)
	}
	if p.SeparationWeight < 0 || p.AlignmentWeight < 0 || p.CohesionWeight < 0 {
		return fmt.Errorf("rule weights must not be negative, got sep=%f align=%f coh=%f",
			p.SeparationWeight, p.AlignmentWeight, p.CohesionWeight)
	}
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("maxSpeed must be positive, got %f", p.MaxSpeed)
	}
	if p.MinSpeed < 0 || p.MinSpeed > p.MaxSpeed {
		return fmt.Errorf("minSpeed must be in [0, maxSpeed], got %f", p.MinSpeed)
	}
	if p.MaxForce <= 0 {
		return fmt.Errorf("maxForce must be positive, got %f", p.MaxForce)
	}
	if p.TurnFactor < 0 {
		return fmt.Errorf("turnFactor must not be negative, got %f", p.TurnFactor)
	}
	return nil
}
