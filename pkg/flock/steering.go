package flock

import (
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
)

// minSeparationDistSq bounds the inverse-square repulsion: two overlapping
// agents repel as if they were at this squared distance instead of dividing
// by (near) zero.
const minSeparationDistSq = 1e-4

// Steer computes the combined steering acceleration for agent i from the
// frame snapshot and its neighbor set:
//
//	separation: away from each neighbor, scaled with 1/distSq (guarded)
//	alignment:  mean neighbor velocity minus own velocity
//	cohesion:   neighbor centroid minus own position
//
// Each rule contributes zero with no neighbors, so an isolated agent keeps
// its current heading. The weighted sum is capped at MaxForce. The function
// is pure: same snapshot, same result.
func Steer(snapshot []Agent, i int, neighbors []int, p Params) geometry.Vector3D {
	if len(neighbors) == 0 {
		return geometry.Vector3D{}
	}

	var (
		sep    geometry.Vector3D
		avgVel geometry.Vector3D
		center geometry.Vector3D
		count  = float64(len(neighbors))
	)

	me := snapshot[i]
	for _, j := range neighbors {
		other := snapshot[j]

		// Cohesion & Alignment accumulators
		center = center.Add(other.Pos)
		avgVel = avgVel.Add(other.Vel)

		// Separation: inverse square law, with a floor on the squared
		// distance so overlapping agents produce a strong but finite push.
		away := me.Pos.Sub(other.Pos)
		distSq := away.LenSqr()
		if distSq < minSeparationDistSq {
			distSq = minSeparationDistSq
		}
		sep = sep.Add(away.Mul(1 / distSq))
	}

	align := avgVel.Mul(1 / count).Sub(me.Vel)
	coh := center.Mul(1 / count).Sub(me.Pos)

	total := sep.Mul(p.SeparationWeight).
		Add(align.Mul(p.AlignmentWeight)).
		Add(coh.Mul(p.CohesionWeight)).
		ClampLen(p.MaxForce)

	// A corrupted result must not leak into the flock: one degenerate agent
	// coasts for a frame instead of crashing it.
	if !total.IsFinite() {
		return geometry.Vector3D{}
	}
	return total
}
