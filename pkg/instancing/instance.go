// Package instancing translates committed agent state into the GPU renderer's
// per-instance input: a column-major 4x4 model matrix plus a uint32 instance
// index per agent, mirroring a vertex buffer of four Float32x4 attributes and
// an index used for tint lookup.
package instancing

import (
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
)

// MaxInstances is the renderer's fixed instance-buffer and tint-table
// capacity. The simulation population is checked against it at startup and
// must never exceed it afterwards.
const MaxInstances = 50

// Instance is one entry of the per-instance vertex buffer. Model is
// column-major (wgpu/cgmath convention): columns 0..2 are the rotation basis
// (right, up, forward), column 3 the translation. Index is the agent's stable
// identity, used by the fragment stage to look up its tint.
type Instance struct {
	Model [4][4]float32
	Index uint32
}

// Build converts the agent slice into instance records ordered by agent
// index, appending to out (reusable across frames). The forward reference
// axis +Z is rotated onto each agent's heading; an agent with effectively
// zero velocity gets the identity orientation instead of a NaN matrix.
//
// A population larger than MaxInstances is unreachable after a successful
// flock initialization; hitting it means renderer memory would be overrun,
// so Build panics rather than truncating silently.
func Build(agents []flock.Agent, out []Instance) []Instance {
	if len(agents) > MaxInstances {
		panic(fmt.Sprintf("instancing: %d agents exceed renderer capacity %d", len(agents), MaxInstances))
	}
	for i, a := range agents {
		out = append(out, Instance{
			Model: modelMatrix(a.Pos, a.Vel),
			Index: uint32(i),
		})
	}
	return out
}

// modelMatrix composes translation(pos) * rotation(heading) in column-major
// layout.
func modelMatrix(pos, vel geometry.Vector3D) [4][4]float32 {
	right, up, forward := headingBasis(vel)
	return [4][4]float32{
		{float32(right.X), float32(right.Y), float32(right.Z), 0},
		{float32(up.X), float32(up.Y), float32(up.Z), 0},
		{float32(forward.X), float32(forward.Y), float32(forward.Z), 0},
		{float32(pos.X), float32(pos.Y), float32(pos.Z), 1},
	}
}

// headingBasis derives a right-handed orthonormal basis whose forward axis
// points along vel. Zero velocity has no heading, so the fixed fallback is
// the world basis (identity rotation). A heading parallel to world up swaps
// in an alternate up reference to keep the cross products well defined.
func headingBasis(vel geometry.Vector3D) (right, up, forward geometry.Vector3D) {
	if vel.LenSqr() < geometry.Epsilon*geometry.Epsilon {
		return geometry.Vector3D{X: 1}, geometry.Vector3D{Y: 1}, geometry.Vector3D{Z: 1}
	}
	forward = vel.Normalize()

	worldUp := geometry.Vector3D{Y: 1}
	if math.Abs(forward.Dot(worldUp)) > 1-1e-6 {
		worldUp = geometry.Vector3D{Z: 1}
	}

	right = worldUp.Cross(forward).Normalize()
	up = forward.Cross(right)
	return right, up, forward
}
