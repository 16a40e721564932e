package flock

import (
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
)

// Advance integrates one agent by one timestep:
//
//	v' = clamp(v + accel*dt + wall nudge, [MinSpeed, MaxSpeed])
//	p' = p + v'*dt
//
// Speed is clamped, never direction. The boundary policy is steer-back:
// inside EdgeMargin of an aquarium wall the velocity is nudged toward the
// interior by TurnFactor, so flocks turn smoothly instead of wrapping or
// bouncing. Pure function: results go back to the flock's next buffer.
func Advance(a Agent, accel geometry.Vector3D, dt float64, p Params) Agent {
	vel := a.Vel.Add(accel.Mul(dt))
	vel = steerBack(a.Pos, vel, p)
	vel = clampSpeed(vel, p.MinSpeed, p.MaxSpeed)
	return Agent{
		Pos: a.Pos.Add(vel.Mul(dt)),
		Vel: vel,
	}
}

// steerBack nudges each velocity component toward the interior when the
// position is within EdgeMargin of the corresponding wall.
func steerBack(pos, vel geometry.Vector3D, p Params) geometry.Vector3D {
	lo := -p.AquariumRadius + p.EdgeMargin
	hi := p.AquariumRadius - p.EdgeMargin

	if pos.X < lo {
		vel.X += p.TurnFactor
	} else if pos.X > hi {
		vel.X -= p.TurnFactor
	}
	if pos.Y < lo {
		vel.Y += p.TurnFactor
	} else if pos.Y > hi {
		vel.Y -= p.TurnFactor
	}
	if pos.Z < lo {
		vel.Z += p.TurnFactor
	} else if pos.Z > hi {
		vel.Z -= p.TurnFactor
	}
	return vel
}

// clampSpeed limits the magnitude of vel to [minSpeed, maxSpeed]. A velocity
// of effectively zero length has no direction to rescale and is returned
// untouched; the renderer's fallback orientation covers that case.
func clampSpeed(vel geometry.Vector3D, minSpeed, maxSpeed float64) geometry.Vector3D {
	speed := vel.Len()
	if speed < geometry.Epsilon {
		return vel
	}
	if speed > maxSpeed {
		return vel.Mul(maxSpeed / speed)
	}
	if speed < minSpeed {
		return vel.Mul(minSpeed / speed)
	}
	return vel
}
