package flock

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
)

func TestAdvance_ClampsSpeed(t *testing.T) {
	p := testParams()
	a := Agent{Vel: geometry.Vector3D{X: 1}}

	tests := []struct {
		name  string
		accel geometry.Vector3D
	}{
		{"Moderate force", geometry.Vector3D{X: 10}},
		{"Huge synthetic force", geometry.Vector3D{X: 1e12, Y: -1e12, Z: 1e12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(a, tt.accel, 1.0/60.0, p)
			if speed := got.Vel.Len(); speed > p.MaxSpeed+1e-9 {
				t.Errorf("post-integration speed %f exceeds max %f", speed, p.MaxSpeed)
			}
		})
	}
}

func TestAdvance_RaisesSpeedToMin(t *testing.T) {
	p := testParams()
	p.MinSpeed = 2
	a := Agent{Vel: geometry.Vector3D{X: 0.5}}

	got := Advance(a, geometry.Vector3D{}, 1.0/60.0, p)
	if speed := got.Vel.Len(); speed < p.MinSpeed-1e-9 {
		t.Errorf("speed %f below min %f", speed, p.MinSpeed)
	}
	if got.Vel.X <= 0 {
		t.Errorf("min-speed rescale changed direction: %v", got.Vel)
	}
}

func TestAdvance_ZeroVelocityStaysZero(t *testing.T) {
	// A stationary agent with zero acceleration has no heading to rescale;
	// it must stay exactly at rest, never become NaN.
	p := testParams()
	p.TurnFactor = 0 // keep walls out of the picture
	a := Agent{Pos: geometry.Vector3D{X: 1}}

	got := Advance(a, geometry.Vector3D{}, 1.0/60.0, p)
	if got.Vel != (geometry.Vector3D{}) {
		t.Errorf("velocity = %v; want zero", got.Vel)
	}
	if got.Pos != a.Pos {
		t.Errorf("position = %v; want unchanged %v", got.Pos, a.Pos)
	}
	if !got.Vel.IsFinite() || !got.Pos.IsFinite() {
		t.Errorf("non-finite state: %+v", got)
	}
}

func TestAdvance_PositionFollowsVelocity(t *testing.T) {
	p := testParams()
	a := Agent{Pos: geometry.Vector3D{X: 1, Y: 2, Z: 3}, Vel: geometry.Vector3D{X: 2}}

	got := Advance(a, geometry.Vector3D{}, 0.5, p)
	want := geometry.Vector3D{X: 2, Y: 2, Z: 3}
	if !got.Pos.Eq(want) {
		t.Errorf("position = %v; want %v", got.Pos, want)
	}
}

func TestAdvance_SteerBackNearWalls(t *testing.T) {
	// The boundary policy is steer-back, not wrap: an agent inside the edge
	// margin gets a velocity nudge toward the interior on that axis.
	p := testParams()
	p.AquariumRadius = 20
	p.EdgeMargin = 2
	p.TurnFactor = 0.5

	tests := []struct {
		name string
		pos  geometry.Vector3D
		vel  geometry.Vector3D
		axis func(geometry.Vector3D) float64
		sign float64 // expected sign of the nudge
	}{
		{"Near +x wall", geometry.Vector3D{X: 19}, geometry.Vector3D{X: 2}, func(v geometry.Vector3D) float64 { return v.X }, -1},
		{"Near -x wall", geometry.Vector3D{X: -19}, geometry.Vector3D{X: -2}, func(v geometry.Vector3D) float64 { return v.X }, +1},
		{"Near +y wall", geometry.Vector3D{Y: 19.5}, geometry.Vector3D{Y: 2}, func(v geometry.Vector3D) float64 { return v.Y }, -1},
		{"Near -z wall", geometry.Vector3D{Z: -19.5}, geometry.Vector3D{Z: -2}, func(v geometry.Vector3D) float64 { return v.Z }, +1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.axis(tt.vel)
			got := Advance(Agent{Pos: tt.pos, Vel: tt.vel}, geometry.Vector3D{}, 1.0/60.0, p)
			after := tt.axis(got.Vel)
			if tt.sign > 0 && after <= before {
				t.Errorf("expected nudge toward interior (+), velocity went %f -> %f", before, after)
			}
			if tt.sign < 0 && after >= before {
				t.Errorf("expected nudge toward interior (-), velocity went %f -> %f", before, after)
			}
		})
	}

	t.Run("Interior agent untouched", func(t *testing.T) {
		vel := geometry.Vector3D{X: 2, Y: 1}
		got := Advance(Agent{Pos: geometry.Vector3D{}, Vel: vel}, geometry.Vector3D{}, 1.0/60.0, p)
		if got.Vel != vel {
			t.Errorf("velocity = %v; want untouched %v", got.Vel, vel)
		}
	})
}

func TestAdvance_Deterministic(t *testing.T) {
	p := testParams()
	a := Agent{Pos: geometry.Vector3D{X: 18.7, Y: -3}, Vel: geometry.Vector3D{X: 1.5, Z: -0.5}}
	accel := geometry.Vector3D{X: 0.1, Y: 2, Z: -0.3}

	first := Advance(a, accel, 1.0/60.0, p)
	for k := 0; k < 10; k++ {
		if got := Advance(a, accel, 1.0/60.0, p); got != first {
			t.Fatalf("call %d: Advance = %+v; want bit-identical %+v", k, got, first)
		}
	}
}
