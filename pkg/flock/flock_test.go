package flock

import (
	"math"
	"testing"
)

// testParams returns a valid parameter set tests can tweak per case.
func testParams() Params {
	return Params{
		NumBoids:         10,
		MaxPopulation:    50,
		AquariumRadius:   20,
		EdgeMargin:       2,
		PerceptionRadius: 5,
		SeparationWeight: 1,
		AlignmentWeight:  0.5,
		CohesionWeight:   0.1,
		MaxSpeed:         4,
		MinSpeed:         1,
		MaxForce:         10,
		TurnFactor:       0.2,
		Seed:             42,
	}
}

func TestNew_CapacityBoundary(t *testing.T) {
	t.Run("Exactly at capacity", func(t *testing.T) {
		p := testParams()
		p.NumBoids = 50
		f, err := New(p)
		if err != nil {
			t.Fatalf("New with NumBoids=50, capacity=50 failed: %v", err)
		}
		if f.Len() != 50 {
			t.Errorf("Len() = %d; want 50", f.Len())
		}
	})

	t.Run("One over capacity fails", func(t *testing.T) {
		p := testParams()
		p.NumBoids = 51
		if _, err := New(p); err == nil {
			t.Error("New with NumBoids=51, capacity=50 should fail, got nil error")
		}
	})
}

func TestNew_RejectsBadParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"Zero population", func(p *Params) { p.NumBoids = 0 }},
		{"Negative population", func(p *Params) { p.NumBoids = -1 }},
		{"Zero aquarium radius", func(p *Params) { p.AquariumRadius = 0 }},
		{"Margin wider than aquarium", func(p *Params) { p.EdgeMargin = 25 }},
		{"Zero perception radius", func(p *Params) { p.PerceptionRadius = 0 }},
		{"Negative separation weight", func(p *Params) { p.SeparationWeight = -0.1 }},
		{"Zero max speed", func(p *Params) { p.MaxSpeed = 0 }},
		{"Min speed above max speed", func(p *Params) { p.MinSpeed = 5 }},
		{"Zero max force", func(p *Params) { p.MaxForce = 0 }},
		{"Negative turn factor", func(p *Params) { p.TurnFactor = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)
			if _, err := New(p); err == nil {
				t.Errorf("New should reject %s", tt.name)
			}
		})
	}
}

func TestNew_RandomizedState(t *testing.T) {
	p := testParams()
	f, err := New(p)
	if err != nil {
		t.Fatal(err)
	}

	for i, a := range f.Snapshot() {
		if math.Abs(a.Pos.X) > p.AquariumRadius ||
			math.Abs(a.Pos.Y) > p.AquariumRadius ||
			math.Abs(a.Pos.Z) > p.AquariumRadius {
			t.Errorf("agent %d spawned outside the aquarium at %s", i, a.Pos)
		}
		speed := a.Vel.Len()
		if speed < p.MinSpeed-1e-9 || speed > p.MaxSpeed+1e-9 {
			t.Errorf("agent %d spawned with speed %f outside [%f, %f]", i, speed, p.MinSpeed, p.MaxSpeed)
		}
	}
}

func TestStep_PopulationInvariant(t *testing.T) {
	f, err := New(testParams())
	if err != nil {
		t.Fatal(err)
	}

	want := f.Len()
	for frame := 0; frame < 100; frame++ {
		f.Step(1.0 / 60.0)
		if got := len(f.Snapshot()); got != want {
			t.Fatalf("frame %d: population = %d; want %d", frame, got, want)
		}
	}
	if f.Frame() != 100 {
		t.Errorf("Frame() = %d; want 100", f.Frame())
	}
}

func TestStep_SpeedNeverExceedsMax(t *testing.T) {
	p := testParams()
	p.MaxForce = 1e6 // huge forces allowed, speed still bounded
	p.SeparationWeight = 100
	f, err := New(p)
	if err != nil {
		t.Fatal(err)
	}

	for frame := 0; frame < 200; frame++ {
		f.Step(1.0 / 60.0)
		for i, a := range f.Snapshot() {
			if speed := a.Vel.Len(); speed > p.MaxSpeed+1e-9 {
				t.Fatalf("frame %d: agent %d speed %f exceeds max %f", frame, i, speed, p.MaxSpeed)
			}
		}
	}
}

func TestStep_Deterministic(t *testing.T) {
	// Same seed, same params, same timestep: two flocks must evolve
	// identically. No hidden global state may leak between runs.
	p := testParams()
	f1, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := New(p)
	if err != nil {
		t.Fatal(err)
	}

	for frame := 0; frame < 50; frame++ {
		f1.Step(1.0 / 60.0)
		f2.Step(1.0 / 60.0)
	}

	s1, s2 := f1.Snapshot(), f2.Snapshot()
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Fatalf("agent %d diverged: %+v vs %+v", i, s1[i], s2[i])
		}
	}
}

func TestReseed(t *testing.T) {
	f, err := New(testParams())
	if err != nil {
		t.Fatal(err)
	}
	f.Step(1.0 / 60.0)

	f.Reseed(7)
	if f.Frame() != 0 {
		t.Errorf("Frame() after Reseed = %d; want 0", f.Frame())
	}
	if f.Len() != testParams().NumBoids {
		t.Errorf("Len() after Reseed = %d; want %d", f.Len(), testParams().NumBoids)
	}

	// Reseeding with the same value must reproduce the same population.
	g, err := New(testParams())
	if err != nil {
		t.Fatal(err)
	}
	g.Reseed(7)
	for i := range f.Snapshot() {
		if f.Snapshot()[i] != g.Snapshot()[i] {
			t.Fatalf("agent %d differs after identical Reseed: %+v vs %+v",
				i, f.Snapshot()[i], g.Snapshot()[i])
		}
	}
}

func TestSetParams(t *testing.T) {
	f, err := New(testParams())
	if err != nil {
		t.Fatal(err)
	}

	p := f.Params()
	p.MaxSpeed = 8
	p.NumBoids = 9999 // must be ignored: population is fixed at New time
	if err := f.SetParams(p); err != nil {
		t.Fatalf("SetParams failed: %v", err)
	}
	if got := f.Params().MaxSpeed; got != 8 {
		t.Errorf("MaxSpeed after SetParams = %f; want 8", got)
	}
	if got := f.Params().NumBoids; got != testParams().NumBoids {
		t.Errorf("NumBoids after SetParams = %d; want %d (fixed)", got, testParams().NumBoids)
	}

	p.MaxSpeed = -1
	if err := f.SetParams(p); err == nil {
		t.Error("SetParams should reject a negative max speed")
	}
}

func BenchmarkStep(b *testing.B) {
	p := testParams()
	p.NumBoids = 50
	f, err := New(p)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Step(1.0 / 60.0)
	}
}
