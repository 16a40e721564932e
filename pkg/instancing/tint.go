package instancing

import (
	"fmt"
	"math/rand/v2"
)

// TintWeight is the fragment-stage blend factor between the sampled diffuse
// color and the per-instance tint. It belongs to the rendering layer, not the
// simulation; it lives here so every consumer of the instance contract agrees
// on how visible the tints are.
const TintWeight = 0.05

// TintTable is the fixed-capacity per-instance color lookup, indexed by
// instance index. Capacity matches the renderer's storage buffer.
type TintTable struct {
	colors [MaxInstances][3]float32
}

// NewTintTable fills all slots with random RGB colors from rng.
func NewTintTable(rng *rand.Rand) *TintTable {
	t := &TintTable{}
	for i := range t.colors {
		t.colors[i] = [3]float32{rng.Float32(), rng.Float32(), rng.Float32()}
	}
	return t
}

// At returns the tint for the given instance index. An index at or beyond
// capacity means the population check was bypassed; that is a programming
// error, not a runtime condition, so it panics.
func (t *TintTable) At(index uint32) [3]float32 {
	if index >= MaxInstances {
		panic(fmt.Sprintf("instancing: tint index %d out of range [0, %d)", index, MaxInstances))
	}
	return t.colors[index]
}

// Len returns the table capacity.
func (t *TintTable) Len() int { return MaxInstances }
