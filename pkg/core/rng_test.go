package core

import "testing"

func TestNewRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 16; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
	}
}

func TestFillRanges(t *testing.T) {
	rng := NewRNG(3).Source()
	unit := make([]float64, 512)
	FillUnit(rng, unit)
	for i, v := range unit {
		if v < 0 || v >= 1 {
			t.Fatalf("unit value %d out of range: %f", i, v)
		}
	}
	signed := make([]float64, 512)
	FillSigned(rng, signed)
	negative := false
	for i, v := range signed {
		if v < -1 || v >= 1 {
			t.Fatalf("signed value %d out of range: %f", i, v)
		}
		if v < 0 {
			negative = true
		}
	}
	if !negative {
		t.Fatal("signed fill never produced a negative value")
	}
}
