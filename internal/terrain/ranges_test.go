package terrain

import (
	"math"
	"testing"
)

func TestRangePos(t *testing.T) {
	tests := []struct {
		name  string
		r     Range
		v     float64
		steps int
		want  int
	}{
		{"min", SeaLevelRange, 0, 100, 0},
		{"max", SeaLevelRange, 0.8, 100, 100},
		{"mid", SeaLevelRange, 0.4, 100, 50},
		{"below", ElevationRange, 10, 100, 0},
		{"above", ElevationRange, 1000, 100, 100},
		{"nan", WorldSizeRange, math.NaN(), 100, 0},
		{"no steps", WorldSizeRange, 0.05, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Pos(tt.v, tt.steps); got != tt.want {
				t.Errorf("Pos(%v) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestRangeRoundTrip(t *testing.T) {
	const steps = 100
	for _, r := range []Range{WorldSizeRange, ElevationRange, SeaLevelRange} {
		for pos := 0; pos <= steps; pos++ {
			if got := r.Pos(r.Value(pos, steps), steps); got != pos {
				t.Fatalf("%v: Pos(Value(%d)) = %d", r, pos, got)
			}
		}
		if v := r.Value(-5, steps); v != r.Min {
			t.Errorf("%v: Value(-5) = %v", r, v)
		}
		if v := r.Value(500, steps); v != r.Max {
			t.Errorf("%v: Value(500) = %v", r, v)
		}
	}
}
