package biome

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		height   float64
		seaLevel float64
		want     Band
	}{
		{"deep water", 0, 0.3, Water},
		{"just below sea", 76.4, 0.3, Water},
		{"at sea level", 76.5, 0.3, Sand},
		{"beach top", 91.4, 0.3, Sand},
		{"grass", 91.5, 0.3, Grass},
		{"grass at mountain line", 150, 0.3, Grass},
		{"mountain", 150.5, 0.3, Mountain},
		{"mountain at snow line", 210, 0.3, Mountain},
		{"snow", 210.5, 0.3, Snow},
		{"above scale", 400, 0.3, Snow},
		{"dry world", 0, 0, Sand},
		{"dry world grass", 15, 0, Grass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.height, tt.seaLevel); got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.height, tt.seaLevel, got, tt.want)
			}
		})
	}
}

// At seaLevel 0.8 the sand band ends at 219, above the snow line: terrain
// between 210 and 219 stays sand and jumps straight to snow, with no grass or
// mountain band at all.
func TestClassifyHighSeaLevelSkipsGrassAndMountain(t *testing.T) {
	const seaLevel = 0.8

	if got := Classify(215, seaLevel); got != Sand {
		t.Errorf("Classify(215) = %v, want sand", got)
	}
	if got := Classify(219.5, seaLevel); got != Snow {
		t.Errorf("Classify(219.5) = %v, want snow", got)
	}

	seen := map[Band]bool{}
	for h := 0.0; h <= 400; h += 0.25 {
		seen[Classify(h, seaLevel)] = true
	}
	if seen[Grass] || seen[Mountain] {
		t.Errorf("grass=%v mountain=%v, want neither at sea level %v", seen[Grass], seen[Mountain], seaLevel)
	}
	if !seen[Water] || !seen[Sand] || !seen[Snow] {
		t.Errorf("bands seen = %v, want water, sand and snow", seen)
	}
}

func TestClassifyTotal(t *testing.T) {
	heights := []float64{math.Inf(-1), -1, 0, 100, 255, 1e9, math.Inf(1), math.NaN()}
	for _, sea := range []float64{0, 0.3, 0.55, 0.8} {
		for _, h := range heights {
			b := Classify(h, sea)
			if b < Water || b > Snow {
				t.Errorf("Classify(%v, %v) = %d, not a band", h, sea, b)
			}
		}
	}
}

func TestBandString(t *testing.T) {
	want := map[Band]string{Water: "water", Sand: "sand", Grass: "grass", Mountain: "mountain", Snow: "snow", Band(9): "unknown"}
	for b, s := range want {
		if b.String() != s {
			t.Errorf("Band(%d).String() = %q, want %q", b, b.String(), s)
		}
	}
}
