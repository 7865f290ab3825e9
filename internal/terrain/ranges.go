package terrain

import "math"

// Range is a closed parameter interval, used to map values onto integer
// slider positions.
type Range struct {
	Min, Max float64
}

// Slider ranges for the float parameters.
var (
	WorldSizeRange = Range{MinWorldSize, MaxWorldSize}
	ElevationRange = Range{MinElevation, MaxElevation}
	SeaLevelRange  = Range{MinSeaLevel, MaxSeaLevel}
)

// Pos maps v onto [0, steps]. Values outside the range land on an end.
func (r Range) Pos(v float64, steps int) int {
	if steps < 1 || r.Max <= r.Min || math.IsNaN(v) {
		return 0
	}
	t := (v - r.Min) / (r.Max - r.Min)
	return int(math.Round(math.Max(0, math.Min(1, t)) * float64(steps)))
}

// Value maps a position in [0, steps] back into the range.
func (r Range) Value(pos, steps int) float64 {
	if steps < 1 {
		return r.Min
	}
	t := float64(max(0, min(pos, steps))) / float64(steps)
	return r.Min*(1-t) + r.Max*t
}
