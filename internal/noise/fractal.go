package noise

const (
	// Persistence is the per-octave amplitude decay.
	Persistence = 0.5
	// Lacunarity is the per-octave frequency growth.
	Lacunarity = 2.0
)

// Fractal layers octaves of f (fractal Brownian motion) and normalizes by the
// sum of the weights used, so the result stays in [0, 1]. Octave counts below
// one are treated as one.
func Fractal(f Field, x, y float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}

	var total, maxValue float64
	frequency := 1.0
	amplitude := 1.0

	for range octaves {
		total += f.Noise(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= Persistence
		frequency *= Lacunarity
	}
	return total / maxValue
}
