// Package noise provides seeded coherent noise fields and the fractal sampler
// that layers them into terrain heights.
package noise

import (
	"errors"
	"math"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Field is a deterministic, continuous scalar function of 2D coordinates.
// Noise returns values in [0, 1].
type Field interface {
	Noise(x, y float64) float64
}

// Field kinds accepted by New.
const (
	KindPerlin  = "perlin"
	KindSimplex = "simplex"
)

// ErrUnknownKind is returned by New when the requested kind is not known.
var ErrUnknownKind = errors.New("unknown noise kind")

// New returns the field named by kind. Unknown kinds fall back to Perlin and
// report ErrUnknownKind together with the usable fallback.
func New(kind string, seed int64) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindPerlin:
		return NewPerlin(seed), nil
	case KindSimplex:
		return NewSimplex(seed), nil
	}
	return NewPerlin(seed), ErrUnknownKind
}

// Perlin is classic Perlin noise with four internal layers at half falloff.
type Perlin struct {
	seed int64
	gen  *perlin.Perlin
}

// NewPerlin creates a Perlin field for seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		seed: seed,
		gen:  perlin.NewPerlin(2, 2, 4, seed),
	}
}

// Seed returns the seed the field was built with.
func (p *Perlin) Seed() int64 { return p.seed }

// Noise maps the raw [-1, 1] signal into [0, 1].
func (p *Perlin) Noise(x, y float64) float64 {
	return unit((p.gen.Noise2D(x, y) + 1) / 2)
}

// Simplex is OpenSimplex noise, already normalized by the library.
type Simplex struct {
	seed int64
	gen  opensimplex.Noise
}

// NewSimplex creates a Simplex field for seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{
		seed: seed,
		gen:  opensimplex.NewNormalized(seed),
	}
}

// Seed returns the seed the field was built with.
func (s *Simplex) Seed() int64 { return s.seed }

func (s *Simplex) Noise(x, y float64) float64 {
	return unit(s.gen.Eval2(x, y))
}

// unit clamps v into [0, 1]. Clamping keeps the field continuous.
func unit(v float64) float64 {
	if math.IsNaN(v) {
		return 0.5
	}
	return math.Max(0, math.Min(1, v))
}
