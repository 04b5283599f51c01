package gen

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source is a smooth pseudo-random scalar function over continuous 2D
// coordinates. Values are roughly in [-1, 1]; the exact bound depends on
// the algorithm behind it.
type Source interface {
	Noise2D(x, y float64) float64
}

// sourceSeed fixes the noise lattice for the whole process. Per-map
// variation comes from the octave offsets shifting the sampling window,
// not from reseeding the source.
const sourceSeed = 0

// go-perlin smoothing and harmonic scaling factors. With a single
// iteration they leave the classic Perlin lattice untouched; the fractal
// layering happens in FieldBuilder instead.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
)

// NewSource returns the noise source registered under the given algorithm
// name: "perlin" or "simplex".
func NewSource(algorithm string) (Source, error) {
	switch algorithm {
	case "perlin":
		return NewPerlinSource(), nil
	case "simplex":
		return NewSimplexSource(), nil
	default:
		return nil, fmt.Errorf("unknown noise algorithm %q", algorithm)
	}
}

// NewPerlinSource returns the default gradient-noise source.
func NewPerlinSource() Source {
	return &perlinSource{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, 1, sourceSeed)}
}

type perlinSource struct {
	noise *perlin.Perlin
}

func (s *perlinSource) Noise2D(x, y float64) float64 {
	return s.noise.Noise2D(x, y)
}

// NewSimplexSource returns an OpenSimplex-backed source, an alternative to
// Perlin without its axis-aligned artifacts.
func NewSimplexSource() Source {
	return &simplexSource{noise: opensimplex.New(sourceSeed)}
}

type simplexSource struct {
	noise opensimplex.Noise
}

func (s *simplexSource) Noise2D(x, y float64) float64 {
	return s.noise.Eval2(x, y)
}
