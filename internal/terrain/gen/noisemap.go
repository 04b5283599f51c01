package gen

import (
	"math"
	"math/rand/v2"

	"github.com/dgravesa/go-parallel/parallel"
)

// NoiseParameters control one fractal generation run. They are copied by
// value into Build and never mutated by it.
type NoiseParameters struct {
	Scale       float64 // sampling frequency relative to grid size
	Octaves     int     // number of layered noise passes
	Persistence float64 // amplitude decay per octave
	Lacunarity  float64 // frequency growth per octave
}

// NoiseMap is a width×height field of raw elevation values in row-major
// order (index = y·width + x), together with the extremes observed while
// building it. Min and Max are frozen at build time: the falloff transform
// may push individual values below Min, but the normalization reference
// never moves.
type NoiseMap struct {
	Values []float64
	Min    float64
	Max    float64
	Width  int
	Height int
}

// Get returns the raw value at (x, y). The caller guarantees
// 0 <= x < Width and 0 <= y < Height.
func (m *NoiseMap) Get(x, y int) float64 {
	return m.Values[y*m.Width+x]
}

// GetNormalized returns the value at (x, y) mapped into [0, 1] against the
// frozen extremes.
func (m *NoiseMap) GetNormalized(x, y int) float64 {
	return m.Normalize(m.Get(x, y))
}

// Normalize maps a raw value into [0, 1] using the frozen Min/Max. A
// degenerate field (Max == Min, e.g. zero octaves) has no defined range, so
// Normalize returns 0.5 for every value instead of dividing by zero.
func (m *NoiseMap) Normalize(value float64) float64 {
	if m.Max == m.Min {
		return 0.5
	}
	return (value - m.Min) / (m.Max - m.Min)
}

// FieldBuilder samples a Source across discrete grids, layering octaves
// into fractal elevation fields.
type FieldBuilder struct {
	src     Source
	workers int
}

// NewFieldBuilder creates a builder over the given source. workers is the
// number of goroutines used for the grid sweep; values below 1 are treated
// as 1. The worker count never affects the produced values.
func NewFieldBuilder(src Source, workers int) *FieldBuilder {
	if workers < 1 {
		workers = 1
	}
	return &FieldBuilder{src: src, workers: workers}
}

// octaveOffsets draws one (x, y) sampling offset per octave from a PCG
// stream seeded with the map seed. The draw is strictly sequential in
// octave order and happens before any cell is sampled.
func octaveOffsets(seed uint64, octaves int) [][2]float64 {
	rng := rand.New(rand.NewPCG(seed, 0))
	offsets := make([][2]float64, octaves)
	for i := range offsets {
		offsets[i][0] = float64(rng.Uint32())
		offsets[i][1] = float64(rng.Uint32())
	}
	return offsets
}

// Build generates the raw elevation field for one seed. The same
// (seed, width, height, params) always yields bit-identical output.
//
// Cell coordinates are centered on the grid before sampling, so the noise
// window stays stable when the grid is resized.
func (b *FieldBuilder) Build(seed uint64, width, height int, params NoiseParameters) *NoiseMap {
	offsets := octaveOffsets(seed, params.Octaves)

	m := &NoiseMap{
		Values: make([]float64, width*height),
		Width:  width,
		Height: height,
	}

	// Rows are partitioned across goroutines. Each goroutine writes a
	// disjoint slice of Values and tracks its own extremes, merged once the
	// sweep has finished.
	mins := make([]float64, b.workers)
	maxs := make([]float64, b.workers)
	for i := range mins {
		mins[i] = math.Inf(1)
		maxs[i] = math.Inf(-1)
	}

	halfW := float64(width) / 2
	halfH := float64(height) / 2

	parallel.WithNumGoroutines(b.workers).For(height, func(y, grID int) {
		for x := 0; x < width; x++ {
			amplitude := 1.0
			frequency := 1.0
			value := 0.0

			for _, off := range offsets {
				sampleX := frequency * (float64(x) - halfW + off[0]) / (params.Scale * float64(width))
				sampleY := frequency * (float64(y) - halfH + off[1]) / (params.Scale * float64(height))

				value += amplitude * b.src.Noise2D(sampleX, sampleY)
				amplitude *= params.Persistence
				frequency *= params.Lacunarity
			}

			if value < mins[grID] {
				mins[grID] = value
			}
			if value > maxs[grID] {
				maxs[grID] = value
			}
			m.Values[y*width+x] = value
		}
	})

	m.Min = math.Inf(1)
	m.Max = math.Inf(-1)
	for i := range mins {
		m.Min = math.Min(m.Min, mins[i])
		m.Max = math.Max(m.Max, maxs[i])
	}
	return m
}
