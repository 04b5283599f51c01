package world

import (
	"fmt"
	"math"

	"github.com/OCharnyshevich/terrain-gen/internal/terrain/gen"
)

// Parameters fully describe one world generation run. They are copied by
// value; generation never mutates them.
type Parameters struct {
	Width     int
	Height    int
	Elevation gen.NoiseParameters
	Falloff   *gen.FalloffParameters // nil = no edge falloff
	SeaLevel  float64
}

// Validate rejects parameter sets that cannot produce a well-defined field.
// Generation itself never fails, so all checking happens here, up front.
func (p Parameters) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", p.Width, p.Height)
	}

	e := p.Elevation
	if !finite(e.Scale) || e.Scale <= 0 {
		return fmt.Errorf("scale must be positive and finite, got %v", e.Scale)
	}
	if e.Octaves < 0 {
		return fmt.Errorf("octaves must be >= 0, got %d", e.Octaves)
	}
	if !finite(e.Persistence) {
		return fmt.Errorf("persistence must be finite, got %v", e.Persistence)
	}
	if !finite(e.Lacunarity) {
		return fmt.Errorf("lacunarity must be finite, got %v", e.Lacunarity)
	}

	// Amplitude and frequency are multiplied once per octave; reject runs
	// whose final factors overflow float64.
	if e.Octaves > 0 {
		if !finite(math.Pow(e.Persistence, float64(e.Octaves))) {
			return fmt.Errorf("persistence %v is not usable over %d octaves", e.Persistence, e.Octaves)
		}
		if !finite(math.Pow(e.Lacunarity, float64(e.Octaves))) {
			return fmt.Errorf("lacunarity %v is not usable over %d octaves", e.Lacunarity, e.Octaves)
		}
	}

	if p.Falloff != nil {
		if err := p.Falloff.Validate(); err != nil {
			return err
		}
	}
	if math.IsNaN(p.SeaLevel) {
		return fmt.Errorf("sea level must not be NaN")
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// World binds a seed and parameter set to a generated elevation field. The
// field is replaced wholesale on regeneration, never patched.
type World struct {
	Seed      uint64
	Params    Parameters
	Elevation *gen.NoiseMap

	builder *gen.FieldBuilder
}

// New validates the parameters and generates the initial elevation field
// through the given noise source.
func New(seed uint64, params Parameters, src gen.Source, workers int) (*World, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("world parameters: %w", err)
	}

	w := &World{
		Seed:    seed,
		Params:  params,
		builder: gen.NewFieldBuilder(src, workers),
	}
	w.Elevation = w.generateElevation(seed)
	return w, nil
}

// Generate discards the current elevation field and rebuilds it from
// scratch for the given seed. No octave state is carried between runs.
func (w *World) Generate(seed uint64) {
	w.Seed = seed
	w.Elevation = w.generateElevation(seed)
}

func (w *World) generateElevation(seed uint64) *gen.NoiseMap {
	m := w.builder.Build(seed, w.Params.Width, w.Params.Height, w.Params.Elevation)
	if w.Params.Falloff != nil {
		gen.ApplyFalloff(m, *w.Params.Falloff)
	}
	return m
}

// LandFraction reports the share of cells whose raw elevation is above the
// sea level threshold.
func (w *World) LandFraction() float64 {
	land := 0
	for _, v := range w.Elevation.Values {
		if v > w.Params.SeaLevel {
			land++
		}
	}
	return float64(land) / float64(len(w.Elevation.Values))
}
