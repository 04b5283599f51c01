package gen

import (
	"fmt"
	"math"
)

// FalloffParameters shape the radial edge falloff: A is the steepness
// exponent, B skews the curve midpoint, Multiplier scales how strongly the
// falloff suppresses elevation toward the edges.
type FalloffParameters struct {
	A          float64
	B          float64
	Multiplier float64
}

// Validate rejects parameter combinations that would push the falloff curve
// outside real arithmetic. B must stay non-negative so the (B - B·d) base
// is never raised to a fractional power while negative.
func (p FalloffParameters) Validate() error {
	if math.IsNaN(p.A) || math.IsInf(p.A, 0) || p.A <= 0 {
		return fmt.Errorf("falloff steepness must be positive and finite, got %v", p.A)
	}
	if math.IsNaN(p.B) || math.IsInf(p.B, 0) || p.B < 0 {
		return fmt.Errorf("falloff midpoint must be non-negative and finite, got %v", p.B)
	}
	if math.IsNaN(p.Multiplier) || p.Multiplier < 0 || p.Multiplier > 1 {
		return fmt.Errorf("falloff multiplier must be in [0,1], got %v", p.Multiplier)
	}
	return nil
}

// ApplyFalloff lowers the field toward its edges in place, biasing the
// terrain toward an island shape. Distance from center is Chebyshev-style
// in normalized [-1,1] space, giving a squared-off mask. The subtraction is
// scaled by the pre-falloff value range; Min and Max stay frozen because
// falloff is a display bias, not a redefinition of the range.
func ApplyFalloff(m *NoiseMap, params FalloffParameters) {
	span := m.Max - m.Min

	for y := 0; y < m.Height; y++ {
		j := math.Abs(float64(y)/float64(m.Height)*2 - 1)
		for x := 0; x < m.Width; x++ {
			i := math.Abs(float64(x)/float64(m.Width)*2 - 1)
			d := math.Max(i, j)

			m.Values[y*m.Width+x] -= span * params.Multiplier * falloffCurve(d, params.A, params.B)
		}
	}
}

// falloffCurve is the S-curve d^a / (d^a + (b - b·d)^a): 0 at the grid
// center, 1 at the edges. d is clamped to [0,1] so floating error cannot
// hand math.Pow a negative base.
func falloffCurve(d, a, b float64) float64 {
	if d < 0 {
		d = 0
	} else if d > 1 {
		d = 1
	}
	if d == 0 {
		return 0
	}
	da := math.Pow(d, a)
	return da / (da + math.Pow(b-b*d, a))
}
