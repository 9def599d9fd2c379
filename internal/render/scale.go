package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"

	"odatlas/internal/geo"
)

// SequentialScale maps absolute proportions onto a single-direction
// color map. The domain spans the minimum to maximum observed value
// across every rendered year, so per-year panels are comparable.
type SequentialScale struct {
	cm palette.ColorMap
}

// NewSequentialScale builds a sequential scale over [min, max]. A
// degenerate domain (min == max) is widened by a hair so the color map
// stays well-defined.
func NewSequentialScale(min, max float64) *SequentialScale {
	if min == max {
		max = min + 1e-9
	}
	cm := moreland.ExtendedKindlmann()
	cm.SetMin(min)
	cm.SetMax(max)
	return &SequentialScale{cm: cm}
}

// Domain returns the scale's [min, max] bounds.
func (s *SequentialScale) Domain() (min, max float64) {
	return s.cm.Min(), s.cm.Max()
}

// At returns the color for v, clamping values to the domain.
func (s *SequentialScale) At(v float64) color.Color {
	return colorAt(s.cm, v)
}

// DivergingScale maps year-over-year deltas onto a diverging color map
// whose domain is forced symmetric around zero: [-maxAbs, +maxAbs]. Zero
// delta therefore always maps to the neutral midpoint.
type DivergingScale struct {
	cm     palette.DivergingColorMap
	maxAbs float64
}

// NewDivergingScale builds a diverging scale for the given maximum
// absolute delta. A zero maxAbs (all deltas zero) is widened so the
// scale stays well-defined.
func NewDivergingScale(maxAbs float64) *DivergingScale {
	maxAbs = math.Abs(maxAbs)
	if maxAbs == 0 {
		maxAbs = 1e-9
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-maxAbs)
	cm.SetMax(maxAbs)
	return &DivergingScale{cm: cm, maxAbs: maxAbs}
}

// Domain returns the symmetric [-maxAbs, +maxAbs] bounds.
func (s *DivergingScale) Domain() (min, max float64) {
	return s.cm.Min(), s.cm.Max()
}

// At returns the color for v, clamping values to the domain.
func (s *DivergingScale) At(v float64) color.Color {
	return colorAt(s.cm, v)
}

func colorAt(cm palette.ColorMap, v float64) color.Color {
	v = math.Max(cm.Min(), math.Min(cm.Max(), v))
	c, err := cm.At(v)
	if err != nil {
		// Unreachable after clamping; fall back to the neutral gray the
		// renderer uses for missing data.
		return color.Gray{Y: 128}
	}
	return c
}

// ProportionDomain returns the minimum and maximum pooled proportion
// across all map rows.
func ProportionDomain(rows []geo.MapRow) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, r := range rows {
		min = math.Min(min, r.Proportion)
		max = math.Max(max, r.Proportion)
	}
	if min > max { // no rows
		return 0, 0
	}
	return min, max
}

// MaxAbsDelta returns the largest absolute year-over-year delta across
// all map rows.
func MaxAbsDelta(rows []geo.MapRow) float64 {
	var maxAbs float64
	for _, r := range rows {
		maxAbs = math.Max(maxAbs, math.Abs(r.Delta))
	}
	return maxAbs
}
