// Package render draws the report artifacts: choropleth maps of pooled
// overdose proportions, diverging maps of year-over-year change, and
// per-state line charts of cause-level proportions.
//
// Color semantics follow two rules so panels stay comparable:
//
//   - Absolute-proportion maps share one sequential scale spanning the
//     minimum to maximum proportion observed across all rendered years.
//   - Delta maps share one diverging scale whose domain is forced
//     symmetric around zero, so zero change always lands on the scale's
//     neutral midpoint regardless of which sign dominates.
//
// The first year of the series has no real delta (it is 0 by
// definition), so its delta panel is drawn with the absolute scale
// instead of the diverging one.
//
// All drawing goes through gonum.org/v1/plot; output format follows the
// file extension (png, svg, pdf).
package render
