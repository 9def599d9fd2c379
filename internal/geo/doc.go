// Package geo joins derived mortality proportions to US state boundary
// polygons and computes label anchor points for map rendering.
//
// Polygons come from an external GeoJSON FeatureCollection, keyed by
// lowercase full state name. The join with the mortality table is an
// accepted lossy inner join: the polygon dataset and the mortality
// dataset do not have identical state coverage, so non-matching names
// are excluded. Each exclusion is logged as a warning to catch
// geo-dataset drift rather than silently dropping it.
package geo
