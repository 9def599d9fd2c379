package geo

import "math"

// Point is a (longitude, latitude) vertex.
type Point struct {
	Lon float64
	Lat float64
}

// StateShape is the boundary of one US state: one or more outer polygon
// rings (states with disjoint regions have several), keyed by lowercase
// full state name. Shapes are read-only; the pipeline never mutates the
// polygon source.
type StateShape struct {
	Name  string // lowercase join key
	Rings [][]Point
}

// IsValid checks that the shape can be drawn.
func (s StateShape) IsValid() bool {
	if s.Name == "" || len(s.Rings) == 0 {
		return false
	}
	for _, ring := range s.Rings {
		if len(ring) < 3 {
			return false
		}
	}
	return true
}

// BoundingBoxMidpoint returns the midpoint of the shape's bounding box:
// the mean of min/max longitude and min/max latitude across all rings.
func (s StateShape) BoundingBoxMidpoint() Point {
	minLon, minLat := math.Inf(1), math.Inf(1)
	maxLon, maxLat := math.Inf(-1), math.Inf(-1)
	for _, ring := range s.Rings {
		for _, p := range ring {
			minLon = math.Min(minLon, p.Lon)
			maxLon = math.Max(maxLon, p.Lon)
			minLat = math.Min(minLat, p.Lat)
			maxLat = math.Max(maxLat, p.Lat)
		}
	}
	return Point{Lon: (minLon + maxLon) / 2, Lat: (minLat + maxLat) / 2}
}

// LabelAnchor is the point where a state's label is drawn.
type LabelAnchor struct {
	State  string // lowercase state name
	Code   string // two-letter state code
	Anchor Point
}

// MapRow is the renderable join of one state's shape with its pooled
// proportion for one year. Rows are ephemeral: built per render call and
// discarded after.
type MapRow struct {
	State      string // lowercase state name
	StateCode  string
	Year       int
	Rings      [][]Point
	Proportion float64
	Delta      float64
}
