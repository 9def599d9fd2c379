package geo

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// LoadShapes reads a GeoJSON FeatureCollection of US state boundaries
// and returns shapes keyed by lowercase state name. nameProperty is the
// feature property carrying the state name. Only Polygon and
// MultiPolygon geometries are accepted; interior rings are ignored since
// state outlines carry no holes worth drawing at report scale.
func LoadShapes(path, nameProperty string, logger *slog.Logger) (map[string]StateShape, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read polygon source: %w", err)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decode polygon source %s: %w", path, err)
	}

	shapes := make(map[string]StateShape, len(fc.Features))
	for i, feature := range fc.Features {
		name, _ := feature.Properties[nameProperty].(string)
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return nil, fmt.Errorf("feature %d in %s has no %q property", i, path, nameProperty)
		}

		var rings [][]Point
		switch g := feature.Geometry.(type) {
		case *geom.Polygon:
			rings = append(rings, outerRing(g))
		case *geom.MultiPolygon:
			for j := 0; j < g.NumPolygons(); j++ {
				rings = append(rings, outerRing(g.Polygon(j)))
			}
		default:
			return nil, fmt.Errorf("feature %q in %s has unsupported geometry %T", name, path, feature.Geometry)
		}

		shape := StateShape{Name: name, Rings: rings}
		if !shape.IsValid() {
			return nil, fmt.Errorf("feature %q in %s has a degenerate ring", name, path)
		}
		shapes[name] = shape
	}

	if len(shapes) == 0 {
		return nil, fmt.Errorf("polygon source %s contains no features", path)
	}

	logger.Info("loaded state shapes", "path", path, "states", len(shapes))
	return shapes, nil
}

func outerRing(p *geom.Polygon) []Point {
	if p.NumLinearRings() == 0 {
		return nil
	}
	ring := p.LinearRing(0)
	points := make([]Point, 0, ring.NumCoords())
	for i := 0; i < ring.NumCoords(); i++ {
		c := ring.Coord(i)
		points = append(points, Point{Lon: c.X(), Lat: c.Y()})
	}
	return points
}
