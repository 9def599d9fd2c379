package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odatlas/internal/mortality"
)

func square(lon, lat, side float64) []Point {
	return []Point{
		{lon, lat},
		{lon + side, lat},
		{lon + side, lat + side},
		{lon, lat + side},
		{lon, lat},
	}
}

func TestBoundingBoxMidpoint(t *testing.T) {
	shape := StateShape{
		Name: "vermont",
		Rings: [][]Point{
			square(-73, 43, 1),
			square(-71, 45, 1), // disjoint region stretches the box
		},
	}

	mid := shape.BoundingBoxMidpoint()
	assert.InDelta(t, -71.5, mid.Lon, 1e-12)
	assert.InDelta(t, 44.5, mid.Lat, 1e-12)
}

func TestJoin(t *testing.T) {
	shapes := map[string]StateShape{
		"vermont":     {Name: "vermont", Rings: [][]Point{square(-73, 43, 1)}},
		"connecticut": {Name: "connecticut", Rings: [][]Point{square(-73, 41, 1)}},
		"guam":        {Name: "guam", Rings: [][]Point{square(144, 13, 1)}},
	}

	pooled := []mortality.PooledProportion{
		{StateCode: "VT", StateName: "Vermont", Year: 2015, Proportion: 0.1},
		{StateCode: "VT", StateName: "Vermont", Year: 2016, Proportion: 0.15, Delta: 0.05},
		{StateCode: "CT", StateName: "Connecticut", Year: 2015, Proportion: 0.2},
		{StateCode: "DC", StateName: "District of Columbia", Year: 2015, Proportion: 0.3},
	}

	t.Run("lossy inner join", func(t *testing.T) {
		joiner := NewJoiner(nil, nil)
		rows, anchors := joiner.Join(pooled, shapes)

		// DC has no polygon, Guam has no data; both are excluded.
		require.Len(t, rows, 3)
		require.Len(t, anchors, 2)

		assert.Equal(t, "connecticut", rows[0].State)
		assert.Equal(t, "vermont", rows[1].State)
		assert.Equal(t, 2015, rows[1].Year)
		assert.Equal(t, "vermont", rows[2].State)
		assert.Equal(t, 2016, rows[2].Year)
		assert.Equal(t, 0.05, rows[2].Delta)
	})

	t.Run("anchor defaults to bounding-box midpoint", func(t *testing.T) {
		joiner := NewJoiner(nil, nil)
		_, anchors := joiner.Join(pooled, shapes)

		require.Equal(t, "connecticut", anchors[0].State)
		assert.InDelta(t, -72.5, anchors[0].Anchor.Lon, 1e-12)
		assert.InDelta(t, 41.5, anchors[0].Anchor.Lat, 1e-12)
	})

	t.Run("configured override wins", func(t *testing.T) {
		joiner := NewJoiner(map[string]Point{"Vermont": {Lon: -72.7, Lat: 44.1}}, nil)
		_, anchors := joiner.Join(pooled, shapes)

		require.Equal(t, "vermont", anchors[1].State)
		assert.Equal(t, -72.7, anchors[1].Anchor.Lon)
		assert.Equal(t, 44.1, anchors[1].Anchor.Lat)
	})
}
