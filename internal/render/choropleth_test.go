package render

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odatlas/internal/geo"
	"odatlas/internal/mortality"
)

func testRings(lon, lat float64) [][]geo.Point {
	return [][]geo.Point{{
		{Lon: lon, Lat: lat},
		{Lon: lon + 2, Lat: lat},
		{Lon: lon + 2, Lat: lat + 2},
		{Lon: lon, Lat: lat + 2},
		{Lon: lon, Lat: lat},
	}}
}

func testMapRows() ([]geo.MapRow, []geo.LabelAnchor) {
	rows := []geo.MapRow{
		{State: "connecticut", StateCode: "CT", Year: 2015, Rings: testRings(-73, 41), Proportion: 0.20, Delta: 0},
		{State: "connecticut", StateCode: "CT", Year: 2016, Rings: testRings(-73, 41), Proportion: 0.25, Delta: 0.05},
		{State: "vermont", StateCode: "VT", Year: 2015, Rings: testRings(-73, 43), Proportion: 0.10, Delta: 0},
		{State: "vermont", StateCode: "VT", Year: 2016, Rings: testRings(-73, 43), Proportion: 0.08, Delta: -0.02},
	}
	anchors := []geo.LabelAnchor{
		{State: "connecticut", Code: "CT", Anchor: geo.Point{Lon: -72, Lat: 42}},
		{State: "vermont", Code: "VT", Anchor: geo.Point{Lon: -72, Lat: 44}},
	}
	return rows, anchors
}

func TestRenderMaps(t *testing.T) {
	rows, anchors := testMapRows()
	outDir := t.TempDir()

	renderer := NewMapRenderer(6, 4, "png", nil)
	written, err := renderer.RenderMaps(rows, anchors, outDir)
	require.NoError(t, err)

	// Two years: absolute + delta panel each. The 2015 delta panel is
	// the baseline rendered with the absolute scale.
	require.Len(t, written, 4)
	for _, path := range written {
		info, err := os.Stat(path)
		require.NoError(t, err, "expected artifact %s", path)
		assert.Greater(t, info.Size(), int64(0))
	}

	for _, name := range []string{
		"proportion_map_2015.png",
		"proportion_map_2016.png",
		"delta_map_2015.png",
		"delta_map_2016.png",
	} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
}

func TestRenderMapsEmpty(t *testing.T) {
	renderer := NewMapRenderer(6, 4, "png", nil)
	_, err := renderer.RenderMaps(nil, nil, t.TempDir())
	assert.ErrorIs(t, err, mortality.ErrNothingToRender)
}

func TestRenderCauseCharts(t *testing.T) {
	var split []mortality.SplitProportion
	for _, year := range mortality.ReportYears {
		for i, cause := range mortality.CauseOrder {
			split = append(split, mortality.SplitProportion{
				StateCode:  "VT",
				StateName:  "Vermont",
				Year:       year,
				Cause:      cause,
				Proportion: float64(i) * 0.01,
			})
		}
	}

	outDir := t.TempDir()
	renderer := NewChartRenderer(6, 4, "png", nil)
	written, err := renderer.RenderCauseCharts(split, outDir)
	require.NoError(t, err)
	require.Len(t, written, 1)

	path := filepath.Join(outDir, "causes_vt.png")
	assert.FileExists(t, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderCauseChartsEmpty(t *testing.T) {
	renderer := NewChartRenderer(6, 4, "png", nil)
	_, err := renderer.RenderCauseCharts(nil, t.TempDir())
	assert.ErrorIs(t, err, mortality.ErrNothingToRender)
}

func TestYearsOf(t *testing.T) {
	rows := []geo.MapRow{
		{Year: 2017}, {Year: 2015}, {Year: 2016}, {Year: 2015},
	}
	assert.Equal(t, []int{2015, 2016, 2017}, yearsOf(rows))
}

func ExampleNewDivergingScale() {
	scale := NewDivergingScale(0.08)
	min, max := scale.Domain()
	fmt.Printf("domain [%.2f, %.2f]\n", min, max)
	// Output: domain [-0.08, 0.08]
}
