package render

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"odatlas/internal/geo"
	"odatlas/internal/mortality"
)

// MapRenderer draws choropleth maps from joined map rows.
type MapRenderer struct {
	width  vg.Length
	height vg.Length
	format string
	logger *slog.Logger
}

// NewMapRenderer creates a map renderer producing images of the given
// size in inches. format is the output file extension (png, svg, pdf).
func NewMapRenderer(widthInches, heightInches float64, format string, logger *slog.Logger) *MapRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &MapRenderer{
		width:  vg.Length(widthInches) * vg.Inch,
		height: vg.Length(heightInches) * vg.Inch,
		format: strings.TrimPrefix(format, "."),
		logger: logger,
	}
}

// RenderMaps draws the full map set into outDir and returns the written
// paths. Every year gets an absolute-proportion map on a shared
// sequential scale. Every year except the earliest also gets a
// year-over-year delta map on a shared symmetric diverging scale; the
// earliest year's delta panel is drawn with the absolute scale instead,
// since a diff map of the baseline year is not meaningful.
func (r *MapRenderer) RenderMaps(rows []geo.MapRow, anchors []geo.LabelAnchor, outDir string) ([]string, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("render maps: %w", mortality.ErrNothingToRender)
	}

	years := yearsOf(rows)
	firstYear := years[0]

	propMin, propMax := ProportionDomain(rows)
	seq := NewSequentialScale(propMin, propMax)
	div := NewDivergingScale(MaxAbsDelta(rows))

	var written []string
	for _, year := range years {
		path := filepath.Join(outDir, fmt.Sprintf("proportion_map_%d.%s", year, r.format))
		title := fmt.Sprintf("Drug-involved share of all deaths, 12 months ending August %d", year)
		if err := r.renderYear(rows, anchors, year, title, path, func(row geo.MapRow) color.Color {
			return seq.At(row.Proportion)
		}); err != nil {
			return written, fmt.Errorf("render proportion map %d: %w", year, err)
		}
		written = append(written, path)

		path = filepath.Join(outDir, fmt.Sprintf("delta_map_%d.%s", year, r.format))
		if year == firstYear {
			// Baseline year: no prior-year delta exists, reuse the
			// absolute scale.
			title = fmt.Sprintf("Baseline drug-involved share, %d", year)
			if err := r.renderYear(rows, anchors, year, title, path, func(row geo.MapRow) color.Color {
				return seq.At(row.Proportion)
			}); err != nil {
				return written, fmt.Errorf("render baseline map %d: %w", year, err)
			}
		} else {
			title = fmt.Sprintf("Change in drug-involved share, %d vs %d", year, year-1)
			if err := r.renderYear(rows, anchors, year, title, path, func(row geo.MapRow) color.Color {
				return div.At(row.Delta)
			}); err != nil {
				return written, fmt.Errorf("render delta map %d: %w", year, err)
			}
		}
		written = append(written, path)
	}

	r.logger.Info("rendered choropleth maps",
		"years", len(years),
		"files", len(written),
		"out_dir", outDir)
	return written, nil
}

// renderYear draws one map panel: each state's rings filled with the
// color of its value for the year, with state-code labels at their
// anchor points.
func (r *MapRenderer) renderYear(rows []geo.MapRow, anchors []geo.LabelAnchor, year int, title, path string, fill func(geo.MapRow) color.Color) error {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	drawn := 0
	for _, row := range rows {
		if row.Year != year {
			continue
		}
		ringXYs := make([]plotter.XYer, 0, len(row.Rings))
		for _, ring := range row.Rings {
			xys := make(plotter.XYs, len(ring))
			for i, pt := range ring {
				xys[i].X = pt.Lon
				xys[i].Y = pt.Lat
			}
			ringXYs = append(ringXYs, xys)
		}
		poly, err := plotter.NewPolygon(ringXYs...)
		if err != nil {
			return fmt.Errorf("polygon for state %s: %w", row.State, err)
		}
		poly.Color = fill(row)
		poly.LineStyle.Color = color.Gray{Y: 96}
		poly.LineStyle.Width = vg.Points(0.5)
		p.Add(poly)
		drawn++
	}
	if drawn == 0 {
		return fmt.Errorf("year %d: %w", year, mortality.ErrNothingToRender)
	}

	labels, err := anchorLabels(anchors)
	if err != nil {
		return fmt.Errorf("state labels: %w", err)
	}
	p.Add(labels)

	return p.Save(r.width, r.height, path)
}

func anchorLabels(anchors []geo.LabelAnchor) (*plotter.Labels, error) {
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(anchors)),
		Labels: make([]string, len(anchors)),
	}
	for i, a := range anchors {
		xyl.XYs[i].X = a.Anchor.Lon
		xyl.XYs[i].Y = a.Anchor.Lat
		xyl.Labels[i] = a.Code
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
		labels.TextStyle[i].Font.Size = vg.Points(6)
	}
	return labels, nil
}

// yearsOf returns the distinct years in ascending order.
func yearsOf(rows []geo.MapRow) []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range rows {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}
