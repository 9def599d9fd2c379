package render

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"odatlas/internal/mortality"
)

// ChartRenderer draws per-state cause-breakdown line charts from the
// split proportion view.
type ChartRenderer struct {
	width  vg.Length
	height vg.Length
	format string
	logger *slog.Logger
}

// NewChartRenderer creates a chart renderer producing images of the
// given size in inches. format is the output file extension.
func NewChartRenderer(widthInches, heightInches float64, format string, logger *slog.Logger) *ChartRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartRenderer{
		width:  vg.Length(widthInches) * vg.Inch,
		height: vg.Length(heightInches) * vg.Inch,
		format: strings.TrimPrefix(format, "."),
		logger: logger,
	}
}

// RenderCauseCharts draws one line chart per detail-reporting state into
// outDir and returns the written paths. Each chart plots the per-cause
// share of all deaths over the report years, one line per cause in the
// fixed CauseOrder so legends are identical across states.
func (r *ChartRenderer) RenderCauseCharts(split []mortality.SplitProportion, outDir string) ([]string, error) {
	if len(split) == 0 {
		return nil, fmt.Errorf("render cause charts: %w", mortality.ErrNothingToRender)
	}

	byState := make(map[string]map[causeYear]float64)
	names := make(map[string]string)
	for _, s := range split {
		if byState[s.StateCode] == nil {
			byState[s.StateCode] = make(map[causeYear]float64)
		}
		byState[s.StateCode][causeYear{s.Cause, s.Year}] = s.Proportion
		names[s.StateCode] = s.StateName
	}

	states := make([]string, 0, len(byState))
	for code := range byState {
		states = append(states, code)
	}
	sort.Strings(states)

	var written []string
	for _, code := range states {
		path := filepath.Join(outDir, fmt.Sprintf("causes_%s.%s", strings.ToLower(code), r.format))
		if err := r.renderState(names[code], byState[code], path); err != nil {
			return written, fmt.Errorf("render cause chart for %s: %w", code, err)
		}
		written = append(written, path)
	}

	r.logger.Info("rendered cause charts", "states", len(states), "out_dir", outDir)
	return written, nil
}

type causeYear struct {
	cause mortality.CauseKey
	year  int
}

func (r *ChartRenderer) renderState(stateName string, values map[causeYear]float64, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: share of deaths by drug category", stateName)
	p.X.Label.Text = "12 months ending August"
	p.Y.Label.Text = "Share of all deaths"
	p.X.Tick.Marker = yearTicks()
	p.Legend.Top = true
	p.Legend.Left = true

	for i, cause := range mortality.CauseOrder {
		pts := make(plotter.XYs, 0, len(mortality.ReportYears))
		for _, year := range mortality.ReportYears {
			v, ok := values[causeYear{cause, year}]
			if !ok {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(year), Y: v})
		}
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("line for cause %s: %w", cause, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(cause.Title(), line)
	}

	return p.Save(r.width, r.height, path)
}

// yearTicks pins the x axis to the fixed report-year domain rather than
// letting the plotter infer fractional year ticks.
func yearTicks() plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(mortality.ReportYears))
	for i, year := range mortality.ReportYears {
		ticks[i] = plot.Tick{Value: float64(year), Label: fmt.Sprintf("%d", year)}
	}
	return ticks
}
