// Command reportgen runs the overdose mortality report pipeline: it
// loads the VSRR mortality CSV, derives pooled and per-cause death
// proportions by state and year, joins them to US state polygons, and
// writes choropleth maps, per-state cause charts, and the derived
// tables into the reports directory.
package main

import (
	"flag"
	"log/slog"
	"os"

	"odatlas/internal/config"
	"odatlas/internal/exporter"
	"odatlas/internal/geo"
	"odatlas/internal/infrastructure"
	"odatlas/internal/mortality"
	"odatlas/internal/render"
)

func main() {
	configPath := flag.String("config", "odatlas.yaml", "path to YAML configuration")
	inputFile := flag.String("input", "", "mortality CSV (overrides config)")
	geoFile := flag.String("geo", "", "state polygon GeoJSON (overrides config)")
	outDir := flag.String("out", "", "reports directory (overrides config)")
	month := flag.String("month", "", "reporting month (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *inputFile != "" {
		cfg.Pipeline.InputFile = *inputFile
	}
	if *geoFile != "" {
		cfg.Pipeline.GeoFile = *geoFile
	}
	if *outDir != "" {
		cfg.Paths.ReportsDir = *outDir
	}
	if *month != "" {
		cfg.Pipeline.Month = *month
	}

	logger, closeLog, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		logger.Error("report generation failed", "error", err)
		closeLog()
		os.Exit(1)
	}
	logger.Info("report generation complete", "reports_dir", cfg.Paths.ReportsDir)
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.EnsureReportsDir(); err != nil {
		return err
	}

	// Stage 1: load and filter to the reporting month.
	records, err := mortality.LoadRecords(cfg.Pipeline.InputFile, cfg.Pipeline.Month, logger)
	if err != nil {
		return err
	}

	// Stage 2: resolve indicators to canonical cause keys.
	normalized, err := mortality.Normalize(records, logger)
	if err != nil {
		return err
	}

	// Stage 3: derive the proportion views.
	calc := mortality.NewCalculator(logger)
	aggs := calc.Aggregate(normalized)
	pooled, err := calc.Pooled(aggs)
	if err != nil {
		return err
	}
	split, err := calc.Split(aggs)
	if err != nil {
		return err
	}

	// Stage 4: join to state polygons.
	shapes, err := geo.LoadShapes(cfg.Pipeline.GeoFile, cfg.Geo.NameProperty, logger)
	if err != nil {
		return err
	}
	overrides := make(map[string]geo.Point, len(cfg.Geo.LabelOverrides))
	for state, o := range cfg.Geo.LabelOverrides {
		overrides[state] = geo.Point{Lon: o.Lon, Lat: o.Lat}
	}
	rows, anchors := geo.NewJoiner(overrides, logger).Join(pooled, shapes)

	// Stage 5: render maps and charts.
	maps := render.NewMapRenderer(cfg.Render.MapWidthIn, cfg.Render.MapHeightIn, cfg.Render.Format, logger)
	if _, err := maps.RenderMaps(rows, anchors, cfg.Paths.ReportsDir); err != nil {
		return err
	}
	charts := render.NewChartRenderer(cfg.Render.ChartWidthIn, cfg.Render.ChartHeightIn, cfg.Render.Format, logger)
	if _, err := charts.RenderCauseCharts(split, cfg.Paths.ReportsDir); err != nil {
		return err
	}

	// Stage 6: export the derived tables next to the images.
	csvWriter := exporter.NewCSVWriter(logger)
	if err := csvWriter.WriteTable(cfg.ReportPath("pooled_proportions.csv"), exporter.PooledHeaders, exporter.PooledTable(pooled)); err != nil {
		return err
	}
	if err := csvWriter.WriteTable(cfg.ReportPath("split_proportions.csv"), exporter.SplitHeaders, exporter.SplitTable(split)); err != nil {
		return err
	}
	return exporter.NewWorkbookWriter(logger).WriteWorkbook(cfg.ReportPath("proportions.xlsx"), pooled, split)
}
