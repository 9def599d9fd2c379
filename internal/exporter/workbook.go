package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"odatlas/internal/mortality"
)

// Sheet names in the exported workbook.
const (
	SheetPooled = "Pooled"
	SheetSplit  = "Split"
)

// WorkbookWriter exports the derived views as one Excel workbook.
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a workbook writer.
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger}
}

// WriteWorkbook writes the pooled and split views as two sheets of an
// xlsx workbook at path.
func (w *WorkbookWriter) WriteWorkbook(path string, pooled []mortality.PooledProportion, split []mortality.SplitProportion) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, SheetPooled, PooledHeaders, PooledTable(pooled)); err != nil {
		return fmt.Errorf("write %s sheet: %w", SheetPooled, err)
	}
	if err := writeSheet(f, SheetSplit, SplitHeaders, SplitTable(split)); err != nil {
		return fmt.Errorf("write %s sheet: %w", SheetSplit, err)
	}

	// Drop the default sheet excelize creates with the file.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	w.logger.Info("wrote workbook",
		"path", path,
		"pooled_rows", len(pooled),
		"split_rows", len(split))
	return nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, records [][]string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, record := range records {
		if err := writeRow(f, sheet, i+2, record); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
