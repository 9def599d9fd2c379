package mortality

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Required columns of the source table. Any additional columns are
// passthrough and ignored.
const (
	colStateCode = "State"
	colStateName = "State Name"
	colYear      = "Year"
	colMonth     = "Month"
	colIndicator = "Indicator"
	colValue     = "Data Value"
)

var requiredColumns = []string{
	colStateCode, colStateName, colYear, colMonth, colIndicator, colValue,
}

// LoadRecords reads the mortality CSV at path and returns the rows whose
// month field equals the given reporting month. Year values are checked
// against the fixed ReportYears domain so downstream grouping never sees
// a year outside the reporting window.
func LoadRecords(path, month string, logger *slog.Logger) ([]Record, error) {
	if logger == nil {
		logger = slog.Default()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged passthrough columns are tolerated

	header, err := reader.Read()
	if err != nil {
		return nil, &FormatError{Path: path, Detail: fmt.Sprintf("read header: %v", err)}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, &FormatError{
				Path:   path,
				Column: name,
				Detail: fmt.Sprintf("missing required column %q", name),
			}
		}
	}

	yearDomain := make(map[int]bool, len(ReportYears))
	for _, y := range ReportYears {
		yearDomain[y] = true
	}

	var (
		records  []Record
		rowNum   = 1 // header was row 1
		filtered int
	)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FormatError{Path: path, Row: rowNum + 1, Detail: fmt.Sprintf("read row: %v", err)}
		}
		rowNum++

		field := func(name string) string {
			idx := columns[name]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		if field(colMonth) != month {
			filtered++
			continue
		}

		year, err := strconv.Atoi(field(colYear))
		if err != nil {
			return nil, &FormatError{
				Path: path, Row: rowNum, Column: colYear,
				Detail: fmt.Sprintf("non-numeric year %q", field(colYear)),
			}
		}
		if !yearDomain[year] {
			return nil, &FormatError{
				Path: path, Row: rowNum, Column: colYear,
				Detail: fmt.Sprintf("year %d outside reporting domain %v", year, ReportYears),
			}
		}

		rawValue := strings.ReplaceAll(field(colValue), ",", "")
		value, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			return nil, &FormatError{
				Path: path, Row: rowNum, Column: colValue,
				Detail: fmt.Sprintf("non-numeric value %q for indicator %q", field(colValue), field(colIndicator)),
			}
		}

		records = append(records, Record{
			StateCode: field(colStateCode),
			StateName: field(colStateName),
			Year:      year,
			Month:     month,
			Indicator: field(colIndicator),
			Value:     value,
			Row:       rowNum,
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: month %q, file %s", ErrNoRecords, month, path)
	}

	logger.Info("loaded mortality records",
		"path", path,
		"month", month,
		"kept", len(records),
		"filtered", filtered)

	return records, nil
}
