// Package exporter writes the derived proportion tables next to the
// rendered report artifacts.
//
// Two formats are produced: UTF-8-BOM CSV files (the BOM keeps Excel
// from misreading the encoding) and a single multi-sheet Excel workbook
// holding the pooled and split views.
package exporter
