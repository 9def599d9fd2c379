package exporter

import (
	"strconv"

	"odatlas/internal/mortality"
)

// PooledHeaders are the columns of the exported pooled view.
var PooledHeaders = []string{"State", "State Name", "Year", "Proportion", "Delta"}

// SplitHeaders are the columns of the exported split view.
var SplitHeaders = []string{"State", "State Name", "Year", "Cause", "Proportion"}

// PooledTable flattens the pooled view into CSV records, preserving the
// calculator's deterministic ordering.
func PooledTable(pooled []mortality.PooledProportion) [][]string {
	records := make([][]string, 0, len(pooled))
	for _, p := range pooled {
		records = append(records, []string{
			p.StateCode,
			p.StateName,
			strconv.Itoa(p.Year),
			formatProportion(p.Proportion),
			formatProportion(p.Delta),
		})
	}
	return records
}

// SplitTable flattens the split view into CSV records.
func SplitTable(split []mortality.SplitProportion) [][]string {
	records := make([][]string, 0, len(split))
	for _, s := range split {
		records = append(records, []string{
			s.StateCode,
			s.StateName,
			strconv.Itoa(s.Year),
			string(s.Cause),
			formatProportion(s.Proportion),
		})
	}
	return records
}

func formatProportion(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
