package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odatlas/internal/mortality"
)

func samplePooled() []mortality.PooledProportion {
	return []mortality.PooledProportion{
		{StateCode: "CT", StateName: "Connecticut", Year: 2015, Proportion: 0.2, Delta: 0},
		{StateCode: "CT", StateName: "Connecticut", Year: 2016, Proportion: 0.25, Delta: 0.05},
	}
}

func TestWriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables", "pooled.csv")

	writer := NewCSVWriter(nil)
	require.NoError(t, writer.WriteTable(path, PooledHeaders, PooledTable(samplePooled())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// UTF-8 BOM prefix for Excel.
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, PooledHeaders, rows[0])
	assert.Equal(t, []string{"CT", "Connecticut", "2015", "0.200000", "0.000000"}, rows[1])
	assert.Equal(t, []string{"CT", "Connecticut", "2016", "0.250000", "0.050000"}, rows[2])
}

func TestSplitTable(t *testing.T) {
	split := []mortality.SplitProportion{
		{StateCode: "VT", StateName: "Vermont", Year: 2015, Cause: mortality.CauseHeroin, Proportion: 0.05},
	}

	records := SplitTable(split)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"VT", "Vermont", "2015", "heroin", "0.050000"}, records[0])
}
