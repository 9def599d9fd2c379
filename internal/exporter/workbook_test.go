package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"odatlas/internal/mortality"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "proportions.xlsx")

	split := []mortality.SplitProportion{
		{StateCode: "VT", StateName: "Vermont", Year: 2015, Cause: mortality.CauseHeroin, Proportion: 0.05},
		{StateCode: "VT", StateName: "Vermont", Year: 2015, Cause: mortality.CauseCocaine, Proportion: 0.01},
	}

	writer := NewWorkbookWriter(nil)
	require.NoError(t, writer.WriteWorkbook(path, samplePooled(), split))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{SheetPooled, SheetSplit}, f.GetSheetList())

	rows, err := f.GetRows(SheetPooled)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, PooledHeaders, rows[0])
	assert.Equal(t, "CT", rows[1][0])
	assert.Equal(t, "2016", rows[2][2])

	rows, err = f.GetRows(SheetSplit)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "heroin", rows[1][3])
}
