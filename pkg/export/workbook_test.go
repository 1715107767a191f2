package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"croplan/pkg/history/repository"
)

func TestHistoryWorkbook(t *testing.T) {
	yield := 3.25
	history := []repository.HistoryWithField{
		{FieldName: "North plot", Year: 2023, Season: "spring", Crop: "winter wheat", YieldAmount: &yield, Notes: "late sowing"},
		{FieldName: "South plot", Year: 2022, Season: "autumn", Crop: "rye"},
	}
	stats := []repository.YieldStat{
		{Crop: "winter wheat", AvgYield: 3.25, Count: 1},
	}

	f, err := HistoryWorkbook(history, stats)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{historySheet, statsSheet}, f.GetSheetList())

	name, err := f.GetCellValue(historySheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "North plot", name)

	yieldCell, err := f.GetCellValue(historySheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "3.25", yieldCell)

	// Missing yield renders as an empty cell, not zero.
	emptyYield, err := f.GetCellValue(historySheet, "E3")
	require.NoError(t, err)
	assert.Equal(t, "", emptyYield)

	statCrop, err := f.GetCellValue(statsSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "winter wheat", statCrop)
}

func TestHistoryWorkbookEmpty(t *testing.T) {
	f, err := HistoryWorkbook(nil, nil)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(historySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Field", header)
}
