// Package export renders planting history into an Excel workbook for farmers
// who keep their paperwork in spreadsheets.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"croplan/pkg/history/repository"
)

const (
	historySheet = "History"
	statsSheet   = "Yield stats"
)

var historyHeader = []string{"Field", "Year", "Season", "Crop", "Yield (t/ha)", "Notes"}
var statsHeader = []string{"Crop", "Average yield (t/ha)", "Records"}

// HistoryWorkbook builds a two-sheet workbook: the raw planting log and the
// per-crop yield summary.
func HistoryWorkbook(history []repository.HistoryWithField, stats []repository.YieldStat) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), historySheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(historySheet, "A1", &historyHeader); err != nil {
		return nil, err
	}
	for i, h := range history {
		yield := ""
		if h.YieldAmount != nil {
			yield = fmt.Sprintf("%.2f", *h.YieldAmount)
		}
		row := []interface{}{h.FieldName, h.Year, h.Season, h.Crop, yield, h.Notes}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(statsSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(statsSheet, "A1", &statsHeader); err != nil {
		return nil, err
	}
	for i, s := range stats {
		row := []interface{}{s.Crop, s.AvgYield, s.Count}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(statsSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}
