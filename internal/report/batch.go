package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// BatchRow is one parsed row of a screen_materials_batch spreadsheet:
// material, T(C), Cl(mg/L), pH, DO(mg/L, optional), application.
type BatchRow struct {
	MaterialID   string
	TemperatureC float64
	ChlorideMgL  float64
	PH           float64
	DOMgL        *float64
	Application  string
}

// ParseBatchXLSX reads an uploaded .xlsx workbook and returns its parsed
// rows, skipping (not failing on) any row that cannot be parsed.
func ParseBatchXLSX(r io.Reader) ([]BatchRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid xlsx file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return nil, fmt.Errorf("empty or unreadable sheet")
	}

	var out []BatchRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		parsed, ok := parseBatchRow(row)
		if !ok {
			continue
		}
		out = append(out, parsed)
	}
	return out, nil
}

// expected columns: material, temperature_C, chloride_mg_L, pH, DO_mg_L (optional), application (optional)
func parseBatchRow(row []string) (BatchRow, bool) {
	if len(row) < 4 {
		return BatchRow{}, false
	}
	material := row[0]
	tC, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return BatchRow{}, false
	}
	cl, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return BatchRow{}, false
	}
	pH, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return BatchRow{}, false
	}
	var doMgL *float64
	if len(row) > 4 && row[4] != "" {
		if v, err := strconv.ParseFloat(row[4], 64); err == nil {
			doMgL = &v
		}
	}
	application := ""
	if len(row) > 5 {
		application = row[5]
	}
	return BatchRow{
		MaterialID: material, TemperatureC: tC, ChlorideMgL: cl, PH: pH,
		DOMgL: doMgL, Application: application,
	}, true
}

// BatchResultRow is one row of the batch screening's output workbook.
type BatchResultRow struct {
	MaterialID    string
	Compatibility string
	Notes         string
}

// WriteBatchResultsXLSX renders results as a one-sheet workbook.
func WriteBatchResultsXLSX(w io.Writer, results []BatchResultRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Screening Results"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "material")
	f.SetCellValue(sheet, "B1", "compatibility")
	f.SetCellValue(sheet, "C1", "notes")
	for i, r := range results {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.MaterialID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Compatibility)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Notes)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")
	return f.Write(w)
}
