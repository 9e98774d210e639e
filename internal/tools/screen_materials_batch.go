package tools

import (
	"bytes"
	"io"

	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/report"
)

// ScreenMaterialsBatchOutput is the batch screen's rendered output
// workbook plus the same per-row results screen_materials returns.
type ScreenMaterialsBatchOutput struct {
	Results    []CandidateScreen
	XLSXBytes  []byte
	Provenance Envelope
}

// ScreenMaterialsBatch parses an uploaded spreadsheet of candidate
// material/environment rows, screens each with ScreenMaterials, and
// renders an output workbook of compatibility tags.
func ScreenMaterialsBatch(cat *catalog.Catalog, r io.Reader) (ScreenMaterialsBatchOutput, error) {
	rows, err := report.ParseBatchXLSX(r)
	if err != nil {
		return ScreenMaterialsBatchOutput{}, err
	}

	var results []CandidateScreen
	var warnings []string
	for _, row := range rows {
		single := ScreenMaterials(cat, ScreenMaterialsInput{
			Environment: ScreenEnvironment{
				TemperatureC:       row.TemperatureC,
				ChlorideMgL:        row.ChlorideMgL,
				PH:                 row.PH,
				DissolvedOxygenMgL: row.DOMgL,
			},
			Candidates:  []string{row.MaterialID},
			Application: row.Application,
		})
		results = append(results, single.Results...)
		warnings = append(warnings, single.Provenance.Warnings...)
	}

	var resultRows []report.BatchResultRow
	for _, r := range results {
		compat := string(r.Compatibility)
		notes := r.Notes
		if r.Error != "" {
			compat = "error"
			notes = r.Error
		}
		resultRows = append(resultRows, report.BatchResultRow{
			MaterialID:    r.MaterialID,
			Compatibility: compat,
			Notes:         notes,
		})
	}

	var buf bytes.Buffer
	if err := report.WriteBatchResultsXLSX(&buf, resultRows); err != nil {
		return ScreenMaterialsBatchOutput{}, err
	}

	return ScreenMaterialsBatchOutput{
		Results:   results,
		XLSXBytes: buf.Bytes(),
		Provenance: newEnvelope(
			"catalog_driven_material_screen", "medium", nil,
			[]string{"compatibility is derived from this engine's own Tier-1/Tier-2 pitting assessment, not a handbook semantic search"},
			warnings,
		),
	}, nil
}
