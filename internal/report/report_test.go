package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAssessmentReportProducesNonEmptyPDF(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateAssessmentReport(&buf, Metadata{Project: "Topside Riser", Author: "M. Reyes"}, AssessmentSummary{
		ToolName:     "assess_galvanic",
		HeadlineText: "current_ratio=4.2, severity=Moderate",
		InputsText:   "anode=HY80, cathode=SS316",
		Warnings:     []string{"chloride exceeds tabulated galvanic-series test solution"},
		Sources:      []string{"ASTM G82"},
	})
	require.NoError(t, err)
	require.Greater(t, buf.Len(), 0)
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestParseBatchXLSXRejectsNonXLSXData(t *testing.T) {
	_, err := ParseBatchXLSX(strings.NewReader("not a spreadsheet"))
	require.Error(t, err)
}

func TestWriteBatchResultsXLSXProducesNonEmptyWorkbook(t *testing.T) {
	var buf bytes.Buffer
	err := WriteBatchResultsXLSX(&buf, []BatchResultRow{
		{MaterialID: "SS316", Compatibility: "acceptable", Notes: "PREN=26.0"},
		{MaterialID: "HY80", Compatibility: "not_recommended", Notes: "galvanically active anode"},
	})
	require.NoError(t, err)
	require.Greater(t, buf.Len(), 0)
}
