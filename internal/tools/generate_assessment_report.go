package tools

import (
	"bytes"
	"fmt"

	"corrosion-engine/internal/report"
)

// GenerateAssessmentReportInput is the generate_assessment_report
// operation's input: a completed assess_galvanic or assess_localized
// result plus free-text project metadata. Exactly one of
// Galvanic/Localized must be set.
type GenerateAssessmentReportInput struct {
	Project  string
	Author   string
	Title    string
	Galvanic *AssessGalvanicOutput
	Localized *AssessLocalizedOutput
}

// GenerateAssessmentReportOutput is the rendered PDF.
type GenerateAssessmentReportOutput struct {
	PDFBytes   []byte
	Provenance Envelope
}

// GenerateAssessmentReport renders a one-page PDF summary of an
// already-computed assessment, delegating the actual rendering to
// internal/report.
func GenerateAssessmentReport(in GenerateAssessmentReportInput) (GenerateAssessmentReportOutput, error) {
	var summary report.AssessmentSummary
	switch {
	case in.Galvanic != nil:
		g := in.Galvanic
		summary = report.AssessmentSummary{
			ToolName:     "assess_galvanic",
			HeadlineText: fmt.Sprintf("current_ratio=%.2f, severity=%s, corrosion_rate=%.3f mm/yr", g.CurrentRatio, g.Severity, g.CorrosionRateMMYr),
			InputsText:   fmt.Sprintf("model=%s, confidence=%s", g.Provenance.ModelName, g.Provenance.ConfidenceBand),
			Warnings:     g.Warnings,
			Sources:      g.Provenance.Sources,
		}
	case in.Localized != nil:
		l := in.Localized
		summary = report.AssessmentSummary{
			ToolName:     "assess_localized",
			HeadlineText: fmt.Sprintf("overall_risk=%s, PREN=%.1f, CPT=%.0f C", l.OverallRisk, l.Tier1.PREN, l.Tier1.CPT_C),
			InputsText:   fmt.Sprintf("model=%s, confidence=%s", l.Provenance.ModelName, l.Provenance.ConfidenceBand),
			Warnings:     append(append([]string{}, l.Recommendations...), l.Tier1.Warnings...),
			Sources:      l.Provenance.Sources,
		}
	default:
		return GenerateAssessmentReportOutput{}, fmt.Errorf("InputValidation: one of galvanic or localized result is required")
	}

	var buf bytes.Buffer
	meta := report.Metadata{Project: in.Project, Author: in.Author, Title: in.Title}
	if err := report.GenerateAssessmentReport(&buf, meta, summary); err != nil {
		return GenerateAssessmentReportOutput{}, fmt.Errorf("report rendering failed: %w", err)
	}

	return GenerateAssessmentReportOutput{
		PDFBytes:   buf.Bytes(),
		Provenance: newEnvelope("assessment_report_renderer", "high", nil, nil, nil),
	}, nil
}
