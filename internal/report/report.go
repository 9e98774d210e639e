// Package report renders a one-page PDF summary of a completed
// assessment and imports a spreadsheet-driven batch material screen.
// Both consume already-validated core results; this package performs no
// numerical work of its own.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

// AssessmentSummary is the subset of an assess_galvanic or
// assess_localized result a report needs: headline numbers, severity,
// warnings, and citations. The tool layer fills this in from whichever
// tool result the caller is reporting on.
type AssessmentSummary struct {
	ToolName     string
	HeadlineText string // e.g. "current_ratio=4.2, severity=Moderate" or "overall_risk=critical"
	InputsText   string
	Warnings     []string
	Sources      []string
}

// Metadata is the free-text project/author metadata accompanying a
// report.
type Metadata struct {
	Project string
	Author  string
	Title   string
}

// GenerateAssessmentReport renders a one-page PDF summary of summary to w.
func GenerateAssessmentReport(w io.Writer, meta Metadata, summary AssessmentSummary) error {
	title := meta.Title
	if title == "" {
		title = "Corrosion Assessment Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Tool: %s", summary.ToolName))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 6, "Inputs")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, summary.InputsText, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 6, "Result")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, summary.HeadlineText, "", "L", false)
	pdf.Ln(4)

	if len(summary.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 6, "Warnings")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, warn := range summary.Warnings {
			pdf.MultiCell(0, 6, "- "+warn, "", "L", false)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 6, "Sources")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	for _, src := range summary.Sources {
		pdf.MultiCell(0, 6, "- "+src, "", "L", false)
	}

	return pdf.Output(w)
}
