// Package report renders a beam analysis as a one-page PDF calculation sheet.
package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/okoham/ibeam/internal/cantilever"
	"github.com/phpdave11/gofpdf"
)

// Input carries the header fields of a calculation sheet
type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// Sheet is everything printed on a calculation sheet
type Sheet struct {
	Input
	Date  time.Time
	Beam  *cantilever.Cantilever
	Loads []float64
}

// Write renders the sheet as PDF to w.
func Write(w io.Writer, s Sheet) error {
	if s.Beam == nil {
		return fmt.Errorf("report: no beam")
	}
	if s.Title == "" {
		s.Title = "Cantilever I-Beam Sizing"
	}
	if s.Date.IsZero() {
		s.Date = time.Now()
	}

	c := s.Beam
	summary := c.Analyse(s.Loads)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(s.Title, true)
	pdf.SetAuthor(s.Author, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(s.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", s.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", s.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", s.Date.Format("2006-01-02")))
	pdf.Ln(10)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(text))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		pdf.CellFormat(70, 6, tr(label), "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, tr(value), "B", 1, "R", false, 0, "")
	}

	heading("Input")
	row("Material", c.Material.Name)
	row("Span L", fmt.Sprintf("%.1f mm", c.L))
	row("Stabiliser spacing", fmt.Sprintf("%.1f mm", c.DStab))
	row("Height h", fmt.Sprintf("%.2f mm", c.Section.H))
	row("Web thickness tw", fmt.Sprintf("%.2f mm", c.Section.Tw))
	row("Lower flange blf × tlf", fmt.Sprintf("%.2f × %.2f mm", c.Section.Blf, c.Section.Tlf))
	row("Upper flange buf × tuf", fmt.Sprintf("%.2f × %.2f mm", c.Section.Buf, c.Section.Tuf))
	row("Compression face", c.CompressionPolicy().String())
	pdf.Ln(4)

	heading("Section")
	row("Area", fmt.Sprintf("%.2f mm²", c.Props.Area))
	row("Centroid", fmt.Sprintf("%.3f mm", c.Props.Cg))
	row("Iyy", fmt.Sprintf("%.6g mm4", c.Props.Iyy))
	row("It", fmt.Sprintf("%.6g mm4", c.Props.It))
	row("Mass", fmt.Sprintf("%.4f kg", summary.Mass))
	row("Cost", fmt.Sprintf("%.2f €", summary.Cost))
	pdf.Ln(4)

	heading("Reserve factors")
	widths := []float64{18, 17}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(widths[0], 6, "F (N)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[0], 6, "w (mm)", "1", 0, "C", false, 0, "")
	for _, m := range cantilever.Modes {
		pdf.CellFormat(widths[1], 6, m, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, f := range s.Loads {
		single := c.AnalyseSingle(f)
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%.0f", f), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%.2f", single.WMax), "1", 0, "R", false, 0, "")
		for _, v := range single.ReserveFactors.Values() {
			rfCell(pdf, widths[1], v)
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(widths[0], 6, "envelope", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[0], 6, fmt.Sprintf("%.2f", summary.WMax), "1", 0, "R", false, 0, "")
	for _, v := range summary.ReserveFactors.Values() {
		rfCell(pdf, widths[1], v)
	}
	pdf.Ln(8)

	mode, rf := summary.Governing()
	verdict := "PASS"
	if !summary.Feasible() {
		verdict = "FAIL"
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Governing: %s = %s   %s", mode, formatRF(rf), verdict))
	pdf.Ln(10)

	if s.Notes != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(s.Notes), "", "L", false)
	}

	return pdf.Output(w)
}

func rfCell(pdf *gofpdf.Fpdf, w, v float64) {
	if v < 1 {
		pdf.SetTextColor(200, 0, 0)
	}
	pdf.CellFormat(w, 6, formatRF(v), "1", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func formatRF(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsNaN(v):
		return "nan"
	}
	return fmt.Sprintf("%.3f", v)
}
