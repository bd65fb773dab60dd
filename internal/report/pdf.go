package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

// RenderPDF renders a projected report as an A4 portrait PDF document.
func RenderPDF(r *Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Cotton Workers Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", r.GeneratedAt.Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	for _, section := range r.Sections {
		renderSection(pdf, section)
	}

	if r.Summary != nil {
		renderSummary(pdf, *r.Summary)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderSection(pdf *gofpdf.Fpdf, section Section) {
	// Day heading
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, fmt.Sprintf("%s - %d Workers, %.2f KG, Rs. %.2f",
		section.Date, section.TotalWorkers, section.TotalKg, section.TotalAmount),
		"1", 1, "L", true, 0, "")

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(35, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Rate per KG", "1", 0, "C", true, 0, "")
	pdf.CellFormat(85, 7, "Worker Name", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "KG Collected", "1", 1, "C", true, 0, "")

	// Rows
	pdf.SetFont("Arial", "", 10)
	for _, row := range section.Rows {
		name := row.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		pdf.CellFormat(35, 6, row.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Rs. %g", row.Rate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(85, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%g KG", row.Quantity), "1", 1, "C", false, 0, "")
	}

	// Totals row
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(248, 249, 250)
	pdf.CellFormat(35, 7, section.Totals.Label, "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "-", "1", 0, "C", true, 0, "")
	pdf.CellFormat(85, 7, fmt.Sprintf("%d Workers", section.Totals.Workers), "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, fmt.Sprintf("%.2f KG", section.Totals.Quantity), "1", 1, "C", true, 0, "")
	pdf.Ln(5)
}

func renderSummary(pdf *gofpdf.Fpdf, s Summary) {
	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(220, 240, 230)
	pdf.CellFormat(190, 8, "GRAND SUMMARY", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	rows := []struct {
		label string
		value string
	}{
		{"Total Days:", fmt.Sprintf("%d days", s.Days)},
		{"Total Workers (All Days):", fmt.Sprintf("%d workers", s.Workers)},
		{"Total KG Collected:", fmt.Sprintf("%.2f KG", s.Kg)},
		{"Total Amount Paid:", fmt.Sprintf("Rs. %.2f", s.Amount)},
		{"Average per Day:", fmt.Sprintf("Rs. %.2f", s.AveragePerDay)},
	}
	for _, row := range rows {
		pdf.CellFormat(95, 7, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, row.value, "1", 1, "R", false, 0, "")
	}
}
