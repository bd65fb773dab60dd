// Package report transforms history records into the flat tabular structure
// rendered by the PDF exporter, and computes the overview totals.
package report

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/model"
)

// TotalsLabel is the label on each section's trailing totals row.
const TotalsLabel = "TOTAL"

// Row is one table row of the projection.
type Row struct {
	Date     string  `json:"date"`
	Rate     float64 `json:"rate"`
	Name     string  `json:"name"`
	Quantity float64 `json:"kg"`
}

// TotalsRow is the trailing totals row of a section.
type TotalsRow struct {
	Label    string  `json:"label"`
	Quantity float64 `json:"kg"`
	Workers  int     `json:"workers"`
}

// Section is the projection of one history record.
type Section struct {
	Date         string    `json:"date"`
	Rows         []Row     `json:"rows"`
	Totals       TotalsRow `json:"totals"`
	TotalWorkers int       `json:"totalWorkers"`
	TotalKg      float64   `json:"totalKg"`
	TotalAmount  float64   `json:"totalAmount"`
}

// Summary is the grand-summary block emitted for multi-day reports.
type Summary struct {
	Days          int     `json:"days"`
	Workers       int     `json:"workers"`
	Kg            float64 `json:"kg"`
	Amount        float64 `json:"amount"`
	AveragePerDay float64 `json:"averagePerDay"`
}

// Report is the complete projection consumed by a renderer.
type Report struct {
	Sections    []Section `json:"sections"`
	Summary     *Summary  `json:"summary,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Project transforms an ordered sequence of history records into a report.
// The caller determines record order. Projecting an empty record list is an
// error; there is nothing meaningful to render.
func Project(records []*model.DayRecord) (*Report, error) {
	if len(records) == 0 {
		return nil, apperrors.NewUserError(
			"No history to report",
			"Complete at least one day first")
	}

	r := &Report{
		Sections:    make([]Section, 0, len(records)),
		GeneratedAt: time.Now(),
	}

	for _, rec := range records {
		section := Section{
			Date:         rec.Date,
			Rows:         make([]Row, 0, len(rec.Entries)),
			TotalWorkers: rec.TotalWorkers,
			TotalKg:      rec.TotalKg,
			TotalAmount:  rec.TotalAmount,
			Totals: TotalsRow{
				Label:    TotalsLabel,
				Quantity: rec.TotalKg,
				Workers:  rec.TotalWorkers,
			},
		}
		for _, e := range rec.Entries {
			section.Rows = append(section.Rows, Row{
				Date:     rec.Date,
				Rate:     e.Rate,
				Name:     e.Name,
				Quantity: e.Quantity,
			})
		}
		r.Sections = append(r.Sections, section)
	}

	if len(records) > 1 {
		r.Summary = overviewOf(records)
	}
	return r, nil
}

// Overview computes the totals shown on the reports overview across all
// given records. Unlike Project it accepts an empty list.
func Overview(records []*model.DayRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	return *overviewOf(records)
}

func overviewOf(records []*model.DayRecord) *Summary {
	s := &Summary{Days: len(records)}
	for _, rec := range records {
		s.Workers += rec.TotalWorkers
		s.Kg += rec.TotalKg
		s.Amount += rec.TotalAmount
	}
	s.Kg = model.Round2(s.Kg)
	s.Amount = model.Round2(s.Amount)
	s.AveragePerDay = model.Round2(s.Amount / float64(s.Days))
	return s
}

// SuggestedFilename derives the download filename for a report: the date for
// a single-day report, a full-report label otherwise.
func SuggestedFilename(records []*model.DayRecord) string {
	if len(records) == 1 {
		return fmt.Sprintf("CottonReport_%s.pdf", strings.ReplaceAll(records[0].Date, "-", ""))
	}
	return "CottonFullReport.pdf"
}
