package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/model"
)

func twoDayHistory() []*model.DayRecord {
	return []*model.DayRecord{
		model.NewDayRecord("05-01-2024", []model.EntryLine{
			{Name: "Asha", Quantity: 10, Rate: 20, Total: 200},
			{Name: "Bai", Quantity: 5, Rate: 20, Total: 100},
		}),
		model.NewDayRecord("06-01-2024", []model.EntryLine{
			{Name: "Asha", Quantity: 12.5, Rate: 22, Total: 275},
		}),
	}
}

// TestProjectSingleDay tests projecting one record: rows, a totals row and no
// grand summary.
func TestProjectSingleDay(t *testing.T) {
	records := twoDayHistory()[:1]

	r, err := Project(records)
	require.NoError(t, err)
	require.Len(t, r.Sections, 1)
	assert.Nil(t, r.Summary, "single-day reports have no grand summary")
	assert.False(t, r.GeneratedAt.IsZero())

	section := r.Sections[0]
	assert.Equal(t, "05-01-2024", section.Date)
	require.Len(t, section.Rows, 2)
	assert.Equal(t, Row{Date: "05-01-2024", Rate: 20, Name: "Asha", Quantity: 10}, section.Rows[0])
	assert.Equal(t, Row{Date: "05-01-2024", Rate: 20, Name: "Bai", Quantity: 5}, section.Rows[1])

	assert.Equal(t, TotalsRow{Label: TotalsLabel, Quantity: 15, Workers: 2}, section.Totals)
	assert.Equal(t, 300.0, section.TotalAmount)
}

// TestProjectMultiDay tests the grand summary across records.
func TestProjectMultiDay(t *testing.T) {
	r, err := Project(twoDayHistory())
	require.NoError(t, err)
	require.Len(t, r.Sections, 2)
	require.NotNil(t, r.Summary)

	assert.Equal(t, 2, r.Summary.Days)
	assert.Equal(t, 3, r.Summary.Workers)
	assert.Equal(t, 27.5, r.Summary.Kg)
	assert.Equal(t, 575.0, r.Summary.Amount)
	assert.Equal(t, 287.5, r.Summary.AveragePerDay)
}

// TestProjectEmpty tests that an empty history cannot be projected.
func TestProjectEmpty(t *testing.T) {
	_, err := Project(nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsUserError(err))
}

// TestOverview tests the empty-safe overview totals.
func TestOverview(t *testing.T) {
	assert.Equal(t, Summary{}, Overview(nil))

	s := Overview(twoDayHistory())
	assert.Equal(t, 2, s.Days)
	assert.Equal(t, 3, s.Workers)
	assert.Equal(t, 27.5, s.Kg)
	assert.Equal(t, 575.0, s.Amount)
	assert.Equal(t, 287.5, s.AveragePerDay)
}

// TestSuggestedFilename tests the report filename rules.
func TestSuggestedFilename(t *testing.T) {
	records := twoDayHistory()

	assert.Equal(t, "CottonReport_05012024.pdf", SuggestedFilename(records[:1]))
	assert.Equal(t, "CottonFullReport.pdf", SuggestedFilename(records))
	assert.Equal(t, "CottonFullReport.pdf", SuggestedFilename(nil))
}

// TestRenderPDF tests that rendering produces a non-empty PDF document.
func TestRenderPDF(t *testing.T) {
	r, err := Project(twoDayHistory())
	require.NoError(t, err)

	data, err := RenderPDF(r)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
