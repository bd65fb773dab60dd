package output

import (
	"time"

	"github.com/SolunkeSiddharth/cottontracker/internal/model"
	"github.com/SolunkeSiddharth/cottontracker/internal/storage"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// EntryOutput represents a session entry in JSON output.
type EntryOutput struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Kg        float64 `json:"kg"`
	Rate      float64 `json:"rate"`
	Total     float64 `json:"total"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// NewEntryOutput creates an EntryOutput from an Entry.
func NewEntryOutput(e *model.Entry) *EntryOutput {
	out := &EntryOutput{
		Key:       e.Key,
		Name:      e.Name,
		Kg:        e.Quantity,
		Rate:      e.Rate,
		Total:     e.Total,
		Date:      e.Date,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
	if !e.UpdatedAt.Equal(e.CreatedAt) {
		out.UpdatedAt = e.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

// SessionResponse represents the session listing in JSON.
type SessionResponse struct {
	Status  string         `json:"status"`
	Entries []*EntryOutput `json:"entries"`
	Workers int            `json:"total_workers"`
	Kg      float64        `json:"total_kg"`
	Amount  float64        `json:"total_amount"`
}

// NewSessionResponse creates a SessionResponse from session entries.
func NewSessionResponse(entries []*model.Entry) *SessionResponse {
	totals := storage.Totals(entries)
	resp := &SessionResponse{
		Status:  "ok",
		Entries: make([]*EntryOutput, 0, len(entries)),
		Workers: totals.Workers,
		Kg:      totals.Kg,
		Amount:  totals.Amount,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, NewEntryOutput(e))
	}
	return resp
}

// RecordResponse represents a history record in JSON.
type RecordResponse struct {
	Status string           `json:"status"`
	Record *model.DayRecord `json:"record"`
}

// HistoryResponse represents the history listing in JSON.
type HistoryResponse struct {
	Status  string             `json:"status"`
	Records []*model.DayRecord `json:"records"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintError outputs an error as JSON.
func (j *JSONFormatter) PrintError(message, suggestion string) error {
	return j.JSON(&ErrorResponse{
		Status:     "error",
		Error:      message,
		Suggestion: suggestion,
	})
}
