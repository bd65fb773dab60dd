package model

import (
	"fmt"
	"time"
)

// Entry represents one worker's contribution in the current session.
// Total is always derived from Quantity and Rate; it is recomputed on every
// update and never stored independently of its inputs.
type Entry struct {
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"kg"`
	Rate      float64   `json:"rate"`
	Total     float64   `json:"total"`
	Date      string    `json:"date"` // DD-MM-YYYY, the history grouping key
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetKey sets the database key for this entry.
func (e *Entry) SetKey(key string) {
	e.Key = key
}

// GetKey returns the database key for this entry.
func (e *Entry) GetKey() string {
	return e.Key
}

// GenerateEntryKey generates a database key for a session entry.
func GenerateEntryKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixSession, id)
}

// NewEntry creates a new session entry with a derived total.
func NewEntry(name string, quantity, rate float64, date string) *Entry {
	now := time.Now()
	return &Entry{
		Name:      name,
		Quantity:  quantity,
		Rate:      rate,
		Total:     Round2(quantity * rate),
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply updates the entry's fields and recomputes the derived total.
func (e *Entry) Apply(name string, quantity, rate float64) {
	e.Name = name
	e.Quantity = quantity
	e.Rate = rate
	e.Total = Round2(quantity * rate)
	e.UpdatedAt = time.Now()
}

// Line converts the entry to its history-resident form, stripped of
// session-only fields.
func (e *Entry) Line() EntryLine {
	return EntryLine{
		Name:     e.Name,
		Quantity: e.Quantity,
		Rate:     e.Rate,
		Total:    e.Total,
	}
}
