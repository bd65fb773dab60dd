package model

import (
	"fmt"
	"strings"
	"time"
)

// EntryLine is one entry inside a history record. Identity is positional:
// the date and per-entry identifier are not duplicated inside.
type EntryLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"kg"`
	Rate     float64 `json:"rate"`
	Total    float64 `json:"total"`
}

// DayRecord is the history record for one calendar date. The aggregates are
// cached; every mutation of Entries must go through Recompute so they are
// never stale.
type DayRecord struct {
	Key          string      `json:"key"`
	Date         string      `json:"date"` // DD-MM-YYYY, unique
	Entries      []EntryLine `json:"entries"`
	TotalWorkers int         `json:"totalWorkers"`
	TotalKg      float64     `json:"totalKg"`
	TotalAmount  float64     `json:"totalAmount"`
	CompletedAt  time.Time   `json:"completedAt"`
}

// SetKey sets the database key for this record.
func (r *DayRecord) SetKey(key string) {
	r.Key = key
}

// GetKey returns the database key for this record.
func (r *DayRecord) GetKey() string {
	return r.Key
}

// GenerateRecordKey generates a database key for a history record.
func GenerateRecordKey(date string) string {
	return fmt.Sprintf("%s:%s", PrefixHistory, date)
}

// NewDayRecord creates a history record for the given date from the given
// entry lines, with aggregates computed from scratch.
func NewDayRecord(date string, lines []EntryLine) *DayRecord {
	r := &DayRecord{
		Key:         GenerateRecordKey(date),
		Date:        date,
		Entries:     lines,
		CompletedAt: time.Now(),
	}
	r.Recompute()
	return r
}

// Recompute restores the aggregate invariant from the entry list:
// TotalWorkers == len(Entries), TotalKg == round2(sum quantity),
// TotalAmount == round2(sum total).
func (r *DayRecord) Recompute() {
	var kg, amount float64
	for _, e := range r.Entries {
		kg += e.Quantity
		amount += e.Total
	}
	r.TotalWorkers = len(r.Entries)
	r.TotalKg = Round2(kg)
	r.TotalAmount = Round2(amount)
}

// Matches reports whether the record matches a case-insensitive search term
// against its date or any worker name.
func (r *DayRecord) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Date), term) {
		return true
	}
	for _, e := range r.Entries {
		if strings.Contains(strings.ToLower(e.Name), term) {
			return true
		}
	}
	return false
}
