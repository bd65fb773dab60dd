// Package tracker implements the day-completion workflow: promoting the
// current session's entries into the history record for a target date.
package tracker

import (
	"log/slog"
	"time"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/logging"
	"github.com/SolunkeSiddharth/cottontracker/internal/model"
	"github.com/SolunkeSiddharth/cottontracker/internal/storage"
	"github.com/SolunkeSiddharth/cottontracker/internal/validate"
)

// SessionStore is the slice of the session repository the reconciler needs.
type SessionStore interface {
	List() ([]*model.Entry, error)
	Clear() error
}

// HistoryStore is the slice of the history repository the reconciler needs.
type HistoryStore interface {
	Get(date string) (*model.DayRecord, error)
	Put(record *model.DayRecord) error
}

// Reconciler moves session entries into history, merging with any
// pre-existing record for the same date.
type Reconciler struct {
	sessions SessionStore
	history  HistoryStore
}

// NewReconciler creates a new reconciler over the given stores.
func NewReconciler(sessions SessionStore, history HistoryStore) *Reconciler {
	return &Reconciler{sessions: sessions, history: history}
}

// CompleteDay promotes all session entries into the history record for the
// target date and clears the session.
//
// When a record already exists for the date, its entries come first in the
// merged list so chronological promotion order is preserved across multiple
// completions, and the aggregates are the elementwise sum of both sides,
// re-rounded to 2 decimals.
//
// The history upsert is confirmed before the session is cleared. A failure
// before the upsert leaves the session fully intact; a failure after it
// returns PromotedNotClearedError, and the caller must retry only the clear
// step via RetryClear, never the promotion.
func (r *Reconciler) CompleteDay(date string) (*model.DayRecord, error) {
	if err := validate.Date(date); err != nil {
		return nil, err
	}

	entries, err := r.sessions.List()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrEmptySession
	}

	totals := storage.Totals(entries)

	lines := make([]model.EntryLine, 0, len(entries))
	// List returns most-recent-first; history keeps entry order oldest first.
	for i := len(entries) - 1; i >= 0; i-- {
		lines = append(lines, entries[i].Line())
	}

	record := &model.DayRecord{
		Key:          model.GenerateRecordKey(date),
		Date:         date,
		Entries:      lines,
		TotalWorkers: totals.Workers,
		TotalKg:      totals.Kg,
		TotalAmount:  totals.Amount,
		CompletedAt:  time.Now(),
	}

	existing, err := r.history.Get(date)
	switch {
	case err == nil:
		record.Entries = append(append([]model.EntryLine{}, existing.Entries...), record.Entries...)
		record.TotalWorkers = existing.TotalWorkers + record.TotalWorkers
		record.TotalKg = model.Round2(existing.TotalKg + record.TotalKg)
		record.TotalAmount = model.Round2(existing.TotalAmount + record.TotalAmount)
	case apperrors.IsNotFound(err):
		// First completion for this date.
	default:
		return nil, err
	}

	if err := r.history.Put(record); err != nil {
		return nil, err
	}

	if err := r.sessions.Clear(); err != nil {
		logging.Logger().Error("session clear failed after promotion",
			slog.String("date", date), slog.Any("error", err))
		return record, apperrors.NewPromotedNotClearedError(date, err)
	}

	logging.Logger().Info("day completed",
		slog.String("date", date),
		slog.Int("workers", record.TotalWorkers),
		slog.Float64("kg", record.TotalKg),
		slog.Float64("amount", record.TotalAmount))
	return record, nil
}

// RetryClear retries only the clear step after a promoted-but-not-cleared
// completion.
func (r *Reconciler) RetryClear() error {
	return r.sessions.Clear()
}
