package storage

import (
	"sort"
	"sync"

	"github.com/SolunkeSiddharth/cottontracker/internal/dateutil"
	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/model"
	"github.com/SolunkeSiddharth/cottontracker/internal/validate"
)

// HistoryRepo provides operations for the per-date history records. Each
// date is one logical key; the mutex serializes read-modify-write sequences
// on records.
type HistoryRepo struct {
	db *DB
	mu sync.Mutex
}

// NewHistoryRepo creates a new history repository.
func NewHistoryRepo(db *DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Get retrieves the history record for a date.
func (r *HistoryRepo) Get(date string) (*model.DayRecord, error) {
	record := &model.DayRecord{}
	if err := r.db.Get(model.GenerateRecordKey(date), record); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.NewSystemErrorWithOp("get record", "could not load history", err)
	}
	return record, nil
}

// List retrieves all history records, newest date first.
func (r *HistoryRepo) List() ([]*model.DayRecord, error) {
	records, err := GetAllByPrefix(r.db, model.PrefixHistory+":", func() *model.DayRecord {
		return &model.DayRecord{}
	})
	if err != nil {
		return nil, apperrors.NewSystemErrorWithOp("list history", "could not load history", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return dateutil.Before(records[j].Date, records[i].Date)
	})
	return records, nil
}

// Search retrieves history records matching a date or worker-name substring,
// newest date first.
func (r *HistoryRepo) Search(term string) ([]*model.DayRecord, error) {
	records, err := r.List()
	if err != nil {
		return nil, err
	}

	filtered := records[:0]
	for _, rec := range records {
		if rec.Matches(term) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// Put upserts a full record. The caller is responsible for aggregate
// consistency; the reconciler and the entry-level mutators enforce it.
func (r *HistoryRepo) Put(record *model.DayRecord) error {
	if record.Key == "" {
		record.Key = model.GenerateRecordKey(record.Date)
	}
	if err := r.db.Set(record); err != nil {
		return apperrors.NewSystemErrorWithOp("put record", "could not save history", err)
	}
	return nil
}

// UpdateEntryAt mutates one entry in a record, recomputes its total and then
// the record-level aggregates from scratch over all entries.
func (r *HistoryRepo) UpdateEntryAt(date string, index int, name string, quantity, rate float64) (*model.DayRecord, error) {
	if err := validate.EntryFields(name, quantity, rate); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := r.Get(date)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(record.Entries) {
		return nil, apperrors.ErrRecordNotFound
	}

	record.Entries[index] = model.EntryLine{
		Name:     name,
		Quantity: quantity,
		Rate:     rate,
		Total:    model.Round2(quantity * rate),
	}
	record.Recompute()

	if err := r.Put(record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteEntryAt removes one entry from a record. When the last entry is
// removed the whole record is deleted; a record with zero entries is not a
// valid state.
func (r *HistoryRepo) DeleteEntryAt(date string, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := r.Get(date)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(record.Entries) {
		return apperrors.ErrRecordNotFound
	}

	record.Entries = append(record.Entries[:index], record.Entries[index+1:]...)
	if len(record.Entries) == 0 {
		return r.deleteLocked(date)
	}

	record.Recompute()
	return r.Put(record)
}

// Delete removes the whole record for a date.
func (r *HistoryRepo) Delete(date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deleteLocked(date)
}

func (r *HistoryRepo) deleteLocked(date string) error {
	if err := r.db.Delete(model.GenerateRecordKey(date)); err != nil {
		if IsErrKeyNotFound(err) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.NewSystemErrorWithOp("delete record", "could not delete history", err)
	}
	return nil
}
