package storage

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/model"
	"github.com/SolunkeSiddharth/cottontracker/internal/validate"
)

// SessionRepo provides operations for the current day's working set of
// entries. The mutex serializes read-modify-write sequences; the session is
// a single logical key.
type SessionRepo struct {
	db *DB
	mu sync.Mutex
}

// NewSessionRepo creates a new session repository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// SessionTotals holds on-demand aggregates over the current session.
type SessionTotals struct {
	Workers int
	Kg      float64
	Amount  float64
}

// Add validates and persists a new session entry with a generated key.
// Validation failures are reported before anything is written; an entry is
// never partially saved.
func (r *SessionRepo) Add(name string, quantity, rate float64, date string) (*model.Entry, error) {
	if err := validate.Entry(name, quantity, rate, date); err != nil {
		return nil, err
	}

	// UUID v7 for time-sortable keys
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	entry := model.NewEntry(name, quantity, rate, date)
	entry.Key = model.GenerateEntryKey(id.String())

	if err := r.db.Set(entry); err != nil {
		return nil, apperrors.NewSystemErrorWithOp("add entry", "could not save entry", err)
	}
	return entry, nil
}

// Get retrieves a session entry by key.
func (r *SessionRepo) Get(key string) (*model.Entry, error) {
	entry := &model.Entry{}
	if err := r.db.Get(key, entry); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, apperrors.NewSystemErrorWithOp("get entry", "could not load entry", err)
	}
	return entry, nil
}

// List retrieves all session entries, most recent first.
func (r *SessionRepo) List() ([]*model.Entry, error) {
	entries, err := GetAllByPrefix(r.db, model.PrefixSession+":", func() *model.Entry {
		return &model.Entry{}
	})
	if err != nil {
		return nil, apperrors.NewSystemErrorWithOp("list session", "could not load session", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// Update re-validates the given fields, recomputes the derived total and
// refreshes the modification timestamp.
func (r *SessionRepo) Update(key, name string, quantity, rate float64) (*model.Entry, error) {
	if err := validate.EntryFields(name, quantity, rate); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, err := r.Get(key)
	if err != nil {
		return nil, err
	}

	entry.Apply(name, quantity, rate)
	if err := r.db.Set(entry); err != nil {
		return nil, apperrors.NewSystemErrorWithOp("update entry", "could not save entry", err)
	}
	return entry, nil
}

// Delete removes a session entry. Deleting an absent key reports
// ErrEntryNotFound; repeated deletion is not silently accepted.
func (r *SessionRepo) Delete(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Delete(key); err != nil {
		if IsErrKeyNotFound(err) {
			return apperrors.ErrEntryNotFound
		}
		return apperrors.NewSystemErrorWithOp("delete entry", "could not delete entry", err)
	}
	return nil
}

// Clear empties the session in a single transaction. Used by the reconciler
// after a confirmed promotion.
func (r *SessionRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.DeleteByPrefix(model.PrefixSession + ":"); err != nil {
		return apperrors.NewSystemErrorWithOp("clear session", "could not clear session", err)
	}
	return nil
}

// Totals computes aggregates over the given entries. The session is small
// and short-lived, so these are never cached.
func Totals(entries []*model.Entry) SessionTotals {
	var t SessionTotals
	for _, e := range entries {
		t.Workers++
		t.Kg += e.Quantity
		t.Amount += e.Total
	}
	t.Kg = model.Round2(t.Kg)
	t.Amount = model.Round2(t.Amount)
	return t
}
