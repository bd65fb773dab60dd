package tracker

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/storage"
)

// reconcilerTestContext holds the stores needed for completion testing.
type reconcilerTestContext struct {
	sessions   *storage.SessionRepo
	history    *storage.HistoryRepo
	reconciler *Reconciler
}

func setupReconciler(t *testing.T) *reconcilerTestContext {
	t.Helper()

	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	sessions := storage.NewSessionRepo(db)
	history := storage.NewHistoryRepo(db)
	return &reconcilerTestContext{
		sessions:   sessions,
		history:    history,
		reconciler: NewReconciler(sessions, history),
	}
}

// TestCompleteDay tests the basic session-to-history promotion.
func TestCompleteDay(t *testing.T) {
	tc := setupReconciler(t)

	_, err := tc.sessions.Add("Asha", 10, 20, "05-01-2024")
	require.NoError(t, err)
	_, err = tc.sessions.Add("Bai", 5, 20, "05-01-2024")
	require.NoError(t, err)

	record, err := tc.reconciler.CompleteDay("05-01-2024")
	require.NoError(t, err)

	assert.Equal(t, "05-01-2024", record.Date)
	assert.Equal(t, 2, record.TotalWorkers)
	assert.Equal(t, 15.0, record.TotalKg)
	assert.Equal(t, 300.0, record.TotalAmount)
	assert.False(t, record.CompletedAt.IsZero())

	// Entries are kept oldest first.
	require.Len(t, record.Entries, 2)
	assert.Equal(t, "Asha", record.Entries[0].Name)
	assert.Equal(t, "Bai", record.Entries[1].Name)

	// The session is cleared after a confirmed promotion.
	entries, err := tc.sessions.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	// The record is durable.
	loaded, err := tc.history.Get("05-01-2024")
	require.NoError(t, err)
	assert.Equal(t, 300.0, loaded.TotalAmount)
}

// TestCompleteDayEmptySession tests that an empty session cannot be promoted.
func TestCompleteDayEmptySession(t *testing.T) {
	tc := setupReconciler(t)

	_, err := tc.reconciler.CompleteDay("05-01-2024")
	assert.ErrorIs(t, err, apperrors.ErrEmptySession)
}

// TestCompleteDayInvalidDate tests date validation before any write.
func TestCompleteDayInvalidDate(t *testing.T) {
	tc := setupReconciler(t)

	_, err := tc.sessions.Add("Asha", 10, 20, "05-01-2024")
	require.NoError(t, err)

	_, err = tc.reconciler.CompleteDay("2024-01-05")
	assert.True(t, apperrors.IsUserError(err))

	// The session survives a rejected completion.
	entries, err := tc.sessions.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestCompleteDayMerge tests a second completion merging into the existing
// record: existing entries first, aggregates summed and re-rounded.
func TestCompleteDayMerge(t *testing.T) {
	tc := setupReconciler(t)

	_, err := tc.sessions.Add("Asha", 10, 20, "05-01-2024")
	require.NoError(t, err)
	_, err = tc.reconciler.CompleteDay("05-01-2024")
	require.NoError(t, err)

	_, err = tc.sessions.Add("Bai", 5.5, 22, "05-01-2024")
	require.NoError(t, err)
	record, err := tc.reconciler.CompleteDay("05-01-2024")
	require.NoError(t, err)

	assert.Equal(t, 2, record.TotalWorkers)
	assert.Equal(t, 15.5, record.TotalKg)
	assert.Equal(t, 321.0, record.TotalAmount)
	require.Len(t, record.Entries, 2)
	assert.Equal(t, "Asha", record.Entries[0].Name, "existing entries come first")
	assert.Equal(t, "Bai", record.Entries[1].Name)
}

// TestCompleteDifferentDates tests that different dates stay separate.
func TestCompleteDifferentDates(t *testing.T) {
	tc := setupReconciler(t)

	_, err := tc.sessions.Add("Asha", 10, 20, "05-01-2024")
	require.NoError(t, err)
	_, err = tc.reconciler.CompleteDay("05-01-2024")
	require.NoError(t, err)

	_, err = tc.sessions.Add("Bai", 5, 20, "06-01-2024")
	require.NoError(t, err)
	_, err = tc.reconciler.CompleteDay("06-01-2024")
	require.NoError(t, err)

	records, err := tc.history.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "06-01-2024", records[0].Date)
	assert.Equal(t, "05-01-2024", records[1].Date)
	assert.Equal(t, 1, records[0].TotalWorkers)
	assert.Equal(t, 1, records[1].TotalWorkers)
}

// failingClearSession wraps the real session repository but rejects every
// clear, so the promoted-but-not-cleared path can be reached.
type failingClearSession struct {
	*storage.SessionRepo
	clearErr error
}

func (s *failingClearSession) Clear() error {
	if s.clearErr != nil {
		return s.clearErr
	}
	return s.SessionRepo.Clear()
}

// TestCompleteDayClearFails tests the promoted-but-not-cleared outcome: the
// merged record is committed to history, the error matches the sentinel and
// carries the date, and the session is left intact for a clear retry.
func TestCompleteDayClearFails(t *testing.T) {
	tc := setupReconciler(t)
	sessions := &failingClearSession{
		SessionRepo: tc.sessions,
		clearErr:    stderrors.New("disk full"),
	}
	reconciler := NewReconciler(sessions, tc.history)

	_, err := tc.sessions.Add("Asha", 10, 20, "05-01-2024")
	require.NoError(t, err)

	record, err := reconciler.CompleteDay("05-01-2024")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPromotedNotCleared)
	assert.ErrorIs(t, err, sessions.clearErr)

	var pnc *apperrors.PromotedNotClearedError
	require.True(t, stderrors.As(err, &pnc))
	assert.Equal(t, "05-01-2024", pnc.Date)

	// The promotion itself committed; the caller gets the record back.
	require.NotNil(t, record)
	assert.Equal(t, 1, record.TotalWorkers)

	loaded, err := tc.history.Get("05-01-2024")
	require.NoError(t, err)
	assert.Equal(t, 200.0, loaded.TotalAmount)

	// The session survives the failed clear, so only the clear is retried.
	entries, err := tc.sessions.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// Once the cause is gone, retrying only the clear step recovers.
	sessions.clearErr = nil
	require.NoError(t, reconciler.RetryClear())

	entries, err = tc.sessions.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	loaded, err = tc.history.Get("05-01-2024")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.TotalWorkers, "retry never re-promotes")
}

// TestRetryClear tests that a retried clear only empties the session and
// never touches history.
func TestRetryClear(t *testing.T) {
	tc := setupReconciler(t)

	_, err := tc.sessions.Add("Asha", 10, 20, "05-01-2024")
	require.NoError(t, err)
	_, err = tc.reconciler.CompleteDay("05-01-2024")
	require.NoError(t, err)

	require.NoError(t, tc.reconciler.RetryClear())

	record, err := tc.history.Get("05-01-2024")
	require.NoError(t, err)
	assert.Equal(t, 1, record.TotalWorkers)
}
