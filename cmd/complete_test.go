package cmd

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/output"
	"github.com/SolunkeSiddharth/cottontracker/internal/runtime"
	"github.com/SolunkeSiddharth/cottontracker/internal/storage"
	"github.com/SolunkeSiddharth/cottontracker/internal/tracker"
)

// stuckClearSession fails a configured number of clears before delegating to
// the real session repository.
type stuckClearSession struct {
	*storage.SessionRepo
	failures int
}

func (s *stuckClearSession) Clear() error {
	if s.failures > 0 {
		s.failures--
		return stderrors.New("clear failed")
	}
	return s.SessionRepo.Clear()
}

// setupCompleteJSON wires the package-level command context over an
// in-memory store, with JSON output captured in a buffer.
func setupCompleteJSON(t *testing.T, clearFailures int) (*bytes.Buffer, *stuckClearSession) {
	t.Helper()

	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	sessions := storage.NewSessionRepo(db)
	history := storage.NewHistoryRepo(db)
	stuck := &stuckClearSession{SessionRepo: sessions, failures: clearFailures}

	var buf bytes.Buffer
	formatter := output.NewFormatter()
	formatter.Writer = &buf
	formatter.Format = output.FormatJSON
	formatter.ColorMode = output.ColorNever

	ctx = &runtime.Context{
		DB:          db,
		Formatter:   formatter,
		SessionRepo: sessions,
		HistoryRepo: history,
		ConfigRepo:  storage.NewConfigRepo(db),
		Reconciler:  tracker.NewReconciler(stuck, history),
	}
	t.Cleanup(func() {
		ctx = nil
		completeFlagDate = ""
	})

	return &buf, stuck
}

// TestCompleteJSONAfterClearRetry tests that a completion recovering from a
// failed clear still emits only the machine-readable record envelope.
func TestCompleteJSONAfterClearRetry(t *testing.T) {
	buf, _ := setupCompleteJSON(t, 1)

	_, err := ctx.SessionRepo.Add("Asha", 10, 20, "05-01-2024")
	require.NoError(t, err)

	completeFlagDate = "05-01-2024"
	require.NoError(t, runComplete(completeCmd, nil))

	var resp output.RecordResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp), "output must be pure JSON: %q", buf.String())
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Record)
	assert.Equal(t, "05-01-2024", resp.Record.Date)
	assert.Equal(t, 200.0, resp.Record.TotalAmount)

	entries, err := ctx.SessionRepo.List()
	require.NoError(t, err)
	assert.Empty(t, entries, "the retried clear emptied the session")
}

// TestCompleteJSONClearStillFailing tests that when the retry also fails the
// command writes nothing itself and surfaces the promoted-not-cleared error
// for the top-level reporter.
func TestCompleteJSONClearStillFailing(t *testing.T) {
	buf, _ := setupCompleteJSON(t, 2)

	_, err := ctx.SessionRepo.Add("Asha", 10, 20, "05-01-2024")
	require.NoError(t, err)

	completeFlagDate = "05-01-2024"
	err = runComplete(completeCmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPromotedNotCleared)
	assert.Empty(t, buf.String(), "no stray text may precede the error envelope")

	// The promotion committed despite the stuck session.
	record, err := ctx.HistoryRepo.Get("05-01-2024")
	require.NoError(t, err)
	assert.Equal(t, 1, record.TotalWorkers)
}
