package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolunkeSiddharth/cottontracker/internal/model"
	"github.com/SolunkeSiddharth/cottontracker/internal/storage"
)

func setupDashboard(t *testing.T) *DashboardModel {
	t.Helper()

	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	sessions := storage.NewSessionRepo(db)
	history := storage.NewHistoryRepo(db)

	_, err = sessions.Add("Asha Pawar", 12.5, 20, "05-01-2024")
	require.NoError(t, err)
	require.NoError(t, history.Put(model.NewDayRecord("04-01-2024", []model.EntryLine{
		{Name: "Bai", Quantity: 5, Rate: 20, Total: 100},
	})))

	return NewDashboardModel(DashboardConfig{
		SessionRepo: sessions,
		HistoryRepo: history,
	})
}

func keyMsg(key string) tea.KeyMsg {
	if key == "tab" {
		return tea.KeyMsg(tea.Key{Type: tea.KeyTab})
	}
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(key)})
}

// TestDashboardRefresh tests that a refresh loads the stores into each tab.
func TestDashboardRefresh(t *testing.T) {
	m := setupDashboard(t)

	updated, _ := m.Update(refreshMsg{})
	m = updated.(*DashboardModel)

	require.Len(t, m.session, 1)
	require.Len(t, m.history, 1)
	assert.Equal(t, 1, m.overview.Days)
	assert.NoError(t, m.err)

	assert.Contains(t, m.View(), "Asha Pawar")

	updated, _ = m.Update(keyMsg("2"))
	m = updated.(*DashboardModel)
	assert.Contains(t, m.View(), "04-01-2024")

	updated, _ = m.Update(keyMsg("3"))
	m = updated.(*DashboardModel)
	assert.Contains(t, m.View(), "Total days")
}

// TestDashboardTabCycling tests forward and backward tab movement.
func TestDashboardTabCycling(t *testing.T) {
	m := setupDashboard(t)
	assert.Equal(t, TabToday, m.tab)

	updated, _ := m.Update(keyMsg("tab"))
	m = updated.(*DashboardModel)
	assert.Equal(t, TabHistory, m.tab)

	updated, _ = m.Update(keyMsg("tab"))
	m = updated.(*DashboardModel)
	assert.Equal(t, TabReports, m.tab)

	// Wraps around.
	updated, _ = m.Update(keyMsg("tab"))
	m = updated.(*DashboardModel)
	assert.Equal(t, TabToday, m.tab)

	updated, _ = m.Update(keyMsg("h"))
	m = updated.(*DashboardModel)
	assert.Equal(t, TabReports, m.tab)
}

// TestDashboardQuit tests that q produces a quit command.
func TestDashboardQuit(t *testing.T) {
	m := setupDashboard(t)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
