package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SolunkeSiddharth/cottontracker/internal/model"
	"github.com/SolunkeSiddharth/cottontracker/internal/output"
	"github.com/SolunkeSiddharth/cottontracker/internal/report"
	"github.com/SolunkeSiddharth/cottontracker/internal/storage"
)

// Tab identifies one dashboard tab.
type Tab int

const (
	TabToday Tab = iota
	TabHistory
	TabReports
)

var tabNames = []string{"Today", "History", "Reports"}

// refreshMsg is sent when data needs to be refreshed.
type refreshMsg struct{}

// DashboardModel is the bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	session  []*model.Entry
	history  []*model.DayRecord
	overview report.Summary

	// Repositories
	sessionRepo *storage.SessionRepo
	historyRepo *storage.HistoryRepo

	// UI state
	tab    Tab
	width  int
	height int
	err    error
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	SessionRepo *storage.SessionRepo
	HistoryRepo *storage.HistoryRepo
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	return &DashboardModel{
		sessionRepo: config.SessionRepo,
		historyRepo: config.HistoryRepo,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % Tab(len(tabNames))
			return m, nil
		case "shift+tab", "left", "h":
			m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			return m, nil
		case "1":
			m.tab = TabToday
			return m, nil
		case "2":
			m.tab = TabHistory
			return m, nil
		case "3":
			m.tab = TabReports
			return m, nil
		case "r":
			return m, m.refreshCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.loadData()
		return m, nil
	}

	return m, nil
}

// refreshCmd triggers a data reload.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// loadData reloads session and history from the stores. Cached views are not
// authoritative; every refresh goes back to the store.
func (m *DashboardModel) loadData() {
	session, err := m.sessionRepo.List()
	if err != nil {
		m.err = err
		return
	}
	history, err := m.historyRepo.List()
	if err != nil {
		m.err = err
		return
	}

	m.session = session
	m.history = history
	m.overview = report.Overview(history)
	m.err = nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Cotton Tracker"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	var content string
	switch m.tab {
	case TabToday:
		content = m.renderToday()
	case TabHistory:
		content = m.renderHistory()
	case TabReports:
		content = m.renderReports()
	}
	b.WriteString(StyleBox.Render(content))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleError.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(StyleMuted.Render("tab/←→ switch · r refresh · q quit"))
	return b.String()
}

func (m *DashboardModel) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			parts = append(parts, StyleTabActive.Render(name))
		} else {
			parts = append(parts, StyleTabInactive.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *DashboardModel) renderToday() string {
	if len(m.session) == 0 {
		return StyleMuted.Render("No entries yet.\nAdd the first one with 'cottontracker add'.")
	}

	var b strings.Builder
	for _, e := range m.session {
		b.WriteString(fmt.Sprintf("%s  %s kg × %s = %s\n",
			StyleName.Render(e.Name),
			output.FormatKg(e.Quantity),
			output.FormatRate(e.Rate),
			StyleAmount.Render(output.FormatAmount(e.Total))))
	}

	totals := storage.Totals(m.session)
	b.WriteString(StyleMuted.Render(fmt.Sprintf("\n%d workers · %s kg · %s",
		totals.Workers, output.FormatKg(totals.Kg), output.FormatAmount(totals.Amount))))
	return b.String()
}

func (m *DashboardModel) renderHistory() string {
	if len(m.history) == 0 {
		return StyleMuted.Render("No completed days yet.")
	}

	var b strings.Builder
	for _, r := range m.history {
		b.WriteString(fmt.Sprintf("%s  %d workers · %s kg · %s\n",
			StyleName.Render(r.Date),
			r.TotalWorkers,
			output.FormatKg(r.TotalKg),
			StyleAmount.Render(output.FormatAmount(r.TotalAmount))))
	}
	return b.String()
}

func (m *DashboardModel) renderReports() string {
	if m.overview.Days == 0 {
		return StyleMuted.Render("Nothing to report yet.\nComplete a day first.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total days:    %d\n", m.overview.Days))
	b.WriteString(fmt.Sprintf("Total workers: %d\n", m.overview.Workers))
	b.WriteString(fmt.Sprintf("Total kg:      %s\n", output.FormatKg(m.overview.Kg)))
	b.WriteString(fmt.Sprintf("Total amount:  %s\n", StyleAmount.Render(output.FormatAmount(m.overview.Amount))))
	b.WriteString(fmt.Sprintf("Avg per day:   %s\n", output.FormatAmount(m.overview.AveragePerDay)))
	return b.String()
}

// Run starts the dashboard program.
func Run(config DashboardConfig) error {
	p := tea.NewProgram(NewDashboardModel(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
