package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/SolunkeSiddharth/cottontracker/internal/dateutil"
	"github.com/SolunkeSiddharth/cottontracker/internal/model"
	"github.com/SolunkeSiddharth/cottontracker/internal/storage"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#00B894") // Teal
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleName = lipgloss.NewStyle().
			Bold(true)

	styleAmount = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)
)

// CLIFormatter provides CLI-specific formatting. Success, Warning and Error
// are the transient user feedback channel; nothing the core reports is
// silently discarded.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// WorkerName formats a worker name.
func (c *CLIFormatter) WorkerName(name string) string {
	if c.IsColorEnabled() {
		return styleName.Render(name)
	}
	return name
}

// Amount formats a currency amount.
func (c *CLIFormatter) Amount(v float64) string {
	s := FormatAmount(v)
	if c.IsColorEnabled() {
		return styleAmount.Render(s)
	}
	return s
}

// PrintEntry prints one session entry line.
func (c *CLIFormatter) PrintEntry(e *model.Entry) {
	c.Printf("  %s  %s  %s kg × %s = %s\n",
		shortID(e.Key), c.WorkerName(e.Name),
		FormatKg(e.Quantity), FormatRate(e.Rate), c.Amount(e.Total))
}

// PrintSession prints the current session with its on-demand totals.
func (c *CLIFormatter) PrintSession(entries []*model.Entry) {
	if len(entries) == 0 {
		c.Muted("No entries in today's session.")
		return
	}

	c.Title(fmt.Sprintf("Today's session (%s)", entries[0].Date))
	for _, e := range entries {
		c.PrintEntry(e)
	}

	totals := storage.Totals(entries)
	c.Printf("  %d workers, %s kg, %s\n",
		totals.Workers, FormatKg(totals.Kg), c.Amount(totals.Amount))
}

// PrintRecord prints one history record with its entries.
func (c *CLIFormatter) PrintRecord(r *model.DayRecord) {
	c.Title(dateutil.FormatDisplay(r.Date))
	for i, e := range r.Entries {
		c.Printf("  [%d]  %s  %s kg × %s = %s\n",
			i, c.WorkerName(e.Name),
			FormatKg(e.Quantity), FormatRate(e.Rate), c.Amount(e.Total))
	}
	c.Printf("  %d workers, %s kg, %s\n",
		r.TotalWorkers, FormatKg(r.TotalKg), c.Amount(r.TotalAmount))
}

// PrintRecordSummary prints one history record as a single listing line.
func (c *CLIFormatter) PrintRecordSummary(r *model.DayRecord) {
	c.Printf("  %s  %d workers, %s kg, %s\n",
		dateutil.FormatDisplay(r.Date),
		r.TotalWorkers, FormatKg(r.TotalKg), c.Amount(r.TotalAmount))
}

// shortID renders the trailing portion of a session entry key for display.
func shortID(key string) string {
	if len(key) > 8 {
		return key[len(key)-8:]
	}
	return key
}
