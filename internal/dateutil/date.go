// Package dateutil handles the DD-MM-YYYY date keys used for history
// grouping and the parsing of user date input.
package dateutil

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
)

// Layout is the zero-padded day-month-year form used as the history key.
const Layout = "02-01-2006"

// displayLayout is the human-readable form shown in listings.
const displayLayout = "Mon, 02 Jan 2006"

// Format formats a time as a DD-MM-YYYY date key.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse parses a DD-MM-YYYY date key.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperrors.NewUserErrorWithField("date", s,
			"Invalid date",
			"Use DD-MM-YYYY, for example 05-01-2024")
	}
	return t, nil
}

// IsValid reports whether s is a well-formed DD-MM-YYYY date key.
func IsValid(s string) bool {
	_, err := time.Parse(Layout, strings.TrimSpace(s))
	return err == nil
}

// ParseInput normalizes user date input to a DD-MM-YYYY key. It accepts the
// key form directly, natural language ("today", "yesterday", "2 days ago")
// via go-dateparser, and an empty string for today.
func ParseInput(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Format(time.Now()), nil
	}

	if t, err := time.Parse(Layout, input); err == nil {
		return Format(t), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return "", apperrors.NewUserErrorWithField("date", input,
			"Could not understand date",
			"Use DD-MM-YYYY or natural language like 'today' or 'yesterday'")
	}
	return Format(result.Time), nil
}

// FormatDisplay renders a DD-MM-YYYY date key in a readable listing form.
// A malformed key is returned unchanged.
func FormatDisplay(dateKey string) string {
	t, err := time.Parse(Layout, dateKey)
	if err != nil {
		return dateKey
	}
	return t.Format(displayLayout)
}

// Before reports whether date key a falls before date key b. Malformed keys
// sort by their raw string form.
func Before(a, b string) bool {
	ta, errA := time.Parse(Layout, a)
	tb, errB := time.Parse(Layout, b)
	if errA != nil || errB != nil {
		return a < b
	}
	return ta.Before(tb)
}
