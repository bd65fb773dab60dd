package model

import (
	"fmt"
	"strconv"
	"strings"
)

// EditTarget identifies which entry a save applies to: a session entry by
// identifier, or a history entry by date and position. Exactly one of the
// two forms is set; there is no field-is-nil inference anywhere else.
type EditTarget struct {
	SessionID    string
	HistoryDate  string
	HistoryIndex int
}

// SessionTarget creates an edit target for a session entry.
func SessionTarget(id string) EditTarget {
	return EditTarget{SessionID: id}
}

// HistoryTarget creates an edit target for a history entry.
func HistoryTarget(date string, index int) EditTarget {
	return EditTarget{HistoryDate: date, HistoryIndex: index}
}

// IsSession reports whether the target addresses a session entry.
func (t EditTarget) IsSession() bool {
	return t.SessionID != ""
}

func (t EditTarget) String() string {
	if t.IsSession() {
		return t.SessionID
	}
	return fmt.Sprintf("%s:%d", t.HistoryDate, t.HistoryIndex)
}

// ParseEditTarget parses a target argument: either a session entry key and
// its short form, or DATE:INDEX for a history entry.
func ParseEditTarget(arg string) (EditTarget, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return EditTarget{}, fmt.Errorf("empty edit target")
	}

	// DD-MM-YYYY:INDEX addresses a history entry.
	if i := strings.LastIndex(arg, ":"); i > 0 && strings.Count(arg, "-") == 2 {
		idx, err := strconv.Atoi(arg[i+1:])
		if err != nil || idx < 0 {
			return EditTarget{}, fmt.Errorf("invalid history index in '%s'", arg)
		}
		return HistoryTarget(arg[:i], idx), nil
	}

	return SessionTarget(arg), nil
}
