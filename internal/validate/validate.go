// Package validate provides input validation for worker entries. It is the
// sole gate on correctness; no trust is placed in upstream sanitization.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/SolunkeSiddharth/cottontracker/internal/dateutil"
	"github.com/SolunkeSiddharth/cottontracker/internal/errors"
)

const (
	// MinNameLength is the minimum worker name length after trimming.
	MinNameLength = 2
	// MaxNameLength is the maximum worker name length.
	MaxNameLength = 64
	// MaxQuantity is the inclusive upper bound for a single entry's quantity.
	MaxQuantity = 1000
	// MaxRate is the inclusive upper bound for the rate per kg.
	MaxRate = 1000
)

// Name validates a worker name.
func Name(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.NewUserError("Worker name cannot be empty", "Provide the worker's name")
	}
	if utf8.RuneCountInString(trimmed) < MinNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Worker name too short",
			"Names must be at least 2 characters")
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Worker name too long",
			"Names must be 64 characters or fewer")
	}
	return nil
}

// Quantity validates a collected quantity in kg.
func Quantity(quantity float64) error {
	if quantity <= 0 {
		return errors.NewUserError(
			"Quantity must be greater than zero",
			"Enter the collected weight in kg, e.g. 12.5 or 12+8.5")
	}
	if quantity > MaxQuantity {
		return errors.NewUserError(
			"Quantity out of range",
			"Quantities must be 1000 kg or less")
	}
	return nil
}

// Rate validates a rate per kg.
func Rate(rate float64) error {
	if rate <= 0 {
		return errors.NewUserError(
			"Rate must be greater than zero",
			"Enter the rate per kg, e.g. 20")
	}
	if rate > MaxRate {
		return errors.NewUserError(
			"Rate out of range",
			"Rates must be 1000 or less")
	}
	return nil
}

// Date validates a DD-MM-YYYY date key.
func Date(date string) error {
	if strings.TrimSpace(date) == "" {
		return errors.NewUserError("Date is required", "Choose a work date")
	}
	if !dateutil.IsValid(date) {
		return errors.NewUserErrorWithField("date", date,
			"Invalid date",
			"Use DD-MM-YYYY, for example 05-01-2024")
	}
	return nil
}

// EntryFields validates the mutable fields of an entry.
func EntryFields(name string, quantity, rate float64) error {
	if err := Name(name); err != nil {
		return err
	}
	if err := Quantity(quantity); err != nil {
		return err
	}
	return Rate(rate)
}

// Entry validates a complete new entry before it is persisted.
func Entry(name string, quantity, rate float64, date string) error {
	if err := EntryFields(name, quantity, rate); err != nil {
		return err
	}
	return Date(date)
}
