// Package model defines the domain models for Cotton Tracker.
package model

import "math"

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// KeyPrefix constants for database key generation. The session and history
// prefixes are the two logical tables: session entries are ephemeral and
// cleared on promotion, history records are durable and keyed by date.
const (
	PrefixSession = "session"
	PrefixHistory = "history"
	KeyConfig     = "config"
)

// Round2 rounds a value to 2 decimal places. Entry totals and all record
// aggregates use this precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
