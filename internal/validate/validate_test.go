package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
)

// TestName tests worker name validation boundaries.
func TestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Asha Pawar", false},
		{"minimum length", "Ab", false},
		{"trimmed to valid", "  Asha  ", false},
		{"unicode counted as runes", "आशा", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"single char", "A", true},
		{"single char padded", " A ", true},
		{"too long", strings.Repeat("x", 65), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Name(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsUserError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestQuantity tests quantity range validation.
func TestQuantity(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"valid", 12.5, false},
		{"small positive", 0.001, false},
		{"upper bound inclusive", 1000, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"just over bound", 1000.01, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Quantity(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsUserError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestRate tests rate range validation.
func TestRate(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"valid", 20, false},
		{"upper bound inclusive", 1000, false},
		{"zero", 0, true},
		{"negative", -0.5, true},
		{"just over bound", 1000.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Rate(tc.input)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestDate tests DD-MM-YYYY date validation.
func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "05-01-2024", false},
		{"leap day", "29-02-2024", false},
		{"empty", "", true},
		{"iso order", "2024-01-05", true},
		{"impossible day", "32-01-2024", true},
		{"impossible month", "05-13-2024", true},
		{"non-leap feb 29", "29-02-2023", true},
		{"garbage", "yesterday", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Date(tc.input)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestEntry tests full entry validation, first failure wins.
func TestEntry(t *testing.T) {
	assert.NoError(t, Entry("Asha", 12.5, 20, "05-01-2024"))
	assert.Error(t, Entry("A", 12.5, 20, "05-01-2024"))
	assert.Error(t, Entry("Asha", 0, 20, "05-01-2024"))
	assert.Error(t, Entry("Asha", 12.5, 0, "05-01-2024"))
	assert.Error(t, Entry("Asha", 12.5, 20, "2024-01-05"))
}
