package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/SolunkeSiddharth/cottontracker/internal/errors"
)

// TestEvaluateBasic tests plain arithmetic expressions.
func TestEvaluateBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"plain number", "12.5", 12.5},
		{"addition", "12+8.5", 20.5},
		{"subtraction", "30-4.5", 25.5},
		{"multiplication", "3*4.5", 13.5},
		{"division", "10/4", 2.5},
		{"precedence", "2+3*4", 14},
		{"parentheses", "(2+3)*4", 20},
		{"nested parens", "((1+2)*(3+4))", 21},
		{"unary plus", "+5", 5},
		{"double negative", "--5", 5},
		{"whitespace stripped", " 12 + 8.5 ", 20.5},
		{"rounding to precision", "10/3", 3.333},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Evaluate(tc.input, 3)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, result, 0.0001)
		})
	}
}

// TestEvaluateRejectsNonArithmetic tests the character whitelist.
func TestEvaluateRejectsNonArithmetic(t *testing.T) {
	inputs := []string{
		"alert(1)",
		"1;2",
		"1e5",
		"abc",
		"12+x",
		"Math.PI",
		"",
		"   ",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Evaluate(input, 3)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidExpression)
			assert.True(t, apperrors.IsUserError(err), "whitelist failures are user errors")
		})
	}
}

// TestEvaluateRejectsMalformed tests syntactically broken expressions.
func TestEvaluateRejectsMalformed(t *testing.T) {
	inputs := []string{
		"12+",
		"(12",
		"12)",
		"1..2",
		"*5",
		"1+*2",
		"()",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Evaluate(input, 3)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidExpression)
		})
	}
}

// TestEvaluateRejectsInvalidResults tests division by zero and negative results.
func TestEvaluateRejectsInvalidResults(t *testing.T) {
	inputs := []string{
		"10/0",
		"10/(5-5)",
		"-5",
		"2-10",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Evaluate(input, 3)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidResult)
			assert.NotErrorIs(t, err, apperrors.ErrInvalidExpression)
		})
	}
}

// TestEvaluatePrecision tests rounding at different precisions.
func TestEvaluatePrecision(t *testing.T) {
	result, err := Evaluate("10/3", 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.33, result, 0.0001)

	result, err = Evaluate("10/3", 5)
	require.NoError(t, err)
	assert.InDelta(t, 3.33333, result, 0.0000001)

	// Non-positive precision falls back to the default (3 places).
	result, err = Evaluate("10/3", 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.333, result, 0.0001)
}

// TestEvaluateZeroAllowed tests that a zero result is not rejected here.
// Quantity validation rejects it later with its own message.
func TestEvaluateZeroAllowed(t *testing.T) {
	result, err := Evaluate("5-5", 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result)
}
