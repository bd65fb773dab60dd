// Package expr evaluates the restricted arithmetic expressions accepted as
// quantity input, so partial weighings can be entered as sums ("12+8.5").
//
// Input is whitelisted to digits, + - * /, decimal points and parentheses
// before any interpretation, then evaluated by a small recursive descent
// parser. Nothing outside that grammar is ever executed.
package expr

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/SolunkeSiddharth/cottontracker/internal/errors"
	"github.com/SolunkeSiddharth/cottontracker/internal/model"
)

// allowed is the character whitelist applied before parsing.
var allowed = regexp.MustCompile(`^[0-9+\-*/().]+$`)

// Evaluate parses and evaluates a quantity expression, returning the result
// rounded to the given number of decimal places. Division by zero, NaN,
// infinite and negative results are rejected.
func Evaluate(input string, precision int) (float64, error) {
	cleaned := strings.Join(strings.Fields(input), "")
	if cleaned == "" {
		return 0, invalidExpression(input, "Enter a quantity, e.g. 12.5 or 12+8.5")
	}
	if !allowed.MatchString(cleaned) {
		return 0, invalidExpression(input, "Use only numbers and + - * / ( )")
	}

	p := &parser{input: cleaned}
	result, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.input) {
		return 0, invalidExpression(input, "Check the expression near '"+p.input[p.pos:]+"'")
	}

	if math.IsNaN(result) || math.IsInf(result, 0) || result < 0 {
		return 0, &errors.UserError{
			Message:    "Expression gives an invalid result",
			Suggestion: "The quantity must be a non-negative number",
			Field:      "quantity",
			Value:      input,
			Err:        errors.ErrInvalidResult,
		}
	}

	if precision <= 0 {
		precision = model.DefaultQuantityPrecision
	}
	return model.RoundTo(result, precision), nil
}

func invalidExpression(input, suggestion string) error {
	return &errors.UserError{
		Message:    "Invalid quantity expression",
		Suggestion: suggestion,
		Field:      "quantity",
		Value:      input,
		Err:        errors.ErrInvalidExpression,
	}
}

// parser is a recursive descent parser over the whitelisted grammar:
//
//	expr   := term (('+'|'-') term)*
//	term   := factor (('*'|'/') factor)*
//	factor := ('+'|'-')* primary
//	primary := number | '(' expr ')'
type parser struct {
	input string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, &errors.UserError{
					Message:    "Division by zero",
					Suggestion: "Check the expression",
					Field:      "quantity",
					Value:      p.input,
					Err:        errors.ErrInvalidResult,
				}
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	sign := 1.0
	for p.peek() == '+' || p.peek() == '-' {
		if p.peek() == '-' {
			sign = -sign
		}
		p.pos++
	}
	value, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	return sign * value, nil
}

func (p *parser) parsePrimary() (float64, error) {
	if p.peek() == '(' {
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, invalidExpression(p.input, "Missing closing parenthesis")
		}
		p.pos++
		return value, nil
	}

	start := p.pos
	for p.peek() >= '0' && p.peek() <= '9' || p.peek() == '.' {
		p.pos++
	}
	if start == p.pos {
		return 0, invalidExpression(p.input, "Expected a number")
	}

	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, invalidExpression(p.input, "Malformed number '"+p.input[start:p.pos]+"'")
	}
	return value, nil
}
