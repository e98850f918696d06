// Package calc evaluates arithmetic expressions written in prefix (Polish)
// notation over binary fixed-point numbers.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/fixedpoint"
)

var (
	errNoTokens       = errors.New("no tokens")
	errNotEnough      = errors.New("not enough operands")
	errInvalidOperand = errors.New("invalid operand")
)

// Evaluate computes an expression such as "* 2 + 1.5 3" where all
// operands are converted to fixed-point numbers with the given scale.
// Integer operands are converted exactly, other operands are truncated
// to the nearest representable value towards zero.
func Evaluate(input string, scale int) (fixedpoint.FixedPoint, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return fixedpoint.FixedPoint{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens, scale)
	if err != nil {
		return fixedpoint.FixedPoint{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return fixedpoint.FixedPoint{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, errNoTokens
	}
	return tokens, nil
}

func processTokens(tokens []string, scale int) ([]fixedpoint.FixedPoint, error) {
	stack := make([]fixedpoint.FixedPoint, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token, scale)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []fixedpoint.FixedPoint, token string) ([]fixedpoint.FixedPoint, error) {
	if len(stack) < 2 {
		return nil, errNotEnough
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result fixedpoint.FixedPoint
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []fixedpoint.FixedPoint, token string, scale int) ([]fixedpoint.FixedPoint, error) {
	d, err := parseOperand(token, scale)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}

func parseOperand(token string, scale int) (fixedpoint.FixedPoint, error) {
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return fixedpoint.NewFromInt64(n, scale)
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return fixedpoint.FixedPoint{}, fmt.Errorf("%w: %q", errInvalidOperand, token)
	}
	return fixedpoint.NewFromFloat64(f, scale)
}
