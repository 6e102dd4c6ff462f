// File: expr.go
package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrInvalidBounds       = errors.New("math max is lower than math min")
	ErrUnsatisfiableBounds = errors.New("no expression fits the math bounds")
	ErrInvalidOperator     = errors.New("operator set must be one of \"+\", \"-\", \"+-\"")
)

// Expr is a two-operand arithmetic expression.
type Expr struct {
	Left, Right int
	Op          byte // '+' or '-'
}

// Text renders the expression without spaces, e.g. "12+7".
func (e Expr) Text() string {
	return strconv.Itoa(e.Left) + string(e.Op) + strconv.Itoa(e.Right)
}

// Answer evaluates the expression.
func (e Expr) Answer() int {
	if e.Op == '-' {
		return e.Left - e.Right
	}
	return e.Left + e.Right
}

// ExprGenerator picks random expressions whose operands and result all fall
// inside the requested bounds.
type ExprGenerator struct {
	ops []byte
	rnd *lockedRand
}

// NewExprGenerator accepts an operator set of "+", "-" or "+-".
func NewExprGenerator(operators string, rnd *lockedRand) (*ExprGenerator, error) {
	var ops []byte
	switch operators {
	case "+":
		ops = []byte{'+'}
	case "-":
		ops = []byte{'-'}
	case "+-", "-+":
		ops = []byte{'+', '-'}
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidOperator, operators)
	}
	if rnd == nil {
		rnd = newLockedRand(0)
	}
	return &ExprGenerator{ops: ops, rnd: rnd}, nil
}

// Next returns a new expression with min <= left, right, answer <= max.
func (g *ExprGenerator) Next(min, max int) (Expr, error) {
	if max < min {
		return Expr{}, fmt.Errorf("%w: min %d, max %d", ErrInvalidBounds, min, max)
	}
	feasible := make([]byte, 0, len(g.ops))
	for _, op := range g.ops {
		if lo, hi := leftRange(op, min, max); lo <= hi {
			feasible = append(feasible, op)
		}
	}
	if len(feasible) == 0 {
		return Expr{}, fmt.Errorf("%w: min %d, max %d", ErrUnsatisfiableBounds, min, max)
	}

	op := feasible[g.rnd.intRange(0, len(feasible)-1)]
	lo, hi := leftRange(op, min, max)
	left := g.rnd.intRange(lo, hi)
	lo, hi = rightRange(op, left, min, max)
	return Expr{Left: left, Right: g.rnd.intRange(lo, hi), Op: op}, nil
}

// leftRange is the interval of left operands for which some right operand
// keeps the expression inside [min, max].
func leftRange(op byte, min, max int) (int, int) {
	if op == '-' {
		return maxInt(min, satAdd(min, min)), minInt(max, satAdd(max, max))
	}
	return maxInt(min, satSub(min, max)), minInt(max, satSub(max, min))
}

// rightRange is the interval of right operands valid for a chosen left.
func rightRange(op byte, left, min, max int) (int, int) {
	if op == '-' {
		return maxInt(min, satSub(left, max)), minInt(max, satSub(left, min))
	}
	return maxInt(min, satSub(min, left)), minInt(max, satSub(max, left))
}

// satAdd and satSub clamp to the int range instead of wrapping, so the
// interval bounds above stay correct for extreme configured limits.
func satAdd(a, b int) int {
	s := a + b
	switch {
	case b > 0 && s < a:
		return math.MaxInt
	case b < 0 && s > a:
		return math.MinInt
	}
	return s
}

func satSub(a, b int) int {
	s := a - b
	switch {
	case b < 0 && s < a:
		return math.MaxInt
	case b > 0 && s > a:
		return math.MinInt
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
