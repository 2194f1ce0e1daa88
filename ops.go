package calc

import (
	"math"
	"strconv"
)

// Op is a binary operator.
type Op rune

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpPow Op = '^'
)

// Prec returns the precedence of op. Higher is more binding. Operators of
// equal precedence associate to the left, including ^. Unknown operators have
// precedence 0.
func (op Op) Prec() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	case OpPow:
		return 3
	default:
		return 0
	}
}

func (op Op) String() string {
	return string(op)
}

// Name returns a short name for the operation.
func (op Op) Name() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpPow:
		return "pow"
	default:
		return "op " + strconv.QuoteRune(rune(op))
	}
}

// Apply computes a op b. Division by exactly zero returns a
// *DivisionByZeroError, and an unknown operator returns an *OperatorError.
// Errors from Apply have no position.
func Apply(op Op, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, &DivisionByZeroError{X: a}
		}
		return a / b, nil
	case OpPow:
		return math.Pow(a, b), nil
	default:
		return 0, &OperatorError{Operator: op}
	}
}
