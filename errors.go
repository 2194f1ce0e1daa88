package calc

import (
	"strconv"
)

// OperatorError is an error indicating an operator that has no definition.
// The tokenizer never produces one, but Evaluate accepts arbitrary tokens. It
// implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was not understood.
	Operator Op
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.QuoteRune(rune(err.Operator)))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division whose right operand
// is exactly zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero: "+strconv.FormatFloat(err.X, 'g', -1, 64)+" / 0")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an unbalanced parenthesis in strict
// mode. It implements InputError.
type BracketError struct {
	// Col is the position of the unbalanced parenthesis.
	Col int
	// Left is the open parenthesis, or empty if there is none.
	Left string
	// Right is the close parenthesis, or empty if there is none.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ArityError is an error indicating an operator with fewer than two operands
// in strict mode. It implements InputError.
type ArityError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator missing operands.
	Operator Op
	// Have is the number of operands that were available.
	Have int
}

func (err *ArityError) Error() string {
	return errpos(err.Col, "operator "+err.Operator.String()+" needs 2 operands, have "+strconv.Itoa(err.Have))
}

func (err *ArityError) Pos() int {
	return err.Col
}

// OperandError is an error indicating operands with no operator between them
// in strict mode, e.g. "(1)(2)". It implements InputError.
type OperandError struct {
	// Col is the position of the first operand left over.
	Col int
	// Count is the number of values left after evaluation.
	Count int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operator: "+strconv.Itoa(err.Count)+" values left")
}

func (err *OperandError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an expression with no operands
// in strict mode. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// DomainError is an error returned when a high-precision operation has no
// real result, e.g. a negative number to a fractional power, or inf-inf. It
// implements InputError.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that failed.
	Operator Op
	// X and Y are the left and right operands.
	X, Y string
}

func (err *DomainError) Error() string {
	return errpos(err.Col, err.X+" "+err.Operator.String()+" "+err.Y+" outside domain of "+err.Operator.String())
}

func (err *DomainError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position. Positions
// below 1 are omitted.
func errpos(pos int, msg string) string {
	if pos < 1 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// at sets the position of an error from Apply.
func at(err error, col int) error {
	switch err := err.(type) {
	case *DivisionByZeroError:
		err.Col = col
	case *OperatorError:
		err.Col = col
	case *DomainError:
		err.Col = col
	}
	return err
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ArityError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*LexError)(nil)
)
