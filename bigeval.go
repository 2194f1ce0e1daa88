package calc

import (
	"math"
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision of big.Float evaluation when none is given.
const DefaultPrec = 64

type bigs struct {
	stack []*big.Float
	prec  uint
	trace func(Step)
}

func evaluateBig(tokens []Token, cfg *config) (*big.Float, error) {
	prec := cfg.prec
	if prec == 0 {
		prec = DefaultPrec
	}
	vals := bigs{
		stack: make([]*big.Float, 0, len(tokens)/2+1),
		prec:  prec,
		trace: cfg.trace,
	}
	if err := evaluate(tokens, &vals, cfg); err != nil {
		return nil, err
	}
	if len(vals.stack) == 0 {
		return new(big.Float).SetPrec(prec), nil
	}
	return vals.stack[0], nil
}

func (s *bigs) push(tok Token) error {
	x := new(big.Float).SetPrec(s.prec)
	// Parse the text rather than using Num so that e.g. 0.1 gets the full
	// precision.
	text := strings.TrimSuffix(tok.Text, ".")
	if _, _, err := x.Parse(text, 10); err != nil {
		// Tokens built by hand might have no text.
		if math.IsNaN(tok.Num) {
			return &LexError{Text: tok.Text, Kind: "number", Col: tok.Pos}
		}
		x.SetFloat64(tok.Num)
	}
	s.stack = append(s.stack, x)
	return nil
}

func (s *bigs) apply(tok Token) error {
	y := s.stack[len(s.stack)-1]
	x := s.stack[len(s.stack)-2]
	z := new(big.Float).SetPrec(s.prec)
	if err := applyBig(tok.Op, z, x, y); err != nil {
		return at(err, tok.Pos)
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.stack[len(s.stack)-1] = z
	if s.trace != nil {
		a, _ := x.Float64()
		b, _ := y.Float64()
		r, _ := z.Float64()
		s.trace(Step{Op: tok.Op, Left: a, Right: b, Result: r, Col: tok.Pos})
	}
	return nil
}

// applyBig sets z to x op y. z must not alias x or y, because big.Float sets
// its receiver before panicking with big.ErrNaN.
func applyBig(op Op, z, x, y *big.Float) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(big.ErrNaN); !ok {
			panic(r)
		}
		err = &DomainError{Operator: op, X: x.String(), Y: y.String()}
	}()
	switch op {
	case OpAdd:
		z.Add(x, y)
	case OpSub:
		z.Sub(x, y)
	case OpMul:
		z.Mul(x, y)
	case OpDiv:
		if y.Sign() == 0 {
			f, _ := x.Float64()
			return &DivisionByZeroError{X: f}
		}
		z.Quo(x, y)
	case OpPow:
		return pow(z, x, y)
	default:
		return &OperatorError{Operator: op}
	}
	return nil
}

// pow sets z to x^y, following math.Pow where the result is real.
func pow(z, x, y *big.Float) error {
	switch {
	case y.Sign() == 0:
		z.SetInt64(1)
	case x.IsInf() || y.IsInf():
		// bigfloat works only with finite values. Infinities are exact in
		// float64, so use that.
		a, _ := x.Float64()
		b, _ := y.Float64()
		r := math.Pow(a, b)
		if math.IsNaN(r) {
			return &DomainError{Operator: OpPow, X: x.String(), Y: y.String()}
		}
		z.SetFloat64(r)
	case x.Sign() == 0:
		if y.Sign() < 0 {
			z.SetInf(false)
		} else {
			z.SetInt64(0)
		}
	case x.Sign() < 0:
		if !y.IsInt() {
			return &DomainError{Operator: OpPow, X: x.String(), Y: y.String()}
		}
		bigfloat.Pow(z, new(big.Float).Abs(x), y)
		if odd(y) {
			z.Neg(z)
		}
	default:
		bigfloat.Pow(z, x, y)
	}
	return nil
}

// odd returns whether the integer y is odd.
func odd(y *big.Float) bool {
	i, _ := y.Int(nil)
	return i.Bit(0) == 1
}
