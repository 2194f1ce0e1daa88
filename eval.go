package calc

import (
	"math/big"
	"strings"
)

// values is an operand stack.
type values interface {
	// push pushes the value of a TokenNum token.
	push(tok Token) error
	// apply pops the right operand, then the left, and pushes the result of
	// applying the operator of tok. There are always at least two operands.
	apply(tok Token) error
}

// evaluate runs the tokens through vals by operator precedence. The operator
// stack holds TokenOp and TokenOpen tokens; cols mirrors the operand stack
// with the column of each value.
func evaluate(tokens []Token, vals values, cfg *config) error {
	var (
		ops  = make([]Token, 0, len(tokens)/2+1)
		cols = make([]int, 0, len(tokens)/2+1)
	)
	reduce := func(op Token) error {
		if len(cols) < 2 {
			if cfg.strict {
				return &ArityError{Col: op.Pos, Operator: op.Op, Have: len(cols)}
			}
			// Not enough operands. The operator just disappears.
			return nil
		}
		if err := vals.apply(op); err != nil {
			return err
		}
		cols = cols[:len(cols)-1]
		return nil
	}
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			if err := vals.push(tok); err != nil {
				return err
			}
			cols = append(cols, tok.Pos)
		case TokenOp:
			prec := tok.Op.Prec()
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind != TokenOp || top.Op.Prec() < prec {
					break
				}
				ops = ops[:len(ops)-1]
				if err := reduce(top); err != nil {
					return err
				}
			}
			ops = append(ops, tok)
		case TokenOpen:
			ops = append(ops, tok)
		case TokenClose:
			for len(ops) > 0 && ops[len(ops)-1].Kind != TokenOpen {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if err := reduce(top); err != nil {
					return err
				}
			}
			if len(ops) == 0 {
				if cfg.strict {
					return &BracketError{Col: tok.Pos, Right: tok.Text}
				}
				continue
			}
			ops = ops[:len(ops)-1]
		default:
			panic("calc: invalid token " + tok.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == TokenOpen {
			if cfg.strict {
				return &BracketError{Col: top.Pos, Left: top.Text}
			}
			// Unclosed brackets close at the end of the input.
			continue
		}
		if err := reduce(top); err != nil {
			return err
		}
	}
	if cfg.strict {
		switch len(cols) {
		case 0:
			return &EmptyExpressionError{Col: end(tokens)}
		case 1: // do nothing
		default:
			return &OperandError{Col: cols[1], Count: len(cols)}
		}
	}
	return nil
}

// end returns the column just past the last token.
func end(tokens []Token) int {
	if len(tokens) == 0 {
		return 1
	}
	last := tokens[len(tokens)-1]
	return last.Pos + len([]rune(last.Text))
}

type floats struct {
	stack []float64
	trace func(Step)
}

func (s *floats) push(tok Token) error {
	s.stack = append(s.stack, tok.Num)
	return nil
}

func (s *floats) apply(tok Token) error {
	b := s.stack[len(s.stack)-1]
	a := s.stack[len(s.stack)-2]
	r, err := Apply(tok.Op, a, b)
	if err != nil {
		return at(err, tok.Pos)
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.stack[len(s.stack)-1] = r
	if s.trace != nil {
		s.trace(Step{Op: tok.Op, Left: a, Right: b, Result: r, Col: tok.Pos})
	}
	return nil
}

// result returns the bottom of the stack, or 0 if it is empty.
func (s *floats) result() float64 {
	if len(s.stack) == 0 {
		return 0
	}
	return s.stack[0]
}

// Evaluate computes the value of a token sequence by operator precedence. If
// no operand remains at the end, the result is 0. If more than one remains,
// the result is the first. With Prec, the evaluation uses big.Float and the
// result is rounded to float64. Evaluate panics if a token has kind
// TokenNone.
func Evaluate(tokens []Token, opts ...Option) (float64, error) {
	cfg := configure(opts)
	if cfg.prec != 0 {
		r, err := evaluateBig(tokens, &cfg)
		if err != nil {
			return 0, err
		}
		f, _ := r.Float64()
		return f, nil
	}
	vals := floats{
		stack: make([]float64, 0, len(tokens)/2+1),
		trace: cfg.trace,
	}
	if err := evaluate(tokens, &vals, &cfg); err != nil {
		return 0, err
	}
	return vals.result(), nil
}

// Calculate is a shortcut to tokenize and evaluate an expression.
func Calculate(expr string, opts ...Option) (float64, error) {
	toks, err := Tokenize(expr, opts...)
	if err != nil {
		return 0, err
	}
	return Evaluate(toks, opts...)
}

// CalculateBig is a shortcut to tokenize and evaluate an expression with
// big.Float. If no precision is given, the default is 64.
func CalculateBig(expr string, opts ...Option) (*big.Float, error) {
	cfg := configure(opts)
	toks, err := tokenize(strings.NewReader(expr), cfg.strict)
	if err != nil {
		return nil, err
	}
	return evaluateBig(toks, &cfg)
}

// EvaluateBig computes the value of a token sequence with big.Float. If no
// precision is given, the default is 64.
func EvaluateBig(tokens []Token, opts ...Option) (*big.Float, error) {
	cfg := configure(opts)
	return evaluateBig(tokens, &cfg)
}
