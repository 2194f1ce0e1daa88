package calc

// Option is an option for tokenizing and evaluating expressions.
type Option interface {
	option(*config)
}

type config struct {
	// strict turns the tolerant handling of malformed input into errors.
	strict bool
	// prec is the precision of big.Float evaluation. 0 means float64.
	prec uint
	// trace, if non-nil, receives each applied operation.
	trace func(Step)
}

type (
	strictopt bool
	precopt   uint
	traceopt  func(Step)
)

func (o strictopt) option(c *config) { c.strict = bool(o) }
func (o precopt) option(c *config)   { c.prec = uint(o) }
func (o traceopt) option(c *config)  { c.trace = o }

// Strict sets whether malformed input is an error. By default, unknown runes
// are dropped, unbalanced parentheses are ignored, operators without two
// operands are discarded, leftover operands are ignored, and the empty
// expression is 0. In strict mode, each of those is an error.
func Strict(strict bool) Option {
	return strictopt(strict)
}

// Prec sets the precision in bits of calculations. With a non-zero precision,
// evaluation uses big.Float, and Evaluate and Calculate round the result to
// float64. Prec(0) restores float64 evaluation.
func Prec(prec uint) Option {
	return precopt(prec)
}

// Trace sets a function to receive each operation as it is applied.
func Trace(f func(Step)) Option {
	return traceopt(f)
}

func configure(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.option(&c)
	}
	return c
}

// Step is a single operator application.
type Step struct {
	// Op is the operator applied.
	Op Op
	// Left, Right, and Result are the operands and result. In high-precision
	// evaluation, they are rounded to float64.
	Left, Right, Result float64
	// Col is the position of the operator.
	Col int
}
