// Package shell implements the interactive calculator loop and its history.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	calc "github.com/27saya/segundo-parcial-angel-arcos"
)

// Config holds the settings of a Shell.
type Config struct {
	// In and Out are the input and output of Run.
	In  io.Reader
	Out io.Writer
	// Prompt is written before reading each line.
	Prompt string
	// History is the maximum number of entries to keep. 0 means unlimited.
	History int
	// Round rounds results half away from zero to Places decimal places.
	// Otherwise, results are formatted with Format.
	Round  bool
	Places int
	// Format is the fmt verb for results. The default is %g.
	Format string
	// Trace writes each operator application before the result.
	Trace bool
	// Echo writes the tokens of each expression before the result.
	Echo bool
	// Options are passed to every calculation.
	Options []calc.Option
}

// Entry is a successful calculation.
type Entry struct {
	Expr   string
	Result float64
}

// Shell is an interactive calculator. It is not safe to use a Shell
// concurrently.
type Shell struct {
	cfg     Config
	opts    []calc.Option
	history []Entry
}

// New creates a shell.
func New(cfg Config) *Shell {
	if cfg.Format == "" {
		cfg.Format = "%g"
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	s := &Shell{cfg: cfg}
	s.opts = append(s.opts, cfg.Options...)
	if cfg.Trace {
		s.opts = append(s.opts, calc.Trace(s.step))
	}
	return s
}

// Commands which are not expressions.
var (
	quitCmds    = []string{"salir", "exit", "quit"}
	historyCmds = []string{"historial", "history", "h"}
)

func iscmd(line string, cmds []string) bool {
	for _, c := range cmds {
		if strings.EqualFold(line, c) {
			return true
		}
	}
	return false
}

// Run reads and evaluates lines until EOF or a quit command. Errors in
// expressions are written to the output and do not stop the loop. The result
// is the first error reading input or writing output.
func (s *Shell) Run() error {
	if s.cfg.In == nil {
		return nil
	}
	sc := bufio.NewScanner(s.cfg.In)
	for {
		if s.cfg.Prompt != "" {
			if _, err := io.WriteString(s.cfg.Out, s.cfg.Prompt); err != nil {
				return err
			}
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case iscmd(line, quitCmds):
			return nil
		case iscmd(line, historyCmds):
			if err := s.WriteHistory(s.cfg.Out); err != nil {
				return err
			}
		default:
			if failed, err := s.eval(line); err != nil && !failed {
				return err
			}
		}
	}
}

// Eval evaluates an expression and writes its result, or its error and
// returns it. Write errors are also returned.
func (s *Shell) Eval(expr string) error {
	_, err := s.eval(expr)
	return err
}

// eval evaluates one line and writes its result or error. failed reports
// whether the expression was in error, as opposed to the output.
func (s *Shell) eval(line string) (failed bool, err error) {
	if s.cfg.Echo {
		toks, err := calc.Tokenize(line, s.opts...)
		if err == nil {
			if _, err := fmt.Fprintln(s.cfg.Out, Tokens(toks)); err != nil {
				return false, err
			}
		}
	}
	r, err := s.Calculate(line)
	if err != nil {
		if _, werr := fmt.Fprintln(s.cfg.Out, "error:", err); werr != nil {
			return false, werr
		}
		return true, err
	}
	_, err = fmt.Fprintln(s.cfg.Out, s.Format(r))
	return false, err
}

// Calculate evaluates an expression and records it in the history if it
// succeeds.
func (s *Shell) Calculate(expr string) (float64, error) {
	r, err := calc.Calculate(expr, s.opts...)
	if err != nil {
		return 0, err
	}
	s.history = append(s.history, Entry{Expr: expr, Result: r})
	if n := s.cfg.History; n > 0 && len(s.history) > n {
		s.history = append(s.history[:0], s.history[len(s.history)-n:]...)
	}
	return r, nil
}

// History returns a copy of the recorded calculations, oldest first.
func (s *Shell) History() []Entry {
	return append([]Entry(nil), s.history...)
}

// WriteHistory writes the numbered history.
func (s *Shell) WriteHistory(w io.Writer) error {
	if len(s.history) == 0 {
		_, err := fmt.Fprintln(w, "no history")
		return err
	}
	for i, e := range s.history {
		if _, err := fmt.Fprintf(w, "%d. %s = %s\n", i+1, e.Expr, s.Format(e.Result)); err != nil {
			return err
		}
	}
	return nil
}

// Format formats a result according to the shell's config.
func (s *Shell) Format(r float64) string {
	if s.cfg.Round && !math.IsInf(r, 0) && !math.IsNaN(r) {
		return decimal.NewFromFloat(r).Round(int32(s.cfg.Places)).String()
	}
	return fmt.Sprintf(s.cfg.Format, r)
}

func (s *Shell) step(st calc.Step) {
	fmt.Fprintf(s.cfg.Out, "  [%s] %s %v %s = %s\n", st.Op.Name(), fmtnum(st.Left), st.Op, fmtnum(st.Right), fmtnum(st.Result))
}

func fmtnum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Tokens formats a token sequence on one line.
func Tokens(toks []calc.Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
