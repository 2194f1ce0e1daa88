package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Op is the operator of a TokenOp token.
	Op Op
	// Num is the value of a TokenNum token.
	Num float64
	// Text is the token as it appeared in the input, without whitespace.
	Text string
	// Pos is the 1-based rune column of the first rune of the token.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind identifies the type of a Token.
type TokenKind int8

const (
	// TokenNone is the zero kind. Evaluating it panics.
	TokenNone TokenKind = iota
	// TokenNum is a non-negative decimal number.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// Operators contains the runes which are scanned as operators. The sequence
// ** is also scanned as ^.
const Operators = "+-*/^"

type lexer struct {
	src    io.RuneScanner
	buf    strings.Builder
	rune   int
	strict bool
}

func lex(src io.RuneScanner, strict bool) *lexer {
	return &lexer{src: src, strict: strict}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is a TokenNone token with io.EOF. Runes which cannot start a token
// are skipped unless the lexer is strict, in which case they produce a
// *LexError.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{Pos: l.rune + 1}, err
		}
		pos := l.rune
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			return l.scanNum(pos)
		case r == '*':
			tok := Token{Kind: TokenOp, Op: OpMul, Text: "*", Pos: pos}
			// ** only counts when the stars are adjacent, so no whitespace
			// skipping here.
			r, err := l.readRune()
			switch {
			case err == nil && r == '*':
				tok.Op, tok.Text = OpPow, "**"
			case err == nil:
				l.unreadRune()
			case !errors.Is(err, io.EOF):
				return Token{Pos: pos}, err
			}
			return tok, nil
		case strings.ContainsRune(Operators, r):
			return Token{Kind: TokenOp, Op: Op(r), Text: string(r), Pos: pos}, nil
		case r == '(':
			return Token{Kind: TokenOpen, Text: "(", Pos: pos}, nil
		case r == ')':
			return Token{Kind: TokenClose, Text: ")", Pos: pos}, nil
		default:
			if !l.strict {
				continue
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return Token{Pos: pos}, l.error(pos, "")
		}
	}
}

// scanNum scans digits, an optional dot, and more digits. Whitespace between
// any of those is ignored, so "1 2" is the number 12.
func (l *lexer) scanNum(pos int) (Token, error) {
	dot := false
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{Pos: pos}, err
		}
		if unicode.IsSpace(r) {
			continue
		}
		if r == '.' && !dot {
			dot = true
			l.buf.WriteRune(r)
			continue
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	// A trailing dot is part of the literal but not of its value.
	v, err := strconv.ParseFloat(strings.TrimSuffix(text, "."), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{Pos: pos}, l.error(pos, "number")
	}
	// Out of range literals are ±Inf or 0, which is what we want.
	return Token{Kind: TokenNum, Num: v, Text: text, Pos: pos}, nil
}

func (l *lexer) error(pos int, kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  pos,
	}
}

// Tokenize scans an expression into tokens. With the default options, runes
// that cannot start a token are dropped; with Strict(true), they cause a
// *LexError.
func Tokenize(expr string, opts ...Option) ([]Token, error) {
	cfg := configure(opts)
	return tokenize(strings.NewReader(expr), cfg.strict)
}

func tokenize(src io.RuneScanner, strict bool) ([]Token, error) {
	scan := lex(src, strict)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the column of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
