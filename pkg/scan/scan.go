// Package scan implements the lexical scanner of calculator expressions.
package scan

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ecalc/ecalc/pkg/diag"
)

// Source describes a piece of source code.
type Source struct {
	Name string
	Code string
}

// Error is a scan error.
type Error = diag.Error[ErrorTag]

// ErrorTag parameterizes [diag.Error] to define [Error].
type ErrorTag struct{}

func (ErrorTag) ErrorTag() string { return "scan error" }

// UnpackError returns the scan error contained in err, or nil if there is
// none.
func UnpackError(err error) *Error { return diag.UnpackError[ErrorTag](err) }

var keywords = map[string]Token{
	"sin":  {Type: Sin},
	"cos":  {Type: Cos},
	"tan":  {Type: Tan},
	"sqrt": {Type: Sqrt},
	"exp":  {Type: Exp},
	"pi":   {Type: Pi, Value: math.Pi},
	"e":    {Type: E, Value: math.E},
}

// Keywords returns the identifiers recognized by the scanner, mapped to the
// types of their tokens.
func Keywords() map[string]Type {
	types := make(map[string]Type, len(keywords))
	for name, t := range keywords {
		types[name] = t.Type
	}
	return types
}

var operators = map[byte]Type{
	'+': Plus,
	'*': Multiply,
	'/': Divide,
	'%': Modulo,
	'^': Power,
	'(': LeftParen,
	')': RightParen,
}

// Scan converts the source code into a sequence of tokens. It stops at the
// first error, in which case the returned error is an [*Error] and the
// returned tokens should be discarded.
func Scan(src Source) ([]Token, error) {
	sc := &scanner{src: src}
	for sc.pos < len(sc.src.Code) {
		if err := sc.scanOne(); err != nil {
			return nil, err
		}
	}
	return sc.tokens, nil
}

type scanner struct {
	src    Source
	pos    int
	tokens []Token
}

func (sc *scanner) scanOne() error {
	code := sc.src.Code
	begin := sc.pos
	b := code[begin]
	if t, ok := operators[b]; ok {
		sc.pos++
		sc.emit(Token{Type: t}, begin)
		return nil
	}
	switch {
	case b == ' ' || b == '\t' || b == '\r' || b == '\n':
		sc.pos++
	case b == '-':
		if !startsNegative(code, begin) {
			sc.pos++
			sc.emit(Token{Type: Minus}, begin)
			return nil
		}
		if begin+1 >= len(code) || !isDigit(code[begin+1]) {
			return sc.unexpected(begin, "should be followed by a digit")
		}
		sc.pos++
		sc.scanDigits()
		return sc.emitNumber(begin)
	case isDigit(b):
		sc.scanDigits()
		return sc.emitNumber(begin)
	case b == '.':
		return sc.scanFraction()
	default:
		r, _ := utf8.DecodeRuneInString(code[begin:])
		if !unicode.IsLetter(r) {
			return sc.unexpected(begin)
		}
		return sc.scanIdentifier()
	}
	return nil
}

// Reports whether a '-' at pos starts a negative number literal rather than
// being the binary minus operator. This is decided solely by the character
// immediately before it.
func startsNegative(code string, pos int) bool {
	if pos == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(code[:pos])
	return strings.ContainsRune("(+-*/^", prev) || unicode.IsLetter(prev)
}

func (sc *scanner) scanDigits() {
	for sc.pos < len(sc.src.Code) && isDigit(sc.src.Code[sc.pos]) {
		sc.pos++
	}
}

func (sc *scanner) scanIdentifier() error {
	begin := sc.pos
	for sc.pos < len(sc.src.Code) {
		r, size := utf8.DecodeRuneInString(sc.src.Code[sc.pos:])
		if !unicode.IsLetter(r) {
			break
		}
		sc.pos += size
	}
	name := sc.src.Code[begin:sc.pos]
	token, ok := keywords[strings.ToLower(name)]
	if !ok {
		return sc.errorf(diag.Ranging{From: begin, To: sc.pos},
			"unknown identifier %q", name)
	}
	sc.emit(token, begin)
	return nil
}

// A '.' continues the number token emitted just before it; the combined text
// is parsed again.
func (sc *scanner) scanFraction() error {
	dot := sc.pos
	n := len(sc.tokens)
	if n == 0 || sc.tokens[n-1].Type != Number {
		return sc.errorf(diag.Ranging{From: dot, To: dot + 1},
			"misplaced decimal point")
	}
	prev := sc.tokens[n-1]
	sc.tokens = sc.tokens[:n-1]
	sc.pos++
	sc.scanDigits()
	text := prev.Text + sc.src.Code[dot:sc.pos]
	value, err := strconv.ParseFloat(text, 32)
	if err != nil && !isRangeError(err) {
		return sc.errorf(diag.Ranging{From: dot, To: sc.pos},
			"misplaced decimal point")
	}
	sc.tokens = append(sc.tokens, Token{
		Type: Number, Value: float32(value), Text: text,
		Ranging: diag.Ranging{From: prev.From, To: sc.pos}})
	return nil
}

func (sc *scanner) emitNumber(begin int) error {
	text := sc.src.Code[begin:sc.pos]
	value, err := strconv.ParseFloat(text, 32)
	if err != nil && !isRangeError(err) {
		return sc.errorf(diag.Ranging{From: begin, To: sc.pos},
			"invalid number %q", text)
	}
	sc.emit(Token{Type: Number, Value: float32(value)}, begin)
	return nil
}

func (sc *scanner) emit(t Token, begin int) {
	t.Text = sc.src.Code[begin:sc.pos]
	t.Ranging = diag.Ranging{From: begin, To: sc.pos}
	sc.tokens = append(sc.tokens, t)
}

func (sc *scanner) unexpected(pos int, shouldbe ...string) error {
	r, size := utf8.DecodeRuneInString(sc.src.Code[pos:])
	msg := fmt.Sprintf("unexpected character %q", r)
	if len(shouldbe) > 0 {
		msg += ", " + strings.Join(shouldbe, ", ")
	}
	return sc.errorf(diag.Ranging{From: pos, To: pos + size}, "%s", msg)
}

func (sc *scanner) errorf(r diag.Ranging, format string, args ...any) error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(sc.src.Name, sc.src.Code, r)}
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// Overflowing literals saturate to infinity, like the result of any other
// float32 arithmetic.
func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
