// Package parse implements the parser of calculator expressions.
//
// The grammar, from the loosest to the tightest binding level, is:
//
//	expression = term { ('+' | '-') term }
//	term       = factor { ('*' | '/') factor }
//	factor     = exponent { '^' exponent }
//	exponent   = atom { '^' atom }
//	atom       = number | 'pi' | 'e' | '(' expression ')' | function atom
//	function   = 'sin' | 'cos' | 'tan' | 'sqrt' | 'exp'
//
// All binary operators are left-associative, including '^': "2^3^2" is parsed
// as "(2^3)^2". A function applies to the single atom following it, so
// "sin 2+3" is parsed as "sin(2)+3".
package parse

import (
	"bytes"
	"errors"

	"github.com/ecalc/ecalc/pkg/diag"
	"github.com/ecalc/ecalc/pkg/scan"
)

// Error is a parse error.
type Error = diag.Error[ErrorTag]

// ErrorTag parameterizes [diag.Error] to define [Error].
type ErrorTag struct{}

func (ErrorTag) ErrorTag() string { return "parse error" }

// UnpackError returns the parse error contained in err, or nil if there is
// none.
func UnpackError(err error) *Error { return diag.UnpackError[ErrorTag](err) }

// Errors.
var (
	errShouldBeAtom      = newError("", "number", "constant", "function", "'('")
	errShouldBeEOF       = newError("", "end of input")
	errUnterminatedParen = newError("unterminated parenthesis", "')'")
)

// Parse builds an expression tree from the tokens scanned from src. Parsing
// stops at the first error; the returned error is then an [*Error].
func Parse(src scan.Source, tokens []scan.Token) (Node, error) {
	ps := &parser{src: src, tokens: tokens}
	n, err := ps.expression()
	if err != nil {
		return nil, err
	}
	if t := ps.peek(); t.Type != scan.EOF {
		return nil, ps.unexpected(t, errShouldBeEOF)
	}
	return n, nil
}

// ParseCode scans and parses src. The returned error is either a scan
// [scan.Error] or a parse [*Error].
func ParseCode(src scan.Source) (Node, error) {
	tokens, err := scan.Scan(src)
	if err != nil {
		return nil, err
	}
	return Parse(src, tokens)
}

type parser struct {
	src    scan.Source
	tokens []scan.Token
	pos    int
}

// Returns the current token, or an EOF token positioned at the end of the
// source if all tokens have been consumed.
func (ps *parser) peek() scan.Token {
	if ps.pos < len(ps.tokens) {
		return ps.tokens[ps.pos]
	}
	return scan.Token{Type: scan.EOF, Ranging: diag.PointRanging(len(ps.src.Code))}
}

func (ps *parser) next() scan.Token {
	t := ps.peek()
	if ps.pos < len(ps.tokens) {
		ps.pos++
	}
	return t
}

var (
	additiveOps       = map[scan.Type]BinaryOp{scan.Plus: Add, scan.Minus: Subtract}
	multiplicativeOps = map[scan.Type]BinaryOp{scan.Multiply: Multiply, scan.Divide: Divide}
	powerOps          = map[scan.Type]BinaryOp{scan.Power: Power}
)

func (ps *parser) expression() (Node, error) {
	return ps.leftAssoc(additiveOps, ps.term)
}

func (ps *parser) term() (Node, error) {
	return ps.leftAssoc(multiplicativeOps, ps.factor)
}

func (ps *parser) factor() (Node, error) {
	return ps.leftAssoc(powerOps, ps.exponent)
}

// The exponent level repeats the '^' loop of factor. Since it consumes the
// whole chain, a power chain is left-associative.
func (ps *parser) exponent() (Node, error) {
	return ps.leftAssoc(powerOps, ps.atom)
}

// Parses operand { op operand } and folds the operands to the left.
func (ps *parser) leftAssoc(ops map[scan.Type]BinaryOp, operand func() (Node, error)) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[ps.peek().Type]
		if !ok {
			return left, nil
		}
		ps.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &BinaryOperation{
			Ranging: diag.MixedRanging(left, right),
			Op:      op, Left: left, Right: right}
	}
}

var functions = map[scan.Type]UnaryOp{
	scan.Sin: Sin, scan.Cos: Cos, scan.Tan: Tan, scan.Sqrt: Sqrt, scan.Exp: Exp,
}

func (ps *parser) atom() (Node, error) {
	t := ps.next()
	switch t.Type {
	case scan.Number, scan.Pi, scan.E:
		return &NumberLiteral{Ranging: t.Ranging, Value: t.Value}, nil
	case scan.LeftParen:
		n, err := ps.expression()
		if err != nil {
			return nil, err
		}
		if closing := ps.peek(); closing.Type != scan.RightParen {
			return nil, ps.errorp(closing, errUnterminatedParen)
		}
		ps.next()
		return n, nil
	}
	if op, ok := functions[t.Type]; ok {
		operand, err := ps.atom()
		if err != nil {
			return nil, err
		}
		return &UnaryOperation{
			Ranging: diag.MixedRanging(t, operand),
			Op:      op, Operand: operand}, nil
	}
	return nil, ps.unexpected(t, errShouldBeAtom)
}

func (ps *parser) unexpected(t scan.Token, e error) error {
	return ps.errorp(t, errors.New("unexpected "+t.String()+", "+e.Error()))
}

func (ps *parser) errorp(r diag.Ranger, e error) error {
	return &Error{
		Message: e.Error(),
		Context: *diag.NewContext(ps.src.Name, ps.src.Code, r)}
}

func newError(text string, shouldbe ...string) error {
	if len(shouldbe) == 0 {
		return errors.New(text)
	}
	var buf bytes.Buffer
	if len(text) > 0 {
		buf.WriteString(text + ", ")
	}
	buf.WriteString("should be " + shouldbe[0])
	for i, opt := range shouldbe[1:] {
		if i == len(shouldbe)-2 {
			buf.WriteString(" or ")
		} else {
			buf.WriteString(", ")
		}
		buf.WriteString(opt)
	}
	return errors.New(buf.String())
}
