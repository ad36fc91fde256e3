package scan

import (
	"strconv"

	"github.com/ecalc/ecalc/pkg/diag"
)

// Type is the type of a Token.
type Type int

// Token types.
const (
	Plus Type = iota
	Minus
	Multiply
	Divide
	Modulo
	Power
	LeftParen
	RightParen
	Number
	Sin
	Cos
	Tan
	Sqrt
	Exp
	Pi
	E
	// EOF is never produced by Scan. The parser uses it to mark the position
	// after the last token.
	EOF
)

var typeNames = [...]string{
	Plus:       "+",
	Minus:      "-",
	Multiply:   "*",
	Divide:     "/",
	Modulo:     "%",
	Power:      "^",
	LeftParen:  "(",
	RightParen: ")",
	Number:     "number",
	Sin:        "sin",
	Cos:        "cos",
	Tan:        "tan",
	Sqrt:       "sqrt",
	Exp:        "exp",
	Pi:         "pi",
	E:          "e",
	EOF:        "end of input",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// IsFunction reports whether the token type is one of the unary functions.
func (t Type) IsFunction() bool {
	switch t {
	case Sin, Cos, Tan, Sqrt, Exp:
		return true
	}
	return false
}

// Token is a lexical unit.
type Token struct {
	Type Type
	// Value is the numeric value of Number, Pi and E tokens.
	Value float32
	// Text is the source text of the token.
	Text string
	diag.Ranging
}

func (t Token) String() string {
	if t.Type == Number {
		return "number " + t.Text
	}
	return t.Type.String()
}
