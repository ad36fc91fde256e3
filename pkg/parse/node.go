package parse

import (
	"strconv"

	"github.com/ecalc/ecalc/pkg/diag"
)

// Node is a node in the expression tree. It is implemented by
// [*NumberLiteral], [*UnaryOperation] and [*BinaryOperation].
//
// Each node exclusively owns its children; trees are never shared or mutated
// after parsing.
type Node interface {
	diag.Ranger
	String() string
	isNode()
}

// NumberLiteral is a leaf node holding a number. Constants like pi are also
// represented as number literals.
type NumberLiteral struct {
	diag.Ranging
	Value float32
}

// UnaryOperation applies a function to its operand.
type UnaryOperation struct {
	diag.Ranging
	Op      UnaryOp
	Operand Node
}

// BinaryOperation applies an operator to two operands.
type BinaryOperation struct {
	diag.Ranging
	Op          BinaryOp
	Left, Right Node
}

func (*NumberLiteral) isNode()   {}
func (*UnaryOperation) isNode()  {}
func (*BinaryOperation) isNode() {}

// String returns the shortest representation of the value that reads back
// as the same float32.
func (n *NumberLiteral) String() string {
	return strconv.FormatFloat(float64(n.Value), 'g', -1, 32)
}

func (n *UnaryOperation) String() string {
	return n.Op.String() + "(" + n.Operand.String() + ")"
}

// String returns the operation fully parenthesized, like "((2 ^ 3) ^ 2)".
func (n *BinaryOperation) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

// UnaryOp is the operator of a UnaryOperation.
type UnaryOp int

// Unary operators.
const (
	Sin UnaryOp = iota
	Cos
	Tan
	Sqrt
	Exp
)

var unaryOpNames = [...]string{Sin: "sin", Cos: "cos", Tan: "tan", Sqrt: "sqrt", Exp: "exp"}

func (op UnaryOp) String() string {
	if op < 0 || int(op) >= len(unaryOpNames) {
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return unaryOpNames[op]
}

// BinaryOp is the operator of a BinaryOperation.
type BinaryOp int

// Binary operators.
const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
	Power
)

var binaryOpNames = [...]string{Add: "+", Subtract: "-", Multiply: "*", Divide: "/", Power: "^"}

func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOpNames) {
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return binaryOpNames[op]
}

// Innermost returns the deepest node in the tree rooted at n whose range
// contains the position p, or nil if there is none.
func Innermost(n Node, p int) Node {
	if !n.Range().Contains(p) {
		return nil
	}
	var children []Node
	switch n := n.(type) {
	case *UnaryOperation:
		children = []Node{n.Operand}
	case *BinaryOperation:
		children = []Node{n.Left, n.Right}
	}
	for _, ch := range children {
		if inner := Innermost(ch, p); inner != nil {
			return inner
		}
	}
	return n
}
