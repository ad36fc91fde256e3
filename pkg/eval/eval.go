// Package eval implements the evaluator of expression trees.
package eval

import (
	"fmt"
	"math"

	"github.com/ecalc/ecalc/pkg/logutil"
	"github.com/ecalc/ecalc/pkg/parse"
	"github.com/ecalc/ecalc/pkg/scan"
)

var logger = logutil.GetLogger("[eval] ")

// Eval reduces the tree rooted at n to a number. It never fails: operations
// without a real result, like division by zero or the square root of a
// negative number, produce NaN or an infinity.
//
// All arithmetic is done with float32 precision.
func Eval(n parse.Node) float32 {
	switch n := n.(type) {
	case *parse.NumberLiteral:
		return n.Value
	case *parse.UnaryOperation:
		return evalUnary(n.Op, Eval(n.Operand))
	case *parse.BinaryOperation:
		left := Eval(n.Left)
		right := Eval(n.Right)
		return evalBinary(n.Op, left, right)
	}
	panic(fmt.Sprintf("unknown node type %T", n))
}

func evalUnary(op parse.UnaryOp, v float32) float32 {
	x := float64(v)
	switch op {
	case parse.Sin:
		return float32(math.Sin(x))
	case parse.Cos:
		return float32(math.Cos(x))
	case parse.Tan:
		return float32(math.Tan(x))
	case parse.Sqrt:
		return float32(math.Sqrt(x))
	case parse.Exp:
		return float32(math.Exp(x))
	}
	panic("unknown unary operator " + op.String())
}

func evalBinary(op parse.BinaryOp, l, r float32) float32 {
	switch op {
	case parse.Add:
		return l + r
	case parse.Subtract:
		return l - r
	case parse.Multiply:
		return l * r
	case parse.Divide:
		return l / r
	case parse.Power:
		return float32(math.Pow(float64(l), float64(r)))
	}
	panic("unknown binary operator " + op.String())
}

// EvalCode scans, parses and evaluates src. The returned error is either a
// [scan.Error] or a [parse.Error]; evaluation itself never fails.
func EvalCode(src scan.Source) (float32, error) {
	n, err := parse.ParseCode(src)
	if err != nil {
		logger.Printf("%s: %v", src.Name, err)
		return 0, err
	}
	v := Eval(n)
	logger.Printf("%s: %s = %v", src.Name, n, v)
	return v, nil
}
