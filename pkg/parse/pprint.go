package parse

import (
	"fmt"
	"io"
)

const indentInc = 2

// Pprint pretty-prints the tree rooted at n to w, one node per line, with
// children indented under their parents.
func Pprint(n Node, w io.Writer) {
	pprintRec(n, w, 0)
}

func pprintRec(n Node, w io.Writer, indent int) {
	r := n.Range()
	switch n := n.(type) {
	case *NumberLiteral:
		fmt.Fprintf(w, "%*sNumberLiteral %s %d-%d\n", indent, "", n, r.From, r.To)
	case *UnaryOperation:
		fmt.Fprintf(w, "%*sUnaryOperation %s %d-%d\n", indent, "", n.Op, r.From, r.To)
		pprintRec(n.Operand, w, indent+indentInc)
	case *BinaryOperation:
		fmt.Fprintf(w, "%*sBinaryOperation %s %d-%d\n", indent, "", n.Op, r.From, r.To)
		pprintRec(n.Left, w, indent+indentInc)
		pprintRec(n.Right, w, indent+indentInc)
	}
}
