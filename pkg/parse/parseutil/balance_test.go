package parseutil

import (
	"testing"

	. "github.com/ecalc/ecalc/pkg/tt"
)

func TestBalance(t *testing.T) {
	Test(t, Balance,
		Args("").Rets("", 0),
		Args("2+3").Rets("2+3", 0),
		Args("(2+3)").Rets("(2+3)", 0),
		It("appends missing right parentheses").
			Args("((2+3)*4").Rets("((2+3)*4)", 0),
		Args("sin(cos(0").Rets("sin(cos(0))", 0),
		It("prepends missing left parentheses").
			Args("2+3)*4)").Rets("((2+3)*4)", 2),
		It("does not check placement").
			Args(")(").Rets(")(", 0),
	)
}
