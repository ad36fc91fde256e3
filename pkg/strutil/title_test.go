package strutil

import (
	"testing"

	. "github.com/ecalc/ecalc/pkg/tt"
)

func TestTitle(t *testing.T) {
	Test(t, Title,
		Args("").Rets(""),
		Args("scan error").Rets("Scan error"),
		Args("\xf0").Rets("\xf0"),
		Args("FOO").Rets("FOO"),
	)
}
