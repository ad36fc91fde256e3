package diag

import (
	"strings"
	"testing"

	"github.com/ecalc/ecalc/pkg/testutil"
)

func setCulpritMarkers(t *testing.T, start, end string) {
	testutil.Set(t, &culpritStart, start)
	testutil.Set(t, &culpritEnd, end)
}

func setMessageMarkers(t *testing.T, start, end string) {
	testutil.Set(t, &messageStart, start)
	testutil.Set(t, &messageEnd, end)
}

// Returns a Context for the first pair of parentheses in source.
func contextInParen(name, source string) *Context {
	return NewContext(name, source,
		Ranging{strings.Index(source, "("), strings.Index(source, ")") + 1})
}

func lines(lines ...string) string {
	return strings.Join(lines, "\n")
}
