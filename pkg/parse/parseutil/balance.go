// Package parseutil contains utilities built on top of the parse package.
package parseutil

import "strings"

// Balance makes the numbers of '(' and ')' in code equal, by prepending
// missing '(' or appending missing ')'. It only counts parentheses and does not
// check their placement, so ")(" is returned unchanged.
//
// It also returns the number of bytes prepended, which callers can use to map
// positions in the returned string back to code.
func Balance(code string) (string, int) {
	open := strings.Count(code, "(")
	closing := strings.Count(code, ")")
	switch {
	case open > closing:
		return code + strings.Repeat(")", open-closing), 0
	case open < closing:
		return strings.Repeat("(", closing-open) + code, closing - open
	}
	return code, 0
}
