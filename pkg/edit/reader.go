package edit

import (
	"bufio"
	"fmt"
)

// A sequence that could not be decoded into a Key.
type seqError struct {
	msg string
	seq string
}

func (err seqError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}

// Reads one key from rd. Escape sequences are decoded into function keys;
// bytes of a sequence are assumed to arrive together, so an ESC with nothing
// buffered after it is a lone Escape.
func readKey(rd *bufio.Reader) (Key, error) {
	r, _, err := rd.ReadRune()
	if err != nil {
		return Key{}, err
	}
	if r != 0x1b {
		return ctrlModify(r), nil
	}

	currentSeq := string(r)
	// Reads the next rune of the sequence if there is one; -1 otherwise.
	next := func() rune {
		if rd.Buffered() == 0 {
			return -1
		}
		r, _, err := rd.ReadRune()
		if err != nil {
			return -1
		}
		currentSeq += string(r)
		return r
	}

	switch r2 := next(); r2 {
	case -1:
		return K('[', Ctrl), nil
	case '[':
		// CSI style function key sequence.
		num := 0
		r := next()
		for '0' <= r && r <= '9' {
			num = num*10 + int(r-'0')
			r = next()
		}
		if r == -1 {
			return Key{}, seqError{"incomplete CSI", currentSeq}
		}
		if r == '~' {
			if k, ok := csiSeqTilde[num]; ok {
				return k, nil
			}
		} else if k, ok := csiSeq[r]; ok {
			return k, nil
		}
		return Key{}, seqError{"bad CSI", currentSeq}
	case 'O':
		// G3 style function key sequence.
		if k, ok := csiSeq[next()]; ok {
			return k, nil
		}
		return Key{}, seqError{"bad G3", currentSeq}
	default:
		// Taken as an Alt-modified key, possibly also modified by Ctrl.
		k := ctrlModify(r2)
		k.Mod |= Alt
		return k, nil
	}
}

// Determines whether a rune corresponds to a Ctrl-modified key and returns the
// Key the rune represents.
func ctrlModify(r rune) Key {
	switch r {
	case '\r', '\n':
		return K(Enter)
	case '\t', Backspace:
		return K(r)
	case 0x8:
		// ^H is sent as backspace by some terminals.
		return K(Backspace)
	default:
		if 0x1 <= r && r <= 0x1a {
			return K(r+0x40, Ctrl)
		}
	}
	return K(r)
}

// Final bytes of CSI and G3 sequences for keys without a numeric parameter.
var csiSeq = map[rune]Key{
	'A': K(Up), 'B': K(Down), 'C': K(Right), 'D': K(Left),
	'H': K(Home), 'F': K(End),
}

// CSI sequences ending in '~', keyed by their numeric parameter.
var csiSeqTilde = map[int]Key{
	1: K(Home), 3: K(Delete), 4: K(End),
	// rxvt
	7: K(Home), 8: K(End),
}
