package edit

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	. "github.com/ecalc/ecalc/pkg/tt"
)

func readKeys(s string) ([]Key, error) {
	rd := bufio.NewReader(strings.NewReader(s))
	var keys []Key
	for {
		k, err := readKey(rd)
		if err == io.EOF {
			return keys, nil
		} else if err != nil {
			return keys, err
		}
		keys = append(keys, k)
	}
}

func TestReadKey(t *testing.T) {
	Test(t, readKeys,
		Args("1+π").Rets([]Key{K('1'), K('+'), K('π')}, nil),
		Args("\r\n\x7f\x08\t").Rets(
			[]Key{K(Enter), K(Enter), K(Backspace), K(Backspace), K('\t')}, nil),
		Args("\x01\x03\x04\x17").Rets(
			[]Key{K('A', Ctrl), K('C', Ctrl), K('D', Ctrl), K('W', Ctrl)}, nil),

		It("decodes CSI sequences").
			Args("\x1b[A\x1b[B\x1b[C\x1b[D\x1b[H\x1b[F").
			Rets([]Key{K(Up), K(Down), K(Right), K(Left), K(Home), K(End)}, nil),
		It("decodes CSI sequences with a numeric parameter").
			Args("\x1b[1~\x1b[3~\x1b[4~\x1b[7~\x1b[8~").
			Rets([]Key{K(Home), K(Delete), K(End), K(Home), K(End)}, nil),
		It("decodes G3 sequences").
			Args("\x1bOA\x1bOH").
			Rets([]Key{K(Up), K(Home)}, nil),
		It("decodes Alt-modified keys").
			Args("\x1bb\x1b\x01").
			Rets([]Key{K('b', Alt), K('A', Ctrl, Alt)}, nil),
		It("decodes a lone ESC").
			Args("\x1b").
			Rets([]Key{K('[', Ctrl)}, nil),
	)
}

func TestReadKey_BadSequences(t *testing.T) {
	for _, s := range []string{"\x1b[", "\x1b[9~", "\x1b[Z", "\x1bOZ"} {
		_, err := readKeys(s)
		var errSeq seqError
		if !errors.As(err, &errSeq) {
			t.Errorf("readKeys(%q) returns error %v, want seqError", s, err)
		}
	}
}

func TestKey_String(t *testing.T) {
	Test(t, Key.String,
		Args(K('a')).Rets("a"),
		Args(K('A', Ctrl)).Rets("Ctrl-A"),
		Args(K('b', Alt)).Rets("Alt-b"),
		Args(K('A', Ctrl, Alt)).Rets("Ctrl-Alt-A"),
		Args(K(Up)).Rets("Up"),
		Args(K(Enter)).Rets("Enter"),
		Args(K(-100)).Rets("(bad function key -100)"),
	)
}
