package edit

import (
	"testing"

	. "github.com/ecalc/ecalc/pkg/tt"
)

// Feeds keys to a fresh Editor with the given history and returns the
// resulting buffer and the action of the last key.
func feed(hist []string, keys ...Key) (Buffer, action) {
	ed := &Editor{}
	for _, cmd := range hist {
		ed.hist.add(cmd)
	}
	a := noAction
	for _, k := range keys {
		a = ed.handleKey(k)
	}
	return ed.buf, a
}

// Builds a key sequence from strings, whose runes become plain keys, and Keys.
func ks(parts ...any) []Key {
	var keys []Key
	for _, part := range parts {
		switch part := part.(type) {
		case string:
			for _, r := range part {
				keys = append(keys, K(r))
			}
		case Key:
			keys = append(keys, part)
		}
	}
	return keys
}

func TestHandleKey(t *testing.T) {
	Test(t, Fn(func(keys []Key) (Buffer, action) {
		return feed(nil, keys...)
	}).Named("handleKey"),
		Args(ks("2+3")).Rets(Buffer{"2+3", 3}, noAction),
		Args(ks("2+3", K(Enter))).Rets(Buffer{"2+3", 3}, submit),
		Args(ks(K('C', Ctrl))).Rets(Buffer{}, interrupt),
		Args(ks(K('D', Ctrl))).Rets(Buffer{}, endOfInput),
		Args(ks(K('L', Ctrl))).Rets(Buffer{}, clearScreen),

		It("deletes right with Ctrl-D on a non-empty line").
			Args(ks("12", K('A', Ctrl), K('D', Ctrl))).
			Rets(Buffer{"2", 0}, noAction),
		It("moves the dot and inserts in the middle").
			Args(ks("13", K(Left), K('2'), K(End), K('4'))).
			Rets(Buffer{"1234", 4}, noAction),
		It("supports Emacs-style movement").
			Args(ks("23", K('A', Ctrl), K('1'), K('F', Ctrl), K('B', Ctrl))).
			Rets(Buffer{"123", 1}, noAction),
		It("supports Home and Delete").
			Args(ks("x1", K(Home), K(Delete))).
			Rets(Buffer{"1", 0}, noAction),
		It("supports backspace").
			Args(ks("1+22", K(Backspace))).
			Rets(Buffer{"1+2", 3}, noAction),
		It("supports killing").
			Args(ks("1 + 2", K(Left), K('K', Ctrl))).
			Rets(Buffer{"1 + ", 4}, noAction),
		It("supports Ctrl-U").
			Args(ks("1 + 2", K(Left), K('U', Ctrl))).
			Rets(Buffer{"2", 0}, noAction),
		It("supports Ctrl-W").
			Args(ks("1 + sqrt", K('W', Ctrl))).
			Rets(Buffer{"1 + ", 4}, noAction),
		It("ignores unbound keys").
			Args(ks(K('x', Alt), K('G', Ctrl), K('\t'))).
			Rets(Buffer{}, noAction),
	)
}

func TestHandleKey_History(t *testing.T) {
	hist := []string{"1+1", "2+2"}
	Test(t, Fn(func(keys []Key) (Buffer, action) {
		return feed(hist, keys...)
	}).Named("handleKey"),
		Args(ks(K(Up))).Rets(Buffer{"2+2", 3}, noAction),
		Args(ks(K(Up), K(Up))).Rets(Buffer{"1+1", 3}, noAction),
		It("stays at the oldest entry").
			Args(ks(K(Up), K(Up), K(Up))).Rets(Buffer{"1+1", 3}, noAction),
		It("restores the pending line after walking past the newest entry").
			Args(ks(K('7'), K(Up), K(Down))).Rets(Buffer{"7", 1}, noAction),
		Args(ks(K(Down))).Rets(Buffer{}, noAction),
	)
}

func TestHistory_Add(t *testing.T) {
	var h history
	for _, cmd := range []string{"1", "", "2", "2", "1"} {
		h.add(cmd)
	}
	want := []string{"1", "2", "1"}
	if len(h.cmds) != len(want) {
		t.Fatalf("got cmds %q, want %q", h.cmds, want)
	}
	for i := range want {
		if h.cmds[i] != want[i] {
			t.Errorf("got cmds %q, want %q", h.cmds, want)
		}
	}
}

func TestRender(t *testing.T) {
	Test(t, render,
		Args("> ", Buffer{"", 0}).Rets("\r\033[K> "),
		Args("> ", Buffer{"1+2", 3}).Rets("\r\033[K> 1+2"),
		Args("> ", Buffer{"1+2", 1}).Rets("\r\033[K> 1+2\033[2D"),
		Args("~ ", Buffer{"ππ", 2}).Rets("\r\033[K~ ππ\033[1D"),
	)
}
