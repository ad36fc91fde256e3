//go:build linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd

package edit

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	"github.com/ecalc/ecalc/pkg/sys/eunix"
)

func TestEditor_ReadCode(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	go io.Copy(io.Discard, ptmx)

	ed := NewEditor(tty, tty, "> ")
	type result struct {
		code string
		err  error
	}
	readCode := func(input string) result {
		ch := make(chan result, 1)
		go func() {
			code, err := ed.ReadCode()
			ch <- result{code, err}
		}()
		waitRaw(t, tty)
		ptmx.WriteString(input)
		select {
		case r := <-ch:
			return r
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out reading %q", input)
			panic("unreachable")
		}
	}

	if r := readCode("2+3\r"); r.code != "2+3" || r.err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", r.code, r.err, "2+3")
	}
	if r := readCode("\x1b[A*2\r"); r.code != "2+3*2" || r.err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", r.code, r.err, "2+3*2")
	}
	if r := readCode("1\x03\x04"); r.err != io.EOF {
		t.Errorf("got (%q, %v), want io.EOF", r.code, r.err)
	}
}

// Waits until the terminal has been put into raw mode by ReadCode.
func waitRaw(t *testing.T, tty *os.File) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		term, err := eunix.TermiosForFd(int(tty.Fd()))
		if err == nil && term.Lflag&unix.ICANON == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("terminal not in raw mode")
}
