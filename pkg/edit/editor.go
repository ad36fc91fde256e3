// Package edit implements the line editor used by the interactive ecalc REPL
// when the terminal supports it.
//
// The editor puts the terminal into raw mode for the duration of each
// ReadCode call, and supports the basic Emacs-style editing keys as well as
// walking an in-memory history with Up and Down.
package edit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ecalc/ecalc/pkg/logutil"
)

var logger = logutil.GetLogger("[edit] ")

// Editor is a line editor operating on a terminal.
type Editor struct {
	in, out *os.File
	prompt  string
	rd      *bufio.Reader

	buf  Buffer
	hist history
}

// NewEditor creates a new Editor reading from in and writing to out. Both
// should refer to the same terminal.
func NewEditor(in, out *os.File, prompt string) *Editor {
	return &Editor{in: in, out: out, prompt: prompt, rd: bufio.NewReader(in)}
}

type action int

const (
	noAction action = iota
	submit
	endOfInput
	interrupt
	clearScreen
)

// ReadCode reads one line of code. It returns io.EOF when the user presses
// Ctrl-D on an empty line, or when the input is closed.
func (ed *Editor) ReadCode() (string, error) {
	restore, err := setupTerminal(ed.in)
	if err != nil {
		return "", fmt.Errorf("can't set up terminal: %w", err)
	}
	defer func() {
		err := restore()
		if err != nil {
			logger.Println("can't restore terminal:", err)
		}
	}()

	ed.buf = Buffer{}
	ed.redraw()
	for {
		k, err := readKey(ed.rd)
		if err != nil {
			var errSeq seqError
			if errors.As(err, &errSeq) {
				logger.Println(err)
				continue
			}
			if err == io.EOF {
				ed.write("\n")
			}
			return "", err
		}
		switch ed.handleKey(k) {
		case submit:
			ed.write("\n")
			ed.hist.add(ed.buf.Content)
			return ed.buf.Content, nil
		case endOfInput:
			ed.write("\n")
			return "", io.EOF
		case interrupt:
			ed.write("^C\n")
			ed.buf = Buffer{}
			ed.hist.index = len(ed.hist.cmds)
		case clearScreen:
			ed.write("\033[H\033[2J")
		}
		ed.redraw()
	}
}

// Updates the buffer according to k and returns what ReadCode should do next.
func (ed *Editor) handleKey(k Key) action {
	b := &ed.buf
	switch k {
	case K(Enter):
		return submit
	case K('C', Ctrl):
		return interrupt
	case K('D', Ctrl):
		if b.Content == "" {
			return endOfInput
		}
		b.DeleteRight()
	case K('L', Ctrl):
		return clearScreen
	case K(Backspace):
		b.Backspace()
	case K(Delete):
		b.DeleteRight()
	case K(Left), K('B', Ctrl):
		b.MoveLeft()
	case K(Right), K('F', Ctrl):
		b.MoveRight()
	case K(Home), K('A', Ctrl):
		b.Dot = 0
	case K(End), K('E', Ctrl):
		b.Dot = len(b.Content)
	case K('K', Ctrl):
		b.KillRight()
	case K('U', Ctrl):
		b.KillLeft()
	case K('W', Ctrl):
		b.KillWordLeft()
	case K(Up):
		if cmd, ok := ed.hist.prev(b.Content); ok {
			*b = Buffer{cmd, len(cmd)}
		}
	case K(Down):
		if cmd, ok := ed.hist.next(); ok {
			*b = Buffer{cmd, len(cmd)}
		}
	default:
		if k.Mod == 0 && k.Rune >= 0 && unicode.IsGraphic(k.Rune) {
			b.InsertAtDot(string(k.Rune))
		} else {
			logger.Println("unbound key", k)
		}
	}
	return noAction
}

func (ed *Editor) redraw() {
	ed.write(render(ed.prompt, ed.buf))
}

func (ed *Editor) write(s string) {
	_, err := ed.out.WriteString(s)
	if err != nil {
		logger.Println("can't write to terminal:", err)
	}
}

// Returns the escape sequence that redraws the current line and places the
// cursor at the dot.
func render(prompt string, b Buffer) string {
	var sb strings.Builder
	sb.WriteString("\r\033[K")
	sb.WriteString(prompt)
	sb.WriteString(b.Content)
	if n := utf8.RuneCountInString(b.Content[b.Dot:]); n > 0 {
		fmt.Fprintf(&sb, "\033[%dD", n)
	}
	return sb.String()
}
