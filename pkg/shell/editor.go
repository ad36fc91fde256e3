package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ecalc/ecalc/pkg/strutil"
)

// This type is the interface that the line editor has to satisfy. It is needed
// so that the basic editor can stand in for the edit package.
type editor interface {
	ReadCode() (string, error)
}

// The basic editor. It relies on the terminal's own line buffering.
type minEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newMinEditor(in *os.File, out io.Writer, prompt string) *minEditor {
	return &minEditor{bufio.NewReader(in), out, prompt}
}

func (ed *minEditor) ReadCode() (string, error) {
	if ed.prompt != "" {
		fmt.Fprint(ed.out, ed.prompt)
	}
	line, err := ed.in.ReadString('\n')
	return strutil.ChopLineEnding(line), err
}
