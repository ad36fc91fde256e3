package shell

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ecalc/ecalc/pkg/diag"
	"github.com/ecalc/ecalc/pkg/edit"
	"github.com/ecalc/ecalc/pkg/sys"
)

// Configuration for the interactive mode.
type interactCfg struct {
	lineCfg
	Prompt      string
	BasicEditor bool
}

// Runs an interactive session, reading lines from fds[0] until end of input
// or the "exit" command. Results are written to fds[1]; prompts and errors are
// written to fds[2].
//
// It returns 0 when input is interactive; otherwise it returns 2 if any line
// failed, like the script mode.
func interact(fds [3]*os.File, cfg *interactCfg) int {
	interactive := sys.IsATTY(fds[0].Fd())

	var ed editor
	if interactive && !cfg.BasicEditor && sys.IsATTY(fds[2].Fd()) {
		ed = edit.NewEditor(fds[0], fds[2], cfg.Prompt)
	} else {
		prompt := ""
		if interactive {
			prompt = cfg.Prompt
		}
		ed = newMinEditor(fds[0], fds[2], prompt)
	}

	cooldown := time.Second
	cmdNum := 0
	failed := false

	for {
		line, err := ed.ReadCode()

		if err != nil && err != io.EOF {
			fmt.Fprintln(fds[2], "Editor error:", err)
			if _, isMinEditor := ed.(*minEditor); !isMinEditor {
				fmt.Fprintln(fds[2], "Falling back to basic line editor")
				ed = newMinEditor(fds[0], fds[2], cfg.Prompt)
			} else {
				fmt.Fprintln(fds[2], "Restarting editor in", cooldown)
				time.Sleep(cooldown)
				if cooldown < time.Minute {
					cooldown *= 2
				}
			}
			continue
		}
		// No error; reset cooldown.
		cooldown = time.Second

		if isExit(line) {
			break
		}
		if !isBlank(line) {
			cmdNum++
			src, _ := lineSource(fmt.Sprintf("[tty %v]", cmdNum), line)
			if lineErr := evalLine(fds, src, &cfg.lineCfg); lineErr != nil {
				diag.ShowError(fds[2], lineErr)
				failed = true
			}
		}
		if err == io.EOF {
			break
		}
	}

	if failed && !interactive {
		return 2
	}
	return 0
}
