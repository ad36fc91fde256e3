package shell

import (
	"fmt"
	"os"
	"strings"

	"github.com/ecalc/ecalc/pkg/eval"
	"github.com/ecalc/ecalc/pkg/parse"
	"github.com/ecalc/ecalc/pkg/parse/parseutil"
	"github.com/ecalc/ecalc/pkg/scan"
)

// Configuration for handling one line of code, shared by all modes.
type lineCfg struct {
	compileOnly bool
	printAST    bool
	precision   int
}

// Balances the parentheses in a line of code and builds a Source from it. It
// also returns the number of bytes prepended to the code.
func lineSource(name, line string) (scan.Source, int) {
	code, shift := parseutil.Balance(line)
	return scan.Source{Name: name, Code: code}, shift
}

// Handles one line of code according to cfg, writing any result to fds[1].
// The returned error is either a scan or a parse error.
func evalLine(fds [3]*os.File, src scan.Source, cfg *lineCfg) error {
	switch {
	case cfg.compileOnly:
		_, err := parse.ParseCode(src)
		return err
	case cfg.printAST:
		n, err := parse.ParseCode(src)
		if err != nil {
			return err
		}
		fmt.Fprintln(fds[1], n)
		parse.Pprint(n, fds[1])
		return nil
	default:
		v, err := eval.EvalCode(src)
		if err != nil {
			return err
		}
		fmt.Fprintln(fds[1], Format(v, cfg.precision))
		return nil
	}
}

// Reports whether a line is the command that ends the session.
func isExit(line string) bool {
	return strings.TrimSpace(line) == "exit"
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
