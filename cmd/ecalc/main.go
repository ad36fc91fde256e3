// Ecalc is an interactive calculator. It evaluates arithmetic expressions with
// the usual operators, parentheses, the functions sin, cos, tan, sqrt and exp,
// and the constants pi and e, all in single-precision floating point.
package main

import (
	"os"

	"github.com/ecalc/ecalc/pkg/buildinfo"
	"github.com/ecalc/ecalc/pkg/lsp"
	"github.com/ecalc/ecalc/pkg/pprof"
	"github.com/ecalc/ecalc/pkg/prog"
	"github.com/ecalc/ecalc/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&buildinfo.Program{}, &pprof.Program{}, &lsp.Program{},
			&shell.Program{})))
}
