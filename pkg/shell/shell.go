// Package shell is the entry point for the terminal interface of ecalc.
package shell

import (
	"fmt"
	"os"

	"github.com/ecalc/ecalc/pkg/logutil"
	"github.com/ecalc/ecalc/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It always runs, so it should be the last
// subprogram in a composite.
type Program struct {
	codeInArg   bool
	compileOnly bool
	printAST    bool
	rc          string
	noRC        bool
	json        *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.codeInArg, "c", false,
		"take the first argument as code to evaluate")
	fs.BoolVar(&p.compileOnly, "compileonly", false,
		"scan and parse the code but do not evaluate it")
	fs.BoolVar(&p.printAST, "ast", false,
		"print the expression tree instead of evaluating")
	fs.StringVar(&p.rc, "rc", "", "path to rc.yaml")
	fs.BoolVar(&p.noRC, "norc", false, "don't read rc.yaml")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if p.codeInArg && len(args) == 0 {
		return prog.BadUsage("-c requires an argument")
	}
	if len(args) > 1 {
		return prog.BadUsage("too many arguments")
	}

	cfg := p.config(fds)
	lc := lineCfg{
		compileOnly: p.compileOnly, printAST: p.printAST,
		precision: cfg.Precision}

	if len(args) > 0 {
		exit := script(fds, args[0], &scriptCfg{
			lineCfg: lc, Cmd: p.codeInArg, JSON: *p.json})
		return prog.Exit(exit)
	}
	return prog.Exit(interact(fds, &interactCfg{
		lineCfg: lc, Prompt: cfg.Prompt, BasicEditor: cfg.BasicEditor}))
}

// Returns the configuration from the rc file, or the default one if there is
// no rc file or it cannot be loaded.
func (p *Program) config(fds [3]*os.File) *Config {
	if p.noRC {
		return DefaultConfig()
	}
	path, explicit := p.rc, true
	if path == "" {
		var err error
		path, err = RCPath()
		if err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
			return DefaultConfig()
		}
		explicit = false
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			logger.Println("no rc file at", path)
		} else {
			fmt.Fprintln(fds[2], "Warning:", err)
		}
		return DefaultConfig()
	}
	logger.Printf("loaded %s: %+v", path, *cfg)
	return cfg
}
