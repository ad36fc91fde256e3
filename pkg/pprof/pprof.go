// Package pprof adds profiling support to the ecalc program.
package pprof

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/ecalc/ecalc/pkg/logutil"
	"github.com/ecalc/ecalc/pkg/prog"
)

var logger = logutil.GetLogger("[pprof] ")

// Program adds support for the -cpuprofile and -allocsprofile flags.
type Program struct {
	cpuProfile    string
	allocsProfile string
}

func (p *Program) RegisterFlags(f *prog.FlagSet) {
	f.StringVar(&p.cpuProfile, "cpuprofile", "", "write CPU profile to file")
	f.StringVar(&p.allocsProfile, "allocsprofile", "", "write memory allocation profile to file")
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	var cleanups []func([3]*os.File)
	if f := create(fds, p.cpuProfile, "CPU profile"); f != nil {
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot start CPU profiling:", err)
			f.Close()
		} else {
			cleanups = append(cleanups, func([3]*os.File) {
				pprof.StopCPUProfile()
				f.Close()
				logger.Println("wrote CPU profile to", f.Name())
			})
		}
	}
	if f := create(fds, p.allocsProfile, "memory allocation profile"); f != nil {
		cleanups = append(cleanups, func([3]*os.File) {
			pprof.Lookup("allocs").WriteTo(f, 0)
			f.Close()
			logger.Println("wrote memory allocation profile to", f.Name())
		})
	}
	return prog.NextProgram(cleanups...)
}

// Returns nil if name is empty or the file cannot be created; a warning is
// written in the latter case.
func create(fds [3]*os.File, name, what string) *os.File {
	if name == "" {
		return nil
	}
	f, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(fds[2], "Warning: cannot create %s: %v\n", what, err)
		fmt.Fprintf(fds[2], "Continuing without %s.\n", what)
		return nil
	}
	return f
}
