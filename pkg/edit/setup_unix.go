//go:build linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd

package edit

import (
	"os"

	"github.com/ecalc/ecalc/pkg/sys/eunix"
)

func setupTerminal(in *os.File) (func() error, error) {
	return eunix.SetupRaw(int(in.Fd()))
}
