//go:build !(linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd)

package edit

import (
	"errors"
	"os"
)

var errUnsupported = errors.New("raw terminal mode is not supported on this platform")

func setupTerminal(*os.File) (func() error, error) {
	return nil, errUnsupported
}
