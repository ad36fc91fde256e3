package pprof_test

import (
	"os"
	"testing"

	"github.com/ecalc/ecalc/pkg/pprof"
	"github.com/ecalc/ecalc/pkg/prog"
	"github.com/ecalc/ecalc/pkg/prog/progtest"
	"github.com/ecalc/ecalc/pkg/testutil"
)

var (
	Test      = progtest.Test
	ThatECalc = progtest.ThatECalc
)

func TestProgram(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, prog.Composite(&pprof.Program{}, noopProgram{}),
		ThatECalc("-cpuprofile", "cpuprof").DoesNothing(),
		ThatECalc("-cpuprofile", "/a/bad/path").
			WritesStderrContaining("Warning: cannot create CPU profile:"),
		ThatECalc("-allocsprofile", "allocsprof").DoesNothing(),
		ThatECalc("-allocsprofile", "/a/bad/path").
			WritesStderrContaining("Continuing without memory allocation profile."),
	)

	// There isn't much to test beyond a sanity check that the profile files
	// now exist.
	for _, name := range []string{"cpuprof", "allocsprof"} {
		_, err := os.Stat(name)
		if err != nil {
			t.Errorf("profile file %s does not exist: %v", name, err)
		}
	}
}

type noopProgram struct{}

func (noopProgram) RegisterFlags(*prog.FlagSet)     {}
func (noopProgram) Run([3]*os.File, []string) error { return nil }
