package shell

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/ecalc/ecalc/pkg/env"
	"github.com/ecalc/ecalc/pkg/must"
	. "github.com/ecalc/ecalc/pkg/prog/progtest"
	"github.com/ecalc/ecalc/pkg/testutil"
)

// Points the default rc path into an empty temporary directory, so that tests
// don't pick up the rc file of the user running them. It returns the
// directory.
func setupCleanConfig(t *testing.T) string {
	dir := testutil.TempDir(t)
	testutil.Setenv(t, env.XDG_CONFIG_HOME, dir)
	return dir
}

func TestShell_BadUsage(t *testing.T) {
	setupCleanConfig(t)

	Test(t, &Program{},
		ThatECalc("-c").
			ExitsWith(2).
			WritesStderrContaining("-c requires an argument"),
		ThatECalc("a", "b").
			ExitsWith(2).
			WritesStderrContaining("too many arguments"),
	)
}

func TestInteract(t *testing.T) {
	setupCleanConfig(t)

	Test(t, &Program{},
		ThatECalc().WithStdin("2+3*4\n(2+3)*4\n").WritesStdout("14\n20\n"),
		ThatECalc().WithStdin("2^3^2\nsin 0+1\n-5+3\n3-5\n(-5)\n3--5\n").
			WritesStdout("64\n1\n-2\n-2\n-5\n8\n"),
		ThatECalc().WithStdin("1/0\nsqrt(-1)\n1/4\n3.14\n").
			WritesStdout("Infinity\nNaN\n0.25000000\n3.14000010\n"),
		ThatECalc().WithStdin("pi\ne\n").
			WritesStdout("3.14159274\n2.71828175\n"),

		// Input handling
		ThatECalc().WithStdin("1\n\n  \nexit\n2\n").WritesStdout("1\n"),
		ThatECalc().WithStdin(" exit \n2\n").DoesNothing(),
		ThatECalc().WithStdin("2+3").WritesStdout("5\n"),
		ThatECalc().WithStdin("1+1\r\n").WritesStdout("2\n"),
		ThatECalc().WithStdin("").DoesNothing(),

		// Parentheses are balanced before scanning
		ThatECalc().WithStdin("(2+3\n2+3)*4\n").WritesStdout("5\n20\n"),

		// Errors are reported, and the session goes on
		ThatECalc().WithStdin("foo(1)\n1+1\n").
			ExitsWith(2).
			WritesStdout("2\n").
			WritesStderrContaining(`unknown identifier "foo"`),
		ThatECalc().WithStdin("1\n2+\n").
			ExitsWith(2).
			WritesStdout("1\n").
			WritesStderrContaining("[tty 2]"),
		ThatECalc().WithStdin("1 # 2\n").
			ExitsWith(2).
			WritesStderrContaining("Scan error"),
		ThatECalc().WithStdin("2 % 3\n").
			ExitsWith(2).
			WritesStderrContaining("Parse error"),

		// Check-only modes
		ThatECalc("-compileonly").WithStdin("1+1\n").DoesNothing(),
		ThatECalc("-compileonly").WithStdin("1+\n").
			ExitsWith(2).
			WritesStderrContaining("unexpected end of input"),
		ThatECalc("-ast").WithStdin("-1\n").
			WritesStdout("-1\nNumberLiteral -1 0-2\n"),
	)
}

func TestInteract_RCFile(t *testing.T) {
	dir := setupCleanConfig(t)
	must.WriteFile(filepath.Join(dir, "ecalc", "rc.yaml"), "precision: 2\n")
	testutil.InTempDir(t)
	must.WriteFile("other.yaml", "precision: 4\n")
	must.WriteFile("bad.yaml", "precision: 100\n")

	Test(t, &Program{},
		ThatECalc().WithStdin("1/3\n").WritesStdout("0.33\n"),
		ThatECalc("-norc").WithStdin("1/3\n").WritesStdout("0.33333334\n"),
		ThatECalc("-rc", "other.yaml").WithStdin("1/3\n").WritesStdout("0.3333\n"),

		ThatECalc("-rc", "bad.yaml").WithStdin("1/3\n").
			WritesStdout("0.33333334\n").
			WritesStderrContaining("Warning: bad.yaml: precision must be between 0 and 17"),
		ThatECalc("-rc", "nonexistent.yaml").WithStdin("1/3\n").
			WritesStdout("0.33333334\n").
			WritesStderrContaining("Warning:"),
	)
}

func TestScript(t *testing.T) {
	setupCleanConfig(t)
	dir := testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"calc.txt":         "2+3\n\n1/4\n",
		"errors.txt":       "1\n2+\nfoo\n",
		"exit.txt":         "1\nexit\n2\n",
		"invalid-utf8.txt": "\xff",
	})

	Test(t, &Program{},
		ThatECalc("calc.txt").WritesStdout("5\n0.25000000\n"),
		ThatECalc("exit.txt").WritesStdout("1\n"),
		ThatECalc("errors.txt").
			ExitsWith(2).
			WritesStdout("1\n").
			WritesStderrContaining("errors.txt, line 2"),
		ThatECalc("invalid-utf8.txt").
			ExitsWith(2).
			WritesStderrContaining("cannot read script"),
		ThatECalc("non-existent.txt").
			ExitsWith(2).
			WritesStderrContaining("cannot read script"),

		ThatECalc("-c", "2+3").WritesStdout("5\n"),
		ThatECalc("-c", "1/0").WritesStdout("Infinity\n"),
		ThatECalc("-c", "1\n2").WritesStdout("1\n2\n"),
		ThatECalc("-json", "-c", "2+3").WritesStdout("5\n"),
		ThatECalc("-c", "2+").
			ExitsWith(2).
			WritesStderrContaining("code from -c"),

		// -compileonly
		ThatECalc("-compileonly", "-c", "2+3").DoesNothing(),
		ThatECalc("-compileonly", "-c", "foo").
			ExitsWith(2).
			WritesStderrContaining("Scan error"),
		ThatECalc("-compileonly", "-json", "-c", "2+3").WritesStdout("[]\n"),
		ThatECalc("-compileonly", "-json", "-c", "2+").
			ExitsWith(2).
			WritesStdout(`[{"fileName":"code from -c","start":2,"end":2,"message":"unexpected end of input, should be number, constant, function or '('"}]`+"\n"),
		ThatECalc("-compileonly", "-json", "-c", "foo(1)").
			ExitsWith(2).
			WritesStdout(`[{"fileName":"code from -c","start":0,"end":3,"message":"unknown identifier \"foo\""}]`+"\n"),
		// Positions are mapped back through the balancing of parentheses
		ThatECalc("-compileonly", "-json", "-c", "1+2)*").
			ExitsWith(2).
			WritesStdout(`[{"fileName":"code from -c","start":5,"end":5,"message":"unexpected end of input, should be number, constant, function or '('"}]`+"\n"),
		// Positions are offsets within the script
		ThatECalc("-compileonly", "-json", "errors.txt").
			ExitsWith(2).
			WritesStdout(fmt.Sprintf(
				`[{"fileName":%q,"start":4,"end":4,"message":"unexpected end of input, should be number, constant, function or '('"},`+
					`{"fileName":%q,"start":5,"end":8,"message":"unknown identifier \"foo\""}]`+"\n",
				filepath.Join(dir, "errors.txt"), filepath.Join(dir, "errors.txt"))),

		// -ast
		ThatECalc("-ast", "-c", "2^3").
			WritesStdout("(2 ^ 3)\nBinaryOperation ^ 0-3\n  NumberLiteral 2 0-1\n  NumberLiteral 3 2-3\n"),
		ThatECalc("-ast", "-c", "2^").
			ExitsWith(2).
			WritesStderrContaining("Parse error"),
	)
}
