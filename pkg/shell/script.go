package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ecalc/ecalc/pkg/diag"
	"github.com/ecalc/ecalc/pkg/parse"
	"github.com/ecalc/ecalc/pkg/scan"
)

// Configuration for the script mode.
type scriptCfg struct {
	lineCfg
	Cmd  bool
	JSON bool
}

// Evaluates a script, or code passed with -c. Each non-blank line is an
// independent expression; failing lines are reported and skipped. It returns
// 2 if any line failed.
func script(fds [3]*os.File, arg0 string, cfg *scriptCfg) int {
	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg0
	} else {
		var err error
		name, err = filepath.Abs(arg0)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg0, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}

	lines := strings.SplitAfter(code, "\n")
	multiline := len(lines) > 1 && !(len(lines) == 2 && lines[1] == "")

	var errs []*lineError
	lineStart := 0
	for i, rawLine := range lines {
		start := lineStart
		lineStart += len(rawLine)
		line := strings.TrimSuffix(strings.TrimSuffix(rawLine, "\n"), "\r")
		if isExit(line) {
			break
		}
		if isBlank(line) {
			continue
		}
		srcName := name
		if multiline {
			srcName = fmt.Sprintf("%s, line %d", name, i+1)
		}
		src, shift := lineSource(srcName, line)
		err := evalLine(fds, src, &cfg.lineCfg)
		if err == nil {
			continue
		}
		if !cfg.JSON || !cfg.compileOnly {
			diag.ShowError(fds[2], err)
		}
		errs = append(errs, &lineError{name, start, shift, len(line), err})
	}

	if cfg.compileOnly && cfg.JSON {
		fmt.Fprintf(fds[1], "%s\n", errorsToJSON(errs))
	}
	if len(errs) > 0 {
		return 2
	}
	return 0
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// An error from one line of a script, along with what is needed to map its
// position back to the script.
type lineError struct {
	fileName string
	// Offset of the line within the script.
	lineStart int
	// Number of bytes prepended to the line when balancing parentheses.
	shift   int
	lineLen int
	err     error
}

// Returns the message and the range of the error within the script.
func (e *lineError) unpack() (string, diag.Ranging) {
	var msg string
	var r diag.Ranging
	if scanErr := scan.UnpackError(e.err); scanErr != nil {
		msg, r = scanErr.Message, scanErr.Range()
	} else if parseErr := parse.UnpackError(e.err); parseErr != nil {
		msg, r = parseErr.Message, parseErr.Range()
	} else {
		return e.err.Error(), diag.PointRanging(e.lineStart)
	}
	clamp := func(p int) int {
		return e.lineStart + max(0, min(p-e.shift, e.lineLen))
	}
	return msg, diag.Ranging{From: clamp(r.From), To: clamp(r.To)}
}

// An auxiliary struct for converting errors with diagnostics information to JSON.
type errorInJSON struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Converts scan and parse errors into JSON.
func errorsToJSON(errs []*lineError) []byte {
	converted := []errorInJSON{}
	for _, e := range errs {
		msg, r := e.unpack()
		converted = append(converted, errorInJSON{e.fileName, r.From, r.To, msg})
	}

	jsonError, errMarshal := json.Marshal(converted)
	if errMarshal != nil {
		return []byte(`[{"message":"Unable to convert the errors to JSON"}]`)
	}
	return jsonError
}
