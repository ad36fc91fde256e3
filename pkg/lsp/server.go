package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/ecalc/ecalc/pkg/diag"
	"github.com/ecalc/ecalc/pkg/eval"
	"github.com/ecalc/ecalc/pkg/parse"
	"github.com/ecalc/ecalc/pkg/parse/parseutil"
	"github.com/ecalc/ecalc/pkg/scan"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	content map[lsp.DocumentURI]string
}

func newServer() *server {
	return &server{make(map[lsp.DocumentURI]string)}
}

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize":              s.initialize,
		"textDocument/didOpen":    s.didOpen,
		"textDocument/didChange":  s.didChange,
		"textDocument/didClose":   s.didClose,
		"textDocument/hover":      s.hover,
		"textDocument/completion": s.completion,

		// Required by the protocol.
		"initialized": noop,
		"shutdown":    noop,
		"exit":        noop,
		// Called by clients even when server doesn't advertise support:
		// https://microsoft.github.io/language-server-protocol/specification#workspace_didChangeWatchedFiles
		"workspace/didChangeWatchedFiles": noop,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func noop(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, nil
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			logger.Println("unsupported method", req.Method)
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

// Handler implementations. These are all called synchronously.

func (s *server) initialize(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			HoverProvider:      true,
			CompletionProvider: &lsp.CompletionOptions{},
		},
	}, nil
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.content[uri] = content
	go publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil || len(params.ContentChanges) == 0 {
		return nil, errInvalidParams
	}

	// ContentChanges includes full text since the server is only advertised to
	// support that; see the initialize method.
	uri, content := params.TextDocument.URI, params.ContentChanges[0].Text
	s.content[uri] = content
	go publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didClose(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidCloseTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	delete(s.content, params.TextDocument.URI)
	return nil, nil
}

func (s *server) hover(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.TextDocumentPositionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	uri := params.TextDocument.URI
	content := s.content[uri]
	idx := lspPositionToIdx(content, params.Position)
	for _, l := range splitLines(content) {
		if idx < l.start || idx > l.start+len(l.code) {
			continue
		}
		n, shift, err := l.parse(uri)
		if err != nil {
			break
		}
		inner := parse.Innermost(n, idx-l.start+shift)
		if inner == nil {
			break
		}
		v := eval.Eval(inner)
		r := l.mapRange(inner.Range(), shift)
		lspRange := lspRangeFromRange(content, r)
		return &lsp.Hover{
			Contents: []lsp.MarkedString{{
				Language: "ecalc",
				Value:    fmt.Sprintf("%s = %s", inner, formatValue(v)),
			}},
			Range: &lspRange,
		}, nil
	}
	return lsp.Hover{}, nil
}

func (s *server) completion(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.CompletionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	content := s.content[params.TextDocument.URI]
	dot := lspPositionToIdx(content, params.Position)
	// The seed is the run of letters before the dot.
	from := dot
	for from > 0 {
		r, size := utf8.DecodeLastRuneInString(content[:from])
		if !unicode.IsLetter(r) {
			break
		}
		from -= size
	}
	seed := strings.ToLower(content[from:dot])
	lspRange := lspRangeFromRange(content, diag.Ranging{From: from, To: dot})

	keywords := scan.Keywords()
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		if strings.HasPrefix(name, seed) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	items := make([]lsp.CompletionItem, len(names))
	for i, name := range names {
		kind := lsp.CIKConstant
		if keywords[name].IsFunction() {
			kind = lsp.CIKFunction
		}
		items[i] = lsp.CompletionItem{
			Label: name,
			Kind:  kind,
			TextEdit: &lsp.TextEdit{
				Range:   lspRange,
				NewText: name,
			},
		}
	}
	return items, nil
}

func publishDiagnostics(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	err := conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: diagnostics(uri, content)})
	if err != nil {
		logger.Println("publishing diagnostics:", err)
	}
}

func diagnostics(uri lsp.DocumentURI, content string) []lsp.Diagnostic {
	diags := []lsp.Diagnostic{}
	for _, l := range splitLines(content) {
		_, shift, err := l.parse(uri)
		if err == nil {
			continue
		}
		var source, msg string
		var r diag.Ranging
		if e := scan.UnpackError(err); e != nil {
			source, msg, r = "scan", e.Message, e.Range()
		} else if e := parse.UnpackError(err); e != nil {
			source, msg, r = "parse", e.Message, e.Range()
		} else {
			continue
		}
		diags = append(diags, lsp.Diagnostic{
			Range:    lspRangeFromRange(content, l.mapRange(r, shift)),
			Severity: lsp.Error,
			Source:   source,
			Message:  msg,
		})
	}
	return diags
}

// Formats a value for hover. The shell's formatting depends on user
// configuration, so this uses the shortest exact representation instead.
func formatValue(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// A line of a document that holds an expression.
type line struct {
	// Byte offset of the line within the document.
	start int
	code  string
}

// Returns the lines of content that hold expressions, skipping blank lines
// and "exit".
func splitLines(content string) []line {
	var lines []line
	start := 0
	for _, raw := range strings.SplitAfter(content, "\n") {
		code := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		if trimmed := strings.TrimSpace(code); trimmed != "" && trimmed != "exit" {
			lines = append(lines, line{start, code})
		}
		start += len(raw)
	}
	return lines
}

// Balances and parses the line. It also returns the number of bytes prepended
// when balancing.
func (l line) parse(uri lsp.DocumentURI) (parse.Node, int, error) {
	code, shift := parseutil.Balance(l.code)
	n, err := parse.ParseCode(scan.Source{Name: string(uri), Code: code})
	return n, shift, err
}

// Maps a range within the balanced line to a range within the document.
func (l line) mapRange(r diag.Ranging, shift int) diag.Ranging {
	clamp := func(p int) int {
		return l.start + max(0, min(p-shift, len(l.code)))
	}
	return diag.Ranging{From: clamp(r.From), To: clamp(r.To)}
}

func lspRangeFromRange(s string, r diag.Ranger) lsp.Range {
	rg := r.Range()
	return lsp.Range{
		Start: lspPositionFromIdx(s, rg.From),
		End:   lspPositionFromIdx(s, rg.To),
	}
}

func lspPositionToIdx(s string, pos lsp.Position) int {
	var idx int
	walkString(s, func(i int, p lsp.Position) bool {
		idx = i
		return p.Line < pos.Line || (p.Line == pos.Line && p.Character < pos.Character)
	})
	return idx
}

func lspPositionFromIdx(s string, idx int) lsp.Position {
	var pos lsp.Position
	walkString(s, func(i int, p lsp.Position) bool {
		pos = p
		return i < idx
	})
	return pos
}

// Generates (index, lspPosition) pairs in s, stopping if f returns false.
func walkString(s string, f func(i int, p lsp.Position) bool) {
	var p lsp.Position
	lastCR := false

	for i, r := range s {
		if !f(i, p) {
			return
		}
		switch {
		case r == '\r':
			p.Line++
			p.Character = 0
		case r == '\n':
			if lastCR {
				// Ignore \n if it's part of a \r\n sequence
			} else {
				p.Line++
				p.Character = 0
			}
		case r <= 0xFFFF:
			// Encoded in UTF-16 with one unit
			p.Character++
		default:
			// Encoded in UTF-16 with two units
			p.Character += 2
		}
		lastCR = r == '\r'
	}
	f(len(s), p)
}
