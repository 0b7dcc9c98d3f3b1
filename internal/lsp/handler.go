// Package lsp adapts the teacher's glsp/commonlog-based language server
// (internal/lsp in the Kanso compiler) to this analyzer: instead of
// semantic/type diagnostics it republishes assertion pass/fail diagnostics
// on textDocument/didOpen and didChange (SPEC_FULL.md §4.11).
package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"saav/internal/analyzer"
	serrors "saav/internal/errors"
	"saav/internal/parser"
)

// Config holds the fixed analysis options the handler uses for every
// document it opens — spec.md §6's options, same as internal/analyzer.Config
// minus Variables (read from each program's own declaration line).
type Config struct {
	CoefficientRange [2]int
	IntegerRange     [2]int
	Strategy         analyzer.Strategy
	Domain           analyzer.DomainKind
}

// Handler implements the LSP methods this server supports. A mutex guards
// open-document state because concurrent didChange/didOpen notifications are
// an LSP protocol reality, not a core analyzer concern (spec.md §5 keeps the
// core itself single-threaded).
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
	cfg     Config
}

func NewHandler(cfg Config) *Handler {
	return &Handler{content: make(map[string]string), cfg: cfg}
}

func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error { return nil }

func (h *Handler) Shutdown(ctx *glsp.Context) error { return nil }

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error { return nil }

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return h.analyzeAndPublish(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange analyzes the buffer the editor just sent, not the
// file on disk: the server advertises TextDocumentSyncKindFull, so the
// client's last content-change event already carries the whole new text.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	text, ok := wholeDocumentText(params.ContentChanges[len(params.ContentChanges)-1])
	if !ok {
		return fmt.Errorf("unsupported content change event for %s", params.TextDocument.URI)
	}
	return h.analyzeAndPublish(ctx, params.TextDocument.URI, text)
}

// wholeDocumentText extracts the full document text from one element of
// DidChangeTextDocumentParams.ContentChanges, accepting either the
// whole-document shape (no range) or the incremental shape with an empty
// range, both of which glsp may produce for a Full-sync client.
func wholeDocumentText(change interface{}) (string, bool) {
	switch c := change.(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		return c.Text, true
	case protocol.TextDocumentContentChangeEvent:
		return c.Text, true
	default:
		return "", false
	}
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("invalid uri %s: %w", params.TextDocument.URI, err)
	}
	h.mu.Lock()
	delete(h.content, path)
	h.mu.Unlock()
	return nil
}

func (h *Handler) analyzeAndPublish(ctx *glsp.Context, uri protocol.DocumentUri, source string) error {
	path, err := uriToPath(uri)
	if err != nil {
		return fmt.Errorf("invalid uri %s: %w", uri, err)
	}

	h.mu.Lock()
	h.content[path] = source
	h.mu.Unlock()

	diagnostics := h.diagnosticsFor(path, source)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
	return nil
}

func (h *Handler) diagnosticsFor(path, source string) []protocol.Diagnostic {
	program, err := parser.Parse(path, source)
	if err != nil {
		return []protocol.Diagnostic{diagnosticFromError(err)}
	}

	cfg := analyzer.Config{
		Variables:        program.Variables,
		CoefficientRange: h.cfg.CoefficientRange,
		IntegerRange:     h.cfg.IntegerRange,
		Strategy:         h.cfg.Strategy,
		Domain:           h.cfg.Domain,
	}

	result, err := analyzer.Run(program, cfg)
	if err != nil {
		return []protocol.Diagnostic{diagnosticFromError(err)}
	}

	diagnostics := make([]protocol.Diagnostic, 0, len(result.Findings))
	for _, f := range result.Findings {
		diagnostics = append(diagnostics, diagnosticFromFinding(f))
	}
	return diagnostics
}

func diagnosticFromError(err error) protocol.Diagnostic {
	ce, ok := err.(serrors.CompilerError)
	if !ok {
		return protocol.Diagnostic{
			Range:    protocol.Range{Start: protocol.Position{}, End: protocol.Position{Character: 1}},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("saav"),
			Message:  err.Error(),
		}
	}
	return compilerErrorToDiagnostic(ce)
}

func diagnosticFromFinding(f diagnosticSource) protocol.Diagnostic {
	return compilerErrorToDiagnostic(f.Diagnostic())
}

// diagnosticSource is the subset of report.Finding this package depends on,
// kept narrow so internal/lsp does not need to import internal/report types
// beyond what it actually renders.
type diagnosticSource interface {
	Diagnostic() serrors.CompilerError
}

func compilerErrorToDiagnostic(ce serrors.CompilerError) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	if ce.Level == serrors.Note {
		severity = protocol.DiagnosticSeverityInformation
	} else if ce.Level == serrors.Warning {
		severity = protocol.DiagnosticSeverityWarning
	}

	line := ce.Position.Line - 1
	if line < 0 {
		line = 0
	}
	col := ce.Position.Column - 1
	if col < 0 {
		col = 0
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
		},
		Severity: ptrSeverity(severity),
		Source:   ptrString("saav"),
		Message:  ce.Message,
	}
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool { return &b }

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }

func ptrString(s string) *string { return &s }
