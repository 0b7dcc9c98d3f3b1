package lsp

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"saav/internal/analyzer"
)

func TestURIToPathRoundTrips(t *testing.T) {
	path, err := uriToPath("file:///tmp/prog.mm")
	assert.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, "/tmp/prog.mm", path)
	}
}

func TestURIToPathRejectsInvalidURI(t *testing.T) {
	_, err := uriToPath("file://%zz")
	assert.Error(t, err)
}

func TestDiagnosticsForReportsParseError(t *testing.T) {
	h := NewHandler(Config{Domain: analyzer.Parity})
	diags := h.diagnosticsFor("<test>", "x\nM0 skip L1\n")
	assert.Len(t, diags, 1)
}

func TestDiagnosticsForReportsAssertFailure(t *testing.T) {
	h := NewHandler(Config{
		CoefficientRange: [2]int{-1, 1},
		IntegerRange:     [2]int{-2, 2},
		Domain:           analyzer.Parity,
	})
	source := "x\nL0 x := 0 L1\nL1 assert ( ODD x ) L2\n"
	diags := h.diagnosticsFor("<test>", source)
	assert.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "assertion may fail")
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
}

func TestDiagnosticsForNoteLevelOnPassingAssert(t *testing.T) {
	h := NewHandler(Config{Domain: analyzer.Parity})
	source := "x\nL0 x := 0 L1\nL1 assert ( EVEN x ) L2\n"
	diags := h.diagnosticsFor("<test>", source)
	assert.Len(t, diags, 1)
	assert.Equal(t, protocol.DiagnosticSeverityInformation, *diags[0].Severity)
}

func TestWholeDocumentTextAcceptsWholeShape(t *testing.T) {
	text, ok := wholeDocumentText(protocol.TextDocumentContentChangeEventWhole{Text: "x\nL0 skip L1\n"})
	assert.True(t, ok)
	assert.Equal(t, "x\nL0 skip L1\n", text)
}

func TestWholeDocumentTextAcceptsIncrementalShapeWithoutRange(t *testing.T) {
	text, ok := wholeDocumentText(protocol.TextDocumentContentChangeEvent{Text: "x\nL0 skip L1\n"})
	assert.True(t, ok)
	assert.Equal(t, "x\nL0 skip L1\n", text)
}

func TestWholeDocumentTextRejectsUnknownShape(t *testing.T) {
	_, ok := wholeDocumentText("not a content change")
	assert.False(t, ok)
}
