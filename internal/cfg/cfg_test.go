package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saav/internal/ast"
	"saav/internal/cfg"
	serrors "saav/internal/errors"
)

func line(src int, cmd ast.Command, dst int) ast.ProgramLine {
	return ast.ProgramLine{Src: src, Dst: dst, Command: cmd}
}

func TestBuildIndexesOutgoingAndIncoming(t *testing.T) {
	p := &ast.Program{
		Variables: []string{"x"},
		Lines: []ast.ProgramLine{
			line(0, ast.NewSkip(ast.Position{}), 1),
			line(1, ast.NewSkip(ast.Position{}), 2),
		},
	}
	g := cfg.Build(p)
	assert.Len(t, g.Outgoing(0), 1)
	assert.Len(t, g.Incoming(1), 1)
	assert.Len(t, g.Incoming(0), 0)
}

func TestEntryFindsUniqueNoIncomingNode(t *testing.T) {
	p := &ast.Program{
		Variables: []string{"x"},
		Lines: []ast.ProgramLine{
			line(0, ast.NewSkip(ast.Position{}), 1),
		},
	}
	g := cfg.Build(p)
	entry, err := g.Entry()
	assert.NoError(t, err)
	assert.Equal(t, 0, entry)
}

func TestEntryErrorsOnEmptyProgram(t *testing.T) {
	g := cfg.Build(&ast.Program{Variables: []string{"x"}})
	_, err := g.Entry()
	ce, ok := err.(serrors.CompilerError)
	assert.True(t, ok)
	assert.Equal(t, serrors.ErrorEmptyProgram, ce.Code)
}

func TestEntryErrorsWhenEveryNodeHasIncoming(t *testing.T) {
	p := &ast.Program{
		Variables: []string{"x"},
		Lines: []ast.ProgramLine{
			line(0, ast.NewSkip(ast.Position{}), 1),
			line(1, ast.NewSkip(ast.Position{}), 0),
		},
	}
	g := cfg.Build(p)
	_, err := g.Entry()
	ce, ok := err.(serrors.CompilerError)
	assert.True(t, ok)
	assert.Equal(t, serrors.ErrorNoEntry, ce.Code)
}

func TestEntryErrorsOnMultipleCandidates(t *testing.T) {
	p := &ast.Program{
		Variables: []string{"x"},
		Lines: []ast.ProgramLine{
			line(0, ast.NewSkip(ast.Position{}), 2),
			line(1, ast.NewSkip(ast.Position{}), 2),
		},
	}
	g := cfg.Build(p)
	_, err := g.Entry()
	ce, ok := err.(serrors.CompilerError)
	assert.True(t, ok)
	assert.Equal(t, serrors.ErrorAmbiguousEntry, ce.Code)
	assert.Contains(t, ce.Notes[0], "L0")
	assert.Contains(t, ce.Notes[0], "L1")
}
