package fixpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saav/internal/ast"
	"saav/internal/cfg"
	"saav/internal/domain/parity"
	"saav/internal/fixpoint"
)

func line(src int, cmd ast.Command, dst int) ast.ProgramLine {
	return ast.ProgramLine{Src: src, Dst: dst, Command: cmd}
}

// loopProgram models "x := 0; while (?) { x := x + 1 }" as a two-node CFG
// with a self-loop on L1, the shape that forces the fixpoint engine to actually
// iterate instead of converging in one pass.
func loopProgram() *ast.Program {
	pos := ast.Position{}
	return &ast.Program{
		Variables: []string{"x"},
		Lines: []ast.ProgramLine{
			line(0, ast.NewAssignConst(pos, "x", 0), 1),
			line(1, ast.NewPlus1(pos, "x", "x"), 1),
		},
	}
}

func TestVanillaAndChaoticAgreeOnLoopFixpoint(t *testing.T) {
	p := loopProgram()
	g := cfg.Build(p)
	entry, err := g.Entry()
	assert.NoError(t, err)

	dom := parity.New(p.Variables)

	vanilla := fixpoint.Run[parity.Set](g, dom, entry, fixpoint.Vanilla)
	chaotic := fixpoint.Run[parity.Set](g, dom, entry, fixpoint.Chaotic)

	assert.Equal(t, len(vanilla), len(chaotic))
	for n := range vanilla {
		assert.True(t, dom.Equal(vanilla[n], chaotic[n]), "node %d disagrees between strategies", n)
	}

	// At the loop head, x's parity alternates every iteration, so the
	// converged state must include both Even and Odd (the fixpoint of
	// repeatedly flipping from a singleton is the full 2-element set).
	assert.Equal(t, 2, vanilla[1].Len())
}

func TestEntryNodeSeedsTop(t *testing.T) {
	p := &ast.Program{
		Variables: []string{"x"},
		Lines:     []ast.ProgramLine{line(0, ast.NewSkip(ast.Position{}), 1)},
	}
	g := cfg.Build(p)
	entry, err := g.Entry()
	assert.NoError(t, err)

	dom := parity.New(p.Variables)
	states := fixpoint.Run[parity.Set](g, dom, entry, fixpoint.Vanilla)
	assert.True(t, dom.Equal(states[entry], dom.Top()))
}
