// Package cfg builds the control-flow graph that the fixpoint engine walks:
// nodes are the integer labels appearing in a program, edges carry the
// command executed along them.
package cfg

import (
	"sort"
	"strconv"

	"saav/internal/ast"
	serrors "saav/internal/errors"
)

// Edge is one "L<src> <command> L<dst>" line, already resolved to graph form.
type Edge struct {
	Src, Dst int
	Command  ast.Command
}

// Graph is the control-flow graph of a parsed program.
type Graph struct {
	Nodes []int
	Out   map[int][]Edge
	In    map[int][]Edge
}

// Build constructs a Graph from a parsed program's lines.
func Build(p *ast.Program) *Graph {
	g := &Graph{
		Nodes: p.Labels(),
		Out:   map[int][]Edge{},
		In:    map[int][]Edge{},
	}
	for _, line := range p.Lines {
		e := Edge{Src: line.Src, Dst: line.Dst, Command: line.Command}
		g.Out[line.Src] = append(g.Out[line.Src], e)
		g.In[line.Dst] = append(g.In[line.Dst], e)
	}
	return g
}

// Outgoing returns the edges leaving node n, in program order.
func (g *Graph) Outgoing(n int) []Edge { return g.Out[n] }

// Incoming returns the edges entering node n, in program order.
func (g *Graph) Incoming(n int) []Edge { return g.In[n] }

// Entry returns the unique node with no incoming edges. A program with zero
// lines, or with zero or more than one such node, is a shape error (E02xx) —
// the chaotic-iteration engine needs exactly one place to seed Top/Bottom.
func (g *Graph) Entry() (int, error) {
	if len(g.Nodes) == 0 {
		return 0, serrors.CompilerError{
			Level:   serrors.Error,
			Code:    serrors.ErrorEmptyProgram,
			Message: "program has no lines",
		}
	}

	var candidates []int
	for _, n := range g.Nodes {
		if len(g.In[n]) == 0 {
			candidates = append(candidates, n)
		}
	}
	sort.Ints(candidates)

	switch len(candidates) {
	case 0:
		return 0, serrors.CompilerError{
			Level:   serrors.Error,
			Code:    serrors.ErrorNoEntry,
			Message: "every label has an incoming edge; no entry node",
		}
	case 1:
		return candidates[0], nil
	default:
		return 0, serrors.CompilerError{
			Level:   serrors.Error,
			Code:    serrors.ErrorAmbiguousEntry,
			Message: "more than one node has no incoming edges",
			Notes:   []string{renderCandidates(candidates)},
		}
	}
}

func renderCandidates(candidates []int) string {
	out := "candidates:"
	for _, c := range candidates {
		out += " L" + strconv.Itoa(c)
	}
	return out
}
