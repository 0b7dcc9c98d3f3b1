// Package repl is an interactive, line-oriented loop that applies one
// command at a time to a live abstract state and prints the result —
// supplemented from the example() functions in
// _examples/original_source/abstract_state_parity.py and
// analysis_relationsl_product.py, which apply a fixed command list to
// current_state one command at a time. spec.md's distillation dropped this
// interactive mode; SPEC_FULL.md §4.11 restores it.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"saav/internal/ast"
	"saav/internal/cfg"
	"saav/internal/domain/combined"
	"saav/internal/domain/linear"
	"saav/internal/domain/parity"
	"saav/internal/parser"
)

// Session holds the live state of one REPL run for a fixed variable list and
// domain kind.
type Session struct {
	variables []string
	universe  linear.Universe
	kind      string // "parity" | "le" | "cartesian" | "relational"

	parityState     parity.Set
	parityDomain    parity.Domain
	linearState     linear.Element
	linearDomain    linear.Domain
	cartesianState  combined.CartesianElement
	cartesianDomain combined.CartesianDomain
	relState        combined.RelationalElement
	relDomain       combined.RelationalDomain
}

// New builds a Session starting from the chosen domain's Top() (spec.md's
// example() starts from "parity_analyzer...top()").
func New(variables []string, u linear.Universe, kind string) *Session {
	s := &Session{variables: variables, universe: u, kind: kind}
	switch kind {
	case "le":
		s.linearDomain = linear.New(u)
		s.linearState = s.linearDomain.Top()
	case "cartesian":
		s.cartesianDomain = combined.NewCartesian(variables, u)
		s.cartesianState = s.cartesianDomain.Top()
	case "relational":
		s.relDomain = combined.NewRelational(variables, u)
		s.relState = s.relDomain.Top()
	default:
		s.parityDomain = parity.New(variables)
		s.parityState = s.parityDomain.Top()
	}
	return s
}

// Render returns the session's current abstract state as text.
func (s *Session) Render() string {
	switch s.kind {
	case "le":
		return s.linearDomain.Render(s.linearState)
	case "cartesian":
		return s.cartesianDomain.Render(s.cartesianState)
	case "relational":
		return s.relDomain.Render(s.relState)
	default:
		return parity.RenderSet(s.parityState)
	}
}

// Apply parses one command-text line (reusing the same command grammar as a
// single-line "L0 <text> L1" program body) and transforms the live state.
func (s *Session) Apply(commandText string) error {
	cmd, err := parseOneCommand(s.variables, commandText)
	if err != nil {
		return err
	}
	switch s.kind {
	case "le":
		s.linearState = s.linearDomain.Transform(s.linearState, cmd)
	case "cartesian":
		s.cartesianState = s.cartesianDomain.Transform(s.cartesianState, cmd)
	case "relational":
		s.relState = s.relDomain.Transform(s.relState, cmd)
	default:
		s.parityState = s.parityDomain.Transform(s.parityState, cmd)
	}
	return nil
}

// parseOneCommand wraps a bare command-text line in a throwaway one-edge
// program so it can be parsed with the same grammar as a program file.
func parseOneCommand(variables []string, text string) (ast.Command, error) {
	source := strings.Join(variables, " ") + "\nL0 " + strings.TrimSpace(text) + " L1\n"
	p, err := parser.Parse("<repl>", source)
	if err != nil {
		return nil, err
	}
	g := cfg.Build(p)
	edges := g.Outgoing(0)
	if len(edges) == 0 {
		return nil, fmt.Errorf("no command parsed from %q", text)
	}
	return edges[0].Command, nil
}

// Run drives the read-eval-print loop against r, writing prompts and results
// to w, until EOF or a "quit" line.
func Run(s *Session, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	fmt.Fprintf(w, "state: %s\n", s.Render())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := s.Apply(line); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "> %s\nstate: %s\n", line, s.Render())
	}
	return scanner.Err()
}
