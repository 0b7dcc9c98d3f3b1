// Package report discharges Assert commands against a converged fixpoint
// state and renders pass/fail diagnostics with witnesses (spec.md §4.6).
package report

import (
	"fmt"

	"saav/internal/ast"
	"saav/internal/cfg"
	serrors "saav/internal/errors"
)

// Site is one Assert command found on a CFG edge, together with the node
// whose converged state it is discharged against (the edge's source — an
// assert never changes state, so it is evaluated against the state flowing
// into it).
type Site struct {
	Node     int
	Position ast.Position
	ORC      ast.OrCondition
}

// CollectSites walks every edge of g and returns one Site per Assert command.
func CollectSites(g *cfg.Graph) []Site {
	var sites []Site
	for _, n := range g.Nodes {
		for _, e := range g.Outgoing(n) {
			if a, ok := e.Command.(ast.Assert); ok {
				sites = append(sites, Site{Node: e.Src, Position: a.Pos(), ORC: a.ORC})
			}
		}
	}
	return sites
}

// Evaluator lets Discharge stay generic over which domain produced the
// converged states: Holds answers whether the abstract element satisfies an
// OrCondition, Counterexamples renders one witness string per element of the
// state that refutes it.
type Evaluator[S any] interface {
	Holds(orc ast.OrCondition, s S) bool
	Counterexamples(orc ast.OrCondition, s S) []string
}

// Finding is the outcome of discharging one Site.
type Finding struct {
	Site      Site
	Pass      bool
	Witnesses []string
}

// Discharge evaluates every site's OrCondition against its node's converged
// state and returns one Finding per site, in the order of sites.
func Discharge[S any](sites []Site, states map[int]S, ev Evaluator[S]) []Finding {
	findings := make([]Finding, 0, len(sites))
	for _, site := range sites {
		state := states[site.Node]
		if ev.Holds(site.ORC, state) {
			findings = append(findings, Finding{Site: site, Pass: true})
			continue
		}
		findings = append(findings, Finding{
			Site:      site,
			Pass:      false,
			Witnesses: ev.Counterexamples(site.ORC, state),
		})
	}
	return findings
}

// Diagnostic renders a Finding as a CompilerError: a Note on success, an
// Error with one witness per Note line on failure. Assertion failures never
// carry an error code — spec.md §7 treats them as a non-fatal diagnostic
// class distinct from parse/shape errors.
func (f Finding) Diagnostic() serrors.CompilerError {
	if f.Pass {
		return serrors.CompilerError{
			Level:    serrors.Note,
			Message:  fmt.Sprintf("assertion holds: %s", f.Site.ORC),
			Position: f.Site.Position,
		}
	}
	return serrors.CompilerError{
		Level:    serrors.Error,
		Message:  fmt.Sprintf("assertion may fail: %s", f.Site.ORC),
		Position: f.Site.Position,
		Notes:    witnessNotes(f.Witnesses),
	}
}

func witnessNotes(witnesses []string) []string {
	notes := make([]string, len(witnesses))
	for i, w := range witnesses {
		notes[i] = "witness: " + w
	}
	return notes
}
