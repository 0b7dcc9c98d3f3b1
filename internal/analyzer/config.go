// Package analyzer wires the parser, CFG builder, abstract domains, fixpoint
// engine and assertion reporter into the single entry point every outer
// surface (CLI, REPL, LSP) calls (spec.md §6, SPEC_FULL.md §4.10).
package analyzer

import "saav/internal/fixpoint"

// DomainKind selects which abstract domain analyzes the program.
type DomainKind int

const (
	Parity DomainKind = iota
	LE
	Cartesian
	Relational
)

// Strategy selects which chaotic-iteration algorithm drives the fixpoint.
type Strategy = fixpoint.Strategy

const (
	Vanilla = fixpoint.Vanilla
	Chaotic = fixpoint.Chaotic
)

// Config holds the recognized analyzer options of spec.md §6.
type Config struct {
	Variables        []string
	CoefficientRange [2]int
	IntegerRange     [2]int
	Strategy         Strategy
	Domain           DomainKind
}
