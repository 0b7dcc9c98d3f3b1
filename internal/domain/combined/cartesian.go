// Package combined implements the two ways of combining the parity and
// linear-equalities domains: a plain Cartesian product (spec §4.4) and a
// strictly more precise relational product (spec §4.5).
package combined

import (
	"saav/internal/ast"
	"saav/internal/domain/linear"
	"saav/internal/domain/parity"
	"saav/internal/lattice"
)

// CartesianElement is a pair (parity-set, LE-element); every command is
// applied componentwise (spec §4.4).
type CartesianElement = lattice.Pair[parity.Set, linear.Element]

// CartesianDomain wires the two base domains together for a fixed variable
// list and universe.
type CartesianDomain struct {
	Parity parity.Domain
	Linear linear.Domain
}

func NewCartesian(variables []string, universe linear.Universe) CartesianDomain {
	return CartesianDomain{Parity: parity.New(variables), Linear: linear.New(universe)}
}

func (d CartesianDomain) Top() CartesianElement {
	return lattice.NewPair(d.Parity.Top(), d.Linear.Top())
}

func (d CartesianDomain) Bottom() CartesianElement {
	return lattice.NewPair(d.Parity.Bottom(), d.Linear.Bottom())
}

func (d CartesianDomain) Transform(s CartesianElement, cmd ast.Command) CartesianElement {
	return lattice.NewPair(
		d.Parity.Transform(s.First, cmd),
		d.Linear.Transform(s.Second, cmd),
	)
}

// Join and Equal satisfy fixpoint.Analyzer[CartesianElement].
func (d CartesianDomain) Join(a, b CartesianElement) CartesianElement { return a.Join(b) }
func (d CartesianDomain) Equal(a, b CartesianElement) bool            { return a.Equal(b) }

// EvalOrCondition evaluates ORC against a Cartesian element: for every
// parity tuple in the parity component, some disjunct must have all its
// Even/Odd literals hold on that tuple AND all its Sum literals hold on the
// (single, shared) LE component — the Cartesian product's conservatism is
// that one LE witness must cover every tuple (spec §4.4).
func EvalOrCondition(d CartesianDomain, orc ast.OrCondition, s CartesianElement) bool {
	for _, t := range s.First.Elements() {
		if !evalOrOnWitness(d, orc, t, s.Second) {
			return false
		}
	}
	return true
}

func evalOrOnWitness(d CartesianDomain, orc ast.OrCondition, t parity.Tuple, le linear.Element) bool {
	for _, and := range orc.Disjuncts {
		if evalAndOnWitness(d, and, t, le) {
			return true
		}
	}
	return false
}

// FailingTuples returns every parity tuple of s that does not satisfy orc
// against the shared LE witness s.Second, used to render assertion-failure
// witnesses.
func FailingTuples(d CartesianDomain, orc ast.OrCondition, s CartesianElement) []parity.Tuple {
	var out []parity.Tuple
	for _, t := range s.First.Elements() {
		if !evalOrOnWitness(d, orc, t, s.Second) {
			out = append(out, t)
		}
	}
	return out
}

func evalAndOnWitness(d CartesianDomain, and ast.AndCondition, t parity.Tuple, le linear.Element) bool {
	for _, b := range and.Conjuncts {
		switch b.Kind {
		case ast.Even, ast.Odd:
			if !parity.EvalBoolCondition(b, t) {
				return false
			}
		case ast.Sum:
			if !d.Linear.EvalSum(le, b.ISum, b.JSum) {
				return false
			}
		}
	}
	return true
}
