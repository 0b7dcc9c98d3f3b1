package linear

import (
	"saav/internal/ast"
	"saav/internal/lattice"
)

// Domain is a constructed instance of the LE analysis for a fixed universe.
type Domain struct {
	Universe Universe
}

func New(u Universe) Domain { return Domain{Universe: u} }

// Top is ⊤ = ∅ (no constraints).
func (d Domain) Top() Element { return Element{lattice.NewSet[Equation]()} }

// Bottom is ⊥ = every equation in the universe.
func (d Domain) Bottom() Element {
	return Element{lattice.NewSet(d.Universe.AllEquations()...)}
}

// Join and Equal satisfy fixpoint.Analyzer[Element] alongside Top/Bottom/Transform.
func (d Domain) Join(a, b Element) Element { return a.Join(b) }
func (d Domain) Equal(a, b Element) bool   { return a.Equal(b) }

// Clear drops every equation mentioning v — must run before any assignment
// to v (spec §4.3).
func (d Domain) Clear(s Element, v string) Element {
	idx := d.Universe.Index(v)
	out := lattice.NewSet[Equation]()
	for _, e := range s.Elements() {
		if !e.Mentions(idx) {
			out = out.Add(e)
		}
	}
	return Element{out}
}

// Explicate saturates s with every equation in the universe implied by it
// (spec §4.3). The trivial all-zero-coefficient equation "0 = 0" is left
// out, so Explicate(Top()) is Top() (the empty set). If s is inconsistent
// the canonical result is ⊥ (every equation in the universe). Explicate is
// idempotent: Explicate(Explicate(s)) == Explicate(s).
func (d Domain) Explicate(s Element) Element {
	eqs := s.Elements()
	if !consistent(eqs) {
		return d.Bottom()
	}
	out := lattice.NewSet[Equation]()
	for _, cand := range d.Universe.AllEquations() {
		if isTrivial(cand) {
			continue
		}
		if implied(eqs, cand) {
			out = out.Add(cand)
		}
	}
	return Element{out}
}

func isTrivial(e Equation) bool {
	for _, c := range e.Coefficients {
		if c != 0 {
			return false
		}
	}
	return true
}

// addAndExplicate inserts eq into s (if it keeps s within the universe) and
// re-saturates.
func (d Domain) addAndExplicate(s Element, eq Equation) Element {
	if !d.Universe.InRange(eq) {
		return d.Explicate(s)
	}
	return d.Explicate(Element{s.Add(eq)})
}

// Transform applies a command's abstract transformer to s, per spec §4.3.
// Every branch re-explicates before returning, preserving invariant 5.
func (d Domain) Transform(s Element, cmd ast.Command) Element {
	if s.IsBottom() {
		return d.Bottom()
	}

	switch c := cmd.(type) {
	case ast.Skip:
		return d.Explicate(s)

	case ast.AssignVar:
		if c.I == c.J {
			return d.Explicate(s)
		}
		cleared := d.Clear(s, c.I)
		return d.addAndExplicate(cleared, Single(d.Universe.Variables, c.I, c.J, 0))

	case ast.AssignConst:
		cleared := d.Clear(s, c.I)
		return d.addAndExplicate(cleared, Const(d.Universe.Variables, c.I, c.K))

	case ast.AssignUnknown:
		return d.Explicate(d.Clear(s, c.I))

	case ast.Plus1:
		return d.shiftOrAdd(s, c.I, c.J, 1)

	case ast.Minus1:
		return d.shiftOrAdd(s, c.I, c.J, -1)

	case ast.Assume:
		return d.transformAssume(s, c.E)

	case ast.Assert:
		return d.Explicate(s)

	default:
		panic("linear: unhandled command")
	}
}

// shiftOrAdd implements Plus1/Minus1 (spec §4.3): when i != j it clears i and
// adds "i - j = delta"; when i == j every equation mentioning i has its
// constant shifted by delta (dropping it if that pushes M out of range,
// which is a sound forget).
func (d Domain) shiftOrAdd(s Element, i, j string, delta int) Element {
	if i != j {
		cleared := d.Clear(s, i)
		return d.addAndExplicate(cleared, Single(d.Universe.Variables, i, j, delta))
	}
	idx := d.Universe.Index(i)
	out := lattice.NewSet[Equation]()
	for _, e := range s.Elements() {
		if !e.Mentions(idx) {
			out = out.Add(e)
			continue
		}
		shifted := e.Shifted(delta * e.Coefficients[idx])
		if d.Universe.InRange(shifted) {
			out = out.Add(shifted)
		}
	}
	return d.Explicate(Element{out})
}

func (d Domain) transformAssume(s Element, e ast.ECondition) Element {
	switch e.Kind {
	case ast.EqVar:
		if e.I == e.J {
			return d.Explicate(s)
		}
		return d.addAndExplicate(s, Single(d.Universe.Variables, e.I, e.J, 0))
	case ast.EqConst:
		return d.addAndExplicate(s, Const(d.Universe.Variables, e.I, e.K))
	case ast.DiffVar, ast.DiffConst, ast.ETrue:
		return d.Explicate(s)
	case ast.EFalse:
		return d.Bottom()
	default:
		panic("linear: unhandled econdition")
	}
}

// EvalSum evaluates the Sum(iVec, jVec) predicate on s: it holds iff the
// auxiliary equation sigma = ΣiVec − Σjvec is forced to sigma = 0 by s (spec
// §4.3). Empty vectors sum to 0 (spec §9 Open Question).
func (d Domain) EvalSum(s Element, iVec, jVec []string) bool {
	if s.IsBottom() {
		// An unreachable state vacuously satisfies every predicate.
		return true
	}
	n := len(d.Universe.Variables)
	coeffs := make([]int, n)
	for _, v := range iVec {
		if idx := d.Universe.Index(v); idx >= 0 {
			coeffs[idx]++
		}
	}
	for _, v := range jVec {
		if idx := d.Universe.Index(v); idx >= 0 {
			coeffs[idx]--
		}
	}
	candidate := NewEquation(coeffs, 0)
	return implied(s.Elements(), candidate)
}

// EvalAndOnElement evaluates the Sum conjuncts of an AndCondition against a
// single LE element; callers must not include Even/Odd literals — those are
// undecidable here and must be deferred to a product domain (spec §4.3).
func (d Domain) EvalAndOnElement(a ast.AndCondition, s Element) bool {
	for _, b := range a.Conjuncts {
		if b.Kind != ast.Sum {
			panic("linear: EvalAndOnElement called with a non-Sum literal")
		}
		if !d.EvalSum(s, b.ISum, b.JSum) {
			return false
		}
	}
	return true
}

// EvalOrCondition evaluates an OrCondition against s: it holds iff some
// disjunct's Sum conjuncts all hold.
func (d Domain) EvalOrCondition(orc ast.OrCondition, s Element) bool {
	for _, and := range orc.Disjuncts {
		if d.EvalAndOnElement(and, s) {
			return true
		}
	}
	return false
}
