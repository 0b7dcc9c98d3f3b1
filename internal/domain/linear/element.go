package linear

import "saav/internal/lattice"

// Element is an LE abstract state: a set of equations ordered by
// *reversed* inclusion (spec §4.3) — more equations means more constraints
// means a smaller concretization, so S1 ≤ S2 iff S1 ⊇ S2. Join is
// intersection, meet is union.
type Element struct {
	lattice.Set[Equation]
}

func NewElement(s lattice.Set[Equation]) Element { return Element{s} }

func (e Element) Equal(o Element) bool     { return e.Set.Equal(o.Set) }
func (e Element) LessEqual(o Element) bool { return o.SubsetOf(e.Set) }
func (e Element) Join(o Element) Element   { return Element{e.Intersect(o.Set)} }
func (e Element) Meet(o Element) Element   { return Element{e.Union(o.Set)} }
func (e Element) Copy() Element            { return Element{e.Set.Copy()} }

// IsBottom reports whether the element denotes no assignment at all
// (equivalently: its equation system is inconsistent).
func (e Element) IsBottom() bool {
	return !consistent(e.Elements())
}
