package combined

import (
	"saav/internal/ast"
	"saav/internal/domain/linear"
	"saav/internal/domain/parity"
	"saav/internal/lattice"
)

// RelPair is one (parity-tuple, LE-element) witness in a relational
// product element.
type RelPair struct {
	T parity.Tuple
	E linear.Element
}

func (p RelPair) Equal(o RelPair) bool { return p.T.Equal(o.T) && p.E.Equal(o.E) }
func (p RelPair) Copy() RelPair        { return RelPair{p.T.Copy(), p.E.Copy()} }
func (p RelPair) Key() string {
	key := p.T.Key() + "||"
	for _, e := range p.E.Elements() {
		key += e.Key() + ";"
	}
	return key
}

// dominates reports whether p is subsumed by o: same parity tuple, and o's
// LE component is at least as general (p.E ≤ o.E in LE's reversed-
// inclusion order, i.e. o.E ⊆ p.E, so o.E's concretization contains p.E's).
func (p RelPair) dominates(o RelPair) bool {
	return p.T.Equal(o.T) && p.E.LessEqual(o.E)
}

// RelationalElement is a set of (parity-tuple, LE-element) pairs, the
// relational product of spec §4.5.
type RelationalElement struct {
	lattice.Set[RelPair]
}

func NewRelationalElement(s lattice.Set[RelPair]) RelationalElement {
	return RelationalElement{s}
}

func (r RelationalElement) Equal(o RelationalElement) bool { return r.Set.Equal(o.Set) }

// LessEqual is the domination order of spec §4.5: every pair in r must be
// dominated by some pair in o.
func (r RelationalElement) LessEqual(o RelationalElement) bool {
	for _, p := range r.Elements() {
		if !anyDominates(p, o) {
			return false
		}
	}
	return true
}

func anyDominates(p RelPair, o RelationalElement) bool {
	for _, q := range o.Elements() {
		if p.dominates(q) {
			return true
		}
	}
	return false
}

// Join and Meet are the operational, over-approximating definitions of
// spec §4.1/§4.5: if one side already dominates the other, return it;
// otherwise fall back to plain set union/intersection. This is sound (the
// result is always ≥ both operands under LessEqual) but not an exact
// lattice join/meet — spec §9 acknowledges this explicitly.
func (r RelationalElement) Join(o RelationalElement) RelationalElement {
	if r.LessEqual(o) {
		return o.Copy()
	}
	if o.LessEqual(r) {
		return r.Copy()
	}
	return RelationalElement{r.Union(o.Set)}
}

func (r RelationalElement) Meet(o RelationalElement) RelationalElement {
	if r.LessEqual(o) {
		return r.Copy()
	}
	if o.LessEqual(r) {
		return o.Copy()
	}
	return RelationalElement{r.Intersect(o.Set)}
}

func (r RelationalElement) Copy() RelationalElement { return RelationalElement{r.Set.Copy()} }

// RelationalDomain wires the parity and LE domains for the relational
// product.
type RelationalDomain struct {
	Parity parity.Domain
	Linear linear.Domain
}

func NewRelational(variables []string, universe linear.Universe) RelationalDomain {
	return RelationalDomain{Parity: parity.New(variables), Linear: linear.New(universe)}
}

// Top is { (t, ⊤_LE) | t ranges over every parity tuple }.
func (d RelationalDomain) Top() RelationalElement {
	topLE := d.Linear.Top()
	set := lattice.NewSet[RelPair]()
	for _, t := range d.Parity.Top().Elements() {
		set = set.Add(RelPair{T: t, E: topLE})
	}
	return RelationalElement{set}
}

func (d RelationalDomain) Bottom() RelationalElement {
	return RelationalElement{lattice.NewSet[RelPair]()}
}

// Join and Equal satisfy fixpoint.Analyzer[RelationalElement].
func (d RelationalDomain) Join(a, b RelationalElement) RelationalElement { return a.Join(b) }
func (d RelationalDomain) Equal(a, b RelationalElement) bool            { return a.Equal(b) }

// Transform implements spec §4.5: the LE transformer runs once per distinct
// LE component appearing in the element; the parity transformer then runs
// per existing tuple, fanning out new (tuple', transformed-LE) pairs.
func (d RelationalDomain) Transform(s RelationalElement, cmd ast.Command) RelationalElement {
	leKey := func(e linear.Element) string {
		key := ""
		for _, eq := range e.Elements() {
			key += eq.Key() + ";"
		}
		return key
	}
	leByKey := map[string]linear.Element{}
	for _, p := range s.Elements() {
		key := leKey(p.E)
		if _, ok := leByKey[key]; !ok {
			leByKey[key] = d.Linear.Transform(p.E, cmd)
		}
	}

	out := lattice.NewSet[RelPair]()
	for _, p := range s.Elements() {
		singleton := lattice.NewDisjunctiveCompletion(lattice.NewSet(p.T))
		transformedTuples := d.Parity.Transform(singleton, cmd)
		newLE := leByKey[leKey(p.E)]
		for _, t := range transformedTuples.Elements() {
			out = out.Add(RelPair{T: t, E: newLE})
		}
	}
	return RelationalElement{out}
}

// EvalOrCondition evaluates ORC against a relational element: every pair
// specializes the OrCondition evaluation to its own (tuple, LE) witness,
// which is where the relational product buys strictly more precision than
// the Cartesian product (spec §4.5).
func EvalOrCondition(d RelationalDomain, orc ast.OrCondition, s RelationalElement) bool {
	for _, p := range s.Elements() {
		if !evalOrOnPair(d, orc, p) {
			return false
		}
	}
	return true
}

func evalOrOnPair(d RelationalDomain, orc ast.OrCondition, p RelPair) bool {
	for _, and := range orc.Disjuncts {
		if evalAndOnPair(d, and, p) {
			return true
		}
	}
	return false
}

func evalAndOnPair(d RelationalDomain, and ast.AndCondition, p RelPair) bool {
	for _, b := range and.Conjuncts {
		switch b.Kind {
		case ast.Even, ast.Odd:
			if !parity.EvalBoolCondition(b, p.T) {
				return false
			}
		case ast.Sum:
			if !d.Linear.EvalSum(p.E, b.ISum, b.JSum) {
				return false
			}
		}
	}
	return true
}

// Witnesses exposes the underlying (tuple, LE) pairs, used by the assertion
// reporter to render counter-witnesses.
func (r RelationalElement) Witnesses() []RelPair { return r.Elements() }

// FailingPairs returns every (tuple, LE) pair of s that does not satisfy orc
// when evaluated against its own witness.
func FailingPairs(d RelationalDomain, orc ast.OrCondition, s RelationalElement) []RelPair {
	var out []RelPair
	for _, p := range s.Elements() {
		if !evalOrOnPair(d, orc, p) {
			out = append(out, p)
		}
	}
	return out
}
