// Package parity implements the parity abstract domain: a concrete lattice
// over {Even, Odd}, lifted through tuples and a disjunctive completion into
// a finite set-of-parity-tuples domain (spec §4.2).
package parity

import (
	"fmt"

	"saav/internal/ast"
	"saav/internal/lattice"
)

// Parity is the scalar value of the domain. It carries no Top/Bottom of its
// own — spec §3 notes there is "no explicit ⊤/⊥ at the scalar level"; those
// only appear once Parity is lifted through a disjunctive completion.
type Parity int

const (
	Even Parity = iota
	Odd
)

func (p Parity) String() string {
	if p == Even {
		return "Even"
	}
	return "Odd"
}

func (p Parity) Equal(o Parity) bool { return p == o }
func (p Parity) Copy() Parity        { return p }
func (p Parity) Key() string         { return p.String() }

// AllElements is stateless: it enumerates {Even, Odd} regardless of the
// receiver, which is what lets Tuple call it on a zero value.
func (Parity) AllElements() []Parity { return []Parity{Even, Odd} }

// Of classifies an integer constant's parity.
func Of(k int) Parity {
	if ((k % 2) + 2) % 2 == 0 {
		return Even
	}
	return Odd
}

// Flip returns the parity of n ± 1.
func Flip(p Parity) Parity {
	if p == Even {
		return Odd
	}
	return Even
}

// Tuple is a total mapping from the analyzer's variable list to Parity.
type Tuple = lattice.Tuple[Parity]

// NewTuple builds a tuple with every variable set to init.
func NewTuple(variables []string, init Parity) Tuple {
	return lattice.NewTuple(variables, func(string) Parity { return init })
}

// Set is the disjunctive completion over parity tuples: ⊤ = all 2ⁿ tuples,
// ⊥ = ∅.
type Set = lattice.DisjunctiveCompletion[Tuple]

// Domain is a constructed instance of the parity analysis for a fixed
// variable list — Top/Bottom are methods on it rather than on Set itself,
// since the universe (the variable list) is a construction-time parameter.
type Domain struct {
	Variables []string
}

func New(variables []string) Domain { return Domain{Variables: variables} }

func (d Domain) Top() Set {
	return lattice.TopCompletion[Tuple](NewTuple(d.Variables, Even).AllElements())
}

func (d Domain) Bottom() Set { return lattice.BottomCompletion[Tuple]() }

// Join and Equal satisfy fixpoint.Analyzer[Set] alongside Top/Bottom/Transform.
func (d Domain) Join(a, b Set) Set   { return a.Join(b) }
func (d Domain) Equal(a, b Set) bool { return a.Equal(b) }

// Transform applies a command's abstract transformer elementwise over every
// tuple in state, per spec §4.2.
func (d Domain) Transform(state Set, cmd ast.Command) Set {
	switch c := cmd.(type) {
	case ast.Skip:
		return state.Copy()

	case ast.AssignVar:
		return mapTuples(state, func(t Tuple) []Tuple {
			return []Tuple{t.Set(c.I, t.Get(c.J))}
		})

	case ast.AssignConst:
		p := Of(c.K)
		return mapTuples(state, func(t Tuple) []Tuple {
			return []Tuple{t.Set(c.I, p)}
		})

	case ast.AssignUnknown:
		return mapTuples(state, func(t Tuple) []Tuple {
			return []Tuple{t.Set(c.I, Even), t.Set(c.I, Odd)}
		})

	case ast.Plus1:
		return mapTuples(state, func(t Tuple) []Tuple {
			return []Tuple{t.Set(c.I, Flip(t.Get(c.J)))}
		})

	case ast.Minus1:
		return mapTuples(state, func(t Tuple) []Tuple {
			return []Tuple{t.Set(c.I, Flip(t.Get(c.J)))}
		})

	case ast.Assume:
		return mapTuples(state, func(t Tuple) []Tuple {
			if EvalECondition(c.E, t) {
				return []Tuple{t}
			}
			return nil
		})

	case ast.Assert:
		return state.Copy()

	default:
		panic(fmt.Sprintf("parity: unhandled command %T", cmd))
	}
}

func mapTuples(state Set, f func(Tuple) []Tuple) Set {
	out := lattice.NewSet[Tuple]()
	for _, t := range state.Elements() {
		for _, nt := range f(t) {
			out = out.Add(nt)
		}
	}
	return lattice.NewDisjunctiveCompletion(out)
}

// EvalECondition evaluates an E-condition on a single parity tuple, per
// spec §4.2. DiffVar/DiffConst are vacuously true: parity cannot refute an
// inequality, so the safe (over-approximating) answer is always "true" —
// this is the Open Question spec §9 resolves in favor of the vacuous form.
func EvalECondition(e ast.ECondition, t Tuple) bool {
	switch e.Kind {
	case ast.EqVar:
		return t.Get(e.I) == t.Get(e.J)
	case ast.DiffVar:
		return true
	case ast.EqConst:
		return t.Get(e.I) == Of(e.K)
	case ast.DiffConst:
		return true
	case ast.ETrue:
		return true
	case ast.EFalse:
		return false
	default:
		panic("parity: unhandled econdition")
	}
}

// EvalBoolCondition evaluates an Even/Odd literal on a tuple. Sum literals
// cannot be decided here and must be deferred to a domain that tracks sums
// (spec §4.2); callers must not invoke this with a Sum condition.
func EvalBoolCondition(b ast.BoolCondition, t Tuple) bool {
	switch b.Kind {
	case ast.Even:
		return t.Get(b.I) == Even
	case ast.Odd:
		return t.Get(b.I) == Odd
	default:
		panic("parity: EvalBoolCondition called with a non-parity literal")
	}
}

// EvalOrCondition evaluates an OrCondition against every tuple of a parity
// set: it holds iff every tuple satisfies some disjunct (spec §4.2's Assert
// transformer: "emits a diagnostic for every tuple for which ORC is false").
// Callers must not invoke this with an ORC containing a Sum literal.
func EvalOrCondition(orc ast.OrCondition, s Set) bool {
	for _, t := range s.Elements() {
		if !evalOrOnTuple(orc, t) {
			return false
		}
	}
	return true
}

// FailingTuples returns every tuple of s that does not satisfy orc, used to
// render assertion-failure witnesses.
func FailingTuples(orc ast.OrCondition, s Set) []Tuple {
	var out []Tuple
	for _, t := range s.Elements() {
		if !evalOrOnTuple(orc, t) {
			out = append(out, t)
		}
	}
	return out
}

func evalOrOnTuple(orc ast.OrCondition, t Tuple) bool {
	for _, and := range orc.Disjuncts {
		if EvalAndCondition(and, t) {
			return true
		}
	}
	return false
}

// EvalAndCondition evaluates the parity-decidable conjuncts of an
// AndCondition (Even/Odd only) against a tuple, skipping any Sum literal —
// callers that also have an LE witness must combine this with that domain's
// evaluation of the Sum conjuncts (spec §4.4).
func EvalAndCondition(a ast.AndCondition, t Tuple) bool {
	for _, b := range a.Conjuncts {
		if b.Kind == ast.Sum {
			continue
		}
		if !EvalBoolCondition(b, t) {
			return false
		}
	}
	return true
}
