// Package lattice holds the generic constructors of the lattice kernel:
// an element-level interface obligation and the generic building blocks
// (finite sets, tuples, pairs) that the parity, linear-equalities and
// combined domains are assembled from.
//
// Top and Bottom are deliberately NOT part of the element interface: every
// domain in this analyzer is parameterized at construction time by runtime
// configuration (a variable list, a coefficient/integer universe), so "top"
// and "bottom" are produced by a constructed domain value, not by the
// element type itself.
package lattice

// Element is the interface obligation for a lattice element (spec §4.1),
// minus Top/Bottom for the reason above.
type Element[T any] interface {
	Equal(other T) bool
	LessEqual(other T) bool
	Join(other T) T
	Meet(other T) T
	Copy() T
}

// Listable is the minimal capability a type needs to live inside a finite
// Set: equality, a deep copy, and a canonical string key used for
// deduplication and deterministic iteration order.
type Listable[T any] interface {
	Equal(other T) bool
	Copy() T
	Key() string
}

// Enumerable types can list every value in their universe. Only types used
// as the base of a disjunctive completion need this — it is the "listable"
// capability of spec §4.1, kept distinct from Listable on purpose.
type Enumerable[T any] interface {
	AllElements() []T
}
