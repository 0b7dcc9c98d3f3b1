package lattice

// DisjunctiveCompletion builds D = 𝒫(B) over a listable base type B, ordered
// by subset, with union as join and intersection as meet (spec §4.1). Top is
// the set of every B value (supplied by the caller, since the universe of B
// is itself a construction-time parameter); Bottom is the empty set.
type DisjunctiveCompletion[T Listable[T]] struct {
	Set[T]
}

// NewDisjunctiveCompletion wraps an existing Set as a completion element.
func NewDisjunctiveCompletion[T Listable[T]](s Set[T]) DisjunctiveCompletion[T] {
	return DisjunctiveCompletion[T]{s}
}

// BottomCompletion is the empty disjunctive-completion element, ⊥.
func BottomCompletion[T Listable[T]]() DisjunctiveCompletion[T] {
	return DisjunctiveCompletion[T]{NewSet[T]()}
}

// TopCompletion builds ⊤ from every element of the base universe.
func TopCompletion[T Listable[T]](all []T) DisjunctiveCompletion[T] {
	return DisjunctiveCompletion[T]{NewSet(all...)}
}

func (d DisjunctiveCompletion[T]) Join(o DisjunctiveCompletion[T]) DisjunctiveCompletion[T] {
	return DisjunctiveCompletion[T]{d.Union(o.Set)}
}

func (d DisjunctiveCompletion[T]) Meet(o DisjunctiveCompletion[T]) DisjunctiveCompletion[T] {
	return DisjunctiveCompletion[T]{d.Intersect(o.Set)}
}

func (d DisjunctiveCompletion[T]) LessEqual(o DisjunctiveCompletion[T]) bool {
	return d.SubsetOf(o.Set)
}

func (d DisjunctiveCompletion[T]) Equal(o DisjunctiveCompletion[T]) bool {
	return d.Set.Equal(o.Set)
}

func (d DisjunctiveCompletion[T]) Copy() DisjunctiveCompletion[T] {
	return DisjunctiveCompletion[T]{d.Set.Copy()}
}
