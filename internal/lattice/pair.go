package lattice

// Pair is the two-lattice Cartesian-product constructor of spec §4.1:
// componentwise order, join and meet over two independently-typed lattice
// elements. It is what the Parity × LE Cartesian domain (spec §4.4) is built
// from.
type Pair[A Element[A], B Element[B]] struct {
	First  A
	Second B
}

func NewPair[A Element[A], B Element[B]](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) Equal(o Pair[A, B]) bool {
	return p.First.Equal(o.First) && p.Second.Equal(o.Second)
}

func (p Pair[A, B]) LessEqual(o Pair[A, B]) bool {
	return p.First.LessEqual(o.First) && p.Second.LessEqual(o.Second)
}

func (p Pair[A, B]) Join(o Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First.Join(o.First), Second: p.Second.Join(o.Second)}
}

func (p Pair[A, B]) Meet(o Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First.Meet(o.First), Second: p.Second.Meet(o.Second)}
}

func (p Pair[A, B]) Copy() Pair[A, B] {
	return Pair[A, B]{First: p.First.Copy(), Second: p.Second.Copy()}
}
