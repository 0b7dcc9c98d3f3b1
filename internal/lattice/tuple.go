package lattice

import "strings"

// tupleBase is the constraint a Tuple's component type must satisfy: it must be
// Listable (so the tuple itself can be Listable) and Enumerable (so the
// tuple can list its own 2^n / k^n universe, needed to build ⊤ of a
// disjunctive completion over tuples).
type tupleBase[T any] interface {
	Listable[T]
	Enumerable[T]
}

// Tuple is the n-ary Cartesian-product constructor of spec §4.1: given a
// fixed ordered variable list and a listable base lattice, it builds a total
// mapping from variables to base values. It is itself Listable, which is
// what lets parity.Set (= DisjunctiveCompletion[Tuple[Parity]]) exist.
type Tuple[T tupleBase[T]] struct {
	Variables []string
	Values    map[string]T
}

// NewTuple builds a tuple from a variable list and an initializer function.
func NewTuple[T tupleBase[T]](variables []string, init func(v string) T) Tuple[T] {
	values := make(map[string]T, len(variables))
	for _, v := range variables {
		values[v] = init(v)
	}
	return Tuple[T]{Variables: variables, Values: values}
}

// Get returns the component value for a variable.
func (t Tuple[T]) Get(v string) T { return t.Values[v] }

// Set returns a copy of t with variable v's component replaced by val.
func (t Tuple[T]) Set(v string, val T) Tuple[T] {
	out := t.Copy()
	out.Values[v] = val
	return out
}

func (t Tuple[T]) Equal(o Tuple[T]) bool {
	if len(t.Variables) != len(o.Variables) {
		return false
	}
	for _, v := range t.Variables {
		ov, ok := o.Values[v]
		if !ok || !t.Values[v].Equal(ov) {
			return false
		}
	}
	return true
}

func (t Tuple[T]) Copy() Tuple[T] {
	values := make(map[string]T, len(t.Values))
	for k, v := range t.Values {
		values[k] = v.Copy()
	}
	return Tuple[T]{Variables: t.Variables, Values: values}
}

// Key renders a canonical "var1=key1,var2=key2,..." string in variable-list
// order, which is what gives tuples (and hence sets of tuples) deterministic
// textual output.
func (t Tuple[T]) Key() string {
	var b strings.Builder
	for i, v := range t.Variables {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v)
		b.WriteByte('=')
		b.WriteString(t.Values[v].Key())
	}
	return b.String()
}

// AllElements enumerates the tuple's full universe: the Cartesian product of
// the base type's AllElements() across every variable.
func (t Tuple[T]) AllElements() []Tuple[T] {
	var base T
	options := base.AllElements()
	result := []map[string]T{{}}
	for _, v := range t.Variables {
		next := make([]map[string]T, 0, len(result)*len(options))
		for _, partial := range result {
			for _, opt := range options {
				cp := make(map[string]T, len(partial)+1)
				for k, val := range partial {
					cp[k] = val
				}
				cp[v] = opt
				next = append(next, cp)
			}
		}
		result = next
	}
	out := make([]Tuple[T], 0, len(result))
	for _, values := range result {
		out = append(out, Tuple[T]{Variables: t.Variables, Values: values})
	}
	return out
}
