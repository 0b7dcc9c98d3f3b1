package linear

// Universe fixes the finite parameter space every LE element is drawn from:
// a variable order, a coefficient range and a constant range (spec §4.3).
type Universe struct {
	Variables        []string
	CoeffMin, CoeffMax int
	MMin, MMax         int
}

// AllEquations enumerates the universe's full equation set: every
// coefficient vector in [CoeffMin, CoeffMax]^n crossed with every constant in
// [MMin, MMax]. This is ⊥'s underlying set.
func (u Universe) AllEquations() []Equation {
	n := len(u.Variables)
	coeffSpan := u.CoeffMax - u.CoeffMin + 1
	mSpan := u.MMax - u.MMin + 1
	total := 1
	for i := 0; i < n; i++ {
		total *= coeffSpan
	}
	out := make([]Equation, 0, total*mSpan)
	vec := make([]int, n)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			for m := u.MMin; m <= u.MMax; m++ {
				out = append(out, NewEquation(vec, m))
			}
			return
		}
		for c := u.CoeffMin; c <= u.CoeffMax; c++ {
			vec[pos] = c
			rec(pos + 1)
		}
	}
	rec(0)
	return out
}

// InRange reports whether e's coefficients and constant are within the
// universe's declared bounds.
func (u Universe) InRange(e Equation) bool {
	if e.M < u.MMin || e.M > u.MMax {
		return false
	}
	for _, c := range e.Coefficients {
		if c < u.CoeffMin || c > u.CoeffMax {
			return false
		}
	}
	return true
}

// Index returns the position of v in the universe's variable order, or -1.
func (u Universe) Index(v string) int {
	for i, name := range u.Variables {
		if name == v {
			return i
		}
	}
	return -1
}
