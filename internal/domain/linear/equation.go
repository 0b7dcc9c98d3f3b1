// Package linear implements the linear-equalities (LE) abstract domain: a
// bounded set of equations Σ aᵢ·vᵢ − m = 0 over a finite coefficient/integer
// universe, closed under explication (saturation) after every transform
// (spec §4.3).
package linear

import (
	"fmt"
	"strconv"
	"strings"
)

// Equation represents Σ coefficients[i]·Variables[i] − M = 0 for a fixed,
// shared variable order (the owning Universe's Variables).
type Equation struct {
	Coefficients []int
	M            int
}

// NewEquation builds an equation, copying the coefficient slice so the
// caller's backing array can't alias it.
func NewEquation(coefficients []int, m int) Equation {
	cp := make([]int, len(coefficients))
	copy(cp, coefficients)
	return Equation{Coefficients: cp, M: m}
}

// Single builds the equation for "i - j = d" (d = 0, 1 or -1) over the given
// variable order, used by AssignVar/Plus1/Minus1.
func Single(variables []string, i, j string, d int) Equation {
	coeffs := make([]int, len(variables))
	for idx, v := range variables {
		switch v {
		case i:
			coeffs[idx] += 1
		case j:
			coeffs[idx] -= 1
		}
	}
	return NewEquation(coeffs, d)
}

// Const builds the equation "i = k".
func Const(variables []string, i string, k int) Equation {
	coeffs := make([]int, len(variables))
	for idx, v := range variables {
		if v == i {
			coeffs[idx] = 1
		}
	}
	return NewEquation(coeffs, k)
}

// Mentions reports whether variable at index idx has a nonzero coefficient.
func (e Equation) Mentions(idx int) bool {
	return idx >= 0 && idx < len(e.Coefficients) && e.Coefficients[idx] != 0
}

// Shifted returns a copy of e with M shifted by delta (used when i == j in
// Plus1/Minus1, spec §4.3).
func (e Equation) Shifted(delta int) Equation {
	out := e.Copy()
	out.M += delta
	return out
}

func (e Equation) Equal(o Equation) bool {
	if e.M != o.M || len(e.Coefficients) != len(o.Coefficients) {
		return false
	}
	for i := range e.Coefficients {
		if e.Coefficients[i] != o.Coefficients[i] {
			return false
		}
	}
	return true
}

func (e Equation) Copy() Equation {
	return NewEquation(e.Coefficients, e.M)
}

func (e Equation) Key() string {
	var b strings.Builder
	for i, c := range e.Coefficients {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(e.M))
	return b.String()
}

// String renders the equation over the given variable names, e.g.
// "x - y - 1 = 0".
func (e Equation) String(variables []string) string {
	var b strings.Builder
	first := true
	for i, c := range e.Coefficients {
		if c == 0 {
			continue
		}
		if !first {
			if c > 0 {
				b.WriteString(" + ")
			} else {
				b.WriteString(" - ")
			}
		} else if c < 0 {
			b.WriteString("-")
		}
		first = false
		abs := c
		if abs < 0 {
			abs = -abs
		}
		if abs != 1 {
			fmt.Fprintf(&b, "%d*", abs)
		}
		b.WriteString(variables[i])
	}
	if first {
		b.WriteString("0")
	}
	fmt.Fprintf(&b, " - %d = 0", e.M)
	return b.String()
}
