package parity

import "strings"

// RenderTuple renders a tuple deterministically in variable-list order,
// e.g. "x=Even, y=Odd".
func RenderTuple(t Tuple) string {
	var b strings.Builder
	for i, v := range t.Variables {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v)
		b.WriteByte('=')
		b.WriteString(t.Get(v).String())
	}
	return b.String()
}

// RenderSet renders a parity set as "{ <tuple>; <tuple>; ... }", tuples
// ordered by their canonical Key (spec §6: deterministic textual output).
func RenderSet(s Set) string {
	if s.Len() == 0 {
		return "{} (bottom)"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, t := range s.Elements() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(RenderTuple(t))
	}
	b.WriteString(" }")
	return b.String()
}
