package linear

import "strings"

// Render renders an LE element deterministically: equations sorted by their
// canonical Key (coefficient vector then constant), on one line separated
// by "; ".
func (d Domain) Render(e Element) string {
	eqs := e.Elements()
	if len(eqs) == 0 {
		return "{} (top, no constraints)"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, eq := range eqs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(eq.String(d.Universe.Variables))
	}
	b.WriteString(" }")
	return b.String()
}
