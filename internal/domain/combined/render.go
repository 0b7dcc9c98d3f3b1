package combined

import (
	"strings"

	"saav/internal/domain/parity"
)

// Render renders a Cartesian element as "<parity-set> x <LE-element>".
func (d CartesianDomain) Render(s CartesianElement) string {
	return parity.RenderSet(s.First) + " x " + d.Linear.Render(s.Second)
}

// Render renders a relational element as one line per (tuple, LE) witness.
func (d RelationalDomain) Render(s RelationalElement) string {
	pairs := s.Elements()
	if len(pairs) == 0 {
		return "{} (bottom)"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, p := range pairs {
		b.WriteString("  (")
		b.WriteString(parity.RenderTuple(p.T))
		b.WriteString(") , ")
		b.WriteString(d.Linear.Render(p.E))
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
