package analyzer

import (
	"saav/internal/ast"
	serrors "saav/internal/errors"
)

// validate checks the shape errors spec.md §7 requires to be raised once,
// before the fixpoint engine ever runs: an empty universe, or a command
// referencing a variable outside Config.Variables.
func validate(p *ast.Program, cfg Config) error {
	if cfg.CoefficientRange[0] > cfg.CoefficientRange[1] || cfg.IntegerRange[0] > cfg.IntegerRange[1] {
		return serrors.CompilerError{
			Level:   serrors.Error,
			Code:    serrors.ErrorEmptyUniverse,
			Message: "coefficient or constant range is empty",
		}
	}

	known := make(map[string]bool, len(cfg.Variables))
	for _, v := range cfg.Variables {
		known[v] = true
	}

	for _, line := range p.Lines {
		for _, v := range referencedVariables(line.Command) {
			if !known[v] {
				return serrors.CompilerError{
					Level:    serrors.Error,
					Code:     serrors.ErrorUnknownVariable,
					Message:  "variable \"" + v + "\" is not declared",
					Position: line.Command.Pos(),
				}
			}
		}
	}
	return nil
}

func referencedVariables(cmd ast.Command) []string {
	switch c := cmd.(type) {
	case ast.AssignVar:
		return []string{c.I, c.J}
	case ast.AssignConst:
		return []string{c.I}
	case ast.AssignUnknown:
		return []string{c.I}
	case ast.Plus1:
		return []string{c.I, c.J}
	case ast.Minus1:
		return []string{c.I, c.J}
	case ast.Assume:
		return econditionVariables(c.E)
	case ast.Assert:
		return orConditionVariables(c.ORC)
	default:
		return nil
	}
}

func econditionVariables(e ast.ECondition) []string {
	switch e.Kind {
	case ast.EqVar, ast.DiffVar:
		return []string{e.I, e.J}
	case ast.EqConst, ast.DiffConst:
		return []string{e.I}
	default:
		return nil
	}
}

// validateLiteralKinds rejects asserts that use a literal kind the selected
// pure domain cannot decide on its own (Sum under Parity, Even/Odd under LE).
// Combined domains accept every literal kind.
func validateLiteralKinds(p *ast.Program, domain DomainKind) error {
	if domain != Parity && domain != LE {
		return nil
	}
	for _, line := range p.Lines {
		a, ok := line.Command.(ast.Assert)
		if !ok {
			continue
		}
		for _, and := range a.ORC.Disjuncts {
			for _, b := range and.Conjuncts {
				isSum := b.Kind == ast.Sum
				if domain == Parity && isSum || domain == LE && !isSum {
					return serrors.CompilerError{
						Level:    serrors.Error,
						Code:     serrors.ErrorUnsupportedLiteral,
						Message:  "this domain cannot decide literal: " + b.String(),
						Position: a.Pos(),
					}
				}
			}
		}
	}
	return nil
}

func orConditionVariables(orc ast.OrCondition) []string {
	var out []string
	for _, and := range orc.Disjuncts {
		for _, b := range and.Conjuncts {
			switch b.Kind {
			case ast.Even, ast.Odd:
				out = append(out, b.I)
			case ast.Sum:
				out = append(out, b.ISum...)
				out = append(out, b.JSum...)
			}
		}
	}
	return out
}
