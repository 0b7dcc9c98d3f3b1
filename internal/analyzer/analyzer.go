package analyzer

import (
	"saav/internal/ast"
	"saav/internal/cfg"
	"saav/internal/domain/combined"
	"saav/internal/domain/linear"
	"saav/internal/domain/parity"
	serrors "saav/internal/errors"
	"saav/internal/fixpoint"
	"saav/internal/report"
)

// Result is everything that crosses the boundary out of the analyzer into
// cmd/ and internal/lsp: the rendered per-node states, the per-assert
// findings and their diagnostic list. Nothing else leaves this package.
type Result struct {
	States      map[int]string
	Findings    []report.Finding
	Diagnostics []serrors.CompilerError
}

// Run builds the CFG, selects the fixpoint.Analyzer adapter for cfg.Domain,
// runs the requested strategy, and discharges every Assert against the
// converged states (SPEC_FULL.md §4.10).
func Run(p *ast.Program, c Config) (*Result, error) {
	if err := validate(p, c); err != nil {
		return nil, err
	}
	if err := validateLiteralKinds(p, c.Domain); err != nil {
		return nil, err
	}

	g := cfg.Build(p)
	entry, err := g.Entry()
	if err != nil {
		return nil, err
	}

	universe := linear.Universe{
		Variables: c.Variables,
		CoeffMin:  c.CoefficientRange[0],
		CoeffMax:  c.CoefficientRange[1],
		MMin:      c.IntegerRange[0],
		MMax:      c.IntegerRange[1],
	}

	switch c.Domain {
	case Parity:
		return runParity(p, c, g, entry)
	case LE:
		return runLinear(p, c, g, entry, universe)
	case Cartesian:
		return runCartesian(p, c, g, entry, universe)
	default:
		return runRelational(p, c, g, entry, universe)
	}
}

func runParity(p *ast.Program, c Config, g *cfg.Graph, entry int) (*Result, error) {
	dom := parity.New(c.Variables)
	states := fixpoint.Run[parity.Set](g, dom, entry, c.Strategy)

	rendered := map[int]string{}
	for n, s := range states {
		rendered[n] = parity.RenderSet(s)
	}

	sites := report.CollectSites(g)
	findings := report.Discharge[parity.Set](sites, states, parityEvaluator{})
	return &Result{States: rendered, Findings: findings, Diagnostics: diagnostics(findings)}, nil
}

func runLinear(p *ast.Program, c Config, g *cfg.Graph, entry int, u linear.Universe) (*Result, error) {
	dom := linear.New(u)
	states := fixpoint.Run[linear.Element](g, dom, entry, c.Strategy)

	rendered := map[int]string{}
	for n, s := range states {
		rendered[n] = dom.Render(s)
	}

	sites := report.CollectSites(g)
	findings := report.Discharge[linear.Element](sites, states, linearEvaluator{dom})
	return &Result{States: rendered, Findings: findings, Diagnostics: diagnostics(findings)}, nil
}

func runCartesian(p *ast.Program, c Config, g *cfg.Graph, entry int, u linear.Universe) (*Result, error) {
	dom := combined.NewCartesian(c.Variables, u)
	states := fixpoint.Run[combined.CartesianElement](g, dom, entry, c.Strategy)

	rendered := map[int]string{}
	for n, s := range states {
		rendered[n] = dom.Render(s)
	}

	sites := report.CollectSites(g)
	findings := report.Discharge[combined.CartesianElement](sites, states, cartesianEvaluator{dom})
	return &Result{States: rendered, Findings: findings, Diagnostics: diagnostics(findings)}, nil
}

func runRelational(p *ast.Program, c Config, g *cfg.Graph, entry int, u linear.Universe) (*Result, error) {
	dom := combined.NewRelational(c.Variables, u)
	states := fixpoint.Run[combined.RelationalElement](g, dom, entry, c.Strategy)

	rendered := map[int]string{}
	for n, s := range states {
		rendered[n] = dom.Render(s)
	}

	sites := report.CollectSites(g)
	findings := report.Discharge[combined.RelationalElement](sites, states, relationalEvaluator{dom})
	return &Result{States: rendered, Findings: findings, Diagnostics: diagnostics(findings)}, nil
}

func diagnostics(findings []report.Finding) []serrors.CompilerError {
	out := make([]serrors.CompilerError, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Diagnostic())
	}
	return out
}

// --- report.Evaluator adapters, one per domain kind ---

type parityEvaluator struct{}

func (parityEvaluator) Holds(orc ast.OrCondition, s parity.Set) bool {
	return parity.EvalOrCondition(orc, s)
}

func (parityEvaluator) Counterexamples(orc ast.OrCondition, s parity.Set) []string {
	var out []string
	for _, t := range parity.FailingTuples(orc, s) {
		out = append(out, parity.RenderTuple(t))
	}
	return out
}

type linearEvaluator struct{ dom linear.Domain }

func (e linearEvaluator) Holds(orc ast.OrCondition, s linear.Element) bool {
	return e.dom.EvalOrCondition(orc, s)
}

func (e linearEvaluator) Counterexamples(orc ast.OrCondition, s linear.Element) []string {
	return []string{e.dom.Render(s)}
}

type cartesianEvaluator struct{ dom combined.CartesianDomain }

func (e cartesianEvaluator) Holds(orc ast.OrCondition, s combined.CartesianElement) bool {
	return combined.EvalOrCondition(e.dom, orc, s)
}

func (e cartesianEvaluator) Counterexamples(orc ast.OrCondition, s combined.CartesianElement) []string {
	var out []string
	for _, t := range combined.FailingTuples(e.dom, orc, s) {
		out = append(out, parity.RenderTuple(t)+" x "+e.dom.Linear.Render(s.Second))
	}
	return out
}

type relationalEvaluator struct{ dom combined.RelationalDomain }

func (e relationalEvaluator) Holds(orc ast.OrCondition, s combined.RelationalElement) bool {
	return combined.EvalOrCondition(e.dom, orc, s)
}

func (e relationalEvaluator) Counterexamples(orc ast.OrCondition, s combined.RelationalElement) []string {
	var out []string
	for _, pair := range combined.FailingPairs(e.dom, orc, s) {
		out = append(out, "("+parity.RenderTuple(pair.T)+") , "+e.dom.Linear.Render(pair.E))
	}
	return out
}
