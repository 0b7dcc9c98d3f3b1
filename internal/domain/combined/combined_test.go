package combined_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saav/internal/ast"
	"saav/internal/domain/combined"
	"saav/internal/domain/linear"
	"saav/internal/domain/parity"
	"saav/internal/lattice"
)

func pos() ast.Position { return ast.Position{} }

func testUniverse(vars []string) linear.Universe {
	return linear.Universe{Variables: vars, CoeffMin: -1, CoeffMax: 1, MMin: -2, MMax: 2}
}

func TestCartesianTransformIsComponentwise(t *testing.T) {
	vars := []string{"x", "y"}
	dom := combined.NewCartesian(vars, testUniverse(vars))
	out := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 0))

	assert.True(t, dom.Linear.EvalSum(out.Second, []string{"x"}, nil))
	for _, tup := range out.First.Elements() {
		assert.Equal(t, tup.Get("x").String(), "Even")
	}
}

func TestCartesianEvalOrConditionHoldsForEvenAfterEvenConst(t *testing.T) {
	vars := []string{"x"}
	dom := combined.NewCartesian(vars, testUniverse(vars))
	s := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 2))

	orc := ast.OrCondition{Disjuncts: []ast.AndCondition{
		{Conjuncts: []ast.BoolCondition{{Kind: ast.Even, I: "x"}}},
	}}
	assert.True(t, combined.EvalOrCondition(dom, orc, s))

	failing := combined.FailingTuples(dom, orc, s)
	assert.Empty(t, failing)
}

func TestCartesianJoinAndEqual(t *testing.T) {
	vars := []string{"x"}
	dom := combined.NewCartesian(vars, testUniverse(vars))
	a := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 2))
	b := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 3))
	joined := dom.Join(a, b)
	assert.True(t, dom.Equal(joined, dom.Top()))
}

func TestRelationalTopIsOnePairPerParityTuple(t *testing.T) {
	vars := []string{"x"}
	dom := combined.NewRelational(vars, testUniverse(vars))
	top := dom.Top()
	assert.Len(t, top.Elements(), 2)
}

func TestRelationalTransformTracksPerTupleWitness(t *testing.T) {
	vars := []string{"x"}
	dom := combined.NewRelational(vars, testUniverse(vars))
	out := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 0))
	assert.Len(t, out.Elements(), 1)
	pair := out.Elements()[0]
	assert.Equal(t, "Even", pair.T.Get("x").String())
	assert.True(t, dom.Linear.EvalSum(pair.E, []string{"x"}, nil))
}

// TestRelationalIsStrictlyMorePreciseThanCartesian builds, by hand, the two
// states a join over two branches would produce — one where x is Even and
// y=x is forced, one where x is Odd and y is unconstrained — and checks an
// assertion that is true per-branch but only the relational product (which
// keeps each parity tuple paired with its own LE witness) can discharge
// after the join; the Cartesian product's single shared LE witness cannot
// (spec §4.4 vs §4.5).
func TestRelationalIsStrictlyMorePreciseThanCartesian(t *testing.T) {
	vars := []string{"x", "y"}
	uni := testUniverse(vars)
	pdom := parity.New(vars)
	ldom := linear.New(uni)

	evenTuple := parity.NewTuple(vars, parity.Even).Set("x", parity.Even).Set("y", parity.Even)
	oddTuple := parity.NewTuple(vars, parity.Even).Set("x", parity.Odd).Set("y", parity.Even)

	leEq := ldom.Explicate(linear.NewElement(lattice.NewSet(linear.Single(vars, "y", "x", 0))))
	leTop := ldom.Top()

	orc := ast.OrCondition{Disjuncts: []ast.AndCondition{
		{Conjuncts: []ast.BoolCondition{
			{Kind: ast.Even, I: "x"},
			{Kind: ast.Sum, ISum: []string{"y"}, JSum: []string{"x"}},
		}},
		{Conjuncts: []ast.BoolCondition{{Kind: ast.Odd, I: "x"}}},
	}}

	cart := combined.CartesianDomain{Parity: pdom, Linear: ldom}
	cartJoined := lattice.NewPair(
		lattice.NewDisjunctiveCompletion(lattice.NewSet(evenTuple)).Join(
			lattice.NewDisjunctiveCompletion(lattice.NewSet(oddTuple))),
		leEq.Join(leTop),
	)
	assert.False(t, combined.EvalOrCondition(cart, orc, cartJoined),
		"the Cartesian join's single shared LE witness no longer proves y=x for the Even branch")

	rel := combined.RelationalDomain{Parity: pdom, Linear: ldom}
	relJoined := combined.NewRelationalElement(lattice.NewSet(
		combined.RelPair{T: evenTuple, E: leEq},
		combined.RelPair{T: oddTuple, E: leTop},
	))
	assert.True(t, combined.EvalOrCondition(rel, orc, relJoined),
		"the relational product keeps each tuple's own witness and can discharge the assertion")
}

func TestRelationalJoinFallsBackToDominanceOrUnion(t *testing.T) {
	vars := []string{"x"}
	dom := combined.NewRelational(vars, testUniverse(vars))
	a := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 2))
	joined := dom.Join(a, dom.Bottom())
	assert.True(t, dom.Equal(joined, a))
}
