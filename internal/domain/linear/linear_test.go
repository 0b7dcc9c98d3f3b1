package linear_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saav/internal/ast"
	"saav/internal/domain/linear"
)

func pos() ast.Position { return ast.Position{} }

func testUniverse() linear.Universe {
	return linear.Universe{Variables: []string{"x", "y", "z"}, CoeffMin: -1, CoeffMax: 1, MMin: -2, MMax: 2}
}

func TestTopIsNoConstraints(t *testing.T) {
	dom := linear.New(testUniverse())
	assert.Equal(t, 0, dom.Top().Len())
	assert.False(t, dom.Top().IsBottom())
}

func TestBottomIsInconsistent(t *testing.T) {
	dom := linear.New(testUniverse())
	assert.True(t, dom.Bottom().IsBottom())
}

func TestTransformAssignConstThenExplicate(t *testing.T) {
	dom := linear.New(testUniverse())
	out := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 1))
	assert.False(t, out.IsBottom())
	ok := dom.EvalSum(out, []string{"x"}, nil)
	assert.False(t, ok) // x=1 is not forced to equal 0
}

func TestTransformAssignVarImpliesSum(t *testing.T) {
	dom := linear.New(testUniverse())
	out := dom.Transform(dom.Top(), ast.NewAssignVar(pos(), "y", "x"))
	assert.True(t, dom.EvalSum(out, []string{"y"}, []string{"x"}))
}

func TestClearDropsConstraintsOnVariable(t *testing.T) {
	dom := linear.New(testUniverse())
	withConst := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 1))
	assert.True(t, dom.EvalSum(withConst, []string{"x"}, nil) == false) // x=1, not x=0
	assert.True(t, dom.EvalSum(withConst, []string{"x"}, []string{"x"})) // x-x=0 always holds

	cleared := dom.Clear(withConst, "x")
	for _, eq := range cleared.Elements() {
		assert.False(t, eq.Mentions(dom.Universe.Index("x")))
	}
}

func TestAssumeEqConstContradictingAssignConstIsInconsistent(t *testing.T) {
	dom := linear.New(testUniverse())
	s := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 1))
	s = dom.Transform(s, ast.NewAssume(pos(), ast.ECondition{Kind: ast.EqConst, I: "x", K: -1}))
	assert.True(t, s.IsBottom())
}

func TestAssumeFalseIsBottom(t *testing.T) {
	dom := linear.New(testUniverse())
	out := dom.Transform(dom.Top(), ast.NewAssume(pos(), ast.ECondition{Kind: ast.EFalse}))
	assert.True(t, out.IsBottom())
}

func TestTransformBottomStaysBottom(t *testing.T) {
	dom := linear.New(testUniverse())
	out := dom.Transform(dom.Bottom(), ast.NewSkip(pos()))
	assert.True(t, out.IsBottom())
}

func TestPlus1SameVariableShiftsConstant(t *testing.T) {
	dom := linear.New(testUniverse())
	s := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 0))
	s = dom.Transform(s, ast.NewPlus1(pos(), "x", "x"))
	assert.True(t, dom.EvalSum(s, []string{"x"}, nil) == false)
}

func TestEvalSumEmptyVectorsEqualsZero(t *testing.T) {
	dom := linear.New(testUniverse())
	assert.True(t, dom.EvalSum(dom.Top(), nil, nil))
}

func TestExplicateIsIdempotent(t *testing.T) {
	dom := linear.New(testUniverse())
	s := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 1))
	once := dom.Explicate(s)
	twice := dom.Explicate(once)
	assert.True(t, once.Equal(twice))
}

func TestJoinIsIntersection(t *testing.T) {
	dom := linear.New(testUniverse())
	a := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", 1))
	b := dom.Transform(dom.Top(), ast.NewAssignConst(pos(), "x", -1))
	joined := dom.Join(a, b)
	assert.True(t, dom.Equal(joined, dom.Top()))
}

func TestRenderTopHasNoConstraintsLabel(t *testing.T) {
	dom := linear.New(testUniverse())
	assert.Contains(t, dom.Render(dom.Top()), "top")
}
