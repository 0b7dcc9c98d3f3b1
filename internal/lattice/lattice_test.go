package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saav/internal/lattice"
)

type intItem int

func (i intItem) Equal(o intItem) bool { return i == o }
func (i intItem) Copy() intItem        { return i }
func (i intItem) Key() string          { return string(rune('a' + int(i))) }
func (intItem) AllElements() []intItem { return []intItem{0, 1, 2, 3, 4} }

func TestSetUnionIntersectSubset(t *testing.T) {
	a := lattice.NewSet[intItem](1, 2, 3)
	b := lattice.NewSet[intItem](2, 3, 4)

	assert.Equal(t, 4, a.Union(b).Len())
	assert.Equal(t, 2, a.Intersect(b).Len())
	assert.True(t, lattice.NewSet[intItem](2, 3).SubsetOf(a))
	assert.False(t, a.SubsetOf(lattice.NewSet[intItem](2, 3)))
}

func TestSetEqualIgnoresDuplicateInserts(t *testing.T) {
	a := lattice.NewSet[intItem](1, 1, 2)
	b := lattice.NewSet[intItem](2, 1)
	assert.True(t, a.Equal(b))
}

func TestSetElementsDeterministicOrder(t *testing.T) {
	a := lattice.NewSet[intItem](3, 1, 2)
	got := a.Elements()
	assert.Equal(t, []intItem{1, 2, 3}, got)
}

func TestSetCopyIsIndependent(t *testing.T) {
	a := lattice.NewSet[intItem](1, 2)
	b := a.Copy().Add(3)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 3, b.Len())
}

func TestDisjunctiveCompletionBottomIsIdentityForJoin(t *testing.T) {
	bot := lattice.BottomCompletion[intItem]()
	top := lattice.TopCompletion[intItem]([]intItem{1, 2, 3})

	assert.True(t, bot.Join(top).Equal(top))
	assert.True(t, top.Join(bot).Equal(top))
	assert.True(t, bot.Meet(top).Equal(bot))
	assert.True(t, bot.LessEqual(top))
	assert.False(t, top.LessEqual(bot))
}

type pairItem struct{ v int }

func (p pairItem) Equal(o pairItem) bool     { return p.v == o.v }
func (p pairItem) LessEqual(o pairItem) bool { return p.v <= o.v }
func (p pairItem) Join(o pairItem) pairItem {
	if p.v > o.v {
		return p
	}
	return o
}
func (p pairItem) Meet(o pairItem) pairItem {
	if p.v < o.v {
		return p
	}
	return o
}
func (p pairItem) Copy() pairItem { return p }

func TestPairIsComponentwise(t *testing.T) {
	a := lattice.NewPair(pairItem{1}, pairItem{5})
	b := lattice.NewPair(pairItem{2}, pairItem{3})

	joined := a.Join(b)
	assert.Equal(t, 2, joined.First.v)
	assert.Equal(t, 5, joined.Second.v)

	met := a.Meet(b)
	assert.Equal(t, 1, met.First.v)
	assert.Equal(t, 3, met.Second.v)

	assert.True(t, a.LessEqual(lattice.NewPair(pairItem{2}, pairItem{5})))
	assert.False(t, a.LessEqual(b))
}

func TestTupleSetGetAndKey(t *testing.T) {
	vars := []string{"x", "y"}
	tup := lattice.NewTuple(vars, func(string) intItem { return 0 })
	tup = tup.Set("x", 2)

	assert.Equal(t, intItem(2), tup.Get("x"))
	assert.Equal(t, intItem(0), tup.Get("y"))
	assert.Equal(t, "x=c,y=a", tup.Key())
}

func TestTupleAllElementsIsCartesianProduct(t *testing.T) {
	vars := []string{"x", "y"}
	tup := lattice.NewTuple(vars, func(string) boolItem { return false })
	all := tup.AllElements()
	assert.Len(t, all, 4)
}

type boolItem bool

func (b boolItem) Equal(o boolItem) bool  { return b == o }
func (b boolItem) Copy() boolItem         { return b }
func (b boolItem) Key() string {
	if b {
		return "T"
	}
	return "F"
}
func (boolItem) AllElements() []boolItem { return []boolItem{false, true} }
