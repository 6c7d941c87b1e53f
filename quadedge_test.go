package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeEdgeInitialState(t *testing.T) {
	et := NewEdgeTable(capacityFor(2))
	e := et.MakeEdge(0, 1)
	s := et.Sym(e)

	assert.Equal(t, s, et.Sym(e))
	assert.Equal(t, e, et.Sym(s))
	assert.Equal(t, 0, et.Orig(e))
	assert.Equal(t, 1, et.Dest(e))
	assert.Equal(t, 1, et.Orig(s))
	assert.Equal(t, 0, et.Dest(s))

	assert.Equal(t, e, et.Onext(e))
	assert.Equal(t, e, et.Oprev(e))
	assert.False(t, et.Discarded(e))
	assert.False(t, et.Discarded(s))
}

func TestSpliceMergesDisjointOrbits(t *testing.T) {
	et := NewEdgeTable(capacityFor(3))
	a := et.MakeEdge(0, 1)
	b := et.MakeEdge(0, 2)

	et.Splice(a, b)

	assert.Equal(t, b, et.Onext(a))
	assert.Equal(t, a, et.Onext(b))
	assert.Equal(t, b, et.Oprev(a))
	assert.Equal(t, a, et.Oprev(b))
}

func TestSpliceIsNoopOnSameEdge(t *testing.T) {
	et := NewEdgeTable(capacityFor(2))
	e := et.MakeEdge(0, 1)
	et.Splice(e, e)
	assert.Equal(t, e, et.Onext(e))
}

func TestConnectCreatesEdgeBetweenDestAndOrig(t *testing.T) {
	et := NewEdgeTable(capacityFor(3))
	a := et.MakeEdge(0, 1)
	b := et.MakeEdge(1, 2)
	et.Splice(et.Sym(a), b)

	e := et.Connect(a, b)
	assert.Equal(t, et.Dest(a), et.Orig(e))
	assert.Equal(t, et.Orig(b), et.Dest(e))
}

func TestDeleteEdgeMarksBothHalvesDiscarded(t *testing.T) {
	et := NewEdgeTable(capacityFor(2))
	e := et.MakeEdge(0, 1)
	s := et.Sym(e)

	et.DeleteEdge(e)
	assert.True(t, et.Discarded(e))
	assert.True(t, et.Discarded(s))
}

func TestMakeEdgeBeyondCapacityPanics(t *testing.T) {
	et := NewEdgeTable(2)
	et.MakeEdge(0, 1)

	assert.Panics(t, func() { et.MakeEdge(0, 1) })
}

func TestCapacityForSmallN(t *testing.T) {
	assert.Equal(t, 4, capacityFor(0))
	assert.Equal(t, 4, capacityFor(1))
	assert.True(t, capacityFor(100) > 0)
}
