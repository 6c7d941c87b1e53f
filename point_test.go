package delaunay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointStoreSortAndDedupCollapsesCoincidentPoints(t *testing.T) {
	pts := []Point{{0, 0}, {0, 0}, {1, 0}, {0, 1}}
	s := NewPointStore(pts, true)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, Point{0, 0}, s.At(0))
	assert.Equal(t, Point{0, 1}, s.At(1))
	assert.Equal(t, Point{1, 0}, s.At(2))
}

func TestPointStoreSortWithoutDedupKeepsDuplicates(t *testing.T) {
	pts := []Point{{1, 0}, {0, 0}, {0, 0}}
	s := NewPointStore(pts, false)
	assert.Equal(t, 3, s.Len())

	s.Sort()
	assert.Equal(t, Point{0, 0}, s.At(0))
	assert.Equal(t, Point{0, 0}, s.At(1))
	assert.Equal(t, Point{1, 0}, s.At(2))
}

func TestPointStoreNearestOnEmptyStore(t *testing.T) {
	s := NewPointStore(nil, false)
	assert.Equal(t, NoIndex, s.Nearest(Point{0, 0}))
	assert.True(t, math.IsInf(s.DistanceToNearest(Point{0, 0}), 1))
}

func TestPointStoreNearest(t *testing.T) {
	s := NewPointStore([]Point{{0, 0}, {10, 10}, {1, 1}}, false)
	assert.Equal(t, 2, s.Nearest(Point{1.1, 1.1}))
}

func TestPointStoreAddRejectsWithinMinDist(t *testing.T) {
	s := NewPointStore([]Point{{0, 0}}, false)

	assert.False(t, s.Add(Point{MinDist / 2, 0}))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Add(Point{1, 1}))
	assert.Equal(t, 2, s.Len())
}

func TestPointStoreDeleteAtShiftsTail(t *testing.T) {
	s := NewPointStore([]Point{{0, 0}, {1, 1}, {2, 2}}, false)
	s.DeleteAt(1)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, Point{2, 2}, s.At(1))
}

func TestPointStoreUpdateAt(t *testing.T) {
	s := NewPointStore([]Point{{0, 0}, {1, 1}}, false)
	s.UpdateAt(0, Point{5, 5})
	assert.Equal(t, Point{5, 5}, s.At(0))
}
