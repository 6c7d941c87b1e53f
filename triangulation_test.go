package delaunay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangulationTwoPoints(t *testing.T) {
	tri := NewTriangulation([]Point{{0, 0}, {1, 0}}, false)
	tri.Build()

	assert.True(t, tri.Valid())
	assert.Len(t, tri.Edges(), 1)
	assert.Len(t, tri.Triangles(), 0)
}

func TestTriangulationThreeCollinearPoints(t *testing.T) {
	tri := NewTriangulation([]Point{{0, 0}, {1, 0}, {2, 0}}, false)
	tri.Build()

	assert.True(t, tri.Valid())
	assert.Len(t, tri.Edges(), 2)
	assert.Len(t, tri.Triangles(), 0)
}

func TestTriangulationRightTriangle(t *testing.T) {
	tri := NewTriangulation([]Point{{0, 0}, {1, 0}, {0, 1}}, false)
	tri.Build()

	assert.True(t, tri.Valid())
	assert.Len(t, tri.Edges(), 3)
	assert.Len(t, tri.Triangles(), 1)
	assert.InDelta(t, math.Pi/4, tri.MinAngle(), 1e-9)
}

func TestTriangulationUnitSquare(t *testing.T) {
	tri := NewTriangulation([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, false)
	tri.Build()

	assert.True(t, tri.Valid())
	assert.Len(t, tri.Edges(), 5)
	assert.Len(t, tri.Triangles(), 2)
}

func TestTriangulationCocircularPentagon(t *testing.T) {
	pts := make([]Point, 5)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / 5
		pts[i] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}

	tri := NewTriangulation(pts, false)
	tri.Build()

	assert.True(t, tri.Valid())
	triangles := tri.Triangles()
	assert.Len(t, triangles, 3)

	ps := tri.Points()
	for _, face := range triangles {
		a, b, c := ps.At(face.A), ps.At(face.B), ps.At(face.C)
		for i, p := range ps.Points() {
			if i == face.A || i == face.B || i == face.C {
				continue
			}
			assert.True(t, incircle(a, b, c, p) <= 0, "Delaunay property violated for face %v against point %d", face, i)
		}
	}
}

func TestTriangulationDuplicateInputMatchesRightTriangle(t *testing.T) {
	tri := NewTriangulation([]Point{{0, 0}, {0, 0}, {1, 0}, {0, 1}}, true)
	tri.Build()

	assert.True(t, tri.Valid())
	assert.Len(t, tri.Edges(), 3)
	assert.Len(t, tri.Triangles(), 1)
	assert.InDelta(t, math.Pi/4, tri.MinAngle(), 1e-9)
}

func TestTriangulationEmptyInputIsNoop(t *testing.T) {
	tri := NewTriangulation([]Point{{0, 0}}, false)
	tri.Build()
	assert.False(t, tri.Valid())
	assert.Nil(t, tri.Edges())
}

func TestTriangulationRebuildIsIdempotent(t *testing.T) {
	tri := NewTriangulation([]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, false)
	tri.Build()
	first := tri.Edges()

	tri.Build()
	second := tri.Edges()

	assert.Equal(t, first, second)
}

func TestTriangulationMutationInvalidatesAndRebuilds(t *testing.T) {
	tri := NewTriangulation([]Point{{0, 0}, {1, 0}, {0, 1}}, false)
	tri.Build()
	assert.True(t, tri.Valid())

	assert.True(t, tri.AddPoint(Point{1, 1}))
	assert.False(t, tri.Valid())

	tri.Build()
	assert.True(t, tri.Valid())
	assert.Len(t, tri.Triangles(), 2)
}

func TestTriangulationAddRejectsDuplicate(t *testing.T) {
	tri := NewTriangulation([]Point{{0, 0}, {1, 0}}, false)
	assert.False(t, tri.AddPoint(Point{0, 0}))
}

func TestTriangulationDeleteAndUpdateInvalidate(t *testing.T) {
	tri := NewTriangulation([]Point{{0, 0}, {1, 0}, {0, 1}}, false)
	tri.Build()

	tri.UpdatePointAt(0, Point{-1, -1})
	assert.False(t, tri.Valid())

	tri.Build()
	assert.True(t, tri.Valid())

	tri.DeletePointAt(0)
	assert.False(t, tri.Valid())
}

func TestDelaunayPropertyHoldsOnRandomishGrid(t *testing.T) {
	var pts []Point
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			pts = append(pts, Point{X: float64(x) + 0.01*float64(y), Y: float64(y) - 0.02*float64(x)})
		}
	}

	tri := NewTriangulation(pts, false)
	tri.Build()
	assert.True(t, tri.Valid())

	for _, face := range tri.Triangles() {
		a, b, c := pts[face.A], pts[face.B], pts[face.C]
		for i, p := range pts {
			if i == face.A || i == face.B || i == face.C {
				continue
			}
			assert.True(t, incircle(a, b, c, p) <= 1e-9, "Delaunay property violated for face %v against point %d", face, i)
		}
	}
}

func TestVoronoiCellsOneParCellPerTriangle(t *testing.T) {
	tri := NewTriangulation([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, false)
	tri.Build()

	cells := tri.VoronoiCells()
	assert.Len(t, cells, len(tri.Triangles()))

	segs := tri.VoronoiSegments()
	assert.Len(t, segs, 3*len(cells))
}
