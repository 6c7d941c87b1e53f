package delaunay

import "github.com/arl/assertgo"

// Triangulation is the handle that owns a PointStore and an EdgeTable. It
// tracks whether the edge table reflects the current point set: any
// mutation to the points invalidates it, and Build recomputes lazily (see
// spec section 4.F, the rebuild controller).
type Triangulation struct {
	points *PointStore
	edges  *EdgeTable
	valid  bool
	ctx    *BuildContext
}

// NewTriangulation creates a handle over pts. removeDuplicates controls
// whether coincident (within MinDist) input points collapse to one
// representative on construction; see PointStore.
func NewTriangulation(pts []Point, removeDuplicates bool) *Triangulation {
	return &Triangulation{
		points: NewPointStore(pts, removeDuplicates),
		ctx:    NewBuildContext(false),
	}
}

// SetVerbose enables or disables progress logging during Build.
func (t *Triangulation) SetVerbose(v bool) { t.ctx = NewBuildContext(v) }

// Valid reports whether the edge table currently reflects the point set.
func (t *Triangulation) Valid() bool { return t.valid }

// Points returns the owned point store.
func (t *Triangulation) Points() *PointStore { return t.points }

// EdgeTable returns the edge table backing the current triangulation, or nil
// if the handle is not valid.
func (t *Triangulation) EdgeTable() *EdgeTable { return t.edges }

// invalidate drops the current edge table and marks the handle as needing
// a rebuild. Called by every point-store mutator.
func (t *Triangulation) invalidate() {
	t.valid = false
	t.edges = nil
}

// AddPoint appends p to the point store, invalidating the triangulation on
// success. Reports whether the point was added (false if a point already
// exists within MinDist).
func (t *Triangulation) AddPoint(p Point) bool {
	if !t.points.Add(p) {
		return false
	}
	t.invalidate()
	return true
}

// DeletePointAt removes the point at index i, invalidating the
// triangulation.
func (t *Triangulation) DeletePointAt(i int) {
	t.points.DeleteAt(i)
	t.invalidate()
}

// UpdatePointAt overwrites the point at index i, invalidating the
// triangulation.
func (t *Triangulation) UpdatePointAt(i int, p Point) {
	t.points.UpdateAt(i, p)
	t.invalidate()
}

// Build computes the Delaunay triangulation of the current point set. A
// no-op if the handle is already valid (rebuild idempotence). A no-op,
// leaving valid false, if fewer than two points are stored.
func (t *Triangulation) Build() {
	if t.valid {
		t.ctx.Logf("build skipped: already valid")
		return
	}
	n := t.points.Len()
	if n < 2 {
		t.ctx.Logf("build skipped: %d points, need at least 2", n)
		return
	}

	t.points.Sort()
	t.edges = NewEdgeTable(capacityFor(n))

	b := &builder{points: t.points, edges: t.edges}
	t.ctx.Logf("triangulating %d points", n)
	b.triangulate(0, n)

	t.validateInvariants()
	t.valid = true
	t.ctx.DumpLog("triangulation build log")
}

// validateInvariants checks, via debug-only assertions, that every live
// vertex's onext orbit closes in a bounded number of steps. A no-op unless
// built with the 'debug' tag (see github.com/arl/assertgo).
func (t *Triangulation) validateInvariants() {
	et := t.edges
	n := et.Len()
	for e := 0; e < n; e++ {
		if et.Discarded(e) {
			continue
		}
		assert.True(et.Sym(et.Sym(e)) == e, "sym(sym(%d)) != %d", e, e)
		assert.True(et.Orig(et.Sym(e)) == et.Dest(e), "orig(sym(%d)) != dest(%d)", e, e)

		cur, steps := e, 0
		for {
			cur = et.Onext(cur)
			steps++
			if cur == e {
				break
			}
			assert.True(steps <= n, "onext orbit starting at edge %d did not close within %d steps", e, n)
		}
	}
}

// Edges returns every live undirected edge of the current triangulation.
func (t *Triangulation) Edges() []UndirectedEdge {
	if !t.valid {
		return nil
	}
	return Edges(t.edges)
}

// Triangles returns every bounded triangular face of the current
// triangulation.
func (t *Triangulation) Triangles() []Triangle {
	if !t.valid {
		return nil
	}
	return Triangles(t.points, t.edges)
}

// MinAngle returns the minimum interior angle over every bounded
// triangular face.
func (t *Triangulation) MinAngle() float64 {
	if !t.valid {
		return 0
	}
	return MinAngle(t.points, t.edges)
}

// VoronoiCells returns the dual Voronoi diagram's cells.
func (t *Triangulation) VoronoiCells() []VoronoiCell {
	if !t.valid {
		return nil
	}
	return VoronoiCells(t.points, t.edges)
}

// VoronoiSegments returns the drawable segments of the dual Voronoi
// diagram.
func (t *Triangulation) VoronoiSegments() []VoronoiSegment {
	if !t.valid {
		return nil
	}
	return VoronoiSegments(t.points, t.edges)
}
