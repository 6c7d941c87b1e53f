package delaunay

import "math"

// outsideFace is the sentinel a Voronoi neighbor takes when the adjacent
// triangle is the unbounded outer face rather than a real triangle.
const outsideFace = -1

// UndirectedEdge is one undirected edge of the triangulation, referencing
// its two endpoints by point-store index.
type UndirectedEdge struct {
	A, B int
}

// Triangle is one bounded triangular face, referencing its three vertices
// by point-store index in the order they were encountered walking the
// face's edge cycle.
type Triangle struct {
	A, B, C int
}

// VoronoiCell is the dual of one bounded triangular face: a Voronoi
// vertex (Center) at the triangle's circumcenter, and the index (into the
// same slice this cell came from) of the neighboring cell across each of
// the triangle's three edges, or outsideFace if that edge borders the
// unbounded face.
type VoronoiCell struct {
	Center     Point
	Triangle   Triangle
	Neighbors  [3]int
	edgeOfSide [3]int // edge record feeding Neighbors[i], used to build rays to the outside
}

// faceWalk invokes visit once per bounded triangular face and once for the
// unbounded outer face, in the order spec section 4.E describes: starting
// from each unvisited live edge record, the face cycle e <- sym(onext(e))
// is walked and marked visited. The outer face is the one and only cycle
// along which pointCompareEdge(dest(onext(e)), e) == +1 holds for the
// starting edge. visit receives the ordered vertex indices of the face
// (orig of each edge walked) and the ordered edge records themselves;
// isOuter reports whether this is the unbounded face.
func faceWalk(ps *PointStore, et *EdgeTable, visit func(verts []int, edges []int, isOuter bool)) {
	n := et.Len()
	visited := make([]bool, n)
	outerFound := false

	for i := 0; i < n; i++ {
		if et.Discarded(i) || visited[i] {
			continue
		}

		isOuter := !outerFound && pointCompareEdge(ps.At(et.Dest(et.Onext(i))), ps.At(et.Orig(i)), ps.At(et.Dest(i))) == 1

		var verts, edges []int
		e := i
		for {
			visited[e] = true
			verts = append(verts, et.Orig(e))
			edges = append(edges, e)
			e = et.Sym(et.Onext(e))
			if e == i {
				break
			}
		}

		if isOuter {
			outerFound = true
		}
		visit(verts, edges, isOuter)
	}
}

// Edges returns every live undirected edge, i.e. one entry per pair of
// symmetric half-edges that has not been deleted.
func Edges(et *EdgeTable) []UndirectedEdge {
	var out []UndirectedEdge
	for e := 0; e+1 < et.Len(); e += 2 {
		if et.Discarded(e) {
			continue
		}
		out = append(out, UndirectedEdge{A: et.Orig(e), B: et.Dest(e)})
	}
	return out
}

// Triangles returns every bounded triangular face.
func Triangles(ps *PointStore, et *EdgeTable) []Triangle {
	var out []Triangle
	faceWalk(ps, et, func(verts []int, edges []int, isOuter bool) {
		if isOuter {
			return
		}
		if len(verts) != 3 {
			return
		}
		out = append(out, Triangle{A: verts[0], B: verts[1], C: verts[2]})
	})
	return out
}

// interiorAngle computes the interior angle at the shared vertex of edges
// e (a->b) and f (b->c), as the arc-cosine of the normalised dot product
// of e's direction and f's reversed direction.
func interiorAngle(a, b, c Point) float64 {
	ex, ey := b.X-a.X, b.Y-a.Y
	fx, fy := c.X-b.X, c.Y-b.Y
	num := -(ex*fx + ey*fy)
	den := math.Hypot(ex, ey) * math.Hypot(fx, fy)
	return math.Acos(num / den)
}

// MinAngle returns the minimum interior angle over every bounded
// triangular face, or +Inf if there are no bounded faces.
func MinAngle(ps *PointStore, et *EdgeTable) float64 {
	min := math.Inf(1)
	faceWalk(ps, et, func(verts []int, edges []int, isOuter bool) {
		if isOuter || len(verts) < 3 {
			return
		}
		for i := 0; i < len(verts); i++ {
			a := ps.At(verts[i])
			b := ps.At(verts[(i+1)%len(verts)])
			c := ps.At(verts[(i+2)%len(verts)])
			angle := interiorAngle(a, b, c)
			if angle < min {
				min = angle
			}
		}
	})
	return min
}

// voronoiRayFactor is the hard-coded extension used to draw a Voronoi
// edge that borders the unbounded face as a finite ray instead of an
// infinite line; purely a rendering convenience, not a property of the
// dual graph itself (see design notes).
const voronoiRayFactor = 100.0

// VoronoiCells computes the dual Voronoi diagram: one cell per bounded
// triangular face, carrying its circumcenter and the index of the
// adjacent cell across each of its three edges (outsideFace if that edge
// borders the unbounded face).
func VoronoiCells(ps *PointStore, et *EdgeTable) []VoronoiCell {
	var cells []VoronoiCell
	edgeToCell := make(map[int]int) // edge record -> cell index, for edges inside a bounded face

	faceWalk(ps, et, func(verts []int, edges []int, isOuter bool) {
		if isOuter || len(verts) != 3 {
			return
		}
		center, _ := circumcenter(ps.At(verts[0]), ps.At(verts[1]), ps.At(verts[2]))
		idx := len(cells)
		for _, e := range edges {
			edgeToCell[e] = idx
		}
		cells = append(cells, VoronoiCell{
			Center:     center,
			Triangle:   Triangle{A: verts[0], B: verts[1], C: verts[2]},
			edgeOfSide: [3]int{edges[0], edges[1], edges[2]},
		})
	})

	for i := range cells {
		for side, e := range cells[i].edgeOfSide {
			if nb, ok := edgeToCell[et.Sym(e)]; ok {
				cells[i].Neighbors[side] = nb
			} else {
				cells[i].Neighbors[side] = outsideFace
			}
		}
	}
	return cells
}

// VoronoiSegment is one drawable segment of the Voronoi diagram: either a
// bounded edge between two adjacent cell centres, or a ray from a cell
// centre out past the convex hull.
type VoronoiSegment struct {
	P1, P2 Point
}

// VoronoiSegments emits one segment per (cell, side) pair: a line between
// adjacent centres for interior adjacencies, or a ray projected through
// the hull edge and extended by voronoiRayFactor for adjacencies against
// the unbounded face.
func VoronoiSegments(ps *PointStore, et *EdgeTable) []VoronoiSegment {
	cells := VoronoiCells(ps, et)
	segs := make([]VoronoiSegment, 0, 3*len(cells))

	for _, cell := range cells {
		for side, nb := range cell.Neighbors {
			p1 := cell.Center
			if nb != outsideFace {
				segs = append(segs, VoronoiSegment{P1: p1, P2: cells[nb].Center})
				continue
			}

			e := cell.edgeOfSide[side]
			a := ps.At(et.Orig(e))
			c := ps.At(et.Dest(e))

			var proj Point
			dx := c.X - a.X
			if dx == 0 {
				proj = Point{X: a.X, Y: p1.Y}
			} else {
				m := (c.Y - a.Y) / dx
				p := a.Y - a.X*m
				det := 1.0 / (1.0 + m*m)
				proj = Point{
					X: (p1.X + m*(p1.Y-p)) * det,
					Y: (p + m*(m*p1.Y+p1.X)) * det,
				}
			}

			factor := voronoiRayFactor
			if orient2d(p1, a, c) > 0 {
				factor = -factor
			}
			p2 := Point{X: p1.X + factor*(proj.X-p1.X), Y: p1.Y + factor*(proj.Y-p1.Y)}
			segs = append(segs, VoronoiSegment{P1: p1, P2: p2})
		}
	}
	return segs
}
