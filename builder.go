package delaunay

// builder runs the divide-and-conquer construction described in spec
// section 4.D over a PointStore already sorted in ascending (x, then y)
// order, writing into an EdgeTable sized for the whole point set.
type builder struct {
	points *PointStore
	edges  *EdgeTable
}

// pointCompareEdge compares point index p against the directed half-edge e,
// via the points it currently references in the edge table.
func (b *builder) pointCompareEdge(p, e int) int {
	return pointCompareEdge(b.points.At(p), b.points.At(b.edges.Orig(e)), b.points.At(b.edges.Dest(e)))
}

func (b *builder) incircle(a, o, d, p int) float64 {
	return incircle(b.points.At(a), b.points.At(o), b.points.At(d), b.points.At(p))
}

// triangulate recursively builds a Delaunay triangulation over the point
// range [lo, hi) (indices into b.points) and returns the leftmost outgoing
// edge of the left hull and the rightmost outgoing edge of the right hull,
// i.e. the two edges a caller merging this range with a neighbour needs to
// start its own lower-tangent walk from.
func (b *builder) triangulate(lo, hi int) (ldo, rdo int) {
	n := hi - lo

	switch n {
	case 2:
		e := b.edges.MakeEdge(lo, lo+1)
		return e, b.edges.Sym(e)

	case 3:
		a := b.edges.MakeEdge(lo, lo+1)
		c := b.edges.MakeEdge(lo+1, lo+2)
		b.edges.Splice(b.edges.Sym(a), c)

		cmp := b.pointCompareEdge(lo+2, a)
		switch cmp {
		case 1: // r lies to the right of a: lo,lo+1,lo+2 are in clockwise order
			b.edges.Connect(c, a)
			return a, b.edges.Sym(c)
		case -1: // r lies to the left of a
			base := b.edges.Connect(c, a)
			return b.edges.Sym(base), base
		default: // collinear: three-point chain, no triangle
			return a, b.edges.Sym(c)
		}
	}

	m := (n + 1) / 2
	ldo, ldi := b.triangulate(lo, lo+m)
	rdi, rdo := b.triangulate(lo+m, hi)

	// Lower common tangent: walk ldi and rdi along their respective hulls
	// until the edge from orig(ldi) to orig(rdi) is the lower tangent.
	for {
		if b.pointCompareEdge(b.edges.Orig(rdi), ldi) == 1 {
			ldi = b.edges.Onext(b.edges.Sym(ldi))
		} else if b.pointCompareEdge(b.edges.Orig(ldi), rdi) == -1 {
			rdi = b.edges.Oprev(b.edges.Sym(rdi))
		} else {
			break
		}
	}

	base := b.edges.Connect(b.edges.Sym(ldi), rdi)
	if b.edges.Orig(ldi) == b.edges.Orig(ldo) {
		ldo = base
	}
	if b.edges.Orig(rdi) == b.edges.Orig(rdo) {
		rdo = b.edges.Sym(base)
	}

	// Merge ("zip up"): repeatedly find the next candidate on each side,
	// prune edges that would violate the Delaunay property once merged,
	// and advance base.
	for {
		rcand := b.edges.Onext(b.edges.Sym(base))
		lcand := b.edges.Oprev(base)

		vr := b.pointCompareEdge(b.edges.Dest(rcand), base) == 1
		vl := b.pointCompareEdge(b.edges.Dest(lcand), base) == 1
		if !vr && !vl {
			break
		}

		if vr {
			for b.pointCompareEdge(b.edges.Dest(b.edges.Onext(rcand)), base) == 1 &&
				b.incircle(b.edges.Dest(base), b.edges.Orig(base), b.edges.Dest(rcand), b.edges.Dest(b.edges.Onext(rcand))) > 0 {
				tmp := b.edges.Onext(rcand)
				b.edges.DeleteEdge(rcand)
				rcand = tmp
			}
		}
		if vl {
			for b.pointCompareEdge(b.edges.Dest(b.edges.Oprev(lcand)), base) == 1 &&
				b.incircle(b.edges.Dest(base), b.edges.Orig(base), b.edges.Dest(lcand), b.edges.Dest(b.edges.Oprev(lcand))) > 0 {
				tmp := b.edges.Oprev(lcand)
				b.edges.DeleteEdge(lcand)
				lcand = tmp
			}
		}

		if !vr || (vr && b.incircle(b.edges.Dest(lcand), b.edges.Dest(rcand), b.edges.Orig(rcand), b.edges.Orig(lcand)) > 0) {
			base = b.edges.Connect(lcand, b.edges.Sym(base))
		} else {
			base = b.edges.Connect(b.edges.Sym(base), b.edges.Sym(rcand))
		}
	}

	return ldo, rdo
}
