package delaunay

import (
	"math"
	"sort"
)

// MinDist is the minimum Euclidean distance enforced between any two
// stored points, both on initial deduplication and on Add.
const MinDist = 1e-10

// Point is a pair of coordinates in the plane.
type Point struct {
	X, Y float64
}

// squaredDistance returns the squared Euclidean distance between p and q.
func squaredDistance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// less implements the ascending (x, then y) order that the builder
// requires of the sorted point sequence.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// NoIndex is the sentinel index returned by nearest-point lookups on an
// empty store.
const NoIndex = -1

// PointStore owns the dynamically sized, ordered sequence of points that
// backs a Triangulation. It never reorders itself except through an
// explicit sort; callers (the rebuild controller) are responsible for
// invalidating any dependent triangulation on mutation.
type PointStore struct {
	points []Point
}

// NewPointStore builds a point store from pts. When removeDuplicates is
// set, the input is sorted and runs of points within MinDist of one
// another collapse to a single representative, so the result carries no
// two points closer than MinDist.
func NewPointStore(pts []Point, removeDuplicates bool) *PointStore {
	s := &PointStore{points: append([]Point(nil), pts...)}
	if removeDuplicates {
		s.sortAndDedup()
	}
	return s
}

// sortAndDedup sorts the store in ascending (x, then y) order and drops
// every point that lies within MinDist of a point already kept.
func (s *PointStore) sortAndDedup() {
	sort.Slice(s.points, func(i, j int) bool { return s.points[i].less(s.points[j]) })

	out := s.points[:0]
	for _, p := range s.points {
		// Sorted by x, so only kept points whose x is within MinDist of p.X
		// can be within MinDist of p.
		dup := false
		for k := len(out) - 1; k >= 0 && p.X-out[k].X < MinDist; k-- {
			if squaredDistance(out[k], p) < MinDist*MinDist {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		out = append(out, p)
	}
	s.points = out
}

// Sort reorders the store in ascending (x, then y) order, as required
// before the builder is invoked. It does not deduplicate.
func (s *PointStore) Sort() {
	sort.Slice(s.points, func(i, j int) bool { return s.points[i].less(s.points[j]) })
}

// Len returns the number of stored points.
func (s *PointStore) Len() int { return len(s.points) }

// At returns the point at index i.
func (s *PointStore) At(i int) Point { return s.points[i] }

// Points returns a read-only view of the stored points. The slice aliases
// the store's backing array and must not be mutated by callers.
func (s *PointStore) Points() []Point { return s.points }

// Nearest returns the index of the point closest to q, or NoIndex if the
// store is empty.
func (s *PointStore) Nearest(q Point) int {
	if len(s.points) == 0 {
		return NoIndex
	}
	best := 0
	bestDist := squaredDistance(s.points[0], q)
	for i := 1; i < len(s.points); i++ {
		d := squaredDistance(s.points[i], q)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// DistanceToNearest returns the squared distance from q to the nearest
// stored point, or +Inf if the store is empty.
func (s *PointStore) DistanceToNearest(q Point) float64 {
	i := s.Nearest(q)
	if i == NoIndex {
		return math.Inf(1)
	}
	return squaredDistance(s.points[i], q)
}

// Add appends p to the store and reports whether it was added. Add rejects
// p (returning false, with no other effect) when the nearest existing
// point is within MinDist.
func (s *PointStore) Add(p Point) bool {
	if len(s.points) > 0 && s.DistanceToNearest(p) < MinDist*MinDist {
		return false
	}
	s.points = append(s.points, p)
	return true
}

// DeleteAt removes the point at index i, shifting the tail down one slot.
func (s *PointStore) DeleteAt(i int) {
	s.points = append(s.points[:i], s.points[i+1:]...)
}

// UpdateAt overwrites the coordinates of the point at index i.
func (s *PointStore) UpdateAt(i int, p Point) {
	s.points[i] = p
}
