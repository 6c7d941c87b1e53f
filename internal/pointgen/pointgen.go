// Package pointgen generates random point sets for the Delaunay CLI,
// grounded on the three distributions in the original source's inputs.c:
// uniform, a Gaussian mixture ("normal"), and a smoothed random polygon.
package pointgen

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	delaunay "github.com/jeertmans/DelaunayTriangulation"
)

// Distribution names the -p CLI flag accepts.
type Distribution string

const (
	Normal        Distribution = "normal"
	Uniform       Distribution = "uniform"
	UniformCircle Distribution = "uniform-circle"
	Polygon       Distribution = "polygon"
)

// GenerateUniform returns n points drawn uniformly from [-a/2, a/2] x [-b/2, b/2].
func GenerateUniform(rng *rand.Rand, n int, a, b float64) []delaunay.Point {
	ux := distuv.Uniform{Min: -a / 2, Max: a / 2, Src: rng}
	uy := distuv.Uniform{Min: -b / 2, Max: b / 2, Src: rng}
	pts := make([]delaunay.Point, n)
	for i := range pts {
		pts[i] = delaunay.Point{X: ux.Rand(), Y: uy.Rand()}
	}
	return pts
}

// GenerateUniformCircle returns n points drawn uniformly from the disk of
// radius min(a,b)/2, using polar rejection-free sampling (sqrt of a
// uniform radius squared keeps the area density uniform).
func GenerateUniformCircle(rng *rand.Rand, n int, a, b float64) []delaunay.Point {
	radius := a
	if b < radius {
		radius = b
	}
	radius /= 2

	uAngle := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: rng}
	uRadius := distuv.Uniform{Min: 0, Max: 1, Src: rng}
	pts := make([]delaunay.Point, n)
	for i := range pts {
		r := radius * math.Sqrt(uRadius.Rand())
		theta := uAngle.Rand()
		pts[i] = delaunay.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	return pts
}

// GenerateNormal returns n points drawn from a mixture of 1 to 6 Gaussian
// centroids placed uniformly in the plane, mirroring random_points in the
// original source's inputs.c.
func GenerateNormal(rng *rand.Rand, n int) []delaunay.Point {
	nCentroids := 1 + rng.Intn(6)
	spread := 0.7 * (1.0 - 1.0/float64(nCentroids))

	type centroid struct {
		mu    delaunay.Point
		sigma delaunay.Point
	}
	centroids := make([]centroid, nCentroids)
	uPos := distuv.Uniform{Min: -spread, Max: spread, Src: rng}
	uSigma := distuv.Uniform{Min: 0.1, Max: 0.4, Src: rng}
	for i := range centroids {
		centroids[i] = centroid{
			mu:    delaunay.Point{X: uPos.Rand(), Y: uPos.Rand()},
			sigma: delaunay.Point{X: uSigma.Rand(), Y: uSigma.Rand()},
		}
	}

	pts := make([]delaunay.Point, n)
	for i := range pts {
		c := centroids[i%nCentroids]
		nx := distuv.Normal{Mu: c.mu.X, Sigma: c.sigma.X, Src: rng}
		ny := distuv.Normal{Mu: c.mu.Y, Sigma: c.sigma.Y, Src: rng}
		pts[i] = delaunay.Point{X: nx.Rand(), Y: ny.Rand()}
	}
	return pts
}

// pseudoangle returns a monotonic-in-true-angle substitute for atan2,
// cheaper to compute and sufficient for sorting points by direction. See
// https://stackoverflow.com/questions/16542042, also the source this CLI
// generator is grounded on.
func pseudoangle(dx, dy float64) float64 {
	p := dx / (math.Abs(dx) + math.Abs(dy))
	if dy < 0 {
		return 3.0 + p
	}
	return 1.0 - p
}

// GeneratePolygon returns n points forming a smoothed random polygon: n
// Gaussian-distributed points sorted by angle around the origin, then
// relaxed by nSmooth passes of 3-point averaging.
func GeneratePolygon(rng *rand.Rand, n, nSmooth int) []delaunay.Point {
	sigmaX := rng.Float64()
	sigmaY := rng.Float64()

	nx := distuv.Normal{Mu: 0, Sigma: sigmaX, Src: rng}
	ny := distuv.Normal{Mu: 0, Sigma: sigmaY, Src: rng}

	pts := make([]delaunay.Point, n)
	for i := range pts {
		pts[i] = delaunay.Point{X: nx.Rand(), Y: ny.Rand()}
	}

	sort.Slice(pts, func(i, j int) bool {
		return pseudoangle(pts[j].X, pts[j].Y) < pseudoangle(pts[i].X, pts[i].Y)
	})

	for s := 0; s < nSmooth; s++ {
		start := rng.Intn(n)
		for i := 1; i < n-1; i++ {
			cur := (start + i) % n
			prev := (start + i + n - 1) % n
			next := (start + i + 1) % n
			pts[cur].X = (2*pts[cur].X + pts[prev].X + pts[next].X) * 0.25
			pts[cur].Y = (2*pts[cur].Y + pts[prev].Y + pts[next].Y) * 0.25
		}
	}
	return pts
}

// Generate dispatches to the generator named by dist.
func Generate(dist Distribution, rng *rand.Rand, n int, a, b float64, smooth int) []delaunay.Point {
	switch dist {
	case Uniform:
		return GenerateUniform(rng, n, a, b)
	case UniformCircle:
		return GenerateUniformCircle(rng, n, a, b)
	case Polygon:
		return GeneratePolygon(rng, n, smooth)
	default:
		return GenerateNormal(rng, n)
	}
}
