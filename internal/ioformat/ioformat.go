// Package ioformat reads and writes the plain-text point/line files
// described in spec section 6 ("Persistent output format"): ASCII, %d for
// counts, coordinates as the shortest decimal that parses back to the same
// float64 (strconv 'f' format, not a fixed six-digit %lf), single spaces
// between values, \n-terminated lines.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	delaunay "github.com/jeertmans/DelaunayTriangulation"
)

// ReadPoints reads a point file: first line is the point count, each
// subsequent line is two space-separated decimal numbers.
func ReadPoints(r io.Reader) ([]delaunay.Point, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("ioformat: empty input")
	}
	n, err := strconv.Atoi(trimFields(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("ioformat: parsing point count: %w", err)
	}

	pts := make([]delaunay.Point, 0, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("ioformat: expected %d points, got %d", n, i)
		}
		var x, y float64
		if _, err := fmt.Sscanf(sc.Text(), "%g %g", &x, &y); err != nil {
			return nil, fmt.Errorf("ioformat: parsing point %d: %w", i, err)
		}
		pts = append(pts, delaunay.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading input: %w", err)
	}
	return pts, nil
}

func trimFields(s string) string {
	var start, end int
	for start = 0; start < len(s) && (s[start] == ' ' || s[start] == '\t' || s[start] == '\r'); start++ {
	}
	for end = len(s); end > start && (s[end-1] == ' ' || s[end-1] == '\t' || s[end-1] == '\r'); end-- {
	}
	return s[start:end]
}

// WriteTriangulation writes: first line "N M" (point count, line-point
// count); then N lines of "x y" (points); then M lines of "x y" (pairs of
// endpoints, two consecutive lines per edge).
func WriteTriangulation(w io.Writer, points []delaunay.Point, edges []delaunay.UndirectedEdge) error {
	bw := bufio.NewWriter(w)

	lineCount := 2 * len(edges)
	if _, err := fmt.Fprintf(bw, "%d %d\n", len(points), lineCount); err != nil {
		return err
	}
	for _, p := range points {
		if err := writePoint(bw, p); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if err := writePoint(bw, points[e.A]); err != nil {
			return err
		}
		if err := writePoint(bw, points[e.B]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writePoint(w io.Writer, p delaunay.Point) error {
	_, err := fmt.Fprintf(w, "%s %s\n",
		strconv.FormatFloat(p.X, 'f', -1, 64),
		strconv.FormatFloat(p.Y, 'f', -1, 64))
	return err
}
