package ioformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	delaunay "github.com/jeertmans/DelaunayTriangulation"
)

func TestReadPointsParsesCountAndValues(t *testing.T) {
	input := "3\n0 0\n1.5 -2\n10 10\n"
	pts, err := ReadPoints(strings.NewReader(input))

	assert.NoError(t, err)
	assert.Equal(t, []delaunay.Point{{0, 0}, {1.5, -2}, {10, 10}}, pts)
}

func TestReadPointsRejectsTruncatedInput(t *testing.T) {
	input := "3\n0 0\n"
	_, err := ReadPoints(strings.NewReader(input))
	assert.Error(t, err)
}

func TestReadPointsRejectsEmptyInput(t *testing.T) {
	_, err := ReadPoints(strings.NewReader(""))
	assert.Error(t, err)
}

func TestWriteTriangulationFormat(t *testing.T) {
	points := []delaunay.Point{{0, 0}, {1, 0}, {0, 1}}
	edges := []delaunay.UndirectedEdge{{A: 0, B: 1}, {A: 1, B: 2}}

	var buf bytes.Buffer
	err := WriteTriangulation(&buf, points, edges)
	assert.NoError(t, err)

	want := "3 4\n0 0\n1 0\n0 1\n0 0\n1 0\n1 0\n0 1\n"
	assert.Equal(t, want, buf.String())
}

// ReadPoints reads the point-file format (a single count header), not the
// "N M" header WriteTriangulation emits, so the read side parses a point
// file listing the same points.
func TestWriteWithoutEdgesThenReadPointFileOfSamePoints(t *testing.T) {
	points := []delaunay.Point{{0, 0}, {2, 3}}
	var buf bytes.Buffer
	assert.NoError(t, WriteTriangulation(&buf, points, nil))

	var pointBuf bytes.Buffer
	pointBuf.WriteString("2\n0 0\n2 3\n")

	got, err := ReadPoints(&pointBuf)
	assert.NoError(t, err)
	assert.Equal(t, points, got)
}
