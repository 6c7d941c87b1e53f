// Package delaunay computes the planar Delaunay triangulation of a set of
// 2D points using the divide-and-conquer algorithm of Guibas and Stolfi,
// built on a quad-edge topological data structure.
//
// The point store (PointStore), the edge table (quad-edge topology) and the
// builder are owned by a single Triangulation handle. Mutating the point
// store invalidates the handle; Build recomputes lazily.
package delaunay
