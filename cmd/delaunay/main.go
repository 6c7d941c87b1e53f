// Command delaunay triangulates a set of points, either read from a file
// or randomly generated, and writes the result to a file and/or an
// animated terminal preview.
package main

import "github.com/jeertmans/DelaunayTriangulation/cmd/delaunay/cmd"

func main() {
	cmd.Execute()
}
