// Package render draws a Delaunay triangulation to the terminal as an
// animated ASCII scatter plot, using raw-mode keystroke capture to let the
// viewer quit early. This is the CLI's external rendering collaborator
// (spec section 1: "interactive rendering, keystroke capture, and
// on-screen animation" is explicitly out of the triangulation core).
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	delaunay "github.com/jeertmans/DelaunayTriangulation"
)

// Animator replays a completed triangulation's points, then its edges, as
// a sequence of terminal frames over approximately the requested
// duration. It never drives incremental re-triangulation: only the
// presentation of one already-built edge table is animated (see
// SPEC_FULL.md section 12).
type Animator struct {
	Out      io.Writer
	Width    int
	Height   int
	Duration time.Duration
}

// NewAnimator returns an Animator sized to the current terminal, or a
// reasonable fallback (80x24) if the terminal size can't be read (e.g.
// output is redirected to a file).
func NewAnimator(duration time.Duration) *Animator {
	w, h := 80, 24
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if cw, ch, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			w, h = cw, ch-1
		}
	}
	return &Animator{Out: os.Stdout, Width: w, Height: h, Duration: duration}
}

// Play draws points fading in, then edges, stopping early if stop is
// closed (driven by a keypress watcher; see WatchForQuit).
func (a *Animator) Play(points []delaunay.Point, edges []delaunay.UndirectedEdge, stop <-chan struct{}) {
	minX, minY, maxX, maxY := bounds(points)

	frames := make([]func(g *grid), 0, len(points)+len(edges))
	for _, p := range points {
		p := p
		frames = append(frames, func(g *grid) { g.plot(p, '*') })
	}
	for _, e := range edges {
		e := e
		frames = append(frames, func(g *grid) { g.line(points[e.A], points[e.B]) })
	}
	if len(frames) == 0 {
		return
	}

	perFrame := a.Duration / time.Duration(len(frames))
	if perFrame <= 0 {
		perFrame = time.Millisecond
	}

	g := newGrid(a.Width, a.Height, minX, minY, maxX, maxY)
	for _, draw := range frames {
		select {
		case <-stop:
			a.render(g)
			return
		default:
		}
		draw(g)
		a.render(g)
		time.Sleep(perFrame)
	}
}

func (a *Animator) render(g *grid) {
	fmt.Fprint(a.Out, "\x1b[H\x1b[2J")
	for _, row := range g.cells {
		fmt.Fprintln(a.Out, string(row))
	}
}

func bounds(points []delaunay.Point) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 1, 1
	}
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minX == maxX {
		maxX = minX + 1
	}
	if minY == maxY {
		maxY = minY + 1
	}
	return minX, minY, maxX, maxY
}

// grid is a fixed-size character canvas that plot/line rasterise onto.
type grid struct {
	cells                  [][]rune
	w, h                   int
	minX, minY, maxX, maxY float64
}

func newGrid(w, h int, minX, minY, maxX, maxY float64) *grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	cells := make([][]rune, h)
	for i := range cells {
		row := make([]rune, w)
		for j := range row {
			row[j] = ' '
		}
		cells[i] = row
	}
	return &grid{cells: cells, w: w, h: h, minX: minX, minY: minY, maxX: maxX, maxY: maxY}
}

func (g *grid) toCell(p delaunay.Point) (int, int) {
	cx := int((p.X - g.minX) / (g.maxX - g.minX) * float64(g.w-1))
	cy := int((p.Y - g.minY) / (g.maxY - g.minY) * float64(g.h-1))
	return clamp(cx, 0, g.w-1), clamp(g.h-1-clamp(cy, 0, g.h-1), 0, g.h-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (g *grid) plot(p delaunay.Point, r rune) {
	x, y := g.toCell(p)
	g.cells[y][x] = r
}

// line rasterises a->b with a simple DDA walk; good enough for a coarse
// terminal canvas, not meant to be anti-aliased.
func (g *grid) line(a, b delaunay.Point) {
	x0, y0 := g.toCell(a)
	x1, y1 := g.toCell(b)
	dx := x1 - x0
	dy := y1 - y0
	steps := dx
	if dy > steps {
		steps = dy
	}
	if -dx > steps {
		steps = -dx
	}
	if -dy > steps {
		steps = -dy
	}
	if steps == 0 {
		g.cells[y0][x0] = '.'
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(float64(dx)*t)
		y := y0 + int(float64(dy)*t)
		if g.cells[y][x] == ' ' {
			g.cells[y][x] = '.'
		}
	}
}

// WatchForQuit puts stdin into raw mode and closes stop as soon as a key
// (any byte other than zero) is pressed. The caller runs the returned
// restore function to put the terminal back into its previous state. When
// stdin is not a terminal or raw mode cannot be entered, stop is returned
// already closed and restore does nothing. Used so the animation can be
// interrupted without waiting for the full duration.
func WatchForQuit() (stop chan struct{}, restore func()) {
	stop = make(chan struct{})
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		close(stop)
		return stop, func() {}
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		close(stop)
		return stop, func() {}
	}
	restore = func() { term.Restore(fd, oldState) }

	go func() {
		r := bufio.NewReader(os.Stdin)
		b, err := r.ReadByte()
		if err == nil && b != 0 {
			close(stop)
		}
	}()
	return stop, restore
}
