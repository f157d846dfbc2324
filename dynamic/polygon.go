// Package dynamic holds a polygon whose vertex count is only known at runtime.
package dynamic

import "github.com/osuushi/polybench/geom"

type Polygon struct {
	Vertices []geom.Vector2
	Lines    []geom.Line
}

// Build a polygon from any number of points. Nothing is validated; passing
// fewer than three points gives a degenerate polygon, and a single point gives
// one zero length line back to itself.
//
// The points are copied into storage the polygon owns before any line is
// made, and the lines are computed from that copy. Mutating the caller's slice
// afterwards has no effect on the polygon.
func New(points []geom.Vector2) Polygon {
	vertices := make([]geom.Vector2, len(points))
	copy(vertices, points)
	p := Polygon{
		Vertices: vertices,
		Lines:    make([]geom.Line, len(vertices)),
	}
	geom.ConnectLines(p.Lines, p.Vertices)
	return p
}

func (p *Polygon) Perimeter() float64 {
	return geom.Perimeter(p.Lines)
}
