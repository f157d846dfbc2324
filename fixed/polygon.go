// Package fixed holds polygons whose vertex count is part of the type. Each
// kind has a constructor that takes exactly that many points, so building a
// triangle from four points is a compile error rather than a runtime one.
package fixed

import "github.com/osuushi/polybench/geom"

type Triangle struct {
	Vertices [3]geom.Vector2
	Lines    [3]geom.Line
}

type Quadrilateral struct {
	Vertices [4]geom.Vector2
	Lines    [4]geom.Line
}

type Pentagon struct {
	Vertices [5]geom.Vector2
	Lines    [5]geom.Line
}

// The lines are connected from the struct's own vertex array, after the
// vertices have been stored.

func NewTriangle(a, b, c geom.Vector2) Triangle {
	t := Triangle{Vertices: [3]geom.Vector2{a, b, c}}
	geom.ConnectLines(t.Lines[:], t.Vertices[:])
	return t
}

func NewQuadrilateral(a, b, c, d geom.Vector2) Quadrilateral {
	q := Quadrilateral{Vertices: [4]geom.Vector2{a, b, c, d}}
	geom.ConnectLines(q.Lines[:], q.Vertices[:])
	return q
}

func NewPentagon(a, b, c, d, e geom.Vector2) Pentagon {
	p := Pentagon{Vertices: [5]geom.Vector2{a, b, c, d, e}}
	geom.ConnectLines(p.Lines[:], p.Vertices[:])
	return p
}

func (t *Triangle) Perimeter() float64      { return geom.Perimeter(t.Lines[:]) }
func (q *Quadrilateral) Perimeter() float64 { return geom.Perimeter(q.Lines[:]) }
func (p *Pentagon) Perimeter() float64      { return geom.Perimeter(p.Lines[:]) }
