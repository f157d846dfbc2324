// Package variant stores shapes as a closed tagged union of the fixed-arity
// polygons, held by value in one contiguous slice.
package variant

import (
	"github.com/osuushi/polybench/dispatch"
	"github.com/osuushi/polybench/fixed"
	"github.com/osuushi/polybench/shape"
)

// Shape is exactly one of the fixed polygons, identified by kind. Go has no
// untagged unions, so each variant gets its own slot and only the slot named
// by kind is populated. The zero Shape has no kind, and visiting it panics.
type Shape struct {
	kind shape.Kind
	tri  fixed.Triangle
	quad fixed.Quadrilateral
	pent fixed.Pentagon
}

func FromTriangle(t fixed.Triangle) Shape           { return Shape{kind: shape.Triangle, tri: t} }
func FromQuadrilateral(q fixed.Quadrilateral) Shape { return Shape{kind: shape.Quadrilateral, quad: q} }
func FromPentagon(p fixed.Pentagon) Shape           { return Shape{kind: shape.Pentagon, pent: p} }

// Build the variant for a validated outline.
func FromOutline(o shape.Outline) Shape {
	p := o.Points
	switch o.Kind {
	case shape.Triangle:
		return FromTriangle(fixed.NewTriangle(p[0], p[1], p[2]))
	case shape.Quadrilateral:
		return FromQuadrilateral(fixed.NewQuadrilateral(p[0], p[1], p[2], p[3]))
	case shape.Pentagon:
		return FromPentagon(fixed.NewPentagon(p[0], p[1], p[2], p[3], p[4]))
	default:
		shape.Fatalf("no variant for shape kind %v", o.Kind)
		return Shape{}
	}
}

func (s *Shape) Kind() shape.Kind {
	return s.kind
}

// A Visitor handles every variant. Adding a kind means adding a method here,
// after which every visitor that lacks it stops compiling.
type Visitor[R any] interface {
	Triangle(*fixed.Triangle) R
	Quadrilateral(*fixed.Quadrilateral) R
	Pentagon(*fixed.Pentagon) R
}

func Visit[R any, V Visitor[R]](s *Shape, v V) R {
	switch s.kind {
	case shape.Triangle:
		return v.Triangle(&s.tri)
	case shape.Quadrilateral:
		return v.Quadrilateral(&s.quad)
	case shape.Pentagon:
		return v.Pentagon(&s.pent)
	}
	shape.Fatalf("unhandled shape kind %v", s.kind)
	panic("unreachable")
}

type perimeterVisitor struct{}

func (perimeterVisitor) Triangle(t *fixed.Triangle) float64           { return t.Perimeter() }
func (perimeterVisitor) Quadrilateral(q *fixed.Quadrilateral) float64 { return q.Perimeter() }
func (perimeterVisitor) Pentagon(p *fixed.Pentagon) float64           { return p.Perimeter() }

func Perimeter(s *Shape) float64 {
	return Visit[float64](s, perimeterVisitor{})
}

type Collection []Shape

func (c *Collection) Append(s Shape) {
	*c = append(*c, s)
}

func (c Collection) Len() int {
	return len(c)
}

func (c Collection) TotalPerimeter() float64 {
	var total float64
	for i := range c {
		total += Perimeter(&c[i])
	}
	return total
}

func TotalPerimeter(c Collection) float64 {
	return c.TotalPerimeter()
}

func Populate(count int) Collection {
	return PopulatePattern(shape.DefaultPattern(), count)
}

func PopulatePattern(pattern shape.Pattern, count int) Collection {
	shapes := make(Collection, 0, pattern.Shapes(count))
	for i := 0; i < count; i++ {
		for _, outline := range pattern {
			shapes.Append(FromOutline(outline))
		}
	}
	return shapes
}

var Strategy = dispatch.Strategy{
	Name:        "variant",
	Description: "closed tagged union held by value, exhaustive visitor",
	Populate: func(pattern shape.Pattern, count int) dispatch.Collection {
		return PopulatePattern(pattern, count)
	},
}
