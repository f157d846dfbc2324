// Package virtual stores shapes behind an interface. Any type with a
// Perimeter method can join the collection without touching this package,
// at the cost of one heap allocation per shape and an indirect call per
// shape per traversal.
package virtual

import (
	"github.com/osuushi/polybench/dispatch"
	"github.com/osuushi/polybench/fixed"
	"github.com/osuushi/polybench/shape"
)

type Shape interface {
	Perimeter() float64
}

var (
	_ Shape = (*fixed.Triangle)(nil)
	_ Shape = (*fixed.Quadrilateral)(nil)
	_ Shape = (*fixed.Pentagon)(nil)
)

// Each element is the only reference to its own heap-allocated polygon.
type Collection []Shape

func (c *Collection) Append(s Shape) {
	*c = append(*c, s)
}

func (c Collection) Len() int {
	return len(c)
}

func (c Collection) TotalPerimeter() float64 {
	var total float64
	for _, s := range c {
		total += s.Perimeter()
	}
	return total
}

func TotalPerimeter(c Collection) float64 {
	return c.TotalPerimeter()
}

// Allocate a fixed polygon for a validated outline.
func FromOutline(o shape.Outline) Shape {
	p := o.Points
	switch o.Kind {
	case shape.Triangle:
		t := fixed.NewTriangle(p[0], p[1], p[2])
		return &t
	case shape.Quadrilateral:
		q := fixed.NewQuadrilateral(p[0], p[1], p[2], p[3])
		return &q
	case shape.Pentagon:
		pent := fixed.NewPentagon(p[0], p[1], p[2], p[3], p[4])
		return &pent
	default:
		shape.Fatalf("no polygon type for shape kind %v", o.Kind)
		return nil
	}
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
	Name:        "virtual",
	Description: "open interface, one heap object and indirect call per shape",
	Populate: func(pattern shape.Pattern, count int) dispatch.Collection {
		return PopulatePattern(pattern, count)
	},
}
