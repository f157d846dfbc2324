// Package uniform erases shape arity: every shape is a dynamic.Polygon, and
// the collection is a contiguous slice of them. Perimeter is a direct method
// call, with no dispatch of any kind.
package uniform

import (
	"github.com/osuushi/polybench/dispatch"
	"github.com/osuushi/polybench/dynamic"
	"github.com/osuushi/polybench/geom"
	"github.com/osuushi/polybench/shape"
)

type Collection []dynamic.Polygon

func (c *Collection) Append(p dynamic.Polygon) {
	*c = append(*c, p)
}

func (c Collection) Len() int {
	return len(c)
}

func (c Collection) TotalPerimeter() float64 {
	var total float64
	for i := range c {
		total += c[i].Perimeter()
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
	polygons := make(Collection, 0, pattern.Shapes(count))
	for i := 0; i < count; i++ {
		for _, outline := range pattern {
			polygons.Append(dynamic.New(outline.Points))
		}
	}
	return polygons
}

// Convenience for building a single polygon inline.
func Polygon(points ...geom.Vector2) dynamic.Polygon {
	return dynamic.New(points)
}

var Strategy = dispatch.Strategy{
	Name:        "uniform",
	Description: "one runtime-sized polygon type held by value, direct calls",
	Populate: func(pattern shape.Pattern, count int) dispatch.Collection {
		return PopulatePattern(pattern, count)
	},
}
