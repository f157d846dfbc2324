// Package dispatch is the common ground between the three ways of storing a
// heterogeneous set of polygons. Each subpackage is one strategy:
//
//   - variant: a closed tagged union, dispatched by an exhaustive visitor.
//   - uniform: every shape is the same runtime-sized type, no dispatch at all.
//   - virtual: an open interface, one heap object and one indirect call per shape.
//
// All three must agree on the total perimeter for the same pattern and count.
package dispatch

import "github.com/osuushi/polybench/shape"

// Collection is what a strategy hands back from populate. It is fully built
// before anything reads it and never changes afterwards.
type Collection interface {
	Len() int
	TotalPerimeter() float64
}

type Strategy struct {
	Name        string
	Description string
	// Build a collection of count repetitions of the pattern. The pattern
	// must already be valid.
	Populate func(pattern shape.Pattern, count int) Collection
}
