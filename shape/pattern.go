// Package shape describes which polygons a benchmark builds, independently of
// how a dispatch strategy stores them.
package shape

import (
	"github.com/osuushi/polybench/geom"
	"github.com/pkg/errors"
)

// Outline is the vertex list of one polygon in a pattern.
type Outline struct {
	Kind   Kind
	Points []geom.Vector2
}

func NewOutline(points ...geom.Vector2) (Outline, error) {
	kind, err := KindOf(len(points))
	if err != nil {
		return Outline{}, err
	}
	return Outline{Kind: kind, Points: points}, nil
}

func (o Outline) Validate() error {
	if !o.Kind.Valid() {
		return errors.Errorf("invalid shape kind %v", o.Kind)
	}
	if len(o.Points) != o.Kind.Vertices() {
		return errors.Errorf("%v needs %d points, got %d", o.Kind, o.Kind.Vertices(), len(o.Points))
	}
	return nil
}

// A Pattern is the group of outlines that populate repeats. Populating with a
// count of n gives n*len(pattern) shapes, in pattern order.
type Pattern []Outline

// The mixed pattern used by every benchmark unless told otherwise: one
// triangle, one quadrilateral and one pentagon.
func DefaultPattern() Pattern {
	return Pattern{
		{Kind: Triangle, Points: []geom.Vector2{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 4, Y: 5}}},
		{Kind: Quadrilateral, Points: []geom.Vector2{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}, {X: 7, Y: 8}}},
		{Kind: Pentagon, Points: []geom.Vector2{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}, {X: 7, Y: 8}, {X: 9, Y: 10}}},
	}
}

func (p Pattern) Validate() error {
	if len(p) == 0 {
		return errors.New("pattern has no outlines")
	}
	for i, outline := range p {
		if err := outline.Validate(); err != nil {
			return errors.Wrapf(err, "outline %d", i)
		}
	}
	return nil
}

// Number of shapes populated for the given count.
func (p Pattern) Shapes(count int) int {
	return count * len(p)
}

func (p Pattern) Kinds() map[Kind]int {
	kinds := make(map[Kind]int)
	for _, outline := range p {
		kinds[outline.Kind]++
	}
	return kinds
}
