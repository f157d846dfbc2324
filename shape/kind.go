package shape

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the closed set of shapes that have a fixed-arity representation.
// The numeric value is the vertex count.
type Kind uint8

const (
	Triangle      Kind = 3
	Quadrilateral Kind = 4
	Pentagon      Kind = 5
)

var Kinds = []Kind{Triangle, Quadrilateral, Pentagon}

func KindOf(vertexCount int) (Kind, error) {
	if vertexCount < int(Triangle) || vertexCount > int(Pentagon) {
		return 0, errors.Errorf("no shape kind has %d vertices", vertexCount)
	}
	return Kind(vertexCount), nil
}

func (k Kind) Valid() bool {
	return k >= Triangle && k <= Pentagon
}

func (k Kind) Vertices() int {
	return int(k)
}

func (k Kind) String() string {
	switch k {
	case Triangle:
		return "triangle"
	case Quadrilateral:
		return "quadrilateral"
	case Pentagon:
		return "pentagon"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
