package geom

import (
	"fmt"
	"math"
)

// Vector2 is used both as a point and as a displacement between points. It is
// always passed by value; nothing in this module holds a pointer to one.
type Vector2 struct {
	X float64
	Y float64
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Divide by a scalar. Dividing by zero is not checked, and follows IEEE 754
// (so 0/0 gives NaN).
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{v.X / s, v.Y / s}
}

// Euclidean norm. This is the square root that Line exists to avoid repeating.
func (v Vector2) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
