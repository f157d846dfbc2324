package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vector2{1, 2}
	b := Vector2{4, 6}

	assert.Equal(t, Vector2{5, 8}, a.Add(b))
	assert.Equal(t, Vector2{3, 4}, b.Sub(a))
	assert.Equal(t, Vector2{2, 3}, b.Div(2))
	assert.InDelta(t, 5, b.Sub(a).Mag(), Tolerance)
	assert.Equal(t, "(1, 2)", a.String())
}

func TestVectorDivByZero(t *testing.T) {
	zero := Vector2{}.Div(0)
	assert.True(t, math.IsNaN(zero.X))
	assert.True(t, math.IsNaN(zero.Y))

	inf := Vector2{1, -1}.Div(0)
	assert.True(t, math.IsInf(inf.X, 1))
	assert.True(t, math.IsInf(inf.Y, -1))
}
