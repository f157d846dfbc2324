package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLine(t *testing.T) {
	l := NewLine(Vector2{1, 2}, Vector2{4, 6})
	assert.Equal(t, Vector2{1, 2}, l.Start())
	assert.Equal(t, Vector2{4, 6}, l.End())
	assert.InDelta(t, 5, l.Len(), Tolerance)
	assert.InDelta(t, 0.6, l.Normal().X, Tolerance)
	assert.InDelta(t, 0.8, l.Normal().Y, Tolerance)
	assert.Equal(t, "(1, 2) => (4, 6) (5)", l.String())
}

func TestLineNormalIsUnit(t *testing.T) {
	start := Vector2{-3, 7}
	end := Vector2{2, 0.5}
	// Rotate the segment by a weird angle repeatedly and make sure the cached
	// values always agree with the endpoints.
	angle := math.Pi / 7
	for i := 0; i < 14; i++ {
		l := NewLine(start, end)
		assert.InDelta(t, end.Sub(start).Mag(), l.Len(), Tolerance)
		assert.InDelta(t, 1, l.Normal().Mag(), Tolerance)
		// The normal points from start to end
		assert.InDelta(t, end.X, start.X+l.Normal().X*l.Len(), Tolerance)
		assert.InDelta(t, end.Y, start.Y+l.Normal().Y*l.Len(), Tolerance)

		start = rotate(start, angle)
		end = rotate(end, angle)
	}
}

func TestDegenerateLine(t *testing.T) {
	p := Vector2{3, 3}
	l := NewLine(p, p)
	assert.Equal(t, 0.0, l.Len())
	assert.True(t, math.IsNaN(l.Normal().X))
	assert.True(t, math.IsNaN(l.Normal().Y))
}

// Helpers

func rotate(v Vector2, angle float64) Vector2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}
