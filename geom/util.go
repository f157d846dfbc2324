package geom

import "math"

const Tolerance = 1e-9

// Float equality with an absolute tolerance. Perimeters summed in different
// orders (or through different storage) can disagree in the last few bits.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Fill lines so that lines[i] runs from vertices[i] to the next vertex,
// wrapping the last vertex back around to the first. The two slices must have
// the same length. Callers pass slices of the storage the polygon keeps, so
// the vertices must already be in their final location.
func ConnectLines(lines []Line, vertices []Vector2) {
	n := len(vertices)
	for i := range vertices {
		lines[i] = NewLine(vertices[i], vertices[CircularIndex(i+1, n)])
	}
}

// Sum of the cached lengths, starting from zero.
func Perimeter(lines []Line) float64 {
	var perimeter float64
	for i := range lines {
		perimeter += lines[i].length
	}
	return perimeter
}
