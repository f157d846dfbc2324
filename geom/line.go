package geom

import "fmt"

// A Line is an edge between two points. The length and unit vector are derived
// once, when the line is made, and the fields are unexported so that nothing
// can move an endpoint out from under them.
//
// A line whose endpoints coincide has length 0 and a NaN normal. That is not
// treated as an error; it just propagates into whatever uses the normal.
type Line struct {
	start  Vector2
	end    Vector2
	length float64
	normal Vector2
}

func NewLine(start, end Vector2) Line {
	delta := end.Sub(start)
	length := delta.Mag()
	return Line{
		start:  start,
		end:    end,
		length: length,
		normal: delta.Div(length),
	}
}

func (l Line) Start() Vector2 { return l.start }
func (l Line) End() Vector2   { return l.end }

// Cached length of the line.
func (l Line) Len() float64 { return l.length }

// Cached (End - Start) / Len.
func (l Line) Normal() Vector2 { return l.normal }

func (l Line) String() string {
	return fmt.Sprintf("%v => %v (%g)", l.start, l.end, l.length)
}
