package shape

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polybench/geom"
	"github.com/pkg/errors"
)

// Read a pattern out of an SVG document. This is not a full (or even correct)
// svg parser. Every <polygon> element becomes one outline, in document order,
// and each needs 3 to 5 points. Winding is kept as written since it has no
// effect on perimeter.
func ParseSVG(r io.Reader) (Pattern, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	if rootEl == nil {
		return nil, errors.New("empty svg document")
	}

	var pattern Pattern
	for i, polygonEl := range rootEl.FindAll("polygon") {
		points, err := parsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		outline, err := NewOutline(points...)
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		pattern = append(pattern, outline)
	}

	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	return pattern, nil
}

// The points attribute is a flat list of numbers separated by whitespace
// and/or commas, taken in x,y pairs.
func parsePoints(attr string) ([]geom.Vector2, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attr)
	}

	points := make([]geom.Vector2, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geom.Vector2{X: x, Y: y})
	}
	return points, nil
}
