package shape

import (
	"bufio"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/polybench/geom"
	"github.com/pkg/errors"
)

// Read a pattern in the plain text format: one "x y" point per line, with
// polygons separated by blank lines. Lines starting with # are ignored.
func ParseText(r io.Reader) (Pattern, error) {
	var pattern Pattern
	var points []geom.Vector2
	lineNumber := 0

	// End of a polygon
	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		outline, err := NewOutline(points...)
		if err != nil {
			return errors.Wrapf(err, "polygon ending on line %d", lineNumber)
		}
		pattern = append(pattern, outline)
		points = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading pattern")
	}

	// Handle trailing polygon if any
	if err := flush(); err != nil {
		return nil, err
	}
	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	return pattern, nil
}

func parsePoint(line string) (geom.Vector2, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Vector2{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Vector2{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Vector2{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return geom.Vector2{X: x, Y: y}, nil
}

// Load a pattern from a file, choosing the format by extension: .svg is SVG,
// anything else is the text format.
func Load(path string, r io.Reader) (Pattern, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return ParseSVG(r)
	}
	return ParseText(r)
}
