package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/fogleman/gg"
	"github.com/osuushi/polybench/internal/harness"
	"github.com/osuushi/polybench/shape"
	"github.com/pkg/errors"
)

const (
	chartWidth   = 900
	chartHeight  = 540
	chartPadding = 70
)

// One colour per strategy, in order of first appearance. Wraps if there are
// more strategies than colours.
var seriesColors = [][3]float64{
	{0.2, 0.8, 1},
	{1, 0.6, 0.1},
	{0.5, 1, 0.3},
	{1, 0.3, 0.6},
}

// Plot mean ns per shape against count (log2) for one phase, one line per
// strategy, and write it as a PNG. Counts of zero have no shapes to divide
// by and are left off.
func Chart(w io.Writer, results []harness.Result, phase harness.Phase) error {
	series, order := seriesFor(results, phase)
	if len(order) == 0 {
		return errors.Errorf("no %s results to chart", phase)
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	maxY := 0.0
	for _, points := range series {
		for _, r := range points {
			x := math.Log2(float64(r.Count))
			minX = math.Min(minX, x)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, r.NsPerShape())
		}
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == 0 {
		maxY = 1
	}
	maxY *= 1.1

	plotWidth := float64(chartWidth - 2*chartPadding)
	plotHeight := float64(chartHeight - 2*chartPadding)
	toCanvas := func(x, y float64) (float64, float64) {
		return chartPadding + (x-minX)/(maxX-minX)*plotWidth,
			chartHeight - chartPadding - y/maxY*plotHeight
	}

	c := gg.NewContext(chartWidth, chartHeight)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, chartWidth, chartHeight)
	c.Fill()

	// Axes
	c.SetRGB(0.6, 0.6, 0.6)
	c.SetLineWidth(1)
	c.DrawLine(chartPadding, chartHeight-chartPadding, chartWidth-chartPadding, chartHeight-chartPadding)
	c.DrawLine(chartPadding, chartPadding, chartPadding, chartHeight-chartPadding)
	c.Stroke()

	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(fmt.Sprintf("%s: ns per shape by count", phase), chartWidth/2, chartPadding/2, 0.5, 0.5)
	for _, count := range countsOf(series) {
		x, y := toCanvas(math.Log2(float64(count)), 0)
		c.DrawStringAnchored(fmt.Sprint(count), x, y+16, 0.5, 0.5)
	}
	for i := 0; i <= 4; i++ {
		value := maxY * float64(i) / 4
		x, y := toCanvas(minX, value)
		c.DrawStringAnchored(fmt.Sprintf("%.1f", value), x-8, y, 1, 0.5)
	}

	c.SetLineWidth(2)
	for i, name := range order {
		color := seriesColors[i%len(seriesColors)]
		c.SetRGB(color[0], color[1], color[2])
		for j, r := range series[name] {
			x, y := toCanvas(math.Log2(float64(r.Count)), r.NsPerShape())
			if j == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.Stroke()
		for _, r := range series[name] {
			x, y := toCanvas(math.Log2(float64(r.Count)), r.NsPerShape())
			c.DrawCircle(x, y, 3)
			c.Fill()
		}
		// Legend
		legendY := float64(chartPadding + 16*i)
		c.DrawLine(chartWidth-chartPadding-110, legendY, chartWidth-chartPadding-90, legendY)
		c.Stroke()
		c.DrawStringAnchored(name, chartWidth-chartPadding-84, legendY, 0, 0.5)
	}

	return errors.Wrap(c.EncodePNG(w), "encoding chart")
}

// Results for one phase grouped by strategy, each sorted by count.
func seriesFor(results []harness.Result, phase harness.Phase) (map[string][]harness.Result, []string) {
	series := make(map[string][]harness.Result)
	var order []string
	for _, r := range results {
		if r.Phase != phase || r.Count == 0 {
			continue
		}
		if _, ok := series[r.Strategy]; !ok {
			order = append(order, r.Strategy)
		}
		series[r.Strategy] = append(series[r.Strategy], r)
	}
	for _, points := range series {
		sort.Slice(points, func(i, j int) bool { return points[i].Count < points[j].Count })
	}
	return series, order
}

func countsOf(series map[string][]harness.Result) []int {
	seen := make(map[int]bool)
	var counts []int
	for _, points := range series {
		for _, r := range points {
			if !seen[r.Count] {
				seen[r.Count] = true
				counts = append(counts, r.Count)
			}
		}
	}
	sort.Ints(counts)
	return counts
}

// Padding around the pattern drawing, in pixels
const patternPadding = 20

// Draw the outlines of a pattern as a PNG, with the origin at the bottom left.
func DrawPattern(w io.Writer, pattern shape.Pattern, scale float64) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, outline := range pattern {
		for _, p := range outline.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return errors.New("pattern has no points to draw")
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + patternPadding*2
	height := int(scale*(maxY-minY)) + patternPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(patternPadding, patternPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, outline := range pattern {
		if len(outline.Points) == 0 {
			continue
		}
		c.MoveTo(outline.Points[0].X, outline.Points[0].Y)
		for _, p := range outline.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		color := seriesColors[i%len(seriesColors)]
		c.SetRGB(color[0], color[1], color[2])
		c.Stroke()
	}

	return errors.Wrap(c.EncodePNG(w), "encoding pattern")
}
