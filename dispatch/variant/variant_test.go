package variant

import (
	"math"
	"testing"

	"github.com/osuushi/polybench/fixed"
	"github.com/osuushi/polybench/geom"
	"github.com/osuushi/polybench/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One triangle (6√2), quadrilateral (12√2) and pentagon (16√2)
const defaultPatternPerimeter = 34 * math.Sqrt2

func TestPopulateEmpty(t *testing.T) {
	c := Populate(0)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, TotalPerimeter(c))
}

func TestPopulate(t *testing.T) {
	c := Populate(1)
	require.Equal(t, 3, c.Len())
	assert.Equal(t, shape.Triangle, c[0].Kind())
	assert.Equal(t, shape.Quadrilateral, c[1].Kind())
	assert.Equal(t, shape.Pentagon, c[2].Kind())
	assert.InDelta(t, defaultPatternPerimeter, TotalPerimeter(c), geom.Tolerance)

	c = Populate(100)
	assert.Equal(t, 300, c.Len())
	assert.InDelta(t, 100*defaultPatternPerimeter, TotalPerimeter(c), 1e-6)
}

func TestTotalPerimeterIdempotent(t *testing.T) {
	c := Populate(10)
	first := c.TotalPerimeter()
	assert.Equal(t, first, c.TotalPerimeter())
	assert.Equal(t, first, TotalPerimeter(c))
}

func TestAppend(t *testing.T) {
	var c Collection
	c.Append(FromQuadrilateral(fixed.NewQuadrilateral(
		geom.Vector2{X: 0, Y: 0}, geom.Vector2{X: 1, Y: 0}, geom.Vector2{X: 1, Y: 1}, geom.Vector2{X: 0, Y: 1},
	)))
	assert.Equal(t, 1, c.Len())
	assert.InDelta(t, 4, c.TotalPerimeter(), geom.Tolerance)
}

type kindVisitor struct{}

func (kindVisitor) Triangle(*fixed.Triangle) string           { return "tri" }
func (kindVisitor) Quadrilateral(*fixed.Quadrilateral) string { return "quad" }
func (kindVisitor) Pentagon(*fixed.Pentagon) string           { return "pent" }

func TestVisit(t *testing.T) {
	c := Populate(1)
	var names []string
	for i := range c {
		names = append(names, Visit[string](&c[i], kindVisitor{}))
	}
	assert.Equal(t, []string{"tri", "quad", "pent"}, names)
}

func TestVisitUnknownKind(t *testing.T) {
	visit := func() (err error) {
		defer func() {
			err = shape.HandlePanicRecover(recover())
		}()
		var s Shape
		Perimeter(&s)
		return nil
	}
	assert.EqualError(t, visit(), "unhandled shape kind Kind(0)")
}

func TestFromOutlineUnknownKind(t *testing.T) {
	assert.Panics(t, func() {
		FromOutline(shape.Outline{Kind: shape.Kind(8)})
	})
}

func TestStrategy(t *testing.T) {
	assert.Equal(t, "variant", Strategy.Name)
	c := Strategy.Populate(shape.DefaultPattern(), 2)
	assert.Equal(t, 6, c.Len())
	assert.InDelta(t, 2*defaultPatternPerimeter, c.TotalPerimeter(), geom.Tolerance)
}
