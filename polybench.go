// Measure the cost of polymorphic dispatch over a heterogeneous set of
// polygons.
//
// The same mix of triangles, quadrilaterals and pentagons is stored three
// ways (a tagged union, a single runtime-sized type, and an interface with
// one heap object per shape) and each is asked for its total perimeter. The
// answer must not depend on the strategy; only the time taken should.
package polybench

import (
	"strings"

	"github.com/osuushi/polybench/dispatch"
	"github.com/osuushi/polybench/dispatch/uniform"
	"github.com/osuushi/polybench/dispatch/variant"
	"github.com/osuushi/polybench/dispatch/virtual"
	"github.com/osuushi/polybench/geom"
	"github.com/osuushi/polybench/shape"
	"github.com/pkg/errors"
)

type Vector2 = geom.Vector2
type Line = geom.Line
type Pattern = shape.Pattern
type Strategy = dispatch.Strategy
type Collection = dispatch.Collection

// Every strategy, in a stable order.
func Strategies() []Strategy {
	return []Strategy{
		variant.Strategy,
		uniform.Strategy,
		virtual.Strategy,
	}
}

func StrategyNames() []string {
	var names []string
	for _, s := range Strategies() {
		names = append(names, s.Name)
	}
	return names
}

func Lookup(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if s.Name == name {
			return s, nil
		}
	}
	return Strategy{}, errors.Errorf("unknown strategy %q (have %s)", name, strings.Join(StrategyNames(), ", "))
}

// Populate every strategy with count repetitions of the pattern and return
// each total perimeter by strategy name. A strategy that throws turns into an
// error rather than a crash.
func TotalPerimeters(pattern Pattern, count int) (totals map[string]float64, err error) {
	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	defer func() {
		recoveredErr := shape.HandlePanicRecover(recover())
		if recoveredErr != nil {
			totals = nil
			err = recoveredErr
		}
	}()

	totals = make(map[string]float64)
	for _, s := range Strategies() {
		totals[s.Name] = s.Populate(pattern, count).TotalPerimeter()
	}
	return totals, nil
}
