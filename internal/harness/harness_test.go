package harness

import (
	"context"
	"math"
	"testing"

	"github.com/osuushi/polybench/dispatch"
	"github.com/osuushi/polybench/dispatch/uniform"
	"github.com/osuushi/polybench/dispatch/variant"
	"github.com/osuushi/polybench/dispatch/virtual"
	"github.com/osuushi/polybench/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var strategies = []dispatch.Strategy{variant.Strategy, uniform.Strategy, virtual.Strategy}

func quickConfig(counts ...int) Config {
	return Config{
		Counts:        counts,
		Phases:        Phases,
		MinTime:       0,
		MaxIterations: 3,
	}
}

func TestRun(t *testing.T) {
	runner := NewRunner(quickConfig(0, 1, 8), shape.DefaultPattern(), zaptest.NewLogger(t))
	results, err := runner.Run(context.Background(), strategies)
	require.NoError(t, err)
	require.Len(t, results, len(strategies)*len(Phases)*3)

	for _, result := range results {
		assert.Equal(t, 1, result.Iterations, "min time of zero runs once")
		assert.Equal(t, 3*result.Count, result.Shapes)
		assert.InDelta(t, float64(result.Count)*34*math.Sqrt2, result.TotalPerimeter, 1e-9)
		assert.LessOrEqual(t, result.MinNs, result.MaxNs)
		assert.GreaterOrEqual(t, result.AllocsPerOp, 0.0)
	}

	// Nesting order is strategy, then phase, then count
	assert.Equal(t, "variant", results[0].Strategy)
	assert.Equal(t, Populate, results[0].Phase)
	assert.Equal(t, 0, results[0].Count)
	assert.Equal(t, 8, results[2].Count)
	assert.Equal(t, Iterate, results[3].Phase)
	assert.Equal(t, "virtual", results[len(results)-1].Strategy)
}

func TestMeasureIterationBounds(t *testing.T) {
	config := quickConfig(1)
	config.MinTime = math.MaxInt64
	runner := NewRunner(config, shape.DefaultPattern(), nil)
	result, err := runner.Measure(uniform.Strategy, Iterate, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Iterations)
}

func TestMeasureVirtualAllocates(t *testing.T) {
	runner := NewRunner(quickConfig(64), shape.DefaultPattern(), nil)
	result, err := runner.Measure(virtual.Strategy, Populate, 64)
	require.NoError(t, err)
	// At least one allocation per shape
	assert.GreaterOrEqual(t, result.AllocsPerOp, float64(result.Shapes))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := NewRunner(quickConfig(1), shape.DefaultPattern(), nil)
	results, err := runner.Run(ctx, strategies)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestRunInvalidPattern(t *testing.T) {
	runner := NewRunner(quickConfig(1), shape.Pattern{}, nil)
	_, err := runner.Run(context.Background(), strategies)
	assert.Error(t, err)
}

var throwing = dispatch.Strategy{
	Name: "throwing",
	Populate: func(shape.Pattern, int) dispatch.Collection {
		shape.Fatalf("kaboom")
		return nil
	},
}

func TestRunThrowingStrategy(t *testing.T) {
	runner := NewRunner(quickConfig(1), shape.DefaultPattern(), nil)
	_, err := runner.Run(context.Background(), []dispatch.Strategy{throwing})
	assert.EqualError(t, err, "throwing populate 1: kaboom")
}

func TestCheck(t *testing.T) {
	runner := NewRunner(quickConfig(), shape.DefaultPattern(), nil)
	totals, err := runner.Check(strategies, 1000)
	require.NoError(t, err)
	require.Len(t, totals, 3)
	for _, total := range totals {
		assert.InDelta(t, 1000*34*math.Sqrt2, total, 1e-6)
	}
}

type constant float64

func (c constant) Len() int                { return 1 }
func (c constant) TotalPerimeter() float64 { return float64(c) }

func TestCheckDisagreement(t *testing.T) {
	wrong := dispatch.Strategy{
		Name: "wrong",
		Populate: func(shape.Pattern, int) dispatch.Collection {
			return constant(1)
		},
	}
	runner := NewRunner(quickConfig(), shape.DefaultPattern(), nil)
	totals, err := runner.Check([]dispatch.Strategy{uniform.Strategy, wrong}, 0)
	assert.EqualError(t, err, "wrong total 1 disagrees with uniform total 0")
	assert.Equal(t, []float64{0, 1}, totals)

	_, err = runner.Check([]dispatch.Strategy{throwing}, 1)
	assert.EqualError(t, err, "kaboom")
}

func TestAgree(t *testing.T) {
	assert.True(t, Agree(0, 1e-10))
	assert.False(t, Agree(0, 1e-8))
	assert.True(t, Agree(1e6, 1e6+1e-4))
	assert.False(t, Agree(1e6, 1e6+1e-2))
}
