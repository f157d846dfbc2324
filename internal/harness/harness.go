// Package harness is the measurement loop. It times each strategy's populate
// and perimeter phases across a sweep of counts, one measurement at a time on
// the calling goroutine.
package harness

import (
	"context"
	"math"
	"runtime"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/osuushi/polybench/dispatch"
	"github.com/osuushi/polybench/geom"
	"github.com/osuushi/polybench/shape"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// Longest single iteration the histograms can hold. Slower iterations are
	// recorded as this value, and iterations too quick for the clock as 1ns.
	maxRecordableNs = int64(time.Minute)
	sigFigs         = 3
)

type Config struct {
	Counts  []int
	Phases  []Phase
	MinTime time.Duration
	// Upper bound on iterations per measurement, whatever MinTime says.
	MaxIterations int
}

type Result struct {
	Strategy   string `json:"strategy"`
	Phase      Phase  `json:"phase"`
	Count      int    `json:"count"`
	Shapes     int    `json:"shapes"`
	Iterations int    `json:"iterations"`

	MeanNs float64 `json:"mean_ns"`
	MinNs  int64   `json:"min_ns"`
	P50Ns  int64   `json:"p50_ns"`
	P99Ns  int64   `json:"p99_ns"`
	MaxNs  int64   `json:"max_ns"`

	AllocsPerOp     float64 `json:"allocs_per_op"`
	BytesPerOp      float64 `json:"bytes_per_op"`
	ShapesPerSecond float64 `json:"shapes_per_second"`

	// The answer the timed code produced, for checking strategies agree
	TotalPerimeter float64 `json:"total_perimeter"`
}

// Mean time per shape, the number that is comparable across counts.
func (r Result) NsPerShape() float64 {
	if r.Shapes == 0 {
		return r.MeanNs
	}
	return r.MeanNs / float64(r.Shapes)
}

type Runner struct {
	config  Config
	pattern shape.Pattern
	log     *zap.Logger
}

func NewRunner(config Config, pattern shape.Pattern, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if config.MaxIterations < 1 {
		config.MaxIterations = 1
	}
	return &Runner{config: config, pattern: pattern, log: log}
}

// Measure every strategy, phase and count, in that nesting order. Stops early
// with ctx's error if it is cancelled between measurements.
func (r *Runner) Run(ctx context.Context, strategies []dispatch.Strategy) ([]Result, error) {
	if err := r.pattern.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	var results []Result
	for _, strategy := range strategies {
		r.log.Info("measuring strategy",
			zap.String("strategy", strategy.Name),
			zap.Ints("counts", r.config.Counts),
		)
		for _, phase := range r.config.Phases {
			for _, count := range r.config.Counts {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				result, err := r.Measure(strategy, phase, count)
				if err != nil {
					return results, err
				}
				results = append(results, result)
			}
		}
	}
	r.log.Info("sweep finished",
		zap.Int("measurements", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}

var sinkPerimeter float64

// Time one phase of one strategy at one count. A strategy that throws a
// shape error comes back as an error naming it; any other panic propagates.
func (r *Runner) Measure(strategy dispatch.Strategy, phase Phase, count int) (result Result, err error) {
	defer func() {
		recoveredErr := shape.HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = errors.Wrapf(recoveredErr, "%s %s %d", strategy.Name, phase, count)
		}
	}()

	var (
		op     func()
		answer func() float64
	)
	switch phase {
	case Populate:
		var last dispatch.Collection
		op = func() { last = strategy.Populate(r.pattern, count) }
		answer = func() float64 { return last.TotalPerimeter() }
	case Iterate:
		collection := strategy.Populate(r.pattern, count)
		op = func() { sinkPerimeter = collection.TotalPerimeter() }
		answer = func() float64 { return sinkPerimeter }
	case Both:
		op = func() { sinkPerimeter = strategy.Populate(r.pattern, count).TotalPerimeter() }
		answer = func() float64 { return sinkPerimeter }
	default:
		return Result{}, errors.Errorf("unknown phase %d", phase)
	}

	hist := hdrhistogram.New(1, maxRecordableNs, sigFigs)

	runtime.GC()
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	iterations := 0
	start := time.Now()
	for elapsed := time.Duration(0); iterations == 0 ||
		(elapsed < r.config.MinTime && iterations < r.config.MaxIterations); elapsed = time.Since(start) {
		t := time.Now()
		op()
		ns := time.Since(t).Nanoseconds()
		if ns < 1 {
			ns = 1
		} else if ns > maxRecordableNs {
			ns = maxRecordableNs
		}
		if err := hist.RecordValue(ns); err != nil {
			return Result{}, errors.Wrap(err, "recording iteration")
		}
		iterations++
	}

	runtime.ReadMemStats(&after)

	result = Result{
		Strategy:       strategy.Name,
		Phase:          phase,
		Count:          count,
		Shapes:         r.pattern.Shapes(count),
		Iterations:     iterations,
		MeanNs:         hist.Mean(),
		MinNs:          hist.Min(),
		P50Ns:          hist.ValueAtQuantile(50),
		P99Ns:          hist.ValueAtQuantile(99),
		MaxNs:          hist.Max(),
		AllocsPerOp:    float64(after.Mallocs-before.Mallocs) / float64(iterations),
		BytesPerOp:     float64(after.TotalAlloc-before.TotalAlloc) / float64(iterations),
		TotalPerimeter: answer(),
	}
	if result.MeanNs > 0 {
		result.ShapesPerSecond = float64(result.Shapes) / (result.MeanNs / float64(time.Second))
	}

	r.log.Debug("measured",
		zap.String("strategy", strategy.Name),
		zap.Stringer("phase", phase),
		zap.Int("count", count),
		zap.Int("iterations", iterations),
		zap.Float64("mean_ns", result.MeanNs),
		zap.Float64("allocs_per_op", result.AllocsPerOp),
	)
	return result, nil
}

// Total the perimeter of count repetitions of the pattern with every strategy,
// and fail if any strategy disagrees with the first. Totals are returned in
// strategy order even when they disagree.
func (r *Runner) Check(strategies []dispatch.Strategy, count int) (totals []float64, err error) {
	if err := r.pattern.Validate(); err != nil {
		return nil, err
	}
	defer func() {
		recoveredErr := shape.HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	for _, strategy := range strategies {
		total := strategy.Populate(r.pattern, count).TotalPerimeter()
		totals = append(totals, total)
		r.log.Debug("checked",
			zap.String("strategy", strategy.Name),
			zap.Int("count", count),
			zap.Float64("total_perimeter", total),
		)
	}

	for i := 1; i < len(totals); i++ {
		if !Agree(totals[0], totals[i]) {
			return totals, errors.Errorf("%s total %v disagrees with %s total %v",
				strategies[i].Name, totals[i], strategies[0].Name, totals[0])
		}
	}
	return totals, nil
}

// Agree reports whether two totals match. Totals grow with count, so the
// tolerance is relative once they pass 1.
func Agree(a, b float64) bool {
	return math.Abs(a-b) <= geom.Tolerance*math.Max(1, math.Abs(a))
}
