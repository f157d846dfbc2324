package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polybench"
	"github.com/osuushi/polybench/dispatch"
	"github.com/osuushi/polybench/internal/config"
	"github.com/osuushi/polybench/internal/harness"
	"github.com/osuushi/polybench/internal/logging"
	"github.com/osuushi/polybench/internal/report"
	"github.com/osuushi/polybench/internal/runid"
	"github.com/osuushi/polybench/shape"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

type cli struct {
	out io.Writer

	configPath string
	// Flags given on the command line, applied over the config file
	overrides []func(*config.Config)

	strategies    []string
	phases        []string
	minCount      int
	maxCount      int
	multiplier    int
	minTime       time.Duration
	maxIterations int
	pattern       string
	format        string
	chart         string
	imgcat        bool
	noColor       bool
	logLevel      string
	development   bool

	count int
	scale float64
	draw  string

	runCommand, checkCommand, drawCommand string
}

func newCLI(out io.Writer) *cli {
	return &cli{out: out}
}

func (c *cli) override(apply func(*config.Config)) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		c.overrides = append(c.overrides, apply)
		return nil
	}
}

func (c *cli) register(app *kingpin.Application) {
	app.Flag("config", "YAML sweep configuration.").Short('c').StringVar(&c.configPath)
	app.Flag("pattern", "Shape pattern file (.svg, or text).").Short('p').
		Action(c.override(func(cfg *config.Config) { cfg.Pattern = c.pattern })).StringVar(&c.pattern)
	app.Flag("strategy", "Strategy to include; repeatable.").Short('s').
		Action(c.override(func(cfg *config.Config) { cfg.Strategies = c.strategies })).
		EnumsVar(&c.strategies, polybench.StrategyNames()...)
	app.Flag("log-level", "Log level.").
		Action(c.override(func(cfg *config.Config) { cfg.Log.Level = c.logLevel })).
		EnumVar(&c.logLevel, "debug", "info", "warn", "error")
	app.Flag("dev", "Human readable logs.").
		Action(c.override(func(cfg *config.Config) { cfg.Log.Development = c.development })).BoolVar(&c.development)
	app.Flag("no-color", "Disable coloured output.").
		Action(c.override(func(cfg *config.Config) { cfg.Output.Color = !c.noColor })).BoolVar(&c.noColor)
	app.Flag("imgcat", "Print images to the terminal (iTerm only).").
		Action(c.override(func(cfg *config.Config) { cfg.Output.Imgcat = c.imgcat })).BoolVar(&c.imgcat)

	run := app.Command("run", "Sweep counts and time every strategy and phase.").Default()
	c.runCommand = run.FullCommand()
	run.Flag("phase", "Phase to include; repeatable.").
		Action(c.override(func(cfg *config.Config) { cfg.Phases = c.phases })).
		EnumsVar(&c.phases, harness.PhaseNames()...)
	run.Flag("min", "Smallest count.").
		Action(c.override(func(cfg *config.Config) { cfg.Range.Min = c.minCount })).IntVar(&c.minCount)
	run.Flag("max", "Largest count.").
		Action(c.override(func(cfg *config.Config) { cfg.Range.Max = c.maxCount })).IntVar(&c.maxCount)
	run.Flag("multiplier", "Step between counts.").
		Action(c.override(func(cfg *config.Config) { cfg.Range.Multiplier = c.multiplier })).IntVar(&c.multiplier)
	run.Flag("min-time", "Minimum time spent on each measurement.").
		Action(c.override(func(cfg *config.Config) { cfg.MinTime = c.minTime })).DurationVar(&c.minTime)
	run.Flag("max-iterations", "Maximum iterations of each measurement.").
		Action(c.override(func(cfg *config.Config) { cfg.MaxIterations = c.maxIterations })).IntVar(&c.maxIterations)
	run.Flag("format", "Report format.").
		Action(c.override(func(cfg *config.Config) { cfg.Output.Format = c.format })).
		EnumVar(&c.format, config.Formats...)
	run.Flag("chart", "Write a PNG chart per phase, named after this path.").
		Action(c.override(func(cfg *config.Config) { cfg.Output.Chart = c.chart })).StringVar(&c.chart)

	check := app.Command("check", "Check that every strategy gives the same total perimeter.")
	c.checkCommand = check.FullCommand()
	check.Flag("count", "Repetitions of the pattern.").Default("1").IntVar(&c.count)

	draw := app.Command("draw", "Draw the shape pattern as a PNG.")
	c.drawCommand = draw.FullCommand()
	draw.Flag("out", "Output file.").Short('o').Default("pattern.png").StringVar(&c.draw)
	draw.Flag("scale", "Pixels per unit.").Default("40").Float64Var(&c.scale)
}

// Run the command kingpin selected. Flag actions have all run by now, wherever
// the flags sat relative to the command.
func (c *cli) dispatch(command string) error {
	switch command {
	case c.runCommand:
		return c.run()
	case c.checkCommand:
		return c.check()
	case c.drawCommand:
		return c.drawPattern()
	}
	return errors.Errorf("unknown command %q", command)
}

// The config file (or defaults) with command line flags applied on top.
func (c *cli) config() (*config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return nil, err
		}
	}
	for _, apply := range c.overrides {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *cli) setup() (*config.Config, *zap.Logger, shape.Pattern, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "building logger")
	}
	pattern, err := loadPattern(cfg.Pattern)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, pattern, nil
}

func (c *cli) run() error {
	cfg, logger, pattern, err := c.setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	strategies, err := lookupStrategies(cfg.Strategies)
	if err != nil {
		return err
	}
	harnessConfig, err := cfg.Harness()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	name := runid.New()
	logger = logger.With(zap.String("run", name))
	runner := harness.NewRunner(harnessConfig, pattern, logger)
	results, err := runner.Run(ctx, strategies)
	if errors.Is(err, context.Canceled) {
		logger.Warn("interrupted, reporting partial results", zap.Int("measurements", len(results)))
	} else if err != nil {
		return err
	}

	switch cfg.Output.Format {
	case "json":
		err = report.JSON(c.out, name, results)
	default:
		err = report.Text(c.out, name, results, cfg.Output.Color)
	}
	if err != nil {
		return err
	}

	if cfg.Output.Chart == "" && !cfg.Output.Imgcat {
		return nil
	}
	for _, phase := range harnessConfig.Phases {
		path, err := c.writeChart(cfg, results, phase)
		if err != nil {
			return err
		}
		logger.Info("wrote chart", zap.Stringer("phase", phase), zap.String("path", path))
		if cfg.Output.Imgcat {
			if err := imgcat.CatFile(path, c.out); err != nil {
				return errors.Wrap(err, "printing chart")
			}
		}
	}
	return nil
}

func (c *cli) writeChart(cfg *config.Config, results []harness.Result, phase harness.Phase) (string, error) {
	var f *os.File
	var err error
	if cfg.Output.Chart == "" {
		f, err = os.CreateTemp("", fmt.Sprintf("polybench-%s-*.png", phase))
	} else {
		f, err = os.Create(chartPath(cfg.Output.Chart, phase))
	}
	if err != nil {
		return "", errors.Wrap(err, "creating chart")
	}
	if err := report.Chart(f, results, phase); err != nil {
		f.Close()
		return "", err
	}
	return f.Name(), errors.Wrap(f.Close(), "writing chart")
}

// chart.png becomes chart-iterate.png and so on.
func chartPath(base string, phase harness.Phase) string {
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%s%s", strings.TrimSuffix(base, ext), phase, ext)
}

func (c *cli) check() error {
	cfg, logger, pattern, err := c.setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	strategies, err := lookupStrategies(cfg.Strategies)
	if err != nil {
		return err
	}
	runner := harness.NewRunner(harness.Config{}, pattern, logger)
	totals, checkErr := runner.Check(strategies, c.count)
	if err := report.Check(c.out, cfg.Strategies, totals, cfg.Output.Color); err != nil {
		return err
	}
	return checkErr
}

func (c *cli) drawPattern() error {
	cfg, logger, pattern, err := c.setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	f, err := os.Create(c.draw)
	if err != nil {
		return errors.Wrap(err, "creating drawing")
	}
	if err := report.DrawPattern(f, pattern, c.scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing drawing")
	}
	logger.Info("drew pattern", zap.String("path", c.draw), zap.Int("outlines", len(pattern)))
	if cfg.Output.Imgcat {
		return errors.Wrap(imgcat.CatFile(c.draw, c.out), "printing drawing")
	}
	return nil
}

func loadPattern(path string) (shape.Pattern, error) {
	if path == "" {
		return shape.DefaultPattern(), nil
	}
	in := io.Reader(os.Stdin)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening pattern")
		}
		defer f.Close()
		in = f
	}
	pattern, err := shape.Load(path, in)
	return pattern, errors.Wrapf(err, "loading pattern %s", path)
}

func lookupStrategies(names []string) ([]dispatch.Strategy, error) {
	var strategies []dispatch.Strategy
	for _, name := range names {
		strategy, err := polybench.Lookup(name)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, strategy)
	}
	return strategies, nil
}
