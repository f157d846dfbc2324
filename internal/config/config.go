// Package config is the YAML description of a benchmark sweep.
package config

import (
	"io"
	"os"
	"time"

	"github.com/osuushi/polybench"
	"github.com/osuushi/polybench/internal/harness"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Strategies    []string      `yaml:"strategies"`
	Phases        []string      `yaml:"phases"`
	Range         Range         `yaml:"range"`
	MinTime       time.Duration `yaml:"min_time"`
	MaxIterations int           `yaml:"max_iterations"`
	// Optional SVG file to take the shape pattern from
	Pattern string `yaml:"pattern"`
	Output  Output `yaml:"output"`
	Log     Log    `yaml:"log"`
}

type Range struct {
	Min        int `yaml:"min"`
	Max        int `yaml:"max"`
	Multiplier int `yaml:"multiplier"`
}

type Output struct {
	Format string `yaml:"format"`
	Chart  string `yaml:"chart"`
	Imgcat bool   `yaml:"imgcat"`
	Color  bool   `yaml:"color"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

var Formats = []string{"text", "json"}

// Default sweeps every strategy and phase over counts 8 to 8<<15 in 8x steps.
func Default() *Config {
	return &Config{
		Strategies:    polybench.StrategyNames(),
		Phases:        harness.PhaseNames(),
		Range:         Range{Min: 8, Max: 8 << 15, Multiplier: 8},
		MinTime:       500 * time.Millisecond,
		MaxIterations: 1000000,
		Output: Output{
			Format: "text",
			Color:  true,
		},
		Log: Log{Level: "info"},
	}
}

// Load a config file on top of the defaults. Fields missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if len(c.Strategies) == 0 {
		return errors.New("no strategies selected")
	}
	for _, name := range c.Strategies {
		if _, err := polybench.Lookup(name); err != nil {
			return err
		}
	}
	if len(c.Phases) == 0 {
		return errors.New("no phases selected")
	}
	for _, name := range c.Phases {
		if _, err := harness.ParsePhase(name); err != nil {
			return err
		}
	}
	if c.Range.Min < 0 || c.Range.Max < c.Range.Min {
		return errors.Errorf("invalid range %d..%d", c.Range.Min, c.Range.Max)
	}
	if c.Range.Multiplier < 2 {
		return errors.Errorf("range multiplier must be at least 2, got %d", c.Range.Multiplier)
	}
	if c.MinTime < 0 {
		return errors.Errorf("negative min_time %v", c.MinTime)
	}
	if c.MaxIterations < 1 {
		return errors.Errorf("max_iterations must be at least 1, got %d", c.MaxIterations)
	}
	if !contains(Formats, c.Output.Format) {
		return errors.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}

// Harness settings for this config.
func (c *Config) Harness() (harness.Config, error) {
	var phases []harness.Phase
	for _, name := range c.Phases {
		phase, err := harness.ParsePhase(name)
		if err != nil {
			return harness.Config{}, err
		}
		phases = append(phases, phase)
	}
	return harness.Config{
		Counts:        harness.Range(c.Range.Min, c.Range.Max, c.Range.Multiplier),
		Phases:        phases,
		MinTime:       c.MinTime,
		MaxIterations: c.MaxIterations,
	}, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
