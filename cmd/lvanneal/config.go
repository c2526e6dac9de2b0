package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvanneal/anneal"
	"github.com/katalvlaran/lvanneal/tsp"
)

// RunConfig is everything a benchmark run needs. It can be loaded from
// YAML (or JSON), overridden by LVANNEAL_* environment variables and then by flags.
type RunConfig struct {
	Points         int            `json:"points" yaml:"points"`
	Radius         float64        `json:"radius" yaml:"radius"`
	Iterations     int            `json:"iterations" yaml:"iterations"`
	Seed           int64          `json:"seed" yaml:"seed"`
	Neighbourhood  string         `json:"neighbourhood" yaml:"neighbourhood"`
	SafeAcceptance bool           `json:"safe_acceptance" yaml:"safe_acceptance"`
	Trials         int            `json:"trials" yaml:"trials"`
	Schedule       ScheduleConfig `json:"schedule" yaml:"schedule"`
}

// ScheduleConfig selects and parameterizes the cooling schedule.
//
// Kinds:
//   - energy_scaled: scale·e^(-rate·p)·E (uses Scale, Rate)
//   - exponential:   Start → End geometrically
//   - linear:        Start → End linearly
type ScheduleConfig struct {
	Kind  string  `json:"kind" yaml:"kind"`
	Scale float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	Rate  float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
	Start float64 `json:"start,omitempty" yaml:"start,omitempty"`
	End   float64 `json:"end,omitempty" yaml:"end,omitempty"`
}

// DefaultRunConfig returns the classic benchmark: 10 points, radius 100,
// 1000 iterations, swap moves, 100·e^(-12p)·E.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Points:        10,
		Radius:        100,
		Iterations:    1000,
		Seed:          0,
		Neighbourhood: tsp.SwapMove.String(),
		Trials:        100,
		Schedule: ScheduleConfig{
			Kind:  "energy_scaled",
			Scale: 100,
			Rate:  12,
		},
	}
}

// LoadRunConfig merges defaults, the optional file at path and the environment,
// then validates the result.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()

	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadConfigFromEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *RunConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// JSON is a subset of YAML, so one decoder covers both.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func loadConfigFromEnv(cfg *RunConfig) error {
	if v := os.Getenv("LVANNEAL_POINTS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LVANNEAL_POINTS: %w", err)
		}
		cfg.Points = i
	}
	if v := os.Getenv("LVANNEAL_RADIUS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LVANNEAL_RADIUS: %w", err)
		}
		cfg.Radius = f
	}
	if v := os.Getenv("LVANNEAL_ITERATIONS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LVANNEAL_ITERATIONS: %w", err)
		}
		cfg.Iterations = i
	}
	if v := os.Getenv("LVANNEAL_SEED"); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("LVANNEAL_SEED: %w", err)
		}
		cfg.Seed = i
	}
	if v := os.Getenv("LVANNEAL_NEIGHBOURHOOD"); v != "" {
		cfg.Neighbourhood = v
	}
	if v := os.Getenv("LVANNEAL_TRIALS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LVANNEAL_TRIALS: %w", err)
		}
		cfg.Trials = i
	}
	if v := os.Getenv("LVANNEAL_SAFE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LVANNEAL_SAFE: %w", err)
		}
		cfg.SafeAcceptance = b
	}
	if v := os.Getenv("LVANNEAL_SCHEDULE_KIND"); v != "" {
		cfg.Schedule.Kind = v
	}
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"LVANNEAL_SCHEDULE_SCALE", &cfg.Schedule.Scale},
		{"LVANNEAL_SCHEDULE_RATE", &cfg.Schedule.Rate},
		{"LVANNEAL_SCHEDULE_START", &cfg.Schedule.Start},
		{"LVANNEAL_SCHEDULE_END", &cfg.Schedule.End},
	} {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = x
	}
	return nil
}

// applyFlags copies every flag the user explicitly set on cmd into cfg.
// Flags not registered on cmd are skipped.
func applyFlags(cfg *RunConfig, cmd *cobra.Command) error {
	fs := cmd.Flags()
	var err error
	if f := fs.Lookup("points"); f != nil && f.Changed {
		if cfg.Points, err = fs.GetInt("points"); err != nil {
			return err
		}
	}
	if f := fs.Lookup("radius"); f != nil && f.Changed {
		if cfg.Radius, err = fs.GetFloat64("radius"); err != nil {
			return err
		}
	}
	if f := fs.Lookup("iterations"); f != nil && f.Changed {
		if cfg.Iterations, err = fs.GetInt("iterations"); err != nil {
			return err
		}
	}
	if f := fs.Lookup("seed"); f != nil && f.Changed {
		if cfg.Seed, err = fs.GetInt64("seed"); err != nil {
			return err
		}
	}
	if f := fs.Lookup("neighbourhood"); f != nil && f.Changed {
		if cfg.Neighbourhood, err = fs.GetString("neighbourhood"); err != nil {
			return err
		}
	}
	if f := fs.Lookup("safe"); f != nil && f.Changed {
		if cfg.SafeAcceptance, err = fs.GetBool("safe"); err != nil {
			return err
		}
	}
	if f := fs.Lookup("trials"); f != nil && f.Changed {
		if cfg.Trials, err = fs.GetInt("trials"); err != nil {
			return err
		}
	}
	return cfg.Validate()
}

// Validate checks ranges and that the schedule can be built.
func (c RunConfig) Validate() error {
	if c.Points < 3 {
		return fmt.Errorf("points must be >= 3")
	}
	if !(c.Radius > 0) || math.IsInf(c.Radius, 1) {
		return fmt.Errorf("radius must be > 0 and finite")
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must be >= 0")
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be >= 1")
	}
	if _, err := tsp.ParseNeighbourhood(c.Neighbourhood); err != nil {
		return err
	}
	if _, err := c.Schedule.Build(); err != nil {
		return err
	}
	return nil
}

// Build turns the config into an anneal.Schedule.
func (s ScheduleConfig) Build() (anneal.Schedule, error) {
	switch s.Kind {
	case "", "energy_scaled":
		return anneal.EnergyScaled(s.Scale, s.Rate), nil
	case "exponential":
		return anneal.Exponential(s.Start, s.End)
	case "linear":
		return anneal.Linear(s.Start, s.End)
	default:
		return nil, fmt.Errorf("unknown schedule kind %q", s.Kind)
	}
}

// Options maps the config onto tsp.Options for one run with the given seed.
func (c RunConfig) Options(seed int64) (tsp.Options, error) {
	move, err := tsp.ParseNeighbourhood(c.Neighbourhood)
	if err != nil {
		return tsp.Options{}, err
	}
	sched, err := c.Schedule.Build()
	if err != nil {
		return tsp.Options{}, err
	}
	opts := tsp.DefaultOptions()
	opts.Iterations = c.Iterations
	opts.Seed = seed
	opts.Neighbourhood = move
	opts.Schedule = sched
	opts.SafeAcceptance = c.SafeAcceptance
	return opts, nil
}

// loadForCommand is the shared PreRun path: file + env + flags.
func loadForCommand(cmd *cobra.Command) (RunConfig, error) {
	cfg, err := LoadRunConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if err := applyFlags(&cfg, cmd); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
