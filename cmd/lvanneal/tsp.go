package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvanneal/anneal"
	"github.com/katalvlaran/lvanneal/tsp"
)

var tspCmd = &cobra.Command{
	Use:   "tsp",
	Short: "Run the circle benchmark once",
	Long: `Builds the circle, shuffles it under the seed, anneals and reports
whether the final tour visits the tags in circle order.`,
	RunE: runTSP,
}

func init() {
	addRunFlags(tspCmd)
	tspCmd.Flags().String("format", "text", "Output format: text, yaml")
	rootCmd.AddCommand(tspCmd)
}

// addRunFlags registers the flags shared by tsp and trials.
func addRunFlags(cmd *cobra.Command) {
	def := DefaultRunConfig()
	cmd.Flags().Int("points", def.Points, "Number of points on the circle")
	cmd.Flags().Float64("radius", def.Radius, "Circle radius")
	cmd.Flags().Int("iterations", def.Iterations, "Annealing iterations per run")
	cmd.Flags().Int64("seed", def.Seed, "Random seed (0 = default seed)")
	cmd.Flags().String("neighbourhood", def.Neighbourhood, "Neighbourhood: swap, reverse")
	cmd.Flags().Bool("safe", def.SafeAcceptance, "Never accept worsening moves at temperature <= 0")
}

func runTSP(cmd *cobra.Command, args []string) error {
	cfg, err := loadForCommand(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q", format)
	}

	res, err := solveOnce(cfg, cfg.Seed, stepLogger(cfg.Iterations))
	if err != nil {
		return err
	}
	slog.Info("Run complete",
		"seed", cfg.Seed,
		"final_energy", res.FinalEnergy,
		"best_energy", res.BestEnergy,
		"accepted", res.Accepted,
		"circle_order", res.CircleOrder,
	)

	rep := newRunReport(cfg, cfg.Seed, res)
	if format == "yaml" {
		return writeYAML(cmd.OutOrStdout(), rep)
	}
	return rep.writeText(cmd.OutOrStdout())
}

// solveOnce builds the circle for cfg and anneals it with the given seed.
func solveOnce(cfg RunConfig, seed int64, onStep func(anneal.Step)) (tsp.Result, error) {
	pts, err := tsp.Circle(cfg.Points, cfg.Radius)
	if err != nil {
		return tsp.Result{}, err
	}
	opts, err := cfg.Options(seed)
	if err != nil {
		return tsp.Result{}, err
	}
	opts.OnStep = onStep
	return tsp.Solve(pts, opts)
}

// stepLogger logs roughly ten progress lines per run at debug level.
// It returns nil when debug logging is off, so the run skips the hook.
func stepLogger(iterations int) func(anneal.Step) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}
	var every = iterations / 10
	if every < 1 {
		every = 1
	}
	return func(s anneal.Step) {
		if s.Iteration%every != 0 && s.Iteration != iterations-1 {
			return
		}
		slog.Debug("Step",
			"iter", s.Iteration,
			"progress", s.Progress,
			"temperature", s.Temperature,
			"energy", s.CurrentEnergy,
			"candidate", s.NeighbourEnergy,
			"p", s.Probability,
			"accepted", s.Accepted,
		)
	}
}
