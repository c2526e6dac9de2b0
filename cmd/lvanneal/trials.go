package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvanneal/tsp"
)

var trialsCmd = &cobra.Command{
	Use:   "trials",
	Short: "Run the circle benchmark over consecutive seeds",
	Long: `Runs the benchmark once per seed, one after another, starting at --seed
(or 1 when the seed is 0), and reports how often circle order was reached.`,
	RunE: runTrials,
}

func init() {
	addRunFlags(trialsCmd)
	trialsCmd.Flags().Int("trials", DefaultRunConfig().Trials, "Number of runs")
	trialsCmd.Flags().String("format", "text", "Output format: text, yaml")
	rootCmd.AddCommand(trialsCmd)
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, err := loadForCommand(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q", format)
	}

	rep, err := runTrialSeries(cfg)
	if err != nil {
		return err
	}
	slog.Info("Trials complete", "trials", rep.Trials, "successes", rep.Successes, "rate", rep.SuccessRate)

	if format == "yaml" {
		return writeYAML(cmd.OutOrStdout(), rep)
	}
	return rep.writeText(cmd.OutOrStdout())
}

// runTrialSeries runs cfg.Trials sequential benchmark runs on consecutive seeds.
func runTrialSeries(cfg RunConfig) (TrialsReport, error) {
	var first = cfg.Seed
	if first == 0 {
		first = 1
	}
	rep := TrialsReport{
		FirstSeed:     first,
		Trials:        cfg.Trials,
		OptimalEnergy: tsp.OptimalPerimeter(cfg.Points, cfg.Radius),
	}

	var sum float64
	for i := 0; i < cfg.Trials; i++ {
		seed := first + int64(i)
		res, err := solveOnce(cfg, seed, nil)
		if err != nil {
			return rep, fmt.Errorf("trial %d (seed %d): %w", i, seed, err)
		}
		if res.CircleOrder {
			rep.Successes++
		}
		sum += res.FinalEnergy
		slog.Debug("Trial", "seed", seed, "final_energy", res.FinalEnergy, "circle_order", res.CircleOrder)
	}
	rep.SuccessRate = float64(rep.Successes) / float64(cfg.Trials)
	rep.MeanFinal = sum / float64(cfg.Trials)
	return rep, nil
}
