package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvanneal/tsp"
)

// RunReport is the printable outcome of one benchmark run.
type RunReport struct {
	Seed          int64   `yaml:"seed"`
	Points        int     `yaml:"points"`
	Iterations    int     `yaml:"iterations"`
	Neighbourhood string  `yaml:"neighbourhood"`
	InitialTags   []int   `yaml:"initial_tags"`
	FinalTags     []int   `yaml:"final_tags"`
	InitialEnergy float64 `yaml:"initial_energy"`
	FinalEnergy   float64 `yaml:"final_energy"`
	BestEnergy    float64 `yaml:"best_energy"`
	OptimalEnergy float64 `yaml:"optimal_energy"`
	Accepted      int     `yaml:"accepted"`
	Improved      int     `yaml:"improved"`
	CircleOrder   bool    `yaml:"circle_order"`
	BreakFrom     *int    `yaml:"break_from,omitempty"`
	BreakTo       *int    `yaml:"break_to,omitempty"`
}

// TrialsReport summarizes repeated runs over consecutive seeds.
type TrialsReport struct {
	FirstSeed     int64   `yaml:"first_seed"`
	Trials        int     `yaml:"trials"`
	Successes     int     `yaml:"successes"`
	SuccessRate   float64 `yaml:"success_rate"`
	MeanFinal     float64 `yaml:"mean_final_energy"`
	OptimalEnergy float64 `yaml:"optimal_energy"`
}

func newRunReport(cfg RunConfig, seed int64, res tsp.Result) RunReport {
	r := RunReport{
		Seed:          seed,
		Points:        cfg.Points,
		Iterations:    res.Iterations,
		Neighbourhood: cfg.Neighbourhood,
		InitialTags:   res.Initial.Tags(),
		FinalTags:     res.Final.Tags(),
		InitialEnergy: res.Initial.Perimeter(),
		FinalEnergy:   res.FinalEnergy,
		BestEnergy:    res.BestEnergy,
		OptimalEnergy: tsp.OptimalPerimeter(cfg.Points, cfg.Radius),
		Accepted:      res.Accepted,
		Improved:      res.Improved,
		CircleOrder:   res.CircleOrder,
	}
	if !res.CircleOrder && res.Break.Index >= 0 {
		from, to := res.Break.From, res.Break.To
		r.BreakFrom, r.BreakTo = &from, &to
	}
	return r
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r RunReport) writeText(w io.Writer) error {
	var verdict = "Optimal solution was found!"
	if !r.CircleOrder {
		verdict = "Optimal solution was not found :("
		if r.BreakFrom != nil {
			verdict = fmt.Sprintf("%d:%d\n%s", *r.BreakFrom, *r.BreakTo, verdict)
		}
	}
	_, err := fmt.Fprintf(w,
		"seed %d, %d points, %d iterations (%s)\ninitial %v  energy %.4f\nfinal   %v  energy %.4f (best %.4f, optimal %.4f)\naccepted %d, improved %d\n%s\n",
		r.Seed, r.Points, r.Iterations, r.Neighbourhood,
		r.InitialTags, r.InitialEnergy,
		r.FinalTags, r.FinalEnergy, r.BestEnergy, r.OptimalEnergy,
		r.Accepted, r.Improved,
		verdict,
	)
	return err
}

func (r TrialsReport) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"%d/%d trials reached circle order (%.1f%%), seeds %d..%d\nmean final energy %.4f (optimal %.4f)\n",
		r.Successes, r.Trials, 100*r.SuccessRate, r.FirstSeed, r.FirstSeed+int64(r.Trials)-1,
		r.MeanFinal, r.OptimalEnergy,
	)
	return err
}
