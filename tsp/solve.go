// Package tsp - entry point for annealing a set of tagged points.
//
// Solve validates the input, builds the initial tour (shuffled under the
// seed when requested), runs anneal.Run and verifies the outcome.
//
// Design principles:
//   - Deterministic: one seed drives shuffle and run (on separate sub-streams);
//     no time-based randomness.
//   - Strict sentinels: only errors from types.go (wrapped with context).
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvanneal/anneal"
)

// walkStream is the Source sub-stream that drives moves and acceptance draws,
// kept apart from the shuffle stream.
const walkStream = 1

// Solve anneals points into a short tour.
//
// Contracts:
//   - len(points) >= 3 and their tags form a permutation of {0..n-1}.
//   - opts passes Validate.
//   - The caller's slice is never modified.
//
// Complexity: O(n) setup + O(Iterations·n) annealing.
func Solve(points []Point, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	var n = len(points)
	if n < 3 {
		return Result{}, ErrTooFewPoints
	}
	initial := NewTour(points)
	if err := ValidateTour(initial, n); err != nil {
		return Result{}, fmt.Errorf("%w: tags must be a permutation of 0..%d", err, n-1)
	}

	src := anneal.NewSource(opts.Seed)
	if opts.Shuffle {
		src.Shuffle(n, func(i, j int) {
			initial.Order[i], initial.Order[j] = initial.Order[j], initial.Order[i]
		})
	}

	s, err := NewSalesman(src.Derive(walkStream), opts.Neighbourhood, opts.Schedule)
	if err != nil {
		return Result{}, err
	}
	var a anneal.Annealer[Tour] = s
	if opts.SafeAcceptance {
		a = safeSalesman{Salesman: s}
	}

	var runOpts []anneal.Option
	if opts.OnStep != nil {
		runOpts = append(runOpts, anneal.WithOnStep(opts.OnStep))
	}
	res, err := anneal.Run(a, opts.Iterations, initial.Clone(), runOpts...)
	if err != nil {
		return Result{}, err
	}

	out := Result{
		Initial:     initial,
		Final:       res.Final,
		FinalEnergy: res.FinalEnergy,
		Best:        res.Best,
		BestEnergy:  res.BestEnergy,
		Iterations:  res.Iterations,
		Accepted:    res.Accepted,
		Improved:    res.Improved,
	}
	if !res.Evaluated {
		out.FinalEnergy = initial.Perimeter()
		out.BestEnergy = out.FinalEnergy
	}
	out.CircleOrder, out.Break = IsCircleOrder(out.Final)
	return out, nil
}
