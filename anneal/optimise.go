package anneal

import (
	"fmt"
	"math"
)

// Optimise runs numIterations annealing iterations from initial and returns
// the last state reached, which is not necessarily the best one seen.
//
// Contract:
//   - numIterations <= 0 returns initial unchanged without calling a.
//   - Energy is evaluated once for initial and once per candidate.
//   - A candidate is accepted when AcceptProbability(...) >= Random().
//   - Panics raised by the capabilities propagate to the caller.
//
// Complexity: O(numIterations) capability calls.
func Optimise[T any](a Annealer[T], numIterations int, initial T) T {
	if numIterations <= 0 {
		return initial
	}
	var res, _ = walk(a, numIterations, initial, DefaultOptions())
	return res.Final
}

// OptimiseBest runs the same walk as Optimise but returns the lowest-energy
// state observed (the initial state included) together with its energy.
// For numIterations <= 0 it returns initial and its energy, calling only Energy.
func OptimiseBest[T any](a Annealer[T], numIterations int, initial T) (best T, bestEnergy float64) {
	if numIterations <= 0 {
		return initial, a.Energy(initial)
	}
	var res, _ = walk(a, numIterations, initial, DefaultOptions())
	return res.Best, res.BestEnergy
}

// Run is the instrumented form of Optimise. It walks exactly like Optimise,
// reports each iteration to the configured observer and fills a Result with
// the final and best states and the acceptance counters.
//
// With numIterations == 0 it returns initial as both Final and Best without
// calling a; Evaluated is false and the energy fields are left unset.
//
// Errors:
//   - ErrNilAnnealer        if a is nil.
//   - ErrNegativeIterations if numIterations < 0.
//   - whatever a.Validate() returns, when a has such a method
//     (Funcs reports ErrMissingCapability).
//   - ErrRandomOutOfRange   if the random guard is enabled and trips; the
//     partial Result up to the failing iteration is returned alongside.
func Run[T any](a Annealer[T], numIterations int, initial T, opts ...Option) (Result[T], error) {
	if a == nil {
		return Result[T]{}, ErrNilAnnealer
	}
	if numIterations < 0 {
		return Result[T]{}, fmt.Errorf("%w: got %d", ErrNegativeIterations, numIterations)
	}
	if v, ok := a.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return Result[T]{}, err
		}
	}
	if numIterations == 0 {
		return Result[T]{Final: initial, Best: initial}, nil
	}

	var o = DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return walk(a, numIterations, initial, o)
}

// walk is the shared iteration loop. n must be > 0.
func walk[T any](a Annealer[T], n int, initial T, o Options) (Result[T], error) {
	var (
		total   = float64(n)
		current = initial
		energy  = a.Energy(current)
		res     = Result[T]{Best: initial, BestEnergy: energy, Evaluated: true}
		step    Step
		i       int
	)

	for i = 0; i < n; i++ {
		step = Step{
			Iteration:     i,
			Progress:      float64(i+1) / total,
			CurrentEnergy: energy,
		}
		step.Temperature = a.Temperature(step.Progress, energy)

		candidate := a.Neighbour(current)
		step.NeighbourEnergy = a.Energy(candidate)
		step.Probability = a.AcceptProbability(energy, step.NeighbourEnergy, step.Temperature)
		step.Draw = a.Random()

		if o.GuardRandom && !(step.Draw >= 0 && step.Draw < 1) {
			res.Final, res.FinalEnergy, res.Iterations = current, energy, i
			return res, fmt.Errorf("%w: %v at iteration %d", ErrRandomOutOfRange, step.Draw, i)
		}

		if step.Probability >= step.Draw {
			step.Accepted = true
			res.Accepted++
			if step.NeighbourEnergy < energy {
				res.Improved++
			}
			current, energy = candidate, step.NeighbourEnergy
			if energy < res.BestEnergy || math.IsNaN(res.BestEnergy) {
				res.Best, res.BestEnergy = current, energy
			}
		}

		if o.OnStep != nil {
			o.OnStep(step)
		}
	}

	res.Final, res.FinalEnergy, res.Iterations = current, energy, n
	return res, nil
}
