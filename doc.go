// Package lvanneal is a small, generic simulated-annealing toolkit.
//
// What is inside
//
//	anneal/        the core: Annealer[T] contract, Metropolis rule,
//	               Optimise / OptimiseBest / Run, seeded Source, schedules
//	tsp/           a travelling-salesman state space on tagged points,
//	               with the circle benchmark and tour verification
//	cmd/lvanneal/  CLI driver for the circle benchmark (single run, trials)
//
// Why
//
//   - One capability contract, any state type: bring Energy, Neighbour,
//     Temperature and Random; the loop does the rest.
//   - Deterministic: seed the Source, replay the run.
//   - Pure Go, no cgo; the library packages have no dependencies beyond
//     the standard library.
//
// Quick example:
//
//	final := anneal.Optimise[tsp.Tour](salesman, 1000, initial)
//
//	go get github.com/katalvlaran/lvanneal/anneal
package lvanneal
