package anneal

import "errors"

// Sentinel errors for annealing runs.
var (
	// ErrNilAnnealer is returned when Run receives a nil Annealer.
	ErrNilAnnealer = errors.New("anneal: annealer is nil")

	// ErrNegativeIterations is returned when the iteration budget is below zero.
	ErrNegativeIterations = errors.New("anneal: iteration count must be >= 0")

	// ErrRandomOutOfRange is returned by guarded runs when Random() yields a
	// value outside [0,1) or NaN.
	ErrRandomOutOfRange = errors.New("anneal: random draw outside [0,1)")

	// ErrMissingCapability is returned when a Funcs adapter lacks a required function.
	ErrMissingCapability = errors.New("anneal: missing capability")

	// ErrInvalidSchedule is returned by schedule constructors for unusable bounds.
	ErrInvalidSchedule = errors.New("anneal: invalid schedule bounds")
)

// Annealer is the capability set a state space must provide so that the
// generic loop can search it without knowing anything about the domain.
//
// Contracts:
//   - Random returns the next value of a uniform source in [0,1). The source
//     belongs to the implementation and must not need reseeding between calls.
//   - Temperature receives progress in (0,1] and the energy of the current
//     state. No bounds are enforced on the returned value.
//   - Energy is pure: an unchanged state always evaluates to the same value.
//     Lower is better.
//   - Neighbour derives a candidate from state by a local perturbation and
//     must not mutate state as observed by the caller.
//   - AcceptProbability maps (current, neighbour, temperature) to the
//     probability of moving. Embed Metropolis to get the standard rule.
type Annealer[T any] interface {
	Random() float64
	Temperature(progress, energy float64) float64
	Energy(state T) float64
	Neighbour(state T) T
	AcceptProbability(current, neighbour, temperature float64) float64
}

// Step describes one completed iteration. It is handed to OnStep observers.
type Step struct {
	// Iteration is the zero-based iteration index.
	Iteration int

	// Progress is (Iteration+1)/n, in (0,1].
	Progress float64

	// Temperature is the value returned by Annealer.Temperature.
	Temperature float64

	// CurrentEnergy is the incumbent energy before the decision.
	CurrentEnergy float64

	// NeighbourEnergy is the energy of the proposed candidate.
	NeighbourEnergy float64

	// Probability is the value returned by Annealer.AcceptProbability.
	Probability float64

	// Draw is the value returned by Annealer.Random.
	Draw float64

	// Accepted reports whether the candidate replaced the incumbent.
	Accepted bool
}

// Result holds the outcome of Run.
type Result[T any] struct {
	// Final is the last state reached; this is what Optimise returns.
	Final T

	// FinalEnergy is the energy of Final. Unset unless Evaluated.
	FinalEnergy float64

	// Best is the lowest-energy state seen, including the initial state.
	// Ties keep the earlier state.
	Best T

	// BestEnergy is the energy of Best. Unset unless Evaluated.
	BestEnergy float64

	// Evaluated reports whether the loop ran and filled the energy fields.
	// It is false for an empty budget, where no capability is called.
	Evaluated bool

	// Iterations is the number of iterations performed.
	Iterations int

	// Accepted counts candidates that replaced the incumbent.
	Accepted int

	// Improved counts accepted candidates with strictly lower energy.
	Improved int
}
