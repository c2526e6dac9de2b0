// Package anneal provides a generic simulated-annealing core over an arbitrary
// state type T.
//
// What
//
//   - Annealer[T] is the capability contract a state space must satisfy:
//     Random, Temperature, Energy, Neighbour and AcceptProbability.
//   - Metropolis is the default acceptance rule. Embed it in your annealer to
//     inherit it; define your own AcceptProbability method to override it.
//   - Optimise drives a fixed number of iterations and returns the LAST state
//     reached. OptimiseBest runs the same walk and returns the best state seen.
//   - Run is the instrumented variant: per-step observer hooks, an optional
//     guard on the random draws, and a Result with acceptance counters.
//   - Source is a seeded, single-owner uniform generator; Schedule and its
//     constructors (EnergyScaled, Exponential, Linear) cover fixed cooling.
//
// Algorithm (per iteration i of n)
//
//  1. progress    = (i+1)/n
//  2. temperature = Temperature(progress, currentEnergy)
//  3. candidate   = Neighbour(current)
//  4. candEnergy  = Energy(candidate)
//  5. p           = AcceptProbability(currentEnergy, candEnergy, temperature)
//  6. if p >= Random(): current, currentEnergy = candidate, candEnergy
//
// The energy of the current state is evaluated once before the loop and then
// only replaced on acceptance, so Energy must be a pure function of the state.
// Neighbour must return a fresh value and leave its input untouched.
//
// Determinism
//
//	The loop itself has no hidden randomness: two runs with identical inputs
//	and a Random() stream that replays the same sequence end in identical states.
//
// Concurrency
//
//	Single-threaded and synchronous. No context, no cancellation: the only
//	bound on work is the iteration budget. Source is NOT goroutine-safe.
//
// Numerics
//
//	Metropolis divides by the temperature without a guard. A zero temperature
//	yields exp(-Inf)=0 for worsening moves and NaN (never accepted) for equal
//	energies; a negative temperature makes every worsening move certain.
//	SafeMetropolis is the opt-in variant that maps temperature <= 0 to
//	"never accept a worsening move".
//
// Complexity (n = iterations)
//
//   - Time:   O(n · (cost(Neighbour) + cost(Energy)))
//   - Memory: O(1) beyond the states held by the caller's capabilities.
//
// Usage
//
//	type walker struct {
//	    anneal.Metropolis
//	    src *anneal.Source
//	}
//	// ... Random, Temperature, Energy, Neighbour ...
//
//	final := anneal.Optimise[int](w, 1000, start)
//
// Errors
//
//   - ErrNilAnnealer        if Run receives a nil annealer.
//   - ErrNegativeIterations if Run receives n < 0.
//   - ErrRandomOutOfRange   if WithRandomGuard is on and Random() leaves [0,1).
//   - ErrMissingCapability  if a Funcs adapter lacks a required function.
//   - ErrInvalidSchedule    if a schedule constructor receives unusable bounds.
package anneal
