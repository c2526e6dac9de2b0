package anneal

import "fmt"

// Funcs adapts plain functions to the Annealer contract, for state spaces
// that do not warrant their own type. AcceptFn is optional; when nil the
// Metropolis rule is used.
//
// Example:
//
//	src := anneal.NewSource(7)
//	a := anneal.Funcs[int]{
//	    RandomFn:      src.Random,
//	    TemperatureFn: anneal.EnergyScaled(10, 8),
//	    EnergyFn:      func(x int) float64 { return float64((x - 42) * (x - 42)) },
//	    NeighbourFn:   func(x int) int { return x + src.Intn(3) - 1 },
//	}
//	x := anneal.Optimise[int](a, 5000, 0)
type Funcs[T any] struct {
	RandomFn      func() float64
	TemperatureFn Schedule
	EnergyFn      func(T) float64
	NeighbourFn   func(T) T
	AcceptFn      func(current, neighbour, temperature float64) float64
}

// Validate reports the first missing required function as ErrMissingCapability.
// Run calls it before iterating.
func (f Funcs[T]) Validate() error {
	switch {
	case f.RandomFn == nil:
		return fmt.Errorf("%w: RandomFn", ErrMissingCapability)
	case f.TemperatureFn == nil:
		return fmt.Errorf("%w: TemperatureFn", ErrMissingCapability)
	case f.EnergyFn == nil:
		return fmt.Errorf("%w: EnergyFn", ErrMissingCapability)
	case f.NeighbourFn == nil:
		return fmt.Errorf("%w: NeighbourFn", ErrMissingCapability)
	}
	return nil
}

func (f Funcs[T]) Random() float64 { return f.RandomFn() }

func (f Funcs[T]) Temperature(progress, energy float64) float64 {
	return f.TemperatureFn(progress, energy)
}

func (f Funcs[T]) Energy(state T) float64 { return f.EnergyFn(state) }

func (f Funcs[T]) Neighbour(state T) T { return f.NeighbourFn(state) }

func (f Funcs[T]) AcceptProbability(current, neighbour, temperature float64) float64 {
	if f.AcceptFn == nil {
		return AcceptProbability(current, neighbour, temperature)
	}
	return f.AcceptFn(current, neighbour, temperature)
}
