package anneal

import "math"

// Metropolis supplies the standard acceptance rule. Embed it in an annealer
// type to satisfy the AcceptProbability part of Annealer; declaring an own
// AcceptProbability method on the outer type overrides it.
type Metropolis struct{}

// AcceptProbability implements the Metropolis criterion; see AcceptProbability.
func (Metropolis) AcceptProbability(current, neighbour, temperature float64) float64 {
	return AcceptProbability(current, neighbour, temperature)
}

// SafeMetropolis is Metropolis with a guard on the temperature: a
// non-positive or NaN temperature never accepts a worsening move.
type SafeMetropolis struct{}

// AcceptProbability implements the guarded criterion; see SafeAcceptProbability.
func (SafeMetropolis) AcceptProbability(current, neighbour, temperature float64) float64 {
	return SafeAcceptProbability(current, neighbour, temperature)
}

// AcceptProbability returns 1 when neighbour < current, and otherwise
// exp(-(neighbour-current)/temperature).
//
// The division is not guarded. With temperature == 0 a worsening move gets
// exp(-Inf) == 0 and an equal move gets NaN; with temperature < 0 every
// worsening move gets a value above 1.
//
// Complexity: O(1).
func AcceptProbability(current, neighbour, temperature float64) float64 {
	if neighbour < current {
		return 1.0
	}
	return math.Exp(-(neighbour - current) / temperature)
}

// SafeAcceptProbability behaves like AcceptProbability for temperature > 0.
// Otherwise it returns 1 for a non-worsening move and 0 for a worsening one,
// so the result is always within [0,1] for finite energies.
//
// Complexity: O(1).
func SafeAcceptProbability(current, neighbour, temperature float64) float64 {
	if neighbour < current {
		return 1.0
	}
	// !(t > 0) also catches NaN.
	if !(temperature > 0) {
		if neighbour == current {
			return 1.0
		}
		return 0.0
	}
	return math.Exp(-(neighbour - current) / temperature)
}
