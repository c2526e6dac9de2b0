package tsp

import "github.com/katalvlaran/lvanneal/anneal"

// Salesman is the annealing state space over Tour. It owns its random source
// exclusively for the duration of a run and is not goroutine-safe.
//
// Acceptance comes from the embedded anneal.Metropolis.
type Salesman struct {
	anneal.Metropolis

	src      *anneal.Source
	move     Neighbourhood
	schedule anneal.Schedule
}

// NewSalesman builds a Salesman. A nil schedule defaults to DefaultSchedule().
//
// Errors: ErrNilSource, ErrUnknownNeighbourhood.
func NewSalesman(src *anneal.Source, move Neighbourhood, schedule anneal.Schedule) (*Salesman, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if move != SwapMove && move != ReverseMove {
		return nil, ErrUnknownNeighbourhood
	}
	if schedule == nil {
		schedule = DefaultSchedule()
	}
	return &Salesman{src: src, move: move, schedule: schedule}, nil
}

// Random draws from the owned source.
func (s *Salesman) Random() float64 { return s.src.Random() }

// Temperature delegates to the configured schedule.
func (s *Salesman) Temperature(progress, energy float64) float64 {
	return s.schedule(progress, energy)
}

// Energy is the closed-tour perimeter.
func (s *Salesman) Energy(t Tour) float64 { return t.Perimeter() }

// Neighbour draws two positions uniformly (they may coincide, which yields an
// unchanged copy) and applies the configured move to a clone of t.
//
// Complexity: O(n).
func (s *Salesman) Neighbour(t Tour) Tour {
	var (
		next = t.Clone()
		n    = next.Len()
	)
	if n < 2 {
		return next
	}
	i, j := s.src.Intn(n), s.src.Intn(n)
	switch s.move {
	case ReverseMove:
		reverseSegmentInPlace(next.Order, i, j)
	default:
		next.Order[i], next.Order[j] = next.Order[j], next.Order[i]
	}
	return next
}

// safeSalesman overrides the acceptance rule: SafeMetropolis sits one level
// shallower than the Metropolis embedded in Salesman, so it wins.
type safeSalesman struct {
	*Salesman
	anneal.SafeMetropolis
}
