package tsp_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvanneal/anneal"
	"github.com/katalvlaran/lvanneal/tsp"
)

// TestNewSalesman_Errors rejects a missing source and unknown moves.
func TestNewSalesman_Errors(t *testing.T) {
	_, err := tsp.NewSalesman(nil, tsp.SwapMove, nil)
	require.ErrorIs(t, err, tsp.ErrNilSource)

	_, err = tsp.NewSalesman(anneal.NewSource(1), tsp.Neighbourhood(9), nil)
	require.ErrorIs(t, err, tsp.ErrUnknownNeighbourhood)
}

// TestSalesman_NeighbourDoesNotMutate: the input tour must survive untouched.
func TestSalesman_NeighbourDoesNotMutate(t *testing.T) {
	for _, move := range []tsp.Neighbourhood{tsp.SwapMove, tsp.ReverseMove} {
		s, err := tsp.NewSalesman(anneal.NewSource(3), move, nil)
		require.NoError(t, err)

		in := tsp.NewTour(circle(t))
		before := in.Tags()
		for k := 0; k < 200; k++ {
			out := s.Neighbour(in)
			require.Equal(t, before, in.Tags(), "%s mutated its input", move)
			require.NoError(t, tsp.ValidateTour(out, numPoints))
		}
	}
}

// TestSalesman_SwapTouchesAtMostTwo: a swap differs in zero or two positions.
func TestSalesman_SwapTouchesAtMostTwo(t *testing.T) {
	s, err := tsp.NewSalesman(anneal.NewSource(8), tsp.SwapMove, nil)
	require.NoError(t, err)
	in := tsp.NewTour(circle(t))
	for k := 0; k < 200; k++ {
		out := s.Neighbour(in)
		var diff int
		for i := range in.Order {
			if in.Order[i] != out.Order[i] {
				diff++
			}
		}
		require.Contains(t, []int{0, 2}, diff)
	}
}

// TestSalesman_ReverseIsSegmentReversal: outside a contiguous window the tour
// is unchanged, inside it is reversed.
func TestSalesman_ReverseIsSegmentReversal(t *testing.T) {
	s, err := tsp.NewSalesman(anneal.NewSource(12), tsp.ReverseMove, nil)
	require.NoError(t, err)
	in := tsp.NewTour(circle(t))
	for k := 0; k < 200; k++ {
		got := s.Neighbour(in).Tags()
		lo, hi := 0, numPoints-1
		for lo < numPoints && got[lo] == lo {
			lo++
		}
		if lo == numPoints {
			continue // i == j
		}
		for got[hi] == hi {
			hi--
		}
		window := slices.Clone(got[lo : hi+1])
		slices.Reverse(window)
		for i, v := range window {
			require.Equal(t, lo+i, v, "tags=%v", got)
		}
	}
}

// TestSalesman_EnergyAndTemperature wire to Perimeter and the schedule.
func TestSalesman_EnergyAndTemperature(t *testing.T) {
	s, err := tsp.NewSalesman(anneal.NewSource(1), tsp.SwapMove, nil)
	require.NoError(t, err)
	tour := tsp.NewTour(circle(t))
	require.Equal(t, tour.Perimeter(), s.Energy(tour))
	require.Equal(t, tsp.DefaultSchedule()(0.5, 600), s.Temperature(0.5, 600))

	r := s.Random()
	require.GreaterOrEqual(t, r, 0.0)
	require.Less(t, r, 1.0)
	require.Equal(t, anneal.AcceptProbability(1, 2, 3), s.AcceptProbability(1, 2, 3))
}
