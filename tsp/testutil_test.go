// Package tsp_test provides helpers shared across *_test.go files in this package.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvanneal/tsp"
)

const (
	// numPoints and radius define the classic circle benchmark instance.
	numPoints = 10
	radius    = 100.0

	// scenarioIterations is the budget of the benchmark run.
	scenarioIterations = 1000

	// scenarioSeeds is how many consecutive seeds the acceptance scenario samples.
	scenarioSeeds = 60

	// epsPerimeter absorbs floating-point noise in perimeter comparisons.
	epsPerimeter = 1e-9
)

// circle returns the benchmark points or fails the test.
func circle(t testing.TB) []tsp.Point {
	t.Helper()
	pts, err := tsp.Circle(numPoints, radius)
	require.NoError(t, err)
	return pts
}

// tourOf arranges the circle points in the given tag order.
func tourOf(t testing.TB, tags ...int) tsp.Tour {
	t.Helper()
	pts, err := tsp.Circle(len(tags), radius)
	require.NoError(t, err)
	order := make([]tsp.Point, len(tags))
	for i, tag := range tags {
		order[i] = pts[tag]
	}
	return tsp.Tour{Order: order}
}

// successRate runs the benchmark over scenarioSeeds consecutive seeds and
// returns the fraction whose final tour is in circle order.
func successRate(t *testing.T, move tsp.Neighbourhood) float64 {
	t.Helper()
	pts := circle(t)
	var ok int
	for seed := int64(1); seed <= scenarioSeeds; seed++ {
		opts := tsp.DefaultOptions()
		opts.Seed = seed
		opts.Iterations = scenarioIterations
		opts.Neighbourhood = move

		res, err := tsp.Solve(pts, opts)
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateTour(res.Final, numPoints), "seed=%d", seed)
		if res.CircleOrder {
			ok++
		}
	}
	return float64(ok) / scenarioSeeds
}
