package anneal_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvanneal/anneal"
)

// ExampleAcceptProbability shows the two branches of the Metropolis rule.
func ExampleAcceptProbability() {
	fmt.Printf("%.4f\n", anneal.AcceptProbability(2, 1, 1)) // improvement
	fmt.Printf("%.4f\n", anneal.AcceptProbability(1, 2, 1)) // exp(-1)
	fmt.Printf("%.4f\n", anneal.AcceptProbability(1, 2, 4)) // exp(-1/4)
	// Output:
	// 1.0000
	// 0.3679
	// 0.7788
}

// ExampleOptimise descends |x-42| greedily: the schedule pins the temperature
// at zero and SafeMetropolis rejects every worsening proposal.
func ExampleOptimise() {
	src := anneal.NewSource(2024)
	a := anneal.Funcs[int]{
		RandomFn:      src.Random,
		TemperatureFn: func(_, _ float64) float64 { return 0 },
		EnergyFn:      func(x int) float64 { return math.Abs(float64(x - 42)) },
		NeighbourFn:   func(x int) int { return x + src.Intn(3) - 1 },
		AcceptFn:      anneal.SafeAcceptProbability,
	}
	fmt.Println(anneal.Optimise[int](a, 5000, 0))
	// Output:
	// 42
}

// ExampleRun reports counters alongside the final state.
func ExampleRun() {
	src := anneal.NewSource(1)
	a := anneal.Funcs[int]{
		RandomFn:      src.Random,
		TemperatureFn: func(_, _ float64) float64 { return 0 },
		EnergyFn:      func(x int) float64 { return float64(x * x) },
		NeighbourFn:   func(x int) int { return x - 1 },
	}
	// Each proposal steps down by one; below zero x*x grows again, so the walk stops at 0.
	res, err := anneal.Run[int](a, 20, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Final, res.Improved)
	// Output:
	// 0 5
}
