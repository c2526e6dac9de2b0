// Package tsp is a travelling-salesman state space for the anneal core.
//
// It covers the classic circle benchmark: n tagged points spaced evenly on a
// circle, shuffled, then annealed back into tour order. Because the points
// sit on a circle, the optimal tour visits the tags in ascending or
// descending order, so a result can be verified without an exact solver.
//
//   - Circle builds the tagged points; Tour is the annealed state.
//   - Salesman implements anneal.Annealer[Tour] with two neighbourhoods:
//     SwapMove (exchange two positions) and ReverseMove (2-opt segment
//     reversal). It embeds anneal.Metropolis.
//   - Solve wires it together with Options and returns a Result carrying
//     final/best tours and the circle-order verdict.
//
// Energy is the closed-tour Euclidean perimeter.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - Deterministic: a fixed seed reproduces the shuffle and the whole run.
//   - Neighbour never mutates its input: it works on a Clone.
//
// Complexity (n = points, k = iterations):
//   - Energy:    O(n)
//   - Neighbour: O(n) (clone + O(1) swap or O(n) reversal)
//   - Solve:     O(k·n)
package tsp
