package tsp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvanneal/anneal"
)

// Sentinel errors for the tsp package.
var (
	// ErrTooFewPoints is returned when fewer than three points are supplied.
	ErrTooFewPoints = errors.New("tsp: at least 3 points required")

	// ErrBadRadius is returned for a non-positive or non-finite circle radius.
	ErrBadRadius = errors.New("tsp: radius must be positive and finite")

	// ErrDimensionMismatch is returned when tags do not form a permutation of 0..n-1.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrUnknownNeighbourhood is returned for an unsupported Neighbourhood value.
	ErrUnknownNeighbourhood = errors.New("tsp: unknown neighbourhood")

	// ErrNegativeIterations is returned when Options.Iterations < 0.
	ErrNegativeIterations = errors.New("tsp: iterations must be >= 0")

	// ErrNilSource is returned when a Salesman is built without a random source.
	ErrNilSource = errors.New("tsp: random source is nil")
)

// Point is a tagged location in the plane. Tags identify the point's rank
// around the circle and are what tour verification looks at.
type Point struct {
	X   float64
	Y   float64
	Tag int
}

// Neighbourhood selects how Salesman perturbs a tour.
type Neighbourhood int

const (
	// SwapMove exchanges two uniformly drawn positions (they may coincide).
	SwapMove Neighbourhood = iota

	// ReverseMove reverses the segment between two drawn positions (2-opt).
	ReverseMove
)

// String returns the flag/config spelling of n.
func (n Neighbourhood) String() string {
	switch n {
	case SwapMove:
		return "swap"
	case ReverseMove:
		return "reverse"
	default:
		return fmt.Sprintf("Neighbourhood(%d)", int(n))
	}
}

// ParseNeighbourhood maps "swap" or "reverse" (case-insensitive) to a Neighbourhood.
func ParseNeighbourhood(s string) (Neighbourhood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "swap", "":
		return SwapMove, nil
	case "reverse", "2opt", "2-opt":
		return ReverseMove, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownNeighbourhood, s)
	}
}

// Options configures Solve.
type Options struct {
	// Iterations is the annealing budget. Zero returns the shuffled tour as-is.
	Iterations int

	// Seed drives both the initial shuffle and the run (0 ⇒ default seed).
	Seed int64

	// Shuffle randomizes the input order before annealing.
	Shuffle bool

	// Neighbourhood chooses the perturbation operator.
	Neighbourhood Neighbourhood

	// Schedule overrides the temperature schedule. Nil ⇒ EnergyScaled(100, 12).
	Schedule anneal.Schedule

	// SafeAcceptance swaps Metropolis for SafeMetropolis.
	SafeAcceptance bool

	// OnStep, when set, observes every annealing iteration.
	OnStep func(anneal.Step)
}

// DefaultOptions returns the classic circle benchmark settings:
// 1000 iterations, shuffled input, swap moves, EnergyScaled(100, 12).
func DefaultOptions() Options {
	return Options{
		Iterations:    1000,
		Seed:          0,
		Shuffle:       true,
		Neighbourhood: SwapMove,
		Schedule:      DefaultSchedule(),
	}
}

// DefaultSchedule is 100·e^(-12·progress)·energy.
func DefaultSchedule() anneal.Schedule {
	return anneal.EnergyScaled(100, 12)
}

// Break locates the first adjacent pair that violates circle order.
type Break struct {
	// Index is the position of the first point of the pair; its successor is
	// (Index+1) mod n. -1 when there is no break.
	Index int

	// From and To are the tags of the offending pair.
	From int
	To   int
}

// Result holds the outcome of Solve.
type Result struct {
	Initial     Tour
	Final       Tour
	FinalEnergy float64
	Best        Tour
	BestEnergy  float64

	Iterations int
	Accepted   int
	Improved   int

	// CircleOrder reports whether Final visits the tags in circle order.
	CircleOrder bool

	// Break is the first violation in Final when CircleOrder is false.
	Break Break
}
