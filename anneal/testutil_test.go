package anneal_test

import (
	"math"

	"github.com/katalvlaran/lvanneal/anneal"
)

// -----------------------------------------------------------------------------
// Test annealers
// -----------------------------------------------------------------------------

// counting records how often each capability is called. Energy is the state
// itself; Neighbour adds one; Random always returns 0.5.
type counting struct {
	anneal.Metropolis
	random, temperature, energy, neighbour int
}

func (c *counting) Random() float64 { c.random++; return 0.5 }

func (c *counting) Temperature(_, _ float64) float64 { c.temperature++; return 1 }

func (c *counting) Energy(x int) float64 { c.energy++; return float64(x) }

func (c *counting) Neighbour(x int) int { c.neighbour++; return x + 1 }

func (c *counting) total() int { return c.random + c.temperature + c.energy + c.neighbour }

// call captures the arguments of one Temperature call.
type call struct {
	progress float64
	energy   float64
}

// scripted replays fixed candidates, probabilities and draws so that every
// decision of the loop is known in advance. States are energies.
type scripted struct {
	candidates []float64 // Neighbour returns candidates[k] on its k-th call
	probs      []float64 // AcceptProbability returns probs[k]
	draws      []float64 // Random returns draws[k]

	k     int // neighbour cursor
	pk    int // probability cursor
	dk    int // draw cursor
	temps []call
}

func (s *scripted) Random() float64 {
	var d = s.draws[s.dk%len(s.draws)]
	s.dk++
	return d
}

func (s *scripted) Temperature(progress, energy float64) float64 {
	s.temps = append(s.temps, call{progress: progress, energy: energy})
	return 1
}

func (s *scripted) Energy(x float64) float64 { return x }

func (s *scripted) Neighbour(_ float64) float64 {
	var c = s.candidates[s.k%len(s.candidates)]
	s.k++
	return c
}

func (s *scripted) AcceptProbability(_, _, _ float64) float64 {
	var p = s.probs[s.pk%len(s.probs)]
	s.pk++
	return p
}

// quadratic walks the integers towards target with ±step proposals, driven
// by a seeded Source. The temperature schedule is configurable.
type quadratic struct {
	anneal.Metropolis
	src      *anneal.Source
	target   int
	step     int
	schedule anneal.Schedule
}

func newQuadratic(seed int64, schedule anneal.Schedule) *quadratic {
	return &quadratic{
		src:      anneal.NewSource(seed),
		target:   42,
		step:     3,
		schedule: schedule,
	}
}

func (q *quadratic) Random() float64 { return q.src.Random() }

func (q *quadratic) Temperature(progress, energy float64) float64 {
	return q.schedule(progress, energy)
}

func (q *quadratic) Energy(x int) float64 {
	var d = float64(x - q.target)
	return d * d
}

func (q *quadratic) Neighbour(x int) int {
	return x + q.src.Intn(2*q.step+1) - q.step
}

// safeQuadratic overrides the acceptance rule through embedding depth.
type safeQuadratic struct {
	*quadratic
	anneal.SafeMetropolis
}

// zeroSchedule forces the temperature to zero throughout the run.
func zeroSchedule(_, _ float64) float64 { return 0 }

// -----------------------------------------------------------------------------
// Numeric helpers
// -----------------------------------------------------------------------------

// floatsClose checks absolute, then relative closeness.
func floatsClose(a, b, rel, abs float64) bool {
	if a == b {
		return true
	}
	var diff = math.Abs(a - b)
	if diff <= abs {
		return true
	}
	return diff <= rel*math.Max(math.Abs(a), math.Abs(b))
}
