// Package tsp: tour utilities used by the annealer and by verification.
//
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - Tour: the annealed state (open cyclic order of points).
//   - ValidateTour: tags of a tour form a permutation of {0..n-1}.
//   - IsCircleOrder: every cyclic neighbour pair differs by ±1 mod n.
//   - Canonical: rotate to tag 0 and fix the orientation, for comparisons.
//   - reverseSegmentInPlace: inclusive segment reversal (2-opt core).
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

import "math"

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n || n <= 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range or duplicate elements break the bijection.
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// Tour is a cyclic visiting order. The closing edge from the last point back
// to the first is implicit.
type Tour struct {
	Order []Point
}

// NewTour returns a Tour over an independent copy of points.
func NewTour(points []Point) Tour {
	order := make([]Point, len(points))
	copy(order, points)
	return Tour{Order: order}
}

// Len returns the number of points in the tour.
func (t Tour) Len() int { return len(t.Order) }

// Clone returns an independent copy. Points are values, so a slice copy suffices.
func (t Tour) Clone() Tour { return NewTour(t.Order) }

// Tags returns the tags in visiting order.
func (t Tour) Tags() []int {
	tags := make([]int, len(t.Order))
	for i, p := range t.Order {
		tags[i] = p.Tag
	}
	return tags
}

// Perimeter is the Euclidean length of the closed tour.
// Tours with fewer than two points have zero length.
//
// Complexity: O(n).
func (t Tour) Perimeter() float64 {
	var (
		n     = len(t.Order)
		total float64
		i     int
		a, b  Point
	)
	if n < 2 {
		return 0
	}
	for i = 0; i < n; i++ {
		a, b = t.Order[i], t.Order[(i+1)%n]
		total += math.Hypot(a.X-b.X, a.Y-b.Y)
	}
	return total
}

// ValidateTour checks that the tags of t form a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(t Tour, n int) error {
	return ValidatePermutation(t.Tags(), n)
}

// IsCircleOrder reports whether every cyclic neighbour pair of t has tags
// that differ by exactly ±1 modulo n = t.Len(). On failure it returns the
// first offending pair; on success Break.Index is -1.
//
// Complexity: O(n).
func IsCircleOrder(t Tour) (bool, Break) {
	var (
		n    = len(t.Order)
		i    int
		a, b int
	)
	if n == 0 {
		return false, Break{Index: -1}
	}
	for i = 0; i < n; i++ {
		a = t.Order[i].Tag
		b = t.Order[(i+1)%n].Tag
		if mod(a+1, n) != mod(b, n) && mod(a-1, n) != mod(b, n) {
			return false, Break{Index: i, From: a, To: b}
		}
	}
	return true, Break{Index: -1}
}

// Canonical returns the tags of t rotated so that tag 0 comes first and
// oriented so that the second tag is the smaller of 0's two neighbours.
// Tours that are the same cycle in either direction share a canonical form.
// If tag 0 is absent, the plain tag order is returned.
//
// Complexity: O(n).
func Canonical(t Tour) []int {
	var (
		tags  = t.Tags()
		n     = len(tags)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if tags[i] == 0 {
			pivot = i
			break
		}
	}
	if pivot == -1 || n < 3 {
		return tags
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tags[(pivot+i)%n]
	}
	if out[n-1] < out[1] {
		// Keep out[0], reverse the rest.
		for i = 1; i < n-i; i++ {
			out[i], out[n-i] = out[n-i], out[i]
		}
	}
	return out
}

// reverseSegmentInPlace reverses order[i..k] inclusive. Arguments may come in
// either order; i == k is a no-op. This is the 2-opt primitive on an open
// cyclic order: it replaces edges (i-1,i) and (k,k+1).
//
// Complexity: O(|k-i|) time, O(1) space.
func reverseSegmentInPlace(order []Point, i, k int) {
	if i > k {
		i, k = k, i
	}
	for i < k {
		order[i], order[k] = order[k], order[i]
		i++
		k--
	}
}

// mod is the Euclidean remainder (always in [0,n)).
func mod(a, n int) int {
	var r = a % n
	if r < 0 {
		r += n
	}
	return r
}
