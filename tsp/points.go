package tsp

import "math"

// Circle places n points evenly on a circle of the given radius centred at
// the origin. Point i sits at angle 2πi/n and carries Tag i.
//
// Errors: ErrTooFewPoints (n < 3), ErrBadRadius (radius <= 0, NaN or ±Inf).
//
// Complexity: O(n).
func Circle(n int, radius float64) ([]Point, error) {
	if n < 3 {
		return nil, ErrTooFewPoints
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, ErrBadRadius
	}

	var (
		pts = make([]Point, n)
		th  float64
		i   int
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: radius * math.Cos(th), Y: radius * math.Sin(th), Tag: i}
	}
	return pts, nil
}

// OptimalPerimeter is the perimeter of the regular n-gon inscribed in a
// circle of the given radius: n · 2r · sin(π/n). It is the energy of any
// tour in circle order.
func OptimalPerimeter(n int, radius float64) float64 {
	if n < 2 {
		return 0
	}
	return float64(n) * 2 * radius * math.Sin(math.Pi/float64(n))
}
