package nurbs

import "math"

// Epsilon is used for numeric comparisons that should behave like equality,
// such as deciding whether two knots coincide.
const Epsilon = 1e-10

// Tolerance is the default tolerance for geometric operations. It defines
// "close enough" for evaluation, intersection and tessellation.
const Tolerance = 1e-6

// ApproxEqual reports whether a and b differ by at most tol.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Near reports whether a and b are equal within [Tolerance].
func Near(a, b float64) bool {
	return ApproxEqual(a, b, Tolerance)
}
