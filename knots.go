package nurbs

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// validKnots checks that knots is a non-decreasing knot vector of the right
// length for nPoints control points and the given degree, and that the
// parameter domain it describes is non-empty.
func validKnots(degree, nPoints int, knots []float64) error {
	if want := nPoints + degree + 1; len(knots) != want {
		return fmt.Errorf("got %d knots for degree %d and %d control points, want %d: %w",
			len(knots), degree, nPoints, want, ErrInvalidGeometry)
	}
	for i, k := range knots {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return fmt.Errorf("knot %d is %g: %w", i, k, ErrInvalidGeometry)
		}
		if i > 0 && k < knots[i-1] {
			return fmt.Errorf("knot %d (%g) is less than knot %d (%g): %w", i, k, i-1, knots[i-1], ErrInvalidGeometry)
		}
	}
	if knots[degree] >= knots[nPoints] {
		return fmt.Errorf("empty parameter domain [%g, %g]: %w", knots[degree], knots[nPoints], ErrInvalidGeometry)
	}
	return nil
}

// knotDomain returns the parameter domain of a spline with the given degree
// and knot vector.
func knotDomain(degree int, knots []float64) (float64, float64) {
	return knots[degree], knots[len(knots)-degree-1]
}

// knotSpan returns the index k of the knot span [knots[k], knots[k+1]) that
// contains u, for a spline with n+1 control points. u at the end of the
// domain belongs to the last span.
func knotSpan(degree, n int, u float64, knots []float64) int {
	if u >= knots[n+1] {
		return n
	}
	if u <= knots[degree] {
		return degree
	}
	return degree + sort.Search(n+1-degree, func(i int) bool {
		return knots[degree+i+1] > u
	})
}

// deBoor evaluates the spline with homogeneous control points pw at u.
func deBoor(degree int, knots []float64, pw [][]float64, u float64) []float64 {
	k := knotSpan(degree, len(pw)-1, u, knots)
	d := make([][]float64, degree+1)
	for j := range d {
		d[j] = slices.Clone(pw[j+k-degree])
	}
	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			lo := knots[j+k-degree]
			var alpha float64
			if den := knots[j+1+k-r] - lo; den != 0 {
				alpha = (u - lo) / den
			}
			for c := range d[j] {
				d[j][c] = (1-alpha)*d[j-1][c] + alpha*d[j][c]
			}
		}
	}
	return d[degree]
}

// homogenize lifts points into homogeneous coordinates, appending the weight
// as an additional component. A nil weights slice means all weights are 1.
func homogenize(points [][]float64, weights []float64) [][]float64 {
	out := make([][]float64, len(points))
	for i, pt := range points {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		h := Scale(pt, w)
		out[i] = append(h, w)
	}
	return out
}

// dehomogenize projects a homogeneous point back by dividing by its weight.
func dehomogenize(h []float64) []float64 {
	last := len(h) - 1
	return Scale(h[:last], 1/h[last])
}

// validWeights checks that every weight is finite and larger than eps.
func validWeights(weights []float64, eps float64) error {
	for i, w := range weights {
		if !(w > eps) || math.IsInf(w, 0) {
			return fmt.Errorf("weight %d is %g: %w", i, w, ErrInvalidGeometry)
		}
	}
	return nil
}

// validPoints checks that points is non-empty and that all points share the
// same, non-zero dimension, which it returns.
func validPoints(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("no control points: %w", ErrEmptyInput)
	}
	dim := len(points[0])
	if dim == 0 {
		return 0, fmt.Errorf("control point without components: %w", ErrEmptyInput)
	}
	for i, pt := range points {
		if len(pt) != dim {
			return 0, fmt.Errorf("control point %d has %d components, want %d: %w", i, len(pt), dim, ErrDimensionMismatch)
		}
	}
	return dim, nil
}
