package nurbs

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// The functions in this file operate on plain float64 slices of any
// dimension. Functions that produce vectors always return freshly allocated
// slices and never modify their arguments.

// IsZero reports whether every component of v is within [Tolerance] of zero.
// It doesn't compute the norm, so it needs neither multiplications nor square
// roots. The empty vector is zero.
func IsZero(v []float64) bool {
	for _, x := range v {
		if math.Abs(x) > Tolerance {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm of v. Like [math.Hypot], it avoids
// unnecessary overflow and underflow: the result is finite for every vector
// with finite components whose norm is representable.
func Norm(v []float64) float64 {
	u, m := unitMax(v)
	if u == nil {
		return m
	}
	return m * mgl64.NewVecNFromData(u).Len()
}

// unitMax returns v divided by its largest absolute component m, together with
// m. The result's components lie in [-1, 1], so its norm can be computed
// without overflow. If m is zero, infinite or NaN, unitMax returns nil and m.
func unitMax(v []float64) ([]float64, float64) {
	var m float64
	for _, x := range v {
		if math.IsNaN(x) {
			return nil, x
		}
		m = max(m, math.Abs(x))
	}
	if m == 0 || math.IsInf(m, 0) {
		return nil, m
	}
	u := make([]float64, len(v))
	for i, x := range v {
		u[i] = x / m
	}
	return u, m
}

// Normalized returns the unit vector pointing in the same direction as v.
//
// It returns [ErrEmptyInput] for a vector without components and
// [ErrDegenerateVector] if v is zero according to [IsZero] or has a component
// that isn't finite. It never returns a vector containing NaN.
func Normalized(v []float64) ([]float64, error) {
	if len(v) == 0 {
		return nil, ErrEmptyInput
	}
	if IsZero(v) {
		return nil, fmt.Errorf("normalizing %v: %w", v, ErrDegenerateVector)
	}
	u, _ := unitMax(v)
	if u == nil {
		return nil, fmt.Errorf("normalizing %v: %w", v, ErrDegenerateVector)
	}
	// u has a component of magnitude 1, so its norm is at least 1.
	return Scale(u, 1/mgl64.NewVecNFromData(u).Len()), nil
}

// Cross returns the cross product u × v of two 3-dimensional vectors. It
// returns [ErrDimensionMismatch] if either vector doesn't have exactly three
// components.
func Cross(u, v []float64) ([]float64, error) {
	if len(u) != 3 || len(v) != 3 {
		return nil, fmt.Errorf("cross product of %d- and %d-dimensional vectors: %w",
			len(u), len(v), ErrDimensionMismatch)
	}
	c := vec3(u).Cross(vec3(v))
	return c[:], nil
}

func vec3(v []float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// Dot returns the dot product of u and v.
func Dot(u, v []float64) (float64, error) {
	if err := sameDim(u, v); err != nil {
		return 0, err
	}
	return mgl64.NewVecNFromData(u).Dot(mgl64.NewVecNFromData(v)), nil
}

// Add returns u + v.
func Add(u, v []float64) ([]float64, error) {
	if err := sameDim(u, v); err != nil {
		return nil, err
	}
	out := make([]float64, len(u))
	for i := range u {
		out[i] = u[i] + v[i]
	}
	return out, nil
}

// Sub returns u − v.
func Sub(u, v []float64) ([]float64, error) {
	if err := sameDim(u, v); err != nil {
		return nil, err
	}
	out := make([]float64, len(u))
	for i := range u {
		out[i] = u[i] - v[i]
	}
	return out, nil
}

// Scale returns v multiplied by f.
func Scale(v []float64, f float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * f
	}
	return out
}

// Dist returns the Euclidean distance between the points u and v.
func Dist(u, v []float64) (float64, error) {
	d, err := Sub(u, v)
	if err != nil {
		return 0, err
	}
	return Norm(d), nil
}

func sameDim(u, v []float64) error {
	if len(u) != len(v) {
		return fmt.Errorf("%d- and %d-dimensional vectors: %w", len(u), len(v), ErrDimensionMismatch)
	}
	return nil
}
