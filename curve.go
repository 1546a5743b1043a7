package nurbs

import (
	"fmt"
	"slices"
)

// CurveData describes a non-uniform rational B-spline curve.
type CurveData struct {
	Degree int
	// Knots has len(ControlPoints) + Degree + 1 non-decreasing entries.
	Knots []float64
	// ControlPoints all have the same dimension.
	ControlPoints [][]float64
	// Weights has one positive weight per control point. A nil slice means
	// all weights are 1, making the curve non-rational.
	Weights []float64
}

func (d CurveData) validate(eps float64) error {
	n := len(d.ControlPoints)
	if _, err := validPoints(d.ControlPoints); err != nil {
		return err
	}
	if d.Degree < 0 || d.Degree >= n {
		return fmt.Errorf("degree %d with %d control points: %w", d.Degree, n, ErrInvalidGeometry)
	}
	if d.Weights != nil {
		if len(d.Weights) != n {
			return fmt.Errorf("got %d weights for %d control points: %w", len(d.Weights), n, ErrInvalidGeometry)
		}
		if err := validWeights(d.Weights, eps); err != nil {
			return err
		}
	}
	return validKnots(d.Degree, n, d.Knots)
}

func (d CurveData) clone() CurveData {
	pts := make([][]float64, len(d.ControlPoints))
	for i, pt := range d.ControlPoints {
		pts[i] = slices.Clone(pt)
	}
	return CurveData{
		Degree:        d.Degree,
		Knots:         slices.Clone(d.Knots),
		ControlPoints: pts,
		Weights:       slices.Clone(d.Weights),
	}
}

// Curve is a NURBS curve.
type Curve struct {
	GeometryBase
	data CurveData
}

var _ Geometry = (*Curve)(nil)

// NewCurve returns a curve described by data, evaluated by e. If e is nil,
// the curve uses the shared engine. data is copied.
func NewCurve(data CurveData, e Engine) (*Curve, error) {
	if err := data.validate(Epsilon); err != nil {
		return nil, fmt.Errorf("invalid curve: %w", err)
	}
	return &Curve{
		GeometryBase: NewGeometryBase(e),
		data:         data.clone(),
	}, nil
}

// Data returns a copy of the curve's description.
func (c *Curve) Data() CurveData {
	return c.data.clone()
}

func (c *Curve) Degree() int { return c.data.Degree }

// Dim returns the dimension of the curve's points.
func (c *Curve) Dim() int { return len(c.data.ControlPoints[0]) }

// Domain returns the range of parameters the curve is defined over.
func (c *Curve) Domain() (float64, float64) {
	return knotDomain(c.data.Degree, c.data.Knots)
}

// Point evaluates the curve at u.
func (c *Curve) Point(u float64) ([]float64, error) {
	e, err := c.Engine()
	if err != nil {
		return nil, err
	}
	return e.CurvePoint(c.data, u)
}

// Sample evaluates the curve at n+1 evenly spaced parameters, including both
// ends of the domain.
func (c *Curve) Sample(n int) ([][]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("sampling %d segments: %w", n, ErrInvalidParameter)
	}
	e, err := c.Engine()
	if err != nil {
		return nil, err
	}
	lo, hi := c.Domain()
	out := make([][]float64, 0, n+1)
	for _, i := range IntRange(0, n+1, 1) {
		// Computing the last parameter as hi avoids rounding past the end of
		// the domain.
		u := hi
		if i < n {
			u = lo + (hi-lo)*float64(i)/float64(n)
		}
		pt, err := e.CurvePoint(c.data, u)
		if err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, nil
}

// DistinctKnots returns the knot values without repetitions. Knots closer than
// [Epsilon] count as one.
func (c *Curve) DistinctKnots() []float64 {
	return Unique(c.data.Knots, func(a, b float64) bool {
		return ApproxEqual(a, b, Epsilon)
	})
}

// BoundingBox returns a box enclosing the curve. NURBS curves with positive
// weights lie within the convex hull of their control points, so the box of
// the control points encloses the curve, but isn't necessarily tight.
func (c *Curve) BoundingBox() Box {
	b, _ := NewBoxFromPoints(c.data.ControlPoints...)
	return b
}
