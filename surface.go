package nurbs

import (
	"fmt"
	"math"
	"slices"
)

// diffStep is the step, relative to the width of the domain, used for
// estimating partial derivatives with finite differences.
const diffStep = 1e-5

// SurfaceData describes a non-uniform rational B-spline surface.
type SurfaceData struct {
	DegreeU int
	DegreeV int
	KnotsU  []float64
	KnotsV  []float64
	// ControlPoints is a grid indexed as ControlPoints[u][v]. All rows have the
	// same length and all points the same dimension.
	ControlPoints [][][]float64
	// Weights has the same shape as ControlPoints. A nil slice means all
	// weights are 1.
	Weights [][]float64
}

func (d SurfaceData) validate(eps float64) error {
	nu := len(d.ControlPoints)
	if nu == 0 {
		return fmt.Errorf("no control points: %w", ErrEmptyInput)
	}
	nv := len(d.ControlPoints[0])
	for i, row := range d.ControlPoints {
		if len(row) != nv {
			return fmt.Errorf("row %d has %d control points, want %d: %w", i, len(row), nv, ErrInvalidGeometry)
		}
	}
	if _, err := validPoints(Flatten(d.ControlPoints)); err != nil {
		return err
	}
	if d.DegreeU < 0 || d.DegreeU >= nu {
		return fmt.Errorf("degree %d with %d control points in u: %w", d.DegreeU, nu, ErrInvalidGeometry)
	}
	if d.DegreeV < 0 || d.DegreeV >= nv {
		return fmt.Errorf("degree %d with %d control points in v: %w", d.DegreeV, nv, ErrInvalidGeometry)
	}
	if d.Weights != nil {
		if len(d.Weights) != nu {
			return fmt.Errorf("got %d rows of weights for %d rows of control points: %w", len(d.Weights), nu, ErrInvalidGeometry)
		}
		for i, row := range d.Weights {
			if len(row) != nv {
				return fmt.Errorf("row %d has %d weights, want %d: %w", i, len(row), nv, ErrInvalidGeometry)
			}
		}
		if err := validWeights(Flatten(d.Weights), eps); err != nil {
			return err
		}
	}
	if err := validKnots(d.DegreeU, nu, d.KnotsU); err != nil {
		return fmt.Errorf("u: %w", err)
	}
	if err := validKnots(d.DegreeV, nv, d.KnotsV); err != nil {
		return fmt.Errorf("v: %w", err)
	}
	return nil
}

func (d SurfaceData) clone() SurfaceData {
	pts := make([][][]float64, len(d.ControlPoints))
	for i, row := range d.ControlPoints {
		pts[i] = make([][]float64, len(row))
		for j, pt := range row {
			pts[i][j] = slices.Clone(pt)
		}
	}
	var weights [][]float64
	if d.Weights != nil {
		weights = make([][]float64, len(d.Weights))
		for i, row := range d.Weights {
			weights[i] = slices.Clone(row)
		}
	}
	return SurfaceData{
		DegreeU:       d.DegreeU,
		DegreeV:       d.DegreeV,
		KnotsU:        slices.Clone(d.KnotsU),
		KnotsV:        slices.Clone(d.KnotsV),
		ControlPoints: pts,
		Weights:       weights,
	}
}

// Surface is a NURBS surface.
type Surface struct {
	GeometryBase
	data SurfaceData
}

var _ Geometry = (*Surface)(nil)

// NewSurface returns a surface described by data, evaluated by e. If e is nil,
// the surface uses the shared engine. data is copied.
func NewSurface(data SurfaceData, e Engine) (*Surface, error) {
	if err := data.validate(Epsilon); err != nil {
		return nil, fmt.Errorf("invalid surface: %w", err)
	}
	return &Surface{
		GeometryBase: NewGeometryBase(e),
		data:         data.clone(),
	}, nil
}

// Data returns a copy of the surface's description.
func (s *Surface) Data() SurfaceData {
	return s.data.clone()
}

// DomainU returns the range of u parameters the surface is defined over.
func (s *Surface) DomainU() (float64, float64) {
	return knotDomain(s.data.DegreeU, s.data.KnotsU)
}

// DomainV returns the range of v parameters the surface is defined over.
func (s *Surface) DomainV() (float64, float64) {
	return knotDomain(s.data.DegreeV, s.data.KnotsV)
}

// Point evaluates the surface at (u, v).
func (s *Surface) Point(u, v float64) ([]float64, error) {
	e, err := s.Engine()
	if err != nil {
		return nil, err
	}
	return e.SurfacePoint(s.data, u, v)
}

// Normal returns the unit normal of a 3-dimensional surface at (u, v), as the
// normalized cross product of the partial derivatives in u and v. The
// derivatives are estimated with finite differences.
//
// Normal returns [ErrDimensionMismatch] for surfaces that aren't
// 3-dimensional and [ErrDegenerateVector] at singular points, where the
// partial derivatives are parallel or zero.
func (s *Surface) Normal(u, v float64) ([]float64, error) {
	e, err := s.Engine()
	if err != nil {
		return nil, err
	}
	// Rejects parameters outside of the domain before the stencil clamps them.
	if _, err := e.SurfacePoint(s.data, u, v); err != nil {
		return nil, err
	}
	u0, u1 := stencil(u, s.DomainU)
	v0, v1 := stencil(v, s.DomainV)

	partial := func(ua, va, ub, vb, h float64) ([]float64, error) {
		a, err := e.SurfacePoint(s.data, ua, va)
		if err != nil {
			return nil, err
		}
		b, err := e.SurfacePoint(s.data, ub, vb)
		if err != nil {
			return nil, err
		}
		d, err := Sub(b, a)
		if err != nil {
			return nil, err
		}
		return Scale(d, 1/h), nil
	}
	su, err := partial(u0, v, u1, v, u1-u0)
	if err != nil {
		return nil, err
	}
	sv, err := partial(u, v0, u, v1, v1-v0)
	if err != nil {
		return nil, err
	}
	n, err := Cross(su, sv)
	if err != nil {
		return nil, err
	}
	return Normalized(n)
}

// stencil returns the parameters around t to take a finite difference
// between, staying within the domain.
func stencil(t float64, domain func() (float64, float64)) (float64, float64) {
	lo, hi := domain()
	h := (hi - lo) * diffStep
	return math.Max(lo, t-h), math.Min(hi, t+h)
}

// BoundingBox returns a box enclosing the surface. Like [Curve.BoundingBox], it
// is the box of the control points and isn't necessarily tight.
func (s *Surface) BoundingBox() Box {
	b, _ := NewBoxFromPoints(Flatten(s.data.ControlPoints)...)
	return b
}
