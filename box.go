package nurbs

import (
	"fmt"
	"slices"
)

// Box is an axis-aligned box of any dimension.
type Box struct {
	Min []float64
	Max []float64
}

// NewBoxFromPoints returns the smallest box enclosing all points.
func NewBoxFromPoints(points ...[]float64) (Box, error) {
	if len(points) == 0 {
		return Box{}, fmt.Errorf("box of no points: %w", ErrEmptyInput)
	}
	b := Box{
		Min: slices.Clone(points[0]),
		Max: slices.Clone(points[0]),
	}
	for _, pt := range points[1:] {
		var err error
		if b, err = b.UnionPoint(pt); err != nil {
			return Box{}, err
		}
	}
	return b, nil
}

// Dim returns the box's dimension.
func (b Box) Dim() int { return len(b.Min) }

// UnionPoint computes the union with one point.
//
// This includes points on the boundary of zero-volume boxes. Thus, a
// succession of UnionPoint operations on a series of points yields their
// enclosing box.
func (b Box) UnionPoint(pt []float64) (Box, error) {
	if err := sameDim(b.Min, pt); err != nil {
		return Box{}, err
	}
	out := Box{Min: make([]float64, len(pt)), Max: make([]float64, len(pt))}
	for i, x := range pt {
		out.Min[i] = min(b.Min[i], x)
		out.Max[i] = max(b.Max[i], x)
	}
	return out, nil
}

// Union returns the smallest box enclosing b and o.
func (b Box) Union(o Box) (Box, error) {
	if err := sameDim(b.Min, o.Min); err != nil {
		return Box{}, err
	}
	out := Box{Min: make([]float64, len(b.Min)), Max: make([]float64, len(b.Min))}
	for i := range b.Min {
		out.Min[i] = min(b.Min[i], o.Min[i])
		out.Max[i] = max(b.Max[i], o.Max[i])
	}
	return out, nil
}

// Contains reports whether pt lies inside of b or within [Tolerance] of its
// boundary. Points of a different dimension are never contained.
func (b Box) Contains(pt []float64) bool {
	if len(pt) != len(b.Min) {
		return false
	}
	for i, x := range pt {
		if x < b.Min[i]-Tolerance || x > b.Max[i]+Tolerance {
			return false
		}
	}
	return true
}

// Intersects reports whether b and o overlap, allowing for a gap of up to
// [Tolerance].
func (b Box) Intersects(o Box) bool {
	if len(b.Min) != len(o.Min) {
		return false
	}
	for i := range b.Min {
		if b.Min[i] > o.Max[i]+Tolerance || o.Min[i] > b.Max[i]+Tolerance {
			return false
		}
	}
	return true
}

// Inflate expands the box by d in every direction.
func (b Box) Inflate(d float64) Box {
	out := Box{Min: make([]float64, len(b.Min)), Max: make([]float64, len(b.Max))}
	for i := range b.Min {
		out.Min[i] = b.Min[i] - d
		out.Max[i] = b.Max[i] + d
	}
	return out
}

// Size returns the extent of the box along each axis.
func (b Box) Size() []float64 {
	d, _ := Sub(b.Max, b.Min)
	return d
}
