package nurbs

import (
	"fmt"
	"math"
	"reflect"
	"slices"
)

// Flatten concatenates the elements of s into a single slice, in order.
// It removes exactly one level of nesting; see [FlattenDeep] for arbitrary
// nesting.
func Flatten[S ~[]E, E any](s []S) []E {
	return slices.Concat(s...)
}

// FlattenDeep collapses arbitrarily nested slices and arrays into a single
// level, visiting elements depth-first. Values that are neither slices nor
// arrays are passed through unchanged, including strings and nil interface
// values. If v itself isn't a slice or array, the result contains just v. A
// nil v produces an empty result.
//
// Nesting is tracked on an explicit stack, so the depth of v is bounded only by
// available memory.
//
// FlattenDeep is idempotent: flattening a flattened slice returns an equal
// slice.
func FlattenDeep(v any) []any {
	out := []any{}
	if v == nil {
		return out
	}
	rv := reflect.ValueOf(v)
	if !isSequence(rv) {
		return append(out, v)
	}

	type frame struct {
		seq reflect.Value
		i   int
	}
	stack := []frame{{seq: rv}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i == top.seq.Len() {
			stack = stack[:len(stack)-1]
			continue
		}
		el := top.seq.Index(top.i)
		top.i++

		for el.Kind() == reflect.Interface && !el.IsNil() {
			el = el.Elem()
		}
		switch {
		case el.Kind() == reflect.Interface:
			out = append(out, nil)
		case isSequence(el):
			stack = append(stack, frame{seq: el})
		default:
			out = append(out, el.Interface())
		}
	}
	return out
}

func isSequence(v reflect.Value) bool {
	k := v.Kind()
	return k == reflect.Slice || k == reflect.Array
}

// pivot returns the index at which a sequence of length n is halved, ⌈n/2⌉.
func pivot(n int) int {
	return (n + 1) / 2
}

// Left returns the first half of s, including the pivot at index ⌈len(s)/2⌉-1.
//
// The result shares its backing array with s but has its capacity limited, so
// that appending to it cannot overwrite the right half.
func Left[S ~[]E, E any](s S) S {
	p := pivot(len(s))
	return s[:p:p]
}

// Right returns the second half of s, starting at index ⌈len(s)/2⌉. It does not
// include the pivot. The result shares its backing array with s.
//
// Left(s) and Right(s) partition s.
func Right[S ~[]E, E any](s S) S {
	return s[pivot(len(s)):]
}

// RightWithPivot returns the second half of s, starting at index
// ⌈len(s)/2⌉-1. It includes the pivot, so the result overlaps with [Left] by
// exactly one element. The result shares its backing array with s.
func RightWithPivot[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return s[:0]
	}
	return s[pivot(len(s))-1:]
}

// Last returns the last element of s. It reports false if s is empty.
func Last[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		return *new(E), false
	}
	return s[len(s)-1], true
}

// Unique returns a new slice that contains one representative of each
// equivalence class of s, as induced by equal. The representative of a class is
// its first element in s, and representatives retain their relative order.
// s is not modified.
//
// equal must be symmetric. If it isn't transitive, which class an element
// falls into depends on the order of s.
//
// Every element is compared against all representatives found so far, which
// takes O(n²) time for n elements. Unique is meant for short sequences such as
// knot vectors and control points.
func Unique[S ~[]E, E any](s S, equal func(a, b E) bool) S {
	out := make(S, 0, len(s))
outer:
	for _, el := range s {
		for _, rep := range out {
			if equal(el, rep) {
				continue outer
			}
		}
		out = append(out, el)
	}
	return out
}

// Range returns the half-open arithmetic progression start, start+step, … up to
// but not including stop. Its length is max(⌈(stop-start)/step⌉, 0).
//
// A step of zero, a step whose sign doesn't lead from start towards stop, and
// non-finite arguments all produce an empty slice. Range panics if the result
// would have more than [math.MaxInt] elements.
func Range(start, stop, step float64) []float64 {
	n := rangeLen(start, stop, step)
	out := make([]float64, n)
	for i := range out {
		// Multiplying instead of accumulating keeps the error from growing
		// with the length of the range.
		out[i] = start + float64(i)*step
	}
	return out
}

// RangeN returns the range [0, 1, …, stop), as if by Range(0, stop, 1).
func RangeN(stop float64) []float64 {
	return Range(0, stop, 1)
}

func rangeLen(start, stop, step float64) int {
	if step == 0 {
		return 0
	}
	n := math.Ceil((stop - start) / step)
	if !(n > 0) || math.IsInf(n, 0) {
		return 0
	}
	// float64(math.MaxInt) rounds up to 2⁶³, which is itself out of range.
	if n >= math.MaxInt {
		panic(fmt.Sprintf("range of %g elements is too long", n))
	}
	return int(n)
}

// IntRange is like [Range], but for integers. It handles the full range of
// int without overflowing.
func IntRange(start, stop, step int) []int {
	// Distances are computed in uint, which holds the difference of any two
	// ints. Negating math.MinInt wraps to itself, whose uint value is the
	// correct magnitude.
	var span, stride uint
	switch {
	case step > 0 && stop > start:
		span, stride = uint(stop)-uint(start), uint(step)
	case step < 0 && start > stop:
		span, stride = uint(start)-uint(stop), uint(-step)
	}
	var n uint
	if span > 0 {
		n = (span-1)/stride + 1
	}
	if n > math.MaxInt {
		panic(fmt.Sprintf("range of %d elements is too long", n))
	}
	out := make([]int, n)
	for i := range out {
		out[i] = start + i*step
	}
	return out
}
