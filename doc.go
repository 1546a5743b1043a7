// Package nurbs provides the numeric foundation of a NURBS geometry toolkit:
// tolerance-based comparisons, generic slice helpers, small-vector algebra,
// and the wiring that connects geometry to the engine that evaluates it.
//
// # Tolerances
//
// All comparisons in this package use one of two constants instead of ad hoc
// literals. [Epsilon] is used where a comparison should behave like equality,
// for example when deciding whether two knots coincide. [Tolerance] defines
// what counts as "close enough" for geometric operations, for example whether
// a vector is zero (see [IsZero]) or how far outside of its domain a curve may
// be evaluated.
//
// # Slices
//
// [Left], [Right] and [RightWithPivot] split a slice at its pivot, the index
// ⌈n/2⌉. [Left] and [Right] partition the slice, while [RightWithPivot]
// overlaps [Left] by one element. All three return subslices of their
// argument rather than copies.
//
// [Flatten] removes one level of nesting from typed slices, such as turning a
// grid of control points into a list of control points. [FlattenDeep] handles
// arbitrary nesting of untyped data.
//
// [Unique] deduplicates a slice according to a caller-supplied equality
// function. It compares every pair of candidates and therefore takes quadratic
// time.
//
// [Range] and [IntRange] produce half-open arithmetic progressions in the
// manner of Python's range. They never loop forever: a step that doesn't lead
// from start to stop produces an empty slice.
//
// # Vectors
//
// Vectors are plain []float64 of any dimension. Functions that combine two
// vectors ([Add], [Sub], [Dot], [Cross], …) report [ErrDimensionMismatch]
// instead of silently reading out of bounds or ignoring components, and
// [Normalized] reports [ErrDegenerateVector] instead of producing NaN for the
// zero vector.
//
// # Engines and geometry
//
// An [Engine] does the actual math of evaluating curves and surfaces.
// [DefaultEngine] evaluates rational B-splines with de Boor's algorithm.
//
// Geometry types such as [Curve] and [Surface] embed [GeometryBase], which
// gives them access to an engine. An engine can be passed explicitly when
// constructing geometry. Geometry constructed without one uses the shared
// engine, which is published once per process by calling [Init],
// [InitConfig] or [InitEngine]:
//
//	if _, err := nurbs.Init(); err != nil {
//		log.Fatal(err)
//	}
//
// Evaluating such geometry before the shared engine has been published fails
// with [ErrUninitializedEngine]. Geometry may be constructed before Init is
// called, as the shared engine is looked up on every evaluation.
//
// Once published, the shared engine can never be replaced. Initialization and
// evaluation are safe for concurrent use.
package nurbs
