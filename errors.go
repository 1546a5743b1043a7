package nurbs

import "errors"

var (
	// ErrEmptyInput is returned when an operation needs at least one element.
	ErrEmptyInput = errors.New("empty input")

	// ErrDimensionMismatch is returned when vectors have the wrong number of
	// components, either for the operation or relative to each other.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDegenerateVector is returned when normalizing a vector whose length is
	// zero within [Tolerance].
	ErrDegenerateVector = errors.New("degenerate vector")

	// ErrUninitializedEngine is returned by geometry that has no engine of its
	// own when it is evaluated before [Init].
	ErrUninitializedEngine = errors.New("engine not initialized")

	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidGeometry  = errors.New("invalid geometry")
	ErrInvalidParameter = errors.New("invalid parameter")
)
