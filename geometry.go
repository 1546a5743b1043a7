package nurbs

// Geometry is the capability shared by all geometry types: access to the
// [Engine] that evaluates them.
type Geometry interface {
	// Engine returns the engine the geometry delegates evaluation to. It
	// returns [ErrUninitializedEngine] if the geometry has no engine of its
	// own and no shared engine has been published with [Init].
	Engine() (Engine, error)
}

// GeometryBase implements [Geometry] and is meant to be embedded in geometry
// types.
//
// The engine is fixed at construction. A base without an engine resolves the
// shared engine on every call, so geometry constructed before [Init] picks up
// the shared engine as soon as it has been published.
type GeometryBase struct {
	engine Engine
}

var _ Geometry = GeometryBase{}

// NewGeometryBase returns a base that uses e. If e is nil, the shared engine is
// used.
func NewGeometryBase(e Engine) GeometryBase {
	return GeometryBase{engine: e}
}

func (g GeometryBase) Engine() (Engine, error) {
	if g.engine != nil {
		return g.engine, nil
	}
	return Shared()
}
