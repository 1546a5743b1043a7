package nurbs

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// Engine is the evaluation back end that geometry delegates its math to.
//
// Implementations must be safe for concurrent use, as a single engine is shared
// by all geometry that doesn't have an engine of its own.
type Engine interface {
	// CurvePoint evaluates the curve described by c at parameter u.
	CurvePoint(c CurveData, u float64) ([]float64, error)
	// SurfacePoint evaluates the surface described by s at parameters (u, v).
	SurfacePoint(s SurfaceData, u, v float64) ([]float64, error)
	// Config returns the engine's configuration.
	Config() Config
}

var _ Engine = (*DefaultEngine)(nil)

// DefaultEngine evaluates rational B-splines using de Boor's algorithm in
// homogeneous coordinates. It is immutable and safe for concurrent use.
type DefaultEngine struct {
	cfg Config
}

// NewEngine returns a [DefaultEngine] using cfg, which must be valid.
func NewEngine(cfg Config) (*DefaultEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &DefaultEngine{cfg: cfg}, nil
}

func (e *DefaultEngine) Config() Config { return e.cfg }

// CurvePoint implements Engine.
//
// Parameters at most Config().Tolerance outside of the curve's domain are
// clamped to the domain. Parameters further out result in
// [ErrInvalidParameter].
func (e *DefaultEngine) CurvePoint(c CurveData, u float64) ([]float64, error) {
	if err := c.validate(e.cfg.Epsilon); err != nil {
		return nil, err
	}
	u, err := e.clamp(u, c.Degree, c.Knots)
	if err != nil {
		return nil, err
	}
	pw := homogenize(c.ControlPoints, c.Weights)
	return dehomogenize(deBoor(c.Degree, c.Knots, pw, u)), nil
}

// SurfacePoint implements Engine. Parameters are handled like in
// [DefaultEngine.CurvePoint].
func (e *DefaultEngine) SurfacePoint(s SurfaceData, u, v float64) ([]float64, error) {
	if err := s.validate(e.cfg.Epsilon); err != nil {
		return nil, err
	}
	u, err := e.clamp(u, s.DegreeU, s.KnotsU)
	if err != nil {
		return nil, err
	}
	v, err = e.clamp(v, s.DegreeV, s.KnotsV)
	if err != nil {
		return nil, err
	}

	// Collapse each row of the control grid to a single point by evaluating it
	// along v, then evaluate the resulting column along u.
	col := make([][]float64, len(s.ControlPoints))
	for i, row := range s.ControlPoints {
		var w []float64
		if s.Weights != nil {
			w = s.Weights[i]
		}
		col[i] = deBoor(s.DegreeV, s.KnotsV, homogenize(row, w), v)
	}
	return dehomogenize(deBoor(s.DegreeU, s.KnotsU, col, u)), nil
}

func (e *DefaultEngine) clamp(u float64, degree int, knots []float64) (float64, error) {
	lo, hi := knotDomain(degree, knots)
	switch {
	case u >= lo && u <= hi:
		return u, nil
	case u < lo && ApproxEqual(u, lo, e.cfg.Tolerance):
		return lo, nil
	case u > hi && ApproxEqual(u, hi, e.cfg.Tolerance):
		return hi, nil
	default:
		return 0, fmt.Errorf("parameter %g outside of domain [%g, %g]: %w", u, lo, hi, ErrInvalidParameter)
	}
}

// bootstrap publishes a single engine. It moves from uninitialized to
// initialized exactly once and never back.
type bootstrap struct {
	mu     sync.Mutex
	engine atomic.Pointer[Engine]
}

var shared = new(bootstrap)

// publish stores the engine returned by build, unless an engine has already
// been published, in which case build isn't called and the existing engine is
// returned. Nothing is published if build fails.
func (b *bootstrap) publish(build func() (Engine, error)) (Engine, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if e := b.engine.Load(); e != nil {
		(*e).Config().logger().Debug("engine already initialized, ignoring")
		return *e, nil
	}
	e, err := build()
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("publishing nil engine: %w", ErrInvalidParameter)
	}
	if v := reflect.ValueOf(e); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, fmt.Errorf("publishing nil %T: %w", e, ErrInvalidParameter)
	}
	cfg := e.Config()
	b.engine.Store(&e)
	cfg.logger().Debug("engine initialized",
		"engine", fmt.Sprintf("%T", e),
		"tolerance", cfg.Tolerance,
		"epsilon", cfg.Epsilon)
	return e, nil
}

func (b *bootstrap) get() (Engine, error) {
	if e := b.engine.Load(); e != nil {
		return *e, nil
	}
	return nil, ErrUninitializedEngine
}

// Init creates a [DefaultEngine] with [DefaultConfig] and publishes it as the
// shared engine, which is used by all geometry that wasn't constructed with an
// engine of its own.
//
// Only the first successful call to Init, [InitConfig] or [InitEngine] has
// an effect. Later calls return the already published engine. Init is safe for
// concurrent use.
func Init() (Engine, error) {
	return InitConfig(DefaultConfig())
}

// InitConfig is like [Init] but creates the engine using cfg.
func InitConfig(cfg Config) (Engine, error) {
	return shared.publish(func() (Engine, error) {
		return NewEngine(cfg)
	})
}

// InitEngine is like [Init] but publishes e instead of a [DefaultEngine]. It
// returns [ErrInvalidParameter] if e is nil or a nil pointer.
func InitEngine(e Engine) (Engine, error) {
	return shared.publish(func() (Engine, error) {
		return e, nil
	})
}

// Shared returns the shared engine, or [ErrUninitializedEngine] if none has
// been published yet.
func Shared() (Engine, error) {
	return shared.get()
}
