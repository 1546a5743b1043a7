package nurbs

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// constEngine evaluates every curve and surface to the same point.
type constEngine struct {
	pt []float64
}

func (e *constEngine) CurvePoint(CurveData, float64) ([]float64, error) {
	return e.pt, nil
}

func (e *constEngine) SurfacePoint(SurfaceData, float64, float64) ([]float64, error) {
	return e.pt, nil
}

func (e *constEngine) Config() Config { return DefaultConfig() }

func TestNewEngineInvalidConfig(t *testing.T) {
	if _, err := NewEngine(Config{Tolerance: 1e-12, Epsilon: 1e-10}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("got error %v, want ErrInvalidConfig", err)
	}
}

func TestInit(t *testing.T) {
	freshBootstrap(t)

	if _, err := Shared(); !errors.Is(err, ErrUninitializedEngine) {
		t.Fatalf("got error %v before Init, want ErrUninitializedEngine", err)
	}

	e1, err := Init()
	if err != nil {
		t.Fatal(err)
	}
	e2, err := Shared()
	if err != nil {
		t.Fatal(err)
	}
	if e1 != e2 {
		t.Errorf("Shared returned %p, want published engine %p", e2, e1)
	}
	diff(t, Tolerance, e1.Config().Tolerance)
	diff(t, Epsilon, e1.Config().Epsilon)
}

func TestInitIsOneShot(t *testing.T) {
	freshBootstrap(t)

	e1, err := Init()
	if err != nil {
		t.Fatal(err)
	}
	e2, err := InitConfig(Config{Tolerance: 1e-3, Epsilon: 1e-9})
	if err != nil {
		t.Fatal(err)
	}
	e3, err := InitEngine(&constEngine{pt: []float64{1}})
	if err != nil {
		t.Fatal(err)
	}
	if e1 != e2 || e1 != e3 {
		t.Errorf("repeated initialization replaced the engine")
	}
	diff(t, Tolerance, e2.Config().Tolerance)
}

func TestInitFailurePublishesNothing(t *testing.T) {
	freshBootstrap(t)

	if _, err := InitConfig(Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got error %v, want ErrInvalidConfig", err)
	}
	if _, err := Shared(); !errors.Is(err, ErrUninitializedEngine) {
		t.Fatalf("got error %v after failed Init, want ErrUninitializedEngine", err)
	}
	if _, err := InitEngine(nil); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("got error %v for nil engine, want ErrInvalidParameter", err)
	}
	if _, err := InitEngine((*DefaultEngine)(nil)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("got error %v for nil *DefaultEngine, want ErrInvalidParameter", err)
	}
	if _, err := Shared(); !errors.Is(err, ErrUninitializedEngine) {
		t.Fatalf("got error %v after publishing nil *DefaultEngine, want ErrUninitializedEngine", err)
	}
	if _, err := Init(); err != nil {
		t.Fatalf("Init after failed attempts: %s", err)
	}
	if _, err := Shared(); err != nil {
		t.Fatal(err)
	}
}

func TestInitConcurrent(t *testing.T) {
	freshBootstrap(t)

	const n = 32
	engines := make([]Engine, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := Init()
			if err != nil {
				t.Error(err)
				return
			}
			engines[i] = e
		}()
	}
	wg.Wait()

	for i, e := range engines {
		if e != engines[0] {
			t.Errorf("goroutine %d got engine %p, want %p", i, e, engines[0])
		}
	}
}

func TestInitLogs(t *testing.T) {
	freshBootstrap(t)

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := InitConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "engine initialized") || !strings.Contains(out, "tolerance=1e-06") {
		t.Errorf("unexpected log output %q", out)
	}

	buf.Reset()
	if _, err := Init(); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "already initialized") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestInitEngine(t *testing.T) {
	freshBootstrap(t)

	c, err := NewCurve(line(t, []float64{0, 0}, []float64{1, 1}), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := InitEngine(&constEngine{pt: []float64{7, 7}}); err != nil {
		t.Fatal(err)
	}
	pt, err := c.Point(0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{7, 7}, pt)
}
