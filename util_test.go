package nurbs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// freshBootstrap replaces the shared engine's state with an uninitialized one
// for the duration of the test.
func freshBootstrap(t *testing.T) {
	t.Helper()
	old := shared
	shared = new(bootstrap)
	t.Cleanup(func() { shared = old })
}
