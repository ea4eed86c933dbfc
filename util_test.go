package rope

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares points and vectors to within an absolute tolerance.
func approx(tol float64) cmp.Option {
	return cmp.Options{
		cmp.Comparer(func(a, b Point) bool { return a.Distance(b) <= tol }),
		cmp.Comparer(func(a, b Vec2) bool { return a.Sub(b).Hypot() <= tol }),
	}
}

// bits compares floats by their representation, so that NaN equals NaN and
// 0 differs from -0.
var bits = cmp.Comparer(func(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
})

func mustSpring(t *testing.T, p Point, params SpringParams) *SpringPoint {
	t.Helper()
	s, err := NewSpringPoint(p, params)
	if err != nil {
		t.Fatal(err)
	}
	return s
}
