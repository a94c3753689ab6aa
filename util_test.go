package bezier

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

// approxPoints compares points and vectors by euclidean distance.
func approxPoints(epsilon float64) cmp.Option {
	return cmp.Options{
		cmp.Comparer(func(p1, p2 Point) bool {
			return p1.Distance(p2) <= epsilon
		}),
		cmp.Comparer(func(v1, v2 Vec2) bool {
			return v1.Sub(v2).Hypot() <= epsilon
		}),
	}
}

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertClose(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("got %g, want %g (±%g)", got, want, epsilon)
	}
}

// arch is a symmetric arch, used throughout the tests.
var arch = CubicBez{Pt(0, 0), Pt(1, 3), Pt(3, 3), Pt(4, 0)}
