package bezier

import (
	"iter"
	"math"
	"sort"
)

// DefaultTableSize is the number of samples used by a [Curve]'s arc length
// table unless configured otherwise with [WithTableSize].
const DefaultTableSize = 32

// Table maps between a curve's parameter and the approximate arc length from
// the start of the curve to that parameter.
//
// Entry i stores t = i/(n-1) and the length of the polyline through the curve
// points at t = 0, 1/(n-1), …, i/(n-1). The lengths are thus a chord
// approximation of the true arc length, and never exceed it.
//
// A Table is built once and is read-only afterwards; [Curve] rebuilds its
// table in place whenever its control points change.
type Table struct {
	ts      []float64
	lengths []float64
	total   float64
}

// NewTable builds a table with n samples for c. Negative n are treated as 0.
func NewTable(c CubicBez, n int) *Table {
	tb := &Table{}
	tb.resize(n)
	tb.build(c.Eval, c.P0)
	return tb
}

func (tb *Table) resize(n int) {
	n = max(n, 0)
	if cap(tb.ts) < n {
		tb.ts = make([]float64, n)
		tb.lengths = make([]float64, n)
	}
	tb.ts = tb.ts[:n]
	tb.lengths = tb.lengths[:n]
}

// build fills the table by sampling eval. start must equal eval(0).
func (tb *Table) build(eval func(t float64) Point, start Point) {
	tb.total = 0
	n := len(tb.ts)
	if n == 0 {
		return
	}
	tb.ts[0] = 0
	tb.lengths[0] = 0
	prev := start
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n-1)
		pt := eval(t)
		tb.total += prev.Distance(pt)
		tb.ts[i] = t
		tb.lengths[i] = tb.total
		prev = pt
	}
}

// Len returns the number of samples in the table.
func (tb *Table) Len() int {
	return len(tb.ts)
}

// Total returns the approximate length of the whole curve.
func (tb *Table) Total() float64 {
	return tb.total
}

// Entry returns the parameter and cumulative length of sample i.
func (tb *Table) Entry(i int) (t, length float64) {
	return tb.ts[i], tb.lengths[i]
}

// All returns an iterator over the table's (parameter, length) pairs, in
// increasing order.
func (tb *Table) All() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i := range tb.ts {
			if !yield(tb.ts[i], tb.lengths[i]) {
				return
			}
		}
	}
}

// Distance returns the approximate arc length from the start of the curve to
// the parameter t.
//
// t is clamped to [0, 1]. Between samples, the result is linearly
// interpolated.
func (tb *Table) Distance(t float64) float64 {
	n := len(tb.lengths)
	switch {
	case n == 0:
		Logger().Error("unable to sample arc length table: it has no entries", "op", "Distance")
		return 0
	case n == 1:
		return tb.lengths[0]
	case math.IsNaN(t):
		return t
	}

	f := t * float64(n-1)
	lo := math.Floor(f)
	if lo+1 >= float64(n) {
		return tb.lengths[n-1]
	}
	if lo < 0 {
		return tb.lengths[0]
	}
	i := int(lo)
	return lerp(tb.lengths[i], tb.lengths[i+1], f-lo)
}

// T returns the parameter at which the approximate arc length from the start
// of the curve equals dist.
//
// Distances outside of [0, Total()] are clamped. If several samples share the
// same length, as happens for degenerate curves, the smallest matching
// parameter is returned.
func (tb *Table) T(dist float64) float64 {
	n := len(tb.ts)
	switch {
	case n == 0:
		Logger().Error("unable to sample arc length table: it has no entries", "op", "T")
		return 0
	case n == 1:
		return tb.ts[0]
	case math.IsNaN(dist):
		return dist
	case dist < tb.lengths[0]:
		return tb.ts[0]
	}

	// Find the first bracket with lengths[i] <= dist <= lengths[i+1]. Lengths
	// are non-decreasing, so this is the first i with lengths[i+1] >= dist.
	i := sort.Search(n-1, func(i int) bool {
		return tb.lengths[i+1] >= dist
	})
	if i == n-1 {
		return tb.ts[n-1]
	}
	return lerp(tb.ts[i], tb.ts[i+1], inverseLerp(tb.lengths[i], tb.lengths[i+1], dist))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// inverseLerp returns where v lies between a and b, clamped to [0, 1]. It
// returns 0 if a == b.
func inverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return min(max((v-a)/(b-a), 0), 1)
}
