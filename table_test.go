package bezier

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// linearT is a straightforward implementation of Table.T, scanning for the
// first bracket that contains dist.
func linearT(tb *Table, dist float64) float64 {
	n := len(tb.ts)
	for i := range n - 1 {
		lo, hi := tb.lengths[i], tb.lengths[i+1]
		if lo <= dist && dist <= hi {
			return lerp(tb.ts[i], tb.ts[i+1], inverseLerp(lo, hi, dist))
		}
	}
	if dist < tb.lengths[0] {
		return tb.ts[0]
	}
	return tb.ts[n-1]
}

func TestTableBuild(t *testing.T) {
	tb := NewTable(arch, DefaultTableSize)
	if tb.Len() != DefaultTableSize {
		t.Fatalf("got %d samples, want %d", tb.Len(), DefaultTableSize)
	}
	if ts, l := tb.Entry(0); ts != 0 || l != 0 {
		t.Errorf("got first entry (%g, %g), want (0, 0)", ts, l)
	}
	if ts, l := tb.Entry(tb.Len() - 1); ts != 1 || l != tb.Total() {
		t.Errorf("got last entry (%g, %g), want (1, %g)", ts, l, tb.Total())
	}
	assertClose(t, tb.Total(), arch.ChordLength(DefaultTableSize-1), 1e-12)

	prevT, prevL := -1.0, -1.0
	for ts, l := range tb.All() {
		if ts <= prevT {
			t.Errorf("parameters aren't increasing: %g after %g", ts, prevT)
		}
		if l < prevL {
			t.Errorf("lengths aren't non-decreasing: %g after %g", l, prevL)
		}
		prevT, prevL = ts, l
	}
}

func TestTableLine(t *testing.T) {
	// A cubic with evenly spaced collinear control points is a line traversed
	// at constant speed, so the table is exact.
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	tb := NewTable(c, 11)
	assertClose(t, tb.Total(), 3, 1e-12)
	for i := range 31 {
		d := float64(i) / 10
		assertClose(t, tb.T(d), d/3, 1e-12)
		assertClose(t, tb.Distance(d/3), d, 1e-12)
	}
}

func TestTableDistanceClamps(t *testing.T) {
	tb := NewTable(arch, DefaultTableSize)
	for _, ts := range []float64{-100, -1, -0.01, math.Inf(-1)} {
		if d := tb.Distance(ts); d != 0 {
			t.Errorf("Distance(%g) = %g, want 0", ts, d)
		}
	}
	for _, ts := range []float64{1, 1.01, 2, 100, math.Inf(1)} {
		if d := tb.Distance(ts); d != tb.Total() {
			t.Errorf("Distance(%g) = %g, want %g", ts, d, tb.Total())
		}
	}
	if d := tb.Distance(math.NaN()); !math.IsNaN(d) {
		t.Errorf("Distance(NaN) = %g, want NaN", d)
	}
}

func TestTableTClamps(t *testing.T) {
	tb := NewTable(arch, DefaultTableSize)
	for _, d := range []float64{-100, -1, -1e-9, math.Inf(-1)} {
		if ts := tb.T(d); ts != 0 {
			t.Errorf("T(%g) = %g, want 0", d, ts)
		}
	}
	for _, d := range []float64{tb.Total(), tb.Total() + 1e-9, 1000, math.Inf(1)} {
		if ts := tb.T(d); ts != 1 {
			t.Errorf("T(%g) = %g, want 1", d, ts)
		}
	}
	if ts := tb.T(math.NaN()); !math.IsNaN(ts) {
		t.Errorf("T(NaN) = %g, want NaN", ts)
	}
}

func TestTableTMatchesLinearScan(t *testing.T) {
	tables := []*Table{
		NewTable(arch, DefaultTableSize),
		NewTable(arch, 2),
		NewTable(arch, 7),
		// Repeated lengths where the curve stands still.
		NewTable(CubicBez{Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(5, 5)}, 16),
		NewTable(CubicBez{Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)}, 8),
	}
	for _, tb := range tables {
		var dists []float64
		for _, l := range tb.All() {
			dists = append(dists, l)
		}
		for i := range 101 {
			dists = append(dists, tb.Total()*float64(i)/100)
		}
		dists = append(dists, -1, tb.Total()+1)
		for _, d := range dists {
			if got, want := tb.T(d), linearT(tb, d); got != want {
				t.Errorf("T(%g) = %g, linear scan found %g", d, got, want)
			}
		}
	}
}

func TestTableRoundTrip(t *testing.T) {
	tb := NewTable(arch, DefaultTableSize)
	for i := range 201 {
		d := tb.Total() * float64(i) / 200
		assertClose(t, tb.Distance(tb.T(d)), d, 1e-9)
	}
	for i := range 201 {
		ts := float64(i) / 200
		assertClose(t, tb.T(tb.Distance(ts)), ts, 1e-9)
	}
}

func TestTableMonotonic(t *testing.T) {
	tb := NewTable(arch, DefaultTableSize)
	prevD := math.Inf(-1)
	for i := range 1001 {
		ts := float64(i)/1000*1.2 - 0.1
		d := tb.Distance(ts)
		if d < prevD-1e-12 {
			t.Fatalf("Distance(%g) = %g < %g", ts, d, prevD)
		}
		prevD = d
	}
	prevT := math.Inf(-1)
	for i := range 1001 {
		d := (float64(i)/1000*1.2 - 0.1) * tb.Total()
		ts := tb.T(d)
		if ts < prevT-1e-12 {
			t.Fatalf("T(%g) = %g < %g", d, ts, prevT)
		}
		prevT = ts
	}
}

func TestTableDegenerate(t *testing.T) {
	p := Pt(1, 1)
	tb := NewTable(CubicBez{p, p, p, p}, DefaultTableSize)
	if tb.Total() != 0 {
		t.Errorf("got length %g, want 0", tb.Total())
	}
	if ts := tb.T(0); ts != 0 {
		t.Errorf("T(0) = %g, want 0", ts)
	}
	if d := tb.Distance(0.5); d != 0 {
		t.Errorf("Distance(0.5) = %g, want 0", d)
	}
}

func TestTableSingleEntry(t *testing.T) {
	tb := NewTable(arch, 1)
	diff(t, []float64{0}, tb.ts)
	diff(t, []float64{0}, tb.lengths)
	if d := tb.Distance(0.7); d != 0 {
		t.Errorf("Distance(0.7) = %g, want 0", d)
	}
	if ts := tb.T(3); ts != 0 {
		t.Errorf("T(3) = %g, want 0", ts)
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	for _, n := range []int{0, -5} {
		buf.Reset()
		tb := NewTable(arch, n)
		if tb.Len() != 0 || tb.Total() != 0 {
			t.Errorf("got %d samples and length %g, want empty table", tb.Len(), tb.Total())
		}
		if d := tb.Distance(0.5); d != 0 {
			t.Errorf("Distance(0.5) = %g, want 0", d)
		}
		if ts := tb.T(1); ts != 0 {
			t.Errorf("T(1) = %g, want 0", ts)
		}
		out := buf.String()
		if got := strings.Count(out, "level=ERROR"); got != 2 {
			t.Errorf("got %d error records, want 2:\n%s", got, out)
		}
		if !strings.Contains(out, "op=Distance") || !strings.Contains(out, "op=T") {
			t.Errorf("log is missing operation names:\n%s", out)
		}
	}
}

func TestTableResizeReusesStorage(t *testing.T) {
	tb := NewTable(arch, 16)
	tb.resize(8)
	if cap(tb.ts) != 16 {
		t.Errorf("got capacity %d, want 16", cap(tb.ts))
	}
	tb.build(arch.Eval, arch.P0)
	want := NewTable(arch, 8)
	diff(t, want.lengths, tb.lengths, cmpopts.EquateApprox(0, 1e-12))
}

func BenchmarkTableBuild(b *testing.B) {
	tb := &Table{}
	tb.resize(DefaultTableSize)
	for range b.N {
		tb.build(arch.Eval, arch.P0)
	}
}

func BenchmarkTableT(b *testing.B) {
	tb := NewTable(arch, DefaultTableSize)
	total := tb.Total()
	for i := range b.N {
		tb.T(total * float64(i%100) / 100)
	}
}
