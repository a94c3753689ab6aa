package bezier

import (
	"fmt"
	"iter"
	"slices"
	"sync"
)

// Curve is a cubic Bézier curve whose control points may change, with
// support for measuring and walking the curve by distance.
//
// Distances are computed from an arc length [Table], which is rebuilt lazily
// by the first distance-based operation after a control point has changed.
// All distances are approximate; see [Table] for details.
//
// A Curve is safe for concurrent use.
type Curve struct {
	mu sync.Mutex
	// pts are the control points. segs are the lines of the control polygon
	// and always mirror pts: segs[i] runs from pts[i] to pts[i+1].
	pts  [4]Point
	segs [3]Line

	table Table
	built bool

	// unsubscribe functions of bound point sources, see NewCurveFromSources.
	unsubs []func()
}

// NewCurve returns a curve with the control points p0 to p3.
func NewCurve(p0, p1, p2, p3 Point, opts ...CurveOption) *Curve {
	o := defaultCurveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Curve{}
	c.pts = [4]Point{p0, p1, p2, p3}
	c.segs = CubicBez{p0, p1, p2, p3}.Segments()
	c.table.resize(o.tableSize)
	return c
}

func checkIndex(i int) {
	if i < 0 || i > 3 {
		panic(fmt.Sprintf("bezier: control point index %d out of range [0, 3]", i))
	}
}

// ControlPoint returns the i-th control point. It panics if i is not in [0, 3].
func (c *Curve) ControlPoint(i int) Point {
	checkIndex(i)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pts[i]
}

// SetControlPoint replaces the i-th control point. It panics if i is not in
// [0, 3].
func (c *Curve) SetControlPoint(i int, p Point) {
	checkIndex(i)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(i, p)
	c.built = false
}

// SetControlPoints replaces all control points at once.
func (c *Curve) SetControlPoints(p0, p1, p2, p3 Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, p := range [4]Point{p0, p1, p2, p3} {
		c.setLocked(i, p)
	}
	c.built = false
}

// Transform applies aff to all control points.
func (c *Curve) Transform(aff Affine) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, p := range c.pts {
		c.setLocked(i, p.Transform(aff))
	}
	c.built = false
}

func (c *Curve) setLocked(i int, p Point) {
	c.pts[i] = p
	if i > 0 {
		c.segs[i-1].P1 = p
	}
	if i < len(c.segs) {
		c.segs[i].P0 = p
	}
}

// Bez returns a snapshot of the curve's control points.
func (c *Curve) Bez() CubicBez {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CubicBez{c.pts[0], c.pts[1], c.pts[2], c.pts[3]}
}

// Segments returns the lines of the control polygon.
func (c *Curve) Segments() [3]Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.segs
}

// Point returns the point at parameter t. t is not clamped; values outside of
// [0, 1] extrapolate the curve.
func (c *Curve) Point(t float64) Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pointLocked(t)
}

// Tangent returns the unit tangent at parameter t, or the zero vector if the
// curve has no direction at t.
func (c *Curve) Tangent(t float64) Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tangentLocked(t)
}

// Normal returns the unit normal at parameter t. It is the tangent rotated by
// -90°, see [Vec2.TurnCW].
func (c *Curve) Normal(t float64) Vec2 {
	return c.Tangent(t).TurnCW()
}

// level1 evaluates the control polygon's lines at t, which is the first round
// of de Casteljau's algorithm.
func (c *Curve) level1(t float64) [3]Point {
	return [3]Point{
		c.segs[0].Eval(t),
		c.segs[1].Eval(t),
		c.segs[2].Eval(t),
	}
}

func (c *Curve) pointLocked(t float64) Point {
	l1 := c.level1(t)
	out, _ := deCasteljau(l1[:], t, 2)
	return out[0]
}

func (c *Curve) tangentLocked(t float64) Vec2 {
	l1 := c.level1(t)
	out, _ := deCasteljau(l1[:], t, 1)
	return out[1].Sub(out[0]).NormalizeOrZero()
}

// BuildLUT rebuilds the arc length table if any control point changed since
// it was last built. Distance-based methods call it implicitly; calling it
// ahead of time moves the cost out of the first lookup.
func (c *Curve) BuildLUT() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buildLocked()
}

func (c *Curve) buildLocked() {
	if c.built {
		return
	}
	c.table.build(c.pointLocked, c.pts[0])
	c.built = true
	Logger().Debug("rebuilt arc length table",
		"samples", c.table.Len(),
		"length", c.table.Total())
}

// Table returns a copy of the curve's arc length table, building it first if
// necessary.
func (c *Curve) Table() *Table {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buildLocked()
	return &Table{
		ts:      slices.Clone(c.table.ts),
		lengths: slices.Clone(c.table.lengths),
		total:   c.table.total,
	}
}

// Length returns the approximate length of the curve.
func (c *Curve) Length() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buildLocked()
	return c.table.Total()
}

// Distance returns the approximate distance along the curve from its start to
// parameter t. See [Table.Distance].
func (c *Curve) Distance(t float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buildLocked()
	return c.table.Distance(t)
}

// T returns the parameter at distance dist along the curve. See [Table.T].
func (c *Curve) T(dist float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buildLocked()
	return c.table.T(dist)
}

// PointDist returns the point at distance dist along the curve.
func (c *Curve) PointDist(dist float64) Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buildLocked()
	return c.pointLocked(c.table.T(dist))
}

// TangentDist returns the unit tangent at distance dist along the curve.
func (c *Curve) TangentDist(dist float64) Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buildLocked()
	return c.tangentLocked(c.table.T(dist))
}

// NormalDist returns the unit normal at distance dist along the curve.
func (c *Curve) NormalDist(dist float64) Vec2 {
	return c.TangentDist(dist).TurnCW()
}

// Samples returns an iterator over n points spaced evenly along the curve,
// from its start to its end. Each point is yielded with its distance from the
// start. For n == 1, only the start point is yielded.
//
// The points are computed before the first value is yielded, so the loop body
// may modify the curve.
func (c *Curve) Samples(n int) iter.Seq2[float64, Point] {
	return func(yield func(float64, Point) bool) {
		if n <= 0 {
			return
		}
		dists := make([]float64, n)
		pts := make([]Point, n)

		c.mu.Lock()
		c.buildLocked()
		total := c.table.Total()
		for i := range n {
			var d float64
			if n > 1 {
				d = total * float64(i) / float64(n-1)
			}
			dists[i] = d
			pts[i] = c.pointLocked(c.table.T(d))
		}
		c.mu.Unlock()

		for i := range n {
			if !yield(dists[i], pts[i]) {
				return
			}
		}
	}
}
