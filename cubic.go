package bezier

// CubicBez is a cubic Bézier curve with the control points P0 to P3.
//
// CubicBez is a plain value; use [Curve] when the control points change over
// time and distances along the curve are needed.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) points() [4]Point {
	return [4]Point{c.P0, c.P1, c.P2, c.P3}
}

// Segments returns the three lines of the control polygon: P0P1, P1P2 and
// P2P3.
func (c CubicBez) Segments() [3]Line {
	return [3]Line{
		{c.P0, c.P1},
		{c.P1, c.P2},
		{c.P2, c.P3},
	}
}

// Eval evaluates the curve at t, using de Casteljau's algorithm. t is not
// clamped to [0, 1].
func (c CubicBez) Eval(t float64) Point {
	pts := c.points()
	out, _ := deCasteljau(pts[:], t, 3)
	return out[0]
}

// Tangent returns the unit tangent at t. If the derivative at t is zero, as
// is the case for curves whose control points all coincide, the zero vector
// is returned.
func (c CubicBez) Tangent(t float64) Vec2 {
	pts := c.points()
	out, _ := deCasteljau(pts[:], t, 2)
	return out[1].Sub(out[0]).NormalizeOrZero()
}

// Normal returns the unit normal at t, which is the tangent rotated by -90°.
// See [Vec2.TurnCW] for the orientation.
func (c CubicBez) Normal(t float64) Vec2 {
	return c.Tangent(t).TurnCW()
}

// Deriv returns the first derivative at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	pts := c.points()
	out, _ := deCasteljau(pts[:], t, 2)
	return out[1].Sub(out[0]).Mul(3)
}

// ChordLength returns the sum of the distances between n+1 evenly spaced
// samples. It approaches the arc length from below as n increases.
func (c CubicBez) ChordLength(n int) float64 {
	var sum float64
	prev := c.P0
	for i := 1; i <= n; i++ {
		pt := c.Eval(float64(i) / float64(n))
		sum += prev.Distance(pt)
		prev = pt
	}
	return sum
}

// PolygonLength returns the length of the control polygon, which is an upper
// bound of the curve's arc length.
func (c CubicBez) PolygonLength() float64 {
	var sum float64
	for _, l := range c.Segments() {
		sum += l.Length()
	}
	return sum
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// IsDegenerate reports whether all control points lie within epsilon of P0.
func (c CubicBez) IsDegenerate(epsilon float64) bool {
	e2 := epsilon * epsilon
	return c.P0.DistanceSquared(c.P1) <= e2 &&
		c.P0.DistanceSquared(c.P2) <= e2 &&
		c.P0.DistanceSquared(c.P3) <= e2
}
