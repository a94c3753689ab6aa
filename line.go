package bezier

// Line is a line segment from P0 to P1.
//
// A Curve keeps one Line per pair of adjacent control points. The fields
// may be reassigned at any time; Line caches nothing.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Eval returns the point at parameter t, going from P0 at t = 0 to P1 at
// t = 1. Values of t outside of [0, 1] extrapolate.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// EvalReverse is like Eval but walks the line from P1 to P0.
func (l Line) EvalReverse(t float64) Point {
	return l.P1.Lerp(l.P0, t)
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Reverse returns the line with its endpoints swapped.
func (l Line) Reverse() Line {
	return Line{P0: l.P1, P1: l.P0}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
