package bezier

// maxCasteljauPoints bounds the scratch space used by deCasteljau. Only
// cubics use it today.
const maxCasteljauPoints = 4

// deCasteljau runs levels rounds of de Casteljau's algorithm on pts, each
// round replacing n points by the n-1 lerps of adjacent pairs. It returns the
// remaining len(pts)-levels points in a fixed-size array, with the count as
// the second return value.
//
// Running len(pts)-1 levels evaluates the Bézier curve with control points
// pts at t. Stopping one level early yields the two points whose difference
// is the curve's derivative direction.
func deCasteljau(pts []Point, t float64, levels int) ([maxCasteljauPoints]Point, int) {
	if len(pts) > maxCasteljauPoints {
		panic("too many control points")
	}
	if levels >= len(pts) {
		panic("too many levels")
	}
	var buf [maxCasteljauPoints]Point
	n := copy(buf[:], pts)
	for range levels {
		for i := range n - 1 {
			buf[i] = buf[i].Lerp(buf[i+1], t)
		}
		n--
	}
	return buf, n
}
