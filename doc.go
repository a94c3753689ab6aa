// Package bezier evaluates cubic Bézier curves and walks them by distance.
//
// # Curves and values
//
// [CubicBez] is an immutable cubic Bézier curve. It can be evaluated at a
// parameter t ∈ [0, 1] with [CubicBez.Eval], which uses de Casteljau's
// algorithm, and it reports unit tangents and normals. Parameters outside of
// [0, 1] are not clamped and extrapolate the curve's polynomial.
//
// [Curve] is a cubic Bézier curve whose control points change over time, for
// example because they are attached to objects that a user drags around. In
// addition to evaluation by parameter, it supports evaluation by distance
// along the curve: [Curve.PointDist], [Curve.TangentDist] and
// [Curve.NormalDist].
//
// # Distances
//
// The parameter t of a Bézier curve does not advance at a constant speed. To
// map between t and the distance travelled along the curve, a [Curve] samples
// itself at evenly spaced parameters and sums up the straight-line distances
// between neighboring samples. These cumulative lengths are stored in a
// [Table], which answers [Table.Distance] by direct indexing and [Table.T] by
// searching, interpolating linearly between samples.
//
// The table is built on first use and rebuilt after any control point has
// changed. Its resolution is configured with [WithTableSize]. Because it
// approximates the curve by a polyline, distances slightly underestimate the
// true arc length; with the default of [DefaultTableSize] samples the error is
// negligible for the curves found in typical 2D scenes.
//
// # Following points
//
// [NewCurveFromSources] creates a curve whose control points follow four
// [PointSource] values. [Anchor] is a simple implementation of PointSource.
//
// # Coordinate systems
//
// The package makes no assumption about the direction of the y axis. Normals
// are tangents rotated by -90°, which points to the right of the direction of
// travel in a y-up coordinate system and to the left in a y-down one.
//
// # Logging
//
// The package logs through [log/slog]; see [SetLogger]. Nothing is logged by
// default.
package bezier
