package bezier

// CurveOption configures a [Curve] during creation.
//
// Example:
//
//	c := bezier.NewCurve(p0, p1, p2, p3, bezier.WithTableSize(128))
type CurveOption func(*curveOptions)

type curveOptions struct {
	tableSize int
}

func defaultCurveOptions() curveOptions {
	return curveOptions{
		tableSize: DefaultTableSize,
	}
}

// WithTableSize sets the number of samples in the curve's arc length table.
// More samples make distances more accurate at the cost of slower rebuilds.
// Negative values are treated as 0, which disables distance lookups.
func WithTableSize(n int) CurveOption {
	return func(o *curveOptions) {
		o.tableSize = max(n, 0)
	}
}
