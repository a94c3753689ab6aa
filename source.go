package bezier

import (
	"sync"
)

// PointSource is a position owned by someone else, such as an object in a
// scene graph, that announces when it moves.
type PointSource interface {
	// Point returns the current position.
	Point() Point
	// Subscribe registers fn to be called with the source whenever its
	// position changes. Calling the returned function removes the
	// subscription.
	Subscribe(fn func(src PointSource)) (unsubscribe func())
}

// NewCurveFromSources returns a curve whose control points follow the
// positions of a, b, c and d. Whenever a source reports a change, the
// corresponding control point is updated and the arc length table is
// invalidated.
//
// Use [Curve.Detach] to stop following the sources.
func NewCurveFromSources(a, b, c, d PointSource, opts ...CurveOption) *Curve {
	srcs := [4]PointSource{a, b, c, d}
	curve := NewCurve(a.Point(), b.Point(), c.Point(), d.Point(), opts...)
	unsubs := make([]func(), 0, len(srcs))
	for i, src := range srcs {
		unsubs = append(unsubs, src.Subscribe(func(src PointSource) {
			curve.SetControlPoint(i, src.Point())
		}))
	}
	curve.mu.Lock()
	curve.unsubs = unsubs
	curve.mu.Unlock()
	return curve
}

// Detach unsubscribes the curve from the sources it was created with by
// [NewCurveFromSources]. The control points keep their current values. It is
// a no-op for curves created by [NewCurve] and for curves already detached.
func (c *Curve) Detach() {
	c.mu.Lock()
	unsubs := c.unsubs
	c.unsubs = nil
	c.mu.Unlock()
	for _, fn := range unsubs {
		fn()
	}
}

// Anchor is a [PointSource] that holds its position in memory. It is safe for
// concurrent use.
//
// Subscribers are called synchronously by [Anchor.Move], in the order they
// subscribed, without any lock held.
type Anchor struct {
	mu     sync.Mutex
	pt     Point
	nextID int
	subs   []anchorSub
}

type anchorSub struct {
	id int
	fn func(PointSource)
}

var _ PointSource = (*Anchor)(nil)

// NewAnchor returns an anchor at pt.
func NewAnchor(pt Point) *Anchor {
	return &Anchor{pt: pt}
}

// Point implements [PointSource].
func (a *Anchor) Point() Point {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pt
}

// Move sets the anchor's position and notifies subscribers. Subscribers are
// notified even if the position didn't change.
func (a *Anchor) Move(pt Point) {
	a.mu.Lock()
	a.pt = pt
	subs := make([]anchorSub, len(a.subs))
	copy(subs, a.subs)
	a.mu.Unlock()

	for _, sub := range subs {
		sub.fn(a)
	}
}

// Subscribe implements [PointSource].
func (a *Anchor) Subscribe(fn func(PointSource)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.nextID
	a.nextID++
	a.subs = append(a.subs, anchorSub{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			defer a.mu.Unlock()
			for i, sub := range a.subs {
				if sub.id == id {
					a.subs = append(a.subs[:i:i], a.subs[i+1:]...)
					break
				}
			}
		})
	}
}
