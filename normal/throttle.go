package normal

import "sync/atomic"

// Throttle allows roughly one in every `period` calls to Allow through,
// used to keep a hot path's warning logs from flooding stderr when the
// same degenerate condition recurs every frame.
type Throttle struct {
	period int64
	count  atomic.Int64
}

// NewThrottle creates a Throttle that allows every `period`-th call.
func NewThrottle(period int64) *Throttle {
	return &Throttle{period: period}
}

// Allow increments the call counter and reports whether this call should
// be logged.
func (t *Throttle) Allow() bool {
	n := t.count.Add(1) - 1
	return n%t.period == 0
}
