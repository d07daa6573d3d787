// Package frame provides the single-shot frame-tick primitive that drives
// deferred work in Pulse.
//
// The contract is "run this callback exactly once before the next frame".
// A [Loop] collects registered callbacks and drains them in FIFO order when
// its Tick method is invoked; a [Driver] steps a Loop on a fixed interval
// the way a display link would. Registration is safe from any goroutine,
// but all callback execution happens on the goroutine that ticks the loop.
package frame

import "sync"

// Requester schedules a callback to run exactly once before the next frame.
//
// Implementations must preserve registration order within a tick and must
// not run a callback more than once.
type Requester interface {
	RequestFrame(fn func())
}

// Loop is the manual frame pump. Callbacks registered during a tick are
// deferred to the following tick, so each registration observes the
// "before next frame" contract even when made from inside a callback.
type Loop struct {
	mu      sync.Mutex
	pending []func()

	// OnNeedsFrame is called when a callback is registered on an empty
	// queue, signalling the platform that a frame should be produced. This
	// supports on-demand frame scheduling where the display link is paused
	// until explicitly requested.
	OnNeedsFrame func()
}

// NewLoop creates an empty frame loop.
func NewLoop() *Loop {
	return &Loop{}
}

// RequestFrame registers fn to run on the next tick.
// Safe to call from any goroutine. A nil fn is ignored.
func (l *Loop) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	wasEmpty := len(l.pending) == 0
	l.pending = append(l.pending, fn)
	notify := l.OnNeedsFrame
	l.mu.Unlock()

	if wasEmpty && notify != nil {
		notify()
	}
}

// Tick drains the callbacks registered before this tick, running them in
// registration order, and returns how many ran. Callbacks registered while
// Tick is executing are left for the next tick.
func (l *Loop) Tick() int {
	callbacks := l.drain()
	for _, fn := range callbacks {
		fn()
	}
	return len(callbacks)
}

// Pending returns the number of callbacks waiting for the next tick.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

func (l *Loop) drain() []func() {
	l.mu.Lock()
	callbacks := l.pending
	l.pending = nil
	l.mu.Unlock()
	return callbacks
}
