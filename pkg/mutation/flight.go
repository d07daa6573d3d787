package mutation

import (
	"sync"

	"github.com/go-pulse/pulse/pkg/errors"
)

// Flight is the result of a scheduled read or write: a single-use future
// that settles once the booked frame callback has run.
//
// A flight resolves with its scheduler, or rejects with a *errors.PulseError
// describing the failure kind. By contract, a callback failure rejects the
// flight without carrying the callback's own error value; callers that need
// detail must inspect target state instead.
//
// ThenRead and ThenWrite chain a subsequent phase after the flight settles
// successfully, so read-then-write and write-then-read sequencing does not
// require the caller to coordinate two scheduling calls.
type Flight struct {
	scheduler *Scheduler

	mu      sync.Mutex
	done    chan struct{}
	settled bool
	err     error
	onDone  []func(err error)
}

func newFlight(s *Scheduler) *Flight {
	return &Flight{
		scheduler: s,
		done:      make(chan struct{}),
	}
}

// Done returns a channel closed when the flight settles.
func (f *Flight) Done() <-chan struct{} {
	return f.done
}

// Err returns the rejection error, or nil if the flight resolved or has
// not settled yet.
func (f *Flight) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Scheduler returns the scheduler that produced this flight.
func (f *Flight) Scheduler() *Scheduler {
	return f.scheduler
}

// Await blocks until the flight settles and returns the scheduler together
// with the rejection error, if any. Await must not be called from the frame
// goroutine itself: the flight settles on a frame tick, so waiting there
// would deadlock.
func (f *Flight) Await() (*Scheduler, error) {
	<-f.done
	return f.scheduler, f.Err()
}

// ThenWrite chains a write phase after this flight settles. If this flight
// resolves, cb is scheduled via the scheduler's Write; if it rejects, the
// returned flight rejects with the same error and cb never runs. A refusal
// of the chained Write (write phase already active when the continuation
// fires) rejects the returned flight with ErrRefused.
func (f *Flight) ThenWrite(cb WriteFunc) *Flight {
	next := newFlight(f.scheduler)
	f.onSettle(func(err error) {
		if err != nil {
			next.reject(err)
			return
		}
		pipeFlight(next, f.scheduler.Write(cb), "mutation.Flight.ThenWrite")
	})
	return next
}

// ThenRead chains a read phase after this flight settles, symmetric to
// ThenWrite.
func (f *Flight) ThenRead(cb ReadFunc) *Flight {
	next := newFlight(f.scheduler)
	f.onSettle(func(err error) {
		if err != nil {
			next.reject(err)
			return
		}
		pipeFlight(next, f.scheduler.Read(cb), "mutation.Flight.ThenRead")
	})
	return next
}

// pipeFlight settles next from inner, treating a nil inner flight as a
// refusal.
func pipeFlight(next, inner *Flight, op string) {
	if inner == nil {
		next.reject(&errors.PulseError{Op: op, Kind: errors.KindFrame, Err: ErrRefused})
		return
	}
	inner.onSettle(func(err error) {
		if err != nil {
			next.reject(err)
			return
		}
		next.resolve()
	})
}

func (f *Flight) resolve() { f.settle(nil) }

func (f *Flight) reject(err error) { f.settle(err) }

func (f *Flight) settle(err error) {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return
	}
	f.settled = true
	f.err = err
	conts := f.onDone
	f.onDone = nil
	close(f.done)
	f.mu.Unlock()

	for _, fn := range conts {
		fn(err)
	}
}

// onSettle runs fn once the flight settles, immediately if it already has.
func (f *Flight) onSettle(fn func(err error)) {
	f.mu.Lock()
	if !f.settled {
		f.onDone = append(f.onDone, fn)
		f.mu.Unlock()
		return
	}
	err := f.err
	f.mu.Unlock()
	fn(err)
}
