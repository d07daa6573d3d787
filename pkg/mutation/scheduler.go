// Package mutation implements the batched mutation scheduler at the core
// of Pulse: a wrapper around a single visual element that defers reads and
// writes of visual state into distinct phases of a rendering frame, so
// collaborators never interleave read/write cycles that would force the
// host to recompute layout synchronously.
//
// Queue setters (AddClass, SetStyle, ...) are synchronous and only record
// pending state. Read and Write book a callback on the next frame tick and
// return a [Flight]; on tick, queued mutations are applied to the target
// in one flush and the queue is cleared.
//
// A scheduler manages exactly one target and one pending mutation set.
// All callback execution is single-threaded and cooperative: the frame
// loop's goroutine runs every scheduled callback, and the reentrancy
// guards assume callbacks are never concurrent with dispatch. Hosts that
// drive the loop from more than one goroutine violate the contract;
// enable DebugMode to have violations reported.
package mutation

import (
	stderrors "errors"
	"fmt"

	"github.com/go-pulse/pulse/pkg/errors"
	"github.com/go-pulse/pulse/pkg/frame"
	"github.com/go-pulse/pulse/pkg/target"
)

// Default class names toggled by Conceal and Reveal, and the style
// property cleared or forced by them.
const (
	DefaultShownClass      = "show"
	DefaultHiddenClass     = "hide"
	DefaultDisplayProperty = "display"
)

// ErrRefused marks a chained phase that could not be booked because the
// same phase was already active when the continuation fired.
var ErrRefused = stderrors.New("scheduling refused: phase already active")

var errMissingTarget = stderrors.New("no target bound")

// ReadFunc observes target state during a read phase.
type ReadFunc func(t target.Target) error

// WriteFunc performs side effects during a write phase, before the queue
// flush is booked. It receives the scheduler so it can queue mutations.
type WriteFunc func(s *Scheduler) error

// Scheduler batches mutations for one target and schedules their
// application on frame ticks.
//
// The zero value is not usable; construct with New.
type Scheduler struct {
	target target.Target
	frames frame.Requester
	queue  mutationQueue
	phase  Phase

	shownClass  string
	hiddenClass string
	displayProp string

	affinity dispatchAffinity
}

// New creates a scheduler over t, booking frame callbacks on frames.
// A nil frames gets a private [frame.Loop], reachable via Frames, which
// the host must tick itself.
func New(t target.Target, frames frame.Requester) *Scheduler {
	if frames == nil {
		frames = frame.NewLoop()
	}
	return &Scheduler{
		target:      t,
		frames:      frames,
		queue:       newMutationQueue(),
		shownClass:  DefaultShownClass,
		hiddenClass: DefaultHiddenClass,
		displayProp: DefaultDisplayProperty,
	}
}

// Frames returns the frame requester this scheduler books ticks on.
func (s *Scheduler) Frames() frame.Requester {
	return s.frames
}

// Target returns the bound target, which may be nil.
func (s *Scheduler) Target() target.Target {
	return s.target
}

// SetTarget rebinds the scheduler to t. Passing nil clears the binding;
// subsequent flushes and queries fail with a target-kind error until a
// target is bound again.
func (s *Scheduler) SetTarget(t target.Target) *Scheduler {
	s.target = t
	return s
}

// WithClassNames overrides the class names used by Conceal and Reveal.
// Empty arguments keep the current values.
func (s *Scheduler) WithClassNames(shown, hidden string) *Scheduler {
	if shown != "" {
		s.shownClass = shown
	}
	if hidden != "" {
		s.hiddenClass = hidden
	}
	return s
}

// WithDisplayProperty overrides the style property Conceal and Reveal use
// to hide the target. An empty argument keeps the current value.
func (s *Scheduler) WithDisplayProperty(prop string) *Scheduler {
	if prop != "" {
		s.displayProp = prop
	}
	return s
}

// Phase returns the currently executing phase.
func (s *Scheduler) Phase() Phase {
	return s.phase
}

// --- queue setters -------------------------------------------------------

// AddClass queues a class to add on the next flush. A later call replaces
// the pending value; there is no per-class tracking.
func (s *Scheduler) AddClass(name string) *Scheduler {
	s.queue.setAddClass(name)
	return s
}

// RemoveClass queues a class to remove on the next flush. A later call
// replaces the pending value.
func (s *Scheduler) RemoveClass(name string) *Scheduler {
	s.queue.setRemoveClass(name)
	return s
}

// SetAttribute queues an attribute assignment. Non-string values are
// coerced to their textual representation. Last write per key wins.
func (s *Scheduler) SetAttribute(key string, value any) *Scheduler {
	s.queue.attrs[key] = stringify(value)
	return s
}

// SetAttributes queues every entry via SetAttribute.
func (s *Scheduler) SetAttributes(attrs map[string]any) *Scheduler {
	for k, v := range attrs {
		s.SetAttribute(k, v)
	}
	return s
}

// SetProperty queues a direct property assignment. The value is stored
// as-is. Last write per key wins.
func (s *Scheduler) SetProperty(key string, value any) *Scheduler {
	s.queue.props[key] = value
	return s
}

// SetProperties queues every entry via SetProperty.
func (s *Scheduler) SetProperties(props map[string]any) *Scheduler {
	for k, v := range props {
		s.SetProperty(k, v)
	}
	return s
}

// SetStyle queues a style assignment. An empty value clears the style at
// flush time. Last write per key wins.
func (s *Scheduler) SetStyle(key, value string) *Scheduler {
	s.queue.styles[key] = value
	return s
}

// SetStyles queues every entry via SetStyle.
func (s *Scheduler) SetStyles(styles map[string]string) *Scheduler {
	for k, v := range styles {
		s.SetStyle(k, v)
	}
	return s
}

// --- synchronous queries -------------------------------------------------

// HasClass reports whether the class is presently applied to the target.
// Pending queue entries are ignored. With no target bound it reports a
// target-kind error and returns false.
func (s *Scheduler) HasClass(name string) bool {
	if s.target == nil {
		s.reportMissingTarget("mutation.Scheduler.HasClass")
		return false
	}
	return s.target.HasClass(name)
}

// IsVisible reports whether the target's visibility state is not hidden.
// With no target bound it reports a target-kind error and returns false.
func (s *Scheduler) IsVisible() bool {
	if s.target == nil {
		s.reportMissingTarget("mutation.Scheduler.IsVisible")
		return false
	}
	return s.target.Visible()
}

// --- frame scheduling ----------------------------------------------------

// Read books cb to run on the next frame tick with direct access to the
// target. It returns nil, not a flight, when a read phase is already
// active: nested reads are refused rather than queued, and the refused
// callback never runs. Otherwise the returned flight resolves after cb
// executes, or rejects with a callback-kind error if cb fails or panics
// (the callback's own error value is not carried), or with a target-kind
// error if no target is bound at tick time.
func (s *Scheduler) Read(cb ReadFunc) *Flight {
	if s.phase == PhaseRead {
		return nil
	}
	f := newFlight(s)
	s.frames.RequestFrame(func() {
		s.affinity.check()
		if s.target == nil {
			f.reject(&errors.PulseError{Op: "mutation.Scheduler.Read", Kind: errors.KindTarget, Err: errMissingTarget})
			return
		}
		if cb == nil {
			f.resolve()
			return
		}
		err := s.runPhase(PhaseRead, func() error { return cb(s.target) })
		if err != nil {
			f.reject(&errors.PulseError{Op: "mutation.Scheduler.Read", Kind: errors.KindCallback})
			return
		}
		f.resolve()
	})
	return f
}

// Write schedules the queue flush on the next frame tick. It returns nil
// when a write phase is already active.
//
// A non-nil cb runs synchronously, immediately, under the write guard,
// for side effects that must happen before the flush is booked. If cb
// fails or panics the returned flight is already rejected with a
// callback-kind error and no flush is booked; the queued mutations stay
// pending for the next write. Otherwise the flight settles when the flush
// runs: resolved on success, rejected with a target-kind error when no
// target is bound.
func (s *Scheduler) Write(cb WriteFunc) *Flight {
	if s.phase == PhaseWrite {
		return nil
	}
	f := newFlight(s)
	if cb != nil {
		if err := s.runPhase(PhaseWrite, func() error { return cb(s) }); err != nil {
			f.reject(&errors.PulseError{Op: "mutation.Scheduler.Write", Kind: errors.KindCallback})
			return f
		}
	}
	s.frames.RequestFrame(func() {
		s.affinity.check()
		if s.target == nil {
			f.reject(&errors.PulseError{Op: "mutation.Scheduler.Write", Kind: errors.KindTarget, Err: errMissingTarget})
			return
		}
		err := s.runPhase(PhaseWrite, func() error {
			s.queue.flush(s.target)
			return nil
		})
		if err != nil {
			f.reject(&errors.PulseError{Op: "mutation.Scheduler.Write", Kind: errors.KindTarget, Err: err})
			return
		}
		f.resolve()
	})
	return f
}

// runPhase executes fn under the given phase, restoring the previous phase
// afterwards even if fn fails or panics. A panic is converted to an error.
func (s *Scheduler) runPhase(p Phase, fn func() error) (err error) {
	prev := s.phase
	s.phase = p
	defer func() {
		s.phase = prev
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func (s *Scheduler) reportMissingTarget(op string) {
	errors.Report(&errors.PulseError{Op: op, Kind: errors.KindTarget, Err: errMissingTarget})
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
