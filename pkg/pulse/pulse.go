// Package pulse wires the toolkit together: it owns the shared frame
// driver and constructs mutation schedulers bound to it.
//
// Widgets are expected to obtain their scheduler from a Runtime (or the
// package-level default) so every element in an application batches its
// mutations onto the same frame loop.
package pulse

import (
	"github.com/go-pulse/pulse/pkg/aria"
	"github.com/go-pulse/pulse/pkg/config"
	"github.com/go-pulse/pulse/pkg/frame"
	"github.com/go-pulse/pulse/pkg/mutation"
	"github.com/go-pulse/pulse/pkg/target"
)

// Runtime owns one frame driver and hands out schedulers bound to it.
type Runtime struct {
	driver *frame.Driver
	opts   config.Options
}

// NewRuntime creates a runtime from the given options. Zero-valued option
// fields fall back to the scheduler defaults. If opts enables
// accessibility, the global aria switch is turned on.
func NewRuntime(opts config.Options) *Runtime {
	if opts.Accessibility {
		aria.Enable()
	}
	return &Runtime{
		driver: frame.NewDriver(frame.NewLoop(), opts.Interval()),
		opts:   opts,
	}
}

// Start begins stepping the frame loop.
func (r *Runtime) Start() {
	r.driver.Start()
}

// Stop halts the frame loop.
func (r *Runtime) Stop() {
	r.driver.Stop()
}

// Loop returns the runtime's frame loop. Hosts that drive frames
// themselves tick this instead of calling Start.
func (r *Runtime) Loop() *frame.Loop {
	return r.driver.Loop()
}

// New creates a scheduler over t, booking ticks on the runtime's loop and
// carrying the runtime's class-name configuration.
func (r *Runtime) New(t target.Target) *mutation.Scheduler {
	return mutation.New(t, r.driver.Loop()).
		WithClassNames(r.opts.ShownClass, r.opts.HiddenClass).
		WithDisplayProperty(r.opts.DisplayProperty)
}

// Dispatch books arbitrary work on the runtime's next frame tick.
// Safe to call from any goroutine.
func (r *Runtime) Dispatch(fn func()) {
	r.driver.Loop().RequestFrame(fn)
}

// DefaultRuntime is the runtime used by the package-level helpers.
var DefaultRuntime = NewRuntime(config.DefaultOptions())

// Configure replaces the default runtime with one built from opts.
// The previous runtime's driver is stopped.
func Configure(opts config.Options) {
	DefaultRuntime.Stop()
	DefaultRuntime = NewRuntime(opts)
}

// New creates a scheduler on the default runtime.
func New(t target.Target) *mutation.Scheduler {
	return DefaultRuntime.New(t)
}

// Dispatch books work on the default runtime's next frame tick.
func Dispatch(fn func()) {
	DefaultRuntime.Dispatch(fn)
}
