package mutation

import (
	"sync"
	"testing"

	"github.com/go-pulse/pulse/pkg/errors"
	"github.com/go-pulse/pulse/pkg/target"
)

type affinityHandler struct {
	mu     sync.Mutex
	frames []*errors.PulseError
}

func (h *affinityHandler) HandleError(e *errors.PulseError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if e.Kind == errors.KindFrame {
		h.frames = append(h.frames, e)
	}
}

func (h *affinityHandler) HandlePanic(*errors.PanicError) {}

func (h *affinityHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.frames)
}

func TestAffinitySameGoroutineIsQuiet(t *testing.T) {
	prevDebug := DebugMode
	SetDebugMode(true)
	defer SetDebugMode(prevDebug)

	h := &affinityHandler{}
	prev := errors.DefaultHandler
	errors.SetHandler(h)
	defer errors.SetHandler(prev)

	s, _, loop := newTestScheduler()
	s.Read(func(target.Target) error { return nil })
	loop.Tick()
	s.Write(nil)
	loop.Tick()

	if h.count() != 0 {
		t.Fatalf("no affinity error expected on one goroutine, got %d", h.count())
	}
}

func TestAffinityCrossGoroutineReported(t *testing.T) {
	prevDebug := DebugMode
	SetDebugMode(true)
	defer SetDebugMode(prevDebug)

	h := &affinityHandler{}
	prev := errors.DefaultHandler
	errors.SetHandler(h)
	defer errors.SetHandler(prev)

	s, _, loop := newTestScheduler()
	s.Read(func(target.Target) error { return nil })
	loop.Tick() // pins dispatch to this goroutine

	s.Read(func(target.Target) error { return nil })
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Tick()
	}()
	<-done

	if h.count() != 1 {
		t.Fatalf("expected one affinity report, got %d", h.count())
	}
}

func TestAffinityDisabledByDefault(t *testing.T) {
	h := &affinityHandler{}
	prev := errors.DefaultHandler
	errors.SetHandler(h)
	defer errors.SetHandler(prev)

	s, _, loop := newTestScheduler()
	s.Read(func(target.Target) error { return nil })
	loop.Tick()

	s.Read(func(target.Target) error { return nil })
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Tick()
	}()
	<-done

	if h.count() != 0 {
		t.Fatalf("affinity checks must be off without DebugMode, got %d reports", h.count())
	}
}
