package frame

import (
	"sync"
	"time"

	"github.com/go-pulse/pulse/pkg/errors"
)

// DefaultInterval approximates a 60Hz display link.
const DefaultInterval = time.Second / 60

// Driver steps a Loop at a fixed interval on its own goroutine,
// standing in for the platform display link.
//
// A panic escaping a tick is recovered and reported through the global
// error handler; the driver keeps running. Callbacks that were still
// pending on the panicking tick run on the next tick.
type Driver struct {
	loop     *Loop
	interval time.Duration

	mu       sync.Mutex
	isActive bool
	start    time.Time
	stop     chan struct{}
}

// NewDriver creates a driver for the given loop. A nil loop gets a fresh
// one; a non-positive interval falls back to DefaultInterval.
func NewDriver(loop *Loop, interval time.Duration) *Driver {
	if loop == nil {
		loop = NewLoop()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Driver{loop: loop, interval: interval}
}

// Loop returns the loop this driver steps.
func (d *Driver) Loop() *Loop {
	return d.loop
}

// Start begins stepping the loop. Starting an active driver is a no-op.
func (d *Driver) Start() {
	d.mu.Lock()
	if d.isActive {
		d.mu.Unlock()
		return
	}
	d.isActive = true
	d.start = Now()
	d.stop = make(chan struct{})
	stop := d.stop
	d.mu.Unlock()

	go d.run(stop)
}

// Stop halts stepping. Stopping an inactive driver is a no-op.
func (d *Driver) Stop() {
	d.mu.Lock()
	if !d.isActive {
		d.mu.Unlock()
		return
	}
	d.isActive = false
	close(d.stop)
	d.mu.Unlock()
}

// IsActive returns whether the driver is currently running.
func (d *Driver) IsActive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isActive
}

// Elapsed returns the time since the driver started.
func (d *Driver) Elapsed() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.isActive {
		return 0
	}
	return Now().Sub(d.start)
}

func (d *Driver) run(stop chan struct{}) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			d.step()
		}
	}
}

func (d *Driver) step() {
	defer errors.Recover("frame.Driver.step")
	d.loop.Tick()
}
