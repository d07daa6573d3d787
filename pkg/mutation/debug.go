package mutation

import (
	"fmt"

	"github.com/petermattis/goid"

	"github.com/go-pulse/pulse/pkg/errors"
)

// DebugMode controls whether schedulers verify that all frame callbacks
// run on a single dispatch goroutine. The single-threaded contract is
// otherwise assumed, not checked.
var DebugMode = false

// SetDebugMode enables or disables dispatch affinity checks.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// dispatchAffinity pins a scheduler to the goroutine that ran its first
// frame callback and reports any callback that arrives on another one.
type dispatchAffinity struct {
	id     int64
	pinned bool
}

func (a *dispatchAffinity) check() {
	if !DebugMode {
		return
	}
	gid := goid.Get()
	if !a.pinned {
		a.id = gid
		a.pinned = true
		return
	}
	if a.id != gid {
		errors.Report(&errors.PulseError{
			Op:   "mutation.dispatch",
			Kind: errors.KindFrame,
			Err:  fmt.Errorf("frame callback on goroutine %d, dispatch pinned to %d", gid, a.id),
		})
	}
}
