// Package aria holds the global accessibility switch and the reserved
// accessibility attribute names used by the mutation scheduler.
//
// Accessibility starts disabled and is enabled once the host platform
// reports that assistive technology is active. While disabled, aria
// helpers throughout the toolkit are no-ops, so no accessibility traffic
// is generated for hosts that do not need it.
package aria

import "sync/atomic"

// Prefix is the reserved prefix for accessibility attributes.
const Prefix = "aria-"

// KeyToggled is the fan-out key: setting it writes both AttrExpanded and
// AttrSelected.
const KeyToggled = "toggled"

// Reserved accessibility attribute names.
const (
	AttrHidden   = Prefix + "hidden"
	AttrExpanded = Prefix + "expanded"
	AttrSelected = Prefix + "selected"
)

var enabled atomic.Bool

// Enabled reports whether accessibility support is active.
func Enabled() bool {
	return enabled.Load()
}

// Enable turns accessibility support on.
func Enable() {
	enabled.Store(true)
}

// Disable turns accessibility support off.
func Disable() {
	enabled.Store(false)
}

// SetEnabled sets the accessibility state and returns the previous value
// so callers can restore it during cleanup.
func SetEnabled(on bool) bool {
	return enabled.Swap(on)
}

// Attr returns the reserved attribute name for key, e.g. "hidden" to
// "aria-hidden".
func Attr(key string) string {
	return Prefix + key
}
