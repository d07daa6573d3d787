// Package target defines the capability surface a visual element must
// expose to the Pulse mutation scheduler, together with an in-memory
// implementation for headless hosts and tests.
//
// A Target is externally owned: the scheduler never creates or destroys
// one, it only mutates and observes it. The actual rendering backend behind
// a Target is out of scope for this module.
package target

// Target is an opaque handle to one visual element.
//
// Implementations are expected to be driven from a single goroutine (the
// frame loop); they are not required to be safe for concurrent mutation.
type Target interface {
	// AddClass applies a class. Adding a present class is a no-op.
	AddClass(name string)
	// RemoveClass removes a class. Removing an absent class is a no-op.
	RemoveClass(name string)
	// HasClass reports whether a class is presently applied.
	HasClass(name string) bool
	// ClassList returns the applied classes in application order.
	ClassList() []string

	// Attribute returns an attribute value and whether it is set.
	Attribute(key string) (string, bool)
	// SetAttribute assigns an attribute.
	SetAttribute(key, value string)
	// RemoveAttribute clears an attribute.
	RemoveAttribute(key string)

	// Property returns a direct property value and whether it is set.
	Property(key string) (any, bool)
	// SetProperty assigns a direct property.
	SetProperty(key string, value any)

	// Style returns a style value; absent styles read as "".
	Style(key string) string
	// SetStyle assigns a style. An empty value clears the style.
	SetStyle(key, value string)

	// Visible reports whether the element's visibility state is not hidden.
	Visible() bool

	// OnTransitionEnd registers a one-shot listener invoked when the
	// element's active transition or animation finishes.
	OnTransitionEnd(fn func())
}
