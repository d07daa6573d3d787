package target

import "slices"

// MemoryTarget is a headless Target backed by plain maps. It is the
// implementation used by tests and by hosts that do not render.
//
// Visibility follows the display style: the element is visible unless its
// "display" style is "none".
type MemoryTarget struct {
	classes     []string
	attrs       map[string]string
	props       map[string]any
	styles      map[string]string
	transitions []func()
}

// NewMemoryTarget creates an empty in-memory element.
func NewMemoryTarget() *MemoryTarget {
	return &MemoryTarget{
		attrs:  make(map[string]string),
		props:  make(map[string]any),
		styles: make(map[string]string),
	}
}

// AddClass applies a class, keeping application order.
func (m *MemoryTarget) AddClass(name string) {
	if name == "" || m.HasClass(name) {
		return
	}
	m.classes = append(m.classes, name)
}

// RemoveClass removes a class.
func (m *MemoryTarget) RemoveClass(name string) {
	m.classes = slices.DeleteFunc(m.classes, func(c string) bool { return c == name })
}

// HasClass reports whether a class is applied.
func (m *MemoryTarget) HasClass(name string) bool {
	return slices.Contains(m.classes, name)
}

// ClassList returns a copy of the applied classes in application order.
func (m *MemoryTarget) ClassList() []string {
	return slices.Clone(m.classes)
}

// Attribute returns an attribute value and whether it is set.
func (m *MemoryTarget) Attribute(key string) (string, bool) {
	v, ok := m.attrs[key]
	return v, ok
}

// SetAttribute assigns an attribute.
func (m *MemoryTarget) SetAttribute(key, value string) {
	m.attrs[key] = value
}

// RemoveAttribute clears an attribute.
func (m *MemoryTarget) RemoveAttribute(key string) {
	delete(m.attrs, key)
}

// Property returns a direct property value and whether it is set.
func (m *MemoryTarget) Property(key string) (any, bool) {
	v, ok := m.props[key]
	return v, ok
}

// SetProperty assigns a direct property.
func (m *MemoryTarget) SetProperty(key string, value any) {
	m.props[key] = value
}

// Style returns a style value; absent styles read as "".
func (m *MemoryTarget) Style(key string) string {
	return m.styles[key]
}

// SetStyle assigns a style. An empty value clears the style.
func (m *MemoryTarget) SetStyle(key, value string) {
	if value == "" {
		delete(m.styles, key)
		return
	}
	m.styles[key] = value
}

// Visible reports whether the display style is not "none".
func (m *MemoryTarget) Visible() bool {
	return m.styles["display"] != "none"
}

// OnTransitionEnd registers a one-shot transition listener.
func (m *MemoryTarget) OnTransitionEnd(fn func()) {
	if fn == nil {
		return
	}
	m.transitions = append(m.transitions, fn)
}

// EndTransition simulates the host signalling that the active transition
// finished. All registered one-shot listeners fire once, in registration
// order, and are cleared before they run.
func (m *MemoryTarget) EndTransition() {
	listeners := m.transitions
	m.transitions = nil
	for _, fn := range listeners {
		fn()
	}
}

var _ Target = (*MemoryTarget)(nil)
