package mutation

import "github.com/go-pulse/pulse/pkg/target"

// mutationQueue accumulates pending changes for one target until the next
// flush. Class slots hold at most one pending value each; the maps coalesce
// by key with last-write-wins semantics.
type mutationQueue struct {
	addClass       string
	hasAddClass    bool
	removeClass    string
	hasRemoveClass bool

	attrs  map[string]string
	props  map[string]any
	styles map[string]string
}

func newMutationQueue() mutationQueue {
	return mutationQueue{
		attrs:  make(map[string]string),
		props:  make(map[string]any),
		styles: make(map[string]string),
	}
}

func (q *mutationQueue) setAddClass(name string) {
	q.addClass = name
	q.hasAddClass = true
}

func (q *mutationQueue) setRemoveClass(name string) {
	q.removeClass = name
	q.hasRemoveClass = true
}

func (q *mutationQueue) empty() bool {
	return !q.hasAddClass && !q.hasRemoveClass &&
		len(q.attrs) == 0 && len(q.props) == 0 && len(q.styles) == 0
}

// flush applies all pending mutations to t in fixed order: add-class,
// remove-class, attributes, properties, styles. Classes go first because
// class changes may affect derived style state, so later style application
// stays consistent with the new class set. The queue is reset afterwards.
func (q *mutationQueue) flush(t target.Target) {
	if q.hasAddClass {
		t.AddClass(q.addClass)
	}
	if q.hasRemoveClass {
		t.RemoveClass(q.removeClass)
	}
	for k, v := range q.attrs {
		t.SetAttribute(k, v)
	}
	for k, v := range q.props {
		t.SetProperty(k, v)
	}
	for k, v := range q.styles {
		t.SetStyle(k, v)
	}
	q.reset()
}

// reset returns the queue to its empty state.
func (q *mutationQueue) reset() {
	*q = newMutationQueue()
}
