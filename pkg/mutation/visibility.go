package mutation

import "github.com/go-pulse/pulse/pkg/aria"

// Conceal queues the mutations that hide the target: remove the shown
// class, add the hidden class, set aria-hidden=true. When the target
// currently carries the shown class and suppressHide is false, a one-shot
// transition hook is registered first, forcing the display property to
// "none" on the target once the active transition finishes. This models
// "animate out, then fully hide".
func (s *Scheduler) Conceal(suppressHide bool) *Scheduler {
	if t := s.target; t != nil && !suppressHide && t.HasClass(s.shownClass) {
		prop := s.displayProp
		t.OnTransitionEnd(func() {
			t.SetStyle(prop, "none")
		})
	}
	return s.RemoveClass(s.shownClass).
		AddClass(s.hiddenClass).
		SetAria("hidden", true)
}

// Reveal queues the mutations that show the target: remove the hidden
// class, add the shown class, set aria-hidden=false. Unless suppressShow
// is true, clearing of the display property is queued first so the target
// becomes renderable before the entrance animation classes land.
func (s *Scheduler) Reveal(suppressShow bool) *Scheduler {
	if !suppressShow {
		s.SetStyle(s.displayProp, "")
	}
	return s.RemoveClass(s.hiddenClass).
		AddClass(s.shownClass).
		SetAria("hidden", false)
}

// SetAria queues an accessibility attribute assignment. While global
// accessibility support is disabled this is a no-op: nothing is queued.
// The reserved key "toggled" fans out to aria-expanded and aria-selected,
// both set to value; any other key maps to one "aria-"-prefixed attribute.
func (s *Scheduler) SetAria(key string, value any) *Scheduler {
	if !aria.Enabled() {
		return s
	}
	if key == aria.KeyToggled {
		return s.SetAttribute(aria.AttrExpanded, value).
			SetAttribute(aria.AttrSelected, value)
	}
	return s.SetAttribute(aria.Attr(key), value)
}

// SetArias queues every entry via SetAria.
func (s *Scheduler) SetArias(values map[string]any) *Scheduler {
	for k, v := range values {
		s.SetAria(k, v)
	}
	return s
}
