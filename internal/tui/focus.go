package tui

import "github.com/LISSConsulting/LISSTech.Trellis/internal/layout"

// FocusRing cycles keyboard focus over the gadgets of a layout in
// declaration order.
type FocusRing struct {
	ids []layout.Identifier
	pos int
}

// NewFocusRing creates a ring over ids, focused on the first one.
func NewFocusRing(ids []layout.Identifier) FocusRing {
	return FocusRing{ids: append([]layout.Identifier(nil), ids...)}
}

// Len returns the number of focusable gadgets.
func (f FocusRing) Len() int { return len(f.ids) }

// Current returns the focused gadget, or false when the ring is empty.
func (f FocusRing) Current() (layout.Identifier, bool) {
	if len(f.ids) == 0 {
		return layout.Identifier{}, false
	}
	return f.ids[f.pos], true
}

// Is reports whether id holds focus.
func (f FocusRing) Is(id layout.Identifier) bool {
	cur, ok := f.Current()
	return ok && cur == id
}

// Next moves focus forward, wrapping after the last gadget.
func (f FocusRing) Next() FocusRing {
	if len(f.ids) > 0 {
		f.pos = (f.pos + 1) % len(f.ids)
	}
	return f
}

// Prev moves focus backward, wrapping before the first gadget.
func (f FocusRing) Prev() FocusRing {
	if n := len(f.ids); n > 0 {
		f.pos = (f.pos + n - 1) % n
	}
	return f
}

// String returns the focused identifier, or "none".
func (f FocusRing) String() string {
	if cur, ok := f.Current(); ok {
		return cur.String()
	}
	return "none"
}
