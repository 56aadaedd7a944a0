package tui

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.Trellis/internal/layout"
)

var ringIDs = []layout.Identifier{
	layout.Gadget("TopArea->searchbar"),
	layout.Gadget("MidArea->shortcuts"),
	layout.Gadget("BottomArea->gauge"),
}

func TestFocusRing_Next(t *testing.T) {
	f := NewFocusRing(ringIDs)
	want := []string{"MidArea->shortcuts", "BottomArea->gauge", "TopArea->searchbar"}
	for i, w := range want {
		f = f.Next()
		if got := f.String(); got != w {
			t.Errorf("step %d: got %q, want %q", i, got, w)
		}
	}
}

func TestFocusRing_Prev(t *testing.T) {
	f := NewFocusRing(ringIDs)
	want := []string{"BottomArea->gauge", "MidArea->shortcuts", "TopArea->searchbar"}
	for i, w := range want {
		f = f.Prev()
		if got := f.String(); got != w {
			t.Errorf("step %d: got %q, want %q", i, got, w)
		}
	}
}

func TestFocusRing_CycleFullRound(t *testing.T) {
	start := NewFocusRing(ringIDs)
	f := start
	for i := 0; i < start.Len(); i++ {
		f = f.Next()
	}
	if f.String() != start.String() {
		t.Errorf("after %d Next() calls got %q, want %q", start.Len(), f, start)
	}
	if f.Next().Prev().String() != f.String() {
		t.Error("Next then Prev should return to the same gadget")
	}
}

func TestFocusRing_Empty(t *testing.T) {
	f := NewFocusRing(nil).Next().Prev()
	if _, ok := f.Current(); ok {
		t.Error("empty ring reports a current gadget")
	}
	if f.String() != "none" {
		t.Errorf("String() = %q, want none", f.String())
	}
	if f.Is(layout.Gadget("gauge")) {
		t.Error("empty ring claims focus")
	}
}

func TestFocusRing_DoesNotAliasInput(t *testing.T) {
	ids := append([]layout.Identifier(nil), ringIDs...)
	f := NewFocusRing(ids)
	ids[0] = layout.Gadget("gauge")
	if !f.Is(layout.Gadget("TopArea->searchbar")) {
		t.Errorf("ring shares backing array with input: %s", f)
	}
}
