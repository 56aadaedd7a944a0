// Package components provides widgets for the trellis preview that do not
// depend on the canvas.
package components

// tabSeparator is placed between tab labels.
const tabSeparator = "  │  "

// TabSpan is one tab label positioned on a single line.
type TabSpan struct {
	Label  string
	Offset int // columns from the start of the line
	Active bool
}

// TabBar is a row of labelled tabs with one active tab.
type TabBar struct {
	tabs   []string
	active int
}

// NewTabBar creates a TabBar with the given tab titles. The first tab is active.
func NewTabBar(tabs []string) TabBar {
	return TabBar{tabs: tabs}
}

// Active returns the index of the currently active tab.
func (t TabBar) Active() int {
	return t.active
}

// Len returns the number of tabs.
func (t TabBar) Len() int {
	return len(t.tabs)
}

// Next returns a TabBar with the next tab active (wraps around).
func (t TabBar) Next() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + 1) % len(t.tabs)
	return t
}

// Prev returns a TabBar with the previous tab active (wraps around).
func (t TabBar) Prev() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + len(t.tabs) - 1) % len(t.tabs)
	return t
}

// Spans lays the labels out on one line separated by " │ ". Offsets count
// runes, which is enough for the ASCII tab titles used by the preview.
func (t TabBar) Spans() []TabSpan {
	spans := make([]TabSpan, 0, len(t.tabs))
	off := 0
	for i, label := range t.tabs {
		if i > 0 {
			off += len([]rune(tabSeparator))
		}
		spans = append(spans, TabSpan{Label: label, Offset: off, Active: i == t.active})
		off += len([]rune(label))
	}
	return spans
}

// Separator returns the text placed between two tab labels.
func (t TabBar) Separator() string {
	return tabSeparator
}
