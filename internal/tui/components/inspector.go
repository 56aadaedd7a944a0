package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Inspector is a tabbed, scrollable text panel. Each tab owns a page of
// plain-text lines shown through a bubbles/viewport.
type Inspector struct {
	tabs   TabBar
	pages  [][]string
	vp     viewport.Model
	width  int
	height int
}

// NewInspector creates an Inspector with one empty page per title. The
// height includes the tab row.
func NewInspector(titles []string, w, h int) Inspector {
	v := Inspector{
		tabs:  NewTabBar(titles),
		pages: make([][]string, len(titles)),
		vp:    viewport.New(max(w, 0), max(h-1, 0)),
	}
	return v.SetSize(w, h)
}

// SetPage replaces the lines of page i. The scroll offset is kept when i is
// the active page so resizes do not jump back to the top.
func (v Inspector) SetPage(i int, lines []string) Inspector {
	if i < 0 || i >= len(v.pages) {
		return v
	}
	page := make([]string, len(lines))
	copy(page, lines)
	pages := make([][]string, len(v.pages))
	copy(pages, v.pages)
	pages[i] = page
	v.pages = pages
	if i == v.tabs.Active() {
		v.vp.SetContent(strings.Join(page, "\n"))
	}
	return v
}

// NextTab activates the next page and scrolls it to the top.
func (v Inspector) NextTab() Inspector {
	v.tabs = v.tabs.Next()
	return v.showActive()
}

// PrevTab activates the previous page and scrolls it to the top.
func (v Inspector) PrevTab() Inspector {
	v.tabs = v.tabs.Prev()
	return v.showActive()
}

func (v Inspector) showActive() Inspector {
	if len(v.pages) > 0 {
		v.vp.SetContent(strings.Join(v.pages[v.tabs.Active()], "\n"))
	}
	v.vp.GotoTop()
	return v
}

// Tabs returns the tab bar.
func (v Inspector) Tabs() TabBar {
	return v.tabs
}

// SetSize resizes the inspector. One row is reserved for the tab bar.
func (v Inspector) SetSize(w, h int) Inspector {
	v.width = max(w, 0)
	v.height = max(h, 0)
	v.vp.Width = v.width
	v.vp.Height = max(v.height-1, 0)
	return v
}

// Update handles scroll keys and mouse wheel events.
func (v Inspector) Update(msg tea.Msg) (Inspector, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// ScrollUp moves the view up by n lines.
func (v Inspector) ScrollUp(n int) Inspector {
	v.vp.LineUp(n)
	return v
}

// ScrollDown moves the view down by n lines.
func (v Inspector) ScrollDown(n int) Inspector {
	v.vp.LineDown(n)
	return v
}

// Offset returns the index of the first visible line.
func (v Inspector) Offset() int {
	return v.vp.YOffset
}

// VisibleLines returns the lines of the active page currently in view,
// without padding.
func (v Inspector) VisibleLines() []string {
	if len(v.pages) == 0 {
		return nil
	}
	page := v.pages[v.tabs.Active()]
	start := min(v.vp.YOffset, len(page))
	end := min(start+v.vp.Height, len(page))
	return page[start:end]
}
