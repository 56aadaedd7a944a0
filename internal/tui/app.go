package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Trellis/internal/layout"
	"github.com/LISSConsulting/LISSTech.Trellis/internal/logger"
	"github.com/LISSConsulting/LISSTech.Trellis/internal/tui/components"
)

// Inspector pages, in tab order.
const (
	pageGadgets = iota
	pageNodes
	pageTree
)

var pageTitles = []string{"Gadgets", "Nodes", "Tree"}

// Options configures the preview.
type Options struct {
	Window      layout.Window
	Popup       layout.Popup
	AccentColor string
	Border      string
}

// Model is the root bubbletea model of the layout preview. It re-solves the
// whole layout on every resize and paints each gadget as a titled box.
type Model struct {
	tree   *layout.ItemTree
	window layout.Window
	popup  layout.Popup
	theme  Theme
	keys   keyMap
	help   help.Model
	log    *slog.Logger

	// Solved geometry for the current terminal size
	term     layout.Rect
	rects    layout.Rects
	tooSmall bool
	width    int
	height   int

	focus         FocusRing
	inspector     components.Inspector
	showInspector bool
	showHelp      bool
}

// New creates the preview Model for tree. Nothing is solved until the first
// tea.WindowSizeMsg arrives.
func New(tree *layout.ItemTree, opts Options) Model {
	return Model{
		tree:      tree,
		window:    opts.Window,
		popup:     opts.Popup,
		theme:     NewTheme(opts.AccentColor, opts.Border),
		keys:      defaultKeyMap(),
		help:      help.New(),
		log:       logger.ComponentLogger("preview"),
		focus:     NewFocusRing(tree.Gadgets()),
		inspector: components.NewInspector(pageTitles, 0, 0),
	}
}

// Init implements tea.Model. The preview has no background work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Rects returns the rectangles solved for the current terminal size.
func (m Model) Rects() layout.Rects {
	return m.rects
}

// TooSmall reports whether the terminal is below the window bounds.
func (m Model) TooSmall() bool {
	return m.tooSmall
}

// Focused returns the gadget holding keyboard focus.
func (m Model) Focused() (layout.Identifier, bool) {
	return m.focus.Current()
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.showInspector {
			var cmd tea.Cmd
			m.inspector, cmd = m.inspector.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.term = layout.Rect{Width: msg.Width, Height: msg.Height}
	m.rects = layout.Compute(m.tree, m.term)
	m.tooSmall = !m.window.Fits(m.term)
	m.help.Width = msg.Width

	inner := m.popup.Rect(m.term).Inset(1)
	m.inspector = m.inspector.SetSize(inner.Width, inner.Height)
	for i, page := range inspectorPages(m.tree, m.rects) {
		m.inspector = m.inspector.SetPage(i, page)
	}

	m.log.Debug("layout solved",
		"width", msg.Width,
		"height", msg.Height,
		"rects", len(m.rects),
		"too_small", m.tooSmall)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Inspect):
		m.showInspector = !m.showInspector
	case key.Matches(msg, m.keys.Next):
		m.focus = m.focus.Next()
		m.log.Debug("focus", "gadget", m.focus.String())
	case key.Matches(msg, m.keys.Prev):
		m.focus = m.focus.Prev()
		m.log.Debug("focus", "gadget", m.focus.String())
	case !m.showInspector:
		// the remaining keys only act on an open inspector
	case key.Matches(msg, m.keys.NextTab):
		m.inspector = m.inspector.NextTab()
	case key.Matches(msg, m.keys.PrevTab):
		m.inspector = m.inspector.PrevTab()
	case key.Matches(msg, m.keys.Up):
		m.inspector = m.inspector.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.inspector = m.inspector.ScrollDown(1)
	}
	return m, nil
}

// View renders the preview.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.tooSmall {
		minW, minH := m.window.Minimum()
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.", m.width, m.height, minW, minH)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			errorStyle.Render(msg))
	}

	out := m.canvas().Render()
	if m.showHelp {
		out = overlayBottom(out, footerStyle.Render(m.help.View(m.keys)))
	}
	return out
}

// canvas paints the gadgets and, when open, the inspector.
func (m Model) canvas() *Canvas {
	c := NewCanvas(m.width, m.height)
	m.paintGadgets(c)
	if m.showInspector {
		m.paintInspector(c)
	}
	return c
}

// paintGadgets draws every gadget as a box titled with its identifier and
// labelled with its size and solved rect.
func (m Model) paintGadgets(c *Canvas) {
	border := m.theme.Border()
	styles := map[bool][2]StyleID{
		true:  {c.AddStyle(m.theme.PanelBorderStyle(true)), c.AddStyle(m.theme.TitleStyle(true))},
		false: {c.AddStyle(m.theme.PanelBorderStyle(false)), c.AddStyle(m.theme.TitleStyle(false))},
	}
	info := c.AddStyle(footerStyle)

	for _, id := range m.tree.Gadgets() {
		r, ok := m.rects[id]
		if !ok || r.IsEmpty() {
			continue
		}
		st := styles[m.focus.Is(id)]
		c.DrawBox(r, border, st[0])
		c.DrawText(r.X+2, r.Y, r.Width-4, " "+id.String()+" ", st[1])

		if inner := r.Inset(1); !inner.IsEmpty() {
			i, _ := m.tree.Lookup(id)
			label := fmt.Sprintf("%s  %dx%d at %d,%d", m.tree.Node(i).Item.Size, r.Width, r.Height, r.X, r.Y)
			c.DrawText(inner.X+1, inner.Y, inner.Width-1, label, info)
		}
	}
}

// paintInspector draws the inspector popup centered over the gadgets.
func (m Model) paintInspector(c *Canvas) {
	pr := m.popup.Rect(m.term)
	if pr.IsEmpty() {
		return
	}
	frame := c.AddStyle(m.theme.PopupStyle())
	active := c.AddStyle(m.theme.TitleStyle(true))
	dim := c.AddStyle(footerStyle)
	text := c.AddStyle(labelStyle)

	c.Fill(pr, 0)
	c.DrawBox(pr, m.theme.Border(), frame)
	c.DrawText(pr.X+2, pr.Y, pr.Width-4, " inspector ", active)

	inner := pr.Inset(1)
	if inner.IsEmpty() {
		return
	}
	tabs := m.inspector.Tabs()
	for i, span := range tabs.Spans() {
		if i > 0 {
			sep := tabs.Separator()
			x := span.Offset - len([]rune(sep))
			c.DrawText(inner.X+x, inner.Y, inner.Width-x, sep, dim)
		}
		st := dim
		if span.Active {
			st = active
		}
		c.DrawText(inner.X+span.Offset, inner.Y, inner.Width-span.Offset, span.Label, st)
	}
	for row, line := range m.inspector.VisibleLines() {
		c.DrawText(inner.X, inner.Y+1+row, inner.Width, line, text)
	}
}

// overlayBottom replaces the last rows of screen with the rows of block.
func overlayBottom(screen, block string) string {
	rows := strings.Split(screen, "\n")
	over := strings.Split(block, "\n")
	if len(over) > len(rows) {
		over = over[len(over)-len(rows):]
	}
	copy(rows[len(rows)-len(over):], over)
	return strings.Join(rows, "\n")
}

// inspectorPages renders the inspector content for each tab.
func inspectorPages(tree *layout.ItemTree, rects layout.Rects) [][]string {
	pages := make([][]string, len(pageTitles))

	gadgets := tree.Gadgets()
	nameW := 0
	for _, id := range gadgets {
		nameW = max(nameW, len(id.String()))
	}
	for _, id := range gadgets {
		i, _ := tree.Lookup(id)
		pages[pageGadgets] = append(pages[pageGadgets], fmt.Sprintf("%-*s  %-5s %s",
			nameW, id, tree.Node(i).Item.Size, rects[id]))
	}

	for i := 0; i < tree.Len(); i++ {
		n := tree.Node(i)
		id := n.Item.Identifier
		name := strings.Repeat("  ", depth(tree, i)) + id.Base()
		split := ""
		if id.IsContainer() {
			split = n.Item.Split.String()
		}
		pages[pageNodes] = append(pages[pageNodes], fmt.Sprintf("%-22s %-5s %-10s %s",
			name, n.Item.Size, split, rects[id]))
	}

	pages[pageTree] = strings.Split(tree.String(), "\n")
	return pages
}

func depth(tree *layout.ItemTree, i int) int {
	d := 0
	for p := tree.Parent(i); p != layout.NoParent; p = tree.Parent(p) {
		d++
	}
	return d
}
