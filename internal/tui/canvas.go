package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/LISSConsulting/LISSTech.Trellis/internal/layout"
)

// StyleID indexes the style palette of a Canvas. Zero is the unstyled style.
type StyleID int

// cell is one terminal column. A wide rune occupies its own cell plus a
// continuation cell with r == 0 that is skipped on render.
type cell struct {
	r     rune
	style StyleID
}

var blankCell = cell{r: ' '}

// Canvas is a fixed-size grid of styled cells. Drawing outside the grid is
// clipped silently, so rects that overflow the terminal paint what fits.
type Canvas struct {
	width, height int
	cells         []cell
	styles        []lipgloss.Style
}

// NewCanvas creates a blank canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([]cell, width*height)
	for i := range cells {
		cells[i] = blankCell
	}
	return &Canvas{
		width:  width,
		height: height,
		cells:  cells,
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
}

// AddStyle registers s in the palette and returns its ID.
func (c *Canvas) AddStyle(s lipgloss.Style) StyleID {
	c.styles = append(c.styles, s)
	return StyleID(len(c.styles) - 1)
}

// Width returns the canvas width.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height.
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Rune returns the rune at (x, y), or 0 when out of bounds or a continuation
// cell.
func (c *Canvas) Rune(x, y int) rune {
	if !c.inBounds(x, y) {
		return 0
	}
	return c.cells[y*c.width+x].r
}

// Set writes r at (x, y). Overwriting either half of a wide rune blanks the
// other half so every row stays exactly width columns.
func (c *Canvas) Set(x, y int, r rune, style StyleID) {
	if !c.inBounds(x, y) {
		return
	}
	i := y*c.width + x
	old := c.cells[i]
	if old.r == 0 && x > 0 {
		c.cells[i-1] = cell{r: ' ', style: c.cells[i-1].style}
	}
	if old.r != 0 && runewidth.RuneWidth(old.r) == 2 && x+1 < c.width && c.cells[i+1].r == 0 {
		c.cells[i+1] = cell{r: ' ', style: old.style}
	}
	c.cells[i] = cell{r: r, style: style}
}

// Fill paints every cell of r with a blank.
func (c *Canvas) Fill(r layout.Rect, style StyleID) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.Set(x, y, ' ', style)
		}
	}
}

// DrawText writes text starting at (x, y), truncated with an ellipsis to at
// most maxWidth columns. Returns the number of columns written.
func (c *Canvas) DrawText(x, y, maxWidth int, text string, style StyleID) int {
	if maxWidth <= 0 || y < 0 || y >= c.height {
		return 0
	}
	text = runewidth.Truncate(text, maxWidth, "…")

	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.Set(col, y, r, style)
		if w == 2 {
			c.Set(col+1, y, 0, style)
		}
		col += w
	}
	return col - x
}

// DrawBox outlines r with the given border. Rects narrower or shorter than two
// cells are filled with the border's vertical edge so they stay visible.
func (c *Canvas) DrawBox(r layout.Rect, b lipgloss.Border, style StyleID) {
	if r.IsEmpty() {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	if r.Width < 2 || r.Height < 2 {
		edge := firstRune(b.Left)
		for y := r.Y; y <= bottom; y++ {
			for x := r.X; x <= right; x++ {
				c.Set(x, y, edge, style)
			}
		}
		return
	}

	top, bot := firstRune(b.Top), firstRune(b.Bottom)
	for x := r.X + 1; x < right; x++ {
		c.Set(x, r.Y, top, style)
		c.Set(x, bottom, bot, style)
	}
	left, rgt := firstRune(b.Left), firstRune(b.Right)
	for y := r.Y + 1; y < bottom; y++ {
		c.Set(r.X, y, left, style)
		c.Set(right, y, rgt, style)
	}
	c.Set(r.X, r.Y, firstRune(b.TopLeft), style)
	c.Set(right, r.Y, firstRune(b.TopRight), style)
	c.Set(r.X, bottom, firstRune(b.BottomLeft), style)
	c.Set(right, bottom, firstRune(b.BottomRight), style)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// Render returns the canvas as newline-separated rows, with each run of
// equally styled cells rendered through its lipgloss style.
func (c *Canvas) Render() string {
	var sb strings.Builder
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		cur := StyleID(-1)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == 0 {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(c.styles[cur].Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if cl.r == 0 {
				continue
			}
			if cl.style != cur {
				flush()
				cur = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return sb.String()
}

// String returns the canvas runes without styling.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.width; x++ {
			if r := c.cells[y*c.width+x].r; r != 0 {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}
