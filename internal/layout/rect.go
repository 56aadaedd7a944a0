package layout

import (
	"fmt"
	"sort"
)

// Rect is an axis-aligned rectangle in terminal cells. X and Y are the
// top-left corner.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns Width*Height.
func (r Rect) Area() int { return r.Width * r.Height }

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether r covers no cells.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n cells on every side. The result never has a negative
// size.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
	out.Width = max(out.Width, 0)
	out.Height = max(out.Height, 0)
	return out
}

func (r Rect) String() string {
	return fmt.Sprintf("{x:%d y:%d w:%d h:%d}", r.X, r.Y, r.Width, r.Height)
}

// Rects maps every computed node to its rectangle.
type Rects map[Identifier]Rect

// Identifiers returns the keys of rs sorted by name.
func (rs Rects) Identifiers() []Identifier {
	ids := make([]Identifier, 0, len(rs))
	for id := range rs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Name < ids[j].Name })
	return ids
}

// Gadgets returns only the gadget entries of rs.
func (rs Rects) Gadgets() Rects {
	out := make(Rects)
	for id, r := range rs {
		if id.IsGadget() {
			out[id] = r
		}
	}
	return out
}
