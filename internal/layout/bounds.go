package layout

// Window holds the minimum terminal size the layout is designed for. Only
// AtLeast bounds can reject a terminal; every other shape resolves to at most
// the terminal extent.
type Window struct {
	Height Length `toml:"height" json:"height"`
	Width  Length `toml:"width" json:"width"`
}

// Fits reports whether term satisfies both bounds.
func (w Window) Fits(term Rect) bool {
	return w.Height.Resolve(term.Height, 0) <= term.Height &&
		w.Width.Resolve(term.Width, 0) <= term.Width
}

// Minimum returns the smallest terminal size that Fits accepts.
func (w Window) Minimum() (width, height int) {
	return w.Width.Resolve(0, 0), w.Height.Resolve(0, 0)
}

// Popup sizes an overlay centered on the terminal.
type Popup struct {
	Height Length `toml:"height" json:"height"`
	Width  Length `toml:"width" json:"width"`
}

// Rect returns the popup's rectangle inside term. The popup is clipped to
// the terminal when its bounds would exceed it.
func (p Popup) Rect(term Rect) Rect {
	w := min(p.Width.Resolve(term.Width, 0), term.Width)
	h := min(p.Height.Resolve(term.Height, 0), term.Height)
	return Rect{
		X:      term.X + (term.Width-w)/2,
		Y:      term.Y + (term.Height-h)/2,
		Width:  w,
		Height: h,
	}
}
