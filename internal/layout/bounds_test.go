package layout

import "testing"

func TestWindow_Fits(t *testing.T) {
	w := Window{Height: AtLeast(24), Width: AtLeast(80)}

	tests := []struct {
		name string
		term Rect
		want bool
	}{
		{"exact", Rect{Width: 80, Height: 24}, true},
		{"larger", Rect{Width: 150, Height: 33}, true},
		{"too narrow", Rect{Width: 79, Height: 24}, false},
		{"too short", Rect{Width: 80, Height: 23}, false},
		{"empty", Rect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Fits(tt.term); got != tt.want {
				t.Errorf("Fits(%v) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestWindow_NonMinimumBoundsAlwaysFit(t *testing.T) {
	for _, l := range []Length{Absolute(500), Relative(100), AtMost(10), Fill()} {
		w := Window{Height: l, Width: l}
		if !w.Fits(Rect{Width: 3, Height: 2}) {
			t.Errorf("%v rejected a small terminal", l)
		}
		if mw, mh := w.Minimum(); mw != 0 || mh != 0 {
			t.Errorf("%v Minimum() = %dx%d, want 0x0", l, mw, mh)
		}
	}
}

func TestWindow_Minimum(t *testing.T) {
	w := Window{Height: AtLeast(24), Width: AtLeast(80)}
	if mw, mh := w.Minimum(); mw != 80 || mh != 24 {
		t.Errorf("Minimum() = %dx%d, want 80x24", mw, mh)
	}
	if !w.Fits(Rect{Width: 80, Height: 24}) {
		t.Error("terminal of Minimum() size does not fit")
	}
}

func TestPopup_Rect(t *testing.T) {
	tests := []struct {
		name  string
		popup Popup
		term  Rect
		want  Rect
	}{
		{
			name:  "relative centered",
			popup: Popup{Height: Relative(80), Width: Relative(80)},
			term:  Rect{Width: 100, Height: 50},
			want:  Rect{X: 10, Y: 5, Width: 80, Height: 40},
		},
		{
			name:  "absolute centered with odd remainder",
			popup: Popup{Height: Absolute(5), Width: Absolute(11)},
			term:  Rect{Width: 20, Height: 10},
			want:  Rect{X: 4, Y: 2, Width: 11, Height: 5},
		},
		{
			name:  "offset terminal",
			popup: Popup{Height: Absolute(2), Width: Absolute(2)},
			term:  Rect{X: 10, Y: 20, Width: 6, Height: 6},
			want:  Rect{X: 12, Y: 22, Width: 2, Height: 2},
		},
		{
			name:  "at least clipped to terminal",
			popup: Popup{Height: AtLeast(100), Width: AtLeast(300)},
			term:  Rect{Width: 80, Height: 24},
			want:  Rect{X: 0, Y: 0, Width: 80, Height: 24},
		},
		{
			name:  "fill covers terminal",
			popup: Popup{},
			term:  Rect{Width: 30, Height: 9},
			want:  Rect{Width: 30, Height: 9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.popup.Rect(tt.term); got != tt.want {
				t.Errorf("Rect(%v) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}
