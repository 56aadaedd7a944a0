package layout

import "testing"

func TestRect_Geometry(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 10, Height: 4}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"area", r.Area(), 40},
		{"right", r.Right(), 12},
		{"bottom", r.Bottom(), 7},
		{"empty", r.IsEmpty(), false},
		{"zero width empty", Rect{Height: 3}.IsEmpty(), true},
		{"contains origin", r.Contains(2, 3), true},
		{"contains last cell", r.Contains(11, 6), true},
		{"excludes right edge", r.Contains(12, 3), false},
		{"excludes bottom edge", r.Contains(2, 7), false},
		{"string", r.String(), "{x:2 y:3 w:10 h:4}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 10, Height: 4}
	if got, want := r.Inset(1), (Rect{X: 3, Y: 4, Width: 8, Height: 2}); got != want {
		t.Errorf("Inset(1) = %v, want %v", got, want)
	}
	if got := r.Inset(3); got.Width != 4 || got.Height != 0 {
		t.Errorf("Inset(3) = %v, want non-negative height", got)
	}
}
