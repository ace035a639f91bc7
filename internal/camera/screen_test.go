package camera

import "testing"

func TestToPixelCoords(t *testing.T) {
	s := Screen{Width: 100, Height: 50}

	tests := []struct {
		name   string
		nx, ny float64
		wantX  int
		wantY  int
		wantOK bool
	}{
		{"center", 0, 0, 50, 25, true},
		{"bottom left corner", -1, -1, 0, 49, true},
		{"top right corner", 1, 1, 99, 0, true},
		{"top left corner", -1, 1, 0, 0, true},
		{"bottom right corner", 1, -1, 99, 49, true},
		{"left of frame", -1.01, 0, 0, 0, false},
		{"right of frame", 1.01, 0, 0, 0, false},
		{"above frame", 0, 1.5, 0, 0, false},
		{"below frame", 0, -2, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := s.ToPixelCoords(tc.nx, tc.ny)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && (x != tc.wantX || y != tc.wantY) {
				t.Errorf("pixel = (%d, %d), want (%d, %d)", x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

// The NDC-to-pixel conversion truncates rather than rounds, biasing toward
// the lower/left edge of each cell.
func TestToPixelCoordsTruncates(t *testing.T) {
	s := Screen{Width: 10, Height: 10}

	x, _, ok := s.ToPixelCoords(-1+0.199, 0) // column value 0.995
	if !ok || x != 0 {
		t.Errorf("x = %d (ok=%v), want 0 from truncation", x, ok)
	}
	x, _, ok = s.ToPixelCoords(-1+0.201, 0) // column value 1.005
	if !ok || x != 1 {
		t.Errorf("x = %d (ok=%v), want 1", x, ok)
	}
}
