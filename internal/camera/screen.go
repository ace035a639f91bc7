package camera

// Screen converts normalized device coordinates to integer pixel coordinates
// for a fixed resolution. Purely a coordinate-space converter; it owns no
// pixel storage.
type Screen struct {
	Width  int
	Height int
}

// ToPixelCoords maps NDC x,y in [-1,1] to a pixel column and row. Y is
// flipped: +1 is the top row. Conversion truncates rather than rounds, which
// biases results toward the lower/left edge of each pixel cell; the +1/-1
// extremes land exactly on the far edge and clamp to the last row/column.
// ok is false when either coordinate lies outside [-1,1].
func (s Screen) ToPixelCoords(nx, ny float64) (x, y int, ok bool) {
	if nx < -1 || nx > 1 || ny < -1 || ny > 1 {
		return 0, 0, false
	}

	x = int((nx + 1) * 0.5 * float64(s.Width))
	y = int((1 - ny) * 0.5 * float64(s.Height))

	if x >= s.Width {
		x = s.Width - 1
	}
	if y >= s.Height {
		y = s.Height - 1
	}
	return x, y, true
}
