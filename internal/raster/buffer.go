package raster

import (
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Depth is initialized to +Inf so the first point at a pixel always wins the
// nearest-distance test.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // depth per pixel, len = W*H
}

// NewFrameBuffer allocates a buffer filled with the background color and a
// +Inf depth buffer.
func NewFrameBuffer(w, h int, background color.NRGBA) *FrameBuffer {
	n := w * h
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(1)
	}

	colors := make([]uint8, n*4)
	for i := 0; i < n; i++ {
		colors[i*4] = background.R
		colors[i*4+1] = background.G
		colors[i*4+2] = background.B
		colors[i*4+3] = background.A
	}

	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  colors,
		Depth:  depth,
	}
}
