package raster

import "image/color"

// blendPixel composites src over the pixel at flat index i using standard
// non-premultiplied source-over blending.
func blendPixel(fb *FrameBuffer, i int, src color.NRGBA) {
	o := i * 4

	sa := float64(src.A) / 255
	if sa >= 1 {
		fb.Color[o] = src.R
		fb.Color[o+1] = src.G
		fb.Color[o+2] = src.B
		fb.Color[o+3] = 255
		return
	}

	da := float64(fb.Color[o+3]) / 255
	outA := sa + da*(1-sa)
	if outA <= 0 {
		fb.Color[o] = 0
		fb.Color[o+1] = 0
		fb.Color[o+2] = 0
		fb.Color[o+3] = 0
		return
	}

	blendChannel := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / outA
		return clamp255(v)
	}

	fb.Color[o] = blendChannel(src.R, fb.Color[o])
	fb.Color[o+1] = blendChannel(src.G, fb.Color[o+1])
	fb.Color[o+2] = blendChannel(src.B, fb.Color[o+2])
	fb.Color[o+3] = clamp255(outA * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
