// Package palette colors point clouds from a reference image: each point
// samples the pixel its XY position maps to across the cloud's bounding box.
package palette

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"

	"pointcloud-renderer/internal/cloud"
)

// Load decodes a palette image (TGA, JPEG or PNG) into NRGBA. The decoder is
// selected by extension: TGA has no magic header, and its format registration
// would shadow image.Decode's sniffing for every other format.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("palette: open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tga":
		img, err = tga.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".png":
		img, err = png.Decode(f)
	default:
		return nil, fmt.Errorf("palette: unknown extension: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("palette: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// Colorize recolors points in place. A point's XY position, normalized over
// the cloud's bounding box, selects the image pixel whose color it takes
// (image Y grows downward, so the box's top edge maps to row 0). Degenerate
// axes (zero extent) map to column/row 0. Empty input is a no-op.
func Colorize(points []cloud.Point, img *image.NRGBA) {
	if len(points) == 0 {
		return
	}

	min, max := cloud.BoundingBox(points)
	spanX := max[0] - min[0]
	spanY := max[1] - min[1]

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	for i := range points {
		var u, v float64
		if spanX > 0 {
			u = (points[i].Position[0] - min[0]) / spanX
		}
		if spanY > 0 {
			v = (max[1] - points[i].Position[1]) / spanY
		}

		x := int(u * float64(w-1))
		y := int(v * float64(h-1))

		o := img.PixOffset(b.Min.X+x, b.Min.Y+y)
		points[i].Color = color.NRGBA{
			R: img.Pix[o],
			G: img.Pix[o+1],
			B: img.Pix[o+2],
			A: img.Pix[o+3],
		}
	}
}

// toNRGBA converts any decoded image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
