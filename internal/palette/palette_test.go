package palette

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"

	"pointcloud-renderer/internal/cloud"
	"pointcloud-renderer/internal/mathutil"
)

func TestColorize(t *testing.T) {
	// 2x2 palette: top row red|blue, bottom row green|white.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	points := []cloud.Point{
		{Position: mathutil.Vec3{0, 10, 0}},  // top-left of the box
		{Position: mathutil.Vec3{10, 10, 0}}, // top-right
		{Position: mathutil.Vec3{0, 0, 0}},   // bottom-left
		{Position: mathutil.Vec3{10, 0, 0}},  // bottom-right
	}
	Colorize(points, img)

	want := []color.NRGBA{
		{R: 255, A: 255},
		{B: 255, A: 255},
		{G: 255, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	for i := range points {
		if points[i].Color != want[i] {
			t.Errorf("point %d color = %v, want %v", i, points[i].Color, want[i])
		}
	}
}

func TestColorizeDegenerateAxis(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	// All points share one X: zero horizontal extent maps to column 0.
	points := []cloud.Point{
		{Position: mathutil.Vec3{5, 0, 0}},
		{Position: mathutil.Vec3{5, 9, 3}},
	}
	Colorize(points, img)

	for i := range points {
		if points[i].Color != (color.NRGBA{R: 255, A: 255}) {
			t.Errorf("point %d color = %v, want red", i, points[i].Color)
		}
	}
}

func TestColorizeEmpty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	Colorize(nil, img) // must not panic
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.png")
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(2, 1, color.NRGBA{R: 12, G: 34, B: 56, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := img.NRGBAAt(2, 1); got != (color.NRGBA{R: 12, G: 34, B: 56, A: 255}) {
		t.Errorf("pixel = %v", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadTGA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.tga")
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := tga.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.bmp")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown extension")
	}
}
