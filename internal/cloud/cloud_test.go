package cloud

import (
	"image/color"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"pointcloud-renderer/internal/mathutil"
)

func TestBoundingBox(t *testing.T) {
	points := []Point{
		{Position: mathutil.Vec3{-1, 5, 2}},
		{Position: mathutil.Vec3{3, -4, 0}},
		{Position: mathutil.Vec3{0, 0, 7}},
	}

	min, max := BoundingBox(points)
	if min != (mathutil.Vec3{-1, -4, 0}) {
		t.Errorf("min = %v", min)
	}
	if max != (mathutil.Vec3{3, 5, 7}) {
		t.Errorf("max = %v", max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	min, max := BoundingBox(nil)
	if !math.IsInf(min[0], 1) || !math.IsInf(max[0], -1) {
		t.Errorf("empty bounds = %v, %v", min, max)
	}
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rx := Range{Min: -10, Max: 10}
	ry := Range{Min: 0, Max: 5}
	rz := Range{Min: 100, Max: 101}

	points := Generate(1000, rx, ry, rz, rng)
	if len(points) != 1000 {
		t.Fatalf("len = %d, want 1000", len(points))
	}

	for i, p := range points {
		if p.Position[0] < rx.Min || p.Position[0] >= rx.Max ||
			p.Position[1] < ry.Min || p.Position[1] >= ry.Max ||
			p.Position[2] < rz.Min || p.Position[2] >= rz.Max {
			t.Fatalf("point %d out of range: %v", i, p.Position)
		}
		if p.Color.A != 255 {
			t.Fatalf("point %d not opaque: %v", i, p.Color)
		}
	}
}

func TestTransform(t *testing.T) {
	points := []Point{
		{Position: mathutil.Vec3{1, 0, 0}, Color: color.NRGBA{R: 9}},
	}
	Transform(points, mathutil.RotZ(mathutil.Deg2Rad(90)))

	want := mathutil.Vec3{0, 1, 0}
	got := points[0].Position
	for i := 0; i < 3; i++ {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("Transform = %v, want %v", got, want)
		}
	}
	if points[0].Color.R != 9 {
		t.Errorf("Transform touched color: %v", points[0].Color)
	}
}

func TestLoadXYZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud.xyz")
	data := "# comment line\n" +
		"1.5 -2 3\n" +
		"\n" +
		"0 0 0 255 128 0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	points, err := LoadXYZ(path)
	if err != nil {
		t.Fatalf("LoadXYZ: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("len = %d, want 2", len(points))
	}

	if points[0].Position != (mathutil.Vec3{1.5, -2, 3}) {
		t.Errorf("position = %v", points[0].Position)
	}
	if points[0].Color != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("default color = %v", points[0].Color)
	}
	if points[1].Color != (color.NRGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("rgb color = %v", points[1].Color)
	}
}

func TestLoadXYZErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"wrong field count", "1 2\n"},
		{"bad float", "a b c\n"},
		{"color out of range", "0 0 0 300 0 0\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.xyz")
			if err := os.WriteFile(path, []byte(tc.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadXYZ(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := LoadXYZ(filepath.Join(t.TempDir(), "missing.xyz")); err == nil {
		t.Error("expected error for missing file")
	}
}
