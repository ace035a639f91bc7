package cloud

import (
	"image/color"
	"math"

	"pointcloud-renderer/internal/mathutil"
)

// Point is a single colored sample of a point cloud. Value type with no
// identity; the slice holding it owns its lifetime for the duration of a
// render call.
type Point struct {
	Position mathutil.Vec3
	Color    color.NRGBA
}

// BoundingBox returns the axis-aligned bounds of the point list.
// An empty list yields (+Inf, -Inf) bounds.
func BoundingBox(points []Point) (min, max mathutil.Vec3) {
	inf := math.Inf(1)
	min = mathutil.Vec3{inf, inf, inf}
	max = mathutil.Vec3{-inf, -inf, -inf}
	for _, p := range points {
		min = min.Min(p.Position)
		max = max.Max(p.Position)
	}
	return min, max
}

// Transform rotates every point position in place by the given matrix.
// Intended for load-time orientation fixes, not for use during a render.
func Transform(points []Point, m mathutil.Mat3) {
	for i := range points {
		points[i].Position = m.MulVec3(points[i].Position)
	}
}
