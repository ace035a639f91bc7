package camera

import (
	"fmt"
	"math"
	"math/rand"

	"pointcloud-renderer/internal/cloud"
	"pointcloud-renderer/internal/mathutil"
)

// Hit is the result of projecting a point onto the screen: the distance from
// the camera along the ray and the pixel it lands on.
type Hit struct {
	Depth float64
	X     int
	Y     int
}

// Camera combines a reference frame with lens parameters and a screen.
// Screen dimensions are derived from the FOV in exactly one place (SetFOV)
// so they can never go stale against it.
type Camera struct {
	Frame ReferenceFrame

	fov    float64 // horizontal field of view, degrees
	fovRad float64

	AspectRatio    float64
	ScreenDistance float64
	ScreenWidth    float64
	ScreenHeight   float64

	Screen Screen
}

// New validates the lens parameters and returns a camera. The aspect ratio is
// taken from the pixel resolution.
func New(frame ReferenceFrame, fov, screenDistance float64, width, height int) (*Camera, error) {
	if fov <= 0 || fov >= 180 {
		return nil, fmt.Errorf("camera: fov %g out of range (0, 180)", fov)
	}
	if screenDistance <= 0 {
		return nil, fmt.Errorf("camera: screen distance %g must be positive", screenDistance)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("camera: resolution %dx%d must be positive", width, height)
	}

	c := &Camera{
		Frame:          frame,
		AspectRatio:    float64(width) / float64(height),
		ScreenDistance: screenDistance,
		Screen:         Screen{Width: width, Height: height},
	}
	c.SetFOV(fov)
	return c, nil
}

// SetFOV updates the field of view (degrees) and rederives the physical
// screen dimensions from it and the screen distance.
func (c *Camera) SetFOV(fov float64) {
	c.fov = fov
	c.fovRad = mathutil.Deg2Rad(fov)
	c.ScreenWidth = 2 * math.Tan(c.fovRad/2) * c.ScreenDistance
	c.ScreenHeight = c.ScreenWidth / c.AspectRatio
}

// FOV returns the horizontal field of view in degrees.
func (c *Camera) FOV() float64 {
	return c.fov
}

// FitPoints repositions the camera backward along the world Z axis from the
// bounding-box center of the point list, far enough that the box's horizontal
// and vertical extents both fit in the field of view, then aims at the center.
// Box corners are guaranteed to project inside the frame. No-op for an empty
// list.
func (c *Camera) FitPoints(points []cloud.Point) {
	if len(points) == 0 {
		return
	}

	min, max := cloud.BoundingBox(points)
	width := max[0] - min[0]
	height := max[1] - min[1]
	depth := max[2] - min[2]
	center := min.Add(mathutil.Vec3{width / 2, height / 2, depth / 2})

	angleX := c.fovRad / 2
	distanceX := width / math.Tan(angleX)
	angleY := angleX / c.AspectRatio
	distanceY := height / math.Tan(angleY)
	distance := math.Max(distanceX, distanceY)

	c.Frame.Position = center.Sub(mathutil.Vec3{0, 0, 1}.Scale(distance))
	c.Frame.LookAt(center)
}

// IntersectScreen casts a ray from the camera through the point and returns
// the pixel where it crosses the screen plane. ok is false when the point is
// behind or exactly beside the camera (alignment ≤ 0 guards the division) or
// when the intersection falls outside the frame.
func (c *Camera) IntersectScreen(p cloud.Point) (Hit, bool) {
	rayDirection := p.Position.Sub(c.Frame.Position).Normalize()
	lookDirection := c.Frame.LookDirection()

	alignment := rayDirection.Dot(lookDirection)
	if alignment <= 0 {
		return Hit{}, false
	}

	// Distance along the ray to the screen plane.
	distance := c.ScreenDistance / alignment
	intersection := c.Frame.Position.Add(rayDirection.Scale(distance))

	// Screen-local coordinates relative to the screen center.
	screenOrigin := c.Frame.Position.Add(lookDirection.Scale(c.ScreenDistance))
	relative := intersection.Sub(screenOrigin)

	nx := relative.Dot(c.Frame.Right) * 2 / c.ScreenWidth
	ny := relative.Dot(c.Frame.Up) * 2 / c.ScreenHeight

	x, y, ok := c.Screen.ToPixelCoords(nx, ny)
	if !ok {
		return Hit{}, false
	}
	return Hit{Depth: distance, X: x, Y: y}, true
}

// IntersectScreenDOF is a thin-lens Monte Carlo variant of IntersectScreen.
// For each sample the camera origin is jittered within a square of half-width
// aperture along the right/up axes; valid samples are averaged into a rounded
// pixel and mean depth. ok is false when no sample lands in the frame.
// With aperture 0 every sample reduces to the plain projection.
func (c *Camera) IntersectScreenDOF(p cloud.Point, aperture float64, samples int, rng *rand.Rand) (Hit, bool) {
	lookDirection := c.Frame.LookDirection()

	var sumX, sumY, sumDepth float64
	valid := 0

	for i := 0; i < samples; i++ {
		jitterX := (rng.Float64()*2 - 1) * aperture
		jitterY := (rng.Float64()*2 - 1) * aperture

		origin := c.Frame.Position.
			Add(c.Frame.Right.Scale(jitterX)).
			Add(c.Frame.Up.Scale(jitterY))

		rayDirection := p.Position.Sub(origin).Normalize()
		alignment := rayDirection.Dot(lookDirection)
		if alignment <= 0 {
			continue
		}

		distance := c.ScreenDistance / alignment
		intersection := origin.Add(rayDirection.Scale(distance))

		screenOrigin := origin.Add(lookDirection.Scale(c.ScreenDistance))
		relative := intersection.Sub(screenOrigin)

		nx := relative.Dot(c.Frame.Right) / (c.ScreenWidth / 2)
		ny := relative.Dot(c.Frame.Up) / (c.ScreenHeight / 2)

		x, y, ok := c.Screen.ToPixelCoords(nx, ny)
		if !ok {
			continue
		}

		sumX += float64(x)
		sumY += float64(y)
		sumDepth += distance
		valid++
	}

	if valid == 0 {
		return Hit{}, false
	}
	n := float64(valid)
	return Hit{
		Depth: sumDepth / n,
		X:     int(math.Round(sumX / n)),
		Y:     int(math.Round(sumY / n)),
	}, true
}
