package cloud

import (
	"image/color"
	"math/rand"

	"pointcloud-renderer/internal/mathutil"
)

// Range is a half-open interval [Min, Max) for one coordinate axis.
type Range struct {
	Min float64
	Max float64
}

func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Generate creates n points uniformly distributed over the given axis ranges,
// each with a random opaque color.
func Generate(n int, rangeX, rangeY, rangeZ Range, rng *rand.Rand) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, Point{
			Position: mathutil.Vec3{
				rangeX.sample(rng),
				rangeY.sample(rng),
				rangeZ.sample(rng),
			},
			Color: color.NRGBA{
				R: uint8(rng.Intn(255)),
				G: uint8(rng.Intn(255)),
				B: uint8(rng.Intn(255)),
				A: 255,
			},
		})
	}
	return points
}
