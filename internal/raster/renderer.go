package raster

import (
	"image"
	"image/color"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"pointcloud-renderer/internal/camera"
	"pointcloud-renderer/internal/cloud"
)

// Options controls a single render call.
type Options struct {
	// Background fills the image before any point is composited.
	Background color.NRGBA

	// DOFAperture and DOFSamples switch projection to the thin-lens Monte
	// Carlo path when both are positive.
	DOFAperture float64
	DOFSamples  int

	// SortByDepth composites projected points back-to-front instead of in
	// projection order. Equal depths keep their input order; the strict
	// depth test then drops the later one.
	SortByDepth bool

	// Workers bounds the projection worker pool. Defaults to NumCPU.
	Workers int

	// Seed for the per-worker DOF jitter sources. 0 seeds from the clock.
	Seed int64
}

type projected struct {
	hit camera.Hit
	col color.NRGBA
	ok  bool
}

// Render projects every point through the camera and composites the survivors
// into a fresh image of the camera's screen resolution. Projection fans out
// across a worker pool with no shared mutable state; compositing runs
// sequentially on the caller's goroutine.
//
// Without SortByDepth the composite processes points in input order: a point
// that loses the depth test against an earlier, farther point at the same
// pixel is dropped, so the output depends on point order. This mirrors the
// unsorted single-pass design; SortByDepth is the corrected variant.
//
// An empty point list returns an image filled with the background color.
func Render(cam *camera.Camera, points []cloud.Point, opts Options) *image.NRGBA {
	w := cam.Screen.Width
	h := cam.Screen.Height
	fb := NewFrameBuffer(w, h, opts.Background)

	results := project(cam, points, opts)

	order := make([]int, 0, len(results))
	for i := range results {
		if results[i].ok {
			order = append(order, i)
		}
	}
	if opts.SortByDepth {
		// Back-to-front; stable so equal depths keep input order.
		sort.SliceStable(order, func(a, b int) bool {
			return results[order[a]].hit.Depth > results[order[b]].hit.Depth
		})
	}

	for _, i := range order {
		hit := results[i].hit
		idx := hit.Y*w + hit.X
		if hit.Depth < fb.Depth[idx] {
			fb.Depth[idx] = hit.Depth
		} else {
			continue
		}
		blendPixel(fb, idx, results[i].col)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, fb.Color)
	return img
}

// project maps every point to its screen hit in parallel. Workers claim
// contiguous index spans and write into disjoint slots of the results slice,
// so no synchronization is needed beyond the pool itself.
func project(cam *camera.Camera, points []cloud.Point, opts Options) []projected {
	results := make([]projected, len(points))
	if len(points) == 0 {
		return results
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(points) {
		workers = len(points)
	}

	useDOF := opts.DOFAperture > 0 && opts.DOFSamples > 0
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	const spanSize = 4096
	type span struct{ lo, hi int }
	spans := make(chan span, (len(points)+spanSize-1)/spanSize)
	for lo := 0; lo < len(points); lo += spanSize {
		hi := lo + spanSize
		if hi > len(points) {
			hi = len(points)
		}
		spans <- span{lo, hi}
	}
	close(spans)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerSeed int64) {
			defer wg.Done()
			var rng *rand.Rand
			if useDOF {
				rng = rand.New(rand.NewSource(workerSeed))
			}
			for s := range spans {
				for i := s.lo; i < s.hi; i++ {
					var hit camera.Hit
					var ok bool
					if useDOF {
						hit, ok = cam.IntersectScreenDOF(points[i], opts.DOFAperture, opts.DOFSamples, rng)
					} else {
						hit, ok = cam.IntersectScreen(points[i])
					}
					if ok {
						results[i] = projected{hit: hit, col: points[i].Color, ok: true}
					}
				}
			}
		}(seed + int64(w))
	}
	wg.Wait()

	return results
}
