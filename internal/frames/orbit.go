// Package frames renders turntable sequences: the camera is fitted to the
// cloud once, then orbited around the bounding-box center about the vertical
// axis, one output frame per stop.
package frames

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"pointcloud-renderer/internal/camera"
	"pointcloud-renderer/internal/cloud"
	"pointcloud-renderer/internal/mathutil"
	"pointcloud-renderer/internal/postprocess"
	"pointcloud-renderer/internal/raster"
)

// Config holds all shared resources for a sequence run.
type Config struct {
	OutputDir string

	Width       int
	Height      int
	Supersample int

	FOV            float64
	ScreenDistance float64
	Background     color.NRGBA

	Frames  int
	Workers int

	DOFAperture float64
	DOFSamples  int
	SortByDepth bool
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Angle   float64
	Path    string
	Success bool
	Error   string
}

// Run renders every frame of the sequence using a worker pool. Each worker
// owns its camera and buffers; the point list is shared read-only. The
// returned slice is indexed by frame number.
func Run(cfg Config, points []cloud.Point) ([]Result, error) {
	if cfg.Frames <= 0 {
		cfg.Frames = 1
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	renderW := cfg.Width * cfg.Supersample
	renderH := cfg.Height * cfg.Supersample

	// Fit once on a probe camera; every frame orbits the fitted position.
	probe, err := camera.New(camera.DefaultFrame(), cfg.FOV, cfg.ScreenDistance, renderW, renderH)
	if err != nil {
		return nil, fmt.Errorf("frames: %w", err)
	}
	probe.FitPoints(points)
	basePosition := probe.Frame.Position
	center := probe.Frame.Target

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("frames: create %s: %w", cfg.OutputDir, err)
	}

	total := cfg.Frames
	results := make([]Result, total)
	var rendered atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				r := rendered.Load()
				if r > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.2f frames/sec\n", r, total, float64(r)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, points, basePosition, center, idx, renderW, renderH)
				rendered.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results, nil
}

func renderFrame(cfg Config, points []cloud.Point, basePosition, center mathutil.Vec3, idx, renderW, renderH int) Result {
	angle := 360 * float64(idx) / float64(cfg.Frames)
	res := Result{Frame: idx, Angle: angle}

	cam, err := camera.New(camera.DefaultFrame(), cfg.FOV, cfg.ScreenDistance, renderW, renderH)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	rot := mathutil.RotY(mathutil.Deg2Rad(angle))
	cam.Frame.Position = rot.MulVec3(basePosition.Sub(center)).Add(center)
	cam.Frame.LookAt(center)

	img := raster.Render(cam, points, raster.Options{
		Background:  cfg.Background,
		DOFAperture: cfg.DOFAperture,
		DOFSamples:  cfg.DOFSamples,
		SortByDepth: cfg.SortByDepth,
	})

	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d.webp", idx))
	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Path = outPath
	res.Success = true
	return res
}
