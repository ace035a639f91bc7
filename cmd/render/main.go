package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"pointcloud-renderer/internal/cloud"
	"pointcloud-renderer/internal/config"
	"pointcloud-renderer/internal/frames"
	"pointcloud-renderer/internal/mathutil"
	"pointcloud-renderer/internal/palette"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	cloudFile := flag.String("cloud", "", "ASCII XYZ point cloud file (default: generate random points)")
	paletteFile := flag.String("palette", "", "Image used to color generated points (TGA/JPEG/PNG)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	width := flag.Int("width", 0, "Output width in pixels (default: 800)")
	height := flag.Int("height", 0, "Output height in pixels (default: 450)")
	points := flag.Int("points", 0, "Number of generated points (default: 50000)")
	numFrames := flag.Int("frames", 0, "Number of turntable frames (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	seed := flag.Int64("seed", 0, "Seed for the generated cloud (default: clock)")
	rotX := flag.Float64("rot-x", 0, "Pre-rotate the cloud around X, degrees")
	rotY := flag.Float64("rot-y", 0, "Pre-rotate the cloud around Y, degrees")
	rotZ := flag.Float64("rot-z", 0, "Pre-rotate the cloud around Z, degrees")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		CloudFile:   *cloudFile,
		PaletteFile: *paletteFile,
		OutputDir:   *outputDir,
		Width:       *width,
		Height:      *height,
		Points:      *points,
		Frames:      *numFrames,
		Workers:     *workers,
	})

	// Load or generate the point cloud
	var pts []cloud.Point
	if cfg.CloudFile != "" {
		var err error
		pts, err = cloud.LoadXYZ(cfg.CloudFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading cloud: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cloud: %d points from %s\n", len(pts), cfg.CloudFile)
	} else {
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(s))
		r := cloud.Range{Min: cfg.RangeMin, Max: cfg.RangeMax}
		pts = cloud.Generate(cfg.NumPoints, r, r, r, rng)
		fmt.Printf("Cloud: %d random points in [%g, %g)\n", len(pts), cfg.RangeMin, cfg.RangeMax)
	}

	// Optional palette coloring
	if cfg.PaletteFile != "" {
		img, err := palette.Load(cfg.PaletteFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading palette: %v\n", err)
			os.Exit(1)
		}
		palette.Colorize(pts, img)
		fmt.Printf("Palette: %s\n", cfg.PaletteFile)
	}

	// Optional pre-rotation
	if *rotX != 0 || *rotY != 0 || *rotZ != 0 {
		m := mathutil.Mat3Mul(
			mathutil.Mat3Mul(
				mathutil.RotZ(mathutil.Deg2Rad(*rotZ)),
				mathutil.RotY(mathutil.Deg2Rad(*rotY)),
			),
			mathutil.RotX(mathutil.Deg2Rad(*rotX)),
		)
		cloud.Transform(pts, m)
	}

	fmt.Printf("Point Cloud Renderer → WebP\n")
	fmt.Printf("Frames: %d, Size: %dx%d, Workers: %d\n", cfg.Frames, cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results, err := frames.Run(frames.Config{
		OutputDir:      cfg.OutputDir,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Supersample:    cfg.Supersample,
		FOV:            cfg.FOV,
		ScreenDistance: cfg.ScreenDistance,
		Background:     cfg.BackgroundColor(),
		Frames:         cfg.Frames,
		Workers:        cfg.Workers,
		DOFAperture:    cfg.DOFAperture,
		DOFSamples:     cfg.DOFSamples,
		SortByDepth:    cfg.SortByDepth,
	}, pts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []frames.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d frames\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := frames.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
