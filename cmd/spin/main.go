package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"time"

	"orientview/internal/batch"
	"orientview/internal/config"
	"orientview/internal/mesh"
	"orientview/internal/scene"
	"orientview/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	keysFile := flag.String("keys", "", "Path to keyframe JSON (default: built-in tumble)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	size := flag.Int("size", 0, "Frame edge in pixels (default: 256)")
	frames := flag.Int("frames", 0, "Frame count for the built-in track (default: 64)")
	fps := flag.Float64("fps", 0, "Frames per second (default: 24)")
	mode := flag.String("mode", "", "Interpolation between keyframes: slerp or nlerp")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	texFile := flag.String("texture", "", "Optional cube face texture (TGA/JPEG/PNG)")
	gizmo := flag.Bool("gizmo", false, "Render the RGB axis gizmo instead of the cube")

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
		OutputDir: *outputDir,
		Keys:      *keysFile,
		Texture:   *texFile,
		Size:      *size,
		Frames:    *frames,
		FPS:       *fps,
		Mode:      *mode,
		Workers:   *workers,
	})

	// Orientation track: keyframe file, or the built-in tumble spanning
	// the configured frame count.
	var track *scene.Track
	if cfg.Keys != "" {
		var err error
		track, err = scene.Load(cfg.Keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading keyframes: %v\n", err)
			os.Exit(1)
		}
		// Frame count covers the full track.
		cfg.Frames = int(math.Ceil(track.Duration()*cfg.FPS)) + 1
	} else {
		track = scene.Tumble(float64(cfg.Frames-1) / cfg.FPS)
	}
	if cfg.Mode != "" && cfg.Mode != track.Mode() {
		var err error
		track, err = track.WithMode(cfg.Mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	var tex *image.NRGBA
	if cfg.Texture != "" {
		var err error
		tex, err = texture.Load(cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
	}

	m := mesh.Cube(1)
	if *gizmo {
		m = mesh.AxisGizmo(1.5, 0.08)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	bcfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		FPS:         cfg.FPS,
		Workers:     cfg.Workers,
		Mesh:        m,
		Texture:     tex,
	}

	fmt.Printf("Rendering %d frames at %dpx, %g fps, %d workers\n",
		bcfg.Frames, bcfg.Size, bcfg.FPS, bcfg.Workers)
	start := time.Now()

	results := batch.Run(bcfg, track)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Fprintf(os.Stderr, "  frame %d: %s\n", r.Frame, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, bcfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done: %d/%d frames in %.1fs -> %s\n",
		len(results)-failed, len(results), time.Since(start).Seconds(), cfg.OutputDir)

	if failed > 0 {
		os.Exit(1)
	}
}
