package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"orientview/internal/mesh"
	"orientview/internal/postprocess"
	"orientview/internal/raster"
	"orientview/internal/scene"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Size        int
	Supersample int
	Frames      int
	FPS         float64
	Workers     int
	Mesh        mesh.Mesh
	Texture     *image.NRGBA
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Time    float64
	File    string
	Success bool
	Error   string
}

// Run renders every frame of the track using a worker pool. Frame i is
// sampled at i/FPS seconds; the track clamps past its last keyframe.
func Run(cfg Config, track *scene.Track) []Result {
	if cfg.Workers < 1 {
		cfg.Workers = 1
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
				p := rendered.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
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
				results[idx] = renderFrame(cfg, track, idx)
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

	return results
}

func renderFrame(cfg Config, track *scene.Track, idx int) Result {
	t := float64(idx) / cfg.FPS
	res := Result{Frame: idx, Time: t, File: fmt.Sprintf("frame_%04d.webp", idx)}

	q := track.Sample(t)
	img := raster.Render(cfg.Mesh, q, cfg.Size, cfg.Supersample, cfg.Texture)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Size)
	}

	outPath := filepath.Join(cfg.OutputDir, res.File)
	f, err := os.Create(outPath)
	if err != nil {
		res.Error = fmt.Sprintf("create %s: %v", outPath, err)
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
