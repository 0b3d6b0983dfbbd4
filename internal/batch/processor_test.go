package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orientview/internal/mesh"
	"orientview/internal/scene"
)

func testConfig(t *testing.T, frames int) Config {
	t.Helper()
	return Config{
		OutputDir:   t.TempDir(),
		Size:        32,
		Supersample: 1,
		Frames:      frames,
		FPS:         8,
		Workers:     2,
		Mesh:        mesh.Cube(1),
	}
}

func TestRun(t *testing.T) {
	cfg := testConfig(t, 4)
	track := scene.Tumble(0.5)

	results := Run(cfg, track)
	require.Len(t, results, 4)

	for _, r := range results {
		assert.True(t, r.Success, "frame %d: %s", r.Frame, r.Error)
		info, err := os.Stat(filepath.Join(cfg.OutputDir, r.File))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	assert.Equal(t, "frame_0000.webp", results[0].File)
	assert.Equal(t, 0.375, results[3].Time, "frame 3 at 3/8 s")
}

func TestRunZeroWorkers(t *testing.T) {
	// Workers is clamped to 1, the run must not deadlock.
	cfg := testConfig(t, 2)
	cfg.Workers = 0

	results := Run(cfg, scene.Tumble(0.25))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Success, "frame %d: %s", r.Frame, r.Error)
	}
}

func TestRunReportsFailures(t *testing.T) {
	cfg := testConfig(t, 2)
	// Break the output directory so file creation fails.
	cfg.OutputDir = filepath.Join(cfg.OutputDir, "does", "not", "exist")

	results := Run(cfg, scene.Tumble(1))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.NotEmpty(t, r.Error)
	}
}

func TestWriteManifest(t *testing.T) {
	cfg := testConfig(t, 3)
	results := []Result{
		{Frame: 0, Time: 0, File: "frame_0000.webp", Success: true},
		{Frame: 1, Time: 0.125, File: "frame_0001.webp", Success: false, Error: "boom"},
		{Frame: 2, Time: 0.25, File: "frame_0002.webp", Success: true},
	}

	path := filepath.Join(cfg.OutputDir, "manifest.json")
	require.NoError(t, WriteManifest(path, cfg, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, cfg.FPS, m.FPS)
	assert.Equal(t, cfg.Size, m.Size)
	require.Len(t, m.Frames, 2, "failed frames stay out of the manifest")
	assert.Equal(t, 2, m.Frames[1].Frame)
}
