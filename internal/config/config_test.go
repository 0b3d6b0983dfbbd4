package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, "frames", cfg.OutputDir)
	assert.Equal(t, 256, cfg.Size)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, 64, cfg.Frames)
	assert.Equal(t, 24.0, cfg.FPS)
	assert.Equal(t, "slerp", cfg.Mode)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg := Config{Size: 128, Mode: "nlerp", OutputDir: "out"}
	cfg.Resolve(Flags{Size: 512, Workers: 3})

	assert.Equal(t, 512, cfg.Size, "flag beats file")
	assert.Equal(t, "nlerp", cfg.Mode, "file value kept without flag")
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"output_dir": "renders",
		"size": 320,
		"fps": 30,
		"mode": "nlerp"
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "renders", cfg.OutputDir)
	assert.Equal(t, 320, cfg.Size)
	assert.Equal(t, 30.0, cfg.FPS)

	cfg.Resolve(Flags{})
	assert.Equal(t, 2, cfg.Supersample, "unset fields get defaults")

	_, err = Load(filepath.Join(dir, "nope.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}
