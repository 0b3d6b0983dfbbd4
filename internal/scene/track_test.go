package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"orientview/internal/mathutil"
)

func TestNewTrackValidation(t *testing.T) {
	_, err := NewTrack(ModeSlerp, nil)
	assert.Error(t, err)

	_, err = NewTrack("cubic", []Keyframe{{T: 0}})
	assert.Error(t, err)

	tr, err := NewTrack("", []Keyframe{{T: 0}})
	require.NoError(t, err)
	assert.Equal(t, ModeSlerp, tr.Mode())
}

func TestTrackSortsKeyframes(t *testing.T) {
	tr, err := NewTrack(ModeSlerp, []Keyframe{
		{T: 2, Yaw: 90},
		{T: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, tr.Duration())

	// t=0 must be the untouched start pose despite input order.
	assert.True(t, tr.Sample(0).IsIdentity())
}

func TestTrackSampleClamps(t *testing.T) {
	tr, err := NewTrack(ModeSlerp, []Keyframe{
		{T: 1, Yaw: 30},
		{T: 3, Yaw: 90},
	})
	require.NoError(t, err)

	start := tr.Sample(1)
	assert.Equal(t, start, tr.Sample(0))
	assert.Equal(t, start, tr.Sample(-5))

	end := tr.Sample(3)
	assert.Equal(t, end, tr.Sample(3.001))
	assert.Equal(t, end, tr.Sample(100))
}

func TestTrackSampleInterpolates(t *testing.T) {
	tr, err := NewTrack(ModeSlerp, []Keyframe{
		{T: 0},
		{T: 2, Yaw: 90},
	})
	require.NoError(t, err)

	mid := tr.Sample(1)
	_, yaw, _ := mid.EulerAngles()
	assert.InDelta(t, 45, yaw, 1e-9)

	quarter := tr.Sample(0.5)
	_, yaw, _ = quarter.EulerAngles()
	assert.InDelta(t, 22.5, yaw, 1e-9)
}

func TestTrackNlerpMode(t *testing.T) {
	tr, err := NewTrack(ModeNlerp, []Keyframe{
		{T: 0, Pitch: -40},
		{T: 1, Pitch: 40, Yaw: 120},
	})
	require.NoError(t, err)

	for _, at := range []float64{0.2, 0.5, 0.8} {
		q := tr.Sample(at)
		assert.True(t, scalar.EqualWithinAbs(q.Len(), 1, 1e-12))
	}
}

func TestTrackSingleKeyframe(t *testing.T) {
	tr, err := NewTrack(ModeSlerp, []Keyframe{{T: 0, Yaw: 75}})
	require.NoError(t, err)
	want := mathutil.QuatFromEuler(0, 75, 0)
	for _, at := range []float64{-1, 0, 0.5, 10} {
		assert.Equal(t, want, tr.Sample(at))
	}
}

func TestWithMode(t *testing.T) {
	tr, err := NewTrack(ModeSlerp, []Keyframe{{T: 0}, {T: 1, Yaw: 90}})
	require.NoError(t, err)

	nl, err := tr.WithMode(ModeNlerp)
	require.NoError(t, err)
	assert.Equal(t, ModeNlerp, nl.Mode())
	assert.Equal(t, tr.Duration(), nl.Duration())

	_, err = tr.WithMode("hermite")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.json")
	data := `{
		"mode": "nlerp",
		"keyframes": [
			{"t": 0, "pitch": 0, "yaw": 0, "roll": 0},
			{"t": 1.5, "pitch": 20, "yaw": 180, "roll": -10}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	tr, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeNlerp, tr.Mode())
	assert.Equal(t, 1.5, tr.Duration())

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestTumble(t *testing.T) {
	tr := Tumble(4)
	require.NotNil(t, tr)
	assert.Equal(t, 4.0, tr.Duration())
	assert.True(t, tr.Sample(0).IsIdentity())
}
