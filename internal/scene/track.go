package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"orientview/internal/mathutil"
)

// Interpolation modes for a track.
const (
	ModeSlerp = "slerp"
	ModeNlerp = "nlerp"
)

// Keyframe is one timed orientation sample. T is in seconds, angles in
// degrees with the roll-Z, pitch-X, yaw-Y composition order.
type Keyframe struct {
	T     float64 `json:"t"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
	Roll  float64 `json:"roll"`
}

// Track is an orientation curve through a sequence of keyframes.
// Orientations are precomputed as unit quaternions at construction; a
// track never mutates after that, so it is safe to sample from multiple
// goroutines.
type Track struct {
	mode  string
	keys  []Keyframe
	quats []mathutil.Quat
}

// trackFile is the on-disk JSON layout.
type trackFile struct {
	Mode      string     `json:"mode"`
	Keyframes []Keyframe `json:"keyframes"`
}

// NewTrack builds a track from keyframes, sorted by time. mode selects
// slerp (default) or nlerp between keyframes. At least one keyframe is
// required.
func NewTrack(mode string, keys []Keyframe) (*Track, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("scene: track needs at least one keyframe")
	}
	switch mode {
	case "":
		mode = ModeSlerp
	case ModeSlerp, ModeNlerp:
	default:
		return nil, fmt.Errorf("scene: unknown interpolation mode %q", mode)
	}

	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })

	quats := make([]mathutil.Quat, len(sorted))
	for i, k := range sorted {
		quats[i] = mathutil.QuatFromEuler(k.Pitch, k.Yaw, k.Roll).Normalized()
	}

	return &Track{mode: mode, keys: sorted, quats: quats}, nil
}

// Load reads a track from a JSON file.
func Load(path string) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	var tf trackFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return NewTrack(tf.Mode, tf.Keyframes)
}

// Mode returns the interpolation mode.
func (t *Track) Mode() string { return t.mode }

// WithMode returns a copy of the track using a different interpolation
// mode. The keyframes are shared, not copied.
func (t *Track) WithMode(mode string) (*Track, error) {
	switch mode {
	case ModeSlerp, ModeNlerp:
	default:
		return nil, fmt.Errorf("scene: unknown interpolation mode %q", mode)
	}
	return &Track{mode: mode, keys: t.keys, quats: t.quats}, nil
}

// Duration returns the time of the last keyframe.
func (t *Track) Duration() float64 {
	return t.keys[len(t.keys)-1].T
}

// Sample returns the orientation at time at. Before the first keyframe
// and after the last the track is clamped; between keyframes the
// bracketing orientations are interpolated on the shortest arc.
func (t *Track) Sample(at float64) mathutil.Quat {
	if at <= t.keys[0].T {
		return t.quats[0]
	}
	last := len(t.keys) - 1
	if at >= t.keys[last].T {
		return t.quats[last]
	}

	// First keyframe strictly after at; sort.Search keeps this O(log n).
	hi := sort.Search(len(t.keys), func(i int) bool { return t.keys[i].T > at })
	lo := hi - 1

	span := t.keys[hi].T - t.keys[lo].T
	if span <= 0 {
		// Coincident keyframes: the later one wins.
		return t.quats[hi]
	}
	u := (at - t.keys[lo].T) / span

	if t.mode == ModeNlerp {
		return mathutil.Nlerp(t.quats[lo], t.quats[hi], u)
	}
	return mathutil.Slerp(t.quats[lo], t.quats[hi], u)
}

// Tumble returns a built-in demo track: a full turn of yaw with a pitch
// swing and a roll kick, over the given duration.
func Tumble(duration float64) *Track {
	tr, _ := NewTrack(ModeSlerp, []Keyframe{
		{T: 0},
		{T: duration * 0.25, Pitch: 35, Yaw: 90},
		{T: duration * 0.5, Pitch: 0, Yaw: 180, Roll: 45},
		{T: duration * 0.75, Pitch: -35, Yaw: 270},
		{T: duration, Yaw: 360},
	})
	return tr
}
