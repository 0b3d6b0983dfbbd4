package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest describes a rendered frame sequence so a player or packer can
// consume it without re-deriving timing.
type Manifest struct {
	FPS    float64         `json:"fps"`
	Size   int             `json:"size"`
	Frames []ManifestFrame `json:"frames"`
}

// ManifestFrame is one entry of the output manifest.
type ManifestFrame struct {
	Frame int     `json:"frame"`
	Time  float64 `json:"time"`
	File  string  `json:"file"`
}

// WriteManifest writes manifest.json for the successful frames of a run.
func WriteManifest(path string, cfg Config, results []Result) error {
	m := Manifest{FPS: cfg.FPS, Size: cfg.Size}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Frames = append(m.Frames, ManifestFrame{Frame: r.Frame, Time: r.Time, File: r.File})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}
