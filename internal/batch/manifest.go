package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame     int        `json:"frame"`
	Image     string     `json:"image"`
	Rotation  [3]float64 `json:"rotation"`
	Faces     int        `json:"faces"`
	Culled    int        `json:"culled"`
	Clipped   int        `json:"clipped"`
	Triangles int        `json:"triangles"`
}

// WriteManifest writes the successful frames to path as JSON.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame:     r.Frame,
			Image:     r.Image,
			Rotation:  r.Rotation,
			Faces:     r.Stats.Faces,
			Culled:    r.Stats.Culled,
			Clipped:   r.Stats.Clipped,
			Triangles: r.Stats.Triangles,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
