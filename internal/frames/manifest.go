package frames

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry describes one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame int     `json:"frame"`
	Angle float64 `json:"angle_deg"`
	Image string  `json:"image"`
}

// WriteManifest writes manifest.json next to the rendered frames. Failed
// frames are left out.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame: r.Frame,
			Angle: r.Angle,
			Image: filepath.Base(r.Path),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
