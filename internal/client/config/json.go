package config

import (
	"encoding/json"
	"os"
	"time"

	"punchclock/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are given as strings like "15s".
type JsonConfig struct {
	APIBaseURL        string `json:"api_base_url"`
	UploadURL         string `json:"upload_url"`
	UploadPreset      string `json:"upload_preset"`
	CameraSnapshotURL string `json:"camera_snapshot_url"`
	DatabasePath      string `json:"database_path"`
	RequestTimeout    string `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named
// by -c or -config. Absent flag means no JSON stage. Only non-zero fields
// override.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.UploadURL != "" {
		cfg.UploadURL = jc.UploadURL
	}
	if jc.UploadPreset != "" {
		cfg.UploadPreset = jc.UploadPreset
	}
	if jc.CameraSnapshotURL != "" {
		cfg.CameraSnapshotURL = jc.CameraSnapshotURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != "" {
		if d, err := time.ParseDuration(jc.RequestTimeout); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
