// Package config loads the punchclock client configuration. Values are
// layered: built-in defaults, then an optional .env file / environment,
// then an optional JSON file (-c/-config), then command-line flags.
// Later sources take precedence.
package config

import "time"

// Config holds runtime settings for the punchclock CLI.
type Config struct {
	// APIBaseURL is the root of the attendance backend's employee API.
	APIBaseURL string

	// UploadURL and UploadPreset identify the image host's unsigned
	// upload endpoint and profile.
	UploadURL    string
	UploadPreset string

	// CameraSnapshotURL is the webcam still endpoint; empty disables
	// photo capture (break events still work, check events will fail).
	CameraSnapshotURL string

	// DatabasePath is the local sqlite file holding the session slot.
	DatabasePath string

	// RequestTimeout bounds every outbound HTTP call.
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://attendenceupdate-7.onrender.com/api/employee"
	c.UploadURL = "https://api.cloudinary.com/v1_1/dakytbufv/image/upload"
	c.UploadPreset = "projectatte"
	c.CameraSnapshotURL = "http://127.0.0.1:8080/shot.jpg"
	c.DatabasePath = "punchclock.db"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
