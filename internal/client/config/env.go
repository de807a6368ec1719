package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// after loading a .env file when one exists in the working directory.
//
// Recognized variables:
//
//	PUNCHCLOCK_API_URL
//	PUNCHCLOCK_UPLOAD_URL
//	PUNCHCLOCK_UPLOAD_PRESET
//	PUNCHCLOCK_CAMERA_URL
//	PUNCHCLOCK_DB_PATH
//	PUNCHCLOCK_TIMEOUT (Go duration, e.g. "15s")
func parseEnv(cfg *Config) {
	// absent .env is not an error
	_ = godotenv.Load()

	setEnv(&cfg.APIBaseURL, "PUNCHCLOCK_API_URL")
	setEnv(&cfg.UploadURL, "PUNCHCLOCK_UPLOAD_URL")
	setEnv(&cfg.UploadPreset, "PUNCHCLOCK_UPLOAD_PRESET")
	setEnv(&cfg.CameraSnapshotURL, "PUNCHCLOCK_CAMERA_URL")
	setEnv(&cfg.DatabasePath, "PUNCHCLOCK_DB_PATH")

	if val := os.Getenv("PUNCHCLOCK_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.RequestTimeout = d
		}
	}
}

func setEnv(dst *string, key string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}
