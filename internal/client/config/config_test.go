package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	origArgs := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = origArgs })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, "https://attendenceupdate-7.onrender.com/api/employee", cfg.APIBaseURL)
	assert.Equal(t, "projectatte", cfg.UploadPreset)
	assert.Equal(t, "punchclock.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "http://localhost:9000/api", "-d", "/tmp/pc.db", "-t", "5")

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:9000/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/pc.db", cfg.DatabasePath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	withArgs(t)
	t.Setenv("PUNCHCLOCK_API_URL", "http://env.example/api")
	t.Setenv("PUNCHCLOCK_CAMERA_URL", "http://cam.example/shot.jpg")
	t.Setenv("PUNCHCLOCK_TIMEOUT", "12s")

	cfg := LoadConfig()

	assert.Equal(t, "http://env.example/api", cfg.APIBaseURL)
	assert.Equal(t, "http://cam.example/shot.jpg", cfg.CameraSnapshotURL)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonOverridesEnv_FlagsOverrideJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "http://json.example/api",
		"database_path": "/tmp/json.db",
		"request_timeout": "7s"
	}`), 0o600))

	withArgs(t, "-c", path, "-d", "/tmp/flag.db")
	t.Setenv("PUNCHCLOCK_API_URL", "http://env.example/api")

	cfg := LoadConfig()

	assert.Equal(t, "http://json.example/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/flag.db", cfg.DatabasePath)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonPartialOnlyOverridesGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"upload_preset": "other"}`), 0o600))

	withArgs(t, "-config", path)

	cfg := LoadConfig()

	assert.Equal(t, "other", cfg.UploadPreset)
	assert.Equal(t, "https://api.cloudinary.com/v1_1/dakytbufv/image/upload", cfg.UploadURL)
}
