package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"base_url": "http://json-host/api/v1",
		"request_timeout": "20s",
		"state_db_path": "json.db"
	}`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "http://json-host/api/v1", cfg.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "json.db", cfg.StateDBPath)
	// untouched fields keep defaults
	assert.Equal(t, "/users", cfg.UsersPrefix)
}

func TestParseJson_NoFlagLoadsNothing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "http://localhost:9193/api/v1", cfg.BaseURL)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(&cfg) })
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	path := writeConfigFile(t, `{"base_url": "http://json-host/api/v1"}`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-c", path, "-u", "http://flag-host/api/v1"}

	cfg := LoadConfig()
	assert.Equal(t, "http://flag-host/api/v1", cfg.BaseURL)
}
