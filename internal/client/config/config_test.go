package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resetArgs(t *testing.T) {
	t.Helper()
	origArgs := os.Args
	os.Args = []string{"testbin"}
	t.Cleanup(func() { os.Args = origArgs })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:9193/api/v1", cfg.BaseURL)
	assert.Equal(t, "/auth", cfg.AuthPrefix)
	assert.Equal(t, "/users", cfg.UsersPrefix)
	assert.Equal(t, "/products", cfg.ProductsPrefix)
	assert.Equal(t, "/category", cfg.CategoryPrefix)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "storekeeper.db", cfg.StateDBPath)
}

func TestEndpointAssembly(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()
	cfg.BaseURL = "https://shop.example.com/api/v1"

	assert.Equal(t, "https://shop.example.com/api/v1/auth", cfg.AuthURL())
	assert.Equal(t, "https://shop.example.com/api/v1/users", cfg.UsersURL())
	assert.Equal(t, "https://shop.example.com/api/v1/products", cfg.ProductsURL())
	assert.Equal(t, "https://shop.example.com/api/v1/category", cfg.CategoryURL())
}

func TestParseEnv_OverridesOnlySetVariables(t *testing.T) {
	resetArgs(t)
	t.Setenv("STOREKEEPER_BASE_URL", "http://env-host/api/v1")
	t.Setenv("STOREKEEPER_REQUEST_TIMEOUT", "30s")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "http://env-host/api/v1", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	// untouched by env
	assert.Equal(t, "/auth", cfg.AuthPrefix)
	assert.Equal(t, "storekeeper.db", cfg.StateDBPath)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-u", "http://flag-host/api/v1", "-t", "5", "-d", "/tmp/state.db"}

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "http://flag-host/api/v1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/state.db", cfg.StateDBPath)
}
