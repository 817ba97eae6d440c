package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig is a DTO for environment overlay. Only variables that are
// actually set override the current values.
type envConfig struct {
	BaseURL        string        `envconfig:"BASE_URL"`
	AuthPrefix     string        `envconfig:"AUTH_PREFIX"`
	UsersPrefix    string        `envconfig:"USERS_PREFIX"`
	ProductsPrefix string        `envconfig:"PRODUCTS_PREFIX"`
	CategoryPrefix string        `envconfig:"CATEGORY_PREFIX"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
	StateDBPath    string        `envconfig:"STATE_DB_PATH"`
}

// parseEnv overlays Config with values from STOREKEEPER_* environment
// variables. Unset variables leave the corresponding field untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := envconfig.Process("storekeeper", &ec); err != nil {
		panic(err)
	}

	if ec.BaseURL != "" {
		cfg.BaseURL = ec.BaseURL
	}
	if ec.AuthPrefix != "" {
		cfg.AuthPrefix = ec.AuthPrefix
	}
	if ec.UsersPrefix != "" {
		cfg.UsersPrefix = ec.UsersPrefix
	}
	if ec.ProductsPrefix != "" {
		cfg.ProductsPrefix = ec.ProductsPrefix
	}
	if ec.CategoryPrefix != "" {
		cfg.CategoryPrefix = ec.CategoryPrefix
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.StateDBPath != "" {
		cfg.StateDBPath = ec.StateDBPath
	}
}
