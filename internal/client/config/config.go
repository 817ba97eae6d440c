package config

import "time"

// Config holds runtime settings for the Storekeeper client.
//
// The API endpoint layout mirrors the backend's URL scheme: a base URL plus
// per-area path prefixes, assembled once at load time. Expiry of the bearer
// token is enforced server-side only; the client stores no expiry metadata.
type Config struct {
	// BaseURL is the root of the backend REST API, without a trailing slash.
	BaseURL string

	// Path prefixes appended to BaseURL per API area.
	AuthPrefix     string
	UsersPrefix    string
	ProductsPrefix string
	CategoryPrefix string

	// RequestTimeout bounds every outbound HTTP call.
	RequestTimeout time.Duration

	// StateDBPath is the local SQLite file holding the persisted session.
	StateDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:9193/api/v1"
	c.AuthPrefix = "/auth"
	c.UsersPrefix = "/users"
	c.ProductsPrefix = "/products"
	c.CategoryPrefix = "/category"
	c.RequestTimeout = 15 * time.Second
	c.StateDBPath = "storekeeper.db"
}

// AuthURL returns the assembled auth endpoint root.
func (c *Config) AuthURL() string { return c.BaseURL + c.AuthPrefix }

// UsersURL returns the assembled users endpoint root.
func (c *Config) UsersURL() string { return c.BaseURL + c.UsersPrefix }

// ProductsURL returns the assembled products endpoint root.
func (c *Config) ProductsURL() string { return c.BaseURL + c.ProductsPrefix }

// CategoryURL returns the assembled category endpoint root.
func (c *Config) CategoryURL() string { return c.BaseURL + c.CategoryPrefix }

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given via -c/-config) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
