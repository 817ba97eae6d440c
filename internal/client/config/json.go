package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avolkovs/storekeeper/internal/flagx"
	"github.com/avolkovs/storekeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	AuthPrefix     string         `json:"auth_prefix"`
	UsersPrefix    string         `json:"users_prefix"`
	ProductsPrefix string         `json:"products_prefix"`
	CategoryPrefix string         `json:"category_prefix"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StateDBPath    string         `json:"state_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file located via
// the -c/-config flags. Missing flag means no JSON is loaded. Read or
// unmarshal errors panic; LoadConfig runs before any user interaction, so a
// broken config file should stop the program immediately.
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

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.AuthPrefix != "" {
		cfg.AuthPrefix = jc.AuthPrefix
	}
	if jc.UsersPrefix != "" {
		cfg.UsersPrefix = jc.UsersPrefix
	}
	if jc.ProductsPrefix != "" {
		cfg.ProductsPrefix = jc.ProductsPrefix
	}
	if jc.CategoryPrefix != "" {
		cfg.CategoryPrefix = jc.CategoryPrefix
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
}
