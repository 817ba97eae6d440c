// Package config loads the Storekeeper client configuration.
//
// Sources are applied in order, later ones overriding earlier ones:
//
//  1. Compiled-in defaults (LoadDefaults).
//  2. STOREKEEPER_* environment variables.
//  3. A JSON file given via -c/-config.
//  4. Command-line flags.
package config
