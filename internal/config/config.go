package config

import (
	"encoding/json"
	"os"

	pebblestore "github.com/c-h3xcode/td/internal/storage/pebble"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	DataDir         string `json:"dataDir"`
	Fsync           string `json:"fsync"` // always|interval|never
	FsyncIntervalMs int    `json:"fsyncIntervalMs"`
	LogLevel        string `json:"logLevel"`
	LogFormat       string `json:"logFormat"` // text|json
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		DataDir:         DefaultDataDir(),
		Fsync:           "always",
		FsyncIntervalMs: 5,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load reads configuration from a JSON file. An empty path returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SyncMode maps the configured fsync string to the store's policy. Unknown
// values fall back to SyncAlways; durability is the safe default.
func (c Config) SyncMode() pebblestore.SyncMode {
	switch c.Fsync {
	case "never":
		return pebblestore.SyncNever
	case "interval":
		return pebblestore.SyncInterval
	default:
		return pebblestore.SyncAlways
	}
}
