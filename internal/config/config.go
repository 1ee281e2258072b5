// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config supplies defaults for flags the user did not set on the command
// line. Zero values mean "not configured".
type Config struct {
	Threads         int    `json:"threads"`
	Type            string `json:"type"`
	MinORF          int    `json:"min_orf"`
	Output          string `json:"output"`
	LogLevel        string `json:"log_level"`
	Sort            bool   `json:"sort"`
	Pretty          bool   `json:"pretty"`
	NoMatchExitCode *int   `json:"no_match_exit_code"`
}

// Load reads a JSON config from path. An empty path returns an empty
// Config; a path that was given but cannot be read or parsed is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	var c Config
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &c, nil
}
