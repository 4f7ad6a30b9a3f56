// Package config loads optional YAML defaults for the CLI. Flags always
// win over file values; the file only moves the baseline.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable pointing at a config file.
const EnvVar = "NUMEX_CONFIG"

// Config mirrors the YAML file schema.
type Config struct {
	Level   string `yaml:"level"`
	Output  string `yaml:"output"`
	Threads int    `yaml:"threads"`
	Pretty  bool   `yaml:"pretty"`
}

// Default returns the built-in baseline.
func Default() Config {
	return Config{Level: "B", Output: "text"}
}

// Load reads path into the baseline config. An empty path falls back to
// $NUMEX_CONFIG; if that is also unset, the baseline is returned as-is.
// A missing explicit file is an error, a missing env file is not.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
