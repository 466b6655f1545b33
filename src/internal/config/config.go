// Package config loads the optional YAML run configuration. Every field is
// optional; zero values fall back to the tool's built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML run config file.
type Config struct {
	// Endpoint overrides the collection endpoint base URL.
	Endpoint string `yaml:"endpoint"`
	// CachePath overrides the raw-listing cache file location.
	CachePath string `yaml:"cache_path"`
	// Output overrides the default output path when no -o flag is given.
	Output string `yaml:"output"`
	// AccessRights holds extra access code to URI mappings merged over the
	// built-in rights table.
	AccessRights map[string]string `yaml:"access_rights"`
}

// Load reads a YAML config from path. A missing file yields a zero Config.
func Load(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}
