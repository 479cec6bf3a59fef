// Package config loads the server configuration from a YAML file, falling
// back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the serve command needs.
type Config struct {
	ListenAddr  string `yaml:"listen_addr"`
	DBPath      string `yaml:"db_path"`
	StorageRoot string `yaml:"storage_root"`
	// BaseURL prefixes the public URLs handed out for stored objects.
	BaseURL string `yaml:"base_url"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		ListenAddr:  ":8080",
		DBPath:      "data/badger",
		StorageRoot: "data/objects",
		BaseURL:     "http://localhost:8080/media",
	}
}

// Load reads the YAML file at path, layering it over the defaults. An empty
// path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = Default().ListenAddr
	}
	if cfg.DBPath == "" {
		cfg.DBPath = Default().DBPath
	}
	if cfg.StorageRoot == "" {
		cfg.StorageRoot = Default().StorageRoot
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = Default().BaseURL
	}
	return cfg, nil
}
