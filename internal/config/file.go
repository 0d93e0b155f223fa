package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML overlay used by the CLI. Zero fields
// leave the corresponding Config value untouched.
type FileConfig struct {
	Workers        int   `yaml:"workers"`
	TopSections    int   `yaml:"top_sections"`
	TopExcerpts    int   `yaml:"top_excerpts"`
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// LoadFile reads a YAML config overlay.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}

// Apply overlays the file values onto cfg.
func (fc FileConfig) Apply(cfg *Config) {
	if fc.Workers > 0 {
		cfg.WorkerCount = fc.Workers
	}
	if fc.TopSections > 0 {
		cfg.TopSections = fc.TopSections
	}
	if fc.TopExcerpts > 0 {
		cfg.TopExcerpts = fc.TopExcerpts
	}
	if fc.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = fc.MaxUploadBytes
	}
}
