// Package config loads service configuration from an optional YAML file with
// environment-variable overrides. A missing file or .env is not an error; the
// defaults mirror the production deployment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the service settings. Analysis thresholds are deliberately not
// configurable here; they are calibrated constants owned by the analysis
// package.
type Config struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string `yaml:"listen_addr"`

	// UploadDir is the directory where original uploads are persisted.
	UploadDir string `yaml:"upload_dir"`

	// MaxImageDim bounds the longer image dimension before analysis.
	MaxImageDim int `yaml:"max_image_dim"`
}

// Default returns the production defaults.
func Default() Config {
	return Config{
		ListenAddr:  ":8000",
		UploadDir:   "uploads",
		MaxImageDim: 500,
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment variables. A .env file in the working
// directory is loaded first (ignored if absent).
//
// Recognized environment variables:
//
//	FITOMETRICS_ADDR        listen address
//	FITOMETRICS_UPLOAD_DIR  upload directory
//	FITOMETRICS_MAX_DIM     resize bound in pixels
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv("FITOMETRICS_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("FITOMETRICS_UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}
	if v := os.Getenv("FITOMETRICS_MAX_DIM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid FITOMETRICS_MAX_DIM %q", v)
		}
		cfg.MaxImageDim = n
	}

	return cfg, nil
}
