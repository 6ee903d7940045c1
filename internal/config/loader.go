package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when CONFIG_PATH is unset. Both the API server and the
// history consumer share it.
const DefaultPath = "./complaints.yaml"

// Load builds the service configuration. Values come from env, then the YAML
// file at CONFIG_PATH (or DefaultPath), then env-default tags. A missing
// default file is fine; a missing explicit file is an error.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func read(cfg *Config) error {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	if path == "" {
		path, explicit = DefaultPath, false
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
