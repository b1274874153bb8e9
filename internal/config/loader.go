package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads the server configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config

	if err := read("CONFIG_PATH", "./config.yaml", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadClient reads the dashboard client configuration. The YAML path comes
// from DASHBOARD_CONFIG (fallback "./dashboard.yaml") with the same rules as Load.
// An empty session_file resolves to ~/.batch-dashboard/session.yaml.
func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig

	if err := read("DASHBOARD_CONFIG", "./dashboard.yaml", &cfg); err != nil {
		return nil, err
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve home dir: %w", err)
		}
		cfg.SessionFile = filepath.Join(home, ".batch-dashboard", "session.yaml")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func read(pathEnv, fallback string, cfg any) error {
	path := os.Getenv(pathEnv)
	explicitPath := path != ""
	if !explicitPath {
		path = fallback
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}

	return nil
}
