package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// loadDotEnv exports the variables in path unless they are already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// parseEnv overlays cfg with the VIDTUBE_* variables that are set.
func parseEnv(cfg *Config) error {
	strs := map[string]*string{
		"VIDTUBE_IDENTITY_URL": &cfg.IdentityBaseURL,
		"VIDTUBE_LEGACY_URL":   &cfg.LegacyBaseURL,
		"VIDTUBE_STORE":        &cfg.StorePath,
		"VIDTUBE_LOG_FORMAT":   &cfg.LogFormat,
		"VIDTUBE_LOG_LEVEL":    &cfg.LogLevel,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("VIDTUBE_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("VIDTUBE_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("VIDTUBE_TIMEOUT: must be positive, got %s", v)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
