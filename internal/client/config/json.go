package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/benhsieh-dev/Youtube/internal/flagx"
	"github.com/benhsieh-dev/Youtube/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Empty fields leave the
// current value alone.
type JsonConfig struct {
	IdentityURL    string          `json:"identity_url"`
	LegacyURL      string          `json:"legacy_url"`
	StorePath      string          `json:"store_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogFormat      string          `json:"log_format"`
	LogLevel       string          `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config in args, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&cfg.IdentityBaseURL, jc.IdentityURL)
	setIf(&cfg.LegacyBaseURL, jc.LegacyURL)
	setIf(&cfg.StorePath, jc.StorePath)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout != nil {
		if jc.RequestTimeout.Duration <= 0 {
			return fmt.Errorf("parse config %s: request_timeout must be positive, got %s", path, jc.RequestTimeout.Duration)
		}
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
