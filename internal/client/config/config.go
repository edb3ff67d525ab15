package config

import "time"

// Config holds runtime settings for the client.
type Config struct {
	IdentityBaseURL string
	LegacyBaseURL   string
	StorePath       string
	RequestTimeout  time.Duration
	LogFormat       string
	LogLevel        string
}

// LoadDefaults populates c with settings that match a local development stack.
func (c *Config) LoadDefaults() {
	c.IdentityBaseURL = "http://localhost:3000"
	c.LegacyBaseURL = "http://localhost:8080/api"
	c.StorePath = "session.db"
	c.RequestTimeout = 10 * time.Second
	c.LogFormat = "text"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the environment, an optional JSON
// file and the flags found in args (usually os.Args[1:]). Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
