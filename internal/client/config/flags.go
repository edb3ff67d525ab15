package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/benhsieh-dev/Youtube/internal/flagx"
)

// parseFlags overlays cfg with -i, -l, -s, -t (seconds) and -log from args.
// Other flags in args are ignored.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-i", "-l", "-s", "-t", "-log"})

	fs := flag.NewFlagSet("vidtube", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.IdentityBaseURL, "i", cfg.IdentityBaseURL, "identity origin base URL")
	fs.StringVar(&cfg.LegacyBaseURL, "l", cfg.LegacyBaseURL, "legacy origin base URL")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "session database path")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "t" {
			return
		}
		if *timeout <= 0 {
			err = fmt.Errorf("parse flags: timeout must be positive, got %d", *timeout)
			return
		}
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	})
	return err
}
