package main

import (
	"context"
	"fmt"
	"os"

	"github.com/benhsieh-dev/Youtube/internal/buildinfo"
	"github.com/benhsieh-dev/Youtube/internal/client/cli"
	"github.com/benhsieh-dev/Youtube/internal/client/client"
	"github.com/benhsieh-dev/Youtube/internal/client/config"
	"github.com/benhsieh-dev/Youtube/internal/client/session"
	"github.com/benhsieh-dev/Youtube/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	db, err := client.InitDatabase(ctx, cfg.StorePath)
	if err != nil {
		return fmt.Errorf("session store %s: %w", cfg.StorePath, err)
	}
	defer db.Close()

	gw, err := client.NewGateway(client.GatewayConfig{
		IdentityBaseURL: cfg.IdentityBaseURL,
		LegacyBaseURL:   cfg.LegacyBaseURL,
		Timeout:         cfg.RequestTimeout,
	}, logger)
	if err != nil {
		return err
	}

	logger.Debug(ctx, "client configured",
		"identity_url", cfg.IdentityBaseURL,
		"legacy_url", cfg.LegacyBaseURL,
		"store", cfg.StorePath,
		"timeout", cfg.RequestTimeout,
	)

	sessions := session.NewManager(ctx, gw.Identity, session.NewSQLiteStore(db, logger), logger)
	cli.NewApp(sessions, gw, logger, os.Stdin, os.Stdout).Run(ctx)
	return nil
}
