package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/repositories"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warnf("failed to load config, using defaults %v", err)
		}
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}

	localStore := repositories.NewLocalStore(db)
	creds := repositories.NewCredentialRepository(localStore, config.Session.CredentialKey, logger)
	settings := repositories.NewSettingsRepository(localStore)

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Logger:   logger,
		DB:       db,
		Creds:    creds,
		Settings: settings,
	})

	app := &cli.Command{
		Name:     "imdb",
		Usage:    "Browse the movie catalog and manage your wishlist",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
