// Command migrate applies or reverts the database schema.
//
//	migrate up        apply every pending migration
//	migrate down      revert the last migration
//	migrate version   print the current schema version
package main

import (
	"fmt"
	"log/slog"
	"os"

	"kitchen/cmd"
	"kitchen/internal/adapters/out/postgres/migrations"
	"kitchen/internal/pkg/logging"

	"github.com/labstack/gommon/log"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up|down|version")
		os.Exit(2)
	}

	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logging.New(os.Stdout, config.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}

	if err = run(os.Args[1], config.DSN(), logger); err != nil {
		logger.Error("migration failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(command, dsn string, logger *slog.Logger) error {
	m, err := migrations.New(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	switch command {
	case "up":
		if err = m.Up(); err != nil {
			return err
		}
	case "down":
		if err = m.Down(); err != nil {
			return err
		}
	case "version":
		version, dirty, ok, err := m.Version()
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("no migration applied")
			return nil
		}
		logger.Info("schema version", "version", version, "dirty", dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	logger.Info("migration done", "command", command)
	return nil
}
