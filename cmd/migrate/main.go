package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/coopconnect/backend/internal/config"
	"github.com/coopconnect/backend/internal/db"
	"github.com/coopconnect/backend/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	"go.uber.org/zap"
)

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cfg := config.MustLoad()
	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	m, err := db.NewMigrator(cfg.Database)
	if err != nil {
		fatal("migrator init failed", err)
	}
	defer m.Close()

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			fatal("up failed", err)
		}
		logger.Info("migrations: up completed")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				fatal("down: invalid steps argument", fmt.Errorf("%q", args[1]))
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			fatal("down failed", err)
		}
		logger.Info("migrations: down completed", zap.Int("steps", steps))

	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			fatal("version failed", err)
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	case "force":
		if len(args) < 2 {
			fatal("force: version argument required", nil)
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("force: invalid version", err)
		}
		if err := m.Force(v); err != nil {
			fatal("force failed", err)
		}
		logger.Info("migrations: forced", zap.Int("version", v))

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Rollback N migrations (default: 1)
  version      Print current migration version
  force <V>    Force set migration version (clears dirty state)

Connection settings are read from the DB_* environment variables.`)
}

func fatal(msg string, err error) {
	if err != nil {
		logger.Error(msg, zap.Error(err))
	} else {
		logger.Error(msg)
	}
	logger.Sync()
	os.Exit(1)
}
