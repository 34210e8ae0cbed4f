package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

const usage = `usage: migrate <command>

commands:
  up         apply all pending migrations
  down       revert all migrations
  steps N    apply (N > 0) or revert (N < 0) N migrations
  version    print the current schema version
  force V    set the schema version without migrating, clearing the dirty flag`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := sql.Open(database.DriverName, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to open database", zap.Error(err))
	}

	migrator, err := database.NewMigrator(db)
	if err != nil {
		db.Close()
		l.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer migrator.Close()

	if err := run(migrator, os.Args[1:]); err != nil {
		l.Error("Migration command failed", zap.String("command", os.Args[1]), zap.Error(err))
		migrator.Close()
		os.Exit(1)
	}
}

func run(migrator *database.Migrator, args []string) error {
	switch args[0] {
	case "up":
		if err := migrator.Up(); err != nil {
			return err
		}
	case "down":
		if err := migrator.Down(); err != nil {
			return err
		}
	case "steps", "force":
		if len(args) < 2 {
			return fmt.Errorf("%s requires a numeric argument", args[0])
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid %s argument %q: %w", args[0], args[1], err)
		}
		if args[0] == "steps" {
			err = migrator.Steps(n)
		} else {
			err = migrator.Force(n)
		}
		if err != nil {
			return err
		}
	case "version":
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	logger.Get().Info("Schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
