package database

import (
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/database"
	"trivia-api/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// Migrator wraps golang-migrate with the embedded schema.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator builds a Migrator on an open *sql.DB. Closing the Migrator closes db.
func NewMigrator(db *sql.DB) (*Migrator, error) {
	source, err := iofs.New(database.Migrations, database.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	m.Log = migrateLogger{}
	return &Migrator{m: m}, nil
}

// Up applies every pending migration. No pending migrations is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	return nil
}

// Down reverts every applied migration.
func (mg *Migrator) Down() error {
	if err := mg.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not revert migrations: %w", err)
	}
	return nil
}

// Steps applies (n > 0) or reverts (n < 0) n migrations.
func (mg *Migrator) Steps(n int) error {
	if err := mg.m.Steps(n); err != nil {
		return fmt.Errorf("could not migrate %d steps: %w", n, err)
	}
	return nil
}

// Force sets the recorded version without running migrations, clearing the dirty flag.
func (mg *Migrator) Force(version int) error {
	return mg.m.Force(version)
}

// Version returns the current schema version; 0 when nothing was applied.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

// RunMigrations applies all pending migrations using a dedicated connection to dsn.
func RunMigrations(dsn string) error {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return fmt.Errorf("could not open database: %w", err)
	}

	mg, err := NewMigrator(db)
	if err != nil {
		db.Close()
		return err
	}
	defer mg.Close()

	if err := mg.Up(); err != nil {
		return err
	}
	version, _, err := mg.Version()
	if err != nil {
		return err
	}
	logger.Get().Info("Migrations completed successfully", zap.Uint("version", version))
	return nil
}

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...interface{}) {
	logger.Get().Sugar().Infof(format, v...)
}

func (migrateLogger) Verbose() bool {
	return false
}
