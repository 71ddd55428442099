package db

import (
	"database/sql"
	"fmt"

	"github.com/coopconnect/backend/internal/config"
	"github.com/coopconnect/backend/migrations"
	"github.com/coopconnect/backend/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

// NewMigrator opens a dedicated connection with multi statements enabled and
// binds it to the embedded migration files.
func NewMigrator(cfg config.Database) (*migrate.Migrate, error) {
	dsn, err := DSN(cfg, true)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open migration connection")
	}

	driver, err := migratemysql.WithInstance(conn, &migratemysql.Config{})
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "init mysql migration driver")
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "init migration source")
	}

	m, err := migrate.NewWithInstance("iofs", src, "mysql", driver)
	if err != nil {
		return nil, errors.Wrap(err, "init migrator")
	}
	m.Log = migrateLogger{}

	return m, nil
}

// MigrateUp applies every pending migration. No pending migration is not an error.
func MigrateUp(cfg config.Database) error {
	m, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate up")
	}
	return nil
}

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...interface{}) {
	logger.Info(fmt.Sprintf("migrate: "+format, v...))
}

func (migrateLogger) Verbose() bool { return false }
