package timelineRepository

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate brings the timeline schema of db up to the latest version. The
// migrate instance is not closed since that would close db.
func Migrate(db *sql.DB, backend Backend) error {
	var (
		driver database.Driver
		err    error
	)

	switch backend {
	case BackendSQLite:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case BackendPostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		return fmt.Errorf("migrations are not supported for backend %q", backend)
	}
	if err != nil {
		return fmt.Errorf("create %s migrate driver: %w", backend, err)
	}

	sub, err := fs.Sub(migrationsFS, "migrations/"+string(backend))
	if err != nil {
		return fmt.Errorf("access migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, string(backend), driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if _, dirty, err := m.Version(); err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	} else if dirty {
		return errors.New("timeline schema is in a dirty state")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
