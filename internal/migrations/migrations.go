package migrations

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"
)

//go:embed *.sql
var files embed.FS

// Up は未適用のマイグレーションを全部流す
func Up(dsn string) error {
	return run(dsn, func(m *migrate.Migrate) error { return m.Up() })
}

// Down は全部戻す
func Down(dsn string) error {
	return run(dsn, func(m *migrate.Migrate) error { return m.Down() })
}

func run(dsn string, step func(m *migrate.Migrate) error) error {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return pkgerrors.Wrap(err, "open DB")
	}
	defer sqlDB.Close()

	src, err := iofs.New(files, ".")
	if err != nil {
		return pkgerrors.Wrap(err, "open embedded migrations")
	}

	d, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return pkgerrors.Wrap(err, "create driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", d)
	if err != nil {
		return pkgerrors.Wrap(err, "create migrator")
	}

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return pkgerrors.Wrap(err, "migrate")
	}
	return nil
}
