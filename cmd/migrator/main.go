package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"shop/internal/config"
	"shop/internal/logger"
	"shop/internal/migrations"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

func main() {
	var down bool
	flag.BoolVar(&down, "down", false, "roll back all migrations")

	// -config もここでparseされる
	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env)

	if err := run(cfg.Database.DSN(), down); err != nil {
		log.Error("migration failed", logger.Err(err))
		os.Exit(1)
	}
	if down {
		log.Info("migrations rolled back")
		return
	}
	log.Info("migrations applied")

	tables, err := listTables(cfg.Database.DSN())
	if err != nil {
		log.Error("failed to list tables", logger.Err(err))
		os.Exit(1)
	}
	fmt.Println("Current tables in the database:")
	for _, name := range tables {
		fmt.Println(" -", name)
	}
	log.Debug("done", slog.Int("tables", len(tables)))
}

func run(dsn string, down bool) error {
	if down {
		return migrations.Down(dsn)
	}
	return migrations.Up(dsn)
}

func listTables(dsn string) ([]string, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query tables")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "scan table name")
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
