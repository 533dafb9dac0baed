package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/duckdb/duckdb-go/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/satheeshds/commissions/config"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverDuckDB   = "duckdb"
)

// Open connects to the store selected by cfg.DBDriver and verifies the connection.
func Open(cfg *config.Config) (*sql.DB, error) {
	switch cfg.DBDriver {
	case DriverPostgres:
		return OpenPostgres(cfg.DatabaseURL)
	case DriverDuckDB:
		return OpenDuckDB(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// OpenPostgres opens a pgx-backed connection pool.
func OpenPostgres(url string) (*sql.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
	}
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	slog.Info("database connected", "driver", DriverPostgres)
	return db, nil
}

// OpenDuckDB opens an embedded DuckDB database stored at path. An empty path
// opens a private in-memory database.
func OpenDuckDB(path string) (*sql.DB, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}
	connector, err := duckdb.NewConnector(path, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db := sql.OpenDB(connector)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	slog.Info("database connected", "driver", DriverDuckDB, "path", path)
	return db, nil
}
