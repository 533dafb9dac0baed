package db

import (
	"bufio"
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrate brings the schema up to date. Postgres is migrated with goose and
// its version table; DuckDB, which goose has no dialect for, runs the Up
// section of every migration file in order. All statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	slog.Info("running database migrations", "driver", driver)

	switch driver {
	case DriverPostgres:
		goose.SetBaseFS(migrationsFS)
		goose.SetLogger(gooseLogger{})
		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("migration dialect: %w", err)
		}
		if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	case DriverDuckDB:
		if err := migrateEmbedded(ctx, db); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported driver %q", driver)
	}

	slog.Info("database migrations complete")
	return nil
}

func migrateEmbedded(ctx context.Context, db *sql.DB) error {
	names, err := fs.Glob(migrationsFS, migrationsDir+"/*.sql")
	if err != nil {
		return fmt.Errorf("listing migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		raw, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		for _, stmt := range upStatements(string(raw)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration failed: %w\nfile: %s\nstatement: %s", err, name, stmt)
			}
		}
	}
	return nil
}

// upStatements returns the ';'-terminated statements between the goose Up
// and Down annotations.
func upStatements(src string) []string {
	var (
		stmts []string
		cur   strings.Builder
		inUp  bool
	)
	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "-- +goose Up"):
			inUp = true
			continue
		case strings.HasPrefix(trimmed, "-- +goose Down"):
			inUp = false
			continue
		case !inUp, trimmed == "", strings.HasPrefix(trimmed, "--"):
			continue
		}
		cur.WriteString(line)
		cur.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmts = append(stmts, strings.TrimSuffix(strings.TrimSpace(cur.String()), ";"))
			cur.Reset()
		}
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}

type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	slog.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (gooseLogger) Fatalf(format string, v ...any) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
