package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

const pgUniqueViolation = "23505"

// Store implements every repository interface on a database/sql handle
// opened with either the pgx or the duckdb driver.
type Store struct {
	db *sql.DB
}

// New creates a Store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ensure Store implements the repository interfaces
var _ Repository = (*Store)(nil)

type scanner interface{ Scan(...any) error }

// mapError translates driver errors into the package sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.Detail)
	}
	var duckErr *duckdb.Error
	if errors.As(err, &duckErr) && duckErr.Type == duckdb.ErrorTypeConstraint {
		return fmt.Errorf("%w: %s", ErrConflict, duckErr.Msg)
	}
	return err
}

// inClause renders "$n, $n+1, ..." for len(values) arguments starting at $start
// and appends the values to args.
func inClause(start int, values []int, args []any) (string, []any) {
	ph := make([]string, len(values))
	for i, v := range values {
		ph[i] = fmt.Sprintf("$%d", start+i)
		args = append(args, v)
	}
	return strings.Join(ph, ", "), args
}
