package repository

import (
	"context"
	"fmt"

	"github.com/satheeshds/commissions/models"
)

const targetSelectQuery = `SELECT id, branch, year, month, planned FROM branch_targets`

func scanTarget(s scanner) (models.BranchTarget, error) {
	var b models.BranchTarget
	err := s.Scan(&b.ID, &b.Branch, &b.Year, &b.Month, &b.Planned)
	return b, err
}

func (s *Store) ListBranchTargets(ctx context.Context, year int) ([]models.BranchTarget, error) {
	query := targetSelectQuery
	var args []any
	if year != 0 {
		query += " WHERE year = $1"
		args = append(args, year)
	}
	query += " ORDER BY year, month, branch"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query branch targets: %w", err)
	}
	defer rows.Close()

	targets := []models.BranchTarget{}
	for rows.Next() {
		b, err := scanTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch target: %w", err)
		}
		targets = append(targets, b)
	}
	return targets, rows.Err()
}

func (s *Store) GetBranchTarget(ctx context.Context, id int64) (models.BranchTarget, error) {
	b, err := scanTarget(s.db.QueryRowContext(ctx, targetSelectQuery+" WHERE id = $1", id))
	if err != nil {
		return b, mapError(err)
	}
	return b, nil
}

func (s *Store) CreateBranchTarget(ctx context.Context, in models.BranchTargetInput) (models.BranchTarget, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, "INSERT INTO branch_targets (branch, year, month, planned) VALUES ($1, $2, $3, $4) RETURNING id",
		string(in.Branch), in.Year, in.Month, int64(in.Planned)).Scan(&id)
	if err != nil {
		return models.BranchTarget{}, fmt.Errorf("failed to insert branch target: %w", mapError(err))
	}
	return s.GetBranchTarget(ctx, id)
}

func (s *Store) UpdateBranchTarget(ctx context.Context, id int64, in models.BranchTargetInput) (models.BranchTarget, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE branch_targets SET branch = $1, year = $2, month = $3, planned = $4 WHERE id = $5",
		string(in.Branch), in.Year, in.Month, int64(in.Planned), id)
	if err != nil {
		return models.BranchTarget{}, fmt.Errorf("failed to update branch target: %w", mapError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.BranchTarget{}, ErrNotFound
	}
	return s.GetBranchTarget(ctx, id)
}

func (s *Store) DeleteBranchTarget(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM branch_targets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete branch target: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
