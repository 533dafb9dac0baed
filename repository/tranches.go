package repository

import (
	"context"
	"fmt"

	"github.com/satheeshds/commissions/commission"
	"github.com/satheeshds/commissions/models"
)

const trancheSelectQuery = `SELECT id, transaction_id, month, year, amount, status, probability, note FROM tranches`

func scanTranche(s scanner) (models.Tranche, error) {
	var t models.Tranche
	err := s.Scan(&t.ID, &t.TransactionID, &t.Month, &t.Year, &t.Amount, &t.Status, &t.Probability, &t.Note)
	return t, err
}

func (s *Store) queryTranches(ctx context.Context, query string, args ...any) ([]models.Tranche, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tranches: %w", err)
	}
	defer rows.Close()

	tranches := []models.Tranche{}
	for rows.Next() {
		t, err := scanTranche(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tranche: %w", err)
		}
		tranches = append(tranches, t)
	}
	return tranches, rows.Err()
}

// ListTranches returns every tranche owned by a transaction that
// ListTransactions(years) would return, in storage order (by id). A
// transaction's set is never cut at the year boundary.
func (s *Store) ListTranches(ctx context.Context, years []int) ([]models.Tranche, error) {
	query := trancheSelectQuery
	var args []any
	if len(years) > 0 {
		var own, tranche string
		own, args = inClause(1, years, args)
		tranche, args = inClause(len(years)+1, years, args)
		query += fmt.Sprintf(` WHERE transaction_id IN (SELECT id FROM transactions WHERE year IN (%s))
		OR transaction_id IN (SELECT transaction_id FROM tranches WHERE year IN (%s))`, own, tranche)
	}
	return s.queryTranches(ctx, query+" ORDER BY id", args...)
}

func (s *Store) ListTranchesFor(ctx context.Context, transactionID int64) ([]models.Tranche, error) {
	return s.queryTranches(ctx, trancheSelectQuery+" WHERE transaction_id = $1 ORDER BY id", transactionID)
}

// ReplaceTranches deletes every tranche of the transaction, inserts inputs in
// order and sets the transaction's net commission to their sum, all in one
// SQL transaction. An empty inputs slice clears the set.
func (s *Store) ReplaceTranches(ctx context.Context, transactionID int64, inputs []models.TrancheInput) ([]models.Tranche, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int64
	if err := tx.QueryRowContext(ctx, "SELECT id FROM transactions WHERE id = $1", transactionID).Scan(&exists); err != nil {
		return nil, mapError(err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM tranches WHERE transaction_id = $1", transactionID); err != nil {
		return nil, fmt.Errorf("failed to delete tranches: %w", err)
	}
	for i, in := range inputs {
		if in.Status == models.StatusRealized {
			in.Probability = 100
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO tranches (transaction_id, month, year, amount, status, probability, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			transactionID, in.Month, in.Year, int64(in.Amount), string(in.Status), in.Probability, in.Note); err != nil {
			return nil, fmt.Errorf("failed to insert tranche %d: %w", i, err)
		}
	}

	// Without tranches the stored commission is the fallback figure and is left alone.
	if len(inputs) > 0 {
		if _, err := tx.ExecContext(ctx, "UPDATE transactions SET net_commission = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
			int64(commission.ResyncCommission(inputs)), transactionID); err != nil {
			return nil, fmt.Errorf("failed to resync commission: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tranches: %w", err)
	}
	return s.ListTranchesFor(ctx, transactionID)
}
