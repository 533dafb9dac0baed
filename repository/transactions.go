package repository

import (
	"context"
	"fmt"

	"github.com/satheeshds/commissions/models"
)

const txnSelectQuery = `SELECT id, branch, month, year, agent, property_type, side, address,
	net_commission, property_value, cost, credit, created_at, updated_at
	FROM transactions`

func scanTransaction(s scanner) (models.Transaction, error) {
	var t models.Transaction
	err := s.Scan(&t.ID, &t.Branch, &t.Month, &t.Year, &t.Agent, &t.PropertyType, &t.Side, &t.Address,
		&t.NetCommission, &t.PropertyValue, &t.Cost, &t.Credit, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// ListTransactions fetches transactions dated in years together with those
// owning at least one tranche in years, ordered by id.
func (s *Store) ListTransactions(ctx context.Context, years []int) ([]models.Transaction, error) {
	query := txnSelectQuery
	var args []any
	if len(years) > 0 {
		var own, tranche string
		own, args = inClause(1, years, args)
		tranche, args = inClause(len(years)+1, years, args)
		query += fmt.Sprintf(" WHERE year IN (%s) OR id IN (SELECT transaction_id FROM tranches WHERE year IN (%s))", own, tranche)
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (s *Store) GetTransaction(ctx context.Context, id int64) (models.Transaction, error) {
	t, err := scanTransaction(s.db.QueryRowContext(ctx, txnSelectQuery+" WHERE id = $1", id))
	if err != nil {
		return t, mapError(err)
	}
	return t, nil
}

func (s *Store) CreateTransaction(ctx context.Context, in models.TransactionInput) (models.Transaction, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `INSERT INTO transactions (branch, month, year, agent, property_type, side, address,
		net_commission, property_value, cost, credit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		string(in.Branch), in.Month, in.Year, in.Agent, in.PropertyType, string(in.Side), in.Address,
		int64(in.NetCommission), int64(in.PropertyValue), int64(in.Cost), int64(in.Credit)).Scan(&id)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to insert transaction: %w", mapError(err))
	}
	return s.GetTransaction(ctx, id)
}

func (s *Store) UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (models.Transaction, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE transactions SET branch = $1, month = $2, year = $3, agent = $4,
		property_type = $5, side = $6, address = $7, net_commission = $8, property_value = $9,
		cost = $10, credit = $11, updated_at = CURRENT_TIMESTAMP WHERE id = $12`,
		string(in.Branch), in.Month, in.Year, in.Agent, in.PropertyType, string(in.Side), in.Address,
		int64(in.NetCommission), int64(in.PropertyValue), int64(in.Cost), int64(in.Credit), id)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to update transaction: %w", mapError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Transaction{}, ErrNotFound
	}
	return s.GetTransaction(ctx, id)
}

// DeleteTransaction removes a transaction and the tranches it owns.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tranches WHERE transaction_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete tranches: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}
