package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/satheeshds/commissions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateTransaction(ctx, dealInput("Ana Novak", 2026, 1))
	require.NoError(t, err)
	assert.True(t, created.Persisted())
	assert.Equal(t, models.Money(1200000), created.NetCommission)
	assert.Equal(t, models.BranchDowntown, created.Branch)
	assert.False(t, created.CreatedAt.IsZero())

	in := dealInput("Ana Novak", 2026, 2)
	in.Cost = 0
	updated, err := s.UpdateTransaction(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Month)
	assert.Zero(t, updated.Cost)

	require.NoError(t, s.DeleteTransaction(ctx, created.ID))
	_, err = s.GetTransaction(ctx, created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTransactionNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateTransaction(ctx, 999, dealInput("Ana Novak", 2026, 1))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteTransaction(ctx, 999), ErrNotFound)
}

func TestListTransactions_IncludesTrancheYears(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	dec2025, err := s.CreateTransaction(ctx, dealInput("Ana Novak", 2025, 12))
	require.NoError(t, err)
	jan2026, err := s.CreateTransaction(ctx, dealInput("Luka Horvat", 2026, 1))
	require.NoError(t, err)
	_, err = s.CreateTransaction(ctx, dealInput("Luka Horvat", 2024, 5))
	require.NoError(t, err)

	// December 2025 deal paid out in February 2026.
	_, err = s.ReplaceTranches(ctx, dec2025.ID, []models.TrancheInput{
		{Month: 2, Year: 2026, Amount: 1200000, Status: models.StatusForecast, Probability: 50},
	})
	require.NoError(t, err)

	txns, err := s.ListTransactions(ctx, []int{2026})
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, dec2025.ID, txns[0].ID)
	assert.Equal(t, jan2026.ID, txns[1].ID)

	all, err := s.ListTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteTransaction_RemovesTranches(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	txn, err := s.CreateTransaction(ctx, dealInput("Ana Novak", 2026, 1))
	require.NoError(t, err)
	_, err = s.ReplaceTranches(ctx, txn.ID, []models.TrancheInput{
		{Month: 1, Year: 2026, Amount: 600000, Status: models.StatusRealized},
		{Month: 2, Year: 2026, Amount: 600000, Status: models.StatusForecast, Probability: 80},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTransaction(ctx, txn.ID))
	tranches, err := s.ListTranches(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, tranches)
}
