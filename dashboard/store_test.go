package dashboard_test

import (
	"context"
	"testing"

	"github.com/satheeshds/commissions/commission"
	"github.com/satheeshds/commissions/dashboard"
	"github.com/satheeshds/commissions/db"
	"github.com/satheeshds/commissions/models"
	"github.com/satheeshds/commissions/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreService(t *testing.T) (*repository.Store, *dashboard.Service) {
	t.Helper()
	conn, err := db.OpenDuckDB("")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(context.Background(), conn, db.DriverDuckDB))
	store := repository.New(conn)
	return store, dashboard.NewService(store, store, commission.Resolver{}, 0)
}

// A December deal paid out only in the following February must not post its
// commission in December.
func TestService_Load_TranchesInOtherYearSupersedeDealDate(t *testing.T) {
	store, svc := newStoreService(t)
	ctx := context.Background()

	txn, err := store.CreateTransaction(ctx, models.TransactionInput{
		Branch: models.BranchDowntown, Month: 12, Year: 2026, Agent: "Ana Novak",
		Side: models.SideSale, NetCommission: units(10000),
	})
	require.NoError(t, err)
	_, err = svc.ReplaceTranches(ctx, txn.ID, []models.TrancheInput{
		{Month: 2, Year: 2027, Amount: units(10000), Status: models.StatusRealized},
	})
	require.NoError(t, err)

	dec := commission.Range{StartMonth: 12, EndMonth: 12, Year: 2026}
	snap, err := svc.Load(ctx, dec)
	require.NoError(t, err)
	assert.Len(t, snap.All, 1)
	assert.Len(t, snap.Index[txn.ID], 1, "tranche set is complete")
	assert.Empty(t, snap.Working)

	rows, err := svc.Installments(ctx, dec, false)
	require.NoError(t, err)
	assert.Empty(t, rows)

	unfiltered, err := svc.Installments(ctx, dec, true)
	require.NoError(t, err)
	assert.Empty(t, unfiltered)

	feb, err := svc.Installments(ctx, commission.Range{StartMonth: 2, EndMonth: 2, Year: 2027}, false)
	require.NoError(t, err)
	require.Len(t, feb, 1)
	assert.False(t, feb[0].Implicit)
	assertDecimal(t, "10000", feb[0].Outcome)
}

// The trend of an early window reads the prior year's tranches of deals
// dated in the current year.
func TestService_Trend_PreviousYearTranchesOfCurrentDeal(t *testing.T) {
	store, svc := newStoreService(t)
	ctx := context.Background()

	txn, err := store.CreateTransaction(ctx, models.TransactionInput{
		Branch: models.BranchHarbor, Month: 1, Year: 2026, Agent: "Luka Horvat",
		Side: models.SidePurchase, NetCommission: units(3000),
	})
	require.NoError(t, err)
	_, err = svc.ReplaceTranches(ctx, txn.ID, []models.TrancheInput{
		{Month: 11, Year: 2025, Amount: units(1000), Status: models.StatusRealized},
		{Month: 2, Year: 2026, Amount: units(2000), Status: models.StatusRealized},
	})
	require.NoError(t, err)

	got, err := svc.Trend(ctx, commission.Range{StartMonth: 2, EndMonth: 4, Year: 2026})
	require.NoError(t, err)
	assert.Equal(t, commission.Range{StartMonth: 10, EndMonth: 12, Year: 2025}, got.Previous)
	assertDecimal(t, "2000", got.Outcome.Current)
	assertDecimal(t, "1000", got.Outcome.Previous)
	assert.Equal(t, "+100.0%", got.Outcome.Label)
}
