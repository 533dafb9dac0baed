package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/satheeshds/commissions/commission"
	"github.com/satheeshds/commissions/dashboard"
	mock_dashboard "github.com/satheeshds/commissions/dashboard/mocks"
	"github.com/satheeshds/commissions/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func units(n int64) models.Money {
	return models.Money(n * 100)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

var q1 = commission.Range{StartMonth: 1, EndMonth: 3, Year: 2026}

func fixtureTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: 1, Branch: models.BranchDowntown, Month: 1, Year: 2026, Agent: "Ana Novak", Side: models.SideSale,
			NetCommission: units(12000), PropertyValue: units(400000), Cost: units(1200)},
		{ID: 2, Branch: models.BranchHarbor, Month: 2, Year: 2026, Agent: "Luka Horvat", Side: models.SidePurchase,
			NetCommission: units(6000), PropertyValue: units(200000), Cost: units(600), Credit: units(100)},
		{ID: 3, Branch: models.BranchRiverside, Month: 3, Year: 2026, Agent: "Marta Kos", Side: models.SideRental,
			NetCommission: units(1000)},
		{ID: 4, Branch: models.BranchDowntown, Month: 11, Year: 2025, Agent: "Ana Novak", Side: models.SideSale,
			NetCommission: units(2000)},
	}
}

func fixtureTranches() []models.Tranche {
	return []models.Tranche{
		{ID: 11, TransactionID: 1, Month: 1, Year: 2026, Amount: units(4000), Status: models.StatusRealized, Probability: 100},
		{ID: 12, TransactionID: 1, Month: 2, Year: 2026, Amount: units(4000), Status: models.StatusForecast, Probability: 50},
		{ID: 13, TransactionID: 1, Month: 3, Year: 2026, Amount: units(4000), Status: models.StatusForecast, Probability: 75},
	}
}

func fixtureAgents() []models.Agent {
	return []models.Agent{
		{ID: 1, Name: "Ana Novak", Branch: models.BranchDowntown, Active: true},
		{ID: 2, Name: "Luka Horvat", Branch: models.BranchHarbor, Active: true},
		{ID: 3, Name: "Marta Kos", Branch: models.BranchRiverside, Active: false},
	}
}

type fixture struct {
	src    *mock_dashboard.MockSource
	writer *mock_dashboard.MockTrancheWriter
	svc    *dashboard.Service
}

func newFixture(t *testing.T, ttl time.Duration) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	src := mock_dashboard.NewMockSource(ctrl)
	writer := mock_dashboard.NewMockTrancheWriter(ctrl)
	return fixture{
		src:    src,
		writer: writer,
		svc:    dashboard.NewService(src, writer, commission.Resolver{}, ttl),
	}
}

// expectLoad wires one full Load of q1, which also fetches 2025 for the trend.
func (f fixture) expectLoad(agents []models.Agent, tranchesErr error) {
	f.src.EXPECT().ListTransactions(gomock.Any(), []int{2026, 2025}).Return(fixtureTransactions(), nil)
	if tranchesErr != nil {
		f.src.EXPECT().ListTranches(gomock.Any(), []int{2026, 2025}).Return(nil, tranchesErr)
	} else {
		f.src.EXPECT().ListTranches(gomock.Any(), []int{2026, 2025}).Return(fixtureTranches(), nil)
	}
	f.src.EXPECT().ListAgents(gomock.Any()).Return(agents, nil)
	f.src.EXPECT().ListBranchTargets(gomock.Any(), 2026).Return([]models.BranchTarget{
		{ID: 1, Branch: models.BranchDowntown, Year: 2026, Month: 1, Planned: units(4000)},
	}, nil)
}

func TestService_Load(t *testing.T) {
	f := newFixture(t, 0)
	f.expectLoad(fixtureAgents(), nil)

	snap, err := f.svc.Load(context.Background(), q1)
	require.NoError(t, err)
	assert.False(t, snap.Degraded)
	assert.Len(t, snap.All, 4)
	require.Len(t, snap.Working, 2, "inactive agent and out-of-range deal are excluded")
	assert.Equal(t, int64(1), snap.Working[0].ID)
	assert.Equal(t, int64(2), snap.Working[1].ID)
	assert.Len(t, snap.Index[1], 3)
	assert.Len(t, snap.Targets, 1)
}

func TestService_Load_OnlyCurrentYearWhenTrendStaysInside(t *testing.T) {
	f := newFixture(t, 0)
	r := commission.Range{StartMonth: 4, EndMonth: 6, Year: 2026}
	f.src.EXPECT().ListTransactions(gomock.Any(), []int{2026}).Return(nil, nil)
	f.src.EXPECT().ListTranches(gomock.Any(), []int{2026}).Return(nil, nil)
	f.src.EXPECT().ListAgents(gomock.Any()).Return(nil, nil)
	f.src.EXPECT().ListBranchTargets(gomock.Any(), 2026).Return(nil, nil)

	snap, err := f.svc.Load(context.Background(), r)
	require.NoError(t, err)
	assert.Empty(t, snap.Working)
}

func TestService_Load_NoAgentsRegisteredKeepsEveryone(t *testing.T) {
	f := newFixture(t, 0)
	f.expectLoad(nil, nil)

	snap, err := f.svc.Load(context.Background(), q1)
	require.NoError(t, err)
	assert.Len(t, snap.Working, 3)
}

func TestService_Load_TransactionFetchFails(t *testing.T) {
	f := newFixture(t, 0)
	boom := errors.New("connection refused")
	f.src.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, boom)
	f.src.EXPECT().ListTranches(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.src.EXPECT().ListAgents(gomock.Any()).Return(nil, nil).AnyTimes()
	f.src.EXPECT().ListBranchTargets(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := f.svc.Summary(context.Background(), q1)
	assert.ErrorIs(t, err, boom)
}

func TestService_Summary(t *testing.T) {
	f := newFixture(t, time.Minute)
	f.expectLoad(fixtureAgents(), nil)

	got, err := f.svc.Summary(context.Background(), q1)
	require.NoError(t, err)
	assert.False(t, got.Degraded)
	assert.Equal(t, q1, got.Period)
	assertDecimal(t, "13500", got.Outcome)
	assertDecimal(t, "18000", got.Commission)
	assertDecimal(t, "10000", got.Realized)
	assertDecimal(t, "5000", got.Forecast)
	assertDecimal(t, "0", got.Credit)
	assert.Equal(t, 2, got.Transactions)
}

func TestService_Summary_DegradedWithoutTrancheData(t *testing.T) {
	f := newFixture(t, 0)
	f.expectLoad(fixtureAgents(), errors.New("tranches table missing"))

	got, err := f.svc.Summary(context.Background(), q1)
	require.NoError(t, err)
	assert.True(t, got.Degraded)
	// 12000 - 1200 and 6000 - 600 + 100, each on its own transaction date.
	assertDecimal(t, "16300", got.Outcome)
	assertDecimal(t, "100", got.Credit)
	assert.Equal(t, 2, got.Transactions)
}

func TestService_Branches(t *testing.T) {
	f := newFixture(t, 0)
	f.expectLoad(fixtureAgents(), nil)

	got, err := f.svc.Branches(context.Background(), q1)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, models.BranchDowntown, got[0].Branch)
	assertDecimal(t, "8100", got[0].Outcome)
	assertDecimal(t, "3", got[0].CommissionRate)
	assert.Equal(t, models.BranchHarbor, got[2].Branch)
	assertDecimal(t, "5400", got[2].Outcome)
	assertDecimal(t, "0", got[1].Outcome)
}

func TestService_Agents(t *testing.T) {
	f := newFixture(t, 0)
	f.expectLoad(fixtureAgents(), nil)

	got, err := f.svc.Agents(context.Background(), q1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ana Novak", got[0].Agent)
	assertDecimal(t, "8100", got[0].Outcome)
	assert.Equal(t, 1, got[0].Transactions)
	assert.Equal(t, "Luka Horvat", got[1].Agent)
}

func TestService_Monthly(t *testing.T) {
	f := newFixture(t, 0)
	f.expectLoad(fixtureAgents(), nil)

	got, err := f.svc.Monthly(context.Background(), q1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assertDecimal(t, "3600", got[0].Outcome)
	assertDecimal(t, "7200", got[1].Outcome) // 1800 weighted forecast + 5400 implicit
	assertDecimal(t, "2700", got[2].Outcome)
}

func TestService_Trend(t *testing.T) {
	f := newFixture(t, 0)
	f.expectLoad(fixtureAgents(), nil)

	got, err := f.svc.Trend(context.Background(), q1)
	require.NoError(t, err)
	assert.Equal(t, commission.Range{StartMonth: 10, EndMonth: 12, Year: 2025}, got.Previous)
	assertDecimal(t, "2000", got.Outcome.Previous)
	assert.Equal(t, "+575.0%", got.Outcome.Label)
	assert.Equal(t, "+1", got.Transactions.Label)
}

func TestService_Plan(t *testing.T) {
	f := newFixture(t, 0)
	f.expectLoad(fixtureAgents(), nil)

	got, err := f.svc.Plan(context.Background(), q1)
	require.NoError(t, err)
	require.Len(t, got.Cells, 12)
	jan := got.Cells[0]
	assert.Equal(t, models.BranchDowntown, jan.Branch)
	assert.Equal(t, 1, jan.Month)
	assertDecimal(t, "4000", jan.Planned)
	assertDecimal(t, "3600", jan.Actual)
	assertDecimal(t, "90", jan.Percent)
}

func TestService_Installments(t *testing.T) {
	f := newFixture(t, 0)
	f.expectLoad(fixtureAgents(), nil)
	f.expectLoad(fixtureAgents(), nil)

	working, err := f.svc.Installments(context.Background(), q1, false)
	require.NoError(t, err)
	assert.Len(t, working, 4)

	all, err := f.svc.Installments(context.Background(), q1, true)
	require.NoError(t, err)
	assert.Len(t, all, 5, "inactive agent's deal is part of the unfiltered view")
}

func TestService_ReplaceTranches(t *testing.T) {
	inputs := []models.TrancheInput{
		{Month: 1, Year: 2026, Amount: units(5000), Status: models.StatusRealized},
		{Month: 2, Year: 2026, Amount: units(3000), Status: models.StatusForecast, Probability: 40},
	}
	persisted := []models.Tranche{
		{ID: 21, TransactionID: 1, Month: 1, Year: 2026, Amount: units(5000), Status: models.StatusRealized, Probability: 100},
		{ID: 22, TransactionID: 1, Month: 2, Year: 2026, Amount: units(3000), Status: models.StatusForecast, Probability: 40},
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		f.writer.EXPECT().ReplaceTranches(gomock.Any(), int64(1), inputs).Return(persisted, nil)

		got, err := f.svc.ReplaceTranches(context.Background(), 1, inputs)
		require.NoError(t, err)
		assert.Equal(t, persisted, got)
	})

	t.Run("failure re-fetches persisted set", func(t *testing.T) {
		f := newFixture(t, 0)
		boom := errors.New("insert failed")
		gomock.InOrder(
			f.writer.EXPECT().ReplaceTranches(gomock.Any(), int64(1), inputs).Return(nil, boom),
			f.writer.EXPECT().ListTranchesFor(gomock.Any(), int64(1)).Return(persisted[:1], nil),
		)

		got, err := f.svc.ReplaceTranches(context.Background(), 1, inputs)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, persisted[:1], got)
	})

	t.Run("failure and failed re-fetch", func(t *testing.T) {
		f := newFixture(t, 0)
		boom := errors.New("insert failed")
		f.writer.EXPECT().ReplaceTranches(gomock.Any(), int64(1), inputs).Return(nil, boom)
		f.writer.EXPECT().ListTranchesFor(gomock.Any(), int64(1)).Return(nil, errors.New("gone"))

		got, err := f.svc.ReplaceTranches(context.Background(), 1, inputs)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, got)
	})
}
