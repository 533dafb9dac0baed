package commission_test

import (
	"testing"

	"github.com/satheeshds/commissions/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

// units converts whole currency units into Money.
func units(n int64) models.Money {
	return models.Money(n * 100)
}

func splitDeal() (models.Transaction, []models.Tranche) {
	txn := models.Transaction{
		ID:            1,
		Branch:        models.BranchDowntown,
		Month:         1,
		Year:          2026,
		Agent:         "Ana Novak",
		Side:          models.SideSale,
		NetCommission: units(12000),
		PropertyValue: units(400000),
		Cost:          units(1200),
	}
	tranches := []models.Tranche{
		{ID: 11, TransactionID: 1, Month: 1, Year: 2026, Amount: units(4000), Status: models.StatusRealized, Probability: 100},
		{ID: 12, TransactionID: 1, Month: 2, Year: 2026, Amount: units(4000), Status: models.StatusForecast, Probability: 50},
		{ID: 13, TransactionID: 1, Month: 3, Year: 2026, Amount: units(4000), Status: models.StatusForecast, Probability: 75},
	}
	return txn, tranches
}
