package commission_test

import (
	"testing"
	"time"

	"github.com/satheeshds/commissions/commission"
	"github.com/satheeshds/commissions/models"
	"github.com/stretchr/testify/assert"
)

type countingResolver struct {
	calls int
}

func (c *countingResolver) Resolve(txns []models.Transaction, idx commission.TrancheIndex, r commission.Range) []commission.EffectiveTranche {
	c.calls++
	return commission.Resolve(txns, idx, r)
}

func TestCachedResolver(t *testing.T) {
	txns, idx := portfolio()
	inner := &countingResolver{}
	cached := commission.NewCachedResolver(inner, time.Minute)

	first := cached.Resolve(txns, idx, q1())
	second := cached.Resolve(txns, idx, q1())
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, len(first), len(second))
	assertDecimal(t, "14500", commission.Totals(second).Outcome)

	cached.Resolve(txns, idx, commission.FullYear(2026))
	assert.Equal(t, 2, inner.calls, "different window misses")

	changed := append([]models.Transaction(nil), txns...)
	changed[1].Cost = units(1)
	cached.Resolve(changed, idx, q1())
	assert.Equal(t, 3, inner.calls, "changed input misses")
	assert.Equal(t, 3, cached.Len())

	cached.Invalidate()
	assert.Equal(t, 0, cached.Len())
	cached.Resolve(txns, idx, q1())
	assert.Equal(t, 4, inner.calls)
}

func TestFingerprint_Stable(t *testing.T) {
	txns, idx := portfolio()
	assert.Equal(t, commission.Fingerprint(txns, idx), commission.Fingerprint(txns, idx))

	other := commission.IndexTranches([]models.Tranche{{ID: 99, TransactionID: 1, Month: 1, Year: 2026, Amount: units(12000), Status: models.StatusRealized}})
	assert.NotEqual(t, commission.Fingerprint(txns, idx), commission.Fingerprint(txns, other))
}
