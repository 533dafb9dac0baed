package commission

import (
	"github.com/satheeshds/commissions/models"
	"github.com/shopspring/decimal"
)

// NetToGrossRatio converts a net commission into its gross (VAT-inclusive) amount.
var NetToGrossRatio = decimal.RequireFromString("1.21")

// Gross converts a net amount using NetToGrossRatio.
func Gross(net decimal.Decimal) decimal.Decimal {
	return net.Mul(NetToGrossRatio)
}

// Percent returns part/whole*100 rounded to two places, or 0 when whole is 0.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole).Round(2)
}

// ResyncCommission is the net commission a transaction must carry after its
// tranche set has been replaced by tranches: the sum of their amounts.
func ResyncCommission(tranches []models.TrancheInput) models.Money {
	var sum models.Money
	for _, t := range tranches {
		sum += t.Amount
	}
	return sum
}
