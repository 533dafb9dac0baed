package commission

import (
	"github.com/satheeshds/commissions/models"
	"github.com/shopspring/decimal"
)

// MonthTotals is one point of the monthly series.
type MonthTotals struct {
	Month         int             `json:"month"`
	Outcome       decimal.Decimal `json:"outcome"`
	Realized      decimal.Decimal `json:"realized"`
	Forecast      decimal.Decimal `json:"forecast"`
	Commission    decimal.Decimal `json:"commission"`
	PropertyValue decimal.Decimal `json:"property_value"`
}

// Monthly returns one entry per month of r. Property value is added once per
// transaction contributing to a month, however many installments it has there.
func Monthly(rows []EffectiveTranche, r Range) []MonthTotals {
	months := r.Months()
	series := make([]MonthTotals, len(months))
	pos := make(map[int]int, len(months))
	for i, m := range months {
		series[i] = MonthTotals{Month: m}
		pos[m] = i
	}

	type monthTxn struct {
		month int
		txn   *models.Transaction
	}
	seen := make(map[monthTxn]bool)
	for i := range rows {
		e := &rows[i]
		j, ok := pos[e.Month]
		if !ok || e.Year != r.Year {
			continue
		}
		mt := &series[j]
		mt.Outcome = mt.Outcome.Add(e.Outcome)
		mt.Realized = mt.Realized.Add(e.Realized)
		mt.Forecast = mt.Forecast.Add(e.WeightedForecast)
		mt.Commission = mt.Commission.Add(e.Amount)
		key := monthTxn{e.Month, e.Transaction}
		if !seen[key] {
			seen[key] = true
			mt.PropertyValue = mt.PropertyValue.Add(e.Transaction.PropertyValue.Decimal())
		}
	}
	return series
}
