package commission

import (
	"github.com/satheeshds/commissions/models"
	"github.com/shopspring/decimal"
)

// PeriodTotals is the headline summary of a set of effective tranches.
type PeriodTotals struct {
	Outcome         decimal.Decimal `json:"outcome"`
	Commission      decimal.Decimal `json:"commission"`
	GrossCommission decimal.Decimal `json:"gross_commission"`
	Cost            decimal.Decimal `json:"cost"`
	Credit          decimal.Decimal `json:"credit"`
	Realized        decimal.Decimal `json:"realized"`
	Forecast        decimal.Decimal `json:"forecast"`      // probability weighted
	ForecastFull    decimal.Decimal `json:"forecast_full"` // unweighted
	Transactions    int             `json:"transactions"`  // distinct source transactions
}

func (p *PeriodTotals) add(e *EffectiveTranche) {
	p.Outcome = p.Outcome.Add(e.Outcome)
	p.Commission = p.Commission.Add(e.Amount)
	p.Cost = p.Cost.Add(e.ProportionalCost)
	p.Credit = p.Credit.Add(e.ProportionalCredit)
	p.Realized = p.Realized.Add(e.Realized)
	p.Forecast = p.Forecast.Add(e.WeightedForecast)
	p.ForecastFull = p.ForecastFull.Add(e.FullForecast)
}

// Totals reduces rows into period totals.
func Totals(rows []EffectiveTranche) PeriodTotals {
	var p PeriodTotals
	seen := make(map[*models.Transaction]bool)
	for i := range rows {
		p.add(&rows[i])
		if !seen[rows[i].Transaction] {
			seen[rows[i].Transaction] = true
			p.Transactions++
		}
	}
	p.GrossCommission = Gross(p.Commission)
	return p
}

// BranchTotals is PeriodTotals for one office plus deal volume.
type BranchTotals struct {
	Branch models.Branch `json:"branch"`
	PeriodTotals
	PropertyValue  decimal.Decimal `json:"property_value"`
	CommissionRate decimal.Decimal `json:"commission_rate"` // percent of property value
}

// ByBranch groups rows by the owning transaction's branch. Every known
// branch is reported, in Branches() order, followed by any unknown ones.
// Property value is counted once per transaction.
func ByBranch(rows []EffectiveTranche) []BranchTotals {
	order := models.Branches()
	byBranch := make(map[models.Branch]*BranchTotals, len(order))
	for _, b := range order {
		byBranch[b] = &BranchTotals{Branch: b}
	}
	seen := make(map[*models.Transaction]bool)
	for i := range rows {
		e := &rows[i]
		b := e.Transaction.Branch
		bt, ok := byBranch[b]
		if !ok {
			bt = &BranchTotals{Branch: b}
			byBranch[b] = bt
			order = append(order, b)
		}
		bt.add(e)
		if !seen[e.Transaction] {
			seen[e.Transaction] = true
			bt.Transactions++
			bt.PropertyValue = bt.PropertyValue.Add(e.Transaction.PropertyValue.Decimal())
		}
	}

	out := make([]BranchTotals, 0, len(order))
	for _, b := range order {
		bt := byBranch[b]
		bt.GrossCommission = Gross(bt.Commission)
		bt.CommissionRate = Percent(bt.Commission, bt.PropertyValue)
		out = append(out, *bt)
	}
	return out
}
