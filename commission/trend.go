package commission

import (
	"fmt"

	"github.com/satheeshds/commissions/models"
	"github.com/shopspring/decimal"
)

// Change compares one figure between the current and the previous period.
type Change struct {
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
	Percent  decimal.Decimal `json:"percent"`
	Label    string          `json:"label"`
}

// CountChange compares a count; the delta is absolute, not a percentage.
type CountChange struct {
	Current  int    `json:"current"`
	Previous int    `json:"previous"`
	Delta    int    `json:"delta"`
	Label    string `json:"label"`
}

// TrendReport is the period-over-period comparison.
type TrendReport struct {
	Period       Range       `json:"period"`
	Previous     Range       `json:"previous"`
	Outcome      Change      `json:"outcome"`
	Commission   Change      `json:"commission"`
	Realized     Change      `json:"realized"`
	Forecast     Change      `json:"forecast"`
	Transactions CountChange `json:"transactions"`
}

// CompareChange computes the percentage change from previous to current.
// With nothing in the previous period the change is +100% when current is
// positive and 0% otherwise.
func CompareChange(current, previous decimal.Decimal) Change {
	c := Change{Current: current, Previous: previous}
	if previous.IsZero() {
		if current.IsPositive() {
			c.Percent = hundred
			c.Label = "+100%"
		} else {
			c.Percent = decimal.Zero
			c.Label = "0%"
		}
		return c
	}
	c.Percent = current.Sub(previous).Mul(hundred).Div(previous.Abs()).Round(1)
	c.Label = c.Percent.StringFixed(1) + "%"
	if c.Percent.IsPositive() {
		c.Label = "+" + c.Label
	}
	return c
}

// CompareCount computes the absolute difference between two counts.
func CompareCount(current, previous int) CountChange {
	delta := current - previous
	label := fmt.Sprintf("%d", delta)
	if delta > 0 {
		label = "+" + label
	}
	return CountChange{Current: current, Previous: previous, Delta: delta, Label: label}
}

// CompareTrend builds the trend report from the totals of two periods.
func CompareTrend(r Range, current, previous PeriodTotals) TrendReport {
	return TrendReport{
		Period:       r,
		Previous:     r.Previous(),
		Outcome:      CompareChange(current.Outcome, previous.Outcome),
		Commission:   CompareChange(current.Commission, previous.Commission),
		Realized:     CompareChange(current.Realized, previous.Realized),
		Forecast:     CompareChange(current.Forecast, previous.Forecast),
		Transactions: CompareCount(current.Transactions, previous.Transactions),
	}
}

// Trend compares current against the period before r, resolved from all,
// the full transaction set with no visibility or agent filtering applied.
func Trend(res TrancheResolver, current PeriodTotals, all []models.Transaction, idx TrancheIndex, r Range) TrendReport {
	previous := Totals(res.Resolve(all, idx, r.Previous()))
	return CompareTrend(r, current, previous)
}
