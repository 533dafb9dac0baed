package commission

import (
	"github.com/satheeshds/commissions/models"
	"github.com/shopspring/decimal"
)

// PlanCell pairs the planned amount of one branch and month with the
// realized outcome booked there.
type PlanCell struct {
	Branch  models.Branch   `json:"branch"`
	Month   int             `json:"month"`
	Planned decimal.Decimal `json:"planned"`
	Actual  decimal.Decimal `json:"actual"`
	Percent decimal.Decimal `json:"percent"`
}

// PlanBranch sums a branch's cells over the window.
type PlanBranch struct {
	Branch  models.Branch   `json:"branch"`
	Planned decimal.Decimal `json:"planned"`
	Actual  decimal.Decimal `json:"actual"`
	Percent decimal.Decimal `json:"percent"`
}

// PlanReport is the plan-vs-actual grid for a window.
type PlanReport struct {
	Period   Range        `json:"period"`
	Cells    []PlanCell   `json:"cells"`
	Branches []PlanBranch `json:"branches"`
}

type planKey struct {
	branch models.Branch
	month  int
}

// PlanVsActual lays out every branch and month of r. Actual is the outcome
// of realized installments only; forecasts never count toward the plan.
// Targets outside r are ignored; a missing target plans 0.
func PlanVsActual(targets []models.BranchTarget, rows []EffectiveTranche, r Range) PlanReport {
	planned := make(map[planKey]decimal.Decimal)
	for _, t := range targets {
		if !r.Contains(t.Year, t.Month) {
			continue
		}
		k := planKey{t.Branch, t.Month}
		planned[k] = planned[k].Add(t.Planned.Decimal())
	}

	actual := make(map[planKey]decimal.Decimal)
	for i := range rows {
		e := &rows[i]
		if e.Status != models.StatusRealized || !r.Contains(e.Year, e.Month) {
			continue
		}
		k := planKey{e.Transaction.Branch, e.Month}
		actual[k] = actual[k].Add(e.Outcome)
	}

	report := PlanReport{Period: r}
	for _, b := range models.Branches() {
		total := PlanBranch{Branch: b}
		for _, m := range r.Months() {
			k := planKey{b, m}
			cell := PlanCell{
				Branch:  b,
				Month:   m,
				Planned: planned[k],
				Actual:  actual[k],
			}
			cell.Percent = realization(cell.Actual, cell.Planned)
			report.Cells = append(report.Cells, cell)
			total.Planned = total.Planned.Add(cell.Planned)
			total.Actual = total.Actual.Add(cell.Actual)
		}
		total.Percent = realization(total.Actual, total.Planned)
		report.Branches = append(report.Branches, total)
	}
	return report
}

func realization(actual, planned decimal.Decimal) decimal.Decimal {
	if !planned.IsPositive() {
		return decimal.Zero
	}
	return Percent(actual, planned)
}
