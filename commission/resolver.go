package commission

import (
	"github.com/satheeshds/commissions/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectiveTranche is one realized or forecast installment that falls inside
// a resolved window. Transactions without stored tranches yield a single
// implicit installment carrying the full commission.
type EffectiveTranche struct {
	Transaction   *models.Transaction  `json:"-"`
	TransactionID int64                `json:"transaction_id"`
	TrancheID     int64                `json:"tranche_id,omitempty"` // 0 when implicit
	Implicit      bool                 `json:"implicit"`
	Month         int                  `json:"month"`
	Year          int                  `json:"year"`
	Amount        decimal.Decimal      `json:"amount"`
	Status        models.TrancheStatus `json:"status"`
	Probability   int                  `json:"probability"`

	Realized         decimal.Decimal `json:"realized"`
	WeightedForecast decimal.Decimal `json:"weighted_forecast"`
	FullForecast     decimal.Decimal `json:"full_forecast"`

	ValueShare         decimal.Decimal `json:"value_share"`
	ProportionalCost   decimal.Decimal `json:"proportional_cost"`
	ProportionalCredit decimal.Decimal `json:"proportional_credit"`
	Outcome            decimal.Decimal `json:"outcome"`
}

// TrancheIndex maps a transaction id to the tranches it owns, in storage order.
type TrancheIndex map[int64][]models.Tranche

// IndexTranches groups tranches by owning transaction, preserving input order.
func IndexTranches(tranches []models.Tranche) TrancheIndex {
	idx := make(TrancheIndex)
	for _, t := range tranches {
		idx[t.TransactionID] = append(idx[t.TransactionID], t)
	}
	return idx
}

// TrancheResolver turns transactions into effective tranches for a window.
type TrancheResolver interface {
	Resolve(txns []models.Transaction, idx TrancheIndex, r Range) []EffectiveTranche
}

// Resolver is the tranche resolution engine.
//
// With ProrateCredit unset the tranche path leaves transaction credit out of
// the outcome (ProportionalCredit stays 0), while ResolveRaw adds it. Setting
// it prorates credit by value share the same way cost is prorated.
type Resolver struct {
	ProrateCredit bool
}

// Resolve runs the default Resolver.
func Resolve(txns []models.Transaction, idx TrancheIndex, r Range) []EffectiveTranche {
	return Resolver{}.Resolve(txns, idx, r)
}

// Resolve emits one effective tranche per installment inside r. Output is
// grouped by transaction in input order, tranches in storage order.
// Unpersisted transactions are skipped.
func (res Resolver) Resolve(txns []models.Transaction, idx TrancheIndex, r Range) []EffectiveTranche {
	var out []EffectiveTranche
	for i := range txns {
		t := &txns[i]
		if !t.Persisted() {
			continue
		}
		tranches := idx[t.ID]
		if len(tranches) == 0 {
			if r.Contains(t.Year, t.Month) {
				out = append(out, res.implicit(t))
			}
			continue
		}
		commission := t.NetCommission.Decimal()
		for j := range tranches {
			tr := &tranches[j]
			if !r.Contains(tr.Year, tr.Month) {
				continue
			}
			out = append(out, res.explicit(t, tr, commission))
		}
	}
	return out
}

func (res Resolver) implicit(t *models.Transaction) EffectiveTranche {
	e := EffectiveTranche{
		Transaction:      t,
		TransactionID:    t.ID,
		Implicit:         true,
		Month:            t.Month,
		Year:             t.Year,
		Amount:           t.NetCommission.Decimal(),
		Status:           models.StatusRealized,
		Probability:      100,
		ValueShare:       decimal.NewFromInt(1),
		ProportionalCost: t.Cost.Decimal(),
	}
	if res.ProrateCredit {
		e.ProportionalCredit = t.Credit.Decimal()
	}
	return settle(e)
}

func (res Resolver) explicit(t *models.Transaction, tr *models.Tranche, commission decimal.Decimal) EffectiveTranche {
	e := EffectiveTranche{
		Transaction:   t,
		TransactionID: t.ID,
		TrancheID:     tr.ID,
		Month:         tr.Month,
		Year:          tr.Year,
		Amount:        tr.Amount.Decimal(),
		Status:        tr.Status,
		Probability:   tr.EffectiveProbability(),
	}
	if !commission.IsZero() {
		e.ValueShare = e.Amount.Div(commission)
		e.ProportionalCost = t.Cost.Decimal().Mul(e.Amount).Div(commission)
		if res.ProrateCredit {
			e.ProportionalCredit = t.Credit.Decimal().Mul(e.Amount).Div(commission)
		}
	}
	return settle(e)
}

// ResolveRaw is the degraded path used when no tranche data is available at
// all: every transaction dated inside r becomes one realized row whose
// outcome is commission - cost + credit.
func ResolveRaw(txns []models.Transaction, r Range) []EffectiveTranche {
	var out []EffectiveTranche
	for i := range txns {
		t := &txns[i]
		if !r.Contains(t.Year, t.Month) {
			continue
		}
		out = append(out, settle(EffectiveTranche{
			Transaction:        t,
			TransactionID:      t.ID,
			Implicit:           true,
			Month:              t.Month,
			Year:               t.Year,
			Amount:             t.NetCommission.Decimal(),
			Status:             models.StatusRealized,
			Probability:        100,
			ValueShare:         decimal.NewFromInt(1),
			ProportionalCost:   t.Cost.Decimal(),
			ProportionalCredit: t.Credit.Decimal(),
		}))
	}
	return out
}

// settle fills the realized/forecast split and the outcome.
func settle(e EffectiveTranche) EffectiveTranche {
	net := e.Amount.Sub(e.ProportionalCost).Add(e.ProportionalCredit)
	e.Realized = decimal.Zero
	e.WeightedForecast = decimal.Zero
	e.FullForecast = decimal.Zero
	if e.Status == models.StatusRealized {
		e.Realized = e.Amount
		e.Outcome = net
		return e
	}
	p := decimal.NewFromInt(int64(e.Probability))
	e.FullForecast = e.Amount
	e.WeightedForecast = e.Amount.Mul(p).Div(hundred)
	e.Outcome = net.Mul(p).Div(hundred)
	return e
}
