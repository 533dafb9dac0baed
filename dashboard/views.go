package dashboard

import (
	"context"

	"github.com/satheeshds/commissions/commission"
)

// Summary is the headline card of the dashboard.
type Summary struct {
	Period   commission.Range `json:"period"`
	Degraded bool             `json:"degraded"`
	commission.PeriodTotals
}

// Summary returns the period totals of the working set.
func (s *Service) Summary(ctx context.Context, r commission.Range) (Summary, error) {
	snap, err := s.Load(ctx, r)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Period:       r,
		Degraded:     snap.Degraded,
		PeriodTotals: commission.Totals(s.Rows(snap)),
	}, nil
}

// Branches returns per-branch totals of the working set.
func (s *Service) Branches(ctx context.Context, r commission.Range) ([]commission.BranchTotals, error) {
	snap, err := s.Load(ctx, r)
	if err != nil {
		return nil, err
	}
	return commission.ByBranch(s.Rows(snap)), nil
}

// Agents ranks the agents of the working set by outcome.
func (s *Service) Agents(ctx context.Context, r commission.Range) ([]commission.AgentTotals, error) {
	snap, err := s.Load(ctx, r)
	if err != nil {
		return nil, err
	}
	return commission.RankAgents(s.Rows(snap)), nil
}

// Monthly returns one row per month of r.
func (s *Service) Monthly(ctx context.Context, r commission.Range) ([]commission.MonthTotals, error) {
	snap, err := s.Load(ctx, r)
	if err != nil {
		return nil, err
	}
	return commission.Monthly(s.Rows(snap), r), nil
}

// Trend compares the working set of r with the unfiltered set of the
// preceding window.
func (s *Service) Trend(ctx context.Context, r commission.Range) (commission.TrendReport, error) {
	snap, err := s.Load(ctx, r)
	if err != nil {
		return commission.TrendReport{}, err
	}
	current := commission.Totals(s.Rows(snap))
	return commission.Trend(s.resolverFor(snap), current, snap.All, snap.Index, r), nil
}

// Plan pairs branch targets with realized outcome per branch and month.
func (s *Service) Plan(ctx context.Context, r commission.Range) (commission.PlanReport, error) {
	snap, err := s.Load(ctx, r)
	if err != nil {
		return commission.PlanReport{}, err
	}
	return commission.PlanVsActual(snap.Targets, s.Rows(snap), r), nil
}

// Installments lists the effective tranches of r. With unfiltered set, the
// whole fetched transaction set is resolved instead of the working set.
func (s *Service) Installments(ctx context.Context, r commission.Range, unfiltered bool) ([]commission.EffectiveTranche, error) {
	snap, err := s.Load(ctx, r)
	if err != nil {
		return nil, err
	}
	txns := snap.Working
	if unfiltered {
		txns = snap.All
	}
	rows := s.resolverFor(snap).Resolve(txns, snap.Index, r)
	if rows == nil {
		rows = []commission.EffectiveTranche{}
	}
	return rows, nil
}

