package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/satheeshds/commissions/commission"
	"github.com/satheeshds/commissions/models"
	"golang.org/x/sync/errgroup"
)

// Snapshot is everything fetched for one window.
type Snapshot struct {
	Period commission.Range
	// All holds every fetched transaction, before visibility and agent filtering.
	All []models.Transaction
	// Working holds the transactions visible in Period whose agent is active.
	Working []models.Transaction
	Index   commission.TrancheIndex
	Targets []models.BranchTarget
	// Degraded is set when tranche data could not be fetched; views then
	// fall back to raw transaction figures.
	Degraded bool
}

// Service builds dashboard views from a Source.
type Service struct {
	src      Source
	writer   TrancheWriter
	resolver commission.TrancheResolver
	cache    *commission.CachedResolver
}

// NewService wires a Service. A positive cacheTTL memoizes resolver output.
func NewService(src Source, writer TrancheWriter, resolver commission.Resolver, cacheTTL time.Duration) *Service {
	s := &Service{src: src, writer: writer, resolver: resolver}
	if cacheTTL > 0 {
		s.cache = commission.NewCachedResolver(resolver, cacheTTL)
		s.resolver = s.cache
	}
	return s
}

// Load fetches transactions, tranches, agents and targets for r in parallel.
// The year before r.Year is fetched too when the trend window reaches into it.
func (s *Service) Load(ctx context.Context, r commission.Range) (*Snapshot, error) {
	years := []int{r.Year}
	if prev := r.Previous(); prev.Year != r.Year {
		years = append(years, prev.Year)
	}

	var (
		txns     []models.Transaction
		tranches []models.Tranche
		agents   []models.Agent
		targets  []models.BranchTarget
		degraded bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if txns, err = s.src.ListTransactions(gctx, years); err != nil {
			return fmt.Errorf("fetching transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if tranches, err = s.src.ListTranches(gctx, years); err != nil {
			slog.Warn("tranche fetch failed, using raw transaction figures", "error", err, "period", r.String())
			degraded = true
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if agents, err = s.src.ListAgents(gctx); err != nil {
			return fmt.Errorf("fetching agents: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if targets, err = s.src.ListBranchTargets(gctx, r.Year); err != nil {
			return fmt.Errorf("fetching branch targets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Error("dashboard load failed", "error", err, "period", r.String())
		return nil, err
	}

	idx := commission.IndexTranches(tranches)
	return &Snapshot{
		Period:   r,
		All:      txns,
		Working:  commission.WorkingSet(txns, idx, r, activeFilter(agents)),
		Index:    idx,
		Targets:  targets,
		Degraded: degraded,
	}, nil
}

// activeFilter disables agent filtering until at least one agent is registered.
func activeFilter(agents []models.Agent) map[string]bool {
	if len(agents) == 0 {
		return nil
	}
	return commission.ActiveAgentNames(agents)
}

// Rows resolves the working set of snap.
func (s *Service) Rows(snap *Snapshot) []commission.EffectiveTranche {
	return s.resolverFor(snap).Resolve(snap.Working, snap.Index, snap.Period)
}

func (s *Service) resolverFor(snap *Snapshot) commission.TrancheResolver {
	if snap.Degraded {
		return rawResolver{}
	}
	return s.resolver
}

// rawResolver adapts ResolveRaw to the resolver interface.
type rawResolver struct{}

func (rawResolver) Resolve(txns []models.Transaction, _ commission.TrancheIndex, r commission.Range) []commission.EffectiveTranche {
	return commission.ResolveRaw(txns, r)
}

// ReplaceTranches replaces the tranche set of a transaction. When the write
// fails, the persisted set is fetched again and returned with the error so
// callers never keep a set that may no longer match the store.
func (s *Service) ReplaceTranches(ctx context.Context, transactionID int64, inputs []models.TrancheInput) ([]models.Tranche, error) {
	defer s.invalidate()

	tranches, err := s.writer.ReplaceTranches(ctx, transactionID, inputs)
	if err == nil {
		slog.Info("tranches replaced", "transaction_id", transactionID, "count", len(tranches))
		return tranches, nil
	}

	slog.Error("tranche replace failed, re-fetching persisted set", "transaction_id", transactionID, "error", err)
	current, ferr := s.writer.ListTranchesFor(ctx, transactionID)
	if ferr != nil {
		slog.Error("tranche re-fetch failed", "transaction_id", transactionID, "error", ferr)
		return nil, fmt.Errorf("replacing tranches: %w (re-fetch failed: %v)", err, ferr)
	}
	return current, fmt.Errorf("replacing tranches: %w", err)
}

// Invalidate drops memoized resolver output after writes that bypass
// ReplaceTranches.
func (s *Service) Invalidate() {
	s.invalidate()
}

func (s *Service) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
