package dashboard

import (
	"context"

	"github.com/satheeshds/commissions/models"
)

//go:generate mockgen -destination=mocks/mock_dashboard.go -source=interface.go

// Source supplies the four inputs of every dashboard view. ListTranches must
// return the complete tranche set of every transaction ListTransactions
// returns for the same years, including tranches dated in other years.
type Source interface {
	ListTransactions(ctx context.Context, years []int) ([]models.Transaction, error)
	ListTranches(ctx context.Context, years []int) ([]models.Tranche, error)
	ListAgents(ctx context.Context) ([]models.Agent, error)
	ListBranchTargets(ctx context.Context, year int) ([]models.BranchTarget, error)
}

// TrancheWriter persists full tranche-set replacements.
type TrancheWriter interface {
	ReplaceTranches(ctx context.Context, transactionID int64, inputs []models.TrancheInput) ([]models.Tranche, error)
	ListTranchesFor(ctx context.Context, transactionID int64) ([]models.Tranche, error)
}
