package repository

import (
	"context"

	"github.com/satheeshds/commissions/models"
)

// TransactionRepository persists property deals.
type TransactionRepository interface {
	// ListTransactions returns transactions dated in years or owning a
	// tranche in years. No years means all transactions.
	ListTransactions(ctx context.Context, years []int) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (models.Transaction, error)
	CreateTransaction(ctx context.Context, in models.TransactionInput) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

// TrancheRepository persists tranche sets.
type TrancheRepository interface {
	// ListTranches returns the complete tranche sets of the transactions
	// ListTransactions(years) returns. No years means all tranches.
	ListTranches(ctx context.Context, years []int) ([]models.Tranche, error)
	ListTranchesFor(ctx context.Context, transactionID int64) ([]models.Tranche, error)
	// ReplaceTranches swaps the whole tranche set of a transaction and
	// resyncs its net commission to the sum of the new amounts.
	ReplaceTranches(ctx context.Context, transactionID int64, inputs []models.TrancheInput) ([]models.Tranche, error)
}

// AgentRepository persists sales agents.
type AgentRepository interface {
	ListAgents(ctx context.Context) ([]models.Agent, error)
	GetAgent(ctx context.Context, id int64) (models.Agent, error)
	CreateAgent(ctx context.Context, in models.AgentInput) (models.Agent, error)
	UpdateAgent(ctx context.Context, id int64, in models.AgentInput) (models.Agent, error)
	DeleteAgent(ctx context.Context, id int64) error
}

// TargetRepository persists monthly branch plans.
type TargetRepository interface {
	// ListBranchTargets returns the targets of year, or all when year is 0.
	ListBranchTargets(ctx context.Context, year int) ([]models.BranchTarget, error)
	GetBranchTarget(ctx context.Context, id int64) (models.BranchTarget, error)
	CreateBranchTarget(ctx context.Context, in models.BranchTargetInput) (models.BranchTarget, error)
	UpdateBranchTarget(ctx context.Context, id int64, in models.BranchTargetInput) (models.BranchTarget, error)
	DeleteBranchTarget(ctx context.Context, id int64) error
}

// Repository is the full store used by the HTTP handlers.
type Repository interface {
	TransactionRepository
	TrancheRepository
	AgentRepository
	TargetRepository
}
