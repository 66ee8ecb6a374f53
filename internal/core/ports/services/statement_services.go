package services

import (
	"context"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
)

// StatementSvc derives the reporting artifacts from the ledger. Every call
// is a synchronous recomputation against the store's current state; nothing
// is cached or persisted.
type StatementSvc interface {
	TrialBalance(ctx context.Context, year int, month *int) (*domain.TrialBalance, error)
	ProfitLoss(ctx context.Context, year int) (*domain.ProfitLoss, error)
	BalanceSheet(ctx context.Context, year int) (*domain.BalanceSheet, error)
	DepreciationSchedule(ctx context.Context, year int) ([]domain.DepreciationRow, error)
	LossCarryforwardSummary(ctx context.Context, year int) (*domain.LossCarryforwardSummary, error)
	MonthlySalesPurchases(ctx context.Context, year int) ([]domain.MonthlySalesPurchase, error)
	FinalStatement(ctx context.Context, year int) (*domain.FinalStatement, error)
}
