package repositories

import (
	"context"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LossRepository is the loss-carryforward register surface of the ledger store.
type LossRepository interface {
	SaveLossCarryforward(ctx context.Context, loss domain.LossCarryforward) error
	DeleteLossCarryforward(ctx context.Context, lossID string) error
	FindLossCarryforwardByID(ctx context.Context, lossID string) (*domain.LossCarryforward, error)
	// ListLossCarryforwards returns every record ordered by loss year.
	ListLossCarryforwards(ctx context.Context) ([]domain.LossCarryforward, error)
	// ListLossesInYearRange returns records with loss_year in the inclusive
	// range, oldest first.
	ListLossesInYearRange(ctx context.Context, fromYear, toYear int) ([]domain.LossCarryforward, error)
	// UpdateLossUsage overwrites the three usage slots of one record.
	UpdateLossUsage(ctx context.Context, lossID string, usedYear1, usedYear2, usedYear3 decimal.Decimal) error
}
