package repositories

import (
	"context"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
)

// AccountRepository is the chart-of-accounts surface of the ledger store.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// ListAccounts returns every account ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
