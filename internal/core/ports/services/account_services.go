package services

import (
	"context"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/aozora-dev/blue_return_app/internal/dto"
)

// AccountSvc manages the chart of accounts.
type AccountSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
