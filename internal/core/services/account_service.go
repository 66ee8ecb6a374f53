package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/aozora-dev/blue_return_app/internal/dto"
	"github.com/google/uuid"
)

// AccountService manages the chart of accounts.
type AccountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

func NewAccountService(base BaseService, repo portsrepo.AccountRepository) *AccountService {
	return &AccountService{BaseService: base, accountRepo: repo}
}

func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	defer s.lock()()

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Code:           req.Code,
		Name:           req.Name,
		Classification: req.Classification,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to save account", slog.Int("code", account.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "account created", slog.String("account_id", account.AccountID), slog.Int("code", account.Code))
	return &account, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	defer s.lock()()

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	defer s.lock()()

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
