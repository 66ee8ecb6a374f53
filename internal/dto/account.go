package dto

import (
	"time"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code           int                   `json:"code" binding:"required,gt=0"`
	Name           string                `json:"name" binding:"required"`
	Classification domain.Classification `json:"classification" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string                `json:"accountID"`
	Code           int                   `json:"code"`
	Name           string                `json:"name"`
	Classification domain.Classification `json:"classification"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Code:           acc.Code,
		Name:           acc.Name,
		Classification: acc.Classification,
		CreatedAt:      acc.CreatedAt,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return ListAccountsResponse{Accounts: res}
}
