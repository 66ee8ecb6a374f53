package repositories

import (
	"context"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
)

// RentRepository is the rent-detail surface of the ledger store.
type RentRepository interface {
	SaveRentDetail(ctx context.Context, rent domain.RentDetail) error
	DeleteRentDetail(ctx context.Context, rentID string) error
	ListRentDetails(ctx context.Context) ([]domain.RentDetail, error)
}
