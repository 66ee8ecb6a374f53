package services

import (
	"context"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/aozora-dev/blue_return_app/internal/dto"
)

// FixedAssetSvc manages the fixed-asset register.
type FixedAssetSvc interface {
	CreateFixedAsset(ctx context.Context, req dto.CreateFixedAssetRequest) (*domain.FixedAsset, error)
	DeleteFixedAsset(ctx context.Context, assetID string) error
	ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error)
}

// RentSvc manages the rent-expense breakdown records.
type RentSvc interface {
	CreateRentDetail(ctx context.Context, req dto.CreateRentDetailRequest) (*domain.RentDetail, error)
	DeleteRentDetail(ctx context.Context, rentID string) error
	ListRentDetails(ctx context.Context) ([]domain.RentDetail, error)
}

// LossSvc manages loss-carryforward records. RecordLossUsage is the external
// write that persists an accepted application; the carryforward engine only
// ever proposes.
type LossSvc interface {
	CreateLossCarryforward(ctx context.Context, req dto.CreateLossCarryforwardRequest) (*domain.LossCarryforward, error)
	DeleteLossCarryforward(ctx context.Context, lossID string) error
	ListLossCarryforwards(ctx context.Context) ([]domain.LossCarryforward, error)
	RecordLossUsage(ctx context.Context, lossID string, req dto.UpdateLossUsageRequest) (*domain.LossCarryforward, error)
}
