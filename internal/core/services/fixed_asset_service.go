package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aozora-dev/blue_return_app/internal/apperrors"
	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/aozora-dev/blue_return_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixedAssetService manages the fixed-asset register.
type FixedAssetService struct {
	BaseService
	assetRepo portsrepo.FixedAssetRepository
}

func NewFixedAssetService(base BaseService, repo portsrepo.FixedAssetRepository) *FixedAssetService {
	return &FixedAssetService{BaseService: base, assetRepo: repo}
}

func (s *FixedAssetService) CreateFixedAsset(ctx context.Context, req dto.CreateFixedAssetRequest) (*domain.FixedAsset, error) {
	defer s.lock()()

	if req.AcquisitionCost.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: acquisition cost must be positive", apperrors.ErrValidation)
	}
	if req.AccumulatedDep.IsNegative() {
		return nil, fmt.Errorf("%w: accumulated depreciation cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	asset := domain.FixedAsset{
		AssetID:            uuid.NewString(),
		Name:               req.Name,
		AcquisitionDate:    req.AcquisitionDate,
		AcquisitionCost:    req.AcquisitionCost,
		UsefulLife:         req.UsefulLife,
		DepreciationMethod: req.DepreciationMethod,
		DepreciationRate:   req.DepreciationRate,
		AccumulatedDep:     req.AccumulatedDep,
		Memo:               req.Memo,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.assetRepo.SaveFixedAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "failed to save fixed asset", slog.String("name", asset.Name))
		return nil, fmt.Errorf("failed to save fixed asset: %w", err)
	}

	s.LogInfo(ctx, "fixed asset created", slog.String("asset_id", asset.AssetID), slog.String("name", asset.Name))
	return &asset, nil
}

func (s *FixedAssetService) DeleteFixedAsset(ctx context.Context, assetID string) error {
	defer s.lock()()

	if err := s.assetRepo.DeleteFixedAsset(ctx, assetID); err != nil {
		s.LogError(ctx, err, "failed to delete fixed asset", slog.String("asset_id", assetID))
		return fmt.Errorf("failed to delete fixed asset %s: %w", assetID, err)
	}

	s.LogInfo(ctx, "fixed asset deleted", slog.String("asset_id", assetID))
	return nil
}

func (s *FixedAssetService) ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	defer s.lock()()

	assets, err := s.assetRepo.ListFixedAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list fixed assets")
		return nil, fmt.Errorf("failed to list fixed assets: %w", err)
	}
	return assets, nil
}
