package repositories

import (
	"context"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
)

// FixedAssetRepository is the fixed-asset register surface of the ledger store.
type FixedAssetRepository interface {
	SaveFixedAsset(ctx context.Context, asset domain.FixedAsset) error
	DeleteFixedAsset(ctx context.Context, assetID string) error
	// ListFixedAssets returns every asset ordered by acquisition date.
	ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error)
}
