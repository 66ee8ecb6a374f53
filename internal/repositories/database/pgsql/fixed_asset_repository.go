package pgsql

import (
	"context"
	"fmt"

	"github.com/aozora-dev/blue_return_app/internal/apperrors"
	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxFixedAssetRepository struct {
	BaseRepository
}

func newPgxFixedAssetRepository(pool *pgxpool.Pool) portsrepo.FixedAssetRepository {
	return &pgxFixedAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FixedAssetRepository = (*pgxFixedAssetRepository)(nil)

// SaveFixedAsset inserts a new fixed-asset register row.
func (r *pgxFixedAssetRepository) SaveFixedAsset(ctx context.Context, asset domain.FixedAsset) error {
	query := `
		INSERT INTO fixed_assets (asset_id, name, acquisition_date, acquisition_cost, useful_life,
		        depreciation_method, depreciation_rate, accumulated_dep, memo, is_active,
		        created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		asset.AssetID,
		asset.Name,
		asset.AcquisitionDate,
		asset.AcquisitionCost,
		asset.UsefulLife,
		asset.DepreciationMethod,
		asset.DepreciationRate,
		asset.AccumulatedDep,
		asset.Memo,
		asset.IsActive,
		asset.CreatedAt,
		asset.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert fixed asset: %w", err)
	}
	return nil
}

// DeleteFixedAsset removes an asset by id.
func (r *pgxFixedAssetRepository) DeleteFixedAsset(ctx context.Context, assetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM fixed_assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete fixed asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListFixedAssets returns the register ordered by acquisition date.
func (r *pgxFixedAssetRepository) ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	query := `
		SELECT asset_id, name, acquisition_date, acquisition_cost, useful_life,
		       depreciation_method, depreciation_rate, accumulated_dep, memo, is_active,
		       created_at, last_updated_at
		FROM fixed_assets
		ORDER BY acquisition_date;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying fixed assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.FixedAsset{}
	for rows.Next() {
		var a domain.FixedAsset
		if err := rows.Scan(
			&a.AssetID,
			&a.Name,
			&a.AcquisitionDate,
			&a.AcquisitionCost,
			&a.UsefulLife,
			&a.DepreciationMethod,
			&a.DepreciationRate,
			&a.AccumulatedDep,
			&a.Memo,
			&a.IsActive,
			&a.CreatedAt,
			&a.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning fixed asset row: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed asset rows: %w", err)
	}
	return assets, nil
}
