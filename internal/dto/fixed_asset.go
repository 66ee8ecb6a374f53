package dto

import (
	"time"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFixedAssetRequest defines the data needed to register a fixed asset.
// DepreciationRate is a fixed-point rate in ten-thousandths (2000 = 20%).
type CreateFixedAssetRequest struct {
	Name               string          `json:"name" binding:"required"`
	AcquisitionDate    string          `json:"acquisitionDate" binding:"required,dateymd"`
	AcquisitionCost    decimal.Decimal `json:"acquisitionCost" binding:"required"`
	UsefulLife         int             `json:"usefulLife" binding:"required,gt=0"`
	DepreciationMethod string          `json:"depreciationMethod" binding:"required"`
	DepreciationRate   int             `json:"depreciationRate" binding:"required,gt=0"`
	AccumulatedDep     decimal.Decimal `json:"accumulatedDep"`
	Memo               string          `json:"memo"`
}

// FixedAssetResponse defines the data returned for a fixed asset.
type FixedAssetResponse struct {
	AssetID            string          `json:"assetID"`
	Name               string          `json:"name"`
	AcquisitionDate    string          `json:"acquisitionDate"`
	AcquisitionCost    decimal.Decimal `json:"acquisitionCost"`
	UsefulLife         int             `json:"usefulLife"`
	DepreciationMethod string          `json:"depreciationMethod"`
	DepreciationRate   int             `json:"depreciationRate"`
	AccumulatedDep     decimal.Decimal `json:"accumulatedDep"`
	Memo               string          `json:"memo"`
	IsActive           bool            `json:"isActive"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ListFixedAssetsResponse wraps the fixed-asset register.
type ListFixedAssetsResponse struct {
	Assets []FixedAssetResponse `json:"assets"`
}

// ToFixedAssetResponse converts a domain.FixedAsset to its DTO.
func ToFixedAssetResponse(a *domain.FixedAsset) FixedAssetResponse {
	return FixedAssetResponse{
		AssetID:            a.AssetID,
		Name:               a.Name,
		AcquisitionDate:    a.AcquisitionDate,
		AcquisitionCost:    a.AcquisitionCost,
		UsefulLife:         a.UsefulLife,
		DepreciationMethod: a.DepreciationMethod,
		DepreciationRate:   a.DepreciationRate,
		AccumulatedDep:     a.AccumulatedDep,
		Memo:               a.Memo,
		IsActive:           a.IsActive,
		CreatedAt:          a.CreatedAt,
	}
}

// ToListFixedAssetsResponse converts a slice of assets to the list DTO.
func ToListFixedAssetsResponse(assets []domain.FixedAsset) ListFixedAssetsResponse {
	res := make([]FixedAssetResponse, len(assets))
	for i, a := range assets {
		res[i] = ToFixedAssetResponse(&a)
	}
	return ListFixedAssetsResponse{Assets: res}
}
