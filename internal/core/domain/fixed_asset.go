package domain

import (
	"github.com/shopspring/decimal"
)

// RateBasis is the denominator of the fixed-point depreciation rate:
// a rate of 2000 means 2000/10000 = 20% per year.
const RateBasis = 10000

// FixedAsset is one line of the fixed-asset register. AccumulatedDep is only
// mutated by recording a closed year's depreciation; the depreciation engine
// itself reports a proposed charge without persisting it.
type FixedAsset struct {
	AssetID            string          `json:"assetID"` // Primary Key (UUID)
	Name               string          `json:"name"`
	AcquisitionDate    string          `json:"acquisitionDate"` // YYYY-MM-DD
	AcquisitionCost    decimal.Decimal `json:"acquisitionCost"`
	UsefulLife         int             `json:"usefulLife"` // years
	DepreciationMethod string          `json:"depreciationMethod"`
	DepreciationRate   int             `json:"depreciationRate"` // ten-thousandths
	AccumulatedDep     decimal.Decimal `json:"accumulatedDep"`
	Memo               string          `json:"memo"`
	IsActive           bool            `json:"isActive"`
	AuditFields
}
