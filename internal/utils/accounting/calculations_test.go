package accounting_test

import (
	"testing"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/aozora-dev/blue_return_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asset(date string, cost, accumulated int64, rate int) domain.FixedAsset {
	return domain.FixedAsset{
		AssetID:            "asset-1",
		Name:               "Delivery van",
		AcquisitionDate:    date,
		AcquisitionCost:    decimal.NewFromInt(cost),
		UsefulLife:         5,
		DepreciationMethod: "straight_line",
		DepreciationRate:   rate,
		AccumulatedDep:     decimal.NewFromInt(accumulated),
		IsActive:           true,
	}
}

func TestDepreciationCharge_AcquisitionYearProrated(t *testing.T) {
	// acquired July 2023: 6 months of a 240,000 annual charge
	row := accounting.DepreciationCharge(asset("2023-07-01", 1200000, 0, 2000), 2023)
	require.NotNil(t, row)
	assert.True(t, decimal.NewFromInt(120000).Equal(row.CurrentYearDep), "got %s", row.CurrentYearDep)
	assert.True(t, decimal.NewFromInt(120000).Equal(row.AccumulatedDepEnd))
	assert.True(t, decimal.NewFromInt(1080000).Equal(row.BookValueEnd))
}

func TestDepreciationCharge_FullYear(t *testing.T) {
	row := accounting.DepreciationCharge(asset("2023-07-01", 1200000, 120000, 2000), 2024)
	require.NotNil(t, row)
	assert.True(t, decimal.NewFromInt(240000).Equal(row.CurrentYearDep))
	assert.True(t, decimal.NewFromInt(360000).Equal(row.AccumulatedDepEnd))
}

func TestDepreciationCharge_BeforeAcquisitionYearSkipped(t *testing.T) {
	assert.Nil(t, accounting.DepreciationCharge(asset("2023-07-01", 1200000, 0, 2000), 2022))
}

func TestDepreciationCharge_MemorandumValueReached(t *testing.T) {
	// only 1 yen of book value left
	assert.Nil(t, accounting.DepreciationCharge(asset("2019-01-01", 1200000, 1199999, 2000), 2024))
}

func TestDepreciationCharge_ClampsToMemorandumValue(t *testing.T) {
	// a full charge would cross cost-1; clamp leaves exactly 1 yen
	row := accounting.DepreciationCharge(asset("2019-01-01", 1200000, 1100000, 2000), 2024)
	require.NotNil(t, row)
	assert.True(t, decimal.NewFromInt(99999).Equal(row.CurrentYearDep), "got %s", row.CurrentYearDep)
	assert.True(t, decimal.NewFromInt(1199999).Equal(row.AccumulatedDepEnd))
	assert.True(t, decimal.NewFromInt(1).Equal(row.BookValueEnd))
}

func TestDepreciationCharge_ChargeFloored(t *testing.T) {
	// 333333 * 1500 / 10000 = 49999.95, floored to 49999
	row := accounting.DepreciationCharge(asset("2022-01-01", 333333, 0, 1500), 2024)
	require.NotNil(t, row)
	assert.True(t, decimal.NewFromInt(49999).Equal(row.CurrentYearDep), "got %s", row.CurrentYearDep)
}

func TestDepreciationCharge_MalformedDateFallsBackToTargetYear(t *testing.T) {
	// treated as acquired January of the target year: full-year charge
	row := accounting.DepreciationCharge(asset("bad", 1200000, 0, 2000), 2024)
	require.NotNil(t, row)
	assert.True(t, decimal.NewFromInt(240000).Equal(row.CurrentYearDep))
}

func loss(year int, amount, u1, u2, u3 int64) domain.LossCarryforward {
	return domain.LossCarryforward{
		LossID:     "loss",
		LossYear:   year,
		LossAmount: decimal.NewFromInt(amount),
		UsedYear1:  decimal.NewFromInt(u1),
		UsedYear2:  decimal.NewFromInt(u2),
		UsedYear3:  decimal.NewFromInt(u3),
	}
}

func TestApplyLossCarryforward_OldestFirst(t *testing.T) {
	losses := []domain.LossCarryforward{
		loss(2021, 300000, 0, 0, 0),
		loss(2022, 200000, 0, 0, 0),
	}
	summary := accounting.ApplyLossCarryforward(decimal.NewFromInt(400000), losses, 2024)

	require.Len(t, summary.Rows, 2)
	assert.True(t, decimal.NewFromInt(300000).Equal(summary.Rows[0].AppliedThisYear))
	assert.True(t, decimal.NewFromInt(100000).Equal(summary.Rows[1].AppliedThisYear))
	assert.True(t, decimal.NewFromInt(400000).Equal(summary.TotalApplied))
	assert.True(t, summary.IncomeAfter.IsZero())
}

func TestApplyLossCarryforward_NoIncomeNoApplication(t *testing.T) {
	losses := []domain.LossCarryforward{loss(2023, 100000, 0, 0, 0)}

	summary := accounting.ApplyLossCarryforward(decimal.NewFromInt(-5000), losses, 2024)
	assert.Empty(t, summary.Rows)
	assert.True(t, summary.TotalApplied.IsZero())
	assert.True(t, decimal.NewFromInt(-5000).Equal(summary.IncomeAfter))
}

func TestApplyLossCarryforward_OutsideWindowSkipped(t *testing.T) {
	losses := []domain.LossCarryforward{
		loss(2020, 100000, 0, 0, 0), // 4 years old
		loss(2024, 100000, 0, 0, 0), // same year
	}
	summary := accounting.ApplyLossCarryforward(decimal.NewFromInt(500000), losses, 2024)
	assert.Empty(t, summary.Rows)
	assert.True(t, summary.TotalApplied.IsZero())
}

func TestApplyLossCarryforward_FullyConsumedYieldsNoRow(t *testing.T) {
	losses := []domain.LossCarryforward{loss(2023, 100000, 100000, 0, 0)}
	summary := accounting.ApplyLossCarryforward(decimal.NewFromInt(500000), losses, 2024)
	assert.Empty(t, summary.Rows)
}

func TestApplyLossCarryforward_SettledSlotReportsZeroApplication(t *testing.T) {
	// slot for offset 1 already holds a recorded amount but the loss is not
	// fully consumed: reported as settled, income untouched
	losses := []domain.LossCarryforward{loss(2023, 200000, 50000, 0, 0)}
	summary := accounting.ApplyLossCarryforward(decimal.NewFromInt(500000), losses, 2024)

	require.Len(t, summary.Rows, 1)
	assert.True(t, summary.Rows[0].AppliedThisYear.IsZero())
	assert.True(t, decimal.NewFromInt(150000).Equal(summary.Rows[0].Remaining))
	assert.True(t, summary.TotalApplied.IsZero())
	assert.True(t, decimal.NewFromInt(500000).Equal(summary.IncomeAfter))
}

func TestApplyLossCarryforward_PartialApplicationCappedByIncome(t *testing.T) {
	losses := []domain.LossCarryforward{loss(2022, 300000, 0, 0, 0)}
	summary := accounting.ApplyLossCarryforward(decimal.NewFromInt(120000), losses, 2024)

	require.Len(t, summary.Rows, 1)
	assert.True(t, decimal.NewFromInt(120000).Equal(summary.Rows[0].AppliedThisYear))
	assert.True(t, decimal.NewFromInt(180000).Equal(summary.Rows[0].Remaining))
	assert.True(t, summary.IncomeAfter.IsZero())
}
