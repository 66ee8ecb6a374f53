// Package accounting holds the pure statement calculations: depreciation
// charges and loss-carryforward allocation. Everything here is deterministic
// and side-effect free; persistence of accepted results is the caller's
// responsibility.
package accounting

import (
	"strconv"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// acquisitionYearMonth parses the year and month out of a YYYY-MM-DD
// acquisition date. Malformed dates fall back to the target year and
// January, which keeps a bad register row from poisoning the schedule.
func acquisitionYearMonth(date string, fallbackYear int) (int, int) {
	year, month := fallbackYear, 1
	if len(date) >= 7 {
		if y, err := strconv.Atoi(date[:4]); err == nil {
			year = y
		}
		if m, err := strconv.Atoi(date[5:7]); err == nil {
			month = m
		}
	}
	return year, month
}

// DepreciationCharge computes the proposed straight-line depreciation of one
// asset for the target year. It returns nil when the asset is out of scope
// for the year: acquired later, or already reduced to the 1-yen memorandum
// value.
//
// The charge is floor(cost * rate / 10000); in the acquisition year it is
// prorated by the months from acquisition through December (the acquisition
// month counts in full). The accumulated total never crosses cost - 1.
func DepreciationCharge(asset domain.FixedAsset, year int) *domain.DepreciationRow {
	acqYear, acqMonth := acquisitionYearMonth(asset.AcquisitionDate, year)

	if year < acqYear {
		return nil
	}

	remaining := asset.AcquisitionCost.Sub(asset.AccumulatedDep)
	if remaining.LessThanOrEqual(one) {
		// already at the memorandum value
		return nil
	}

	dep := asset.AcquisitionCost.
		Mul(decimal.NewFromInt(int64(asset.DepreciationRate))).
		Div(decimal.NewFromInt(domain.RateBasis)).
		Floor()

	if year == acqYear {
		months := 12 - acqMonth + 1
		dep = dep.Mul(decimal.NewFromInt(int64(months))).Div(twelve).Floor()
	}

	// leave the 1-yen memorandum value
	if asset.AccumulatedDep.Add(dep).GreaterThanOrEqual(asset.AcquisitionCost) {
		dep = asset.AcquisitionCost.Sub(asset.AccumulatedDep).Sub(one)
	}
	if dep.IsNegative() {
		dep = decimal.Zero
	}

	accumulatedEnd := asset.AccumulatedDep.Add(dep)

	return &domain.DepreciationRow{
		AssetID:            asset.AssetID,
		AssetName:          asset.Name,
		AcquisitionDate:    asset.AcquisitionDate,
		AcquisitionCost:    asset.AcquisitionCost,
		DepreciationMethod: asset.DepreciationMethod,
		UsefulLife:         asset.UsefulLife,
		DepreciationRate:   asset.DepreciationRate,
		AccumulatedDepPrev: asset.AccumulatedDep,
		CurrentYearDep:     dep,
		AccumulatedDepEnd:  accumulatedEnd,
		BookValueEnd:       asset.AcquisitionCost.Sub(accumulatedEnd),
	}
}

// ApplyLossCarryforward allocates prior-year losses against the current
// year's income, oldest loss first. Each loss may only be consumed through
// the usage slot matching its age; a slot already holding a recorded amount
// means a previous application for this same relative year was accepted, so
// the record is reported as settled without reducing the income again.
//
// Losses passed in must be ordered oldest-first. Records fully consumed or
// outside the three-year window yield no row at all.
func ApplyLossCarryforward(incomeBefore decimal.Decimal, losses []domain.LossCarryforward, year int) domain.LossCarryforwardSummary {
	summary := domain.LossCarryforwardSummary{
		TotalApplied: decimal.Zero,
		IncomeBefore: incomeBefore,
		IncomeAfter:  incomeBefore,
	}
	if incomeBefore.LessThanOrEqual(decimal.Zero) {
		return summary
	}

	remainingIncome := incomeBefore

	for _, loss := range losses {
		if remainingIncome.LessThanOrEqual(decimal.Zero) {
			break
		}

		alreadyUsed := loss.AlreadyUsed()
		available := loss.LossAmount.Sub(alreadyUsed)
		if available.LessThanOrEqual(decimal.Zero) {
			continue
		}

		offset := year - loss.LossYear
		if offset < 1 || offset > domain.CarryforwardWindow {
			continue
		}

		if loss.UsedInSlot(offset).GreaterThan(decimal.Zero) {
			// this year's slot was consumed by a prior accepted application
			summary.Rows = append(summary.Rows, domain.LossCarryforwardApplied{
				LossYear:        loss.LossYear,
				OriginalLoss:    loss.LossAmount,
				AlreadyUsed:     alreadyUsed,
				AppliedThisYear: decimal.Zero,
				Remaining:       available,
			})
			continue
		}

		apply := decimal.Min(available, remainingIncome)
		remainingIncome = remainingIncome.Sub(apply)
		summary.TotalApplied = summary.TotalApplied.Add(apply)

		summary.Rows = append(summary.Rows, domain.LossCarryforwardApplied{
			LossYear:        loss.LossYear,
			OriginalLoss:    loss.LossAmount,
			AlreadyUsed:     alreadyUsed,
			AppliedThisYear: apply,
			Remaining:       available.Sub(apply),
		})
	}

	summary.IncomeAfter = incomeBefore.Sub(summary.TotalApplied)
	return summary
}
