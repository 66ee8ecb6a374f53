package dto

import (
	"github.com/aozora-dev/blue_return_app/internal/core/domain"
)

// Statement responses echo the requested period next to the derived artifact.
// The artifacts themselves are pure value objects and serialize as-is.

// TrialBalanceResponse wraps a trial balance for a year or a single month.
type TrialBalanceResponse struct {
	Year  int                 `json:"year"`
	Month *int                `json:"month,omitempty"`
	Trial domain.TrialBalance `json:"trialBalance"`
}

// ProfitLossResponse wraps the full-year profit and loss statement.
type ProfitLossResponse struct {
	Year       int               `json:"year"`
	ProfitLoss domain.ProfitLoss `json:"profitLoss"`
}

// BalanceSheetResponse wraps the full-year balance sheet.
type BalanceSheetResponse struct {
	Year         int                 `json:"year"`
	BalanceSheet domain.BalanceSheet `json:"balanceSheet"`
}

// DepreciationScheduleResponse wraps the advisory depreciation schedule.
type DepreciationScheduleResponse struct {
	Year int                      `json:"year"`
	Rows []domain.DepreciationRow `json:"rows"`
}

// MonthlySalesPurchasesResponse wraps the twelve-month rollup.
type MonthlySalesPurchasesResponse struct {
	Year   int                           `json:"year"`
	Months []domain.MonthlySalesPurchase `json:"months"`
}

// LossCarryforwardSummaryResponse wraps the advisory loss application.
type LossCarryforwardSummaryResponse struct {
	Year    int                            `json:"year"`
	Summary domain.LossCarryforwardSummary `json:"summary"`
}

// FinalStatementResponse wraps the consolidated annual filing statement.
type FinalStatementResponse struct {
	Year      int                   `json:"year"`
	Statement domain.FinalStatement `json:"statement"`
}
