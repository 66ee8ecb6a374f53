package repositories

import (
	"context"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
)

// ReportingRepository is the read-only aggregation surface of the ledger
// store. Both queries compare entry dates lexicographically against the
// period's YYYY-MM-DD bounds.
type ReportingRepository interface {
	// AccountPeriodTotals sums debit and credit legs per account over the
	// period. When classifications is non-empty, only accounts with one of
	// those classifications are considered. Accounts with zero activity are
	// dropped; rows come back ordered by account code.
	AccountPeriodTotals(ctx context.Context, period domain.Period, classifications []domain.Classification) ([]domain.AccountPeriodTotal, error)

	// MonthlySalesPurchases buckets the amounts booked against the
	// designated sales (credit leg) and purchases (debit leg) account codes
	// by calendar month. Only months with activity are returned.
	MonthlySalesPurchases(ctx context.Context, period domain.Period, salesCode, purchasesCode int) ([]domain.MonthlySalesPurchase, error)
}
