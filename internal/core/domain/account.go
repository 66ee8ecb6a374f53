package domain

import (
	"github.com/shopspring/decimal"
)

// Classification defines the fundamental accounting classification of an account.
type Classification string

const (
	Asset     Classification = "ASSET"
	Liability Classification = "LIABILITY"
	Equity    Classification = "EQUITY"
	Revenue   Classification = "REVENUE"
	Expense   Classification = "EXPENSE"
)

// SignedBalance turns per-account debit/credit totals into a directional balance.
// Asset and Expense accounts carry a natural debit balance, the rest a natural
// credit balance. An unrecognized classification contributes zero instead of
// failing the whole statement.
func (c Classification) SignedBalance(debitTotal, creditTotal decimal.Decimal) decimal.Decimal {
	switch c {
	case Asset, Expense:
		return debitTotal.Sub(creditTotal)
	case Liability, Equity, Revenue:
		return creditTotal.Sub(debitTotal)
	default:
		return decimal.Zero
	}
}

// Account represents one account in the chart of accounts.
// The numeric code is the external sort/display key.
type Account struct {
	AccountID      string         `json:"accountID"` // Primary Key (UUID)
	Code           int            `json:"code"`
	Name           string         `json:"name"`
	Classification Classification `json:"classification"`
	AuditFields
}
