package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a single two-leg balanced entry: one debit leg and one
// credit leg for the same amount. The debit_amount == credit_amount > 0
// invariant is enforced at entry creation; every aggregation relies on it.
type JournalEntry struct {
	EntryID           string          `json:"entryID"` // Primary Key (UUID)
	Date              string          `json:"date"`    // YYYY-MM-DD, compared lexicographically
	DebitAccountID    string          `json:"debitAccountID"`
	DebitAccountName  string          `json:"debitAccountName,omitempty"` // resolved on read
	DebitAmount       decimal.Decimal `json:"debitAmount"`
	CreditAccountID   string          `json:"creditAccountID"`
	CreditAccountName string          `json:"creditAccountName,omitempty"` // resolved on read
	CreditAmount      decimal.Decimal `json:"creditAmount"`
	Description       string          `json:"description"`
	CreatedAt         time.Time       `json:"createdAt"`
}
