package dto

import (
	"time"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryRequest defines the data needed to record a journal
// entry. The balance and positivity checks happen in the service; the
// binding layer only guards shape and date format.
type CreateJournalEntryRequest struct {
	Date            string          `json:"date" binding:"required,dateymd"`
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	DebitAmount     decimal.Decimal `json:"debitAmount" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	CreditAmount    decimal.Decimal `json:"creditAmount" binding:"required"`
	Description     string          `json:"description"`
}

// UpdateJournalEntryRequest replaces every mutable field of an entry.
type UpdateJournalEntryRequest struct {
	Date            string          `json:"date" binding:"required,dateymd"`
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	DebitAmount     decimal.Decimal `json:"debitAmount" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	CreditAmount    decimal.Decimal `json:"creditAmount" binding:"required"`
	Description     string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID           string          `json:"entryID"`
	Date              string          `json:"date"`
	DebitAccountID    string          `json:"debitAccountID"`
	DebitAccountName  string          `json:"debitAccountName"`
	DebitAmount       decimal.Decimal `json:"debitAmount"`
	CreditAccountID   string          `json:"creditAccountID"`
	CreditAccountName string          `json:"creditAccountName"`
	CreditAmount      decimal.Decimal `json:"creditAmount"`
	Description       string          `json:"description"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ListJournalEntriesResponse wraps the entries of one period.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:           e.EntryID,
		Date:              e.Date,
		DebitAccountID:    e.DebitAccountID,
		DebitAccountName:  e.DebitAccountName,
		DebitAmount:       e.DebitAmount,
		CreditAccountID:   e.CreditAccountID,
		CreditAccountName: e.CreditAccountName,
		CreditAmount:      e.CreditAmount,
		Description:       e.Description,
		CreatedAt:         e.CreatedAt,
	}
}

// ToListJournalEntriesResponse converts a slice of entries to the list DTO.
func ToListJournalEntriesResponse(entries []domain.JournalEntry) ListJournalEntriesResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToJournalEntryResponse(&e)
	}
	return ListJournalEntriesResponse{Entries: res}
}
