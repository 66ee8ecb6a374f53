package services

import (
	"context"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	"github.com/aozora-dev/blue_return_app/internal/dto"
)

// JournalSvc manages journal entries. This is the write boundary where the
// two-leg balance invariant is enforced; the statement composers rely on it
// without re-checking.
type JournalSvc interface {
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	ListEntries(ctx context.Context, year int, month *int) ([]domain.JournalEntry, error)
}
