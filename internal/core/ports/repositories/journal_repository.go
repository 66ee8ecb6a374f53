package repositories

import (
	"context"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
)

// JournalRepository is the journal-entry surface of the ledger store.
type JournalRepository interface {
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error
	DeleteEntry(ctx context.Context, entryID string) error
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	// ListEntries returns the entries whose date falls inside the inclusive
	// period, with account names resolved, ordered by date then creation.
	ListEntries(ctx context.Context, period domain.Period) ([]domain.JournalEntry, error)
}
