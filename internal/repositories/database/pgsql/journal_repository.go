package pgsql

import (
	"context"
	"fmt"

	"github.com/aozora-dev/blue_return_app/internal/apperrors"
	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &pgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepository = (*pgxJournalRepository)(nil)

// entrySelect joins both legs' accounts so callers get resolved names.
const entrySelect = `
	SELECT j.entry_id, j.entry_date,
	       j.debit_account_id, da.name, j.debit_amount,
	       j.credit_account_id, ca.name, j.credit_amount,
	       j.description, j.created_at
	FROM journal_entries j
	JOIN accounts da ON da.account_id = j.debit_account_id
	JOIN accounts ca ON ca.account_id = j.credit_account_id
`

// SaveEntry inserts a new journal entry.
func (r *pgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (entry_id, entry_date, debit_account_id, debit_amount,
		        credit_account_id, credit_amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.Date,
		entry.DebitAccountID,
		entry.DebitAmount,
		entry.CreditAccountID,
		entry.CreditAmount,
		entry.Description,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

// UpdateEntry replaces every mutable field of an existing entry.
func (r *pgxJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		UPDATE journal_entries
		SET entry_date = $1, debit_account_id = $2, debit_amount = $3,
		    credit_account_id = $4, credit_amount = $5, description = $6
		WHERE entry_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		entry.Date,
		entry.DebitAccountID,
		entry.DebitAmount,
		entry.CreditAccountID,
		entry.CreditAmount,
		entry.Description,
		entry.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes an entry by id.
func (r *pgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindEntryByID fetches one entry with resolved account names.
func (r *pgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := entrySelect + ` WHERE j.entry_id = $1;`
	var e domain.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&e.EntryID,
		&e.Date,
		&e.DebitAccountID,
		&e.DebitAccountName,
		&e.DebitAmount,
		&e.CreditAccountID,
		&e.CreditAccountName,
		&e.CreditAmount,
		&e.Description,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, mapScanError(err))
	}
	return &e, nil
}

// ListEntries returns entries inside the inclusive period. Dates are TEXT in
// YYYY-MM-DD form, so the range comparison is lexicographic.
func (r *pgxJournalRepository) ListEntries(ctx context.Context, period domain.Period) ([]domain.JournalEntry, error) {
	query := entrySelect + `
		WHERE j.entry_date >= $1 AND j.entry_date <= $2
		ORDER BY j.entry_date, j.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("error querying journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var e domain.JournalEntry
		if err := rows.Scan(
			&e.EntryID,
			&e.Date,
			&e.DebitAccountID,
			&e.DebitAccountName,
			&e.DebitAmount,
			&e.CreditAccountID,
			&e.CreditAccountName,
			&e.CreditAmount,
			&e.Description,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning journal entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return entries, nil
}
