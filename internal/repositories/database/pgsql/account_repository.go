package pgsql

import (
	"context"
	"fmt"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &pgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*pgxAccountRepository)(nil)

// SaveAccount inserts a new account. A code collision surfaces as ErrDuplicate.
func (r *pgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (account_id, code, name, classification, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.Code,
		account.Name,
		string(account.Classification),
		account.CreatedAt,
		account.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", mapScanError(err))
	}
	return nil
}

// FindAccountByID fetches a single account by its primary key.
func (r *pgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, code, name, classification, created_at, last_updated_at
		FROM accounts
		WHERE account_id = $1;
	`
	var acc domain.Account
	var classification string
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&acc.AccountID,
		&acc.Code,
		&acc.Name,
		&classification,
		&acc.CreatedAt,
		&acc.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, mapScanError(err))
	}
	acc.Classification = domain.Classification(classification)
	return &acc, nil
}

// ListAccounts returns the full chart of accounts ordered by code.
func (r *pgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_id, code, name, classification, created_at, last_updated_at
		FROM accounts
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var acc domain.Account
		var classification string
		if err := rows.Scan(
			&acc.AccountID,
			&acc.Code,
			&acc.Name,
			&classification,
			&acc.CreatedAt,
			&acc.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning account row: %w", err)
		}
		acc.Classification = domain.Classification(classification)
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}
