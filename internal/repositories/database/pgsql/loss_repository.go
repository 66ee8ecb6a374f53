package pgsql

import (
	"context"
	"fmt"

	"github.com/aozora-dev/blue_return_app/internal/apperrors"
	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type pgxLossRepository struct {
	BaseRepository
}

func newPgxLossRepository(pool *pgxpool.Pool) portsrepo.LossRepository {
	return &pgxLossRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LossRepository = (*pgxLossRepository)(nil)

const lossSelect = `
	SELECT loss_id, loss_year, loss_amount, used_year_1, used_year_2, used_year_3,
	       memo, created_at, last_updated_at
	FROM loss_carryforward
`

// SaveLossCarryforward inserts a new loss record with empty usage slots.
func (r *pgxLossRepository) SaveLossCarryforward(ctx context.Context, loss domain.LossCarryforward) error {
	query := `
		INSERT INTO loss_carryforward (loss_id, loss_year, loss_amount, used_year_1, used_year_2,
		        used_year_3, memo, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		loss.LossID,
		loss.LossYear,
		loss.LossAmount,
		loss.UsedYear1,
		loss.UsedYear2,
		loss.UsedYear3,
		loss.Memo,
		loss.CreatedAt,
		loss.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert loss carryforward: %w", err)
	}
	return nil
}

// DeleteLossCarryforward removes a loss record by id.
func (r *pgxLossRepository) DeleteLossCarryforward(ctx context.Context, lossID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM loss_carryforward WHERE loss_id = $1;`, lossID)
	if err != nil {
		return fmt.Errorf("failed to delete loss carryforward %s: %w", lossID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindLossCarryforwardByID fetches one loss record.
func (r *pgxLossRepository) FindLossCarryforwardByID(ctx context.Context, lossID string) (*domain.LossCarryforward, error) {
	row := r.Pool.QueryRow(ctx, lossSelect+` WHERE loss_id = $1;`, lossID)
	loss, err := scanLoss(row)
	if err != nil {
		return nil, fmt.Errorf("failed to find loss carryforward %s: %w", lossID, mapScanError(err))
	}
	return loss, nil
}

// ListLossCarryforwards returns every loss record ordered by loss year.
func (r *pgxLossRepository) ListLossCarryforwards(ctx context.Context) ([]domain.LossCarryforward, error) {
	return r.queryLosses(ctx, lossSelect+` ORDER BY loss_year;`)
}

// ListLossesInYearRange returns loss records inside the inclusive year range,
// oldest first, so callers consume losses FIFO.
func (r *pgxLossRepository) ListLossesInYearRange(ctx context.Context, fromYear, toYear int) ([]domain.LossCarryforward, error) {
	query := lossSelect + `
		WHERE loss_year >= $1 AND loss_year <= $2
		ORDER BY loss_year;
	`
	return r.queryLosses(ctx, query, fromYear, toYear)
}

// UpdateLossUsage overwrites all three usage slots of one record.
func (r *pgxLossRepository) UpdateLossUsage(ctx context.Context, lossID string, usedYear1, usedYear2, usedYear3 decimal.Decimal) error {
	query := `
		UPDATE loss_carryforward
		SET used_year_1 = $1, used_year_2 = $2, used_year_3 = $3, last_updated_at = now()
		WHERE loss_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, usedYear1, usedYear2, usedYear3, lossID)
	if err != nil {
		return fmt.Errorf("failed to update loss usage %s: %w", lossID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *pgxLossRepository) queryLosses(ctx context.Context, query string, args ...any) ([]domain.LossCarryforward, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying loss carryforwards: %w", err)
	}
	defer rows.Close()

	losses := []domain.LossCarryforward{}
	for rows.Next() {
		loss, err := scanLoss(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning loss carryforward row: %w", err)
		}
		losses = append(losses, *loss)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loss carryforward rows: %w", err)
	}
	return losses, nil
}

func scanLoss(row pgx.Row) (*domain.LossCarryforward, error) {
	var l domain.LossCarryforward
	err := row.Scan(
		&l.LossID,
		&l.LossYear,
		&l.LossAmount,
		&l.UsedYear1,
		&l.UsedYear2,
		&l.UsedYear3,
		&l.Memo,
		&l.CreatedAt,
		&l.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
