package pgsql

import (
	"context"
	"fmt"

	"github.com/aozora-dev/blue_return_app/internal/apperrors"
	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxRentRepository struct {
	BaseRepository
}

func newPgxRentRepository(pool *pgxpool.Pool) portsrepo.RentRepository {
	return &pgxRentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RentRepository = (*pgxRentRepository)(nil)

// SaveRentDetail inserts a new rent-expense line.
func (r *pgxRentRepository) SaveRentDetail(ctx context.Context, rent domain.RentDetail) error {
	query := `
		INSERT INTO rent_details (rent_id, payee_address, payee_name, rent_type, monthly_rent,
		        annual_total, business_ratio, memo, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		rent.RentID,
		rent.PayeeAddress,
		rent.PayeeName,
		rent.RentType,
		rent.MonthlyRent,
		rent.AnnualTotal,
		rent.BusinessRatio,
		rent.Memo,
		rent.CreatedAt,
		rent.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rent detail: %w", err)
	}
	return nil
}

// DeleteRentDetail removes a rent line by id.
func (r *pgxRentRepository) DeleteRentDetail(ctx context.Context, rentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM rent_details WHERE rent_id = $1;`, rentID)
	if err != nil {
		return fmt.Errorf("failed to delete rent detail %s: %w", rentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListRentDetails returns every rent line in creation order.
func (r *pgxRentRepository) ListRentDetails(ctx context.Context) ([]domain.RentDetail, error) {
	query := `
		SELECT rent_id, payee_address, payee_name, rent_type, monthly_rent,
		       annual_total, business_ratio, memo, created_at, last_updated_at
		FROM rent_details
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying rent details: %w", err)
	}
	defer rows.Close()

	rents := []domain.RentDetail{}
	for rows.Next() {
		var d domain.RentDetail
		if err := rows.Scan(
			&d.RentID,
			&d.PayeeAddress,
			&d.PayeeName,
			&d.RentType,
			&d.MonthlyRent,
			&d.AnnualTotal,
			&d.BusinessRatio,
			&d.Memo,
			&d.CreatedAt,
			&d.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning rent detail row: %w", err)
		}
		rents = append(rents, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rent detail rows: %w", err)
	}
	return rents, nil
}
