package pgsql

import (
	"context"
	"fmt"

	"github.com/aozora-dev/blue_return_app/internal/core/domain"
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the read-only period aggregation queries
// the statement composers are built on.
type reportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// AccountPeriodTotals sums both legs per account over the inclusive period.
// entry_date is TEXT so the bound comparison is lexicographic; the month
// upper bound "-31" relies on that. Accounts with no activity are dropped
// by the HAVING clause.
func (r *reportingRepository) AccountPeriodTotals(ctx context.Context, period domain.Period, classifications []domain.Classification) ([]domain.AccountPeriodTotal, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.classification,
		       COALESCE(SUM(CASE WHEN j.debit_account_id = a.account_id THEN j.debit_amount ELSE 0 END), 0) AS debit_total,
		       COALESCE(SUM(CASE WHEN j.credit_account_id = a.account_id THEN j.credit_amount ELSE 0 END), 0) AS credit_total
		FROM accounts a
		LEFT JOIN journal_entries j ON (j.debit_account_id = a.account_id OR j.credit_account_id = a.account_id)
		    AND j.entry_date >= $1 AND j.entry_date <= $2
		WHERE ($3::text[] IS NULL OR a.classification = ANY($3))
		GROUP BY a.account_id, a.code, a.name, a.classification
		HAVING COALESCE(SUM(CASE WHEN j.debit_account_id = a.account_id THEN j.debit_amount ELSE 0 END), 0) > 0
		    OR COALESCE(SUM(CASE WHEN j.credit_account_id = a.account_id THEN j.credit_amount ELSE 0 END), 0) > 0
		ORDER BY a.code;
	`

	var filter []string
	for _, c := range classifications {
		filter = append(filter, string(c))
	}

	rows, err := r.Pool.Query(ctx, query, period.From, period.To, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying account period totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.AccountPeriodTotal{}
	for rows.Next() {
		var t domain.AccountPeriodTotal
		var classification string
		if err := rows.Scan(
			&t.AccountID,
			&t.AccountCode,
			&t.AccountName,
			&classification,
			&t.DebitTotal,
			&t.CreditTotal,
		); err != nil {
			return nil, fmt.Errorf("error scanning account period total row: %w", err)
		}
		t.Classification = domain.Classification(classification)
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account period total rows: %w", err)
	}
	return totals, nil
}

// MonthlySalesPurchases buckets sales (credit leg on the sales code) and
// purchases (debit leg on the purchases code) by entry month. Only months
// with activity come back; the service layer zero-fills the rest.
func (r *reportingRepository) MonthlySalesPurchases(ctx context.Context, period domain.Period, salesCode, purchasesCode int) ([]domain.MonthlySalesPurchase, error) {
	query := `
		SELECT CAST(substr(j.entry_date, 6, 2) AS INTEGER) AS month,
		       COALESCE(SUM(CASE WHEN ca.code = $3 THEN j.credit_amount ELSE 0 END), 0) AS sales,
		       COALESCE(SUM(CASE WHEN da.code = $4 THEN j.debit_amount ELSE 0 END), 0) AS purchases
		FROM journal_entries j
		JOIN accounts da ON da.account_id = j.debit_account_id
		JOIN accounts ca ON ca.account_id = j.credit_account_id
		WHERE j.entry_date >= $1 AND j.entry_date <= $2
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, period.From, period.To, salesCode, purchasesCode)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly sales and purchases: %w", err)
	}
	defer rows.Close()

	months := []domain.MonthlySalesPurchase{}
	for rows.Next() {
		var m domain.MonthlySalesPurchase
		if err := rows.Scan(&m.Month, &m.Sales, &m.Purchases); err != nil {
			return nil, fmt.Errorf("error scanning monthly sales and purchases row: %w", err)
		}
		months = append(months, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly sales and purchases rows: %w", err)
	}
	return months, nil
}
