package pgsql

import (
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:    newPgxAccountRepository(pool),
		JournalRepo:    newPgxJournalRepository(pool),
		FixedAssetRepo: newPgxFixedAssetRepository(pool),
		RentRepo:       newPgxRentRepository(pool),
		LossRepo:       newPgxLossRepository(pool),
		ReportingRepo:  newPgxReportingRepository(pool),
	}
}
