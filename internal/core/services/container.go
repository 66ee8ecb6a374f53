package services

import (
	portsrepo "github.com/aozora-dev/blue_return_app/internal/core/ports/repositories"
	portssvc "github.com/aozora-dev/blue_return_app/internal/core/ports/services"
)

// NewServiceContainer builds every service over the repository provider.
// All services share one mutex; see BaseService.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, salesCode, purchasesCode int) *portssvc.ServiceContainer {
	base := NewBaseService()

	return &portssvc.ServiceContainer{
		Account:    NewAccountService(base, repos.AccountRepo),
		Journal:    NewJournalService(base, repos.JournalRepo, repos.AccountRepo),
		FixedAsset: NewFixedAssetService(base, repos.FixedAssetRepo),
		Rent:       NewRentService(base, repos.RentRepo),
		Loss:       NewLossService(base, repos.LossRepo),
		Statement:  NewStatementService(base, repos, salesCode, purchasesCode),
	}
}
