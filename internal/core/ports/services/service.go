package services

// ServiceContainer aggregates all service implementations for injection into
// the handler layer.
type ServiceContainer struct {
	Account    AccountSvc
	Journal    JournalSvc
	FixedAsset FixedAssetSvc
	Rent       RentSvc
	Loss       LossSvc
	Statement  StatementSvc
}
