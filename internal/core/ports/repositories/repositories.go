package repositories

// RepositoryProvider aggregates all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	AccountRepo    AccountRepository
	JournalRepo    JournalRepository
	FixedAssetRepo FixedAssetRepository
	RentRepo       RentRepository
	LossRepo       LossRepository
	ReportingRepo  ReportingRepository
}
