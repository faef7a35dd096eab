package domain

type LedgerUsecase interface {
	Join(memberID string) (*Member, error)
	OpenInvestment(memberID, investmentID, description string) (*Investment, error)
	Contribute(memberID, investmentID string, amount uint64) (*Investment, error)
	Withdraw(memberID, investmentID string, amount uint64) (*Member, error)
	DistributeProfits(memberID, investmentID string, profit uint64) ([]ProfitShare, error)

	GetMember(memberID string) (*Member, error)
	GetInvestment(memberID, investmentID string) (*Investment, error)
	GetRegistryTotals() (*RegistryTotals, error)
}
