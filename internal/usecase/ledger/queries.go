package ledger

import "github.com/LavaJover/shvark-club-ledger/internal/domain"

func (uc *DefaultLedgerUsecase) GetMember(memberID string) (*domain.Member, error) {
	return uc.Repo.GetMember(memberID)
}

func (uc *DefaultLedgerUsecase) GetInvestment(memberID, investmentID string) (*domain.Investment, error) {
	return uc.Repo.GetInvestment(memberID, investmentID)
}

func (uc *DefaultLedgerUsecase) GetRegistryTotals() (*domain.RegistryTotals, error) {
	return uc.Repo.Totals()
}
