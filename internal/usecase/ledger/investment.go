package ledger

import (
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
)

// OpenInvestment inserts a zero-value investment into the member's
// portfolio. Investment ids are unique per member and immutable.
func (uc *DefaultLedgerUsecase) OpenInvestment(memberID, investmentID, description string) (*domain.Investment, error) {
	start := time.Now()
	defer func() {
		uc.Metrics.ObserveOperationDuration("open_investment", time.Since(start).Seconds())
	}()

	now := uc.Clock.Now()
	_, err := uc.Repo.UpdateMember(memberID, func(member *domain.Member) error {
		if _, ok := member.Portfolio[investmentID]; ok {
			return domain.ErrDuplicateInvestmentID
		}
		member.Portfolio[investmentID] = &domain.Investment{
			ID:                investmentID,
			Description:       description,
			CreatedAt:         now,
			LastDistributedAt: now,
		}
		return nil
	})
	if err != nil {
		uc.Metrics.RecordError("open_investment", errorLabel(err))
		return nil, err
	}

	uc.emit(domain.EventInvestmentCreated, memberID, investmentID, 0, now)
	uc.Metrics.RecordInvestmentOpened(memberID)

	return uc.Repo.GetInvestment(memberID, investmentID)
}
