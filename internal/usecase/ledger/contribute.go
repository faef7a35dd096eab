package ledger

import (
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
)

// Contribute appends a time-stamped contribution to the investment and
// bumps every dependent counter: the investment's initial and current
// value, the member's balance and the club-wide funds.
func (uc *DefaultLedgerUsecase) Contribute(memberID, investmentID string, amount uint64) (*domain.Investment, error) {
	start := time.Now()
	defer func() {
		uc.Metrics.ObserveOperationDuration("contribute", time.Since(start).Seconds())
	}()

	if amount == 0 {
		uc.Metrics.RecordError("contribute", errorLabel(domain.ErrInvalidAmount))
		return nil, domain.ErrInvalidAmount
	}

	now := uc.Clock.Now()
	_, err := uc.Repo.UpdateMember(memberID, func(member *domain.Member) error {
		investment, ok := member.Portfolio[investmentID]
		if !ok {
			return domain.ErrInvalidInvestmentID
		}
		investment.Contributions = append(investment.Contributions, domain.Contribution{
			Amount:        amount,
			ContributedAt: now,
		})
		investment.InitialValue += amount
		investment.CurrentValue += amount
		member.TotalBalance += amount
		return nil
	})
	if err != nil {
		uc.Metrics.RecordError("contribute", errorLabel(err))
		return nil, err
	}

	event := uc.emit(domain.EventInvestmentAdded, memberID, investmentID, amount, now)
	uc.Metrics.RecordContribution(memberID, amount)
	uc.syncTotals()
	uc.reconcileTransfer(memberID, uc.ClubAccountID, amount, event.OperationID)

	return uc.Repo.GetInvestment(memberID, investmentID)
}
