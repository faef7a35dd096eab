package ledger

import (
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
)

// DistributeProfits splits profit across the calling member's own
// investment, weighted by contribution amount × age. Scope is strictly the
// single member: shares raise that member's balance and the investment's
// current value, nothing spreads to other club members. Shares do not
// become contributions, so distributed profit carries no weight in later
// distributions. An investment with no contributions or zero total weight
// distributes nothing and emits nothing.
func (uc *DefaultLedgerUsecase) DistributeProfits(memberID, investmentID string, profit uint64) ([]domain.ProfitShare, error) {
	start := time.Now()
	defer func() {
		uc.Metrics.ObserveOperationDuration("distribute_profits", time.Since(start).Seconds())
	}()

	if profit == 0 {
		uc.Metrics.RecordError("distribute_profits", errorLabel(domain.ErrInvalidAmount))
		return nil, domain.ErrInvalidAmount
	}

	now := uc.Clock.Now()
	var shares []domain.ProfitShare
	var distributed uint64
	_, err := uc.Repo.UpdateMember(memberID, func(member *domain.Member) error {
		investment, ok := member.Portfolio[investmentID]
		if !ok {
			return domain.ErrInvalidInvestmentID
		}

		shares = ProfitShares(investment, profit, now)
		if len(shares) == 0 {
			return nil
		}

		for _, share := range shares {
			distributed += share.Amount
		}
		investment.CurrentValue += distributed
		investment.LastDistributedAt = now
		member.TotalBalance += distributed
		return nil
	})
	if err != nil {
		uc.Metrics.RecordError("distribute_profits", errorLabel(err))
		return nil, err
	}
	if len(shares) == 0 {
		return nil, nil
	}

	uc.emit(domain.EventProfitDistributed, memberID, investmentID, distributed, now)
	uc.Metrics.RecordProfitDistributed(memberID, distributed, profit-distributed)
	uc.syncTotals()

	return shares, nil
}
