package ledger

import (
	"math/bits"
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
)

// AvailableBalance sums every contribution across the member's portfolio
// that has passed the maturity lock. Younger contributions carry no partial
// credit. Full rescan on every call: locked value becomes available purely
// through elapsed time, so nothing is cached.
func AvailableBalance(member *domain.Member, now time.Time) uint64 {
	var available uint64
	for _, investment := range member.Portfolio {
		for _, contribution := range investment.Contributions {
			if now.Sub(contribution.ContributedAt) >= domain.MinLockPeriod {
				available += contribution.Amount
			}
		}
	}
	return available
}

// ProfitShares splits profit across an investment's contributions in
// proportion to amount × age, one share per contribution in contribution
// order. Shares use floor division, so up to len(contributions)-1 units of
// profit may remain undistributed; that residue stays where it is and is
// never spread. Returns nil when there is nothing to split: zero profit, no
// contributions, or zero total weight (every contribution made at now).
func ProfitShares(investment *domain.Investment, profit uint64, now time.Time) []domain.ProfitShare {
	if profit == 0 || len(investment.Contributions) == 0 {
		return nil
	}

	weights := make([]uint64, len(investment.Contributions))
	var totalWeight uint64
	for i, contribution := range investment.Contributions {
		age := now.Sub(contribution.ContributedAt)
		if age < 0 {
			age = 0
		}
		weights[i] = contribution.Amount * uint64(age/time.Second)
		totalWeight += weights[i]
	}
	if totalWeight == 0 {
		return nil
	}

	shares := make([]domain.ProfitShare, len(weights))
	for i, weight := range weights {
		// profit × weight can exceed 64 bits; the quotient never does
		// because weight <= totalWeight.
		hi, lo := bits.Mul64(profit, weight)
		share, _ := bits.Div64(hi, lo, totalWeight)
		shares[i] = domain.ProfitShare{ContributionIndex: i, Amount: share}
	}
	return shares
}
