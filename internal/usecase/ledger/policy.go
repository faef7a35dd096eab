package ledger

import (
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
)

// MaxWithdrawalPerPeriod is the tenure-scaled cap: 10% of the member's total
// balance plus 2% per full 30-day month of membership. The percentage is
// deliberately not clamped, so long tenure can push it past 100.
func MaxWithdrawalPerPeriod(member *domain.Member, now time.Time) uint64 {
	tenureMonths := uint64(now.Sub(member.JoinedAt) / domain.TenureMonth)
	percentage := uint64(domain.BaseWithdrawalPercent) + uint64(domain.PercentPerTenureMonth)*tenureMonths
	return member.TotalBalance * percentage / 100
}

// WithdrawnInCurrentPeriod sums every withdrawal inside the trailing
// 60-day window. The full history is rescanned each call, so the window
// self-corrects as records age out; no counter is maintained.
func WithdrawnInCurrentPeriod(member *domain.Member, now time.Time) uint64 {
	cutoff := now.Add(-domain.WithdrawalPeriod)
	var withdrawn uint64
	for _, record := range member.WithdrawalHistory {
		if !record.WithdrawnAt.Before(cutoff) {
			withdrawn += record.Amount
		}
	}
	return withdrawn
}
