package domain

import "time"

const (
	// MinLockPeriod is the maturity lock: a contribution becomes
	// withdrawable only once it is at least this old.
	MinLockPeriod = 120 * 24 * time.Hour

	// WithdrawalPeriod is the trailing window the periodic cap applies to.
	WithdrawalPeriod = 60 * 24 * time.Hour

	// TenureMonth is the 30-day month the withdrawal cap scales with.
	TenureMonth = 30 * 24 * time.Hour

	BaseWithdrawalPercent = 10
	PercentPerTenureMonth = 2
)

// Contribution is a single time-stamped deposit into an investment.
// Immutable once recorded.
type Contribution struct {
	Amount        uint64
	ContributedAt time.Time
}

// WithdrawalRecord is one committed withdrawal. Append-only.
type WithdrawalRecord struct {
	Amount      uint64
	WithdrawnAt time.Time
}

type Investment struct {
	ID                string
	Description       string
	Contributions     []Contribution
	InitialValue      uint64
	CurrentValue      uint64
	CreatedAt         time.Time
	LastDistributedAt time.Time
}

type Member struct {
	ID                string
	TotalBalance      uint64
	Portfolio         map[string]*Investment
	JoinedAt          time.Time
	WithdrawalHistory []WithdrawalRecord
}

// RegistryTotals is the club-wide aggregate snapshot. TotalFunds always
// equals the sum of every member's TotalBalance.
type RegistryTotals struct {
	TotalFunds   uint64
	TotalMembers int64
}

// ProfitShare is one contribution's slice of a distributed profit.
type ProfitShare struct {
	ContributionIndex int
	Amount            uint64
}
