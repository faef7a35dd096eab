package memstore

import (
	"sync"
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
)

// Registry is the process-lifetime ledger store: member records plus the
// club-wide aggregates, guarded by a single lock so every operation has the
// effect of a serializable transaction.
type Registry struct {
	mu         sync.RWMutex
	members    map[string]*domain.Member
	totalFunds uint64
}

func NewRegistry() *Registry {
	return &Registry{
		members: make(map[string]*domain.Member),
	}
}

func (r *Registry) CreateMember(memberID string, joinedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[memberID]; ok {
		return domain.ErrAlreadyMember
	}
	r.members[memberID] = &domain.Member{
		ID:        memberID,
		Portfolio: make(map[string]*domain.Investment),
		JoinedAt:  joinedAt,
	}
	return nil
}

// UpdateMember runs fn against a copy of the stored record and commits the
// copy only when fn returns nil, so a failed validation leaves no partial
// mutation. The balance delta of the commit is folded into totalFunds under
// the same lock, which keeps the aggregate equal to the per-member sum after
// every operation. The returned member is a snapshot of the committed state.
func (r *Registry) UpdateMember(memberID string, fn func(*domain.Member) error) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.members[memberID]
	if !ok {
		return nil, domain.ErrNotAMember
	}

	next := cloneMember(current)
	if err := fn(next); err != nil {
		return nil, err
	}

	if next.TotalBalance >= current.TotalBalance {
		r.totalFunds += next.TotalBalance - current.TotalBalance
	} else {
		r.totalFunds -= current.TotalBalance - next.TotalBalance
	}
	r.members[memberID] = next

	return cloneMember(next), nil
}

func (r *Registry) GetMember(memberID string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	member, ok := r.members[memberID]
	if !ok {
		return nil, domain.ErrNotAMember
	}
	return cloneMember(member), nil
}

func (r *Registry) GetInvestment(memberID, investmentID string) (*domain.Investment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	member, ok := r.members[memberID]
	if !ok {
		return nil, domain.ErrNotAMember
	}
	investment, ok := member.Portfolio[investmentID]
	if !ok {
		return nil, domain.ErrInvalidInvestmentID
	}
	return cloneInvestment(investment), nil
}

func (r *Registry) Totals() (*domain.RegistryTotals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &domain.RegistryTotals{
		TotalFunds:   r.totalFunds,
		TotalMembers: int64(len(r.members)),
	}, nil
}

// CheckTotals recomputes the per-member balance sum and returns it together
// with the maintained aggregate. Both values must always agree; the audit
// background task calls this as a liveness check on the invariant.
func (r *Registry) CheckTotals() (recomputed uint64, maintained uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, member := range r.members {
		recomputed += member.TotalBalance
	}
	return recomputed, r.totalFunds
}

func cloneMember(m *domain.Member) *domain.Member {
	clone := &domain.Member{
		ID:           m.ID,
		TotalBalance: m.TotalBalance,
		Portfolio:    make(map[string]*domain.Investment, len(m.Portfolio)),
		JoinedAt:     m.JoinedAt,
	}
	if len(m.WithdrawalHistory) > 0 {
		clone.WithdrawalHistory = make([]domain.WithdrawalRecord, len(m.WithdrawalHistory))
		copy(clone.WithdrawalHistory, m.WithdrawalHistory)
	}
	for id, investment := range m.Portfolio {
		clone.Portfolio[id] = cloneInvestment(investment)
	}
	return clone
}

func cloneInvestment(inv *domain.Investment) *domain.Investment {
	clone := &domain.Investment{
		ID:                inv.ID,
		Description:       inv.Description,
		InitialValue:      inv.InitialValue,
		CurrentValue:      inv.CurrentValue,
		CreatedAt:         inv.CreatedAt,
		LastDistributedAt: inv.LastDistributedAt,
	}
	if len(inv.Contributions) > 0 {
		clone.Contributions = make([]domain.Contribution, len(inv.Contributions))
		copy(clone.Contributions, inv.Contributions)
	}
	return clone
}
