package ledger

import (
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
)

// Join registers a new zero-balance member. Members are never deleted, so a
// second Join for the same identity always fails with ErrAlreadyMember.
func (uc *DefaultLedgerUsecase) Join(memberID string) (*domain.Member, error) {
	start := time.Now()
	defer func() {
		uc.Metrics.ObserveOperationDuration("join", time.Since(start).Seconds())
	}()

	now := uc.Clock.Now()
	if err := uc.Repo.CreateMember(memberID, now); err != nil {
		uc.Metrics.RecordError("join", errorLabel(err))
		return nil, err
	}

	uc.emit(domain.EventMembershipAdded, memberID, "", 0, now)
	uc.Metrics.RecordMemberJoined()
	uc.syncTotals()

	return uc.Repo.GetMember(memberID)
}
