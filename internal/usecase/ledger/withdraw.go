package ledger

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
)

// Withdraw pays out matured funds. The maturity lock and the periodic cap
// are both checked against the member's whole balance, not the single
// investment named in the request: the investment id only travels into the
// emitted event. A frozen settlement account refuses the payout before any
// validation against the registry.
func (uc *DefaultLedgerUsecase) Withdraw(memberID, investmentID string, amount uint64) (*domain.Member, error) {
	start := time.Now()
	defer func() {
		uc.Metrics.ObserveOperationDuration("withdraw", time.Since(start).Seconds())
	}()

	if amount == 0 {
		uc.Metrics.RecordError("withdraw", errorLabel(domain.ErrInvalidAmount))
		return nil, domain.ErrInvalidAmount
	}

	if _, err := uc.Repo.GetMember(memberID); err != nil {
		uc.Metrics.RecordError("withdraw", errorLabel(err))
		return nil, err
	}

	if uc.Settlement != nil {
		frozen, err := uc.Settlement.IsFrozen(memberID)
		if err != nil {
			uc.Metrics.RecordError("withdraw", "SETTLEMENT_UNAVAILABLE")
			return nil, fmt.Errorf("settlement freeze check: %w", err)
		}
		if frozen {
			uc.Metrics.RecordWithdrawalRejected(memberID, errorLabel(domain.ErrAccountFrozen))
			return nil, domain.ErrAccountFrozen
		}
	}

	now := uc.Clock.Now()
	member, err := uc.Repo.UpdateMember(memberID, func(member *domain.Member) error {
		available := AvailableBalance(member, now)
		if amount > available {
			return domain.ErrInsufficientBalance
		}

		limit := MaxWithdrawalPerPeriod(member, now)
		used := WithdrawnInCurrentPeriod(member, now)
		if used+amount > limit {
			return domain.ErrWithdrawalLimitExceeded
		}

		member.TotalBalance -= amount
		member.WithdrawalHistory = append(member.WithdrawalHistory, domain.WithdrawalRecord{
			Amount:      amount,
			WithdrawnAt: now,
		})
		return nil
	})
	if err != nil {
		uc.Metrics.RecordError("withdraw", errorLabel(err))
		uc.Metrics.RecordWithdrawalRejected(memberID, errorLabel(err))
		return nil, err
	}

	event := uc.emit(domain.EventWithdrawal, memberID, investmentID, amount, now)
	uc.Metrics.RecordWithdrawal(memberID, amount)
	uc.syncTotals()
	uc.reconcileTransfer(uc.ClubAccountID, memberID, amount, event.OperationID)

	return member, nil
}
