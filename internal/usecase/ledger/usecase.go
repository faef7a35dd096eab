package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
	"github.com/LavaJover/shvark-club-ledger/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// DefaultLedgerUsecase orchestrates the five public operations against the
// registry, with the settlement collaborator, the kafka publisher and the
// audit journal as side channels. Publisher, Journal and Settlement may be
// nil, in which case the corresponding side effect is skipped.
type DefaultLedgerUsecase struct {
	Repo       domain.LedgerRepository
	Settlement domain.SettlementPort
	Publisher  domain.LedgerEventPublisher
	Journal    domain.LedgerJournal
	Metrics    *metrics.LedgerMetrics
	Clock      domain.Clock

	// ClubAccountID is the settlement account holding pooled club funds.
	ClubAccountID string
}

func NewDefaultLedgerUsecase(
	repo domain.LedgerRepository,
	settlement domain.SettlementPort,
	eventPublisher domain.LedgerEventPublisher,
	journal domain.LedgerJournal,
	ledgerMetrics *metrics.LedgerMetrics,
	clock domain.Clock,
	clubAccountID string) *DefaultLedgerUsecase {

	if clock == nil {
		clock = domain.NewSystemClock()
	}
	return &DefaultLedgerUsecase{
		Repo:          repo,
		Settlement:    settlement,
		Publisher:     eventPublisher,
		Journal:       journal,
		Metrics:       ledgerMetrics,
		Clock:         clock,
		ClubAccountID: clubAccountID,
	}
}

// emit builds and fans out the single domain event of a committed
// operation. Publish and journal failures are logged, never propagated:
// the registry commit already happened and is authoritative.
func (uc *DefaultLedgerUsecase) emit(kind domain.LedgerEventKind, memberID, investmentID string, amount uint64, ts time.Time) domain.LedgerEvent {
	event := domain.LedgerEvent{
		EventID:      uuid.New().String(),
		OperationID:  newOperationID(),
		Kind:         kind,
		MemberID:     memberID,
		InvestmentID: investmentID,
		Amount:       amount,
		Timestamp:    ts,
	}

	if uc.Publisher != nil {
		if err := uc.Publisher.PublishLedgerEvent(event); err != nil {
			slog.Error("failed to publish ledger event",
				"kind", string(kind), "member_id", memberID, "error", err.Error())
		}
	}
	if uc.Journal != nil {
		if err := uc.Journal.LogEvent(context.Background(), event); err != nil {
			slog.Error("failed to journal ledger event",
				"kind", string(kind), "member_id", memberID, "error", err.Error())
		}
	}

	return event
}

// reconcileTransfer asks the settlement service to move the real asset
// matching a committed counter change. Failure is left for external
// reconciliation.
func (uc *DefaultLedgerUsecase) reconcileTransfer(fromID, toID string, amount uint64, operationID string) {
	if uc.Settlement == nil {
		return
	}
	if err := uc.Settlement.Transfer(fromID, toID, amount, operationID); err != nil {
		slog.Error("settlement transfer failed, left for reconciliation",
			"from", fromID, "to", toID, "amount", amount, "operation_id", operationID, "error", err.Error())
	}
}

// syncTotals refreshes the club-wide gauges after a committed mutation.
func (uc *DefaultLedgerUsecase) syncTotals() {
	totals, err := uc.Repo.Totals()
	if err != nil {
		return
	}
	uc.Metrics.SetClubTotals(totals.TotalFunds, totals.TotalMembers)
}

func newOperationID() string {
	generate, err := nanoid.Standard(15)
	if err != nil {
		return uuid.New().String()
	}
	return generate()
}

func errorLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyMember):
		return "ALREADY_MEMBER"
	case errors.Is(err, domain.ErrNotAMember):
		return "NOT_A_MEMBER"
	case errors.Is(err, domain.ErrDuplicateInvestmentID):
		return "DUPLICATE_INVESTMENT_ID"
	case errors.Is(err, domain.ErrInvalidInvestmentID):
		return "INVALID_INVESTMENT_ID"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "INVALID_AMOUNT"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "INSUFFICIENT_BALANCE"
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return "WITHDRAWAL_LIMIT_EXCEEDED"
	case errors.Is(err, domain.ErrAccountFrozen):
		return "ACCOUNT_FROZEN"
	default:
		return "INTERNAL"
	}
}
