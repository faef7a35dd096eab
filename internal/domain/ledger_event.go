package domain

import (
	"context"
	"time"
)

type LedgerEventKind string

const (
	EventMembershipAdded   LedgerEventKind = "MEMBERSHIP_ADDED"
	EventInvestmentCreated LedgerEventKind = "INVESTMENT_CREATED"
	EventInvestmentAdded   LedgerEventKind = "INVESTMENT_ADDED"
	EventWithdrawal        LedgerEventKind = "WITHDRAWAL"
	EventProfitDistributed LedgerEventKind = "PROFIT_DISTRIBUTED"
)

// LedgerEvent is emitted exactly once per committed operation. Amount and
// Timestamp always match the state delta the operation applied.
type LedgerEvent struct {
	EventID      string
	OperationID  string
	Kind         LedgerEventKind
	MemberID     string
	InvestmentID string
	Amount       uint64
	Timestamp    time.Time
}

type LedgerEventPublisher interface {
	PublishLedgerEvent(event LedgerEvent) error
}

// LedgerJournal is the persistent audit sink for committed operations.
type LedgerJournal interface {
	LogEvent(ctx context.Context, event LedgerEvent) error
}
