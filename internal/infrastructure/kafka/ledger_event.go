package publisher

import "github.com/LavaJover/shvark-club-ledger/internal/domain"

type LedgerEventMessage struct {
	EventID      string `json:"event_id"`
	OperationID  string `json:"operation_id"`
	Kind         string `json:"kind"`
	MemberID     string `json:"member_id"`
	InvestmentID string `json:"investment_id,omitempty"`
	Amount       uint64 `json:"amount"`
	Timestamp    int64  `json:"timestamp"`
}

func toLedgerEventMessage(event domain.LedgerEvent) LedgerEventMessage {
	return LedgerEventMessage{
		EventID:      event.EventID,
		OperationID:  event.OperationID,
		Kind:         string(event.Kind),
		MemberID:     event.MemberID,
		InvestmentID: event.InvestmentID,
		Amount:       event.Amount,
		Timestamp:    event.Timestamp.Unix(),
	}
}

// SettlementFreezeEvent is the payload of the settlement-events topic the
// background watcher consumes.
type SettlementFreezeEvent struct {
	MemberID string `json:"member_id"`
	Frozen   bool   `json:"frozen"`
}
