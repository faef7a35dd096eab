package logger

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
	"gorm.io/gorm"
)

// LedgerOperationEvent is one committed operation in the persistent audit
// journal. The in-memory registry stays authoritative; this table is an
// append-only trail, never read back by the core.
type LedgerOperationEvent struct {
	ID           uint `gorm:"primaryKey"`
	EventID      string
	OperationID  string
	Kind         string
	MemberID     string
	InvestmentID string
	Amount       uint64
	Timestamp    time.Time
}

type PGLedgerJournal struct {
	db *gorm.DB
}

func NewPGLedgerJournal(db *gorm.DB) *PGLedgerJournal {
	return &PGLedgerJournal{db: db}
}

func (l *PGLedgerJournal) LogEvent(ctx context.Context, event domain.LedgerEvent) error {
	row := LedgerOperationEvent{
		EventID:      event.EventID,
		OperationID:  event.OperationID,
		Kind:         string(event.Kind),
		MemberID:     event.MemberID,
		InvestmentID: event.InvestmentID,
		Amount:       event.Amount,
		Timestamp:    event.Timestamp,
	}
	return l.db.WithContext(ctx).Create(&row).Error
}
