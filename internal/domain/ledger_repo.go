package domain

import "time"

// LedgerRepository is the registry store port. Every method is atomic:
// UpdateMember applies fn transactionally, so a failed validation inside fn
// commits nothing. Reads return snapshots detached from the live registry.
type LedgerRepository interface {
	CreateMember(memberID string, joinedAt time.Time) error
	UpdateMember(memberID string, fn func(*Member) error) (*Member, error)
	GetMember(memberID string) (*Member, error)
	GetInvestment(memberID, investmentID string) (*Investment, error)
	Totals() (*RegistryTotals, error)
}
