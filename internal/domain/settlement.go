package domain

// SettlementPort is the settlement-asset collaborator: the fungible balance
// store that actually holds club funds. The ledger only tracks entitlement
// counters; real asset movement is reconciled against this service after
// the fact and never rolls a committed operation back.
type SettlementPort interface {
	Transfer(fromID, toID string, amount uint64, operationID string) error
	IsFrozen(memberID string) (bool, error)
}
