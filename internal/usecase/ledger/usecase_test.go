package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
	"github.com/LavaJover/shvark-club-ledger/internal/infrastructure/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakePublisher struct {
	events []domain.LedgerEvent
}

func (p *fakePublisher) PublishLedgerEvent(event domain.LedgerEvent) error {
	p.events = append(p.events, event)
	return nil
}

type transferCall struct {
	FromID string
	ToID   string
	Amount uint64
}

type fakeSettlement struct {
	frozen    map[string]bool
	transfers []transferCall
}

func (s *fakeSettlement) Transfer(fromID, toID string, amount uint64, operationID string) error {
	s.transfers = append(s.transfers, transferCall{FromID: fromID, ToID: toID, Amount: amount})
	return nil
}

func (s *fakeSettlement) IsFrozen(memberID string) (bool, error) {
	return s.frozen[memberID], nil
}

type fakeJournal struct {
	events []domain.LedgerEvent
}

func (j *fakeJournal) LogEvent(ctx context.Context, event domain.LedgerEvent) error {
	j.events = append(j.events, event)
	return nil
}

const clubAccount = "club-pool"

func newTestLedger(clock *fakeClock) (*DefaultLedgerUsecase, *memstore.Registry, *fakePublisher, *fakeSettlement, *fakeJournal) {
	registry := memstore.NewRegistry()
	pub := &fakePublisher{}
	settlement := &fakeSettlement{frozen: make(map[string]bool)}
	journal := &fakeJournal{}
	uc := NewDefaultLedgerUsecase(registry, settlement, pub, journal, nil, clock, clubAccount)
	return uc, registry, pub, settlement, journal
}

func requireRegistryInvariant(t *testing.T, registry *memstore.Registry) {
	t.Helper()
	recomputed, maintained := registry.CheckTotals()
	require.Equal(t, recomputed, maintained, "total_funds must equal the member balance sum")
}

func TestJoin(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, registry, pub, _, journal := newTestLedger(clock)

	member, err := uc.Join("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", member.ID)
	assert.Equal(t, uint64(0), member.TotalBalance)
	assert.Equal(t, testNow, member.JoinedAt)
	assert.Empty(t, member.Portfolio)

	totals, err := uc.GetRegistryTotals()
	require.NoError(t, err)
	assert.Equal(t, int64(1), totals.TotalMembers)
	assert.Equal(t, uint64(0), totals.TotalFunds)

	require.Len(t, pub.events, 1)
	assert.Equal(t, domain.EventMembershipAdded, pub.events[0].Kind)
	assert.Equal(t, "alice", pub.events[0].MemberID)
	assert.Equal(t, uint64(0), pub.events[0].Amount)
	assert.Equal(t, testNow, pub.events[0].Timestamp)
	require.Len(t, journal.events, 1)

	_, err = uc.Join("alice")
	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	assert.Len(t, pub.events, 1, "failed join emits nothing")

	requireRegistryInvariant(t, registry)
}

func TestOpenInvestment(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, _, pub, _, _ := newTestLedger(clock)

	_, err := uc.OpenInvestment("ghost", "inv-1", "index fund")
	assert.ErrorIs(t, err, domain.ErrNotAMember)

	_, err = uc.Join("alice")
	require.NoError(t, err)

	investment, err := uc.OpenInvestment("alice", "inv-1", "index fund")
	require.NoError(t, err)
	assert.Equal(t, "inv-1", investment.ID)
	assert.Equal(t, "index fund", investment.Description)
	assert.Equal(t, uint64(0), investment.InitialValue)
	assert.Equal(t, uint64(0), investment.CurrentValue)
	assert.Equal(t, testNow, investment.CreatedAt)
	assert.Equal(t, testNow, investment.LastDistributedAt)

	_, err = uc.OpenInvestment("alice", "inv-1", "again")
	assert.ErrorIs(t, err, domain.ErrDuplicateInvestmentID)

	created := pub.events[len(pub.events)-1]
	assert.Equal(t, domain.EventInvestmentCreated, created.Kind)
	assert.Equal(t, uint64(0), created.Amount)
}

func TestContribute(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, registry, pub, settlement, _ := newTestLedger(clock)

	_, err := uc.Join("alice")
	require.NoError(t, err)
	_, err = uc.OpenInvestment("alice", "inv-1", "index fund")
	require.NoError(t, err)

	_, err = uc.Contribute("alice", "inv-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.Contribute("alice", "missing", 100)
	assert.ErrorIs(t, err, domain.ErrInvalidInvestmentID)

	_, err = uc.Contribute("ghost", "inv-1", 100)
	assert.ErrorIs(t, err, domain.ErrNotAMember)

	investment, err := uc.Contribute("alice", "inv-1", 300)
	require.NoError(t, err)
	clock.Advance(time.Hour)
	investment, err = uc.Contribute("alice", "inv-1", 200)
	require.NoError(t, err)

	assert.Equal(t, uint64(500), investment.InitialValue)
	assert.Equal(t, uint64(500), investment.CurrentValue)
	require.Len(t, investment.Contributions, 2)
	assert.Equal(t, uint64(300), investment.Contributions[0].Amount)
	assert.Equal(t, uint64(200), investment.Contributions[1].Amount)

	member, err := uc.GetMember("alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(500), member.TotalBalance)

	totals, err := uc.GetRegistryTotals()
	require.NoError(t, err)
	assert.Equal(t, uint64(500), totals.TotalFunds)

	last := pub.events[len(pub.events)-1]
	assert.Equal(t, domain.EventInvestmentAdded, last.Kind)
	assert.Equal(t, uint64(200), last.Amount)
	assert.Equal(t, clock.now, last.Timestamp)

	require.Len(t, settlement.transfers, 2)
	assert.Equal(t, transferCall{FromID: "alice", ToID: clubAccount, Amount: 200}, settlement.transfers[1])

	requireRegistryInvariant(t, registry)
}

func TestWithdrawMaturityLock(t *testing.T) {
	day := 24 * time.Hour
	clock := &fakeClock{now: testNow}
	uc, _, _, _, _ := newTestLedger(clock)

	_, err := uc.Join("alice")
	require.NoError(t, err)
	_, err = uc.OpenInvestment("alice", "inv-1", "index fund")
	require.NoError(t, err)
	_, err = uc.Contribute("alice", "inv-1", 500)
	require.NoError(t, err)

	clock.Advance(119 * day)
	_, err = uc.Withdraw("alice", "inv-1", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance, "funds one day short of maturity")

	clock.Advance(1 * day)
	member, err := uc.Withdraw("alice", "inv-1", 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(499), member.TotalBalance)
}

func TestWithdrawPeriodicCap(t *testing.T) {
	day := 24 * time.Hour
	clock := &fakeClock{now: testNow}
	uc, registry, pub, settlement, _ := newTestLedger(clock)

	_, err := uc.Join("alice")
	require.NoError(t, err)
	_, err = uc.OpenInvestment("alice", "inv-1", "index fund")
	require.NoError(t, err)
	_, err = uc.Contribute("alice", "inv-1", 1000)
	require.NoError(t, err)

	// 120 days later: everything matured, tenure 4 months, cap 18% of 1000.
	clock.Advance(120 * day)

	_, err = uc.Withdraw("alice", "inv-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.Withdraw("alice", "inv-1", 181)
	assert.ErrorIs(t, err, domain.ErrWithdrawalLimitExceeded)

	member, err := uc.Withdraw("alice", "inv-1", 180)
	require.NoError(t, err)
	assert.Equal(t, uint64(820), member.TotalBalance)
	require.Len(t, member.WithdrawalHistory, 1)
	assert.Equal(t, uint64(180), member.WithdrawalHistory[0].Amount)

	// The window still holds the first withdrawal and the cap now scales
	// with the reduced balance, so even 1 more unit is refused.
	_, err = uc.Withdraw("alice", "inv-1", 1)
	assert.ErrorIs(t, err, domain.ErrWithdrawalLimitExceeded)

	totals, err := uc.GetRegistryTotals()
	require.NoError(t, err)
	assert.Equal(t, uint64(820), totals.TotalFunds)

	last := pub.events[len(pub.events)-1]
	assert.Equal(t, domain.EventWithdrawal, last.Kind)
	assert.Equal(t, uint64(180), last.Amount)

	assert.Equal(t, transferCall{FromID: clubAccount, ToID: "alice", Amount: 180},
		settlement.transfers[len(settlement.transfers)-1])

	requireRegistryInvariant(t, registry)
}

func TestWithdrawCapIsClubWideNotPerInvestment(t *testing.T) {
	day := 24 * time.Hour
	clock := &fakeClock{now: testNow}
	uc, _, _, _, _ := newTestLedger(clock)

	_, err := uc.Join("alice")
	require.NoError(t, err)
	for _, id := range []string{"inv-1", "inv-2"} {
		_, err = uc.OpenInvestment("alice", id, "")
		require.NoError(t, err)
		_, err = uc.Contribute("alice", id, 500)
		require.NoError(t, err)
	}

	clock.Advance(120 * day)

	// Cap is 18% of the whole 1000 balance. Withdrawing against inv-1
	// consumes the same window as withdrawing against inv-2.
	_, err = uc.Withdraw("alice", "inv-1", 100)
	require.NoError(t, err)
	_, err = uc.Withdraw("alice", "inv-2", 100)
	assert.ErrorIs(t, err, domain.ErrWithdrawalLimitExceeded)
}

func TestWithdrawFrozenAccount(t *testing.T) {
	day := 24 * time.Hour
	clock := &fakeClock{now: testNow}
	uc, _, pub, settlement, _ := newTestLedger(clock)

	_, err := uc.Join("alice")
	require.NoError(t, err)
	_, err = uc.OpenInvestment("alice", "inv-1", "")
	require.NoError(t, err)
	_, err = uc.Contribute("alice", "inv-1", 1000)
	require.NoError(t, err)
	clock.Advance(120 * day)

	settlement.frozen["alice"] = true
	eventsBefore := len(pub.events)

	_, err = uc.Withdraw("alice", "inv-1", 10)
	assert.ErrorIs(t, err, domain.ErrAccountFrozen)
	assert.Len(t, pub.events, eventsBefore, "refused withdrawal emits nothing")

	member, err := uc.GetMember("alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), member.TotalBalance)
	assert.Empty(t, member.WithdrawalHistory)
}

func TestDistributeProfits(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, registry, pub, _, _ := newTestLedger(clock)

	_, err := uc.Join("alice")
	require.NoError(t, err)
	_, err = uc.OpenInvestment("alice", "inv-1", "")
	require.NoError(t, err)

	_, err = uc.Contribute("alice", "inv-1", 100)
	require.NoError(t, err)
	clock.Advance(5 * time.Second)
	_, err = uc.Contribute("alice", "inv-1", 300)
	require.NoError(t, err)
	clock.Advance(5 * time.Second)

	// Ages 10s and 5s: weights 1000 and 1500.
	shares, err := uc.DistributeProfits("alice", "inv-1", 100)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, uint64(40), shares[0].Amount)
	assert.Equal(t, uint64(60), shares[1].Amount)

	investment, err := uc.GetInvestment("alice", "inv-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(400), investment.InitialValue, "distribution never touches initial value")
	assert.Equal(t, uint64(500), investment.CurrentValue)
	assert.Len(t, investment.Contributions, 2, "shares are not re-invested as contributions")
	assert.Equal(t, clock.now, investment.LastDistributedAt)

	member, err := uc.GetMember("alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(500), member.TotalBalance)

	last := pub.events[len(pub.events)-1]
	assert.Equal(t, domain.EventProfitDistributed, last.Kind)
	assert.Equal(t, uint64(100), last.Amount)

	// Truncating split: only 6 of 7 units land.
	shares, err = uc.DistributeProfits("alice", "inv-1", 7)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, uint64(2), shares[0].Amount)
	assert.Equal(t, uint64(4), shares[1].Amount)

	member, err = uc.GetMember("alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(506), member.TotalBalance)

	last = pub.events[len(pub.events)-1]
	assert.Equal(t, uint64(6), last.Amount, "event carries the distributed sum, not the requested profit")

	requireRegistryInvariant(t, registry)
}

func TestDistributeProfitsValidation(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, _, pub, _, _ := newTestLedger(clock)

	_, err := uc.Join("alice")
	require.NoError(t, err)
	_, err = uc.OpenInvestment("alice", "inv-1", "")
	require.NoError(t, err)

	_, err = uc.DistributeProfits("alice", "inv-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.DistributeProfits("alice", "missing", 100)
	assert.ErrorIs(t, err, domain.ErrInvalidInvestmentID)

	_, err = uc.DistributeProfits("ghost", "inv-1", 100)
	assert.ErrorIs(t, err, domain.ErrNotAMember)

	eventsBefore := len(pub.events)

	// No contributions yet: a silent no-op.
	shares, err := uc.DistributeProfits("alice", "inv-1", 100)
	require.NoError(t, err)
	assert.Nil(t, shares)
	assert.Len(t, pub.events, eventsBefore)

	// All weight at exactly now is also a no-op.
	_, err = uc.Contribute("alice", "inv-1", 500)
	require.NoError(t, err)
	eventsBefore = len(pub.events)
	shares, err = uc.DistributeProfits("alice", "inv-1", 100)
	require.NoError(t, err)
	assert.Nil(t, shares)
	assert.Len(t, pub.events, eventsBefore)

	member, err := uc.GetMember("alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(500), member.TotalBalance, "no-op distribution changes nothing")
}

func TestDistributeProfitsIsScopedToOneMember(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, registry, _, _, _ := newTestLedger(clock)

	for _, id := range []string{"alice", "bob"} {
		_, err := uc.Join(id)
		require.NoError(t, err)
		_, err = uc.OpenInvestment(id, "inv-1", "")
		require.NoError(t, err)
		_, err = uc.Contribute(id, "inv-1", 1000)
		require.NoError(t, err)
	}
	clock.Advance(time.Hour)

	_, err := uc.DistributeProfits("alice", "inv-1", 100)
	require.NoError(t, err)

	alice, err := uc.GetMember("alice")
	require.NoError(t, err)
	bob, err := uc.GetMember("bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(1100), alice.TotalBalance)
	assert.Equal(t, uint64(1000), bob.TotalBalance, "profit never spreads to other members")

	requireRegistryInvariant(t, registry)
}

func TestRegistryTotalsSnapshotIsStable(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, _, _, _, _ := newTestLedger(clock)

	_, err := uc.Join("alice")
	require.NoError(t, err)
	_, err = uc.OpenInvestment("alice", "inv-1", "")
	require.NoError(t, err)
	_, err = uc.Contribute("alice", "inv-1", 250)
	require.NoError(t, err)

	first, err := uc.GetRegistryTotals()
	require.NoError(t, err)
	second, err := uc.GetRegistryTotals()
	require.NoError(t, err)
	assert.Equal(t, first, second, "replayed reads with no writes in between are identical")
}

func TestEveryCommitEmitsExactlyOneEvent(t *testing.T) {
	day := 24 * time.Hour
	clock := &fakeClock{now: testNow}
	uc, _, pub, _, journal := newTestLedger(clock)

	_, err := uc.Join("alice")
	require.NoError(t, err)
	_, err = uc.OpenInvestment("alice", "inv-1", "")
	require.NoError(t, err)
	_, err = uc.Contribute("alice", "inv-1", 1000)
	require.NoError(t, err)
	clock.Advance(120 * day)
	_, err = uc.Withdraw("alice", "inv-1", 50)
	require.NoError(t, err)
	_, err = uc.DistributeProfits("alice", "inv-1", 10)
	require.NoError(t, err)

	kinds := make([]domain.LedgerEventKind, 0, len(pub.events))
	for _, event := range pub.events {
		kinds = append(kinds, event.Kind)
	}
	assert.Equal(t, []domain.LedgerEventKind{
		domain.EventMembershipAdded,
		domain.EventInvestmentCreated,
		domain.EventInvestmentAdded,
		domain.EventWithdrawal,
		domain.EventProfitDistributed,
	}, kinds)
	assert.Len(t, journal.events, len(pub.events), "journal and stream see the same events")
}
