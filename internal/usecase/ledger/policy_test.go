package ledger

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMaxWithdrawalPerPeriod(t *testing.T) {
	day := 24 * time.Hour

	tests := []struct {
		name     string
		balance  uint64
		joinedAt time.Time
		want     uint64
	}{
		{
			name:     "fresh member gets the 10 percent base",
			balance:  1000,
			joinedAt: testNow,
			want:     100,
		},
		{
			name:     "29 days is still tenure zero",
			balance:  1000,
			joinedAt: testNow.Add(-29 * day),
			want:     100,
		},
		{
			name:     "five tenure months add 10 percent",
			balance:  1000,
			joinedAt: testNow.Add(-5 * 30 * day),
			want:     200,
		},
		{
			name:     "45 months reach exactly 100 percent",
			balance:  1000,
			joinedAt: testNow.Add(-45 * 30 * day),
			want:     1000,
		},
		{
			name:     "long tenure pushes the cap past the whole balance",
			balance:  1000,
			joinedAt: testNow.Add(-50 * 30 * day),
			want:     1100,
		},
		{
			name:     "floor division on the percentage product",
			balance:  999,
			joinedAt: testNow,
			want:     99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := &domain.Member{
				ID:           "member-1",
				TotalBalance: tt.balance,
				JoinedAt:     tt.joinedAt,
			}
			assert.Equal(t, tt.want, MaxWithdrawalPerPeriod(member, testNow))
		})
	}
}

func TestWithdrawnInCurrentPeriod(t *testing.T) {
	day := 24 * time.Hour
	member := &domain.Member{
		ID: "member-1",
		WithdrawalHistory: []domain.WithdrawalRecord{
			{Amount: 40, WithdrawnAt: testNow.Add(-61 * day)},
			{Amount: 25, WithdrawnAt: testNow.Add(-60 * day)},
			{Amount: 10, WithdrawnAt: testNow.Add(-1 * day)},
		},
	}

	// The record exactly at the window edge still counts; the older one
	// has aged out.
	assert.Equal(t, uint64(35), WithdrawnInCurrentPeriod(member, testNow))
}

func TestWithdrawnInCurrentPeriodSelfCorrects(t *testing.T) {
	day := 24 * time.Hour
	member := &domain.Member{
		ID: "member-1",
		WithdrawalHistory: []domain.WithdrawalRecord{
			{Amount: 100, WithdrawnAt: testNow.Add(-59 * day)},
		},
	}

	assert.Equal(t, uint64(100), WithdrawnInCurrentPeriod(member, testNow))
	assert.Equal(t, uint64(0), WithdrawnInCurrentPeriod(member, testNow.Add(2*day)),
		"the same record falls out of the window two days later")
}
