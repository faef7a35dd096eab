package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LedgerMetrics contains all prometheus collectors for ledger operations.
// A nil *LedgerMetrics is a valid no-op instance, which keeps tests free of
// duplicate registrations on the default registry.
type LedgerMetrics struct {
	MembersJoinedTotal prometheus.Counter

	InvestmentsOpenedTotal prometheus.CounterVec

	ContributionsTotal       prometheus.CounterVec
	ContributionsAmountTotal prometheus.CounterVec

	WithdrawalsTotal         prometheus.CounterVec
	WithdrawalsAmountTotal   prometheus.CounterVec
	WithdrawalsRejectedTotal prometheus.CounterVec

	ProfitDistributedTotal       prometheus.CounterVec
	ProfitDistributedAmountTotal prometheus.CounterVec
	ProfitResidueTotal           prometheus.CounterVec

	LedgerErrorsTotal prometheus.CounterVec

	ClubFundsGauge      prometheus.Gauge
	ClubMembersGauge    prometheus.Gauge
	FrozenAccountsGauge prometheus.Gauge

	RegistryAuditMismatchTotal prometheus.Counter

	OperationDuration prometheus.HistogramVec
}

func NewLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		MembersJoinedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_members_joined_total",
				Help: "Total number of members registered in the club",
			},
		),

		InvestmentsOpenedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_investments_opened_total",
				Help: "Total number of investments opened",
			},
			[]string{"member_id"},
		),

		ContributionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_contributions_total",
				Help: "Total number of committed contributions",
			},
			[]string{"member_id"},
		),

		ContributionsAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_contributions_amount_total",
				Help: "Total contributed value in settlement units",
			},
			[]string{"member_id"},
		),

		WithdrawalsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_withdrawals_total",
				Help: "Total number of committed withdrawals",
			},
			[]string{"member_id"},
		),

		WithdrawalsAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_withdrawals_amount_total",
				Help: "Total withdrawn value in settlement units",
			},
			[]string{"member_id"},
		),

		WithdrawalsRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_withdrawals_rejected_total",
				Help: "Withdrawals refused before commit, by reason",
			},
			[]string{"member_id", "reason"},
		),

		ProfitDistributedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_profit_distributed_total",
				Help: "Total number of committed profit distributions",
			},
			[]string{"member_id"},
		),

		ProfitDistributedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_profit_distributed_amount_total",
				Help: "Total distributed profit in settlement units",
			},
			[]string{"member_id"},
		),

		ProfitResidueTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_profit_residue_total",
				Help: "Profit units lost to floor division and never distributed",
			},
			[]string{"member_id"},
		),

		LedgerErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_errors_total",
				Help: "Failed ledger operations by operation and error type",
			},
			[]string{"operation", "error_type"},
		),

		ClubFundsGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_club_funds",
				Help: "Current club-wide total funds",
			},
		),

		ClubMembersGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_club_members",
				Help: "Current number of registered members",
			},
		),

		FrozenAccountsGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_frozen_accounts",
				Help: "Settlement accounts currently known to be frozen",
			},
		),

		RegistryAuditMismatchTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_registry_audit_mismatch_total",
				Help: "Registry audits that found total_funds diverging from the member sum",
			},
		),

		OperationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_seconds",
				Help:    "Ledger operation latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
			},
			[]string{"operation"},
		),
	}
}

func (m *LedgerMetrics) RecordMemberJoined() {
	if m == nil {
		return
	}
	m.MembersJoinedTotal.Inc()
}

func (m *LedgerMetrics) RecordInvestmentOpened(memberID string) {
	if m == nil {
		return
	}
	m.InvestmentsOpenedTotal.WithLabelValues(memberID).Inc()
}

func (m *LedgerMetrics) RecordContribution(memberID string, amount uint64) {
	if m == nil {
		return
	}
	m.ContributionsTotal.WithLabelValues(memberID).Inc()
	m.ContributionsAmountTotal.WithLabelValues(memberID).Add(float64(amount))
}

func (m *LedgerMetrics) RecordWithdrawal(memberID string, amount uint64) {
	if m == nil {
		return
	}
	m.WithdrawalsTotal.WithLabelValues(memberID).Inc()
	m.WithdrawalsAmountTotal.WithLabelValues(memberID).Add(float64(amount))
}

func (m *LedgerMetrics) RecordWithdrawalRejected(memberID, reason string) {
	if m == nil {
		return
	}
	m.WithdrawalsRejectedTotal.WithLabelValues(memberID, reason).Inc()
}

func (m *LedgerMetrics) RecordProfitDistributed(memberID string, distributed, residue uint64) {
	if m == nil {
		return
	}
	m.ProfitDistributedTotal.WithLabelValues(memberID).Inc()
	m.ProfitDistributedAmountTotal.WithLabelValues(memberID).Add(float64(distributed))
	m.ProfitResidueTotal.WithLabelValues(memberID).Add(float64(residue))
}

func (m *LedgerMetrics) RecordError(operation, errorType string) {
	if m == nil {
		return
	}
	m.LedgerErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

func (m *LedgerMetrics) SetClubTotals(totalFunds uint64, totalMembers int64) {
	if m == nil {
		return
	}
	m.ClubFundsGauge.Set(float64(totalFunds))
	m.ClubMembersGauge.Set(float64(totalMembers))
}

func (m *LedgerMetrics) SetFrozenAccounts(count int) {
	if m == nil {
		return
	}
	m.FrozenAccountsGauge.Set(float64(count))
}

func (m *LedgerMetrics) RecordRegistryAuditMismatch() {
	if m == nil {
		return
	}
	m.RegistryAuditMismatchTotal.Inc()
}

func (m *LedgerMetrics) ObserveOperationDuration(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.OperationDuration.WithLabelValues(operation).Observe(seconds)
}
