package background

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/LavaJover/shvark-club-ledger/internal/client"
	"github.com/LavaJover/shvark-club-ledger/internal/domain"
	publisher "github.com/LavaJover/shvark-club-ledger/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-club-ledger/internal/infrastructure/memstore"
	"github.com/LavaJover/shvark-club-ledger/internal/infrastructure/metrics"
)

const (
	settlementEventsTopic = "settlement-events"
	consumerGroup         = "club-ledger"
	auditInterval         = time.Minute
)

type BackgroundTasks struct {
	Registry   *memstore.Registry
	Settlement *client.HTTPSettlementClient
	Subscriber domain.SubscriberPort
	Metrics    *metrics.LedgerMetrics
}

func NewBackgroundTasks(
	registry *memstore.Registry,
	settlement *client.HTTPSettlementClient,
	subscriber domain.SubscriberPort,
	ledgerMetrics *metrics.LedgerMetrics) *BackgroundTasks {

	return &BackgroundTasks{
		Registry:   registry,
		Settlement: settlement,
		Subscriber: subscriber,
		Metrics:    ledgerMetrics,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startFreezeEventWatcher(ctx)
	go bt.startRegistryAudit(ctx)
}

// startFreezeEventWatcher feeds the settlement client's freeze cache from
// the settlement event stream, so withdrawal checks for known accounts skip
// the HTTP round trip.
func (bt *BackgroundTasks) startFreezeEventWatcher(ctx context.Context) {
	messages, err := bt.Subscriber.Subscribe(settlementEventsTopic, consumerGroup)
	if err != nil {
		log.Printf("failed to subscribe to %s: %v", settlementEventsTopic, err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				log.Printf("%s stream closed", settlementEventsTopic)
				return
			}
			var event publisher.SettlementFreezeEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("malformed settlement event: %v", err)
				continue
			}
			bt.Settlement.MarkFrozen(event.MemberID, event.Frozen)
			bt.Metrics.SetFrozenAccounts(bt.Settlement.FrozenCount())
		}
	}
}

// startRegistryAudit periodically recomputes the member balance sum and
// compares it with the maintained total_funds. The two must always agree;
// a mismatch is logged and counted, never repaired silently.
func (bt *BackgroundTasks) startRegistryAudit(ctx context.Context) {
	ticker := time.NewTicker(auditInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			recomputed, maintained := bt.Registry.CheckTotals()
			if recomputed != maintained {
				log.Printf("registry audit mismatch: member sum %d, total_funds %d", recomputed, maintained)
				bt.Metrics.RecordRegistryAuditMismatch()
			}
		}
	}
}
