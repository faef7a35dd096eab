package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-club-ledger/internal/client"
	"github.com/LavaJover/shvark-club-ledger/internal/config"
	publisher "github.com/LavaJover/shvark-club-ledger/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-club-ledger/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-club-ledger/internal/infrastructure/memstore"
	"github.com/LavaJover/shvark-club-ledger/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-club-ledger/internal/infrastructure/postgres"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config     *config.ClubLedgerConfig
	EventDB    *gorm.DB
	Registry   *memstore.Registry
	Publisher  *publisher.KafkaPublisher
	Subscriber *publisher.DefaultKafkaSubscriber
	Settlement *client.HTTPSettlementClient
	Journal    *logger.PGLedgerJournal
	Metrics    *metrics.LedgerMetrics
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitEventDB(cfg)

	ledgerPublisher, err := initLedgerPublisher(cfg)
	if err != nil {
		return nil, fmt.Errorf("ledger publisher: %w", err)
	}

	subscriber := publisher.NewDefaultKafkaSubscriber(
		[]string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
	)

	settlement, err := client.NewHTTPSettlementClient(
		fmt.Sprintf("http://%s:%s", cfg.SettlementService.Host, cfg.SettlementService.Port),
	)
	if err != nil {
		return nil, fmt.Errorf("settlement client: %w", err)
	}

	return &Dependencies{
		Config:     cfg,
		EventDB:    db,
		Registry:   memstore.NewRegistry(),
		Publisher:  ledgerPublisher,
		Subscriber: subscriber,
		Settlement: settlement,
		Journal:    logger.NewPGLedgerJournal(db),
		Metrics:    metrics.NewLedgerMetrics(),
	}, nil
}

func initLedgerPublisher(cfg *config.ClubLedgerConfig) (*publisher.KafkaPublisher, error) {
	config := publisher.KafkaConfig{
		Brokers:    []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		Topic:      "ledger-events",
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	}
	return publisher.NewKafkaPublisher(config)
}
