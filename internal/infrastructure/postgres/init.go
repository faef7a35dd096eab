package postgres

import (
	"log"

	"github.com/LavaJover/shvark-club-ledger/internal/config"
	"github.com/LavaJover/shvark-club-ledger/internal/infrastructure/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitEventDB(cfg *config.ClubLedgerConfig) *gorm.DB {
	dsn := cfg.EventDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init event db: %v\n", err.Error())
	}

	db.AutoMigrate(&logger.LedgerOperationEvent{})

	return db
}
