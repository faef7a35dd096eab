package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/LavaJover/shvark-club-ledger/internal/app/background"
	"github.com/LavaJover/shvark-club-ledger/internal/app/setup"
	"github.com/LavaJover/shvark-club-ledger/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-club-ledger/internal/domain"
	"github.com/LavaJover/shvark-club-ledger/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-club-ledger/internal/usecase/ledger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	cfg := deps.Config

	if cfg.EventDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(deps.EventDB, cfg.EventDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	uc := ledger.NewDefaultLedgerUsecase(
		deps.Registry,
		deps.Settlement,
		deps.Publisher,
		deps.Journal,
		deps.Metrics,
		domain.NewSystemClock(),
		cfg.SettlementService.ClubAccountID,
	)

	ledgerHandler := handlers.NewLedgerHandler(uc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	ledgerHandler.RegisterRoutes(r)

	// Background loops: settlement freeze watcher, registry audit
	tasks := background.NewBackgroundTasks(deps.Registry, deps.Settlement, deps.Subscriber, deps.Metrics)
	tasks.StartAll(context.Background())

	// Metrics endpoint
	go func() {
		metricsAddr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Printf("metrics server started on %s\n", metricsAddr)
		if err := http.ListenAndServe(metricsAddr, mux); err != nil {
			log.Printf("metrics server stopped: %v", err)
		}
	}()

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("club-ledger server started on %s\n", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
