package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zippay/config"
	httpHandler "zippay/internal/adapter/http/handler"
	pgStorage "zippay/internal/adapter/storage/postgres"
	redisStorage "zippay/internal/adapter/storage/redis"
	"zippay/internal/core/domain"
	"zippay/internal/core/ports"
	"zippay/internal/service"
	"zippay/pkg/logger"

	"github.com/shopspring/decimal"
)

const snapshotCacheTTL = 24 * time.Hour

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting ZipPay ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Storage adapters
	stateRepo := pgStorage.NewStateRepo(pool)
	snapshotCache := redisStorage.NewSnapshotCache(rdb, snapshotCacheTTL)
	notifier := redisStorage.NewPubSubNotifier(rdb, logger.Component(log, "notifier"))

	// Load the persisted ledger state, or start fresh.
	state, err := stateRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, pgStorage.ErrCorruptState) {
			log.Fatal().Err(err).Msg("Failed to load ledger state")
		}
		log.Warn().Err(err).Msg("Persisted ledger state is corrupt, reinitializing")
		state = nil
	}
	if state == nil {
		state = domain.NewInitialState(decimal.NewFromFloat(cfg.Ledger.InitialBank))
		if err := stateRepo.Save(ctx, state); err != nil {
			log.Fatal().Err(err).Msg("Failed to save initial ledger state")
		}
		log.Info().Float64("bank", cfg.Ledger.InitialBank).Msg("Initialized fresh ledger state")
	} else {
		log.Info().Msg("Loaded persisted ledger state")
	}

	// Core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	ledgerSvc := service.NewLedgerService(state, service.LedgerOptions{
		Limits:        cfg.Ledger.Limits(),
		UserLabel:     cfg.Ledger.UserLabel,
		SnapshotDepth: cfg.Ledger.SnapshotDepth,
		ReloadDelay:   cfg.Ledger.ReloadDelay,
	}, stateRepo, snapshotCache, notifier, logger.Component(log, "ledger"))

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledgerSvc,
		TokenSvc:       tokenSvc,
		HashSvc:        hashSvc,
		OperatorPIN:    cfg.Auth.PINHash,
		MerchantName:   cfg.Ledger.MerchantName,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
