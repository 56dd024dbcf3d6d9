package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"monero-wallet-manager/config"
	httpHandler "monero-wallet-manager/internal/adapter/http/handler"
	"monero-wallet-manager/internal/adapter/queue"
	pgStorage "monero-wallet-manager/internal/adapter/storage/postgres"
	redisStorage "monero-wallet-manager/internal/adapter/storage/redis"
	"monero-wallet-manager/internal/adapter/wallet"
	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/internal/service"
	"monero-wallet-manager/pkg/logger"
)

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
		Str("wallet_url", cfg.Wallet.URL).
		Msg("Starting Monero Wallet Manager")

	ctx := context.Background()

	// Initialize PostgreSQL pool and the ledger schema
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize schema")
	}
	log.Info().Msg("PostgreSQL connected")

	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}

	// Redis is optional; without it the rate limiter is a noop.
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected")
	} else {
		log.Info().Msg("Redis disabled, rate limiting off")
	}

	// Wallet RPC client, shared by handlers and the consumer
	walletClient := wallet.NewClient(wallet.Config{
		BaseURL:    cfg.Wallet.URL,
		Username:   cfg.Wallet.Username,
		Password:   cfg.Wallet.Password,
		AuthScheme: cfg.Wallet.AuthScheme,
		Timeout:    cfg.Wallet.Timeout,
	}, log)

	// Repositories and business services
	addressRepo := pgStorage.NewAddressRepo(pool)
	addressSvc := service.NewAddressService(walletClient, addressRepo, cfg.Wallet.AccountIndex, log)
	transferSvc := service.NewTransferService(walletClient, log)
	withdrawalSvc := service.NewWithdrawalService(walletClient, log)

	// Withdrawal consumer, only when a queue URL is configured
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	defer stopConsumer()

	var consumer *service.Consumer
	if cfg.Queue.URL != "" {
		broker := queue.NewBroker(cfg.Queue.URL, cfg.Queue.Name)
		consumer = service.NewConsumer(broker, withdrawalSvc, cfg.Queue.PollInterval, log)
		go consumer.Run(consumerCtx)
	} else {
		log.Info().Msg("queue.url not configured, withdrawal consumer disabled")
	}

	// Setup Gin router with all routes
	var queueAdmin httpHandler.QueueAdmin
	if consumer != nil {
		queueAdmin = consumer
	}
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Wallet:         walletClient,
		AddressSvc:     addressSvc,
		TransferSvc:    transferSvc,
		QueueAdmin:     queueAdmin,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
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

	stopConsumer()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
