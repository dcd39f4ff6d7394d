package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookingnest-payments/config"
	httpHandler "bookingnest-payments/internal/adapter/http/handler"
	"bookingnest-payments/internal/adapter/nominatim"
	"bookingnest-payments/internal/adapter/paypal"
	redisStorage "bookingnest-payments/internal/adapter/storage/redis"
	"bookingnest-payments/internal/core/ports"
	"bookingnest-payments/internal/service"
	"bookingnest-payments/pkg/logger"

	"github.com/rs/cors"
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
		Str("paypal_env", cfg.PayPal.Environment).
		Int("port", cfg.Server.Port).
		Msg("Starting BookingNest payments backend")

	ctx := context.Background()

	// Optional Redis-backed ledger. Without it the payment flows still
	// work; capture bookkeeping is simply skipped.
	var ledger ports.Ledger
	var healthCheckers []ports.HealthChecker
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		ledger = redisStorage.NewLedger(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Info().Msg("Redis disabled, running without ledger")
	}

	// Outbound clients
	httpClient := &http.Client{Timeout: cfg.PayPal.Timeout + 5*time.Second}
	gateway := paypal.NewClient(cfg.PayPal, httpClient, log)
	geocoder := nominatim.NewClient(cfg.Nominatim, &http.Client{Timeout: cfg.Nominatim.Timeout}, log)

	// Business services
	orderSvc := service.NewOrderService(gateway, ledger, cfg.PayPal.Currency, log)
	withdrawalSvc := service.NewWithdrawalService(gateway, cfg.PayPal.Currency, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OrderSvc:       orderSvc,
		WithdrawalSvc:  withdrawalSvc,
		Geocoder:       geocoder,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// CORS allowlist wrapped around the engine
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: corsHandler,
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
