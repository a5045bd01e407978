package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tradesouq/internal/config"
	"tradesouq/internal/currency"
	"tradesouq/internal/database"
	"tradesouq/internal/handler"
	"tradesouq/internal/payment"
	"tradesouq/internal/repository"
	"tradesouq/internal/router"
	"tradesouq/internal/service"
	"tradesouq/internal/session"
	"tradesouq/internal/stock"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting tradesouq API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Resolve the country table: built-in default, overridable from a
	// local file or S3 with local fallback
	table, err := loadCountryTable(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load country table: %w", err)
	}

	// Initialize the stock reserver: redis when enabled, in-memory otherwise
	var reserver stock.Reserver
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}
		defer client.Close()
		reserver = stock.NewRedisReserver(client, logger)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("using redis stock reserver")
	} else {
		reserver = stock.NewMemoryReserver()
		logger.Info().Msg("using in-memory stock reserver (redis disabled)")
	}

	// Initialize the payment gateway and flow
	gatewayConfig := payment.SimulatedConfig{
		Latency:         cfg.Payment.PaymentLatency(),
		DeclinePrefixes: strings.Split(cfg.Payment.DeclinePrefixes, ","),
	}
	gateway := payment.NewSimulatedGateway(gatewayConfig, logger)
	flow := payment.NewFlow(gateway, logger)

	// Initialize sessions and services
	sessions := session.NewManager(table, logger)
	catalogService := service.NewCatalogService(productRepo, reserver, logger)
	checkoutService := service.NewCheckoutService(orderRepo, productRepo, reserver, flow, logger)
	fulfillmentService := service.NewFulfillmentService(orderRepo, logger)

	// Seed reservable stock from the catalogue
	if err := catalogService.SyncStock(ctx); err != nil {
		return fmt.Errorf("failed to sync stock levels: %w", err)
	}

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(sessions, checkoutService, logger)
	productHandler := handler.NewProductHandler(catalogService, sessions, table, logger)
	cartHandler := handler.NewCartHandler(catalogService, sessions, logger)
	orderHandler := handler.NewOrderHandler(checkoutService, fulfillmentService, sessions, logger)
	sessionHandler := handler.NewSessionHandler(sessions, logger)

	// Initialize router
	mux := router.New(authHandler, productHandler, cartHandler, orderHandler, sessionHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadCountryTable resolves the country/currency table. With no file
// configured the built-in table is used; otherwise the file is loaded from
// S3 when enabled, falling back to the local file system.
func loadCountryTable(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (currency.Table, error) {
	if cfg.Currency.FilePath == "" {
		logger.Info().Msg("using built-in country table")
		return currency.DefaultTable(), nil
	}

	fileLoader := currency.NewFileLoader(logger)

	var s3Loader currency.Loader
	if cfg.Currency.S3Enabled {
		loader, err := currency.NewS3Loader(ctx, cfg.Currency.S3Bucket, cfg.Currency.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = loader
		}
	}

	loader := currency.NewFallbackLoader(s3Loader, fileLoader, cfg.Currency.S3Prefix, cfg.Currency.S3Enabled, logger)
	return loader.Load(ctx, cfg.Currency.FilePath)
}
