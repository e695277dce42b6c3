package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-dashboard/config"
	httpHandler "crypto-dashboard/internal/adapter/http/handler"
	pgStorage "crypto-dashboard/internal/adapter/storage/postgres"
	redisStorage "crypto-dashboard/internal/adapter/storage/redis"
	"crypto-dashboard/internal/core/ports"
	"crypto-dashboard/internal/service"
	"crypto-dashboard/pkg/logger"
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
		Msg("Starting Crypto Dashboard")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("session secret is required (CWD_SESSION_SECRET)")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}

	// Redis is optional; without it rate limiting is disabled.
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, rate limiting disabled")
		} else {
			defer rdb.Close()
			log.Info().Msg("Redis connected")
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
			healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		}
	}

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)

	// Initialize services
	hashSvc := service.NewArgon2HashService()
	sessionSvc := service.NewJWTSessionService(cfg.Session.Secret, cfg.Session.Expiry, cfg.Session.Issuer)
	authSvc := service.NewAuthService(userRepo, hashSvc, sessionSvc, log)
	walletSvc := service.NewWalletService(walletRepo, log)

	// Seed the initial admin account on an empty users table
	if cfg.Bootstrap.AdminPassword != "" {
		if _, err := authSvc.Bootstrap(ctx, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap admin account")
		}
	} else {
		log.Warn().Msg("No bootstrap admin password configured, skipping admin seed")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		AuthSvc:        authSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		TemplatesGlob:  "web/templates/*.html",
		CookieName:     cfg.Session.CookieName,
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
