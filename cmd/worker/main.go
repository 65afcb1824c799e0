// Package main is the entry point for the tradebill maintenance
// worker. It runs periodic housekeeping: expired refresh token
// cleanup and database pool health logging.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tradebill/internal/infrastructure/storage/postgres"
	"tradebill/internal/infrastructure/storage/postgres/auth_repo"
	"tradebill/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("starting tradebill worker")

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(mustEnv("DATABASE_URL")))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	tokenRepo := auth_repo.NewTokenRepo(txManager)

	worker := &Worker{
		tokens:   tokenRepo,
		pool:     pool,
		log:      log,
		interval: getEnvDuration("WORKER_INTERVAL", time.Hour),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Run(ctx)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	wg.Wait()
	log.Info("worker stopped")
}

// TokenCleaner removes expired and long-revoked refresh tokens.
type TokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int, error)
}

// Worker runs housekeeping tasks on a fixed interval.
type Worker struct {
	tokens   TokenCleaner
	pool     *postgres.Pool
	log      *logger.Logger
	interval time.Duration
}

// Run executes the housekeeping loop until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Infow("worker loop started", "interval", w.interval)

	// First pass immediately on startup.
	w.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	removed, err := w.tokens.CleanupExpiredTokens(ctx)
	if err != nil {
		w.log.Errorw("token cleanup failed", "error", err)
	} else if removed > 0 {
		w.log.Infow("expired refresh tokens removed", "count", removed)
	}

	stat := w.pool.Stat()
	w.log.Debugw("pool stats",
		"total_conns", stat.TotalConns(),
		"acquired_conns", stat.AcquiredConns(),
		"idle_conns", stat.IdleConns(),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
