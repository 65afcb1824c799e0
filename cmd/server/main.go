// Package main is the entry point for the tradebill API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tradebill/internal/domain/auth"
	"tradebill/internal/domain/billing"
	"tradebill/internal/domain/catalogs/client"
	"tradebill/internal/domain/catalogs/material"
	"tradebill/internal/domain/company"
	"tradebill/internal/domain/documents/order"
	"tradebill/internal/domain/documents/payment"
	"tradebill/internal/domain/render"
	v1 "tradebill/internal/infrastructure/http/v1"
	"tradebill/internal/infrastructure/storage/postgres"
	"tradebill/internal/infrastructure/storage/postgres/auth_repo"
	"tradebill/internal/infrastructure/storage/postgres/catalog_repo"
	"tradebill/internal/infrastructure/storage/postgres/company_repo"
	"tradebill/internal/infrastructure/storage/postgres/document_repo"
	"tradebill/internal/infrastructure/storage/postgres/ledger_repo"
	"tradebill/pkg/logger"
	"tradebill/pkg/numerator"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting tradebill server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Shared infrastructure ---
	num := numerator.New(pool)

	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- JWT Service ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	// --- Auth ---
	userRepo := auth_repo.NewUserRepo(txManager)
	tokenRepo := auth_repo.NewTokenRepo(txManager)
	authService := auth.NewService(userRepo, tokenRepo, txManager, jwtService, auth.DefaultServiceConfig())

	// --- Catalogs ---
	clientRepo := catalog_repo.NewClientRepo(txManager)
	clientService := client.NewService(clientRepo, txManager, num)

	materialRepo := catalog_repo.NewMaterialRepo(txManager)
	materialService := material.NewService(materialRepo, txManager, num)

	// --- Documents ---
	orderRepo := document_repo.NewOrderRepo(txManager)
	orderService := order.NewService(orderRepo, txManager, num)

	paymentRepo := document_repo.NewPaymentRepo(txManager)
	paymentService := payment.NewService(paymentRepo, txManager, num)

	// --- Company settings ---
	companyRepo := company_repo.NewCompanyRepo(txManager)
	companyService := company.NewService(companyRepo, txManager)

	// --- Billing ---
	invoiceRepo := document_repo.NewInvoiceRepo(txManager)
	ledgerRepo := ledger_repo.NewLedgerRepo(txManager)
	billingService := billing.NewService(
		clientRepo,
		companyRepo,
		ledgerRepo,
		invoiceRepo,
		num,
		txManager,
		auditService,
	)

	// --- Renderers ---
	htmlRenderer, err := render.NewHTMLRenderer()
	if err != nil {
		log.Fatalw("failed to initialize html renderer", "error", err)
	}

	renderers := render.NewRegistry()
	renderers.Register(render.FormatHTML, htmlRenderer)
	renderers.Register(render.FormatXLSX, render.NewExcelRenderer())

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:            pool,
		Logger:          log,
		JWTValidator:    jwtService,
		AuthService:     authService,
		ClientService:   clientService,
		MaterialService: materialService,
		OrderService:    orderService,
		PaymentService:  paymentService,
		CompanyService:  companyService,
		BillingService:  billingService,
		Renderers:       renderers,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
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

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
